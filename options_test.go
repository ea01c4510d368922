package onroad

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.clipMargin != DefaultClipMargin {
		t.Errorf("clipMargin = %v, want %v", o.clipMargin, DefaultClipMargin)
	}
	if o.minDrawDistance != DefaultMinDrawDistance || o.maxDrawDistance != DefaultMaxDrawDistance {
		t.Errorf("draw distance = [%v, %v]", o.minDrawDistance, o.maxDrawDistance)
	}
	if !o.quantizeHue {
		t.Error("hue quantization should default to on")
	}
	if o.trackInversion != AllowInversion {
		t.Errorf("trackInversion = %v, want AllowInversion", o.trackInversion)
	}
	if o.leadsRequireLongitudinal {
		t.Error("leadsRequireLongitudinal should default to off")
	}
	if o.language != language.English {
		t.Errorf("language = %v, want en", o.language)
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(t *testing.T, o rendererOptions)
	}{
		{"clip margin", WithClipMargin(50), func(t *testing.T, o rendererOptions) {
			if o.clipMargin != 50 {
				t.Errorf("clipMargin = %v, want 50", o.clipMargin)
			}
		}},
		{"negative clip margin ignored", WithClipMargin(-1), func(t *testing.T, o rendererOptions) {
			if o.clipMargin != DefaultClipMargin {
				t.Errorf("clipMargin = %v, want default", o.clipMargin)
			}
		}},
		{"draw distance", WithDrawDistance(5, 60), func(t *testing.T, o rendererOptions) {
			if o.minDrawDistance != 5 || o.maxDrawDistance != 60 {
				t.Errorf("draw distance = [%v, %v], want [5, 60]", o.minDrawDistance, o.maxDrawDistance)
			}
		}},
		{"inverted draw distance ignored", WithDrawDistance(60, 5), func(t *testing.T, o rendererOptions) {
			if o.minDrawDistance != DefaultMinDrawDistance || o.maxDrawDistance != DefaultMaxDrawDistance {
				t.Errorf("draw distance = [%v, %v], want defaults", o.minDrawDistance, o.maxDrawDistance)
			}
		}},
		{"negative draw distance ignored", WithDrawDistance(-1, 5), func(t *testing.T, o rendererOptions) {
			if o.minDrawDistance != DefaultMinDrawDistance {
				t.Errorf("minDrawDistance = %v, want default", o.minDrawDistance)
			}
		}},
		{"leads require longitudinal", WithLeadsRequireLongitudinal(true), func(t *testing.T, o rendererOptions) {
			if !o.leadsRequireLongitudinal {
				t.Error("leadsRequireLongitudinal not set")
			}
		}},
		{"hue quantization off", WithHueQuantization(false), func(t *testing.T, o rendererOptions) {
			if o.quantizeHue {
				t.Error("quantizeHue still set")
			}
		}},
		{"track inversion", WithTrackInversion(RejectInversion), func(t *testing.T, o rendererOptions) {
			if o.trackInversion != RejectInversion {
				t.Errorf("trackInversion = %v", o.trackInversion)
			}
		}},
		{"label language", WithLabelLanguage(language.German), func(t *testing.T, o rendererOptions) {
			if o.language != language.German {
				t.Errorf("language = %v", o.language)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			tt.check(t, o)
		})
	}
}

func TestNewModelRendererOptions(t *testing.T) {
	r := NewModelRenderer(WithLabelLanguage(language.German))
	if r.labels.Language() != language.German {
		t.Errorf("label language = %v, want de", r.labels.Language())
	}
}
