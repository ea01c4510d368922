package onroad

import "golang.org/x/text/language"

// Default draw distance bounds, in meters. Lane lines and road edges are
// drawn as far as the planned path reaches, within these bounds.
const (
	DefaultMinDrawDistance = 10.0
	DefaultMaxDrawDistance = 100.0
)

// Option configures a ModelRenderer during creation.
//
// Example:
//
//	r := onroad.NewModelRenderer(
//	    onroad.WithDrawDistance(10, 80),
//	    onroad.WithLabelLanguage(language.German),
//	)
type Option func(*rendererOptions)

// rendererOptions holds the renderer configuration.
type rendererOptions struct {
	clipMargin               float64
	minDrawDistance          float64
	maxDrawDistance          float64
	leadsRequireLongitudinal bool
	quantizeHue              bool
	trackInversion           InversionPolicy
	language                 language.Tag
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		clipMargin:      DefaultClipMargin,
		minDrawDistance: DefaultMinDrawDistance,
		maxDrawDistance: DefaultMaxDrawDistance,
		quantizeHue:     true,
		trackInversion:  AllowInversion,
		language:        language.English,
	}
}

// WithClipMargin sets how far outside the surface projected vertices are
// still accepted. Negative values are ignored.
func WithClipMargin(margin float64) Option {
	return func(o *rendererOptions) {
		if margin >= 0 {
			o.clipMargin = margin
		}
	}
}

// WithDrawDistance sets the floor and ceiling of the lane-line draw
// distance. The call is ignored unless 0 <= lo <= hi.
func WithDrawDistance(lo, hi float64) Option {
	return func(o *rendererOptions) {
		if lo >= 0 && lo <= hi {
			o.minDrawDistance, o.maxDrawDistance = lo, hi
		}
	}
}

// WithLeadsRequireLongitudinal only draws lead glyphs when the car params
// report that longitudinal control is handled by the system.
func WithLeadsRequireLongitudinal(enabled bool) Option {
	return func(o *rendererOptions) {
		o.leadsRequireLongitudinal = enabled
	}
}

// WithHueQuantization toggles snapping of acceleration hues to hundredths
// of a full turn (3.6° steps). Snapping bounds the number of distinct
// gradient stops, which matters on backends whose fill cost grows with them.
func WithHueQuantization(enabled bool) Option {
	return func(o *rendererOptions) {
		o.quantizeHue = enabled
	}
}

// WithTrackInversion sets the inversion policy of the trajectory ribbon.
// Lane lines, road edges and blind-spot barriers always reject inversion.
func WithTrackInversion(p InversionPolicy) Option {
	return func(o *rendererOptions) {
		o.trackInversion = p
	}
}

// WithLabelLanguage sets the language used to format lead labels.
func WithLabelLanguage(tag language.Tag) Option {
	return func(o *rendererOptions) {
		o.language = tag
	}
}
