package onroad

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestClipRegionContains(t *testing.T) {
	clip := NewClipRegion(testWidth, testHeight, DefaultClipMargin)
	tests := []struct {
		name string
		p    gg.Point
		want bool
	}{
		{"center", gg.Pt(400, 300), true},
		{"left margin edge", gg.Pt(-500, 0), true},
		{"past left margin", gg.Pt(-501, 0), false},
		{"right margin edge", gg.Pt(1300, 0), true},
		{"past right margin", gg.Pt(1301, 0), false},
		{"top margin edge", gg.Pt(0, -500), true},
		{"past bottom margin", gg.Pt(0, 1101), false},
		{"corner", gg.Pt(1300, 1100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clip.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestNewClipRegionZeroMargin(t *testing.T) {
	want := ClipRegion{MinX: 0, MinY: 0, MaxX: 1920, MaxY: 1080}
	if got := NewClipRegion(1920, 1080, 0); got != want {
		t.Errorf("NewClipRegion() = %+v, want %+v", got, want)
	}
}

func TestProject(t *testing.T) {
	clip := NewClipRegion(testWidth, testHeight, DefaultClipMargin)
	scale := Transform{2, 0, 0, 0, 2, 0, 0, 0, 1}
	tests := []struct {
		name                  string
		t                     Transform
		forward, lateral, hgt float64
		want                  gg.Point
		ok                    bool
	}{
		{"identity", IdentityTransform(), 10, 20, 1, gg.Pt(10, 20), true},
		{"affine scale", scale, 10, 20, 1, gg.Pt(20, 40), true},
		{"perspective divide", IdentityTransform(), 10, 20, 2, gg.Pt(5, 10), true},
		{"margin boundary", IdentityTransform(), -500, 0, 1, gg.Pt(-500, 0), true},
		{"past margin", IdentityTransform(), -501, 0, 1, gg.Pt(-501, 0), false},
		{"camera road point", testCamera(), 10, 0, roadZ, gg.Pt(400, 360), true},
		{"zero depth", IdentityTransform(), 1, 1, 0, gg.Point{}, false},
		{"negative depth", IdentityTransform(), 1, 1, -1, gg.Point{}, false},
		{"behind camera", testCamera(), -10, 0, roadZ, gg.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Project(tt.t, clip, tt.forward, tt.lateral, tt.hgt)
			if ok != tt.ok {
				t.Fatalf("Project() ok = %v, want %v", ok, tt.ok)
			}
			if !approxEqual(got.X, tt.want.X) || !approxEqual(got.Y, tt.want.Y) {
				t.Errorf("Project() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToSurfaceIgnoresClip(t *testing.T) {
	p, ok := ToSurface(IdentityTransform(), 1e6, -1e6, 1)
	if !ok {
		t.Fatal("ToSurface() rejected a point in front of the camera")
	}
	if p != gg.Pt(1e6, -1e6) {
		t.Errorf("ToSurface() = %v", p)
	}
	if _, ok := ToSurface(IdentityTransform(), 1, 1, MinDepth); ok {
		t.Error("ToSurface() accepted depth == MinDepth")
	}
}
