package onroad

import (
	"github.com/gogpu/gg"
	"golang.org/x/image/math/f64"
)

// DefaultClipMargin is how far outside the visible surface a projected
// vertex may land and still take part in a polygon. Off-screen vertices
// within the margin still shape the visible edges.
const DefaultClipMargin = 500

// MinDepth is the smallest homogeneous depth that is divided through.
// Points at or behind it (zero or negative depth) are not visible.
const MinDepth = 1e-3

// ClipRegion is an axis-aligned rectangle in surface coordinates.
// Containment includes the edges.
type ClipRegion struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewClipRegion returns the surface rectangle [0,width]x[0,height]
// expanded by margin on every side.
func NewClipRegion(width, height, margin float64) ClipRegion {
	return ClipRegion{
		MinX: -margin,
		MinY: -margin,
		MaxX: width + margin,
		MaxY: height + margin,
	}
}

// Contains reports whether p lies inside the region or on its boundary.
func (r ClipRegion) Contains(p gg.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ToSurface maps a car-space point into surface coordinates with a
// perspective divide. It reports false, with the zero point, when the
// transformed depth is not greater than MinDepth.
//
// The transform is passed explicitly on every call; nothing is cached.
func ToSurface(t Transform, forward, lateral, height float64) (gg.Point, bool) {
	v := t.Apply(f64.Vec3{forward, lateral, height})
	if v[2] <= MinDepth {
		return gg.Point{}, false
	}
	return gg.Pt(v[0]/v[2], v[1]/v[2]), true
}

// Project is ToSurface followed by a containment test against clip.
// Points with a degenerate depth are never inside.
func Project(t Transform, clip ClipRegion, forward, lateral, height float64) (gg.Point, bool) {
	p, ok := ToSurface(t, forward, lateral, height)
	if !ok {
		return p, false
	}
	return p, clip.Contains(p)
}
