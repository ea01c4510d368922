package onroad

import "github.com/gogpu/gg"

// InversionPolicy controls how the ribbon builder treats samples whose
// projection moves back down the screen, as happens past a hill crest.
type InversionPolicy uint8

const (
	// RejectInversion drops a sample whose near-rail point is lower on
	// screen than the previously accepted one. Wide ribbons would
	// otherwise fold over themselves.
	RejectInversion InversionPolicy = iota
	// AllowInversion keeps every visible sample.
	AllowInversion
)

// String implements fmt.Stringer.
func (p InversionPolicy) String() string {
	switch p {
	case RejectInversion:
		return "RejectInversion"
	case AllowInversion:
		return "AllowInversion"
	default:
		return "Unknown"
	}
}

// RibbonSpec describes how a curve is widened into a ribbon.
type RibbonSpec struct {
	// HalfWidth is the lateral offset of each rail from the curve.
	HalfWidth float64
	// HeightNear and HeightFar are added to the sample height for the
	// near (-HalfWidth) and far (+HalfWidth) rails.
	HeightNear, HeightFar float64
	// MaxIndex is the truncation index; samples past it are not drawn.
	MaxIndex  int
	Inversion InversionPolicy
}

// Ribbon is a curve widened into two projected rails.
// Every accepted sample contributes exactly one point to each rail, so
// Near, Far and Samples always have the same length.
type Ribbon struct {
	Near    []gg.Point // -HalfWidth rail, walk order (near to far)
	Far     []gg.Point // +HalfWidth rail, walk order (near to far)
	Samples []int      // curve index of each accepted sample
}

// Len returns the number of accepted samples.
func (r Ribbon) Len() int { return len(r.Near) }

// Empty reports whether no sample was accepted.
func (r Ribbon) Empty() bool { return len(r.Near) == 0 }

// Loop returns the closed polygon: the far rail from its last point back
// to its first, followed by the near rail in walk order. This is the
// order obtained by pushing far points to the head and near points to
// the tail, and it fills without crossing itself.
func (r Ribbon) Loop() []gg.Point {
	n := len(r.Near)
	if n == 0 {
		return nil
	}
	loop := make([]gg.Point, 0, 2*n)
	for i := n - 1; i >= 0; i-- {
		loop = append(loop, r.Far[i])
	}
	return append(loop, r.Near...)
}

// BuildRibbon projects curve c into a ribbon using transform t.
//
// Samples 0..spec.MaxIndex are walked in order. A sample is skipped when
// its forward distance is negative, when either rail projects outside
// clip, or, under RejectInversion, when its near-rail point lies below
// the previously accepted near-rail point.
func BuildRibbon(t Transform, clip ClipRegion, c Curve, spec RibbonSpec) Ribbon {
	n := c.Len()
	if n == 0 {
		return Ribbon{}
	}
	maxIdx := min(max(spec.MaxIndex, 0), n-1)

	r := Ribbon{
		Near:    make([]gg.Point, 0, maxIdx+1),
		Far:     make([]gg.Point, 0, maxIdx+1),
		Samples: make([]int, 0, maxIdx+1),
	}
	for i := 0; i <= maxIdx; i++ {
		// Negative x is behind the camera plane and projects above the
		// horizon, which flickers.
		if c.X[i] < 0 {
			continue
		}
		near, okNear := Project(t, clip, c.X[i], c.Y[i]-spec.HalfWidth, c.Z[i]+spec.HeightNear)
		far, okFar := Project(t, clip, c.X[i], c.Y[i]+spec.HalfWidth, c.Z[i]+spec.HeightFar)
		if !okNear || !okFar {
			continue
		}
		if spec.Inversion == RejectInversion && len(r.Near) > 0 && near.Y > r.Near[len(r.Near)-1].Y {
			continue
		}
		r.Near = append(r.Near, near)
		r.Far = append(r.Far, far)
		r.Samples = append(r.Samples, i)
	}
	return r
}
