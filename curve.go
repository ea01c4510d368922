package onroad

// Curve is an ordered sequence of 3D samples in car space.
// X is the forward distance and is non-decreasing along the curve,
// Y the lateral offset and Z the height. T is optional per-sample time.
//
// All slices are expected to have the same length; Len reports the length
// of the shortest of X, Y and Z so that ragged input never indexes out of
// range.
type Curve struct {
	X, Y, Z, T []float64
}

// Len returns the number of usable samples.
func (c Curve) Len() int {
	return min(len(c.X), len(c.Y), len(c.Z))
}

// LastX returns the forward distance of the last sample, or 0 for an
// empty curve.
func (c Curve) LastX() float64 {
	n := c.Len()
	if n == 0 {
		return 0
	}
	return c.X[n-1]
}

// PathLengthIndex returns the truncation index of c for a distance budget:
// the greatest index whose forward distance does not exceed target,
// scanning from the start and stopping at the first sample past the
// budget. Index 0 is always returned when no later sample qualifies,
// including for empty and single-sample curves.
func PathLengthIndex(c Curve, target float64) int {
	n := c.Len()
	maxIdx := 0
	for i := 1; i < n && c.X[i] <= target; i++ {
		maxIdx = i
	}
	return maxIdx
}

// heightAt returns the height of the sample selected by PathLengthIndex
// for distance d, or 0 for an empty curve.
func heightAt(c Curve, d float64) float64 {
	if c.Len() == 0 {
		return 0
	}
	return c.Z[PathLengthIndex(c, d)]
}
