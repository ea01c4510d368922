package onroad

import (
	"math"

	"github.com/gogpu/gg"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// Test surface and pinhole camera. Car space (forward, lateral, height)
// maps to surface X = cx + f*lateral/forward, Y = cy - f*height/forward,
// so the road (negative height) lies below the horizon at cy.
const (
	testWidth  = 800
	testHeight = 600
	testFocal  = 500.0
	roadZ      = -1.2
)

func testCamera() Transform {
	return Transform{
		testWidth / 2, testFocal, 0,
		testHeight / 2, 0, -testFocal,
		1, 0, 0,
	}
}

// straightCurve returns n samples spaced step meters apart at a fixed
// lateral offset and height.
func straightCurve(n int, step, lateral, z float64) Curve {
	c := Curve{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
		T: make([]float64, n),
	}
	for i := range n {
		c.X[i] = float64(i) * step
		c.Y[i] = lateral
		c.Z[i] = z
		c.T[i] = float64(i) * 0.5
	}
	return c
}

func rgbaApprox(a, b gg.RGBA) bool {
	return approxEqual(a.R, b.R) && approxEqual(a.G, b.G) &&
		approxEqual(a.B, b.B) && approxEqual(a.A, b.A)
}
