package onroad

import "github.com/gogpu/gg"

// rgb255 builds a color from 8-bit channels and an 8-bit alpha.
func rgb255(r, g, b, a float64) gg.RGBA {
	return gg.RGBA{R: r / 255, G: g / 255, B: b / 255, A: clamp(a, 0, 255) / 255}
}

// Palette. The alpha argument is on the 0-255 scale.
func whiteColor(alpha float64) gg.RGBA           { return rgb255(255, 255, 255, alpha) }
func redColor(alpha float64) gg.RGBA             { return rgb255(201, 34, 49, alpha) }
func orangeColor(alpha float64) gg.RGBA          { return rgb255(255, 149, 0, alpha) }
func pinkColor(alpha float64) gg.RGBA            { return rgb255(255, 191, 191, alpha) }
func steeringPressedColor(alpha float64) gg.RGBA { return rgb255(0, 191, 255, alpha) }

// Fixed overlay colors.
var (
	blindspotColor = gg.RGBA{R: 1, G: 0, B: 0, A: 0.2}
	glowColor      = pinkColor(255)
)

// laneLineColor is white with the line probability as opacity, capped at 0.7.
func laneLineColor(prob float64) gg.RGBA {
	return gg.RGBA{R: 1, G: 1, B: 1, A: clamp(prob, 0, 0.7)}
}

// roadEdgeColor is red, fading out as the edge uncertainty grows.
func roadEdgeColor(std float64) gg.RGBA {
	return gg.RGBA{R: 1, G: 0, B: 0, A: clamp(1-std, 0, 1)}
}

// hsla creates a color from hue in degrees and saturation, lightness and
// alpha in [0, 1].
func hsla(h, s, l, a float64) gg.RGBA {
	c := gg.HSL(h, s, l)
	c.A = a
	return c
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// mapValue linearly maps x from [x0, x1] to [y0, y1], clamping x to the
// input range first.
func mapValue(x, x0, x1, y0, y1 float64) float64 {
	x = clamp(x, min(x0, x1), max(x0, x1))
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
