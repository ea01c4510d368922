// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vectorcanvas

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/srwiley/rasterx"
)

var extendToSpread = [...]rasterx.SpreadMethod{
	gg.ExtendPad:     rasterx.PadSpread,
	gg.ExtendRepeat:  rasterx.RepeatSpread,
	gg.ExtendReflect: rasterx.ReflectSpread,
}

// scannerColor resolves a gg brush into the value accepted by
// rasterx.Scanner.SetColor: a color.Color or a rasterx.ColorFunc.
func scannerColor(brush gg.Brush, width, height int) any {
	switch b := brush.(type) {
	case gg.SolidBrush:
		return toNRGBA(b.Color)
	case *gg.LinearGradientBrush:
		return linearGradient(b, width, height)
	case nil:
		return color.NRGBA{}
	default:
		return rasterx.ColorFunc(func(x, y int) color.Color {
			return toNRGBA(brush.ColorAt(float64(x)+0.5, float64(y)+0.5))
		})
	}
}

// linearGradient converts g into a user-space rasterx gradient. Stop
// colors are opaque; stop alpha moves into the rasterx stop opacity.
func linearGradient(g *gg.LinearGradientBrush, width, height int) any {
	switch len(g.Stops) {
	case 0:
		return color.NRGBA{}
	case 1:
		return toNRGBA(g.Stops[0].Color)
	}

	stops := make([]rasterx.GradStop, len(g.Stops))
	for i, s := range g.Stops {
		c := toNRGBA(s.Color)
		c.A = 0xff
		stops[i] = rasterx.GradStop{
			StopColor: c,
			Offset:    s.Offset,
			Opacity:   clamp01(s.Color.A),
		}
	}

	spread := rasterx.PadSpread
	if int(g.Extend) >= 0 && int(g.Extend) < len(extendToSpread) {
		spread = extendToSpread[g.Extend]
	}

	rg := rasterx.Gradient{
		Points: [5]float64{g.Start.X, g.Start.Y, g.End.X, g.End.Y},
		Stops:  stops,
		Matrix: rasterx.Identity,
		Spread: spread,
		Units:  rasterx.UserSpaceOnUse,
	}
	rg.Bounds.W, rg.Bounds.H = float64(width), float64(height)
	return rg.GetColorFunction(1)
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
