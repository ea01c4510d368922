package onroad

import "github.com/gogpu/gg"

// Canvas is the drawing surface the renderer paints onto. It is an opaque
// sink: the renderer only fills closed polygons and draws text, in the
// order it wants them composited.
//
// Implementations live in recording (command capture and replay),
// integration/ggcanvas (raster output through gg) and
// integration/vectorcanvas (CPU-only output through rasterx).
type Canvas interface {
	// Width and Height return the visible surface size in pixels.
	Width() int
	Height() int

	// FillPolygon fills the closed polygon pts with brush using the
	// non-zero winding rule. Polygons with fewer than three points
	// draw nothing.
	FillPolygon(pts []gg.Point, brush gg.Brush) error

	// DrawText draws s horizontally centered on x with its baseline at y.
	DrawText(s string, x, y float64, c gg.RGBA)
}
