// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vectorcanvas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/onroad"
	"github.com/gogpu/onroad/recording"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("vectorcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("vectorcanvas: invalid dimensions")
)

// DefaultFontSize is the label size in pixels.
const DefaultFontSize = 35

var _ onroad.Canvas = (*Canvas)(nil)

func init() {
	recording.Register("vector", func(width, height int) (recording.Target, error) {
		c, err := New(width, height)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

// Option configures a Canvas during creation.
type Option func(*canvasOptions)

type canvasOptions struct {
	fontData []byte
	fontSize float64
}

// WithFont replaces the bundled label font with TrueType or OpenType data.
func WithFont(data []byte) Option {
	return func(o *canvasOptions) {
		o.fontData = data
	}
}

// WithFontSize sets the label size in pixels. Non-positive sizes are ignored.
func WithFontSize(size float64) Option {
	return func(o *canvasOptions) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// Canvas rasterizes onroad overlays into an image.RGBA.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img    *image.RGBA
	filler *rasterx.Filler
	face   font.Face
	closed bool
}

// New creates a transparent Canvas of the given size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := canvasOptions{fontData: gobold.TTF, fontSize: DefaultFontSize}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := opentype.Parse(o.fontData)
	if err != nil {
		return nil, fmt.Errorf("vectorcanvas: parse font: %w", err)
	}
	// At 72 DPI one point is one pixel.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    o.fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("vectorcanvas: create face: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Canvas{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
		face:   face,
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the backing image. It stays valid until Close.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillPolygon fills the closed polygon pts with brush using the non-zero
// winding rule. Polygons with fewer than three points draw nothing.
func (c *Canvas) FillPolygon(pts []gg.Point, brush gg.Brush) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if len(pts) < 3 {
		return nil
	}

	c.filler.Clear()
	c.filler.SetColor(scannerColor(brush, c.Width(), c.Height()))
	c.filler.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		c.filler.Line(toFixed(p))
	}
	c.filler.Stop(true)
	c.filler.Draw()
	return nil
}

// DrawText draws s horizontally centered on x with its baseline at y.
func (c *Canvas) DrawText(s string, x, y float64, col gg.RGBA) {
	if c.closed || s == "" {
		return
	}
	w := font.MeasureString(c.face, s)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(toNRGBA(col)),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x*64) - w/2,
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(s)
}

// Clear resets the canvas to transparent.
func (c *Canvas) Clear() {
	if c.closed {
		return
	}
	clear(c.img.Pix)
}

// SavePNG writes the canvas content to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	if c.closed {
		return ErrCanvasClosed
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vectorcanvas: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("vectorcanvas: save %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("vectorcanvas: save %s: %w", path, err)
	}
	return nil
}

// Close releases the font face. It is safe to call Close multiple times.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.face.Close()
}

func toFixed(p gg.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * 64),
		Y: fixed.Int26_6(p.Y * 64),
	}
}
