// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/gogpu/onroad"
	"github.com/gogpu/onroad/recording"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

	// ErrNilContext is returned when a nil gg.Context is passed.
	ErrNilContext = errors.New("ggcanvas: nil gg.Context")
)

// DefaultFontSize is the label size in pixels.
const DefaultFontSize = 35

var _ onroad.Canvas = (*Canvas)(nil)

func init() {
	recording.Register("raster", func(width, height int) (recording.Target, error) {
		c, err := New(width, height)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

// defaultSource parses the bundled Go Bold font once per process.
var defaultSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gobold.TTF)
})

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// Option configures a Canvas during creation.
type Option func(*canvasOptions)

type canvasOptions struct {
	provider gpucontext.DeviceProvider
	fontData []byte
	fontSize float64
}

// WithDeviceProvider shares a GPU device with gg's accelerator.
// The provider usually comes from gogpu.App.GPUContextProvider().
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *canvasOptions) {
		o.provider = p
	}
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

// Canvas draws onroad overlays into a gg.Context and manages the optional
// CPU-to-GPU texture upload.
type Canvas struct {
	ctx      *gg.Context
	face     text.Face
	provider gpucontext.DeviceProvider
	texture  any  // Lazy-created texture (gpucontext.Texture)
	dirty    bool // Needs GPU upload
	width    int
	height   int
	closed   bool
}

// New creates a Canvas backed by a new gg.Context of the given size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return newCanvas(gg.NewContext(width, height), width, height, opts)
}

// NewFromContext wraps an existing gg.Context, for hosts that already own
// one. The canvas takes the context's current size.
func NewFromContext(ctx *gg.Context, opts ...Option) (*Canvas, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return newCanvas(ctx, ctx.Width(), ctx.Height(), opts)
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func newCanvas(ctx *gg.Context, width, height int, opts []Option) (*Canvas, error) {
	o := canvasOptions{fontSize: DefaultFontSize}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		source *text.FontSource
		err    error
	)
	if o.fontData != nil {
		source, err = text.NewFontSource(o.fontData)
	} else {
		source, err = defaultSource()
	}
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: load font: %w", err)
	}

	if o.provider != nil {
		// Non-fatal: the accelerator may not support device sharing, in
		// which case it initializes its own device.
		if err := gg.SetAcceleratorDeviceProvider(o.provider); err != nil {
			gg.Logger().Warn("ggcanvas: device sharing unavailable", "err", err)
		}
	}

	face := source.Face(o.fontSize)
	ctx.SetFont(face)
	return &Canvas{
		ctx:      ctx,
		face:     face,
		provider: o.provider,
		width:    width,
		height:   height,
		dirty:    true, // first Flush creates the texture
	}, nil
}

// Context returns the gg drawing context, or nil if the canvas is closed.
// Drawing through it directly requires a MarkDirty call for GPU upload.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
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

	c.ctx.ClearPath()
	c.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.ctx.LineTo(p.X, p.Y)
	}
	c.ctx.ClosePath()
	c.ctx.SetFillBrush(brush)
	c.dirty = true
	if err := c.ctx.Fill(); err != nil {
		return fmt.Errorf("ggcanvas: fill: %w", err)
	}
	return nil
}

// DrawText draws s horizontally centered on x with its baseline at y.
func (c *Canvas) DrawText(s string, x, y float64, col gg.RGBA) {
	if c.closed || s == "" {
		return
	}
	w, _ := text.Measure(s, c.face)
	c.ctx.SetColor(col)
	c.ctx.DrawString(s, x-w/2, y)
	c.dirty = true
}

// Clear resets the canvas to transparent.
func (c *Canvas) Clear() {
	if c.closed {
		return
	}
	c.ctx.Clear()
	c.dirty = true
}

// SavePNG writes the canvas content to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("ggcanvas: save %s: %w", path, err)
	}
	return nil
}

// MarkDirty flags the canvas for GPU upload on next Flush().
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty returns true if the canvas has pending changes
// that need to be uploaded to the GPU.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Flush uploads the canvas content to the GPU texture if dirty and
// returns the texture.
//
// The texture is created lazily: the first Flush returns a pending
// placeholder that RenderTo turns into a real texture. The texture keeps
// the canvas size for its whole life; hosts whose window changes size
// close the canvas and create a new one.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	// Non-fatal: CPU-rendered content is still in the pixmap.
	if err := c.ctx.FlushGPU(); err != nil {
		gg.Logger().Debug("ggcanvas: FlushGPU failed", "err", err)
	}

	data := c.ctx.ResizeTarget().Data()

	if c.texture == nil {
		c.texture = &pendingTexture{width: c.width, height: c.height, data: data}
		c.dirty = false
		return c.texture, nil
	}

	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("ggcanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing, or nil if it
// hasn't been created yet.
func (c *Canvas) Texture() any {
	return c.texture
}

// Provider returns the DeviceProvider passed at creation, or nil.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Close releases all resources associated with the Canvas.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if destroyer, ok := c.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	c.texture = nil

	var err error
	if c.ctx != nil {
		err = c.ctx.Close()
		c.ctx = nil
	}
	c.provider = nil
	return err
}

// pendingTexture holds pixel data until RenderTo has a TextureCreator.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
