// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// ErrNoTextureCreator is returned when the draw context has no texture
// creator to turn the pending upload into a GPU texture.
var ErrNoTextureCreator = errors.New("ggcanvas: draw context has no TextureCreator")

// RenderTo draws the canvas content at the top-left corner of dc.
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition draws the canvas content with its top-left corner at
// (x, y) in window pixels.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("ggcanvas: NewTextureFromRGBA failed: %w", err)
		}
		// gg pixmaps hold premultiplied alpha.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		c.texture = realTex
		tex = realTex
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return fmt.Errorf("ggcanvas: texture %T is not a gpucontext.Texture", tex)
	}
	return dc.DrawTexture(gpuTex, x, y)
}
