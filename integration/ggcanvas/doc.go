// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas rasterizes the onroad overlay with gg.
//
// Canvas implements onroad.Canvas on top of a gg.Context. Polygons are
// filled with the context's rasterizer (software, or the GPU accelerator
// when one is registered) and labels are drawn with the Go Bold face.
// The data flow is:
//
//	ModelRenderer.Draw -> gg.Context (draw) -> Pixmap (CPU) -> PNG or GPU Texture
//
// # Usage
//
// Headless, writing one PNG per frame:
//
//	canvas, err := ggcanvas.New(1920, 1080)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	canvas.Clear()
//	if err := renderer.Draw(frame, canvas); err != nil {
//	    log.Printf("draw: %v", err)
//	}
//	err = canvas.SavePNG("frame.png")
//
// Inside a gogpu window, sharing the window's device with gg:
//
//	canvas, err := ggcanvas.New(w, h, ggcanvas.WithDeviceProvider(app.GPUContextProvider()))
//	...
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// Importing the package registers a "raster" playback target with the
// recording package.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
package ggcanvas
