// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vectorcanvas provides a CPU-only onroad.Canvas backed by the
// rasterx scanline filler and an in-memory image.RGBA.
//
// It needs no GPU and no gg.Context, which makes it suitable for headless
// replay of frame logs and for comparing output against the gg raster
// canvas in integration/ggcanvas.
//
// # Usage
//
//	c, err := vectorcanvas.New(1920, 1080)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	if err := renderer.Draw(frame, c); err != nil {
//	    log.Printf("draw: %v", err)
//	}
//	return c.SavePNG("frame.png")
//
// # Brushes
//
// Solid brushes become uniform colors and linear gradients become rasterx
// gradients in user space. Any other gg brush is sampled per pixel through
// its ColorAt method.
//
// # Targets
//
// Importing the package registers the "vector" playback target with the
// recording package.
package vectorcanvas
