// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording captures overlay drawing as typed commands.
//
// A Recorder implements the onroad Canvas interface. Instead of
// rasterizing, it stores every polygon fill and text draw in call order.
// FinishRecording returns an immutable Recording that can be inspected
// (tests, frame dumps) or replayed onto any other canvas:
//
//	rec := recording.NewRecorder(1920, 1080)
//	if err := renderer.Draw(frame, rec); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	// Later, on the render thread:
//	err := r.Playback(rasterCanvas)
//
// # Targets
//
// Packages that provide a playback target register a factory by name
// from init(), the way database/sql drivers do. Tools then pick one at
// run time with NewTarget:
//
//	import _ "github.com/gogpu/onroad/integration/ggcanvas" // registers "raster"
//
//	t, err := recording.NewTarget("raster", 1920, 1080)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is immutable and
// may be replayed from any goroutine. The target registry is safe for
// concurrent use.
package recording
