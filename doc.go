// Package onroad renders the driving-path overlay of an onroad camera view.
//
// # Overview
//
// Every frame, perception publishes the planned trajectory, lane lines,
// road edges and tracked leads as 3D curves in car space. onroad projects
// them through the frame's camera transform and paints closed 2D polygons
// and text onto a Canvas, at the host's draw rate (about 20 Hz).
//
//	r := onroad.NewModelRenderer()
//	for f := range frames {
//	    if err := r.Draw(f, canvas); err != nil {
//	        log.Printf("draw: %v", err)
//	    }
//	}
//
// # Pipeline
//
// Draw runs four steps in order, synchronously, on the caller's goroutine:
//
//   - State sampling: display speed (km/h or mph), blind-spot flags and
//     cached car capabilities (RenderState).
//   - Projection: car space (forward, lateral, height) to surface space with
//     a perspective divide (Project, ToSurface, ClipRegion).
//   - Ribbon building: every curve is truncated to a distance budget
//     (PathLengthIndex) and widened into two rails (BuildRibbon).
//   - Compositing: lane lines, blind-spot barriers, road edges, the
//     trajectory (PathBrush) and lead glyphs (LeadGlyph), in that order.
//
// # Coordinate System
//
// Car space: X forward, Y lateral, Z up, in meters. Surface space follows
// gg: origin at top-left, X right, Y down, in pixels.
//
// # Staleness
//
// A frame whose calibration or model stream is not live is left blank;
// a frame without live radar is drawn without lead glyphs. Nothing in the
// geometry path returns an error: invisible geometry is dropped instead.
package onroad
