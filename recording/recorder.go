// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gg"
)

// Target is the surface a Recording replays onto. Its method set matches
// the onroad Canvas interface, so any canvas is a Target.
type Target interface {
	Width() int
	Height() int
	FillPolygon(pts []gg.Point, brush gg.Brush) error
	DrawText(s string, x, y float64, c gg.RGBA)
}

// ErrSizeMismatch is returned by Playback when the target surface size
// differs from the recorded one.
var ErrSizeMismatch = errors.New("recording: target size mismatch")

// Recorder captures drawing operations as commands.
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a Recorder for a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 16),
	}
}

// Width returns the width of the recorded surface.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recorded surface.
func (r *Recorder) Height() int {
	return r.height
}

// FillPolygon records a polygon fill. The points are copied, so callers
// may reuse their buffer. Polygons with fewer than three points are not
// recorded.
func (r *Recorder) FillPolygon(pts []gg.Point, brush gg.Brush) error {
	if len(pts) < 3 {
		return nil
	}
	r.commands = append(r.commands, FillPolygonCommand{
		Points: slices.Clone(pts),
		Brush:  brush,
	})
	return nil
}

// DrawText records a text draw.
func (r *Recorder) DrawText(s string, x, y float64, c gg.RGBA) {
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: x, Y: y, Color: c})
}

// Reset drops all recorded commands so the Recorder can capture the
// next frame.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns an immutable Recording of the commands so far.
// The Recorder starts a fresh command list afterwards.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
	r.commands = make([]Command, 0, cap(rec.commands))
	return rec
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recorded surface.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands in draw order.
// The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Fills returns the polygon fills in draw order.
func (r *Recording) Fills() []FillPolygonCommand {
	var out []FillPolygonCommand
	for _, c := range r.commands {
		if f, ok := c.(FillPolygonCommand); ok {
			out = append(out, f)
		}
	}
	return out
}

// Texts returns the text draws in draw order.
func (r *Recording) Texts() []DrawTextCommand {
	var out []DrawTextCommand
	for _, c := range r.commands {
		if t, ok := c.(DrawTextCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// Playback replays the recording onto t in the recorded order.
// Fill errors do not stop playback; they are joined and returned.
func (r *Recording) Playback(t Target) error {
	if t.Width() != r.width || t.Height() != r.height {
		return fmt.Errorf("%w: recorded %dx%d, target %dx%d",
			ErrSizeMismatch, r.width, r.height, t.Width(), t.Height())
	}

	var errs []error
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPolygonCommand:
			if err := t.FillPolygon(c.Points, c.Brush); err != nil {
				errs = append(errs, fmt.Errorf("recording: command %d: %w", i, err))
			}
		case DrawTextCommand:
			t.DrawText(c.Text, c.X, c.Y, c.Color)
		}
	}
	return errors.Join(errs...)
}
