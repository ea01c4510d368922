// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

var triangle = []gg.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)
	if rec.Width() != 800 {
		t.Errorf("Width() = %d, want 800", rec.Width())
	}
	if rec.Height() != 600 {
		t.Errorf("Height() = %d, want 600", rec.Height())
	}
	if n := len(rec.FinishRecording().Commands()); n != 0 {
		t.Errorf("fresh recorder has %d commands, want 0", n)
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdFillPolygon, "FillPolygon"},
		{CmdDrawText, "DrawText"},
		{CommandType(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRecorderOrder(t *testing.T) {
	rec := NewRecorder(100, 100)
	_ = rec.FillPolygon(triangle, gg.Solid(gg.Red))
	rec.DrawText("12.0 m", 5, 20, gg.White)
	_ = rec.FillPolygon(triangle, gg.Solid(gg.Blue))

	r := rec.FinishRecording()
	want := []Command{
		FillPolygonCommand{Points: triangle, Brush: gg.Solid(gg.Red)},
		DrawTextCommand{Text: "12.0 m", X: 5, Y: 20, Color: gg.White},
		FillPolygonCommand{Points: triangle, Brush: gg.Solid(gg.Blue)},
	}
	if diff := cmp.Diff(want, r.Commands()); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}
	if len(r.Fills()) != 2 || len(r.Texts()) != 1 {
		t.Errorf("Fills/Texts = %d/%d, want 2/1", len(r.Fills()), len(r.Texts()))
	}
}

func TestRecorderCopiesPoints(t *testing.T) {
	rec := NewRecorder(100, 100)
	buf := []gg.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	_ = rec.FillPolygon(buf, gg.Solid(gg.Red))
	buf[0] = gg.Pt(99, 99)

	got := rec.FinishRecording().Fills()[0].Points[0]
	if got != (gg.Point{}) {
		t.Errorf("recorded point changed with caller buffer: %v", got)
	}
}

func TestRecorderSkipsDegeneratePolygons(t *testing.T) {
	rec := NewRecorder(100, 100)
	_ = rec.FillPolygon(nil, gg.Solid(gg.Red))
	_ = rec.FillPolygon(triangle[:2], gg.Solid(gg.Red))
	if n := len(rec.FinishRecording().Commands()); n != 0 {
		t.Errorf("got %d commands, want 0", n)
	}
}

func TestFinishRecordingStartsFresh(t *testing.T) {
	rec := NewRecorder(100, 100)
	_ = rec.FillPolygon(triangle, gg.Solid(gg.Red))
	first := rec.FinishRecording()
	rec.DrawText("x", 0, 0, gg.White)
	second := rec.FinishRecording()

	if len(first.Commands()) != 1 || first.Commands()[0].Type() != CmdFillPolygon {
		t.Errorf("first recording changed: %v", first.Commands())
	}
	if len(second.Commands()) != 1 || second.Commands()[0].Type() != CmdDrawText {
		t.Errorf("second recording = %v", second.Commands())
	}
}

func TestSolidColor(t *testing.T) {
	c, ok := FillPolygonCommand{Brush: gg.Solid(gg.Red)}.Color()
	if !ok || c != gg.Red {
		t.Errorf("Color() = %v, %v; want red, true", c, ok)
	}
	if _, ok := (FillPolygonCommand{Brush: gg.NewLinearGradientBrush(0, 0, 0, 1)}).Color(); ok {
		t.Error("Color() should report false for gradients")
	}
}

// failingTarget records playback and fails every fill.
type failingTarget struct {
	*Recorder
	err error
}

func (f failingTarget) FillPolygon(pts []gg.Point, b gg.Brush) error {
	_ = f.Recorder.FillPolygon(pts, b)
	return f.err
}

func TestPlayback(t *testing.T) {
	rec := NewRecorder(64, 48)
	_ = rec.FillPolygon(triangle, gg.Solid(gg.Red))
	rec.DrawText("label", 1, 2, gg.White)
	r := rec.FinishRecording()

	dst := NewRecorder(64, 48)
	if err := r.Playback(dst); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	if diff := cmp.Diff(r.Commands(), dst.FinishRecording().Commands()); diff != "" {
		t.Errorf("replayed commands mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaybackSizeMismatch(t *testing.T) {
	r := NewRecorder(64, 48).FinishRecording()
	err := r.Playback(NewRecorder(32, 48))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Playback() = %v, want ErrSizeMismatch", err)
	}
}

func TestPlaybackJoinsFillErrors(t *testing.T) {
	rec := NewRecorder(10, 10)
	_ = rec.FillPolygon(triangle, gg.Solid(gg.Red))
	rec.DrawText("still drawn", 0, 0, gg.White)
	_ = rec.FillPolygon(triangle, gg.Solid(gg.Blue))
	r := rec.FinishRecording()

	boom := errors.New("boom")
	dst := failingTarget{Recorder: NewRecorder(10, 10), err: boom}
	err := r.Playback(dst)
	if !errors.Is(err, boom) {
		t.Fatalf("Playback() = %v, want wrapped boom", err)
	}
	if n := len(dst.FinishRecording().Commands()); n != 3 {
		t.Errorf("playback stopped early: %d commands replayed, want 3", n)
	}
}
