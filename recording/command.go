// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import "github.com/gogpu/gg"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillPolygon CommandType = iota // Fill a closed polygon
	CmdDrawText                       // Draw a text label
)

var commandTypeNames = [...]string{
	CmdFillPolygon: "FillPolygon",
	CmdDrawText:    "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// FillPolygonCommand fills a closed polygon with a brush.
type FillPolygonCommand struct {
	// Points are the polygon vertices in surface coordinates.
	Points []gg.Point
	// Brush is the fill, either a gg.SolidBrush or a *gg.LinearGradientBrush.
	Brush gg.Brush
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

// Color returns the fill color for solid brushes and false otherwise.
func (c FillPolygonCommand) Color() (gg.RGBA, bool) {
	if b, ok := c.Brush.(gg.SolidBrush); ok {
		return b.Color, true
	}
	return gg.RGBA{}, false
}

// DrawTextCommand draws a label centered on X with its baseline at Y.
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Color gg.RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
