// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package label formats the text annotations drawn next to lead glyphs.
// Numbers follow the conventions of the configured display language.
package label

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/onroad/internal/units"
)

// Formatter renders distance and speed strings for one display language.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for the given language.
// language.Und falls back to English number formatting.
func New(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = language.English
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Language returns the formatter's display language.
func (f *Formatter) Language() language.Tag {
	return f.tag
}

// Distance formats a distance in meters with one decimal, e.g. "12.3 m".
func (f *Formatter) Distance(meters float64) string {
	return f.printer.Sprintf("%.1f m", meters)
}

// Speed formats a speed already expressed in the system's unit with no
// decimals, e.g. "54 km/h".
func (f *Formatter) Speed(v float64, system units.System) string {
	return f.printer.Sprintf("%.0f %s", v, system.SpeedUnit())
}
