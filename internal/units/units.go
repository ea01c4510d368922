// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package units provides the measurement systems used for on-screen speeds.
// Upstream vehicle state is always reported in meters per second.
package units

// System is a display measurement system.
type System uint8

const (
	// Imperial displays speeds in miles per hour.
	Imperial System = iota
	// Metric displays speeds in kilometers per hour.
	Metric
)

// Conversion factors from meters per second.
const (
	MPSToKPH = 3.6
	MPSToMPH = 2.2369362920544
)

// FromMetricFlag maps the scene's metric-units flag to a System.
func FromMetricFlag(isMetric bool) System {
	if isMetric {
		return Metric
	}
	return Imperial
}

// Factor returns the multiplier converting m/s into the system's speed unit.
func (s System) Factor() float64 {
	if s == Metric {
		return MPSToKPH
	}
	return MPSToMPH
}

// FromMPS converts a speed in m/s to the system's speed unit.
func (s System) FromMPS(v float64) float64 {
	return v * s.Factor()
}

// SpeedUnit returns the label suffix for speeds in this system.
func (s System) SpeedUnit() string {
	if s == Metric {
		return "km/h"
	}
	return "mph"
}

// String implements fmt.Stringer.
func (s System) String() string {
	switch s {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return "unknown"
	}
}
