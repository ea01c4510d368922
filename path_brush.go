package onroad

import (
	"math"
	"sort"

	"github.com/gogpu/gg"
)

// PathMode selects how the trajectory ribbon is colored.
type PathMode uint8

const (
	// PathNeutral is a white fade used while the system is not engaged.
	PathNeutral PathMode = iota
	// PathSteeringOverride signals that the driver is steering while engaged.
	PathSteeringOverride
	// PathAcceleration encodes the planned acceleration along the path.
	PathAcceleration
)

// String implements fmt.Stringer.
func (m PathMode) String() string {
	switch m {
	case PathNeutral:
		return "Neutral"
	case PathSteeringOverride:
		return "SteeringOverride"
	case PathAcceleration:
		return "Acceleration"
	default:
		return "Unknown"
	}
}

// PathModeFor picks the trajectory coloring for the scene flags.
func PathModeFor(s Scene) PathMode {
	switch {
	case !s.Engaged:
		return PathNeutral
	case s.SteeringPressed:
		return PathSteeringOverride
	default:
		return PathAcceleration
	}
}

// Acceleration gradient shape.
const (
	hueNeutral     = 60.0 // zero acceleration
	huePerAccel    = 35.0 // degrees per m/s²
	hueMax         = 120.0
	satPerAccel    = 1.5
	lightGrey      = 0.95
	lightSaturated = 0.62
	fadeStart      = 0.75 / 2
	fadeEnd        = 0.75
	fadeAlpha      = 0.4
)

// PathBrush returns the vertical gradient used to fill the trajectory
// ribbon on a surface of the given height. The gradient runs from the
// bottom of the surface (offset 0) to the top (offset 1).
//
// In PathAcceleration mode the stops come from the ribbon's near rail,
// walked from the vehicle outward, with every other sample skipped to
// bound the stop count. accel is indexed by curve sample, so a stop
// always uses the acceleration of the sample that produced its vertex.
// Points outside [0, height] are not used as stops.
//
// With quantizeHue set, hues snap to hundredths of a full turn (3.6°
// steps), so nearby accelerations produce identical stops.
func PathBrush(mode PathMode, rib Ribbon, accel []float64, height float64, quantizeHue bool) *gg.LinearGradientBrush {
	bg := gg.NewLinearGradientBrush(0, height, 0, 0)

	switch mode {
	case PathNeutral:
		return bg.AddColorStop(0, whiteColor(100)).
			AddColorStop(0.5, whiteColor(50)).
			AddColorStop(1, whiteColor(0))
	case PathSteeringOverride:
		return bg.AddColorStop(0, steeringPressedColor(100)).
			AddColorStop(0.5, steeringPressedColor(50)).
			AddColorStop(1, steeringPressedColor(0))
	}

	if height <= 0 {
		return bg
	}
	// Samples is increasing, so this counts the vertices with an
	// acceleration value.
	n := sort.SearchInts(rib.Samples, len(accel))
	for i := 0; i < n; i++ {
		y := rib.Near[i].Y
		if y < 0 || y > height {
			continue
		}
		offset := (height - y) / height
		bg.AddColorStop(offset, accelColor(accel[rib.Samples[i]], offset, quantizeHue))

		// Skip a point, unless the next one is the last.
		if i+2 < n {
			i++
		}
	}
	return bg
}

// accelColor maps an acceleration and a gradient offset to a stop color.
// Hue grows with acceleration from 0 (braking hard) to 120 (accelerating
// hard); near-zero acceleration is desaturated toward grey, and alpha
// fades out toward the top of the surface.
func accelColor(a, offset float64, quantizeHue bool) gg.RGBA {
	hue := clamp(hueNeutral+a*huePerAccel, 0, hueMax)
	if quantizeHue {
		hue = snapHue(hue)
	}
	sat := min(math.Abs(a*satPerAccel), 1)
	light := mapValue(sat, 0, 1, lightGrey, lightSaturated)
	alpha := mapValue(offset, fadeStart, fadeEnd, fadeAlpha, 0)
	return hsla(hue, sat, light, alpha)
}

// snapHue rounds a hue in degrees to hundredths of a full turn.
func snapHue(deg float64) float64 {
	return math.Round(deg/360*100) / 100 * 360
}
