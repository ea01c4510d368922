package onroad

import (
	"math"

	"github.com/gogpu/gg"
)

// Lead glyph tuning.
const (
	leadBuff        = 40.0   // distance below which the chevron starts to fill, m
	speedBuff       = 10.0   // closing speed that adds a full alpha, m/s
	leadHeight      = 1.22   // anchor height above the path, m
	leadPairMinGap  = 3.0    // second lead is only drawn past this gap, m
	fastClosing     = 4.4704 // 10 mph in m/s
	labelAlpha      = 150
	distLabelOffset = 70.0
	speedLabelGap   = 50.0
)

// LeadGlyph is the resolved geometry and colors of one lead marker.
type LeadGlyph struct {
	// Pos is the chevron tip after clamping to the surface.
	Pos  gg.Point
	Size float64

	Glow    [3]gg.Point
	Chevron [3]gg.Point
	// FillAlpha is the chevron opacity on the 0-255 scale.
	FillAlpha float64

	DistanceLabel gg.Point
	SpeedLabel    gg.Point
	DistanceColor gg.RGBA
	SpeedColor    gg.RGBA
}

// LeadFillAlpha returns the chevron opacity (0-255) for a lead at
// distance d closing at relative velocity v. Leads past 40 m are
// transparent; nearer leads fill in with proximity and closing speed.
func LeadFillAlpha(d, v float64) float64 {
	if d >= leadBuff {
		return 0
	}
	alpha := 255 * (1 - d/leadBuff)
	if v < 0 {
		alpha += 255 * (-v / speedBuff)
	}
	return math.Trunc(min(alpha, 255))
}

// LeadGlyphSize returns the glyph size for a lead at distance d.
// Nearer leads get bigger glyphs, within fixed bounds.
func LeadGlyphSize(d float64) float64 {
	return clamp(750/(d/3+30), 15, 30) * 2.35
}

// NewLeadGlyph lays out the marker for lead anchored at its projected
// position on a surface of the given size.
func NewLeadGlyph(lead LeadData, anchor gg.Point, width, height float64) LeadGlyph {
	sz := LeadGlyphSize(lead.DRel)
	x := min(max(anchor.X, 0), width-sz/2)
	y := min(anchor.Y, height-sz*0.6)

	gxo := sz / 5
	gyo := sz / 10

	g := LeadGlyph{
		Pos:  gg.Pt(x, y),
		Size: sz,
		Glow: [3]gg.Point{
			{X: x + sz*1.35 + gxo, Y: y + sz + gyo},
			{X: x, Y: y - gyo},
			{X: x - sz*1.35 - gxo, Y: y + sz + gyo},
		},
		Chevron: [3]gg.Point{
			{X: x + sz*1.25, Y: y + sz},
			{X: x, Y: y},
			{X: x - sz*1.25, Y: y + sz},
		},
		FillAlpha:     LeadFillAlpha(lead.DRel, lead.VRel),
		DistanceLabel: gg.Pt(x, y+sz/1.5+distLabelOffset),
		SpeedLabel:    gg.Pt(x, y+sz/1.5+distLabelOffset+speedLabelGap),
	}

	switch {
	case lead.DRel < 5:
		g.DistanceColor = redColor(labelAlpha)
	case lead.DRel < 15:
		g.DistanceColor = orangeColor(labelAlpha)
	default:
		g.DistanceColor = whiteColor(labelAlpha)
	}

	switch {
	case lead.VRel < -fastClosing:
		g.SpeedColor = redColor(labelAlpha)
	case lead.VRel < 0:
		g.SpeedColor = orangeColor(labelAlpha)
	default:
		g.SpeedColor = pinkColor(labelAlpha)
	}
	return g
}

// ChevronColor returns the chevron fill.
func (g LeadGlyph) ChevronColor() gg.RGBA {
	return redColor(g.FillAlpha)
}

// leadSlotsToDraw returns which radar slots get a glyph. Slot 1 is
// dropped when it sits within 3 m of slot 0, as both glyphs would
// overlap.
func leadSlotsToDraw(r RadarState) []int {
	slots := make([]int, 0, NumLeads)
	one, two := r.LeadOne(), r.LeadTwo()
	if one.Status {
		slots = append(slots, 0)
	}
	if two.Status && math.Abs(one.DRel-two.DRel) > leadPairMinGap {
		slots = append(slots, 1)
	}
	return slots
}
