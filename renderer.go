package onroad

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/onroad/internal/label"
	"github.com/gogpu/onroad/internal/units"
)

// Errors returned by Draw for invalid arguments.
var (
	ErrNilFrame  = errors.New("onroad: nil frame")
	ErrNilCanvas = errors.New("onroad: nil canvas")
)

// Ribbon geometry, in meters.
const (
	laneLineHalfWidth = 0.025 // scaled by the line probability
	roadEdgeHalfWidth = 0.025
	trackHalfWidth    = 0.8
	trackHeight       = 1.22

	barrierHalfWidth  = 0.2
	barrierHeightNear = -0.05
	barrierHeightFar  = 1.2
	barrierDistance   = 40.0

	// The path stops short of a lead: at twice its distance minus a
	// buffer of 35% of that, capped at 10 m.
	leadPathScale     = 2.0
	leadPathBuffer    = 0.35
	leadPathMaxBuffer = 10.0
)

// ModelRenderer turns per-frame model output into overlay fills.
//
// A ModelRenderer keeps state between frames (see RenderState) and is
// not safe for concurrent use; drive it from the render loop only.
type ModelRenderer struct {
	opts   rendererOptions
	labels *label.Formatter
	state  RenderState

	clip      ClipRegion
	laneLines [NumLaneLines]Ribbon
	barriers  [2]Ribbon // left, right
	roadEdges [NumRoadEdges]Ribbon
	track     Ribbon
}

// NewModelRenderer returns a renderer with a fresh session state.
func NewModelRenderer(opts ...Option) *ModelRenderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ModelRenderer{
		opts:   o,
		labels: label.New(o.language),
	}
}

// State returns the renderer's cross-frame state.
func (r *ModelRenderer) State() *RenderState {
	return &r.state
}

// UpdateState samples the vehicle-state stream and the car params.
// Draw calls it first; hosts that skip drawing for a frame may call it
// directly to keep the cached flags current.
func (r *ModelRenderer) UpdateState(f *Frame) {
	if f.CarParamsUpdated {
		r.state.longitudinalControl = f.CarParams.OpenpilotLongitudinalControl
	}
	r.state.UpdateVehicle(f.Vehicle, f.VehicleAlive, units.FromMetricFlag(f.Scene.IsMetric))
}

// Draw renders one frame onto c in fixed order: lane lines, blind-spot
// barriers, road edges, the trajectory, then lead glyphs.
//
// When calibration or model output is not live the frame is left blank:
// only the cached state is updated. Lead glyphs are skipped when radar
// is not live. Errors reported by the canvas are collected and returned
// after the whole frame has been issued.
func (r *ModelRenderer) Draw(f *Frame, c Canvas) error {
	if f == nil {
		return ErrNilFrame
	}
	if c == nil {
		return ErrNilCanvas
	}

	r.UpdateState(f)
	if !f.CalibrationAlive || !f.ModelAlive {
		Logger().Debug("onroad: skipping stale frame",
			"calibration", f.CalibrationAlive, "model", f.ModelAlive)
		return nil
	}

	width, height := float64(c.Width()), float64(c.Height())
	r.clip = NewClipRegion(width, height, r.opts.clipMargin)
	r.state.experimentalMode = f.Scene.ExperimentalMode

	// The track is foreshortened by the last radar sample even while the
	// radar stream is down; only the lead glyphs depend on RadarAlive.
	r.updateModel(f, f.Radar.LeadOne())

	var errs []error
	errs = append(errs, r.drawLaneLines(c)...)
	errs = append(errs, r.drawPath(c, f, height))

	if f.RadarAlive && (!r.opts.leadsRequireLongitudinal || r.state.longitudinalControl) {
		r.updateLeads(f)
		for _, i := range leadSlotsToDraw(f.Radar) {
			errs = append(errs, r.drawLead(c, i, f.Radar.Leads[i], width, height))
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		Logger().Warn("onroad: canvas reported errors", "err", err)
	}
	return err
}

// updateModel rebuilds every ribbon for the frame.
func (r *ModelRenderer) updateModel(f *Frame, lead LeadData) {
	t := f.Calibration
	m := &f.Model

	maxDistance := clamp(m.Position.LastX(), r.opts.minDrawDistance, r.opts.maxDrawDistance)

	// One truncation index, from lane line 0, serves every line and edge.
	maxIdx := PathLengthIndex(m.LaneLines[0], maxDistance)
	for i := range m.LaneLines {
		r.state.laneLineProbs[i] = m.LaneLineProbs[i]
		r.laneLines[i] = BuildRibbon(t, r.clip, m.LaneLines[i], RibbonSpec{
			HalfWidth: laneLineHalfWidth * m.LaneLineProbs[i],
			MaxIndex:  maxIdx,
			Inversion: RejectInversion,
		})
	}

	// Blind-spot barriers stand on the ego lane's lines.
	barrierIdx := min(maxIdx, PathLengthIndex(m.LaneLines[0], min(maxDistance, barrierDistance)))
	for side, line := range [2]int{1, 2} {
		r.barriers[side] = BuildRibbon(t, r.clip, m.LaneLines[line], RibbonSpec{
			HalfWidth:  barrierHalfWidth,
			HeightNear: barrierHeightNear,
			HeightFar:  barrierHeightFar,
			MaxIndex:   barrierIdx,
			Inversion:  RejectInversion,
		})
	}

	for i := range m.RoadEdges {
		r.state.roadEdgeStds[i] = m.RoadEdgeStds[i]
		r.roadEdges[i] = BuildRibbon(t, r.clip, m.RoadEdges[i], RibbonSpec{
			HalfWidth: roadEdgeHalfWidth,
			MaxIndex:  maxIdx,
			Inversion: RejectInversion,
		})
	}

	r.track = BuildRibbon(t, r.clip, m.Position, RibbonSpec{
		HalfWidth:  trackHalfWidth,
		HeightNear: trackHeight,
		HeightFar:  trackHeight,
		MaxIndex:   PathLengthIndex(m.Position, TrackDistance(maxDistance, lead)),
		Inversion:  r.opts.trackInversion,
	})
}

// TrackDistance returns the distance budget of the trajectory ribbon.
// Without a valid lead it is the reachable distance; with one, the path
// is foreshortened to stop before the lead and never exceeds reachable.
func TrackDistance(reachable float64, lead LeadData) float64 {
	if !lead.Status {
		return reachable
	}
	d := lead.DRel * leadPathScale
	return clamp(d-min(d*leadPathBuffer, leadPathMaxBuffer), 0, reachable)
}

func (r *ModelRenderer) drawLaneLines(c Canvas) []error {
	var errs []error
	for i, rib := range r.laneLines {
		errs = append(errs, fillRibbon(c, rib, gg.Solid(laneLineColor(r.state.laneLineProbs[i])), "lane line", i))
	}

	left, right := r.state.Blindspots()
	if left {
		errs = append(errs, fillRibbon(c, r.barriers[0], gg.Solid(blindspotColor), "left barrier", 0))
	}
	if right {
		errs = append(errs, fillRibbon(c, r.barriers[1], gg.Solid(blindspotColor), "right barrier", 1))
	}

	for i, rib := range r.roadEdges {
		errs = append(errs, fillRibbon(c, rib, gg.Solid(roadEdgeColor(r.state.roadEdgeStds[i])), "road edge", i))
	}
	return errs
}

func (r *ModelRenderer) drawPath(c Canvas, f *Frame, height float64) error {
	brush := PathBrush(PathModeFor(f.Scene), r.track, f.Model.Acceleration, height, r.opts.quantizeHue)
	return fillRibbon(c, r.track, brush, "track", 0)
}

// updateLeads refreshes the anchor of every valid lead slot. The anchor
// sits above the path surface at the lead's distance.
func (r *ModelRenderer) updateLeads(f *Frame) {
	path := f.Model.Position
	for i, lead := range f.Radar.Leads {
		if !lead.Status {
			continue
		}
		z := heightAt(path, lead.DRel)
		p, ok := ToSurface(f.Calibration, lead.DRel, -lead.YRel, z+leadHeight)
		if !ok {
			Logger().Debug("onroad: lead behind camera plane", "slot", i, "dRel", lead.DRel)
		}
		r.state.leadAnchors[i] = p
		r.state.leadVisible[i] = ok
	}
}

func (r *ModelRenderer) drawLead(c Canvas, slot int, lead LeadData, width, height float64) error {
	anchor, ok := r.state.LeadAnchor(slot)
	if !ok {
		return nil
	}
	g := NewLeadGlyph(lead, anchor, width, height)

	var errs []error
	if err := c.FillPolygon(g.Glow[:], gg.Solid(glowColor)); err != nil {
		errs = append(errs, fmt.Errorf("onroad: lead %d glow: %w", slot, err))
	}
	if err := c.FillPolygon(g.Chevron[:], gg.Solid(g.ChevronColor())); err != nil {
		errs = append(errs, fmt.Errorf("onroad: lead %d chevron: %w", slot, err))
	}

	system := r.state.Units()
	speed := r.state.Speed() + system.FromMPS(lead.VRel)
	c.DrawText(r.labels.Distance(lead.DRel), g.DistanceLabel.X, g.DistanceLabel.Y, g.DistanceColor)
	c.DrawText(r.labels.Speed(speed, system), g.SpeedLabel.X, g.SpeedLabel.Y, g.SpeedColor)
	return errors.Join(errs...)
}

// fillRibbon fills a ribbon's loop; empty ribbons are a no-op.
func fillRibbon(c Canvas, rib Ribbon, brush gg.Brush, what string, i int) error {
	if rib.Empty() {
		return nil
	}
	if err := c.FillPolygon(rib.Loop(), brush); err != nil {
		return fmt.Errorf("onroad: fill %s %d: %w", what, i, err)
	}
	return nil
}
