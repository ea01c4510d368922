package onroad

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/onroad/internal/units"
)

// RenderState is the state the renderer carries from one frame to the
// next. It is owned by a single ModelRenderer and only mutated from the
// render thread.
type RenderState struct {
	speed          float64
	units          units.System
	leftBlindspot  bool
	rightBlindspot bool

	// clusterSpeedSeen latches on the first non-zero cluster speed of the
	// session and is never cleared. Older logs carry no cluster speed.
	clusterSpeedSeen bool

	longitudinalControl bool
	experimentalMode    bool

	laneLineProbs [NumLaneLines]float64
	roadEdgeStds  [NumRoadEdges]float64

	// Lead anchors per radar slot. A slot keeps its last anchor while the
	// lead is invalid; it is only drawn when the lead is valid.
	leadAnchors [NumLeads]gg.Point
	leadVisible [NumLeads]bool
}

// UpdateVehicle refreshes the display speed and blind-spot flags from a
// vehicle-state snapshot. When alive is false the display speed is zero
// rather than a stale value.
func (s *RenderState) UpdateVehicle(vs VehicleState, alive bool, system units.System) {
	s.clusterSpeedSeen = s.clusterSpeedSeen || vs.VEgoCluster != 0
	v := vs.VEgo
	if s.clusterSpeedSeen {
		v = vs.VEgoCluster
	}

	s.units = system
	s.speed = 0
	if alive {
		s.speed = max(0, system.FromMPS(v))
	}

	s.leftBlindspot = vs.LeftBlindspot
	s.rightBlindspot = vs.RightBlindspot
}

// Speed returns the last display speed in the active unit system.
func (s *RenderState) Speed() float64 { return s.speed }

// Units returns the unit system of the last update.
func (s *RenderState) Units() units.System { return s.units }

// ClusterSpeedSeen reports whether a non-zero cluster speed has been
// observed in this session.
func (s *RenderState) ClusterSpeedSeen() bool { return s.clusterSpeedSeen }

// Blindspots returns the left and right blind-spot flags.
func (s *RenderState) Blindspots() (left, right bool) {
	return s.leftBlindspot, s.rightBlindspot
}

// LongitudinalControl reports the cached car capability flag.
func (s *RenderState) LongitudinalControl() bool { return s.longitudinalControl }

// ExperimentalMode reports the experimental-mode flag of the last drawn frame.
func (s *RenderState) ExperimentalMode() bool { return s.experimentalMode }

// LaneLineProb returns the cached probability of lane line i.
func (s *RenderState) LaneLineProb(i int) float64 { return s.laneLineProbs[i] }

// RoadEdgeStd returns the cached uncertainty of road edge i.
func (s *RenderState) RoadEdgeStd(i int) float64 { return s.roadEdgeStds[i] }

// LeadAnchor returns the cached anchor of lead slot i and whether it
// projected in front of the camera.
func (s *RenderState) LeadAnchor(i int) (gg.Point, bool) {
	return s.leadAnchors[i], s.leadVisible[i]
}
