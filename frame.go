package onroad

// Frame is the immutable per-frame snapshot of every upstream stream the
// renderer reads. The renderer never mutates a Frame and never keeps a
// reference to it (or to its slices) past the Draw call.
//
// The *Alive flags carry stream liveness: a stream that is not alive is
// treated as absent for this frame.
type Frame struct {
	Vehicle      VehicleState
	VehicleAlive bool

	// Calibration maps car space (forward, lateral, height) into surface
	// coordinates. It is refreshed whenever calibration updates.
	Calibration      Transform
	CalibrationAlive bool

	Model      ModelOutput
	ModelAlive bool

	Radar      RadarState
	RadarAlive bool

	Scene Scene

	// CarParams is only consulted when CarParamsUpdated is set.
	CarParams        CarParams
	CarParamsUpdated bool
}

// VehicleState holds the vehicle-state signals used for display.
// Speeds are in meters per second.
type VehicleState struct {
	VEgo           float64 // raw estimated speed
	VEgoCluster    float64 // instrument-cluster speed; zero on logs that predate it
	LeftBlindspot  bool
	RightBlindspot bool
}

// Number of curve slots in a model output.
const (
	NumLaneLines = 4
	NumRoadEdges = 2
	NumLeads     = 2
)

// ModelOutput is the per-frame perception output.
type ModelOutput struct {
	// Position is the planned trajectory.
	Position Curve
	// Acceleration holds the planned longitudinal acceleration (m/s²),
	// aligned with the Position samples.
	Acceleration []float64

	LaneLines     [NumLaneLines]Curve
	LaneLineProbs [NumLaneLines]float64

	RoadEdges    [NumRoadEdges]Curve
	RoadEdgeStds [NumRoadEdges]float64
}

// LeadData describes one tracked vehicle ahead.
type LeadData struct {
	DRel   float64 // longitudinal distance, meters
	YRel   float64 // lateral offset, meters, radar convention (negated in car space)
	VRel   float64 // relative velocity, m/s, negative when closing
	Status bool    // true when the target is valid
}

// RadarState carries the two lead slots: slot 0 is the nearest lead in the
// ego lane, slot 1 the nearest in the second category.
type RadarState struct {
	Leads [NumLeads]LeadData
}

// LeadOne returns slot 0.
func (r RadarState) LeadOne() LeadData { return r.Leads[0] }

// LeadTwo returns slot 1.
func (r RadarState) LeadTwo() LeadData { return r.Leads[1] }

// Scene holds the session flags supplied by the host.
type Scene struct {
	IsMetric         bool
	Engaged          bool
	SteeringPressed  bool
	ExperimentalMode bool
}

// CarParams holds static vehicle capabilities.
type CarParams struct {
	OpenpilotLongitudinalControl bool
}
