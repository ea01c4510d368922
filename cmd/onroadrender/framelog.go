package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/onroad"
)

// maxLogSize caps the frame log read into memory.
const maxLogSize = 64 * 1024 * 1024

// frameLog is the on-disk form of a recorded drive: one entry per UI
// frame, each holding the latest message of every input stream.
type frameLog struct {
	Frames []frameJSON `json:"frames"`
}

type frameJSON struct {
	Vehicle     vehicleJSON     `json:"vehicle"`
	Calibration calibrationJSON `json:"calibration"`
	Model       modelJSON       `json:"model"`
	Radar       radarJSON       `json:"radar"`
	Scene       sceneJSON       `json:"scene"`
	// CarParams is only present on frames where the params were published.
	CarParams *carParamsJSON `json:"car_params,omitempty"`
}

type vehicleJSON struct {
	Alive          bool    `json:"alive"`
	VEgo           float64 `json:"v_ego"`
	VEgoCluster    float64 `json:"v_ego_cluster"`
	LeftBlindspot  bool    `json:"left_blindspot"`
	RightBlindspot bool    `json:"right_blindspot"`
}

type calibrationJSON struct {
	Alive bool `json:"alive"`
	// Transform is the row-major car-to-surface matrix.
	Transform [9]float64 `json:"transform"`
}

type curveJSON struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
	T []float64 `json:"t,omitempty"`
}

type modelJSON struct {
	Alive         bool                           `json:"alive"`
	Position      curveJSON                      `json:"position"`
	Acceleration  []float64                      `json:"acceleration"`
	LaneLines     [onroad.NumLaneLines]curveJSON `json:"lane_lines"`
	LaneLineProbs [onroad.NumLaneLines]float64   `json:"lane_line_probs"`
	RoadEdges     [onroad.NumRoadEdges]curveJSON `json:"road_edges"`
	RoadEdgeStds  [onroad.NumRoadEdges]float64   `json:"road_edge_stds"`
}

type leadJSON struct {
	DRel   float64 `json:"d_rel"`
	YRel   float64 `json:"y_rel"`
	VRel   float64 `json:"v_rel"`
	Status bool    `json:"status"`
}

type radarJSON struct {
	Alive bool                      `json:"alive"`
	Leads [onroad.NumLeads]leadJSON `json:"leads"`
}

type sceneJSON struct {
	IsMetric         bool `json:"is_metric"`
	Engaged          bool `json:"engaged"`
	SteeringPressed  bool `json:"steering_pressed"`
	ExperimentalMode bool `json:"experimental_mode"`
}

type carParamsJSON struct {
	OpenpilotLongitudinalControl bool `json:"openpilot_longitudinal_control"`
}

// errNoFrames is returned for a log without frames.
var errNoFrames = errors.New("frame log has no frames")

// loadFrameLog reads and validates a JSON frame log.
// The path must have a .json extension and the file may not exceed maxLogSize.
func loadFrameLog(path string) ([]onroad.Frame, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("frame log must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat frame log: %w", err)
	}
	if fileInfo.Size() > maxLogSize {
		return nil, fmt.Errorf("frame log too large: %d bytes (max %d)", fileInfo.Size(), maxLogSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame log: %w", err)
	}

	var fl frameLog
	if err := json.Unmarshal(data, &fl); err != nil {
		return nil, fmt.Errorf("failed to parse frame log JSON: %w", err)
	}
	if err := fl.validate(); err != nil {
		return nil, fmt.Errorf("invalid frame log: %w", err)
	}

	frames := make([]onroad.Frame, len(fl.Frames))
	for i := range fl.Frames {
		frames[i] = fl.Frames[i].frame()
	}
	return frames, nil
}

func (l *frameLog) validate() error {
	if len(l.Frames) == 0 {
		return errNoFrames
	}
	for i := range l.Frames {
		if err := l.Frames[i].validate(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

func (f *frameJSON) validate() error {
	for _, v := range f.Calibration.Transform {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("calibration transform is not finite")
		}
	}
	if err := f.Model.Position.validate(); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	for i := range f.Model.LaneLines {
		if err := f.Model.LaneLines[i].validate(); err != nil {
			return fmt.Errorf("lane line %d: %w", i, err)
		}
		if p := f.Model.LaneLineProbs[i]; p < 0 || p > 1 {
			return fmt.Errorf("lane line %d: probability must be between 0 and 1, got %f", i, p)
		}
	}
	for i := range f.Model.RoadEdges {
		if err := f.Model.RoadEdges[i].validate(); err != nil {
			return fmt.Errorf("road edge %d: %w", i, err)
		}
		if s := f.Model.RoadEdgeStds[i]; s < 0 {
			return fmt.Errorf("road edge %d: std must be non-negative, got %f", i, s)
		}
	}
	return nil
}

func (c *curveJSON) validate() error {
	n := len(c.X)
	if len(c.Y) != n || len(c.Z) != n {
		return fmt.Errorf("sample count mismatch: x=%d y=%d z=%d", len(c.X), len(c.Y), len(c.Z))
	}
	if c.T != nil && len(c.T) != n {
		return fmt.Errorf("sample count mismatch: x=%d t=%d", n, len(c.T))
	}
	for i := 1; i < n; i++ {
		if c.X[i] < c.X[i-1] {
			return fmt.Errorf("forward distance decreases at sample %d", i)
		}
	}
	return nil
}

func (c *curveJSON) curve() onroad.Curve {
	return onroad.Curve{X: c.X, Y: c.Y, Z: c.Z, T: c.T}
}

func (f *frameJSON) frame() onroad.Frame {
	out := onroad.Frame{
		Vehicle: onroad.VehicleState{
			VEgo:           f.Vehicle.VEgo,
			VEgoCluster:    f.Vehicle.VEgoCluster,
			LeftBlindspot:  f.Vehicle.LeftBlindspot,
			RightBlindspot: f.Vehicle.RightBlindspot,
		},
		VehicleAlive:     f.Vehicle.Alive,
		Calibration:      onroad.Transform(f.Calibration.Transform),
		CalibrationAlive: f.Calibration.Alive,
		ModelAlive:       f.Model.Alive,
		RadarAlive:       f.Radar.Alive,
		Scene: onroad.Scene{
			IsMetric:         f.Scene.IsMetric,
			Engaged:          f.Scene.Engaged,
			SteeringPressed:  f.Scene.SteeringPressed,
			ExperimentalMode: f.Scene.ExperimentalMode,
		},
	}

	m := &out.Model
	m.Position = f.Model.Position.curve()
	m.Acceleration = f.Model.Acceleration
	for i := range f.Model.LaneLines {
		m.LaneLines[i] = f.Model.LaneLines[i].curve()
	}
	m.LaneLineProbs = f.Model.LaneLineProbs
	for i := range f.Model.RoadEdges {
		m.RoadEdges[i] = f.Model.RoadEdges[i].curve()
	}
	m.RoadEdgeStds = f.Model.RoadEdgeStds

	for i, l := range f.Radar.Leads {
		out.Radar.Leads[i] = onroad.LeadData{DRel: l.DRel, YRel: l.YRel, VRel: l.VRel, Status: l.Status}
	}

	if f.CarParams != nil {
		out.CarParamsUpdated = true
		out.CarParams.OpenpilotLongitudinalControl = f.CarParams.OpenpilotLongitudinalControl
	}
	return out
}
