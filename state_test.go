package onroad

import (
	"testing"

	"github.com/gogpu/onroad/internal/units"
)

func TestRenderStateSpeed(t *testing.T) {
	tests := []struct {
		name   string
		vs     VehicleState
		alive  bool
		system units.System
		want   float64
	}{
		{"metric", VehicleState{VEgo: 10}, true, units.Metric, 36},
		{"imperial", VehicleState{VEgo: 10}, true, units.Imperial, 22.369362920544},
		{"cluster speed wins", VehicleState{VEgo: 10, VEgoCluster: 5}, true, units.Metric, 18},
		{"not alive", VehicleState{VEgo: 10}, false, units.Metric, 0},
		{"negative", VehicleState{VEgo: -3}, true, units.Metric, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s RenderState
			s.UpdateVehicle(tt.vs, tt.alive, tt.system)
			if !approxEqual(s.Speed(), tt.want) {
				t.Errorf("Speed() = %v, want %v", s.Speed(), tt.want)
			}
			if s.Units() != tt.system {
				t.Errorf("Units() = %v, want %v", s.Units(), tt.system)
			}
		})
	}
}

func TestRenderStateClusterSpeedLatches(t *testing.T) {
	var s RenderState
	s.UpdateVehicle(VehicleState{VEgo: 10}, true, units.Metric)
	if s.ClusterSpeedSeen() {
		t.Fatal("cluster speed seen before any non-zero value")
	}

	s.UpdateVehicle(VehicleState{VEgo: 10, VEgoCluster: 9}, true, units.Metric)
	if !s.ClusterSpeedSeen() {
		t.Fatal("cluster speed not latched")
	}

	// Cluster speed drops to zero: the latch holds and VEgo is ignored.
	s.UpdateVehicle(VehicleState{VEgo: 10}, true, units.Metric)
	if !s.ClusterSpeedSeen() {
		t.Error("cluster latch was cleared")
	}
	if s.Speed() != 0 {
		t.Errorf("Speed() = %v, want 0 from the cluster source", s.Speed())
	}
}

func TestRenderStateBlindspots(t *testing.T) {
	var s RenderState
	s.UpdateVehicle(VehicleState{LeftBlindspot: true}, true, units.Metric)
	if l, r := s.Blindspots(); !l || r {
		t.Errorf("Blindspots() = %v, %v; want true, false", l, r)
	}
	s.UpdateVehicle(VehicleState{RightBlindspot: true}, false, units.Metric)
	if l, r := s.Blindspots(); l || !r {
		t.Errorf("Blindspots() = %v, %v; want false, true", l, r)
	}
}
