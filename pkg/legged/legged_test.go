package legged

import (
	"errors"
	"math"
	"testing"

	"github.com/teslashibe/go-strider/pkg/energy"
	"github.com/teslashibe/go-strider/pkg/kinematics"
	"github.com/teslashibe/go-strider/pkg/robot"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func mustMobility(t *testing.T, legs int) *Mobility {
	t.Helper()
	m, err := NewMobility(legs)
	if err != nil {
		t.Fatalf("NewMobility(%d) error = %v", legs, err)
	}
	return m
}

func TestNewMobility(t *testing.T) {
	for _, legs := range []int{2, 4, 6, 8, 10, 100} {
		if _, err := NewMobility(legs); err != nil {
			t.Errorf("NewMobility(%d) error = %v, want nil", legs, err)
		}
	}

	for _, legs := range []int{-4, -1, 0, 1, 3, 5, 7} {
		if _, err := NewMobility(legs); !errors.Is(err, ErrInvalidLegCount) {
			t.Errorf("NewMobility(%d) error = %v, want ErrInvalidLegCount", legs, err)
		}
	}
}

func TestSpeedFactor(t *testing.T) {
	tests := []struct {
		legs int
		want float64
	}{
		{2, 0.8},
		{4, 1.0},
		{6, 1.2},
		{8, 1.1},
		{10, 0.7},
		{12, 0.7},
		{100, 0.7},
	}

	for _, tt := range tests {
		m := mustMobility(t, tt.legs)
		if got := m.SpeedFactor(); got != tt.want {
			t.Errorf("SpeedFactor(%d legs) = %v, want %v", tt.legs, got, tt.want)
		}
	}
}

func TestMoveCost(t *testing.T) {
	tests := []struct {
		legs     int
		distance float64
		want     float64
	}{
		{4, 5, 5 * 0.1 * 1.2},  // 0.6
		{4, 2, 2 * 0.1 * 1.2},  // 0.24
		{2, 10, 10 * 0.1 * 1.1},
		{6, 1, 0.1 * 1.3},
		{8, 0, 0},
	}

	for _, tt := range tests {
		m := mustMobility(t, tt.legs)
		if got := m.MoveCost(tt.distance); !floatEquals(got, tt.want) {
			t.Errorf("MoveCost(%d legs, %v) = %v, want %v", tt.legs, tt.distance, got, tt.want)
		}
	}
}

func TestMoveCost_Monotonic(t *testing.T) {
	// Non-decreasing in distance for fixed legs
	m := mustMobility(t, 6)
	prev := -1.0
	for d := 0.0; d <= 10; d += 0.5 {
		cost := m.MoveCost(d)
		if cost < prev {
			t.Fatalf("MoveCost not monotonic in distance at %v: %v < %v", d, cost, prev)
		}
		prev = cost
	}

	// Non-decreasing in legs for fixed distance
	prev = -1.0
	for legs := 2; legs <= 20; legs += 2 {
		cost := mustMobility(t, legs).MoveCost(7)
		if cost < prev {
			t.Fatalf("MoveCost not monotonic in legs at %d: %v < %v", legs, cost, prev)
		}
		prev = cost
	}
}

func TestRotateCost(t *testing.T) {
	// Four legs: stability 4/6, cost = |angle| * 10 / (4/6) = |angle| * 15
	m := mustMobility(t, 4)
	if got := m.RotateCost(1); !floatEquals(got, 15) {
		t.Errorf("RotateCost(4 legs, 1) = %v, want 15", got)
	}
	if got := m.RotateCost(-1); !floatEquals(got, 15) {
		t.Errorf("RotateCost(4 legs, -1) = %v, want 15 (sign-independent)", got)
	}

	// Stability caps at 1 for six or more legs
	for _, legs := range []int{6, 8, 12} {
		if got := mustMobility(t, legs).RotateCost(2); !floatEquals(got, 20) {
			t.Errorf("RotateCost(%d legs, 2) = %v, want 20", legs, got)
		}
	}
}

func TestStopCost(t *testing.T) {
	// Two legs: efficiency 1/2, cost = 10
	if got := mustMobility(t, 2).StopCost(); !floatEquals(got, 10) {
		t.Errorf("StopCost(2 legs) = %v, want 10", got)
	}

	// Efficiency caps at 1 for four or more legs
	for _, legs := range []int{4, 6, 8} {
		if got := mustMobility(t, legs).StopCost(); !floatEquals(got, 5) {
			t.Errorf("StopCost(%d legs) = %v, want 5", legs, got)
		}
	}
}

func TestChargeBoost(t *testing.T) {
	m := mustMobility(t, 6)
	if got := m.ChargeBoost(energy.Solar); !floatEquals(got, 12) {
		t.Errorf("ChargeBoost(solar) = %v, want 12", got)
	}
	if got := m.ChargeBoost(energy.Electric); !floatEquals(got, 6) {
		t.Errorf("ChargeBoost(electric) = %v, want 6", got)
	}
	if got := m.ChargeBoost(energy.FossilFuel); !floatEquals(got, 0) {
		t.Errorf("ChargeBoost(fossil_fuel) = %v, want 0", got)
	}
}

func TestGait(t *testing.T) {
	tests := []struct {
		legs int
		want string
	}{
		{2, "bipedal"},
		{4, "quadrupedal"},
		{6, "hexapedal"},
		{8, "octopedal"},
		{10, "multi-legged"},
	}

	for _, tt := range tests {
		if got := mustMobility(t, tt.legs).Gait(); got != tt.want {
			t.Errorf("Gait(%d legs) = %q, want %q", tt.legs, got, tt.want)
		}
	}
}

// TestQuadrupedMission drives a four-legged robot through a short
// mission: inactive no-op, then forward 5, then right 2.
func TestQuadrupedMission(t *testing.T) {
	m := mustMobility(t, 4)
	r, err := robot.New(robot.Config{
		Name:     "Scout-1",
		Capacity: 100,
	}, m)
	if err != nil {
		t.Fatalf("robot.New() error = %v", err)
	}

	// Inactive: move is a no-op, not an error
	executed, err := r.Move(kinematics.Forward, 5)
	if err != nil {
		t.Fatalf("inactive Move() error = %v", err)
	}
	if executed {
		t.Error("inactive Move() reported executed")
	}
	if pos := r.Position(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("inactive move changed position to (%v, %v)", pos.X, pos.Y)
	}
	if !floatEquals(r.Energy(), 100) {
		t.Errorf("inactive move drained energy to %v", r.Energy())
	}

	r.Activate()

	// forward 5: speed factor 1.0, cost 5*0.1*1.2 = 0.6
	executed, err = r.Move(kinematics.Forward, 5)
	if err != nil {
		t.Fatalf("Move(forward, 5) error = %v", err)
	}
	if !executed {
		t.Error("active Move() should report executed")
	}
	pos := r.Position()
	if !floatEquals(pos.X, 5) || !floatEquals(pos.Y, 0) {
		t.Errorf("position = (%v, %v), want (5, 0)", pos.X, pos.Y)
	}
	if !floatEquals(r.Energy(), 99.4) {
		t.Errorf("energy = %v, want 99.4", r.Energy())
	}

	// right 2: cost 2*0.1*1.2 = 0.24
	if _, err = r.Move(kinematics.Right, 2); err != nil {
		t.Fatalf("Move(right, 2) error = %v", err)
	}
	pos = r.Position()
	if !floatEquals(pos.X, 5) || !floatEquals(pos.Y, -2) {
		t.Errorf("position = (%v, %v), want (5, -2)", pos.X, pos.Y)
	}
	if !floatEquals(r.Energy(), 99.16) {
		t.Errorf("energy = %v, want 99.16", r.Energy())
	}
}

// TestHexapodSpeedScaling verifies the speed factor scales displacement
// but not cost.
func TestHexapodSpeedScaling(t *testing.T) {
	m := mustMobility(t, 6)
	r, err := robot.New(robot.Config{Name: "Hex-1", Capacity: 100}, m)
	if err != nil {
		t.Fatalf("robot.New() error = %v", err)
	}
	r.Activate()

	if _, err := r.Move(kinematics.Forward, 10); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	// Displacement is speed-adjusted: 10 * 1.2 = 12
	if pos := r.Position(); !floatEquals(pos.X, 12) {
		t.Errorf("position X = %v, want 12", pos.X)
	}
	// Cost uses the commanded distance: 10 * 0.1 * 1.3 = 1.3
	if !floatEquals(r.Energy(), 100-1.3) {
		t.Errorf("energy = %v, want %v", r.Energy(), 100-1.3)
	}
}
