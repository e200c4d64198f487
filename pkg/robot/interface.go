// Package robot provides the core state and movement orchestration for
// ground robots.
//
// A Robot owns the generic state every robot kind shares (pose, activation
// flag, energy reserve) and delegates everything kind-specific to an
// injected Mobility strategy. Consumers that only need part of the robot's
// behavior should depend on the narrow interfaces below.
package robot

import (
	"github.com/teslashibe/go-strider/pkg/energy"
	"github.com/teslashibe/go-strider/pkg/kinematics"
)

// Mobility is the strategy a robot kind plugs into the generic state.
// Implementations must be immutable after construction.
type Mobility interface {
	// Kind returns the mobility kind identifier (e.g. "legged").
	Kind() string

	// SpeedFactor returns the multiplier applied to a move's
	// displacement magnitude.
	SpeedFactor() float64

	// MoveCost returns the energy cost of moving the commanded distance.
	MoveCost(distance float64) float64

	// RotateCost returns the energy cost of turning by angle radians.
	RotateCost(angle float64) float64

	// StopCost returns the energy cost of halting and stabilizing.
	StopCost() float64

	// ChargeBoost returns the extra charge the mobility hardware
	// contributes per recharge for the given source.
	ChargeBoost(src energy.Source) float64
}

// Mover provides directional movement. Use this minimal interface when
// only translation is needed (e.g. waypoint followers). The bool result
// reports whether the command executed; an inactive robot declines
// without error.
type Mover interface {
	Move(dir kinematics.Direction, distance float64) (bool, error)
}

// Rotator provides in-place rotation.
type Rotator interface {
	Rotate(angle float64) (bool, error)
}

// Activator provides activation state transitions.
type Activator interface {
	Activate()
	Deactivate()
	Active() bool
}

// Driver is the composite interface for full robot control.
type Driver interface {
	Mover
	Rotator
	Activator
}

// Ensure Robot implements Driver.
var _ Driver = (*Robot)(nil)
