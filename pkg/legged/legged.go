// Package legged implements the mobility model for walking robots.
//
// The leg count is fixed at construction and drives everything else: the
// speed factor applied to displacement, the energy cost of moving,
// rotating and stopping, and the charge boost the legs contribute when
// recharging (more contact points, better charging posture).
package legged

import (
	"errors"

	"github.com/teslashibe/go-strider/pkg/energy"
	"github.com/teslashibe/go-strider/pkg/robot"
)

// Ensure Mobility satisfies the robot strategy port.
var _ robot.Mobility = (*Mobility)(nil)

// ErrInvalidLegCount is returned at construction for leg counts that are
// odd or below 2.
var ErrInvalidLegCount = errors.New("legged: leg count must be an even integer >= 2")

// Mobility is the walking mobility strategy. Immutable after construction.
type Mobility struct {
	legs int
}

// NewMobility creates a walking mobility with the given leg count.
// Legs come in pairs, so the count must be an even integer >= 2.
func NewMobility(legs int) (*Mobility, error) {
	if legs < 2 || legs%2 != 0 {
		return nil, ErrInvalidLegCount
	}
	return &Mobility{legs: legs}, nil
}

// Legs returns the leg count.
func (m *Mobility) Legs() int {
	return m.legs
}

// Kind returns the mobility kind identifier.
func (m *Mobility) Kind() string {
	return "legged"
}

// Gait returns a human-readable label for the leg configuration.
func (m *Mobility) Gait() string {
	switch m.legs {
	case 2:
		return "bipedal"
	case 4:
		return "quadrupedal"
	case 6:
		return "hexapedal"
	case 8:
		return "octopedal"
	}
	return "multi-legged"
}

// SpeedFactor returns the displacement multiplier for this leg count.
//
// The curve is a fixed, non-monotonic lookup: hexapods are the sweet spot,
// octopods trade a little speed for weight, and anything beyond walks
// conservatively. The breakpoints are exact; there is no interpolation.
func (m *Mobility) SpeedFactor() float64 {
	switch m.legs {
	case 2:
		return 0.8 // bipedal: less stable, slower
	case 4:
		return 1.0 // quadrupedal: balanced
	case 6:
		return 1.2 // hexapedal: very stable, fastest
	case 8:
		return 1.1 // octopedal: stable but heavier
	}
	return 0.7 // unusual configurations: cautious
}

// MoveCost returns the energy cost of walking the requested distance.
// Cost reflects effort, not progress: it is computed from the commanded
// distance, not the speed-adjusted displacement.
func (m *Mobility) MoveCost(distance float64) float64 {
	baseCost := distance * 0.1
	legFactor := float64(m.legs) * 0.05
	return baseCost * (1 + legFactor)
}

// RotateCost returns the energy cost of turning in place by angle radians.
// Fewer legs mean less rotational stability and a steeper cost.
func (m *Mobility) RotateCost(angle float64) float64 {
	if angle < 0 {
		angle = -angle
	}
	stability := float64(m.legs) / 6.0
	if stability > 1 {
		stability = 1
	}
	return angle * 10 / stability
}

// StopCost returns the energy cost of halting and stabilizing all legs.
func (m *Mobility) StopCost() float64 {
	efficiency := float64(m.legs) / 4.0
	if efficiency > 1 {
		efficiency = 1
	}
	return 5 / efficiency
}

// ChargeBoost returns the extra charge the legs contribute per recharge
// for the given source. Solar rigs use the legs as panel supports;
// electric docks per leg; fuel gains nothing from legs.
func (m *Mobility) ChargeBoost(src energy.Source) float64 {
	switch src {
	case energy.Solar:
		return float64(m.legs) * 2
	case energy.Electric:
		return float64(m.legs)
	}
	return 0
}
