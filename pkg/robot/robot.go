package robot

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/teslashibe/go-strider/internal/log"
	"github.com/teslashibe/go-strider/pkg/energy"
	"github.com/teslashibe/go-strider/pkg/kinematics"
)

// Config holds the initial state for a robot.
type Config struct {
	Name        string
	Position    kinematics.Position
	Orientation float64 // radians
	Source      energy.Source
	Capacity    float64 // energy capacity; reserve starts full
}

// Robot is a ground robot: generic pose and energy state plus an injected
// mobility strategy. All operations are serialized by an internal mutex,
// so a single Robot is safe to share between goroutines.
type Robot struct {
	id       uuid.UUID
	name     string
	mobility Mobility
	source   energy.Source

	mu          sync.Mutex
	pos         kinematics.Position
	orientation float64
	active      bool
	reserve     *energy.Reserve
}

// New creates an inactive robot with a full energy reserve.
func New(cfg Config, mobility Mobility) (*Robot, error) {
	if mobility == nil {
		return nil, ErrNoMobility
	}
	if math.IsNaN(cfg.Orientation) || math.IsInf(cfg.Orientation, 0) {
		return nil, ErrInvalidOrientation
	}
	src := cfg.Source
	if src == "" {
		src = energy.Electric
	}
	if !src.Valid() {
		return nil, fmt.Errorf("%w: %q", energy.ErrInvalidSource, src)
	}
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = 100
	}
	reserve, err := energy.NewReserve(capacity)
	if err != nil {
		return nil, err
	}

	return &Robot{
		id:          uuid.New(),
		name:        cfg.Name,
		mobility:    mobility,
		source:      src,
		pos:         cfg.Position,
		orientation: cfg.Orientation,
		reserve:     reserve,
	}, nil
}

// ID returns the robot's unique identifier.
func (r *Robot) ID() uuid.UUID {
	return r.id
}

// Name returns the robot's name.
func (r *Robot) Name() string {
	return r.name
}

// Mobility returns the robot's mobility strategy.
func (r *Robot) Mobility() Mobility {
	return r.mobility
}

// Source returns the robot's energy source.
func (r *Robot) Source() energy.Source {
	return r.source
}

// Position returns the current position.
func (r *Robot) Position() kinematics.Position {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos
}

// Orientation returns the current heading in radians.
func (r *Robot) Orientation() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orientation
}

// Energy returns the current energy level.
func (r *Robot) Energy() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reserve.Level()
}

// Active reports whether the robot is active.
func (r *Robot) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Activate enables movement operations.
func (r *Robot) Activate() {
	r.mu.Lock()
	r.active = true
	r.mu.Unlock()
	log.Info("robot activated", "robot", r.name)
}

// Deactivate disables movement operations.
func (r *Robot) Deactivate() {
	r.mu.Lock()
	r.active = false
	r.mu.Unlock()
	log.Info("robot deactivated", "robot", r.name)
}

// Move translates the robot in the given relative direction.
//
// The commanded distance is scaled by the mobility's speed factor before
// displacement; the energy drained is the mobility's cost for the
// commanded distance. An inactive robot logs a diagnostic and does
// nothing; that is not an error. The returned flag reports whether the
// command actually ran. On a validation error neither position nor
// energy changes.
func (r *Robot) Move(dir kinematics.Direction, distance float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		log.Warn("robot is not active and cannot move", "robot", r.name)
		return false, nil
	}
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %q", kinematics.ErrInvalidDirection, dir)
	}
	if distance < 0 {
		return false, fmt.Errorf("%w: %v", kinematics.ErrInvalidDistance, distance)
	}

	effective := distance * r.mobility.SpeedFactor()
	next, err := kinematics.Displace(r.pos, r.orientation, dir, effective)
	if err != nil {
		return false, err
	}

	r.pos = next
	r.reserve.Drain(r.mobility.MoveCost(distance))

	log.Debug("robot moved",
		"robot", r.name,
		"direction", dir.String(),
		"distance", distance,
		"x", r.pos.X,
		"y", r.pos.Y,
		"energy", r.reserve.Level(),
	)
	return true, nil
}

// Rotate turns the robot in place by angle radians (positive is
// counter-clockwise) and normalizes the heading into [0, 2π).
// An inactive robot logs a diagnostic and does nothing; the returned
// flag reports whether the command actually ran.
func (r *Robot) Rotate(angle float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		log.Warn("robot is not active and cannot rotate", "robot", r.name)
		return false, nil
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return false, ErrInvalidAngle
	}

	r.orientation = kinematics.NormalizeAngle(r.orientation + angle)
	r.reserve.Drain(r.mobility.RotateCost(angle))

	log.Debug("robot rotated",
		"robot", r.name,
		"angle", angle,
		"orientation", r.orientation,
		"energy", r.reserve.Level(),
	)
	if r.reserve.Percent() <= 0.1 {
		log.Warn("robot energy low", "robot", r.name, "energy", r.reserve.Level())
	}
	return true, nil
}

// Stop halts the robot and stabilizes its mobility hardware, draining the
// mobility's stop cost. An inactive robot logs a diagnostic and does
// nothing; the returned flag reports whether the command actually ran.
func (r *Robot) Stop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		log.Warn("robot is already inactive", "robot", r.name)
		return false
	}

	r.reserve.Drain(r.mobility.StopCost())
	log.Info("robot stopped", "robot", r.name, "energy", r.reserve.Level())
	return true
}

// Recharge restores energy from the robot's source: the source's base rate
// plus the mobility's charge boost, clamped at capacity. Recharging a full
// reserve is a no-op.
func (r *Robot) Recharge() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reserve.IsFull() {
		log.Info("robot already fully charged", "robot", r.name)
		return
	}

	amount := r.source.ChargeRate() + r.mobility.ChargeBoost(r.source)
	r.reserve.Charge(amount)
	log.Info("robot recharged",
		"robot", r.name,
		"source", r.source.String(),
		"amount", amount,
		"energy", r.reserve.Level(),
	)
}
