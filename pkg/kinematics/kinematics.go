// Package kinematics computes 2D pose updates for ground robots.
//
// Positions live in a fixed world frame. A robot's orientation is a heading
// angle in radians defining its forward axis; directional commands are
// resolved against that heading without changing it, so strafing left or
// right never implies a turn.
package kinematics

import (
	"fmt"
	"math"
)

// Position is a 2D point in the world frame.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by dx, dy.
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Euclidean distance from p to other.
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Displace returns the position reached by moving distance units from pos
// in the given relative direction, with the robot heading at orientation
// radians.
//
// Forward and backward move along the heading vector (cos θ, sin θ).
// Left and right move along the perpendicular (-sin θ, cos θ), left
// positive. Orientation is a read-only reference frame here; callers that
// want to turn must rotate explicitly.
func Displace(pos Position, orientation float64, dir Direction, distance float64) (Position, error) {
	var dx, dy float64
	switch dir {
	case Forward:
		dx = distance * math.Cos(orientation)
		dy = distance * math.Sin(orientation)
	case Backward:
		dx = -distance * math.Cos(orientation)
		dy = -distance * math.Sin(orientation)
	case Left:
		dx = -distance * math.Sin(orientation)
		dy = distance * math.Cos(orientation)
	case Right:
		dx = distance * math.Sin(orientation)
		dy = -distance * math.Cos(orientation)
	default:
		return pos, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	return pos.Add(dx, dy), nil
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
