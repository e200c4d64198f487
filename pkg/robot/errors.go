package robot

import "errors"

var (
	// ErrNoMobility is returned when constructing a robot without a
	// mobility strategy.
	ErrNoMobility = errors.New("robot: mobility strategy required")

	// ErrInvalidOrientation is returned for a non-finite orientation.
	ErrInvalidOrientation = errors.New("robot: orientation must be finite")

	// ErrInvalidAngle is returned for a non-finite rotation angle.
	ErrInvalidAngle = errors.New("robot: angle must be finite")
)
