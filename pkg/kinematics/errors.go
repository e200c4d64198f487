package kinematics

import "errors"

// Sentinel errors for movement validation.
var (
	// ErrInvalidDirection is returned for a direction outside the
	// four-value command set.
	ErrInvalidDirection = errors.New("kinematics: invalid direction")

	// ErrInvalidDistance is returned for a negative distance.
	ErrInvalidDistance = errors.New("kinematics: distance must be >= 0")
)
