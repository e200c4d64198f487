package energy

import "errors"

var (
	// ErrInvalidSource is returned for an unrecognized energy source.
	ErrInvalidSource = errors.New("energy: invalid source")

	// ErrInvalidCapacity is returned when constructing a reserve with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("energy: capacity must be > 0")
)
