package kinematics

import "fmt"

// Direction is a relative movement command. It is a closed set: the four
// constants below are the only valid values.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
	Left     Direction = "left"
	Right    Direction = "right"
)

// Valid reports whether d is one of the four movement commands.
func (d Direction) Valid() bool {
	switch d {
	case Forward, Backward, Left, Right:
		return true
	}
	return false
}

// String returns the command word.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection converts a command word into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}
