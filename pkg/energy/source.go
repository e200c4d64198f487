package energy

import "fmt"

// Source identifies how a robot replenishes its reserve.
type Source string

const (
	Solar      Source = "solar"
	Electric   Source = "electric"
	FossilFuel Source = "fossil_fuel"
)

// Valid reports whether s is a known energy source.
func (s Source) Valid() bool {
	switch s {
	case Solar, Electric, FossilFuel:
		return true
	}
	return false
}

// String returns the source name.
func (s Source) String() string {
	return string(s)
}

// ChargeRate returns the base amount restored per recharge.
// Mobility hardware may add a boost on top of this.
func (s Source) ChargeRate() float64 {
	switch s {
	case Solar:
		return 15
	case Electric:
		return 25
	case FossilFuel:
		return 35
	}
	return 0
}

// ParseSource converts a source name into a Source.
func ParseSource(s string) (Source, error) {
	src := Source(s)
	if !src.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSource, s)
	}
	return src, nil
}
