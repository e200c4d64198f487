// Package energy models a bounded, depletable energy reserve.
package energy

// Reserve is a bounded energy store. The level never leaves
// [0, capacity]: draining clamps at zero and charging clamps at capacity.
//
// Reserve is not safe for concurrent use; the owning robot serializes
// access.
type Reserve struct {
	level    float64
	capacity float64
}

// NewReserve creates a full reserve with the given capacity.
func NewReserve(capacity float64) (*Reserve, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Reserve{level: capacity, capacity: capacity}, nil
}

// Level returns the current energy level.
func (r *Reserve) Level() float64 {
	return r.level
}

// Capacity returns the maximum energy level.
func (r *Reserve) Capacity() float64 {
	return r.capacity
}

// Percent returns the fill ratio in [0, 1].
func (r *Reserve) Percent() float64 {
	return r.level / r.capacity
}

// IsEmpty reports whether the reserve is fully depleted.
func (r *Reserve) IsEmpty() bool {
	return r.level <= 0
}

// IsFull reports whether the reserve is at capacity.
func (r *Reserve) IsFull() bool {
	return r.level >= r.capacity
}

// Drain removes amount from the reserve, clamping at zero.
// Negative amounts are ignored.
func (r *Reserve) Drain(amount float64) {
	if amount < 0 {
		return
	}
	r.level -= amount
	if r.level < 0 {
		r.level = 0
	}
}

// Charge adds amount to the reserve, clamping at capacity.
// Negative amounts are ignored.
func (r *Reserve) Charge(amount float64) {
	if amount < 0 {
		return
	}
	r.level += amount
	if r.level > r.capacity {
		r.level = r.capacity
	}
}
