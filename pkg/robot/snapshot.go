package robot

// Snapshot is a point-in-time, JSON-ready view of a robot's state.
type Snapshot struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation float64 `json:"orientation"` // radians
	Active      bool    `json:"active"`
	Energy      float64 `json:"energy"`
	Capacity    float64 `json:"capacity"`
	Source      string  `json:"source"`
}

// Snapshot returns a consistent view of the robot's current state.
func (r *Robot) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ID:          r.id.String(),
		Name:        r.name,
		Kind:        r.mobility.Kind(),
		X:           r.pos.X,
		Y:           r.pos.Y,
		Orientation: r.orientation,
		Active:      r.active,
		Energy:      r.reserve.Level(),
		Capacity:    r.reserve.Capacity(),
		Source:      r.source.String(),
	}
}
