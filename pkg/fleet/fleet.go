// Package fleet provides an in-memory registry of robots keyed by ID.
package fleet

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/teslashibe/go-strider/pkg/robot"
)

var (
	// ErrNotFound is returned when a robot ID is not registered.
	ErrNotFound = errors.New("fleet: robot not found")

	// ErrNilRobot is returned when registering a nil robot.
	ErrNilRobot = errors.New("fleet: nil robot")
)

// Registry is a thread-safe collection of robots.
type Registry struct {
	mu     sync.RWMutex
	robots map[uuid.UUID]*robot.Robot
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		robots: make(map[uuid.UUID]*robot.Robot),
	}
}

// Add registers a robot under its own ID.
func (g *Registry) Add(r *robot.Robot) error {
	if r == nil {
		return ErrNilRobot
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.robots[r.ID()] = r
	return nil
}

// Get returns the robot with the given ID.
func (g *Registry) Get(id uuid.UUID) (*robot.Robot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.robots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Remove unregisters the robot with the given ID.
func (g *Registry) Remove(id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.robots[id]; !ok {
		return ErrNotFound
	}
	delete(g.robots, id)
	return nil
}

// List returns all registered robots, ordered by name for stable output.
func (g *Registry) List() []*robot.Robot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*robot.Robot, 0, len(g.robots))
	for _, r := range g.robots {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

// Count returns the number of registered robots.
func (g *Registry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.robots)
}
