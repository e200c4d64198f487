package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/teslashibe/go-strider/pkg/energy"
	"github.com/teslashibe/go-strider/pkg/fleet"
	"github.com/teslashibe/go-strider/pkg/kinematics"
	"github.com/teslashibe/go-strider/pkg/legged"
	"github.com/teslashibe/go-strider/pkg/protocol"
	"github.com/teslashibe/go-strider/pkg/robot"
)

// CreateRobotRequest is the request body for creating a robot.
type CreateRobotRequest struct {
	Name        string  `json:"name"`
	Legs        int     `json:"legs"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation float64 `json:"orientation"` // radians
	Source      string  `json:"source"`      // defaults to electric
	Capacity    float64 `json:"capacity"`    // defaults to 100
	Active      bool    `json:"active"`
}

// MoveRequest is the request body for a move command.
type MoveRequest struct {
	Direction string  `json:"direction"`
	Distance  float64 `json:"distance"`
}

// RotateRequest is the request body for a rotate command.
type RotateRequest struct {
	Angle float64 `json:"angle"` // radians, positive counter-clockwise
}

// StatusResponse reports daemon health: fleet size and telemetry feed state.
type StatusResponse struct {
	Robots           int  `json:"robots"`
	TelemetryClients int  `json:"telemetry_clients"`
	TelemetryRunning bool `json:"telemetry_running"`
}

// CommandResponse reports the outcome of a movement command.
// Executed is false when the robot was inactive and the command was a
// no-op; that is an expected state, not an error.
type CommandResponse struct {
	Executed bool           `json:"executed"`
	Robot    robot.Snapshot `json:"robot"`
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, fleet.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, kinematics.ErrInvalidDirection),
		errors.Is(err, kinematics.ErrInvalidDistance),
		errors.Is(err, legged.ErrInvalidLegCount),
		errors.Is(err, energy.ErrInvalidSource),
		errors.Is(err, energy.ErrInvalidCapacity),
		errors.Is(err, robot.ErrInvalidOrientation),
		errors.Is(err, robot.ErrInvalidAngle):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// findRobot resolves the :id route parameter to a registered robot.
func (s *Server) findRobot(c *fiber.Ctx) (*robot.Robot, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fleet.ErrNotFound
	}
	return s.registry.Get(id)
}

// handleStatus returns the daemon's health summary.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{
		Robots:           s.registry.Count(),
		TelemetryClients: s.telemetry.ClientCount(),
		TelemetryRunning: s.telemetry.IsRunning(),
	})
}

// handleListRobots returns snapshots of every registered robot.
func (s *Server) handleListRobots(c *fiber.Ctx) error {
	robots := s.registry.List()
	snaps := make([]robot.Snapshot, 0, len(robots))
	for _, r := range robots {
		snaps = append(snaps, r.Snapshot())
	}
	return c.JSON(snaps)
}

// handleCreateRobot creates and registers a legged robot.
func (s *Server) handleCreateRobot(c *fiber.Ctx) error {
	var req CreateRobotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	mobility, err := legged.NewMobility(req.Legs)
	if err != nil {
		return errorJSON(c, err)
	}

	source := energy.Source(req.Source)
	if req.Source == "" {
		source = energy.Electric
	}

	r, err := robot.New(robot.Config{
		Name:        req.Name,
		Position:    kinematics.Position{X: req.X, Y: req.Y},
		Orientation: req.Orientation,
		Source:      source,
		Capacity:    req.Capacity,
	}, mobility)
	if err != nil {
		return errorJSON(c, err)
	}
	if req.Active {
		r.Activate()
	}

	if err := s.registry.Add(r); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r.Snapshot())
}

// handleGetRobot returns a single robot's snapshot.
func (s *Server) handleGetRobot(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(r.Snapshot())
}

// handleDeleteRobot unregisters a robot.
func (s *Server) handleDeleteRobot(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}
	if err := s.registry.Remove(r.ID()); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleActivate enables movement for a robot.
func (s *Server) handleActivate(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}
	r.Activate()
	s.publish(protocol.NewStateMessage(protocol.TypeState, r.Snapshot()))
	return c.JSON(r.Snapshot())
}

// handleDeactivate disables movement for a robot.
func (s *Server) handleDeactivate(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}
	r.Deactivate()
	s.publish(protocol.NewStateMessage(protocol.TypeState, r.Snapshot()))
	return c.JSON(r.Snapshot())
}

// handleMove translates a robot.
func (s *Server) handleMove(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	dir, err := kinematics.ParseDirection(req.Direction)
	if err != nil {
		return errorJSON(c, err)
	}

	executed, err := r.Move(dir, req.Distance)
	if err != nil {
		return errorJSON(c, err)
	}
	if executed {
		s.publish(protocol.NewMoveMessage(r.Snapshot(), dir.String(), req.Distance))
	}
	return c.JSON(CommandResponse{Executed: executed, Robot: r.Snapshot()})
}

// handleRotate turns a robot in place.
func (s *Server) handleRotate(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}

	var req RotateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	executed, err := r.Rotate(req.Angle)
	if err != nil {
		return errorJSON(c, err)
	}
	if executed {
		s.publish(protocol.NewRotateMessage(r.Snapshot(), req.Angle))
	}
	return c.JSON(CommandResponse{Executed: executed, Robot: r.Snapshot()})
}

// handleStop halts a robot.
func (s *Server) handleStop(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}
	executed := r.Stop()
	if executed {
		s.publish(protocol.NewStateMessage(protocol.TypeStopped, r.Snapshot()))
	}
	return c.JSON(CommandResponse{Executed: executed, Robot: r.Snapshot()})
}

// handleRecharge restores a robot's energy from its source.
func (s *Server) handleRecharge(c *fiber.Ctx) error {
	r, err := s.findRobot(c)
	if err != nil {
		return errorJSON(c, err)
	}
	r.Recharge()
	s.publish(protocol.NewStateMessage(protocol.TypeRecharged, r.Snapshot()))
	return c.JSON(CommandResponse{Executed: true, Robot: r.Snapshot()})
}
