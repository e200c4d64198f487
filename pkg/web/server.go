// Package web provides the HTTP control surface and telemetry feed for a
// robot fleet.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-strider/internal/log"
	"github.com/teslashibe/go-strider/pkg/fleet"
	"github.com/teslashibe/go-strider/pkg/hub"
	"github.com/teslashibe/go-strider/pkg/protocol"
)

// Server exposes the fleet over HTTP plus a websocket telemetry feed.
type Server struct {
	app      *fiber.App
	port     string
	registry *fleet.Registry

	// Hub for websocket broadcast (thread-safe!)
	telemetry *hub.Hub
}

// NewServer creates a new fleet server around an existing registry.
func NewServer(port string, registry *fleet.Registry) *Server {
	s := &Server{
		port:      port,
		registry:  registry,
		telemetry: hub.New("telemetry"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "strider fleet",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/robots", s.handleListRobots)
	api.Post("/robots", s.handleCreateRobot)
	api.Get("/robots/:id", s.handleGetRobot)
	api.Delete("/robots/:id", s.handleDeleteRobot)
	api.Post("/robots/:id/activate", s.handleActivate)
	api.Post("/robots/:id/deactivate", s.handleDeactivate)
	api.Post("/robots/:id/move", s.handleMove)
	api.Post("/robots/:id/rotate", s.handleRotate)
	api.Post("/robots/:id/stop", s.handleStop)
	api.Post("/robots/:id/recharge", s.handleRecharge)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/telemetry", websocket.New(s.handleTelemetryWS))

	s.app = app
	return s
}

// Start runs the telemetry hub and listens for HTTP connections.
// Blocks until Shutdown is called.
func (s *Server) Start() error {
	go s.telemetry.Run()
	log.Info("fleet server listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying fiber app (used by tests).
func (s *Server) App() *fiber.App {
	return s.app
}

// handleTelemetryWS handles websocket connections for the telemetry feed.
func (s *Server) handleTelemetryWS(c *websocket.Conn) {
	client := hub.NewClient(s.telemetry, c)
	client.Run() // Blocks until connection closes
}

// publish broadcasts a telemetry message, logging instead of failing:
// telemetry is best-effort and never blocks the control path.
func (s *Server) publish(msg *protocol.Message, err error) {
	if err != nil {
		log.Error("failed to build telemetry message", "error", err)
		return
	}
	if err := s.telemetry.BroadcastJSON(msg); err != nil {
		log.Error("failed to encode telemetry message", "error", err)
	}
}
