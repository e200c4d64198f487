package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/teslashibe/go-strider/internal/config"
	"github.com/teslashibe/go-strider/internal/log"
	"github.com/teslashibe/go-strider/pkg/energy"
	"github.com/teslashibe/go-strider/pkg/fleet"
	"github.com/teslashibe/go-strider/pkg/kinematics"
	"github.com/teslashibe/go-strider/pkg/legged"
	"github.com/teslashibe/go-strider/pkg/robot"
	"github.com/teslashibe/go-strider/pkg/web"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.String("port", "", "HTTP port (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg := config.DefaultServer()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadServer(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	log.Init(cfg.LogLevel)

	registry := fleet.NewRegistry()
	for _, entry := range cfg.Robots {
		if err := seedRobot(registry, entry); err != nil {
			log.Error("failed to create robot", "name", entry.Name, "error", err)
			os.Exit(1)
		}
	}
	log.Info("fleet initialized", "robots", registry.Count())

	server := web.NewServer(cfg.Port, registry)

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// seedRobot creates a legged robot from a config entry and registers it.
func seedRobot(registry *fleet.Registry, entry config.RobotEntry) error {
	mobility, err := legged.NewMobility(entry.Legs)
	if err != nil {
		return err
	}

	source := energy.Source(entry.Source)
	if entry.Source == "" {
		source = energy.Electric
	}

	r, err := robot.New(robot.Config{
		Name:        entry.Name,
		Position:    kinematics.Position{X: entry.X, Y: entry.Y},
		Orientation: entry.Orientation,
		Source:      source,
		Capacity:    entry.Capacity,
	}, mobility)
	if err != nil {
		return err
	}
	if entry.Active {
		r.Activate()
	}
	return registry.Add(r)
}
