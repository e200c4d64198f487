// Package config provides configuration helpers for go-strider commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default daemon configuration.
const (
	DefaultPort     = "8090"
	DefaultLogLevel = "info"
)

// Server holds all configuration for the fleet daemon.
type Server struct {
	// Network
	Port string `yaml:"port"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Robots to create at startup
	Robots []RobotEntry `yaml:"robots"`
}

// RobotEntry describes a robot created when the daemon starts.
type RobotEntry struct {
	Name        string  `yaml:"name"`
	Legs        int     `yaml:"legs"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Orientation float64 `yaml:"orientation"` // radians
	Source      string  `yaml:"source"`
	Capacity    float64 `yaml:"capacity"`
	Active      bool    `yaml:"active"`
}

// DefaultServer returns a Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		Port:     Port(DefaultPort),
		LogLevel: LogLevel(DefaultLogLevel),
	}
}

// LoadServer reads a Server config from a YAML file.
// Fields not present in the file keep their defaults; env vars win
// over file values for port and log level.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if port := os.Getenv("STRIDER_PORT"); port != "" {
		cfg.Port = port
	}
	if level := os.Getenv("STRIDER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// Port returns the daemon port from the STRIDER_PORT env var.
// Falls back to the provided default if not set.
func Port(defaultPort string) string {
	if port := os.Getenv("STRIDER_PORT"); port != "" {
		return port
	}
	return defaultPort
}

// LogLevel returns the log level from the STRIDER_LOG_LEVEL env var.
// Falls back to the provided default if not set.
func LogLevel(defaultLevel string) string {
	if level := os.Getenv("STRIDER_LOG_LEVEL"); level != "" {
		return level
	}
	return defaultLevel
}

// APIURL returns the daemon HTTP API URL for a host.
func APIURL(host string) string {
	return fmt.Sprintf("http://%s:%s", host, Port(DefaultPort))
}
