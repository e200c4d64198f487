// Package protocol defines the telemetry message types published by the
// fleet daemon. This package is shared between striderd (server) and
// striderwatch (client).
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the type of telemetry message
type MessageType string

const (
	TypeMoved     MessageType = "moved"     // Robot translated
	TypeRotated   MessageType = "rotated"   // Robot turned in place
	TypeStopped   MessageType = "stopped"   // Robot halted
	TypeRecharged MessageType = "recharged" // Robot recharged
	TypeState     MessageType = "state"     // Full robot state

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// Message is the base wrapper for all telemetry messages
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// =============================================================================
// Payload types
// =============================================================================

// MoveData reports a completed translation
type MoveData struct {
	RobotID   string  `json:"robot_id"`
	Name      string  `json:"name"`
	Direction string  `json:"direction"`
	Distance  float64 `json:"distance"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Energy    float64 `json:"energy"`
}

// RotateData reports a completed rotation
type RotateData struct {
	RobotID     string  `json:"robot_id"`
	Name        string  `json:"name"`
	Angle       float64 `json:"angle"`       // radians, signed
	Orientation float64 `json:"orientation"` // radians, normalized
	Energy      float64 `json:"energy"`
}

// StateData is a full robot state report
type StateData struct {
	RobotID     string  `json:"robot_id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation float64 `json:"orientation"`
	Active      bool    `json:"active"`
	Energy      float64 `json:"energy"`
	Capacity    float64 `json:"capacity"`
	Source      string  `json:"source"`
}
