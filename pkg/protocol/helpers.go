package protocol

import "github.com/teslashibe/go-strider/pkg/robot"

// NewMoveMessage creates a moved message from a post-move snapshot.
func NewMoveMessage(snap robot.Snapshot, direction string, distance float64) (*Message, error) {
	return NewMessage(TypeMoved, MoveData{
		RobotID:   snap.ID,
		Name:      snap.Name,
		Direction: direction,
		Distance:  distance,
		X:         snap.X,
		Y:         snap.Y,
		Energy:    snap.Energy,
	})
}

// NewRotateMessage creates a rotated message from a post-rotate snapshot.
func NewRotateMessage(snap robot.Snapshot, angle float64) (*Message, error) {
	return NewMessage(TypeRotated, RotateData{
		RobotID:     snap.ID,
		Name:        snap.Name,
		Angle:       angle,
		Orientation: snap.Orientation,
		Energy:      snap.Energy,
	})
}

// NewStateMessage creates a state message from a snapshot.
func NewStateMessage(msgType MessageType, snap robot.Snapshot) (*Message, error) {
	return NewMessage(msgType, StateData{
		RobotID:     snap.ID,
		Name:        snap.Name,
		Kind:        snap.Kind,
		X:           snap.X,
		Y:           snap.Y,
		Orientation: snap.Orientation,
		Active:      snap.Active,
		Energy:      snap.Energy,
		Capacity:    snap.Capacity,
		Source:      snap.Source,
	})
}
