package camera

import "github.com/go-gl/mathgl/mgl32"

// StateBuilderOption is a functional option for configuring a camera State.
type StateBuilderOption func(*State)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - position: world-space coordinates
//
// Returns:
//   - StateBuilderOption: a function that sets the camera position
func WithPosition(position mgl32.Vec3) StateBuilderOption {
	return func(s *State) {
		s.Position = position
	}
}

// WithFacing sets the camera's initial view direction. The vector is normalized by NewState.
//
// Parameters:
//   - facing: the view direction, any non-zero length
//
// Returns:
//   - StateBuilderOption: a function that sets the view direction
func WithFacing(facing mgl32.Vec3) StateBuilderOption {
	return func(s *State) {
		s.Facing = facing
	}
}

// WithUp sets the camera's world up vector.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - StateBuilderOption: a function that sets the up vector
func WithUp(up mgl32.Vec3) StateBuilderOption {
	return func(s *State) {
		s.Up = up
	}
}

// WithMoveSpeed sets the starting movement speed.
//
// Parameters:
//   - speed: world units per tick
//
// Returns:
//   - StateBuilderOption: a function that sets the move speed
func WithMoveSpeed(speed float32) StateBuilderOption {
	return func(s *State) {
		s.MoveSpeed = speed
	}
}

// WithSensitivity sets the look sensitivity.
//
// Parameters:
//   - sensitivity: degrees of rotation per full-screen cursor displacement
//
// Returns:
//   - StateBuilderOption: a function that sets the sensitivity
func WithSensitivity(sensitivity float32) StateBuilderOption {
	return func(s *State) {
		s.Sensitivity = sensitivity
	}
}
