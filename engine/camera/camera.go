package camera

import (
	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the free-look camera: a world-space position, a unit facing direction and a
// fixed up vector, plus the movement and look tuning the Controller reads every tick.
// The engine owns exactly one State and passes it by reference; nothing else mutates it.
type State struct {
	// Position is the camera's world-space location.
	Position mgl32.Vec3

	// Facing is the unit-length view direction.
	Facing mgl32.Vec3

	// Up is the world up vector. The Controller never changes it.
	Up mgl32.Vec3

	// MoveSpeed is the world units travelled per tick per held movement key.
	MoveSpeed float32

	// Sensitivity scales cursor displacement (in screen fractions) to degrees of rotation.
	Sensitivity float32

	// Captured reports whether a look-drag is active (cursor hidden).
	Captured bool

	firstClick bool
}

// NewState creates a camera State at (0, 0, 2) looking down -Z with +Y up.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - *State: the newly created camera state
func NewState(options ...StateBuilderOption) *State {
	s := &State{
		Position:    mgl32.Vec3{0, 0, 2},
		Facing:      mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		MoveSpeed:   DefaultBaseSpeed,
		Sensitivity: DefaultSensitivity,
		firstClick:  true,
	}
	for _, option := range options {
		option(s)
	}
	s.Facing = common.Normalize(s.Facing)
	return s
}

// Target returns the point one unit ahead of the camera, the look-at target for the view matrix.
//
// Returns:
//   - mgl32.Vec3: Position + Facing
func (s *State) Target() mgl32.Vec3 {
	return s.Position.Add(s.Facing)
}

// Right returns the unit vector to the camera's right.
//
// Returns:
//   - mgl32.Vec3: normalize(cross(Facing, Up))
func (s *State) Right() mgl32.Vec3 {
	return common.Right(s.Facing, s.Up)
}

// AwaitingAnchor reports whether the next captured tick will only re-centre the cursor
// instead of rotating.
//
// Returns:
//   - bool: true until the first captured tick of a drag has run
func (s *State) AwaitingAnchor() bool {
	return s.firstClick
}
