package camera

import "github.com/Carmen-Shannon/floatarts/common"

const (
	// DefaultBaseSpeed is the movement speed while boost is released.
	DefaultBaseSpeed float32 = 0.1

	// DefaultBoostSpeed is the movement speed while boost is held.
	DefaultBoostSpeed float32 = 0.4

	// DefaultSensitivity is the look sensitivity in degrees per full-screen displacement.
	DefaultSensitivity float32 = 100

	// DefaultPitchLimit bounds how far Facing may tilt from the horizon, in degrees.
	DefaultPitchLimit float32 = 85
)

// InputSnapshot is the input state sampled once per tick from the window.
type InputSnapshot struct {
	// Pressed holds the level state of every bound action, indexed by common.Action.
	Pressed [common.ActionCount]bool

	// LookHeld reports whether the look button (left mouse) is down.
	LookHeld bool

	// CursorX and CursorY are the cursor position in window pixels.
	CursorX, CursorY float64
}

// Down reports whether an action's key is held.
//
// Parameters:
//   - action: the action to query
//
// Returns:
//   - bool: true if the bound key is down
func (in InputSnapshot) Down(action common.Action) bool {
	if action < 0 || int(action) >= common.ActionCount {
		return false
	}
	return in.Pressed[action]
}

// Cursor is the window-side collaborator the Controller uses during a look-drag.
type Cursor interface {
	// HideCursor hides the system cursor while it is over the window.
	HideCursor()

	// ShowCursor restores the normal system cursor.
	ShowCursor()

	// WarpCursor moves the cursor to a window-relative pixel position.
	//
	// Parameters:
	//   - x, y: target position in window pixels
	WarpCursor(x, y float64)
}

// Controller maps one tick of sampled input onto a camera State. Movement, boost and
// look are applied in that order; none of them can fail.
type Controller interface {
	// Update applies movement, boost and look for one tick.
	//
	// Parameters:
	//   - s: the camera state to mutate
	//   - in: the input sampled this tick
	//   - cursor: the cursor collaborator used for hide/show/warp
	Update(s *State, in InputSnapshot, cursor Cursor)

	// Move translates the camera along its local axes for every held movement action.
	// Contributions are additive, so diagonals move faster than a single axis.
	//
	// Parameters:
	//   - s: the camera state to mutate
	//   - in: the input sampled this tick
	Move(s *State, in InputSnapshot)

	// Pitch rotates Facing about the camera's right axis by -degrees. The rotation is
	// discarded if it would leave Facing more than the pitch limit away from the horizon.
	//
	// Parameters:
	//   - s: the camera state to mutate
	//   - degrees: pitch delta, positive tilts down
	//
	// Returns:
	//   - bool: true if the rotation was applied
	Pitch(s *State, degrees float32) bool

	// Yaw rotates Facing about Up by -degrees.
	//
	// Parameters:
	//   - s: the camera state to mutate
	//   - degrees: yaw delta, positive turns right
	Yaw(s *State, degrees float32)

	// SetScreenSize updates the dimensions used to centre and normalize cursor input.
	//
	// Parameters:
	//   - width, height: window size in pixels
	SetScreenSize(width, height int)

	// ScreenSize returns the current screen dimensions.
	//
	// Returns:
	//   - width, height: window size in pixels
	ScreenSize() (width, height int)

	// BaseSpeed returns the move speed used while boost is released.
	BaseSpeed() float32

	// BoostSpeed returns the move speed used while boost is held.
	BoostSpeed() float32

	// PitchLimit returns the maximum tilt from the horizon, in degrees.
	PitchLimit() float32
}
