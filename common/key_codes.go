package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// Modifier keys.
const (
	KeyLeftShift   = 340 // Left Shift (GLFW)
	KeyLeftControl = 341 // Left Control (GLFW)
)

// MouseButtonLeft is the GLFW index of the primary mouse button.
const MouseButtonLeft = 0

// Action names the camera operation bound to a key.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionBoost
	ActionQuit

	actionCount
)

// ActionCount is the number of bindable actions.
const ActionCount = int(actionCount)

// DefaultKeyBindings maps each Action to its key code: WASD movement, Space/LeftControl
// for vertical movement, LeftShift for the speed boost and Escape to quit.
var DefaultKeyBindings = [ActionCount]int{
	ActionForward: KeyW,
	ActionBack:    KeyS,
	ActionLeft:    KeyA,
	ActionRight:   KeyD,
	ActionUp:      KeySpace,
	ActionDown:    KeyLeftControl,
	ActionBoost:   KeyLeftShift,
	ActionQuit:    KeyEsc,
}

func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBack:
		return "back"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionBoost:
		return "boost"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}
