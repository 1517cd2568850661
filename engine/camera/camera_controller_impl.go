package camera

import (
	"math"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/go-gl/mathgl/mgl32"
)

// controllerImpl is the free-look implementation of Controller.
type controllerImpl struct {
	width  int
	height int

	baseSpeed  float32
	boostSpeed float32
	pitchLimit float32
}

var _ Controller = &controllerImpl{}

// NewController creates a free-look Controller for a 1920x1080 screen. A non-positive
// WithScreenSize keeps that default.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controllerImpl{
		width:      1920,
		height:     1080,
		baseSpeed:  DefaultBaseSpeed,
		boostSpeed: DefaultBoostSpeed,
		pitchLimit: DefaultPitchLimit,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) Update(s *State, in InputSnapshot, cursor Cursor) {
	c.Move(s, in)

	// speed change lands after movement, so it affects the next tick
	if in.Down(common.ActionBoost) {
		s.MoveSpeed = c.boostSpeed
	} else {
		s.MoveSpeed = c.baseSpeed
	}

	c.look(s, in, cursor)
}

func (c *controllerImpl) Move(s *State, in InputSnapshot) {
	right := s.Right()
	if in.Down(common.ActionForward) {
		s.Position = s.Position.Add(s.Facing.Mul(s.MoveSpeed))
	}
	if in.Down(common.ActionLeft) {
		s.Position = s.Position.Sub(right.Mul(s.MoveSpeed))
	}
	if in.Down(common.ActionBack) {
		s.Position = s.Position.Sub(s.Facing.Mul(s.MoveSpeed))
	}
	if in.Down(common.ActionRight) {
		s.Position = s.Position.Add(right.Mul(s.MoveSpeed))
	}
	if in.Down(common.ActionUp) {
		s.Position = s.Position.Add(s.Up.Mul(s.MoveSpeed))
	}
	if in.Down(common.ActionDown) {
		s.Position = s.Position.Sub(s.Up.Mul(s.MoveSpeed))
	}
}

func (c *controllerImpl) Pitch(s *State, degrees float32) bool {
	candidate := common.RotateAbout(s.Facing, -degrees, s.Right())
	tilt := common.Abs32(common.AngleBetween(candidate, s.Up) - math.Pi/2)
	if tilt > mgl32.DegToRad(c.pitchLimit) {
		return false
	}
	s.Facing = common.Normalize(candidate)
	return true
}

func (c *controllerImpl) Yaw(s *State, degrees float32) {
	s.Facing = common.Normalize(common.RotateAbout(s.Facing, -degrees, s.Up))
}

func (c *controllerImpl) SetScreenSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
}

func (c *controllerImpl) ScreenSize() (width, height int) {
	return c.width, c.height
}

func (c *controllerImpl) BaseSpeed() float32 {
	return c.baseSpeed
}

func (c *controllerImpl) BoostSpeed() float32 {
	return c.boostSpeed
}

func (c *controllerImpl) PitchLimit() float32 {
	return c.pitchLimit
}

// --- internal helpers ---

// look handles the captured-cursor drag. The first captured tick only anchors the
// cursor at the screen centre; each later tick converts the offset from centre into
// pitch and yaw and re-centres.
func (c *controllerImpl) look(s *State, in InputSnapshot, cursor Cursor) {
	if !in.LookHeld {
		if s.Captured {
			cursor.ShowCursor()
			s.Captured = false
		}
		s.firstClick = true
		return
	}

	if !s.Captured {
		cursor.HideCursor()
		s.Captured = true
	}

	cx, cy := float64(c.width)/2, float64(c.height)/2
	if s.firstClick {
		cursor.WarpCursor(cx, cy)
		s.firstClick = false
		return
	}

	pitch := s.Sensitivity * float32(in.CursorY-cy) / float32(c.height)
	yaw := s.Sensitivity * float32(in.CursorX-cx) / float32(c.width)

	c.Pitch(s, pitch)
	c.Yaw(s, yaw)

	cursor.WarpCursor(cx, cy)
}
