package camera

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithScreenSize sets the window dimensions used for cursor centring. Non-positive
// sizes are ignored.
//
// Parameters:
//   - width, height: window size in pixels
//
// Returns:
//   - ControllerOption: functional option to set the screen size
func WithScreenSize(width, height int) ControllerOption {
	return func(c *controllerImpl) {
		if width <= 0 || height <= 0 {
			return
		}
		c.width = width
		c.height = height
	}
}

// WithBaseSpeed sets the move speed used while boost is released.
//
// Parameters:
//   - speed: world units per tick
//
// Returns:
//   - ControllerOption: functional option to set the base speed
func WithBaseSpeed(speed float32) ControllerOption {
	return func(c *controllerImpl) {
		c.baseSpeed = speed
	}
}

// WithBoostSpeed sets the move speed used while boost is held.
//
// Parameters:
//   - speed: world units per tick
//
// Returns:
//   - ControllerOption: functional option to set the boost speed
func WithBoostSpeed(speed float32) ControllerOption {
	return func(c *controllerImpl) {
		c.boostSpeed = speed
	}
}

// WithPitchLimit sets the maximum tilt from the horizon.
//
// Parameters:
//   - degrees: limit in degrees, 0 < degrees < 90
//
// Returns:
//   - ControllerOption: functional option to set the pitch limit
func WithPitchLimit(degrees float32) ControllerOption {
	return func(c *controllerImpl) {
		c.pitchLimit = degrees
	}
}
