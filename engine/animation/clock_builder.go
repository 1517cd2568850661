package animation

// ClockOption is a functional option for configuring a Clock.
type ClockOption func(*Clock)

// WithIncrement sets the degrees added per qualifying tick.
//
// Parameters:
//   - degrees: the per-tick increment
//
// Returns:
//   - ClockOption: a function that sets the increment
func WithIncrement(degrees float32) ClockOption {
	return func(c *Clock) {
		c.increment = degrees
	}
}

// WithCeiling stops angle growth once the angle exceeds the given value.
//
// Parameters:
//   - degrees: the ceiling
//
// Returns:
//   - ClockOption: a function that sets the ceiling
func WithCeiling(degrees float32) ClockOption {
	return func(c *Clock) {
		c.ceiling = degrees
		c.bounded = true
	}
}

// WithStep sets the minimum interval between qualifying ticks.
//
// Parameters:
//   - seconds: the step length; values <= 0 let every call qualify
//
// Returns:
//   - ClockOption: a function that sets the step
func WithStep(seconds float64) ClockOption {
	return func(c *Clock) {
		c.step = seconds
	}
}

// WithStart anchors the first step at the given time instead of 0.
//
// Parameters:
//   - now: the start time in seconds
//
// Returns:
//   - ClockOption: a function that sets the initial last-tick time
func WithStart(now float64) ClockOption {
	return func(c *Clock) {
		c.lastTick = now
	}
}
