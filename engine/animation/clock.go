// Package animation holds the fixed-step clock that drives the demo object's spin.
package animation

// DefaultStep is the minimum wall-clock interval between qualifying ticks, in seconds.
const DefaultStep = 1.0 / 60.0

// Clock accumulates a rotation angle in fixed increments, at most once per step of
// wall-clock time. An optional ceiling stops growth once the angle has passed it.
type Clock struct {
	angle     float32
	increment float32
	lastTick  float64
	step      float64
	ceiling   float32
	bounded   bool
	ticks     uint64
}

// NewClock creates a Clock starting at angle 0 with no increment, no ceiling and the
// default 1/60 s step.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - *Clock: the newly created clock
func NewClock(options ...ClockOption) *Clock {
	c := &Clock{step: DefaultStep}
	for _, option := range options {
		option(c)
	}
	return c
}

// Tick advances the clock if at least one step has elapsed since the last qualifying tick.
// The angle grows by the increment unless a ceiling is set and the angle already exceeds it.
//
// Parameters:
//   - now: the current monotonic time in seconds
//
// Returns:
//   - bool: true if the tick qualified
func (c *Clock) Tick(now float64) bool {
	if now-c.lastTick < c.step {
		return false
	}
	c.lastTick = now
	c.ticks++
	if !c.bounded || c.angle <= c.ceiling {
		c.angle += c.increment
	}
	return true
}

// Angle returns the accumulated angle in degrees.
func (c *Clock) Angle() float32 {
	return c.angle
}

// Increment returns the degrees added per qualifying tick.
func (c *Clock) Increment() float32 {
	return c.increment
}

// Ceiling returns the ceiling angle and whether one is set.
//
// Returns:
//   - float32: the ceiling in degrees
//   - bool: false if the angle grows without bound
func (c *Clock) Ceiling() (float32, bool) {
	return c.ceiling, c.bounded
}

// LastTick returns the time of the last qualifying tick.
func (c *Clock) LastTick() float64 {
	return c.lastTick
}

// Ticks returns the number of qualifying ticks so far.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Reset zeroes the angle and re-anchors the clock at now.
//
// Parameters:
//   - now: the time to treat as the last qualifying tick
func (c *Clock) Reset(now float64) {
	c.angle = 0
	c.ticks = 0
	c.lastTick = now
}
