package profiler

import "time"

// ProfilerOption is a functional option applied to a Profiler during construction via NewProfiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often a sample is taken and logged. Non-positive values are ignored.
//
// Parameters:
//   - d: the sampling interval
//
// Returns:
//   - ProfilerOption: a function that applies the interval option to a profiler
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithQuiet disables the log line; samples are still available through Last.
//
// Parameters:
//   - quiet: true to suppress logging
//
// Returns:
//   - ProfilerOption: a function that applies the quiet option to a profiler
func WithQuiet(quiet bool) ProfilerOption {
	return func(p *Profiler) {
		p.quiet = quiet
	}
}

// WithClock replaces the wall clock used to measure intervals.
//
// Parameters:
//   - now: returns the current time
//
// Returns:
//   - ProfilerOption: a function that applies the clock option to a profiler
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
