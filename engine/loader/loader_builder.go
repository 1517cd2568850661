package loader

import "time"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithFlipVertical is an option builder that sets whether decoded images are flipped so
// the first row in memory is the bottom of the image.
//
// Parameters:
//   - flip: true to flip rows
//
// Returns:
//   - LoaderBuilderOption: a function that applies the flip option to a loader
func WithFlipVertical(flip bool) LoaderBuilderOption {
	return func(l *loader) {
		l.flipVertical = flip
	}
}

// WithWorkers is an option builder that sets the decode pool's worker limit and queue size.
//
// Parameters:
//   - workers: the maximum number of concurrent decodes
//   - queueSize: the task queue capacity
//
// Returns:
//   - LoaderBuilderOption: a function that applies the pool sizing to a loader
func WithWorkers(workers, queueSize int) LoaderBuilderOption {
	return func(l *loader) {
		if workers > 0 {
			l.workers = workers
		}
		if queueSize > 0 {
			l.queueSize = queueSize
		}
	}
}

// WithIdleTimeout is an option builder that sets how long an idle decode worker lingers.
//
// Parameters:
//   - d: the idle timeout
//
// Returns:
//   - LoaderBuilderOption: a function that applies the idle timeout to a loader
func WithIdleTimeout(d time.Duration) LoaderBuilderOption {
	return func(l *loader) {
		l.idleTimeout = d
	}
}
