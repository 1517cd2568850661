package common

import "errors"

// Error kinds recognized at the program boundary. Callers wrap these with context via
// fmt.Errorf("...: %w", ErrX) and test for them with errors.Is.
var (
	// ErrInitialization reports that the window, graphics context or GPU device could not be created.
	ErrInitialization = errors.New("initialization failure")

	// ErrAssetLoad reports that a required image resource is missing or unreadable.
	ErrAssetLoad = errors.New("asset load failure")

	// ErrShader reports a shader compile or program link failure.
	ErrShader = errors.New("shader failure")
)
