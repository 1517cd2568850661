package light

import (
	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = mgl32.Vec3{x, y, z}
	}
}

// WithColor is an option builder that sets the RGBA color of the light.
// Components are clamped to [0, 1].
//
// Parameters:
//   - r: the red component
//   - g: the green component
//   - b: the blue component
//   - a: the alpha component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b, a float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = mgl32.Vec4{
			common.Clamp(r, 0, 1),
			common.Clamp(g, 0, 1),
			common.Clamp(b, 0, 1),
			common.Clamp(a, 0, 1),
		}
	}
}

// WithMarkerScale is an option builder that sets the marker cube's uniform scale.
//
// Parameters:
//   - scale: the scale factor, must be positive
//
// Returns:
//   - LightBuilderOption: a function that applies the marker scale option to a lightImpl
func WithMarkerScale(scale float32) LightBuilderOption {
	return func(l *lightImpl) {
		if scale > 0 {
			l.markerScale = scale
		}
	}
}

// WithEnabled is an option builder that sets whether the light is active.
//
// Parameters:
//   - enabled: true to enable the light
//
// Returns:
//   - LightBuilderOption: a function that applies the enabled option to a lightImpl
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}
