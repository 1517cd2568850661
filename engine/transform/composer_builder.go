package transform

import "github.com/Carmen-Shannon/floatarts/engine/light"

// ComposerBuilderOption is a functional option for configuring a Composer.
type ComposerBuilderOption func(*composerImpl)

// WithFov sets the vertical field of view.
//
// Parameters:
//   - degrees: field of view in degrees
//
// Returns:
//   - ComposerBuilderOption: a function that sets the field of view
func WithFov(degrees float32) ComposerBuilderOption {
	return func(c *composerImpl) {
		c.fov = degrees
	}
}

// WithAspect sets the aspect ratio from a framebuffer size.
//
// Parameters:
//   - width, height: framebuffer size in pixels
//
// Returns:
//   - ComposerBuilderOption: a function that sets the aspect ratio
func WithAspect(width, height int) ComposerBuilderOption {
	return func(c *composerImpl) {
		if width > 0 && height > 0 {
			c.aspect = float32(width) / float32(height)
		}
	}
}

// WithClipPlanes sets the near and far clip distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - ComposerBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float32) ComposerBuilderOption {
	return func(c *composerImpl) {
		c.near = near
		c.far = far
	}
}

// WithVariant sets the variant the composer serves.
//
// Parameters:
//   - v: the variant
//
// Returns:
//   - ComposerBuilderOption: a function that sets the variant
func WithVariant(v Variant) ComposerBuilderOption {
	return func(c *composerImpl) {
		c.variant = v
	}
}

// WithLight sets the point light used by lit variants.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - ComposerBuilderOption: a function that sets the light
func WithLight(l light.Light) ComposerBuilderOption {
	return func(c *composerImpl) {
		c.light = l
	}
}
