// Package transform composes the per-frame view, projection and model matrices from
// the camera, the animation clock and the light.
package transform

import "github.com/Carmen-Shannon/floatarts/engine/animation"

// Variant selects which of the demo configurations a Composer serves. The quad, the
// spinning cube and the lit cube differ only in these switches.
type Variant struct {
	// Name is the preset name the variant was built from.
	Name string

	// Quad draws the flat textured quad instead of a cube.
	Quad bool

	// HasLight enables the point light uniforms and the light marker draw.
	HasLight bool

	// HasNormals selects the mesh and shader pair carrying per-vertex normals.
	HasNormals bool

	// Increment is the spin added per clock tick, in degrees. Zero keeps the object still.
	Increment float32

	// Ceiling, when set, stops the spin once the angle passes it.
	Ceiling *float32

	// Scale is the vertex scale uniform of the quad variant. Zero disables the uniform.
	Scale float32
}

// NewClock builds the animation clock this variant spins with.
//
// Parameters:
//   - start: the time the first step is measured from
//
// Returns:
//   - *animation.Clock: the configured clock
func (v Variant) NewClock(start float64) *animation.Clock {
	options := []animation.ClockOption{
		animation.WithIncrement(v.Increment),
		animation.WithStart(start),
	}
	if v.Ceiling != nil {
		options = append(options, animation.WithCeiling(*v.Ceiling))
	}
	return animation.NewClock(options...)
}
