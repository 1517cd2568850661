package light

import "github.com/go-gl/mathgl/mgl32"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position    mgl32.Vec3
	color       mgl32.Vec4
	markerScale float32
	enabled     bool
}

// Light defines a single point light. The light is fixed for the whole session: it
// feeds the lit shader's lightPos/lightColor uniforms and is drawn as a small unlit
// marker cube at its own position.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// Color returns the RGBA color of the light.
	//
	// Returns:
	//   - mgl32.Vec4: color as (r, g, b, a)
	Color() mgl32.Vec4

	// MarkerScale returns the uniform scale applied to the marker cube.
	MarkerScale() float32

	// MarkerModel returns the marker cube's model matrix: translate(Position) * scale(MarkerScale).
	//
	// Returns:
	//   - mgl32.Mat4: the marker model matrix
	MarkerModel() mgl32.Mat4

	// Enabled returns whether the light contributes to shading.
	Enabled() bool
}

var _ Light = &lightImpl{}

// NewLight creates a white point light at (0.5, 0.5, 0.5) with a 0.1 marker scale.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		position:    mgl32.Vec3{0.5, 0.5, 0.5},
		color:       mgl32.Vec4{1, 1, 1, 1},
		markerScale: 0.1,
		enabled:     true,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Color() mgl32.Vec4 {
	return l.color
}

func (l *lightImpl) MarkerScale() float32 {
	return l.markerScale
}

func (l *lightImpl) MarkerModel() mgl32.Mat4 {
	t := mgl32.Translate3D(l.position.X(), l.position.Y(), l.position.Z())
	s := mgl32.Scale3D(l.markerScale, l.markerScale, l.markerScale)
	return t.Mul4(s)
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}
