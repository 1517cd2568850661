package transform

import (
	"fmt"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/animation"
	"github.com/Carmen-Shannon/floatarts/engine/camera"
	"github.com/Carmen-Shannon/floatarts/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is everything the renderer needs for one draw: the object matrices and, for
// lit variants, the marker matrices and light parameters.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4

	// Model is the object's model matrix.
	Model mgl32.Mat4

	// CamMatrix is Projection * View * Model, the object's clip transform.
	CamMatrix mgl32.Mat4

	// LightMatrix is Projection * View, used with LightModel for the marker cube.
	LightMatrix mgl32.Mat4
	LightModel  mgl32.Mat4
	LightColor  mgl32.Vec4
	LightPos    mgl32.Vec3

	CamPos mgl32.Vec3
	Scale  float32

	// Variant is the configuration the frame was composed for.
	Variant Variant

	// Advanced reports whether the animation clock ticked during this compose.
	Advanced bool
}

// composerImpl is the implementation of the Composer interface.
type composerImpl struct {
	fov    float32 // degrees
	aspect float32
	near   float32
	far    float32

	projection mgl32.Mat4
	variant    Variant
	light      light.Light
}

// Composer builds a Frame each tick. Projection constants are fixed at construction;
// view and model matrices are rebuilt from scratch every call.
type Composer interface {
	// Compose ticks the clock and builds the frame's matrices.
	//
	// Parameters:
	//   - cam: the camera state, read only
	//   - clock: the animation clock, ticked once
	//   - now: the current monotonic time in seconds
	//
	// Returns:
	//   - Frame: the composed frame
	Compose(cam *camera.State, clock *animation.Clock, now float64) Frame

	// View returns LookAt(Position, Position + Facing, Up) for the camera.
	//
	// Parameters:
	//   - cam: the camera state
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	View(cam *camera.State) mgl32.Mat4

	// Projection returns the perspective projection.
	Projection() mgl32.Mat4

	// Model returns the object's rotation about +Y.
	//
	// Parameters:
	//   - degrees: the accumulated spin angle
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	Model(degrees float32) mgl32.Mat4

	// SetAspect rebuilds the projection for a new framebuffer size. Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	SetAspect(width, height int)

	// Aspect returns the current width/height ratio.
	Aspect() float32

	// Variant returns the variant this composer serves.
	Variant() Variant
}

var _ Composer = &composerImpl{}

// NewComposer creates a Composer with a 45 degree field of view, a 16:9 aspect and
// clip planes at 0.1 and 1000. A variant with HasLight requires WithLight.
//
// Parameters:
//   - options: functional options to configure the composer
//
// Returns:
//   - Composer: the newly created composer
//   - error: wraps common.ErrInitialization for a lit variant without a light
func NewComposer(options ...ComposerBuilderOption) (Composer, error) {
	c := &composerImpl{
		fov:    45,
		aspect: 1920.0 / 1080.0,
		near:   0.1,
		far:    1000,
	}
	for _, option := range options {
		option(c)
	}
	if c.variant.HasLight && c.light == nil {
		return nil, fmt.Errorf("lit variant %q has no light: %w", c.variant.Name, common.ErrInitialization)
	}
	c.updateProjection()
	return c, nil
}

func (c *composerImpl) Compose(cam *camera.State, clock *animation.Clock, now float64) Frame {
	advanced := clock.Tick(now)

	view := c.View(cam)
	model := c.Model(clock.Angle())
	viewProj := c.projection.Mul4(view)

	f := Frame{
		View:       view,
		Projection: c.projection,
		Model:      model,
		CamMatrix:  viewProj.Mul4(model),
		CamPos:     cam.Position,
		Scale:      c.variant.Scale,
		Variant:    c.variant,
		Advanced:   advanced,
	}
	if c.variant.HasLight {
		f.LightMatrix = viewProj
		f.LightModel = c.light.MarkerModel()
		f.LightPos = c.light.Position()
		f.LightColor = c.light.Color()
	}
	return f
}

func (c *composerImpl) View(cam *camera.State) mgl32.Mat4 {
	return mgl32.LookAtV(cam.Position, cam.Target(), cam.Up)
}

func (c *composerImpl) Projection() mgl32.Mat4 {
	return c.projection
}

func (c *composerImpl) Model(degrees float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(degrees))
}

func (c *composerImpl) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
	c.updateProjection()
}

func (c *composerImpl) Aspect() float32 {
	return c.aspect
}

func (c *composerImpl) Variant() Variant {
	return c.variant
}

// updateProjection recomputes the cached perspective matrix.
func (c *composerImpl) updateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
}
