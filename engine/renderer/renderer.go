package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/model"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/shader"
	"github.com/Carmen-Shannon/floatarts/engine/transform"
	"github.com/Carmen-Shannon/floatarts/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	variant     transform.Variant

	// object draws the quad or cube; marker is nil unless the variant is lit.
	object pipeline.Pipeline
	marker pipeline.Pipeline

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	msaa                 MSAASampleCount
	clearColor           [4]float32
	sampler              common.SamplerStagingData
}

// Renderer draws the two fixed drawables of the viewer: the textured object and, for lit
// variants, the light marker. It owns every GPU resource it creates.
type Renderer interface {
	// BackendType returns the backend the renderer was created with.
	//
	// Returns:
	//   - RendererBackendType: the backend type
	BackendType() RendererBackendType

	// Init compiles the shaders for the variant, uploads the meshes and the texture.
	// It must be called once before Draw.
	//
	// Parameters:
	//   - object: the quad or cube mesh
	//   - marker: the light marker mesh, ignored (and may be nil) for unlit variants
	//   - texture: the decoded texture
	//
	// Returns:
	//   - error: wraps common.ErrShader on compile/link failure, common.ErrInitialization otherwise
	Init(object, marker model.Model, texture common.TextureStagingData) error

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Draw clears the target, draws the object and, when lit, the marker, then presents.
	//
	// Parameters:
	//   - frame: the matrices and light values composed for this frame
	//
	// Returns:
	//   - error: an error if the frame target cannot be acquired or Init was not called
	Draw(frame transform.Frame) error

	// Release frees all GPU resources. The renderer cannot be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the given window. The OpenGL backend requires
// the window's context to be current on the calling thread.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - win: the window to render into
//   - variant: the demo variant, which selects shader features and the marker pipeline
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the created renderer
//   - error: wraps common.ErrInitialization if the backend cannot be created
func NewRenderer(backendType RendererBackendType, win window.Window, variant transform.Variant, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		variant:     variant,
		msaa:        MSAAOff,
		clearColor:  [4]float32{1, 1, 1, 1},
	}

	for _, opt := range options {
		opt(r)
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		if win.ClientAPI() != window.ClientAPINone {
			return nil, fmt.Errorf("wgpu backend needs a window without a GL context: %w", common.ErrInitialization)
		}
		r.backend, err = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	case BackendTypeGL:
		fallthrough
	default:
		if win.ClientAPI() != window.ClientAPIOpenGL {
			return nil, fmt.Errorf("gl backend needs an OpenGL window: %w", common.ErrInitialization)
		}
		r.backend, err = newGLRendererBackend(win)
	}
	if err != nil {
		return nil, err
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.SetClearColor(r.clearColor)
	r.backend.ConfigureSurface(win.Width(), win.Height())

	log.Printf("[Renderer] %s backend ready (%dx%d)", backendType, win.Width(), win.Height())
	return r, nil
}

func (r *renderer) BackendType() RendererBackendType {
	return r.backendType
}

func (r *renderer) Init(object, marker model.Model, texture common.TextureStagingData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := texture.Validate(); err != nil {
		return err
	}
	if err := r.backend.InitTexture(texture, r.sampler); err != nil {
		return fmt.Errorf("upload texture %q: %v: %w", texture.Name, err, common.ErrInitialization)
	}

	lang := r.backend.Language()
	features := shader.FeaturesFor(r.variant)

	p, err := r.registerPipeline(shader.ProgramObject, lang, true, features...)
	if err != nil {
		return err
	}
	if err := r.backend.InitMesh(p, object); err != nil {
		return fmt.Errorf("upload %s mesh: %v: %w", object.Name(), err, common.ErrInitialization)
	}
	r.object = p

	if !r.variant.HasLight {
		return nil
	}
	if marker == nil {
		return fmt.Errorf("lit variant %q has no marker mesh: %w", r.variant.Name, common.ErrInitialization)
	}
	p, err = r.registerPipeline(shader.ProgramMarker, lang, false)
	if err != nil {
		return err
	}
	if err := r.backend.InitMesh(p, marker); err != nil {
		return fmt.Errorf("upload %s mesh: %v: %w", marker.Name(), err, common.ErrInitialization)
	}
	r.marker = p
	return nil
}

// registerPipeline loads the program's stages in lang and creates its GPU pipeline.
func (r *renderer) registerPipeline(program string, lang shader.Language, textured bool, features ...shader.Feature) (pipeline.Pipeline, error) {
	vert, frag, err := shader.LoadPair(program, lang, features...)
	if err != nil {
		return nil, err
	}
	p := pipeline.NewPipeline(program,
		pipeline.WithShaders(vert, frag),
		pipeline.WithTextured(textured),
	)
	if err := r.backend.RegisterPipeline(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// minimized
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Draw(frame transform.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.object == nil {
		return fmt.Errorf("draw before Init: %w", common.ErrInitialization)
	}

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}

	obj := objectUniform(frame)
	err := r.backend.DrawCall(r.object, &obj)
	if err == nil && r.marker != nil {
		m := markerUniform(frame)
		err = r.backend.DrawCall(r.marker, &m)
	}

	r.backend.EndFrame()
	r.backend.Present()
	return err
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
	r.object = nil
	r.marker = nil
}
