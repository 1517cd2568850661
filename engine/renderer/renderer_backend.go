package renderer

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/model"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/shader"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeGL selects the OpenGL 4.1 core backend. This is the default.
	BackendTypeGL RendererBackendType = iota

	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU
)

// String returns the configuration name of the backend type.
func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeWGPU:
		return "wgpu"
	default:
		return "gl"
	}
}

// ParseBackendType maps a configuration name ("gl" or "wgpu", case-insensitive) to a
// RendererBackendType. The empty string selects BackendTypeGL.
//
// Parameters:
//   - name: the backend name
//
// Returns:
//   - RendererBackendType: the parsed backend type
//   - error: wraps common.ErrInitialization for an unknown name
func ParseBackendType(name string) (RendererBackendType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gl", "opengl":
		return BackendTypeGL, nil
	case "wgpu", "webgpu":
		return BackendTypeWGPU, nil
	default:
		return BackendTypeGL, fmt.Errorf("unknown renderer backend %q: %w", name, common.ErrInitialization)
	}
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA)
// in the WebGPU backend. WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1). This is the default.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the interface every GPU API implementation satisfies. The Renderer
// drives it in a fixed order: ConfigureSurface, InitTexture, RegisterPipeline and InitMesh
// once, then BeginFrame, DrawCall, EndFrame and Present every frame.
type RendererBackend interface {
	// Language returns the shading language the backend consumes.
	Language() shader.Language

	// ConfigureSurface (re)creates the size dependent targets.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets how frames are delivered to the display.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the RGBA colour each frame is cleared to.
	//
	// Parameters:
	//   - rgba: the clear colour
	SetClearColor(rgba [4]float32)

	// InitTexture uploads the session texture and creates its sampler.
	//
	// Parameters:
	//   - tex: the decoded RGBA pixels
	//   - samp: the sampler configuration
	//
	// Returns:
	//   - error: an error if the texture cannot be created
	InitTexture(tex common.TextureStagingData, samp common.SamplerStagingData) error

	// RegisterPipeline creates the GPU object for p and stores it through p.SetHandle.
	//
	// Parameters:
	//   - p: the pipeline description
	//
	// Returns:
	//   - error: wraps common.ErrShader when a stage fails to compile or link
	RegisterPipeline(p pipeline.Pipeline) error

	// InitMesh uploads m and binds it to the pipeline registered under p.PipelineKey().
	//
	// Parameters:
	//   - p: the registered pipeline the mesh is drawn with
	//   - m: the mesh
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMesh(p pipeline.Pipeline, m model.Model) error

	// BeginFrame acquires the frame target and clears colour and depth.
	//
	// Returns:
	//   - error: an error if the frame target cannot be acquired
	BeginFrame() error

	// DrawCall draws the mesh of p with the given per-draw uniform values.
	//
	// Parameters:
	//   - p: the pipeline to draw with
	//   - uniform: the values for this draw
	//
	// Returns:
	//   - error: an error if no mesh was initialized for p
	DrawCall(p pipeline.Pipeline, uniform *GPUFrameUniform) error

	// EndFrame finishes recording and submits the frame.
	EndFrame()

	// Present shows the finished frame.
	Present()

	// Release frees every GPU resource in reverse creation order.
	Release()
}
