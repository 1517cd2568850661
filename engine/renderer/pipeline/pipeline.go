package pipeline

import (
	"github.com/Carmen-Shannon/floatarts/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	pipelineKey string

	vertexShader, fragmentShader shader.Shader

	// handle is the backend object: a linked GL program name (uint32) or a *wgpu.RenderPipeline.
	handle any

	depthTestEnabled  bool
	depthWriteEnabled bool
	textured          bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
}

// Pipeline describes one fixed draw configuration: a vertex/fragment pair plus the raster
// state it is drawn with. The backend creates the GPU object when the pipeline is registered
// and stores it back through SetHandle.
type Pipeline interface {
	// PipelineKey returns the unique key of the pipeline. The renderer keys meshes by it as well.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Shader returns the stage bound to the given type, or nil.
	//
	// Parameters:
	//   - shaderType: the stage to look up
	//
	// Returns:
	//   - shader.Shader: the stage, or nil when unset
	Shader(shaderType shader.ShaderType) shader.Shader

	// Handle returns the backend object created at registration, or nil before then.
	//
	// Returns:
	//   - any: a GL program name (uint32) or a *wgpu.RenderPipeline
	Handle() any

	// SetHandle stores the backend object created for this pipeline.
	//
	// Parameters:
	//   - h: the backend object
	SetHandle(h any)

	// DepthTestEnabled reports whether fragments are depth tested (less-than).
	DepthTestEnabled() bool

	// DepthWriteEnabled reports whether fragments write depth.
	DepthWriteEnabled() bool

	// Textured reports whether the pipeline samples the session texture.
	Textured() bool

	// CullMode returns the face culling mode.
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology.
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the winding order treated as front facing.
	FrontFace() wgpu.FrontFace
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a pipeline description with depth testing and writing enabled,
// no culling and a counter-clockwise triangle list.
//
// Parameters:
//   - pipelineKey: the unique key of the pipeline
//   - opts: functional options applied after the defaults
//
// Returns:
//   - Pipeline: the pipeline description
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) Handle() any {
	return p.handle
}

func (p *pipeline) SetHandle(h any) {
	p.handle = h
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) Textured() bool {
	return p.textured
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}
