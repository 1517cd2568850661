package pipeline

import (
	"github.com/Carmen-Shannon/floatarts/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a functional option applied to a pipeline during construction via NewPipeline.
type PipelineBuilderOption func(*pipeline)

// WithShaders binds a vertex/fragment pair to the pipeline.
//
// Parameters:
//   - vertex: the vertex stage
//   - fragment: the fragment stage
//
// Returns:
//   - PipelineBuilderOption: a function that applies the shaders option to a pipeline
func WithShaders(vertex, fragment shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexShader = vertex
		p.fragmentShader = fragment
	}
}

// WithDepthTestEnabled sets whether depth testing is enabled.
//
// Parameters:
//   - enabled: true to depth test with a less-than comparison
//
// Returns:
//   - PipelineBuilderOption: a function that applies the depth test option to a pipeline
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether the pipeline writes depth.
//
// Parameters:
//   - enabled: true to write depth
//
// Returns:
//   - PipelineBuilderOption: a function that applies the depth write option to a pipeline
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithTextured marks the pipeline as sampling the session texture at unit/binding tex0.
//
// Parameters:
//   - textured: true when the fragment stage samples tex0
//
// Returns:
//   - PipelineBuilderOption: a function that applies the textured option to a pipeline
func WithTextured(textured bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.textured = textured
	}
}

// WithCullMode sets the face culling mode.
//
// Parameters:
//   - mode: the wgpu.CullMode; the GL backend maps front/back to glCullFace
//
// Returns:
//   - PipelineBuilderOption: a function that applies the cull mode option to a pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the wgpu.PrimitiveTopology
//
// Returns:
//   - PipelineBuilderOption: a function that applies the topology option to a pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the winding order treated as front facing.
//
// Parameters:
//   - frontFace: the wgpu.FrontFace
//
// Returns:
//   - PipelineBuilderOption: a function that applies the front face option to a pipeline
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}
