package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the implementation of the BindGroupProvider interface.
type bindGroupProvider struct {
	label string

	// Bind group 0: frame uniform plus, for textured drawables, the texture and sampler.
	bindGroup       *wgpu.BindGroup
	bindGroupLayout *wgpu.BindGroupLayout
	uniformBuffer   *wgpu.Buffer
	texture         *wgpu.Texture
	textureView     *wgpu.TextureView
	sampler         *wgpu.Sampler

	// Mesh buffers
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   int
}

// BindGroupProvider owns the WebGPU resources of one drawable: its mesh buffers and the
// single bind group its pipeline reads. A provider is created empty and filled in by the
// renderer backend.
type BindGroupProvider interface {
	// Release releases every GPU resource held by this provider. It is safe to call on a
	// provider that was never initialized.
	Release()

	// Label returns the debug label used to name the provider's GPU objects.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the bind group for group 0, or nil before initialization.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the layout of group 0, or nil before initialization.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the bind group layout or nil
	BindGroupLayout() *wgpu.BindGroupLayout

	// UniformBuffer returns the per-frame uniform buffer at binding 0.
	//
	// Returns:
	//   - *wgpu.Buffer: the uniform buffer or nil
	UniformBuffer() *wgpu.Buffer

	// TextureView returns the texture view at binding 1, or nil for untextured drawables.
	//
	// Returns:
	//   - *wgpu.TextureView: the texture view or nil
	TextureView() *wgpu.TextureView

	// Sampler returns the sampler at binding 2, or nil for untextured drawables.
	//
	// Returns:
	//   - *wgpu.Sampler: the sampler or nil
	Sampler() *wgpu.Sampler

	// VertexBuffer returns the mesh vertex buffer.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the mesh index buffer (uint32 indices).
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices drawn per call.
	IndexCount() int

	// SetBindGroup stores the created bind group.
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBindGroupLayout stores the created bind group layout.
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetUniformBuffer stores the created uniform buffer.
	SetUniformBuffer(buf *wgpu.Buffer)

	// SetTexture stores the created texture and its view. The provider releases both.
	//
	// Parameters:
	//   - tex: the texture
	//   - view: a view of tex
	SetTexture(tex *wgpu.Texture, view *wgpu.TextureView)

	// SetSampler stores the created sampler.
	SetSampler(s *wgpu.Sampler)

	// SetMesh stores the mesh buffers and the index count used for draw calls.
	//
	// Parameters:
	//   - vertexBuffer: the vertex buffer
	//   - indexBuffer: the uint32 index buffer
	//   - indexCount: the number of indices
	SetMesh(vertexBuffer, indexBuffer *wgpu.Buffer, indexCount int)
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty provider.
//
// Parameters:
//   - label: the debug label used for the provider's GPU objects
//   - options: functional options to pre-set resources
//
// Returns:
//   - BindGroupProvider: the provider
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label: label,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *bindGroupProvider) UniformBuffer() *wgpu.Buffer {
	return p.uniformBuffer
}

func (p *bindGroupProvider) TextureView() *wgpu.TextureView {
	return p.textureView
}

func (p *bindGroupProvider) Sampler() *wgpu.Sampler {
	return p.sampler
}

func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *bindGroupProvider) IndexCount() int {
	return p.indexCount
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetUniformBuffer(buf *wgpu.Buffer) {
	p.uniformBuffer = buf
}

func (p *bindGroupProvider) SetTexture(tex *wgpu.Texture, view *wgpu.TextureView) {
	p.texture = tex
	p.textureView = view
}

func (p *bindGroupProvider) SetSampler(s *wgpu.Sampler) {
	p.sampler = s
}

func (p *bindGroupProvider) SetMesh(vertexBuffer, indexBuffer *wgpu.Buffer, indexCount int) {
	p.vertexBuffer = vertexBuffer
	p.indexBuffer = indexBuffer
	p.indexCount = indexCount
}

func (p *bindGroupProvider) Release() {
	// the bind group references the buffer, view and sampler, so it goes first
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
	if p.uniformBuffer != nil {
		p.uniformBuffer.Release()
		p.uniformBuffer = nil
	}
	if p.sampler != nil {
		p.sampler.Release()
		p.sampler = nil
	}
	if p.textureView != nil {
		p.textureView.Release()
		p.textureView = nil
	}
	if p.texture != nil {
		p.texture.Release()
		p.texture = nil
	}
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
	p.indexCount = 0
}
