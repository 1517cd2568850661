package renderer

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/model"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode
	sampleCount MSAASampleCount
	clearColor  [4]float32

	// textures owns the session texture, its view and the sampler.
	textures bind_group_provider.BindGroupProvider

	// providers hold per-drawable resources keyed by pipeline key
	providers       map[string]bind_group_provider.BindGroupProvider
	renderPipelines []*wgpu.RenderPipeline
	pipelineLayouts []*wgpu.PipelineLayout
	shaderModules   []*wgpu.ShaderModule

	// Frame state for batched rendering across multiple draw calls
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) (RendererBackend, error) {
	runtime.LockOSThread()
	if surfaceDescriptor == nil {
		return nil, fmt.Errorf("window has no surface descriptor: %w", common.ErrInitialization)
	}

	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		clearColor:  [4]float32{1, 1, 1, 1},
		textures:    bind_group_provider.NewBindGroupProvider("Session"),
		providers:   make(map[string]bind_group_provider.BindGroupProvider),
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %v: %w", err, common.ErrInitialization)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %v: %w", err, common.ErrInitialization)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w, nil
}

func (b *wgpuRendererBackendImpl) Language() shader.Language {
	return shader.LanguageWGSL
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	if b.surfaceFormat == nil {
		// pipelines are created against this format, so it is fixed after the first configure
		b.surfaceFormat = &capabilities.Formats[0]
	}

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseTargets()

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// The render pass draws into the MSAA texture; the resolved
		// result is written to the swapchain view as the ResolveTarget.
		tex, view, err := b.createTarget("MSAA Texture", width, height, *b.surfaceFormat)
		if err != nil {
			log.Printf("[Renderer] create MSAA target: %v", err)
			return
		}
		b.msaaTexture, b.msaaTextureView = tex, view
	}

	// Depth texture sample count must match the color attachment.
	tex, view, err := b.createTarget("Depth Texture", width, height, wgpu.TextureFormatDepth24Plus)
	if err != nil {
		log.Printf("[Renderer] create depth target: %v", err)
		return
	}
	b.depthTexture, b.depthTextureView = tex, view

	// When MSAA is enabled, View is the MSAA texture and ResolveTarget is
	// set per-frame to the swapchain view. When disabled, View is set
	// per-frame to the swapchain view and ResolveTarget remains nil.
	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	c := b.clearColor
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:          b.msaaTextureView,
				ResolveTarget: nil,
				LoadOp:        wgpu.LoadOpClear,
				StoreOp:       storeOp,
				ClearValue: wgpu.Color{
					R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3]),
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

// createTarget creates a render attachment texture and its view at the backend's sample count.
func (b *wgpuRendererBackendImpl) createTarget(label string, width, height int, format wgpu.TextureFormat) (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   uint32(b.sampleCount),
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, nil, err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, nil, err
	}
	return tex, view, nil
}

func (b *wgpuRendererBackendImpl) releaseTargets() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(rgba [4]float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearColor = rgba
	if b.renderPassDescriptor != nil {
		b.renderPassDescriptor.ColorAttachments[0].ClearValue = wgpu.Color{
			R: float64(rgba[0]), G: float64(rgba[1]), B: float64(rgba[2]), A: float64(rgba[3]),
		}
	}
}

func (b *wgpuRendererBackendImpl) InitTexture(stagingData common.TextureStagingData, samplerStagingData common.SamplerStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:     stagingData.Name,
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		stagingData.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  stagingData.Width * 4,
			RowsPerImage: stagingData.Height,
		},
		&wgpu.Extent3D{
			Width:              stagingData.Width,
			Height:             stagingData.Height,
			DepthOrArrayLayers: 1,
		},
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return err
	}

	samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         stagingData.Name + " Sampler",
		AddressModeU:  common.Coalesce(samplerStagingData.AddressModeU, wgpu.AddressModeRepeat),
		AddressModeV:  common.Coalesce(samplerStagingData.AddressModeV, wgpu.AddressModeRepeat),
		AddressModeW:  common.Coalesce(samplerStagingData.AddressModeW, wgpu.AddressModeRepeat),
		MagFilter:     common.Coalesce(samplerStagingData.MagFilter, wgpu.FilterModeLinear),
		MinFilter:     common.Coalesce(samplerStagingData.MinFilter, wgpu.FilterModeLinear),
		MipmapFilter:  common.Coalesce(samplerStagingData.MipmapFilter, wgpu.MipmapFilterModeLinear),
		LodMinClamp:   common.Coalesce(samplerStagingData.LodMinClamp, 0.0),
		LodMaxClamp:   common.Coalesce(samplerStagingData.LodMaxClamp, 32.0),
		MaxAnisotropy: common.Coalesce(samplerStagingData.MaxAnisotropy, 1),
	})
	if err != nil {
		view.Release()
		tex.Release()
		return err
	}

	b.textures.Release()
	b.textures.SetTexture(tex, view)
	b.textures.SetSampler(samp)
	return nil
}

// bindGroupLayoutFor returns the group 0 layout: the frame uniform, plus tex0 and samp0
// for textured pipelines.
func bindGroupLayoutFor(p pipeline.Pipeline) wgpu.BindGroupLayoutDescriptor {
	entries := []wgpu.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: GPUFrameUniformSize,
			},
		},
	}
	if p.Textured() {
		entries = append(entries,
			wgpu.BindGroupLayoutEntry{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			wgpu.BindGroupLayoutEntry{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		)
	}
	return wgpu.BindGroupLayoutDescriptor{
		Label:   p.PipelineKey() + " Bind Group Layout",
		Entries: entries,
	}
}

// vertexLayoutFor describes GPUVertex; the marker reads only the position.
func vertexLayoutFor(p pipeline.Pipeline) wgpu.VertexBufferLayout {
	attrs := []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: model.GPUVertexPositionOffset, ShaderLocation: 0},
	}
	if p.Textured() {
		attrs = append(attrs,
			wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x3, Offset: model.GPUVertexNormalOffset, ShaderLocation: 1},
			wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x2, Offset: model.GPUVertexTexCoordOffset, ShaderLocation: 2},
			wgpu.VertexAttribute{Format: wgpu.VertexFormatFloat32x4, Offset: model.GPUVertexColorOffset, ShaderLocation: 3},
		)
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: model.GPUVertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

func (b *wgpuRendererBackendImpl) RegisterPipeline(p pipeline.Pipeline) error {
	vertexShader := p.Shader(shader.ShaderTypeVertex)
	fragmentShader := p.Shader(shader.ShaderTypeFragment)
	if vertexShader == nil || fragmentShader == nil {
		return errors.New("both vertex and fragment shaders must be set to create a render pipeline")
	}
	if vertexShader.Language() != shader.LanguageWGSL || fragmentShader.Language() != shader.LanguageWGSL {
		return fmt.Errorf("%w: %s/%s are not WGSL", common.ErrShader, vertexShader.Key(), fragmentShader.Key())
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surfaceFormat == nil {
		return errors.New("surface must be configured before registering pipelines")
	}

	vs, err := b.device.CreateShaderModule(vertexShader.Module())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrShader, vertexShader.Key(), err)
	}
	b.shaderModules = append(b.shaderModules, vs)
	fs, err := b.device.CreateShaderModule(fragmentShader.Module())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrShader, fragmentShader.Key(), err)
	}
	b.shaderModules = append(b.shaderModules, fs)

	layoutDesc := bindGroupLayoutFor(p)
	layout, err := b.device.CreateBindGroupLayout(&layoutDesc)
	if err != nil {
		return fmt.Errorf("failed to create bind group layout for %s: %w", p.PipelineKey(), err)
	}
	provider := bind_group_provider.NewBindGroupProvider(p.PipelineKey(), bind_group_provider.WithBindGroupLayout(layout))

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		provider.Release()
		return err
	}
	b.pipelineLayouts = append(b.pipelineLayouts, pipelineLayout)

	depthCompare := wgpu.CompareFunctionLess
	if !p.DepthTestEnabled() {
		depthCompare = wgpu.CompareFunctionAlways
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: vertexShader.EntryPoint(),
			Buffers:    []wgpu.VertexBufferLayout{vertexLayoutFor(p)},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: fragmentShader.EntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: p.DepthWriteEnabled(),
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		provider.Release()
		return fmt.Errorf("%w: pipeline %s: %v", common.ErrShader, p.PipelineKey(), err)
	}
	b.renderPipelines = append(b.renderPipelines, created)

	if old, ok := b.providers[p.PipelineKey()]; ok {
		old.Release()
	}
	b.providers[p.PipelineKey()] = provider
	p.SetHandle(created)
	return nil
}

func (b *wgpuRendererBackendImpl) InitMesh(p pipeline.Pipeline, m model.Model) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	provider, ok := b.providers[p.PipelineKey()]
	if !ok {
		return fmt.Errorf("pipeline %q is not registered", p.PipelineKey())
	}

	vertexData := m.VertexData()
	indexData := m.IndexData()
	if len(vertexData) == 0 || len(indexData) == 0 {
		return fmt.Errorf("mesh %q is empty", m.Name())
	}

	vertexBuffer, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            provider.Label() + " Vertex Buffer",
		Size:             uint64(len(vertexData)),
		Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(vertexBuffer, 0, vertexData)

	indexBuffer, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            provider.Label() + " Index Buffer",
		Size:             uint64(len(indexData)),
		Usage:            wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		vertexBuffer.Release()
		return err
	}
	b.queue.WriteBuffer(indexBuffer, 0, indexData)
	provider.SetMesh(vertexBuffer, indexBuffer, m.IndexCount())

	uniformBuffer, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: provider.Label() + " Uniform Buffer",
		Size:  GPUFrameUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	provider.SetUniformBuffer(uniformBuffer)

	entries := []wgpu.BindGroupEntry{
		{
			Binding: 0,
			Buffer:  uniformBuffer,
			Offset:  0,
			Size:    wgpu.WholeSize,
		},
	}
	if p.Textured() {
		if b.textures.TextureView() == nil || b.textures.Sampler() == nil {
			return errors.New("texture binding has no texture view, call InitTexture first")
		}
		entries = append(entries,
			wgpu.BindGroupEntry{Binding: 1, TextureView: b.textures.TextureView()},
			wgpu.BindGroupEntry{Binding: 2, Sampler: b.textures.Sampler()},
		)
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   provider.Label() + " Bind Group",
		Layout:  provider.BindGroupLayout(),
		Entries: entries,
	})
	if err != nil {
		return err
	}
	provider.SetBindGroup(bindGroup)
	return nil
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A surface texture that was never presented must not be acquired twice.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}
	if b.renderPassDescriptor == nil {
		return fmt.Errorf("surface is not configured")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) DrawCall(p pipeline.Pipeline, uniform *GPUFrameUniform) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	renderPipeline, ok := p.Handle().(*wgpu.RenderPipeline)
	if !ok || renderPipeline == nil {
		return fmt.Errorf("pipeline %q is not registered", p.PipelineKey())
	}
	provider, ok := b.providers[p.PipelineKey()]
	if !ok || provider.BindGroup() == nil {
		return fmt.Errorf("pipeline %q has no mesh", p.PipelineKey())
	}
	if b.framePass == nil {
		return errors.New("draw call outside of a frame")
	}

	// each drawable has its own uniform buffer, so one write per frame is ordered before the pass
	b.queue.WriteBuffer(provider.UniformBuffer(), 0, uniform.Marshal())

	b.framePass.SetPipeline(renderPipeline)
	b.framePass.SetBindGroup(0, provider.BindGroup(), nil)
	b.framePass.SetVertexBuffer(0, provider.VertexBuffer(), 0, wgpu.WholeSize)
	b.framePass.SetIndexBuffer(provider.IndexBuffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	b.framePass.DrawIndexed(uint32(provider.IndexCount()), 1, 0, 0, 0)
	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		log.Printf("[Renderer] finish frame: %v", err)
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, provider := range b.providers {
		provider.Release()
		delete(b.providers, key)
	}
	b.textures.Release()

	for i := len(b.renderPipelines) - 1; i >= 0; i-- {
		b.renderPipelines[i].Release()
	}
	for i := len(b.pipelineLayouts) - 1; i >= 0; i-- {
		b.pipelineLayouts[i].Release()
	}
	for i := len(b.shaderModules) - 1; i >= 0; i-- {
		b.shaderModules[i].Release()
	}
	b.renderPipelines, b.pipelineLayouts, b.shaderModules = nil, nil, nil

	b.releaseTargets()
	b.renderPassDescriptor = nil

	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
