package renderer

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/model"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/floatarts/engine/renderer/shader"
	"github.com/Carmen-Shannon/floatarts/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Uniform names shared by the GLSL sources.
const (
	uniformCamMatrix  = "camMatrix"
	uniformModel      = "model"
	uniformLightColor = "lightColor"
	uniformLightPos   = "lightPos"
	uniformCamPos     = "camPos"
	uniformScale      = "scale"
	uniformTex0       = "tex0"
)

var glUniformNames = []string{
	uniformCamMatrix, uniformModel, uniformLightColor, uniformLightPos,
	uniformCamPos, uniformScale, uniformTex0,
}

// glMesh holds the vertex array and buffers of one drawable.
type glMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

type glRendererBackendImpl struct {
	mu  *sync.Mutex
	win window.Window

	clearColor [4]float32

	texture uint32

	// keyed by pipeline key
	meshes   map[string]*glMesh
	uniforms map[string]map[string]int32
	programs []uint32
}

var _ RendererBackend = &glRendererBackendImpl{}

// newGLRendererBackend loads the OpenGL function pointers for the window's current context
// and sets the fixed state: depth testing with a less-than comparison.
func newGLRendererBackend(win window.Window) (RendererBackend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("load OpenGL functions: %v: %w", err, common.ErrInitialization)
	}
	log.Printf("[Renderer] OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &glRendererBackendImpl{
		mu:         &sync.Mutex{},
		win:        win,
		clearColor: [4]float32{1, 1, 1, 1},
		meshes:     make(map[string]*glMesh),
		uniforms:   make(map[string]map[string]int32),
	}, nil
}

func (b *glRendererBackendImpl) Language() shader.Language {
	return shader.LanguageGLSL
}

func (b *glRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *glRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		glfw.SwapInterval(0)
	case PresentModeVSync:
		fallthrough
	default:
		glfw.SwapInterval(1)
	}
}

func (b *glRendererBackendImpl) SetClearColor(rgba [4]float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearColor = rgba
}

func (b *glRendererBackendImpl) InitTexture(tex common.TextureStagingData, samp common.SamplerStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.texture != 0 {
		gl.DeleteTextures(1, &b.texture)
	}

	gl.GenTextures(1, &b.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(samp.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(samp.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glAddressMode(samp.AddressModeU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glAddressMode(samp.AddressModeV))

	// rows are tightly packed RGBA
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tex.Width), int32(tex.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("texture %q: gl error 0x%x", tex.Name, code)
	}
	return nil
}

func (b *glRendererBackendImpl) RegisterPipeline(p pipeline.Pipeline) error {
	vert := p.Shader(shader.ShaderTypeVertex)
	frag := p.Shader(shader.ShaderTypeFragment)
	if vert == nil || frag == nil {
		return errors.New("both vertex and fragment shaders must be set to create a program")
	}

	prog, err := shader.CompileGLProgram(vert, frag)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// names a variant compiles out resolve to -1, which glUniform* ignores
	locations := make(map[string]int32, len(glUniformNames))
	for _, name := range glUniformNames {
		locations[name] = gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	}
	b.uniforms[p.PipelineKey()] = locations
	b.programs = append(b.programs, prog)
	p.SetHandle(prog)
	return nil
}

func (b *glRendererBackendImpl) InitMesh(p pipeline.Pipeline, m model.Model) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	vertexData := m.VertexData()
	indexData := m.IndexData()
	if len(vertexData) == 0 || len(indexData) == 0 {
		return fmt.Errorf("mesh %q is empty", m.Name())
	}

	mesh := &glMesh{indexCount: int32(m.IndexCount())}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexData), gl.Ptr(vertexData), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indexData), gl.Ptr(indexData), gl.STATIC_DRAW)

	linkAttrib(0, 3, model.GPUVertexPositionOffset)
	linkAttrib(1, 3, model.GPUVertexNormalOffset)
	linkAttrib(2, 2, model.GPUVertexTexCoordOffset)
	linkAttrib(3, 4, model.GPUVertexColorOffset)

	// the element buffer binding is part of the VAO, so only the array buffer is unbound first
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if old, ok := b.meshes[p.PipelineKey()]; ok {
		deleteGLMesh(old)
	}
	b.meshes[p.PipelineKey()] = mesh
	return nil
}

func linkAttrib(location uint32, components int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, model.GPUVertexStride, offset)
	gl.EnableVertexAttribArray(location)
}

func (b *glRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

func (b *glRendererBackendImpl) DrawCall(p pipeline.Pipeline, uniform *GPUFrameUniform) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	prog, ok := p.Handle().(uint32)
	if !ok {
		return fmt.Errorf("pipeline %q is not registered", p.PipelineKey())
	}
	mesh, ok := b.meshes[p.PipelineKey()]
	if !ok {
		return fmt.Errorf("pipeline %q has no mesh", p.PipelineKey())
	}
	loc := b.uniforms[p.PipelineKey()]

	applyGLRasterState(p)
	gl.UseProgram(prog)

	gl.UniformMatrix4fv(loc[uniformCamMatrix], 1, false, &uniform.CamMatrix[0])
	gl.UniformMatrix4fv(loc[uniformModel], 1, false, &uniform.Model[0])
	gl.Uniform4f(loc[uniformLightColor], uniform.LightColor[0], uniform.LightColor[1], uniform.LightColor[2], uniform.LightColor[3])
	gl.Uniform3f(loc[uniformLightPos], uniform.LightPos[0], uniform.LightPos[1], uniform.LightPos[2])
	gl.Uniform3f(loc[uniformCamPos], uniform.CamPos[0], uniform.CamPos[1], uniform.CamPos[2])
	gl.Uniform1f(loc[uniformScale], uniform.Scale)

	if p.Textured() {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, b.texture)
		gl.Uniform1i(loc[uniformTex0], 0)
	}

	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return nil
}

func applyGLRasterState(p pipeline.Pipeline) {
	if p.DepthTestEnabled() {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(p.DepthWriteEnabled())

	switch p.CullMode() {
	case wgpu.CullModeBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case wgpu.CullModeFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
	if p.FrontFace() == wgpu.FrontFaceCW {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
}

func (b *glRendererBackendImpl) EndFrame() {}

func (b *glRendererBackendImpl) Present() {
	b.win.SwapBuffers()
}

func (b *glRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, mesh := range b.meshes {
		deleteGLMesh(mesh)
		delete(b.meshes, key)
	}
	if b.texture != 0 {
		gl.DeleteTextures(1, &b.texture)
		b.texture = 0
	}
	for i := len(b.programs) - 1; i >= 0; i-- {
		gl.DeleteProgram(b.programs[i])
	}
	b.programs = nil
}

func deleteGLMesh(m *glMesh) {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// glFilter maps a sampler filter to its GL enum. The zero value is linear.
func glFilter(f wgpu.FilterMode) int32 {
	if common.Coalesce(f, wgpu.FilterModeLinear) == wgpu.FilterModeNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// glAddressMode maps a sampler address mode to its GL wrap enum. The zero value repeats.
func glAddressMode(m wgpu.AddressMode) int32 {
	switch common.Coalesce(m, wgpu.AddressModeRepeat) {
	case wgpu.AddressModeClampToEdge:
		return gl.CLAMP_TO_EDGE
	case wgpu.AddressModeMirrorRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}
