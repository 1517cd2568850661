package shader

import (
	"embed"
	"fmt"
	"path"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader runs in.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

func (t ShaderType) ext() string {
	if t == ShaderTypeFragment {
		return "frag"
	}
	return "vert"
}

// Language identifies the shading language of a source.
type Language int

const (
	// LanguageGLSL is GLSL 4.10 core, consumed by the OpenGL backend.
	LanguageGLSL Language = iota

	// LanguageWGSL is WGSL, consumed by the WebGPU backend.
	LanguageWGSL
)

func (l Language) ext() string {
	if l == LanguageWGSL {
		return "wgsl"
	}
	return "glsl"
}

// Program names of the embedded sources.
const (
	// ProgramObject draws the quad or cube.
	ProgramObject = "object"

	// ProgramMarker draws the light marker cube.
	ProgramMarker = "marker"
)

//go:embed assets/*.glsl assets/*.wgsl
var assets embed.FS

//go:embed assets/frame_uniform.wgsl
var frameUniformSource string

//go:embed assets/vertex_output.wgsl
var vertexOutputSource string

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	language   Language
	entryPoint string
	module     *wgpu.ShaderModuleDescriptor
}

// Shader is one pre-processed shader stage.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for labels and logs.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed source code.
	//
	// Returns:
	//   - string: the shader source
	Source() string

	// ShaderType returns the stage this shader runs in.
	ShaderType() ShaderType

	// Language returns the shading language of the source.
	Language() Language

	// EntryPoint returns the entry point name: "main" for GLSL, vs_main/fs_main for WGSL.
	EntryPoint() string

	// Module returns the WebGPU module descriptor, or nil for GLSL sources.
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader pre-processes a source into a Shader.
//
// Parameters:
//   - key: the shader's label
//   - shaderType: the stage
//   - language: the shading language
//   - source: the raw source with //@ directives
//   - pp: the pre-processor carrying the enabled features
//
// Returns:
//   - Shader: the processed shader
//   - error: wraps common.ErrShader if pre-processing fails
func NewShader(key string, shaderType ShaderType, language Language, source string, pp PreProcessor) (Shader, error) {
	processed, err := pp.Process(source)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", key, err)
	}
	s := &shader{
		key:        key,
		source:     processed,
		shaderType: shaderType,
		language:   language,
		entryPoint: "main",
	}
	if language == LanguageWGSL {
		if shaderType == ShaderTypeFragment {
			s.entryPoint = "fs_main"
		} else {
			s.entryPoint = "vs_main"
		}
		s.module = &wgpu.ShaderModuleDescriptor{
			Label: s.key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: s.source,
			},
		}
	}
	return s, nil
}

// Load reads an embedded program stage and pre-processes it.
//
// Parameters:
//   - program: ProgramObject or ProgramMarker
//   - shaderType: the stage
//   - language: the shading language
//   - features: the features to enable
//
// Returns:
//   - Shader: the processed shader
//   - error: wraps common.ErrShader if the source is missing or malformed
func Load(program string, shaderType ShaderType, language Language, features ...Feature) (Shader, error) {
	name := fmt.Sprintf("%s.%s.%s", program, shaderType.ext(), language.ext())
	raw, err := assets.ReadFile(path.Join("assets", name))
	if err != nil {
		return nil, fmt.Errorf("%w: no embedded shader %s", common.ErrShader, name)
	}
	return NewShader(name, shaderType, language, string(raw), NewPreProcessor(WithFeatures(features...)))
}

// LoadPair loads the vertex and fragment stages of a program.
//
// Parameters:
//   - program: ProgramObject or ProgramMarker
//   - language: the shading language
//   - features: the features to enable
//
// Returns:
//   - vertex, fragment: the processed stages
//   - error: wraps common.ErrShader on failure
func LoadPair(program string, language Language, features ...Feature) (vertex, fragment Shader, err error) {
	if vertex, err = Load(program, ShaderTypeVertex, language, features...); err != nil {
		return nil, nil, err
	}
	if fragment, err = Load(program, ShaderTypeFragment, language, features...); err != nil {
		return nil, nil, err
	}
	return vertex, fragment, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Language() Language {
	return s.language
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}
