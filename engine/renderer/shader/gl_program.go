package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileGLProgram compiles and links a GLSL vertex/fragment pair. It requires a
// current OpenGL context.
//
// Parameters:
//   - vertex: the GLSL vertex stage
//   - fragment: the GLSL fragment stage
//
// Returns:
//   - uint32: the linked program name
//   - error: wraps common.ErrShader with the driver's info log on compile or link failure
func CompileGLProgram(vertex, fragment Shader) (uint32, error) {
	if vertex.Language() != LanguageGLSL || fragment.Language() != LanguageGLSL {
		return 0, fmt.Errorf("%w: %s/%s are not GLSL", common.ErrShader, vertex.Key(), fragment.Key())
	}

	vert, err := compileGLShader(vertex.Source(), gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", common.ErrShader, vertex.Key(), err)
	}
	frag, err := compileGLShader(fragment.Source(), gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("%w: %s: %v", common.ErrShader, fragment.Key(), err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	// the shaders are flagged for deletion and freed with the program
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("%w: link %s+%s: %s", common.ErrShader, vertex.Key(), fragment.Key(), strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func compileGLShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
