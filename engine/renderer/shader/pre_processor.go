// pre_processor.go implements the shader pre-processor. GLSL and WGSL sources share one
// directive syntax so a single file per stage can serve every demo variant:
//
//	//@include <name>   replaced with a registered snippet (e.g. the WGSL FrameUniform struct)
//	//@if <FEATURE>     keeps the following lines only when FEATURE is enabled
//	//@else             flips the enclosing //@if
//	//@endif            closes the enclosing //@if
//
// Directive lines themselves are dropped from the output.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/floatarts/common"
)

// Feature names a conditional block in a shader source.
type Feature string

const (
	// FeatureLight enables normals, the point light uniforms and Phong shading.
	FeatureLight Feature = "LIGHT"

	// FeatureScale enables the quad's vertex scale uniform.
	FeatureScale Feature = "SCALE"
)

const directivePrefix = "//@"

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// includes maps snippet names to their source text.
	includes map[string]string

	// features holds the enabled feature set.
	features map[Feature]bool
}

// PreProcessor expands //@ directives in a shader source.
type PreProcessor interface {
	// Process expands includes and resolves conditional blocks.
	//
	// Parameters:
	//   - source: the raw shader source
	//
	// Returns:
	//   - string: the processed source
	//   - error: wraps common.ErrShader for unknown directives or includes and unbalanced blocks
	Process(source string) (string, error)

	// Enabled reports whether a feature is on.
	//
	// Parameters:
	//   - f: the feature to check
	//
	// Returns:
	//   - bool: true if the feature's blocks are kept
	Enabled(f Feature) bool
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the built-in WGSL snippets registered.
//
// Parameters:
//   - options: functional options to enable features or add includes
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor(options ...PreProcessorOption) PreProcessor {
	p := &preProcessor{
		includes: map[string]string{
			"frame_uniform": frameUniformSource,
			"vertex_output": vertexOutputSource,
		},
		features: make(map[Feature]bool),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// block tracks one open //@if.
type block struct {
	line   int
	keep   bool // this branch's own condition
	parent bool // whether the enclosing scope is emitting
	inElse bool
}

func (p *preProcessor) Process(source string) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	var stack []block
	emitting := true

	for i, line := range lines {
		n := i + 1
		trimmed := strings.TrimSpace(line)
		directive, ok := strings.CutPrefix(trimmed, directivePrefix)
		if !ok {
			if emitting {
				out = append(out, line)
			}
			continue
		}

		name, arg, _ := strings.Cut(directive, " ")
		arg = strings.TrimSpace(arg)
		switch name {
		case "include":
			if !emitting {
				continue
			}
			src, ok := p.includes[arg]
			if !ok {
				return "", fmt.Errorf("%w: line %d: unknown include %q", common.ErrShader, n, arg)
			}
			out = append(out, src)
		case "if":
			if arg == "" {
				return "", fmt.Errorf("%w: line %d: //@if needs a feature name", common.ErrShader, n)
			}
			b := block{line: n, keep: p.features[Feature(arg)], parent: emitting}
			stack = append(stack, b)
			emitting = b.parent && b.keep
		case "else":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: line %d: //@else without //@if", common.ErrShader, n)
			}
			top := &stack[len(stack)-1]
			if top.inElse {
				return "", fmt.Errorf("%w: line %d: second //@else for //@if on line %d", common.ErrShader, n, top.line)
			}
			top.inElse = true
			emitting = top.parent && !top.keep
		case "endif":
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: line %d: //@endif without //@if", common.ErrShader, n)
			}
			emitting = stack[len(stack)-1].parent
			stack = stack[:len(stack)-1]
		default:
			return "", fmt.Errorf("%w: line %d: unknown directive %q", common.ErrShader, n, name)
		}
	}

	if len(stack) > 0 {
		return "", fmt.Errorf("%w: //@if on line %d is never closed", common.ErrShader, stack[len(stack)-1].line)
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Enabled(f Feature) bool {
	return p.features[f]
}

// PreProcessorOption is a functional option for configuring a PreProcessor.
type PreProcessorOption func(*preProcessor)

// WithFeatures enables features.
//
// Parameters:
//   - features: the features whose //@if blocks are kept
//
// Returns:
//   - PreProcessorOption: a function that enables the features
func WithFeatures(features ...Feature) PreProcessorOption {
	return func(p *preProcessor) {
		for _, f := range features {
			p.features[f] = true
		}
	}
}

// WithInclude registers or replaces an include snippet.
//
// Parameters:
//   - name: the name used after //@include
//   - source: the snippet text
//
// Returns:
//   - PreProcessorOption: a function that registers the snippet
func WithInclude(name, source string) PreProcessorOption {
	return func(p *preProcessor) {
		p.includes[name] = source
	}
}
