package renderer

import (
	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/transform"
)

// GPUFrameUniformSize is the std140 size of FrameUniform in the WGSL sources.
const GPUFrameUniformSize = 176

// GPUFrameUniform holds the per-draw uniform values. Its memory layout matches the WGSL
// FrameUniform struct; the GL backend uploads the same fields as individual uniforms.
type GPUFrameUniform struct {
	CamMatrix  [16]float32 // camMatrix, offset 0
	Model      [16]float32 // model, offset 64
	LightColor [4]float32  // lightColor, offset 128
	LightPos   [3]float32  // lightPos, offset 144
	Scale      float32     // scale, offset 156
	CamPos     [3]float32  // camPos, offset 160
	_          float32
}

// Size returns the size in bytes of the uniform.
func (u *GPUFrameUniform) Size() int {
	return GPUFrameUniformSize
}

// Marshal returns a byte view of the uniform for a buffer write. The slice shares memory
// with u.
func (u *GPUFrameUniform) Marshal() []byte {
	return common.StructToBytes(u)
}

// objectUniform returns the uniform values for drawing the quad or cube.
func objectUniform(f transform.Frame) GPUFrameUniform {
	return GPUFrameUniform{
		CamMatrix:  [16]float32(f.CamMatrix),
		Model:      [16]float32(f.Model),
		LightColor: [4]float32(f.LightColor),
		LightPos:   [3]float32(f.LightPos),
		Scale:      f.Scale,
		CamPos:     [3]float32(f.CamPos),
	}
}

// markerUniform returns the uniform values for drawing the light marker.
func markerUniform(f transform.Frame) GPUFrameUniform {
	return GPUFrameUniform{
		CamMatrix:  [16]float32(f.LightMatrix),
		Model:      [16]float32(f.LightModel),
		LightColor: [4]float32(f.LightColor),
		LightPos:   [3]float32(f.LightPos),
		CamPos:     [3]float32(f.CamPos),
	}
}
