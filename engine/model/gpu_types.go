package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

const (
	// GPUVertexStride is the size of one GPUVertex in bytes.
	GPUVertexStride = 48

	// GPUVertexPositionOffset is the byte offset of GPUVertex.Position.
	GPUVertexPositionOffset = 0

	// GPUVertexNormalOffset is the byte offset of GPUVertex.Normal.
	GPUVertexNormalOffset = 12

	// GPUVertexTexCoordOffset is the byte offset of GPUVertex.TexCoord.
	GPUVertexTexCoordOffset = 24

	// GPUVertexColorOffset is the byte offset of GPUVertex.Color.
	GPUVertexColorOffset = 32
)

// GPUVertex is the interleaved vertex layout shared by the OpenGL and WebGPU backends.
// Unlit meshes leave Normal zeroed.
// Size: 48 bytes, tightly packed.
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
	Color    [4]float32 // offset 32: per-vertex RGBA color (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexStride)
	g.marshalInto(buf)
	return buf
}

// marshalInto writes the vertex into buf, which must hold at least GPUVertexStride bytes.
func (g *GPUVertex) marshalInto(buf []byte) {
	put := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
	}
	for i, v := range g.Position {
		put(GPUVertexPositionOffset+4*i, v)
	}
	for i, v := range g.Normal {
		put(GPUVertexNormalOffset+4*i, v)
	}
	for i, v := range g.TexCoord {
		put(GPUVertexTexCoordOffset+4*i, v)
	}
	for i, v := range g.Color {
		put(GPUVertexColorOffset+4*i, v)
	}
}

// MarshalVertices serializes a vertex slice into one contiguous buffer.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: len(vertices) * GPUVertexStride bytes
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, len(vertices)*GPUVertexStride)
	for i := range vertices {
		vertices[i].marshalInto(buf[i*GPUVertexStride:])
	}
	return buf
}

// MarshalIndices serializes a uint32 index slice, little-endian.
//
// Parameters:
//   - indices: the indices to serialize
//
// Returns:
//   - []byte: 4 * len(indices) bytes
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, 4*len(indices))
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[4*i:], idx)
	}
	return buf
}
