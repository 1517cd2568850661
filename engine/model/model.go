package model

import "fmt"

// model is the implementation of the Model interface.
type model struct {
	name       string
	vertices   []GPUVertex
	indices    []uint32
	hasNormals bool

	vertexData []byte
	indexData  []byte
}

// Model is an indexed triangle mesh ready for upload. Vertex and index bytes are
// serialized once at construction.
type Model interface {
	// Name returns the mesh name, used as the backend's buffer key.
	Name() string

	// Vertices returns the mesh vertices.
	Vertices() []GPUVertex

	// Indices returns the triangle list indices.
	Indices() []uint32

	// HasNormals reports whether the vertices carry lighting normals.
	HasNormals() bool

	// VertexData returns the serialized vertex buffer.
	//
	// Returns:
	//   - []byte: interleaved GPUVertex data
	VertexData() []byte

	// IndexData returns the serialized uint32 index buffer.
	//
	// Returns:
	//   - []byte: little-endian index data
	IndexData() []byte

	// IndexCount returns the number of indices to draw.
	IndexCount() int
}

var _ Model = &model{}

// NewModel creates a Model from the given options. It panics if an index points past
// the vertex slice or the index count is not a multiple of three.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, option := range options {
		option(m)
	}
	if len(m.indices)%3 != 0 {
		panic(fmt.Sprintf("model %q: index count %d is not a triangle list", m.name, len(m.indices)))
	}
	for _, idx := range m.indices {
		if int(idx) >= len(m.vertices) {
			panic(fmt.Sprintf("model %q: index %d out of range [0, %d)", m.name, idx, len(m.vertices)))
		}
	}
	m.vertexData = MarshalVertices(m.vertices)
	m.indexData = MarshalIndices(m.indices)
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) HasNormals() bool {
	return m.hasNormals
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return len(m.indices)
}
