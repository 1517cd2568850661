package model

// ModelBuilderOption is a functional option for configuring a Model.
type ModelBuilderOption func(*model)

// WithName sets the model name.
//
// Parameters:
//   - name: the mesh name
//
// Returns:
//   - ModelBuilderOption: a function that sets the name
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices sets the mesh vertices.
//
// Parameters:
//   - vertices: the vertex slice, not copied
//
// Returns:
//   - ModelBuilderOption: a function that sets the vertices
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices sets the triangle list indices.
//
// Parameters:
//   - indices: the index slice, not copied
//
// Returns:
//   - ModelBuilderOption: a function that sets the indices
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithNormals marks the vertices as carrying lighting normals.
//
// Parameters:
//   - hasNormals: true if Normal is populated
//
// Returns:
//   - ModelBuilderOption: a function that sets the normals flag
func WithNormals(hasNormals bool) ModelBuilderOption {
	return func(m *model) {
		m.hasNormals = hasNormals
	}
}
