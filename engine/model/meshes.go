package model

// Mesh names, used as backend buffer keys.
const (
	MeshQuad        = "quad"
	MeshCube        = "cube"
	MeshLitCube     = "lit_cube"
	MeshLightMarker = "light_marker"
)

// cubeFace is one side of the unit cube centred on the origin.
type cubeFace struct {
	corners [4][3]float32
	normal  [3]float32
	color   [4]float32
	uvs     [4][2]float32
}

var (
	fullUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	// the back face is seen mirrored from outside, so its U runs the other way
	backUV = [4][2]float32{{1, 0}, {0, 0}, {0, 1}, {1, 1}}
	noUV   = [4][2]float32{}
)

// cubeFaces lists the six faces in back, front, left, right, top, bottom order. Only the
// back and front faces are textured on the unlit cube; the other four show their color.
var cubeFaces = [6]cubeFace{
	{
		corners: [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
		normal:  [3]float32{0, 0, -1},
		color:   [4]float32{1, 0, 0, 1},
		uvs:     backUV,
	},
	{
		corners: [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
		normal:  [3]float32{0, 0, 1},
		color:   [4]float32{1, 1, 1, 1},
		uvs:     fullUV,
	},
	{
		corners: [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
		normal:  [3]float32{-1, 0, 0},
		color:   [4]float32{0, 1, 0, 1},
		uvs:     noUV,
	},
	{
		corners: [4][3]float32{{0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}},
		normal:  [3]float32{1, 0, 0},
		color:   [4]float32{0, 0, 1, 1},
		uvs:     noUV,
	},
	{
		corners: [4][3]float32{{-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
		normal:  [3]float32{0, 1, 0},
		color:   [4]float32{1, 1, 0, 1},
		uvs:     noUV,
	},
	{
		corners: [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
		normal:  [3]float32{0, -1, 0},
		color:   [4]float32{0.5, 0.5, 0.5, 1},
		uvs:     noUV,
	},
}

// quadIndices returns the two triangles of a quad whose first vertex is base.
func quadIndices(base uint32) []uint32 {
	return []uint32{base, base + 1, base + 2, base, base + 2, base + 3}
}

// buildCube assembles 24 vertices (four per face) and 36 indices.
func buildCube(lit bool) ([]GPUVertex, []uint32) {
	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range cubeFaces {
		indices = append(indices, quadIndices(uint32(len(vertices)))...)
		for i, p := range f.corners {
			v := GPUVertex{Position: p, Color: f.color, TexCoord: f.uvs[i]}
			if lit {
				v.Normal = f.normal
				v.Color = [4]float32{1, 1, 1, 1}
				v.TexCoord = fullUV[i]
			}
			vertices = append(vertices, v)
		}
	}
	return vertices, indices
}

// NewQuad creates the textured unit quad in the XY plane facing +Z.
//
// Returns:
//   - Model: a 4-vertex, 6-index mesh
func NewQuad() Model {
	vertices := []GPUVertex{
		{Position: [3]float32{-0.5, -0.5, 0}, Color: [4]float32{1, 0, 0, 1}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{0.5, -0.5, 0}, Color: [4]float32{0, 1, 0, 1}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{0.5, 0.5, 0}, Color: [4]float32{0, 0, 1, 1}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{-0.5, 0.5, 0}, Color: [4]float32{1, 1, 1, 1}, TexCoord: [2]float32{0, 1}},
	}
	return NewModel(WithName(MeshQuad), WithVertices(vertices), WithIndices(quadIndices(0)))
}

// NewCube creates the unlit cube: textured back and front faces, flat-colored sides.
//
// Returns:
//   - Model: a 24-vertex, 36-index mesh
func NewCube() Model {
	vertices, indices := buildCube(false)
	return NewModel(WithName(MeshCube), WithVertices(vertices), WithIndices(indices))
}

// NewLitCube creates the cube used with the point light: every face textured, white,
// with outward face normals.
//
// Returns:
//   - Model: a 24-vertex, 36-index mesh with normals
func NewLitCube() Model {
	vertices, indices := buildCube(true)
	return NewModel(WithName(MeshLitCube), WithVertices(vertices), WithIndices(indices), WithNormals(true))
}

// NewLightMarker creates the small white cube drawn at the light position. It shares
// corner positions between faces since it is drawn unlit and untextured.
//
// Returns:
//   - Model: an 8-vertex, 36-index mesh
func NewLightMarker() Model {
	white := [4]float32{1, 1, 1, 1}
	vertices := []GPUVertex{
		{Position: [3]float32{-0.5, -0.5, 0.5}, Color: white},
		{Position: [3]float32{-0.5, -0.5, -0.5}, Color: white},
		{Position: [3]float32{0.5, -0.5, -0.5}, Color: white},
		{Position: [3]float32{0.5, -0.5, 0.5}, Color: white},
		{Position: [3]float32{-0.5, 0.5, 0.5}, Color: white},
		{Position: [3]float32{-0.5, 0.5, -0.5}, Color: white},
		{Position: [3]float32{0.5, 0.5, -0.5}, Color: white},
		{Position: [3]float32{0.5, 0.5, 0.5}, Color: white},
	}
	indices := []uint32{
		0, 1, 2, 0, 2, 3,
		0, 4, 7, 0, 7, 3,
		3, 7, 6, 3, 6, 2,
		2, 6, 5, 2, 5, 1,
		1, 5, 4, 1, 4, 0,
		4, 5, 6, 4, 6, 7,
	}
	return NewModel(WithName(MeshLightMarker), WithVertices(vertices), WithIndices(indices))
}

// ForVariant returns the object mesh for a variant: the quad when quad is set, else the
// lit or unlit cube.
//
// Parameters:
//   - quad: true for the flat textured quad
//   - hasNormals: true for the lit cube
//
// Returns:
//   - Model: the selected mesh
func ForVariant(quad, hasNormals bool) Model {
	switch {
	case quad:
		return NewQuad()
	case hasNormals:
		return NewLitCube()
	default:
		return NewCube()
	}
}
