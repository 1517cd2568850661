package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGPUVertexLayout(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{4, 5, 6},
		TexCoord: [2]float32{7, 8},
		Color:    [4]float32{9, 10, 11, 12},
	}
	if n := v.Size(); n != GPUVertexStride {
		t.Fatalf("v.Size()\nhave %d\nwant %d", n, GPUVertexStride)
	}
	buf := v.Marshal()
	for i := 0; i < 12; i++ {
		f := math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
		if f != float32(i+1) {
			t.Fatalf("v.Marshal(): float %d\nhave %v\nwant %v", i, f, i+1)
		}
	}
}

func TestMarshalIndices(t *testing.T) {
	buf := MarshalIndices([]uint32{0, 1, 65536})
	if len(buf) != 12 {
		t.Fatalf("len(MarshalIndices(...))\nhave %d\nwant 12", len(buf))
	}
	if x := binary.LittleEndian.Uint32(buf[8:]); x != 65536 {
		t.Fatalf("MarshalIndices(...)[2]\nhave %d\nwant 65536", x)
	}
}

func TestMeshes(t *testing.T) {
	cases := []struct {
		m        Model
		name     string
		vertices int
		indices  int
		normals  bool
	}{
		{NewQuad(), MeshQuad, 4, 6, false},
		{NewCube(), MeshCube, 24, 36, false},
		{NewLitCube(), MeshLitCube, 24, 36, true},
		{NewLightMarker(), MeshLightMarker, 8, 36, false},
	}
	for _, x := range cases {
		if x.m.Name() != x.name {
			t.Fatalf("Name()\nhave %q\nwant %q", x.m.Name(), x.name)
		}
		if n := len(x.m.Vertices()); n != x.vertices {
			t.Fatalf("%s: len(Vertices())\nhave %d\nwant %d", x.name, n, x.vertices)
		}
		if n := x.m.IndexCount(); n != x.indices {
			t.Fatalf("%s: IndexCount()\nhave %d\nwant %d", x.name, n, x.indices)
		}
		if n := len(x.m.VertexData()); n != x.vertices*GPUVertexStride {
			t.Fatalf("%s: len(VertexData())\nhave %d\nwant %d", x.name, n, x.vertices*GPUVertexStride)
		}
		if n := len(x.m.IndexData()); n != 4*x.indices {
			t.Fatalf("%s: len(IndexData())\nhave %d\nwant %d", x.name, n, 4*x.indices)
		}
		if x.m.HasNormals() != x.normals {
			t.Fatalf("%s: HasNormals()\nhave %t\nwant %t", x.name, x.m.HasNormals(), x.normals)
		}
	}
}

func TestLitCubeNormalsPointOutward(t *testing.T) {
	for i, v := range NewLitCube().Vertices() {
		var dot float32
		for k := 0; k < 3; k++ {
			dot += v.Position[k] * v.Normal[k]
		}
		if dot <= 0 {
			t.Fatalf("vertex %d: dot(Position, Normal)\nhave %v\nwant > 0", i, dot)
		}
	}
}

func TestForVariant(t *testing.T) {
	if n := ForVariant(true, true).Name(); n != MeshQuad {
		t.Fatalf("ForVariant(true, true)\nhave %q\nwant %q", n, MeshQuad)
	}
	if n := ForVariant(false, true).Name(); n != MeshLitCube {
		t.Fatalf("ForVariant(false, true)\nhave %q\nwant %q", n, MeshLitCube)
	}
	if n := ForVariant(false, false).Name(); n != MeshCube {
		t.Fatalf("ForVariant(false, false)\nhave %q\nwant %q", n, MeshCube)
	}
}

func TestNewModelRejectsBadIndices(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModel(index out of range)\nhave no panic\nwant panic")
		}
	}()
	NewModel(WithName("bad"), WithVertices(make([]GPUVertex, 2)), WithIndices([]uint32{0, 1, 2}))
}
