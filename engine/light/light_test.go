package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// nearVec compares with an absolute tolerance; mgl32's relative comparison is
// too strict for components that should be exactly zero.
func nearVec(have, want mgl32.Vec3) bool {
	return have.Sub(want).Len() < eps
}

func TestNewLight(t *testing.T) {
	l := NewLight()
	if !nearVec(l.Position(), mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Fatalf("NewLight(): Position()\nhave %v\nwant [0.5 0.5 0.5]", l.Position())
	}
	if l.Color() != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Fatalf("NewLight(): Color()\nhave %v\nwant [1 1 1 1]", l.Color())
	}
	if !l.Enabled() {
		t.Fatal("NewLight(): Enabled()\nhave false\nwant true")
	}
}

func TestWithColorClamps(t *testing.T) {
	l := NewLight(WithColor(2, -1, 0.5, 1))
	if want := (mgl32.Vec4{1, 0, 0.5, 1}); l.Color() != want {
		t.Fatalf("WithColor(2, -1, 0.5, 1): Color()\nhave %v\nwant %v", l.Color(), want)
	}
}

func TestMarkerModel(t *testing.T) {
	l := NewLight(WithPosition(1, 2, 3), WithMarkerScale(0.1), WithMarkerScale(-4))
	m := l.MarkerModel()

	// the origin maps to the light position
	if o := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3(); !nearVec(o, mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("MarkerModel() * origin\nhave %v\nwant [1 2 3]", o)
	}
	// a unit offset shrinks to the marker scale
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	if !nearVec(p, mgl32.Vec3{1.1, 2, 3}) {
		t.Fatalf("MarkerModel() * [1 0 0]\nhave %v\nwant [1.1 2 3]", p)
	}
}
