package transform

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/animation"
	"github.com/Carmen-Shannon/floatarts/engine/camera"
	"github.com/Carmen-Shannon/floatarts/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// nearVec compares with an absolute tolerance; mgl32's relative comparison is
// too strict for components that should be exactly zero.
func nearVec(have, want mgl32.Vec3) bool {
	return have.Sub(want).Len() < eps
}

func nearMat(have, want mgl32.Mat4) bool {
	for i := range have {
		if mgl32.Abs(have[i]-want[i]) >= eps {
			return false
		}
	}
	return true
}

func ceiling(v float32) *float32 { return &v }

func newComposer(t *testing.T, options ...ComposerBuilderOption) Composer {
	t.Helper()
	c, err := NewComposer(options...)
	if err != nil {
		t.Fatalf("NewComposer: %v", err)
	}
	return c
}

func TestView(t *testing.T) {
	c := newComposer(t)
	cam := camera.NewState()
	v := c.View(cam)

	// the world origin sits two units in front of the default camera
	if o := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3(); !nearVec(o, mgl32.Vec3{0, 0, -2}) {
		t.Fatalf("View() * origin\nhave %v\nwant [0 0 -2]", o)
	}
	want := mgl32.LookAtV(cam.Position, cam.Position.Add(cam.Facing), cam.Up)
	if !nearMat(v, want) {
		t.Fatalf("View()\nhave %v\nwant %v", v, want)
	}
}

func TestProjectionAspect(t *testing.T) {
	c := newComposer(t)
	p := c.Projection()
	if r := p[5] / p[0]; !mgl32.FloatEqualThreshold(r, 16.0/9.0, eps) {
		t.Fatalf("Projection(): p[5]/p[0]\nhave %v\nwant %v", r, 16.0/9.0)
	}
	want := mgl32.Perspective(mgl32.DegToRad(45), 1920.0/1080.0, 0.1, 1000)
	if !nearMat(p, want) {
		t.Fatalf("Projection()\nhave %v\nwant %v", p, want)
	}

	c.SetAspect(800, 800)
	if a := c.Aspect(); a != 1 {
		t.Fatalf("SetAspect(800, 800): Aspect()\nhave %v\nwant 1", a)
	}
	c.SetAspect(0, 600)
	if a := c.Aspect(); a != 1 {
		t.Fatalf("SetAspect(0, 600): Aspect()\nhave %v\nwant 1", a)
	}
}

func TestModel(t *testing.T) {
	c := newComposer(t)
	m := c.Model(90)
	if p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3(); !nearVec(p, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("Model(90) * [1 0 0]\nhave %v\nwant [0 0 -1]", p)
	}
	if !nearMat(c.Model(0), mgl32.Ident4()) {
		t.Fatalf("Model(0)\nhave %v\nwant identity", c.Model(0))
	}
}

func TestComposeUnlit(t *testing.T) {
	v := Variant{Name: "cube", Increment: 30, Ceiling: ceiling(10400)}
	c := newComposer(t, WithVariant(v))
	cam := camera.NewState()
	clock := v.NewClock(0)

	f := c.Compose(cam, clock, 1)
	if !f.Advanced || clock.Angle() != 30 {
		t.Fatalf("Compose(now=1): Advanced, Angle()\nhave %t, %v\nwant true, 30", f.Advanced, clock.Angle())
	}
	want := c.Projection().Mul4(c.View(cam)).Mul4(c.Model(30))
	if !nearMat(f.CamMatrix, want) {
		t.Fatalf("Compose(): CamMatrix\nhave %v\nwant %v", f.CamMatrix, want)
	}
	if !nearMat(f.Model, c.Model(30)) {
		t.Fatalf("Compose(): Model\nhave %v\nwant %v", f.Model, c.Model(30))
	}
	if f.LightMatrix != (mgl32.Mat4{}) || f.LightColor != (mgl32.Vec4{}) {
		t.Fatalf("Compose(unlit): LightMatrix, LightColor\nhave %v, %v\nwant zero", f.LightMatrix, f.LightColor)
	}
	if f.CamPos != cam.Position {
		t.Fatalf("Compose(): CamPos\nhave %v\nwant %v", f.CamPos, cam.Position)
	}

	// same instant: no tick, same matrices
	g := c.Compose(cam, clock, 1)
	if g.Advanced || g.CamMatrix != f.CamMatrix {
		t.Fatalf("Compose(now=1) again: Advanced, CamMatrix\nhave %t, %v\nwant false, %v", g.Advanced, g.CamMatrix, f.CamMatrix)
	}
}

func TestComposeLit(t *testing.T) {
	l := light.NewLight(light.WithPosition(0.5, 0.5, 0.5), light.WithColor(1, 0.9, 0.8, 1))
	v := Variant{Name: "lit", HasLight: true, HasNormals: true, Increment: 0.5}
	c := newComposer(t, WithVariant(v), WithLight(l))
	cam := camera.NewState()
	clock := v.NewClock(0)

	f := c.Compose(cam, clock, 1)
	viewProj := c.Projection().Mul4(c.View(cam))
	if !nearMat(f.LightMatrix, viewProj) {
		t.Fatalf("Compose(lit): LightMatrix\nhave %v\nwant %v", f.LightMatrix, viewProj)
	}
	if f.LightModel != l.MarkerModel() {
		t.Fatalf("Compose(lit): LightModel\nhave %v\nwant %v", f.LightModel, l.MarkerModel())
	}
	if f.LightPos != l.Position() || f.LightColor != l.Color() {
		t.Fatalf("Compose(lit): LightPos, LightColor\nhave %v, %v\nwant %v, %v", f.LightPos, f.LightColor, l.Position(), l.Color())
	}
}

func TestComposeFollowsCamera(t *testing.T) {
	c := newComposer(t)
	cam := camera.NewState()
	ctrl := camera.NewController()
	clock := animation.NewClock()

	var in camera.InputSnapshot
	in.Pressed[common.ActionForward] = true
	ctrl.Update(cam, in, nil)

	f := c.Compose(cam, clock, 0)
	if !nearVec(f.CamPos, mgl32.Vec3{0, 0, 1.9}) {
		t.Fatalf("Compose() after forward: CamPos\nhave %v\nwant [0 0 1.9]", f.CamPos)
	}
	if o := f.View.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3(); !nearVec(o, mgl32.Vec3{0, 0, -1.9}) {
		t.Fatalf("View * origin after forward\nhave %v\nwant [0 0 -1.9]", o)
	}
}

func TestLitVariantWithoutLight(t *testing.T) {
	c, err := NewComposer(WithVariant(Variant{Name: "lit", HasLight: true}))
	if !errors.Is(err, common.ErrInitialization) || c != nil {
		t.Fatalf("NewComposer(lit, no light)\nhave %v, %v\nwant nil, %v", c, err, common.ErrInitialization)
	}
}
