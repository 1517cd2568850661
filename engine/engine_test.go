package engine

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/config"
	"github.com/Carmen-Shannon/floatarts/engine/profiler"
	"github.com/Carmen-Shannon/floatarts/engine/transform"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

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

type fakeInput struct {
	keys     map[int]bool
	lookHeld bool
	x, y     float64
	now      float64
	closed   bool
	hidden   bool
	warps    int

	// framebuffer and screen-coordinate window sizes
	fbWidth, fbHeight         int
	screenWidth, screenHeight int
}

func (f *fakeInput) KeyDown(keyCode int) bool {
	return f.keys[keyCode]
}

func (f *fakeInput) MouseButtonDown(button int) bool {
	return button == common.MouseButtonLeft && f.lookHeld
}

func (f *fakeInput) CursorPos() (x, y float64) {
	return f.x, f.y
}

func (f *fakeInput) RequestClose() {
	f.closed = true
}

func (f *fakeInput) Time() float64 {
	return f.now
}

func (f *fakeInput) HideCursor() {
	f.hidden = true
}

func (f *fakeInput) ShowCursor() {
	f.hidden = false
}

func (f *fakeInput) Width() int {
	return f.fbWidth
}

func (f *fakeInput) Height() int {
	return f.fbHeight
}

func (f *fakeInput) ScreenSize() (width, height int) {
	return f.screenWidth, f.screenHeight
}

func (f *fakeInput) WarpCursor(x, y float64) {
	f.x, f.y = x, y
	f.warps++
}

type fakeDrawer struct {
	frames []transform.Frame
	err    error
}

func (f *fakeDrawer) Draw(frame transform.Frame) error {
	if f.err != nil {
		return f.err
	}
	f.frames = append(f.frames, frame)
	return nil
}

func newTestLoop(t *testing.T, variant string) (*loop, *fakeInput, *fakeDrawer) {
	t.Helper()
	in := &fakeInput{
		fbWidth: 1920, fbHeight: 1080,
		screenWidth: 1920, screenHeight: 1080,
	}
	return newTestLoopOn(t, variant, in)
}

func newTestLoopOn(t *testing.T, variant string, in *fakeInput) (*loop, *fakeInput, *fakeDrawer) {
	t.Helper()
	cfg, err := config.Default(variant)
	if err != nil {
		t.Fatalf("config.Default(%q): %v", variant, err)
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		t.Fatalf("KeyBindings: %v", err)
	}
	in.keys = make(map[int]bool)
	d := &fakeDrawer{}
	l := &loop{
		input:    in,
		drawer:   d,
		bindings: bindings,
		profiler: profiler.NewProfiler(profiler.WithQuiet(true)),
	}
	if err := l.buildScene(cfg, cfg.TransformVariant()); err != nil {
		t.Fatalf("buildScene: %v", err)
	}
	return l, in, d
}

func TestTickMovesForward(t *testing.T) {
	l, in, d := newTestLoop(t, config.VariantLit)
	in.keys[common.KeyW] = true

	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	want := mgl32.Vec3{0, 0, 1.9}
	if !nearVec(l.cam.Position, want) {
		t.Fatalf("camera position\nhave %v\nwant %v", l.cam.Position, want)
	}
	if len(d.frames) != 1 {
		t.Fatalf("drawn frames\nhave %d\nwant 1", len(d.frames))
	}
	if x := d.frames[0].CamPos; !nearVec(x, want) {
		t.Fatalf("Frame.CamPos\nhave %v\nwant %v", x, want)
	}
	if in.closed {
		t.Fatal("RequestClose called without the quit key")
	}
}

func TestTickQuitKey(t *testing.T) {
	l, in, d := newTestLoop(t, config.VariantQuad)
	in.keys[common.KeyEsc] = true

	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	if !in.closed {
		t.Fatal("RequestClose not called for the quit key")
	}
	// the frame in flight is still drawn
	if len(d.frames) != 1 {
		t.Fatalf("drawn frames\nhave %d\nwant 1", len(d.frames))
	}
}

func TestTickAdvancesClock(t *testing.T) {
	l, in, d := newTestLoop(t, config.VariantCube)

	in.now = 0.001
	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	if x := l.clock.Angle(); x != 0 {
		t.Fatalf("angle before the step elapses\nhave %v\nwant 0", x)
	}

	in.now = 0.02
	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	if x := l.clock.Angle(); x != 30 {
		t.Fatalf("angle after one step\nhave %v\nwant 30", x)
	}
	want := mgl32.HomogRotate3DY(mgl32.DegToRad(30))
	if x := d.frames[1].Model; !nearMat(x, want) {
		t.Fatalf("Frame.Model\nhave %v\nwant %v", x, want)
	}
	if !d.frames[1].Advanced {
		t.Fatal("Frame.Advanced: have false, want true")
	}
}

func TestTickLookAnchorsThenRotates(t *testing.T) {
	l, in, _ := newTestLoop(t, config.VariantLit)
	in.lookHeld = true

	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	if !in.hidden || in.warps != 1 {
		t.Fatalf("first captured tick\nhave hidden=%t warps=%d\nwant hidden=true warps=1", in.hidden, in.warps)
	}
	if x := l.cam.Facing; !nearVec(x, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("facing after anchor\nhave %v\nwant (0, 0, -1)", x)
	}

	// a quarter of the window right of centre at sensitivity 100 is a 25 degree yaw
	in.x += 1920.0 / 4
	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	if x := l.cam.Facing; x.X() <= 0 {
		t.Fatalf("facing after yaw right\nhave %v\nwant positive x", x)
	}
	if x := l.cam.Facing.Len(); x < 0.999999 || x > 1.000001 {
		t.Fatalf("|facing|\nhave %v\nwant 1", x)
	}

	in.lookHeld = false
	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	if in.hidden {
		t.Fatal("cursor still hidden after release")
	}
}

func TestTickDrawError(t *testing.T) {
	l, _, d := newTestLoop(t, config.VariantQuad)
	d.err = errors.New("lost surface")
	called := false
	l.frameCallback = func(transform.Frame) {
		called = true
	}

	if err := l.tick(); !errors.Is(err, d.err) {
		t.Fatalf("tick()\nhave %v\nwant %v", err, d.err)
	}
	if called {
		t.Fatal("frame callback invoked for a failed draw")
	}
}

func TestTickLitFrame(t *testing.T) {
	l, _, d := newTestLoop(t, config.VariantLit)
	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	f := d.frames[0]
	if want := (mgl32.Vec3{0.5, 0.5, 0.5}); f.LightPos != want {
		t.Fatalf("Frame.LightPos\nhave %v\nwant %v", f.LightPos, want)
	}
	if want := f.Projection.Mul4(f.View); !nearMat(f.LightMatrix, want) {
		t.Fatalf("Frame.LightMatrix\nhave %v\nwant %v", f.LightMatrix, want)
	}
}

func TestTickHighDPICentresInScreenSpace(t *testing.T) {
	// a 2x content scale: the framebuffer is twice the window's screen size
	l, in, d := newTestLoopOn(t, config.VariantLit, &fakeInput{
		fbWidth: 3840, fbHeight: 2160,
		screenWidth: 1920, screenHeight: 1080,
	})
	in.lookHeld = true

	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	if in.x != 960 || in.y != 540 {
		t.Fatalf("anchor warp\nhave (%v, %v)\nwant (960, 540)", in.x, in.y)
	}
	if w, h := l.controller.ScreenSize(); w != 1920 || h != 1080 {
		t.Fatalf("controller.ScreenSize()\nhave %d, %d\nwant 1920, 1080", w, h)
	}
	if a := l.composer.Aspect(); !mgl32.FloatEqual(a, 3840.0/2160.0) {
		t.Fatalf("composer.Aspect()\nhave %v\nwant %v", a, 3840.0/2160.0)
	}

	// a quarter of the window in screen coordinates is still a 25 degree yaw
	in.x += 1920.0 / 4
	if err := l.tick(); err != nil {
		t.Fatalf("tick(): %v", err)
	}
	rad := mgl32.DegToRad(25)
	want := mgl32.Vec3{math32.Sin(rad), 0, -math32.Cos(rad)}
	if x := l.cam.Facing; !nearVec(x, want) {
		t.Fatalf("facing after yaw\nhave %v\nwant %v", x, want)
	}
	if in.x != 960 || in.y != 540 {
		t.Fatalf("re-centre warp\nhave (%v, %v)\nwant (960, 540)", in.x, in.y)
	}
	if len(d.frames) != 2 {
		t.Fatalf("drawn frames\nhave %d\nwant 2", len(d.frames))
	}
}

func TestScreenResizeLeavesAspect(t *testing.T) {
	l, _, _ := newTestLoop(t, config.VariantCube)
	aspect := l.composer.Aspect()

	l.screenResize(1000, 800)
	if w, h := l.controller.ScreenSize(); w != 1000 || h != 800 {
		t.Fatalf("controller.ScreenSize()\nhave %d, %d\nwant 1000, 800", w, h)
	}
	if a := l.composer.Aspect(); a != aspect {
		t.Fatalf("composer.Aspect()\nhave %v\nwant %v", a, aspect)
	}
}
