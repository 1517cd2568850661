package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// nearVec compares with an absolute tolerance; mgl32's relative comparison is
// too strict for components that should be exactly zero.
func nearVec(have, want mgl32.Vec3) bool {
	return have.Sub(want).Len() < eps
}

type fakeCursor struct {
	hidden bool
	hides  int
	shows  int
	warps  [][2]float64
}

func (c *fakeCursor) HideCursor() {
	c.hidden = true
	c.hides++
}

func (c *fakeCursor) ShowCursor() {
	c.hidden = false
	c.shows++
}

func (c *fakeCursor) WarpCursor(x, y float64) {
	c.warps = append(c.warps, [2]float64{x, y})
}

func press(actions ...common.Action) InputSnapshot {
	var in InputSnapshot
	for _, a := range actions {
		in.Pressed[a] = true
	}
	return in
}

// smallController uses a 100x100 screen so that, at sensitivity 100, one pixel of
// cursor offset equals one degree of rotation.
func smallController() Controller {
	return NewController(WithScreenSize(100, 100))
}

func drag(x, y float64) InputSnapshot {
	return InputSnapshot{LookHeld: true, CursorX: x, CursorY: y}
}

func TestMoveForward(t *testing.T) {
	s := NewState()
	c := NewController()
	c.Update(s, press(common.ActionForward), &fakeCursor{})
	if !nearVec(s.Position, mgl32.Vec3{0, 0, 1.9}) {
		t.Fatalf("Update(forward): Position\nhave %v\nwant [0 0 1.9]", s.Position)
	}
}

func TestMoveAxes(t *testing.T) {
	cases := []struct {
		action common.Action
		want   mgl32.Vec3
	}{
		{common.ActionForward, mgl32.Vec3{0, 0, -0.1}},
		{common.ActionBack, mgl32.Vec3{0, 0, 0.1}},
		{common.ActionLeft, mgl32.Vec3{-0.1, 0, 0}},
		{common.ActionRight, mgl32.Vec3{0.1, 0, 0}},
		{common.ActionUp, mgl32.Vec3{0, 0.1, 0}},
		{common.ActionDown, mgl32.Vec3{0, -0.1, 0}},
	}
	c := NewController()
	for _, x := range cases {
		s := NewState(WithPosition(mgl32.Vec3{}))
		c.Move(s, press(x.action))
		if !nearVec(s.Position, x.want) {
			t.Fatalf("Move(%v): Position\nhave %v\nwant %v", x.action, s.Position, x.want)
		}
	}
}

func TestMoveDiagonalIsAdditive(t *testing.T) {
	s := NewState(WithPosition(mgl32.Vec3{}))
	c := NewController()
	c.Move(s, press(common.ActionForward, common.ActionRight))
	want := math32.Sqrt(2) * DefaultBaseSpeed
	if l := s.Position.Len(); !mgl32.FloatEqualThreshold(l, want, eps) {
		t.Fatalf("Move(forward+right): |Position|\nhave %v\nwant %v", l, want)
	}
}

func TestMoveOpposingCancel(t *testing.T) {
	s := NewState()
	c := NewController()
	c.Move(s, press(common.ActionForward, common.ActionBack, common.ActionLeft, common.ActionRight))
	if !nearVec(s.Position, mgl32.Vec3{0, 0, 2}) {
		t.Fatalf("Move(all opposing): Position\nhave %v\nwant [0 0 2]", s.Position)
	}
}

func TestBoostAppliesNextTick(t *testing.T) {
	s := NewState(WithPosition(mgl32.Vec3{}))
	c := NewController()
	in := press(common.ActionForward, common.ActionBoost)

	c.Update(s, in, &fakeCursor{})
	if !nearVec(s.Position, mgl32.Vec3{0, 0, -0.1}) {
		t.Fatalf("Update(boost) tick 1: Position\nhave %v\nwant [0 0 -0.1]", s.Position)
	}
	if s.MoveSpeed != DefaultBoostSpeed {
		t.Fatalf("Update(boost): MoveSpeed\nhave %v\nwant %v", s.MoveSpeed, DefaultBoostSpeed)
	}

	c.Update(s, in, &fakeCursor{})
	if !nearVec(s.Position, mgl32.Vec3{0, 0, -0.5}) {
		t.Fatalf("Update(boost) tick 2: Position\nhave %v\nwant [0 0 -0.5]", s.Position)
	}

	c.Update(s, InputSnapshot{}, &fakeCursor{})
	if s.MoveSpeed != DefaultBaseSpeed {
		t.Fatalf("Update(release boost): MoveSpeed\nhave %v\nwant %v", s.MoveSpeed, DefaultBaseSpeed)
	}
}

func TestLookFirstTickAnchors(t *testing.T) {
	s := NewState()
	c := smallController()
	cur := &fakeCursor{}

	c.Update(s, drag(90, 10), cur)
	if !nearVec(s.Facing, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("Update(first drag): Facing\nhave %v\nwant [0 0 -1]", s.Facing)
	}
	if !cur.hidden || !s.Captured {
		t.Fatalf("Update(first drag): hidden, Captured\nhave %t, %t\nwant true, true", cur.hidden, s.Captured)
	}
	if len(cur.warps) != 1 || cur.warps[0] != [2]float64{50, 50} {
		t.Fatalf("Update(first drag): warps\nhave %v\nwant [[50 50]]", cur.warps)
	}
	if s.AwaitingAnchor() {
		t.Fatal("Update(first drag): AwaitingAnchor()\nhave true\nwant false")
	}
}

func TestLookYaw(t *testing.T) {
	s := NewState()
	c := smallController()
	cur := &fakeCursor{}

	c.Update(s, drag(50, 50), cur)
	c.Update(s, drag(140, 50), cur)
	if !nearVec(s.Facing, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("Update(drag right 90): Facing\nhave %v\nwant [1 0 0]", s.Facing)
	}
	if n := len(cur.warps); n != 2 || cur.warps[1] != [2]float64{50, 50} {
		t.Fatalf("Update(drag): warps\nhave %v\nwant two warps to [50 50]", cur.warps)
	}
	if cur.hides != 1 {
		t.Fatalf("Update(drag): hides\nhave %d\nwant 1", cur.hides)
	}
}

func TestLookPitch(t *testing.T) {
	s := NewState()
	c := smallController()
	cur := &fakeCursor{}

	c.Update(s, drag(50, 50), cur)
	c.Update(s, drag(50, 80), cur)
	want := mgl32.Vec3{0, -0.5, -math32.Sqrt(3) / 2}
	if !nearVec(s.Facing, want) {
		t.Fatalf("Update(drag down 30): Facing\nhave %v\nwant %v", s.Facing, want)
	}
}

func TestPitchRejectedPastLimit(t *testing.T) {
	for _, deg := range []float32{88, -88, 86} {
		s := NewState()
		c := NewController()
		before := s.Facing
		if c.Pitch(s, deg) {
			t.Fatalf("Pitch(%v)\nhave true\nwant false", deg)
		}
		if s.Facing != before {
			t.Fatalf("Pitch(%v): Facing\nhave %v\nwant %v", deg, s.Facing, before)
		}
	}
}

func TestPitchWindowHolds(t *testing.T) {
	s := NewState()
	c := NewController()
	limit := mgl32.DegToRad(c.PitchLimit())
	steps := []float32{20, 20, 20, 20, 20, 7, -40, -40, -40, -40, -40, -40, 13, 3, 1}
	for i, deg := range steps {
		c.Pitch(s, deg)
		c.Yaw(s, deg)
		tilt := common.Abs32(common.AngleBetween(s.Facing, s.Up) - math.Pi/2)
		if tilt > limit+eps {
			t.Fatalf("step %d: tilt\nhave %v\nwant <= %v", i, tilt, limit)
		}
		if l := s.Facing.Len(); !mgl32.FloatEqualThreshold(l, 1, eps) {
			t.Fatalf("step %d: |Facing|\nhave %v\nwant 1", i, l)
		}
		if s.Up != (mgl32.Vec3{0, 1, 0}) {
			t.Fatalf("step %d: Up\nhave %v\nwant [0 1 0]", i, s.Up)
		}
	}
}

func TestLookRelease(t *testing.T) {
	s := NewState()
	c := smallController()
	cur := &fakeCursor{}

	c.Update(s, drag(50, 50), cur)
	c.Update(s, drag(60, 50), cur)
	c.Update(s, InputSnapshot{CursorX: 99, CursorY: 99}, cur)
	if cur.hidden || s.Captured {
		t.Fatalf("Update(release): hidden, Captured\nhave %t, %t\nwant false, false", cur.hidden, s.Captured)
	}
	if !s.AwaitingAnchor() {
		t.Fatal("Update(release): AwaitingAnchor()\nhave false\nwant true")
	}

	// a fresh press anchors again instead of jumping
	facing := s.Facing
	c.Update(s, drag(0, 0), cur)
	if s.Facing != facing {
		t.Fatalf("Update(re-press): Facing\nhave %v\nwant %v", s.Facing, facing)
	}
	if cur.shows != 1 || cur.hides != 2 {
		t.Fatalf("cursor shows, hides\nhave %d, %d\nwant 1, 2", cur.shows, cur.hides)
	}
}

func TestSetScreenSize(t *testing.T) {
	c := NewController()
	c.SetScreenSize(0, 10)
	if w, h := c.ScreenSize(); w != 1920 || h != 1080 {
		t.Fatalf("SetScreenSize(0, 10): ScreenSize()\nhave %d, %d\nwant 1920, 1080", w, h)
	}
	c.SetScreenSize(800, 600)
	if w, h := c.ScreenSize(); w != 800 || h != 600 {
		t.Fatalf("SetScreenSize(800, 600): ScreenSize()\nhave %d, %d\nwant 800, 600", w, h)
	}
}

func TestBoostWithoutMovement(t *testing.T) {
	s := NewState()
	c := NewController()
	start := s.Position

	c.Update(s, press(common.ActionBoost), &fakeCursor{})
	if s.Position != start || s.MoveSpeed != DefaultBoostSpeed {
		t.Fatalf("Update(boost only): Position, MoveSpeed\nhave %v, %v\nwant %v, %v", s.Position, s.MoveSpeed, start, DefaultBoostSpeed)
	}

	c.Update(s, InputSnapshot{}, &fakeCursor{})
	if s.Position != start || s.MoveSpeed != DefaultBaseSpeed {
		t.Fatalf("Update(release): Position, MoveSpeed\nhave %v, %v\nwant %v, %v", s.Position, s.MoveSpeed, start, DefaultBaseSpeed)
	}
}

func TestLookPitchRejectedYawApplied(t *testing.T) {
	s := NewState()
	c := smallController()
	cur := &fakeCursor{}

	c.Update(s, drag(50, 50), cur)
	// 89 degrees down is past the limit; 90 degrees right is not limited
	c.Update(s, drag(140, 139), cur)
	if !nearVec(s.Facing, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("Update(drag right 90, down 89): Facing\nhave %v\nwant [1 0 0]", s.Facing)
	}
}

func TestMoveTicksSum(t *testing.T) {
	dirs := map[common.Action]mgl32.Vec3{
		common.ActionForward: {0, 0, -1},
		common.ActionBack:    {0, 0, 1},
		common.ActionLeft:    {-1, 0, 0},
		common.ActionRight:   {1, 0, 0},
		common.ActionUp:      {0, 1, 0},
		common.ActionDown:    {0, -1, 0},
	}
	ticks := [][]common.Action{
		{common.ActionForward},
		{common.ActionForward, common.ActionRight},
		{common.ActionUp},
		{common.ActionLeft, common.ActionDown, common.ActionBack},
		{common.ActionRight},
		{},
	}
	want := mgl32.Vec3{0, 0, 2}
	for _, tick := range ticks {
		for _, a := range tick {
			want = want.Add(dirs[a].Mul(DefaultBaseSpeed))
		}
	}

	c := NewController()
	inOrder := NewState()
	for _, tick := range ticks {
		c.Update(inOrder, press(tick...), &fakeCursor{})
	}
	reversed := NewState()
	for i := len(ticks) - 1; i >= 0; i-- {
		c.Update(reversed, press(ticks[i]...), &fakeCursor{})
	}

	if !nearVec(inOrder.Position, want) {
		t.Fatalf("Update x%d: Position\nhave %v\nwant %v", len(ticks), inOrder.Position, want)
	}
	if !nearVec(reversed.Position, want) {
		t.Fatalf("Update x%d reversed: Position\nhave %v\nwant %v", len(ticks), reversed.Position, want)
	}
}

func TestNewControllerIgnoresBadScreenSize(t *testing.T) {
	c := NewController(WithScreenSize(0, -1))
	if w, h := c.ScreenSize(); w != 1920 || h != 1080 {
		t.Fatalf("NewController(WithScreenSize(0, -1)): ScreenSize()\nhave %d, %d\nwant 1920, 1080", w, h)
	}
}
