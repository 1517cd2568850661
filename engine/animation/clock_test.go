package animation

import "testing"

func TestTickThrottle(t *testing.T) {
	c := NewClock(WithIncrement(30))
	cases := []struct {
		now   float64
		ok    bool
		angle float32
	}{
		{0.001, false, 0},
		{0.010, false, 0},
		{0.017, true, 30},
		{0.020, false, 30},
		{0.034, true, 60},
		{1.000, true, 90},
		{1.000, false, 90},
	}
	for _, x := range cases {
		if ok := c.Tick(x.now); ok != x.ok {
			t.Fatalf("c.Tick(%v)\nhave %t\nwant %t", x.now, ok, x.ok)
		}
		if a := c.Angle(); a != x.angle {
			t.Fatalf("c.Tick(%v): c.Angle()\nhave %v\nwant %v", x.now, a, x.angle)
		}
	}
	if n := c.Ticks(); n != 3 {
		t.Fatalf("c.Ticks()\nhave %d\nwant 3", n)
	}
	if lt := c.LastTick(); lt != 1 {
		t.Fatalf("c.LastTick()\nhave %v\nwant 1", lt)
	}
}

func TestTickCeiling(t *testing.T) {
	c := NewClock(WithIncrement(30), WithCeiling(60), WithStep(0))
	want := []float32{30, 60, 90, 90, 90}
	for i, w := range want {
		c.Tick(float64(i))
		if a := c.Angle(); a != w {
			t.Fatalf("tick %d: c.Angle()\nhave %v\nwant %v", i, a, w)
		}
	}
	if ceil, ok := c.Ceiling(); !ok || ceil != 60 {
		t.Fatalf("c.Ceiling()\nhave %v, %t\nwant 60, true", ceil, ok)
	}
}

func TestTickUnbounded(t *testing.T) {
	c := NewClock(WithIncrement(0.5), WithStep(0))
	for i := 0; i < 1000; i++ {
		c.Tick(float64(i))
	}
	if a := c.Angle(); a != 500 {
		t.Fatalf("c.Angle()\nhave %v\nwant 500", a)
	}
	if _, ok := c.Ceiling(); ok {
		t.Fatal("c.Ceiling()\nhave true\nwant false")
	}
}

func TestReset(t *testing.T) {
	c := NewClock(WithIncrement(10), WithStart(5))
	if c.Tick(5.01) {
		t.Fatal("c.Tick(5.01) after WithStart(5)\nhave true\nwant false")
	}
	c.Tick(6)
	c.Reset(6)
	if c.Angle() != 0 || c.Ticks() != 0 || c.LastTick() != 6 {
		t.Fatalf("c.Reset(6)\nhave %v, %d, %v\nwant 0, 0, 6", c.Angle(), c.Ticks(), c.LastTick())
	}
}
