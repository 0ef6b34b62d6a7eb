package geometry

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSnapped15PreservesLength(t *testing.T) {
	for _, v := range []Vec2D{{10, 3}, {-7, 2}, {4, -9}, {-1, -1}, {0.5, 12}} {
		s := v.Snapped15()
		if !approxEq(s.Norm(), v.Norm()) {
			t.Errorf("Snapped15(%v) length %v, want %v", v, s.Norm(), v.Norm())
		}
	}
}

func TestSnapped15Quadrant(t *testing.T) {
	cases := []Vec2D{{10, 3}, {-10, 3}, {10, -3}, {-10, -3}}
	for _, v := range cases {
		s := v.Snapped15()
		if math.Signbit(s.X) != math.Signbit(v.X) || math.Signbit(s.Y) != math.Signbit(v.Y) {
			t.Errorf("Snapped15(%v) = %v crossed into another quadrant", v, s)
		}
	}
}

func TestSnapped15Axes(t *testing.T) {
	// Vectors already on a 15 degree multiple stay put.
	for i := 0; i < 24; i++ {
		angle := float64(i) * math.Pi / 12
		v := FromAngle(angle, 5)
		s := v.Snapped15()
		if !approxEq(s.X, v.X) || !approxEq(s.Y, v.Y) {
			t.Errorf("Snapped15(%v) = %v, want unchanged", v, s)
		}
	}
}

func TestSnapped15Rounds(t *testing.T) {
	// 20 degrees rounds down to 15.
	v := FromAngle(20*math.Pi/180, 8)
	s := v.Snapped15()
	want := FromAngle(15*math.Pi/180, 8)
	if !approxEq(s.X, want.X) || !approxEq(s.Y, want.Y) {
		t.Errorf("Snapped15(%v) = %v, want %v", v, s, want)
	}
}

func TestSnapped15Zero(t *testing.T) {
	if s := (Vec2D{}).Snapped15(); s != (Vec2D{}) {
		t.Errorf("Snapped15(zero) = %v, want zero", s)
	}
}

func TestEnsurePositiveSize(t *testing.T) {
	cases := []struct {
		pos, size         Vec2D
		wantPos, wantSize Vec2D
	}{
		{Vec2D{10, 10}, Vec2D{5, 7}, Vec2D{10, 10}, Vec2D{5, 7}},
		{Vec2D{10, 10}, Vec2D{-5, 7}, Vec2D{5, 10}, Vec2D{5, 7}},
		{Vec2D{10, 10}, Vec2D{5, -7}, Vec2D{10, 3}, Vec2D{5, 7}},
		{Vec2D{10, 10}, Vec2D{-5, -7}, Vec2D{5, 3}, Vec2D{5, 7}},
		{Vec2D{0, 0}, Vec2D{0, 0}, Vec2D{0, 0}, Vec2D{0, 0}},
	}
	for _, c := range cases {
		p, s := EnsurePositiveSize(c.pos, c.size)
		if p != c.wantPos || s != c.wantSize {
			t.Errorf("EnsurePositiveSize(%v, %v) = %v, %v, want %v, %v",
				c.pos, c.size, p, s, c.wantPos, c.wantSize)
		}
		// Idempotent.
		p2, s2 := EnsurePositiveSize(p, s)
		if p2 != p || s2 != s {
			t.Errorf("EnsurePositiveSize not idempotent for %v, %v", c.pos, c.size)
		}
		if s.X < 0 || s.Y < 0 {
			t.Errorf("EnsurePositiveSize(%v, %v) returned negative size %v", c.pos, c.size, s)
		}
	}
}
