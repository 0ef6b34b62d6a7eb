// Package geometry provides the 2D vector and rectangle math used by the
// annotation tools.
package geometry

import "math"

// Vec2D is a point or displacement in image coordinates.
type Vec2D struct {
	X float64
	Y float64
}

func Vec(x, y float64) Vec2D { return Vec2D{X: x, Y: y} }

func (v Vec2D) Add(o Vec2D) Vec2D { return Vec2D{v.X + o.X, v.Y + o.Y} }

func (v Vec2D) Sub(o Vec2D) Vec2D { return Vec2D{v.X - o.X, v.Y - o.Y} }

func (v Vec2D) Mul(s float64) Vec2D { return Vec2D{v.X * s, v.Y * s} }

// Norm is the euclidean length of v.
func (v Vec2D) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Norm2 is the squared length, for hit tests that avoid the sqrt.
func (v Vec2D) Norm2() float64 { return v.X*v.X + v.Y*v.Y }

// Angle is the direction of v in radians, in (-pi, pi].
func (v Vec2D) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle builds a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec2D {
	return Vec2D{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// snapIncrement is 15 degrees.
const snapIncrement = math.Pi / 12

// Snapped15 returns v rotated onto the nearest multiple of 15 degrees,
// preserving its length. The angle is quantized on absolute axis
// components so the result stays in the same quadrant as v. The zero
// vector snaps to itself.
func (v Vec2D) Snapped15() Vec2D {
	if v.X == 0 && v.Y == 0 {
		return v
	}
	length := v.Norm()
	angle := math.Atan2(math.Abs(v.Y), math.Abs(v.X))
	snapped := math.Round(angle/snapIncrement) * snapIncrement
	s := Vec2D{X: math.Cos(snapped) * length, Y: math.Sin(snapped) * length}
	if v.X < 0 {
		s.X = -s.X
	}
	if v.Y < 0 {
		s.Y = -s.Y
	}
	return s
}
