package polymouse

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D point or displacement in screen units.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) r2() r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

func fromR2(v r2.Vec) Vec2 {
	return Vec2{X: float32(v.X), Y: float32(v.Y)}
}

// Add returns v+u.
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{X: v.X + u.X, Y: v.Y + u.Y}
}

// Sub returns v-u.
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{X: v.X - u.X, Y: v.Y - u.Y}
}

// Scale returns v*s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(r2.Norm(v.r2()))
}

// Dist returns the Euclidean distance between v and u.
func (v Vec2) Dist(u Vec2) float32 {
	return float32(r2.Norm(r2.Sub(v.r2(), u.r2())))
}

// Unit returns the unit vector pointing along v.
// The zero vector has no direction and maps to itself.
func (v Vec2) Unit() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return Vec2{}
	}
	return fromR2(r2.Unit(v.r2()))
}

// Trunc converts v to integer coordinates, truncating toward zero.
func (v Vec2) Trunc() IntVec2 {
	return IntVec2{X: int32(v.X), Y: int32(v.Y)}
}

// IntVec2 is an integer pointer position or move.
type IntVec2 struct {
	X, Y int32
}

// Add returns p+q.
func (p IntVec2) Add(q IntVec2) IntVec2 {
	return IntVec2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Float converts p to a Vec2.
func (p IntVec2) Float() Vec2 {
	return Vec2{X: float32(p.X), Y: float32(p.Y)}
}
