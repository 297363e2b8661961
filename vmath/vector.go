package vmath

import "math"

// Vec2 is a 2D vector in field units
type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns Euclidean magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Lerp moves from v toward o by fraction t (t=0 returns v, t=1 returns o)
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// FromAngle builds a vector of length mag at angle radians from +X
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

// ReflectAxisY returns velocity reflected off a horizontal wall
// Use for top/bottom field edge collision
func ReflectAxisY(v Vec2) Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// ClosestPointOnRect returns the point of the axis-aligned rect (x, y, w, h) nearest to p
func ClosestPointOnRect(p Vec2, x, y, w, h float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, x, x+w),
		Y: Clamp(p.Y, y, y+h),
	}
}

// CircleRectOverlap reports whether a circle of radius r at c intersects the rect
// Touching edges do not count
func CircleRectOverlap(c Vec2, r, x, y, w, h float64) bool {
	closest := ClosestPointOnRect(c, x, y, w, h)
	return c.Sub(closest).LenSq() < r*r
}

// CirclesOverlap reports whether two circles intersect
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.Sub(b).Len() < ra+rb
}
