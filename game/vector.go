package game

import "math"

// Vec2 is a 2D vector in normalized table units.
// The origin is the table center, +X points right and +Y points up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude of v
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// ScaleToLength returns v rescaled to the given length, keeping its direction.
// A zero vector stays zero.
func (v Vec2) ScaleToLength(length float64) Vec2 {
	current := v.Length()
	if current == 0 {
		return Vec2{}
	}
	return v.Scale(length / current)
}

// Reflect mirrors v about the unit normal n: v - 2(v.n)n
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Angle returns the direction of v in degrees, counterclockwise from +X, in (-180, 180].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
