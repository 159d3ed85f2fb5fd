// Package gamemath holds pure 2D helpers shared by the simulation systems.
// It works on donburi's math.Vec2 and has no ECS dependencies.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec returns a vector from components.
func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

// Add returns a + b.
func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v multiplied by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Direction returns the unit vector pointing from `from` to `to`, or zero when they coincide.
func Direction(from, to dmath.Vec2) dmath.Vec2 {
	return Normalize(Sub(to, from))
}

// ClampLength limits v to at most max length, keeping its direction.
func ClampLength(v dmath.Vec2, max float64) dmath.Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}

// IsZero reports whether both components are zero.
func IsZero(v dmath.Vec2) bool {
	return v.X == 0 && v.Y == 0
}
