// Package core provides the chain physics and match-resolution engine for the
// marble popper game. This package is UI-agnostic and deterministic: all
// randomness comes from an injected RandSource and all time from the dt passed
// to Tick.
package core

import "math"

// Vec2 is a point or vector in world units. The shooter sits at the origin.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// FromAngle returns a vector of the given length pointing at angle radians.
// Angles follow screen convention: 0 is right, π/2 is down.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}
