package vmath

import "math"

// Vec2 is a float64 2D vector in field metres, used for both points and displacements
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2           { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2           { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2      { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64        { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64      { return v.X*o.Y - v.Y*o.X }
func (v Vec2) LenSq() float64            { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64              { return math.Hypot(v.X, v.Y) }
func (v Vec2) DistanceTo(o Vec2) float64 { return o.Sub(v).Len() }

// Perp returns the vector rotated a quarter turn counter-clockwise
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Normalize returns a unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// WithLen returns the vector scaled to length l, zero vector stays zero
func (v Vec2) WithLen(l float64) Vec2 {
	return v.Normalize().Scale(l)
}

// ClampLen limits the vector to maxLen while preserving direction
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Scale(maxLen / l)
}

// Rotate rotates the vector counter-clockwise by a
func (v Vec2) Rotate(a Angle) Vec2 {
	sin, cos := math.Sincos(a.Radians())
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Orientation returns the vector heading, the zero vector has heading Zero
func (v Vec2) Orientation() Angle {
	if v.X == 0 && v.Y == 0 {
		return Zero
	}
	return Angle(math.Atan2(v.Y, v.X))
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Near reports whether two points are within tol of each other
func (v Vec2) Near(o Vec2, tol float64) bool {
	return v.Sub(o).LenSq() <= tol*tol
}
