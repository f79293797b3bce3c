package vmath

import "math"

// Polygon is any closed region that can answer point containment
type Polygon interface {
	Contains(p Vec2) bool
}

// Rect is an axis-aligned rectangle, Min is the negX/negY corner
type Rect struct {
	Min, Max Vec2
}

// NewRect builds a rectangle from any two opposite corners
func NewRect(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// Contains is inclusive of the boundary
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) NegXNegY() Vec2 { return r.Min }
func (r Rect) NegXPosY() Vec2 { return Vec2{r.Min.X, r.Max.Y} }
func (r Rect) PosXNegY() Vec2 { return Vec2{r.Max.X, r.Min.Y} }
func (r Rect) PosXPosY() Vec2 { return r.Max }

// ClampPoint returns the closest point inside the rectangle
func (r Rect) ClampPoint(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(r.Min.X, math.Min(r.Max.X, p.X)),
		Y: math.Max(r.Min.Y, math.Min(r.Max.Y, p.Y)),
	}
}

// Expand grows the rectangle by m on every side, negative m shrinks it
func (r Rect) Expand(m float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X - m, r.Min.Y - m},
		Max: Vec2{r.Max.X + m, r.Max.Y + m},
	}
}

// Triangle is a closed triangle, vertex order does not matter
type Triangle struct {
	A, B, C Vec2
}

// Contains uses the edge sign test, boundary points are inside
func (t Triangle) Contains(p Vec2) bool {
	d1 := t.B.Sub(t.A).Cross(p.Sub(t.A))
	d2 := t.C.Sub(t.B).Cross(p.Sub(t.B))
	d3 := t.A.Sub(t.C).Cross(p.Sub(t.C))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Circle is a closed disc
type Circle struct {
	Center Vec2
	Radius float64
}

func (c Circle) Contains(p Vec2) bool {
	return c.Center.Near(p, c.Radius)
}
