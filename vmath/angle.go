package vmath

import "math"

// Angle is a heading in radians
type Angle float64

const (
	Zero         Angle = 0
	Quarter      Angle = math.Pi / 2
	Half         Angle = math.Pi
	ThreeQuarter Angle = 3 * math.Pi / 2
	Full         Angle = 2 * math.Pi
)

func FromDegrees(deg float64) Angle { return Angle(deg * math.Pi / 180) }
func FromRadians(rad float64) Angle { return Angle(rad) }

func (a Angle) Radians() float64 { return float64(a) }
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Clamp wraps the angle into (-π, π]
func (a Angle) Clamp() Angle {
	r := math.Remainder(float64(a), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Abs returns the absolute value without wrapping
func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

// MinDiff returns the shortest signed rotation from o to a, in (-π, π]
func (a Angle) MinDiff(o Angle) Angle {
	return (a - o).Clamp()
}

// Near reports whether two headings are within tol along the shortest arc
func (a Angle) Near(o Angle, tol Angle) bool {
	return a.MinDiff(o).Abs() <= tol
}

// Unit returns the unit vector pointing along the heading
func (a Angle) Unit() Vec2 {
	sin, cos := math.Sincos(float64(a))
	return Vec2{cos, sin}
}
