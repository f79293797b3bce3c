package world

import (
	"github.com/annaw245/Software/vmath"
)

// Field is the static pitch geometry in metres
// The friendly goal is on the negative x side
type Field struct {
	Length             float64 // goal line to goal line
	Width              float64 // touch line to touch line
	GoalWidth          float64
	GoalDepth          float64
	DefenseAreaLength  float64 // along x
	DefenseAreaWidth   float64 // along y
	BoundaryMargin     float64
	CenterCircleRadius float64
}

// DivisionA returns the SSL division A field
func DivisionA() Field {
	return Field{
		Length:             12.0,
		Width:              9.0,
		GoalWidth:          1.8,
		GoalDepth:          0.18,
		DefenseAreaLength:  1.8,
		DefenseAreaWidth:   3.6,
		BoundaryMargin:     0.3,
		CenterCircleRadius: 0.5,
	}
}

// DivisionB returns the SSL division B field
func DivisionB() Field {
	return Field{
		Length:             9.0,
		Width:              6.0,
		GoalWidth:          1.0,
		GoalDepth:          0.18,
		DefenseAreaLength:  1.0,
		DefenseAreaWidth:   2.0,
		BoundaryMargin:     0.3,
		CenterCircleRadius: 0.5,
	}
}

func (f Field) halfLength() float64 { return f.Length / 2 }

func (f Field) FriendlyGoalCenter() vmath.Vec2 { return vmath.V2(-f.halfLength(), 0) }
func (f Field) EnemyGoalCenter() vmath.Vec2    { return vmath.V2(f.halfLength(), 0) }

// FieldLines is the playing area bounded by touch and goal lines
func (f Field) FieldLines() vmath.Rect {
	return vmath.NewRect(vmath.V2(-f.Length/2, -f.Width/2), vmath.V2(f.Length/2, f.Width/2))
}

// FieldBoundary includes the run-off margin around the field lines
func (f Field) FieldBoundary() vmath.Rect {
	return f.FieldLines().Expand(f.BoundaryMargin)
}

func (f Field) FriendlyDefenseArea() vmath.Rect {
	x := -f.halfLength()
	return vmath.NewRect(
		vmath.V2(x, -f.DefenseAreaWidth/2),
		vmath.V2(x+f.DefenseAreaLength, f.DefenseAreaWidth/2),
	)
}

func (f Field) EnemyDefenseArea() vmath.Rect {
	x := f.halfLength()
	return vmath.NewRect(
		vmath.V2(x-f.DefenseAreaLength, -f.DefenseAreaWidth/2),
		vmath.V2(x, f.DefenseAreaWidth/2),
	)
}

// Contains reports whether p lies within the field lines
func (f Field) Contains(p vmath.Vec2) bool {
	return f.FieldLines().Contains(p)
}

// InFriendlyGoal reports whether p is behind the friendly goal line between the posts
func (f Field) InFriendlyGoal(p vmath.Vec2) bool {
	x := -f.halfLength()
	return p.X < x && p.X >= x-f.GoalDepth && p.Y >= -f.GoalWidth/2 && p.Y <= f.GoalWidth/2
}

// InEnemyGoal reports whether p is behind the enemy goal line between the posts
func (f Field) InEnemyGoal(p vmath.Vec2) bool {
	x := f.halfLength()
	return p.X > x && p.X <= x+f.GoalDepth && p.Y >= -f.GoalWidth/2 && p.Y <= f.GoalWidth/2
}
