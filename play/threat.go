package play

import (
	"cmp"
	"math"
	"slices"

	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// Threat is an enemy field robot as the defense sees it
type Threat struct {
	Robot world.Robot
	// HasBall marks the enemy nearest the ball while the enemy has possession
	HasBall bool
	// Immediate is set inside the immediate distance of the friendly goal
	Immediate bool
	// GoalAngle is the angle the friendly goal mouth covers from the robot
	GoalAngle vmath.Angle
}

// GoalAngle returns the angle between the friendly goal posts seen from p
func GoalAngle(f world.Field, p vmath.Vec2) vmath.Angle {
	half := vmath.V2(0, f.GoalWidth/2)
	goal := f.FriendlyGoalCenter()
	a := goal.Add(half).Sub(p)
	b := goal.Sub(half).Sub(p)
	return vmath.FromRadians(math.Atan2(math.Abs(a.Cross(b)), a.Dot(b)))
}

// RankThreats orders enemy field robots by danger: the robot holding the
// ball first when the enemy has possession, then by the goal angle they have
// on the friendly goal, then by distance to it. Equal robots keep the lower
// id first
func RankThreats(w world.World, immediateDistance float64) []Threat {
	robots := w.Enemy.NonGoalie()
	if len(robots) == 0 {
		return nil
	}

	holder := world.NoRobot
	if w.Possession == world.SideEnemy {
		best := -1.0
		for _, r := range robots {
			d := r.Position.DistanceTo(w.Ball.Position)
			if best < 0 || d < best {
				best, holder = d, r.ID
			}
		}
	}

	goal := w.Field.FriendlyGoalCenter()
	threats := make([]Threat, 0, len(robots))
	for _, r := range robots {
		threats = append(threats, Threat{
			Robot:     r,
			HasBall:   r.ID == holder,
			Immediate: r.Position.DistanceTo(goal) < immediateDistance,
			GoalAngle: GoalAngle(w.Field, r.Position),
		})
	}

	slices.SortStableFunc(threats, func(a, b Threat) int {
		if a.HasBall != b.HasBall {
			if a.HasBall {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(b.GoalAngle, a.GoalAngle); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Robot.Position.DistanceTo(goal), b.Robot.Position.DistanceTo(goal)); c != 0 {
			return c
		}
		return cmp.Compare(a.Robot.ID, b.Robot.ID)
	})
	return threats
}

// swarmTarget reports whether the ball holder is the only immediate danger,
// in which case two robots close it down together
func swarmTarget(threats []Threat) bool {
	if len(threats) == 0 || !threats[0].HasBall {
		return false
	}
	for _, t := range threats[1:] {
		if t.Immediate {
			return false
		}
	}
	return true
}
