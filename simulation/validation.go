package simulation

import (
	"fmt"

	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// haltSpeed is the speed under which a robot counts as halted
const haltSpeed = 1e-3

// Validation checks one world, nil means the condition holds.
// Terminating validations must all hold on the same tick for a run to pass;
// non-terminating ones must hold on every tick
type Validation func(w world.World) error

// RobotHalt holds when every friendly robot is at rest
func RobotHalt() Validation {
	return func(w world.World) error {
		for _, r := range w.Friendly.Robots {
			if r.Velocity.Len() > haltSpeed || r.AngularVelocity.Abs() > haltSpeed {
				return fmt.Errorf("robot %d still moving at %.3f m/s", r.ID, r.Velocity.Len())
			}
		}
		return nil
	}
}

// RobotInPolygon holds when the friendly robot id is inside poly
func RobotInPolygon(id world.RobotID, poly vmath.Polygon) Validation {
	return RobotInRegion(id, func(world.World) vmath.Polygon { return poly })
}

// RobotInRegion is RobotInPolygon with a region computed from the world,
// e.g. relative to another robot
func RobotInRegion(id world.RobotID, region func(w world.World) vmath.Polygon) Validation {
	return func(w world.World) error {
		r, ok := w.Friendly.Robot(id)
		if !ok {
			return fmt.Errorf("robot %d not on the field", id)
		}
		if !region(w).Contains(r.Position) {
			return fmt.Errorf("robot %d at (%.2f, %.2f) outside its region", id, r.Position.X, r.Position.Y)
		}
		return nil
	}
}

// BallInPlay holds while the ball is on the field or in a goal
func BallInPlay() Validation {
	return func(w world.World) error {
		p := w.Ball.Position
		if w.Field.Contains(p) || w.Field.InFriendlyGoal(p) || w.Field.InEnemyGoal(p) {
			return nil
		}
		return fmt.Errorf("ball out of play at (%.2f, %.2f)", p.X, p.Y)
	}
}

// check returns the first failing validation's error
func check(w world.World, vs []Validation) error {
	for _, v := range vs {
		if err := v(w); err != nil {
			return err
		}
	}
	return nil
}
