package world

import (
	"time"

	"github.com/annaw245/Software/vmath"
)

// RobotID identifies a robot within its team
type RobotID int

// NoRobot marks an unset goalie or assignment
const NoRobot RobotID = -1

// Physical robot and ball dimensions, metres
const (
	RobotMaxRadius = 0.09
	BallRadius     = 0.0215
)

// Robot is the observed state of one robot for one tick
type Robot struct {
	ID              RobotID
	Position        vmath.Vec2
	Velocity        vmath.Vec2
	Orientation     vmath.Angle
	AngularVelocity vmath.Angle // radians per second
	Timestamp       time.Duration
}

// NewRobotAt returns a stationary robot facing zero heading
func NewRobotAt(id RobotID, pos vmath.Vec2) Robot {
	return Robot{ID: id, Position: pos}
}

// NewStationaryRobots numbers robots from zero in the given order
func NewStationaryRobots(positions ...vmath.Vec2) []Robot {
	robots := make([]Robot, len(positions))
	for i, p := range positions {
		robots[i] = NewRobotAt(RobotID(i), p)
	}
	return robots
}

// IsStopped reports whether linear and angular speed are under the given limits
func (r Robot) IsStopped(maxSpeed float64, maxAngular vmath.Angle) bool {
	return r.Velocity.Len() <= maxSpeed && r.AngularVelocity.Abs() <= maxAngular
}
