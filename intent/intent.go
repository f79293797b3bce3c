// Package intent defines the motion and kick commands emitted by tactics.
// The decision layer hands intents to a Sink and never inspects them again.
package intent

import (
	"fmt"

	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// Intent is one robot's command for the current tick
type Intent interface {
	RobotID() world.RobotID
	fmt.Stringer
}

// Sink receives at most one intent per tactic update
// It must not block and must not fail
type Sink func(Intent)

// Discard is a sink that drops every intent
func Discard(Intent) {}

// Move drives the robot to Destination, arriving with FinalOrientation
type Move struct {
	Robot            world.RobotID
	Destination      vmath.Vec2
	FinalOrientation vmath.Angle
	FinalSpeed       float64
	MaxSpeed         float64 // zero uses the controller default
}

func (m Move) RobotID() world.RobotID { return m.Robot }
func (m Move) String() string {
	return fmt.Sprintf("move[%d] -> (%.2f, %.2f) @%.0f°", m.Robot, m.Destination.X, m.Destination.Y, m.FinalOrientation.Degrees())
}

// Chip lobs the ball from Origin along Direction so it first lands Distance metres away
type Chip struct {
	Robot     world.RobotID
	Origin    vmath.Vec2
	Direction vmath.Angle
	Distance  float64
}

func (c Chip) RobotID() world.RobotID { return c.Robot }
func (c Chip) String() string {
	return fmt.Sprintf("chip[%d] from (%.2f, %.2f) @%.0f° %.2fm", c.Robot, c.Origin.X, c.Origin.Y, c.Direction.Degrees(), c.Distance)
}

// Kick strikes the ball along the ground from Origin along Direction at Speed m/s
type Kick struct {
	Robot     world.RobotID
	Origin    vmath.Vec2
	Direction vmath.Angle
	Speed     float64
}

func (k Kick) RobotID() world.RobotID { return k.Robot }
func (k Kick) String() string {
	return fmt.Sprintf("kick[%d] from (%.2f, %.2f) @%.0f° %.2fm/s", k.Robot, k.Origin.X, k.Origin.Y, k.Direction.Degrees(), k.Speed)
}

// Stop brings the robot to rest, Coast lets it roll instead of braking
type Stop struct {
	Robot world.RobotID
	Coast bool
}

func (s Stop) RobotID() world.RobotID { return s.Robot }
func (s Stop) String() string         { return fmt.Sprintf("stop[%d]", s.Robot) }
