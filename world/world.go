// Package world holds the immutable per-tick snapshot consumed by plays and tactics.
//
// A World is a plain value. The With* methods return modified copies, so a
// snapshot handed to the decision layer can never change underneath it; the
// producer builds a fresh value for the next tick.
package world

import (
	"time"

	"github.com/annaw245/Software/vmath"
)

// World is one tick's view of the game
type World struct {
	Field      Field
	Ball       Ball
	Friendly   Team
	Enemy      Team
	Possession TeamSide
	GameState  GameState
}

// NewBlankWorld returns a division B field with no robots, a stationary ball
// at the centre, no possession and a halted game
func NewBlankWorld() World {
	return World{
		Field:    DivisionB(),
		Friendly: Team{GoalieID: NoRobot},
		Enemy:    Team{GoalieID: NoRobot},
	}
}

func (w World) WithBall(b Ball) World {
	w.Ball = b
	return w
}

// WithBallVelocity keeps the ball position and replaces its velocity and timestamp
func (w World) WithBallVelocity(v vmath.Vec2, ts time.Duration) World {
	w.Ball.Velocity = v
	w.Ball.Timestamp = ts
	return w
}

func (w World) WithFriendly(t Team) World {
	w.Friendly = t
	return w
}

func (w World) WithEnemy(t Team) World {
	w.Enemy = t
	return w
}

func (w World) WithPossession(s TeamSide) World {
	w.Possession = s
	return w
}

func (w World) WithGameState(g GameState) World {
	w.GameState = g
	return w
}

func (w World) WithField(f Field) World {
	w.Field = f
	return w
}

// InferPossession assigns the ball to the team with the robot nearest to it,
// provided that robot is within radius. Contested or loose balls give SideNone
func InferPossession(w World, radius float64) TeamSide {
	fr, fok := w.Friendly.Nearest(w.Ball.Position)
	er, eok := w.Enemy.Nearest(w.Ball.Position)

	fd, ed := -1.0, -1.0
	if fok {
		fd = fr.Position.DistanceTo(w.Ball.Position)
	}
	if eok {
		ed = er.Position.DistanceTo(w.Ball.Position)
	}

	fIn := fok && fd <= radius
	eIn := eok && ed <= radius
	switch {
	case fIn && !eIn:
		return SideFriendly
	case eIn && !fIn:
		return SideEnemy
	}
	return SideNone
}
