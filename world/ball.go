package world

import (
	"time"

	"github.com/annaw245/Software/vmath"
)

// Ball is the observed ball state for one tick
type Ball struct {
	Position  vmath.Vec2
	Velocity  vmath.Vec2
	Timestamp time.Duration
}

// HasBeenKicked reports whether the ball is travelling at least minSpeed
// within maxAngleDiff of direction. A ball with no observed velocity has not been kicked
func (b Ball) HasBeenKicked(direction vmath.Angle, minSpeed float64, maxAngleDiff vmath.Angle) bool {
	speed := b.Velocity.Len()
	if speed == 0 || speed < minSpeed {
		return false
	}
	return b.Velocity.Orientation().Near(direction, maxAngleDiff)
}

// IsMoving reports whether the ball speed exceeds threshold
func (b Ball) IsMoving(threshold float64) bool {
	return b.Velocity.Len() > threshold
}
