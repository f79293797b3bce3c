// Package tactic implements per-robot behaviors.
//
// Each tactic owns one fsm.Machine and is updated once per tick with the
// robot it is assigned to, the current world and an intent sink. A tactic
// emits at most one intent per update. Control parameters are refreshed by
// the owning play before each update and are not remembered between ticks
// beyond the last value set.
package tactic

import (
	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/world"
)

// UpdateEvent is the only event type delivered to tactic machines
const UpdateEvent fsm.EventType = 1

// Update bundles what every tactic machine sees during one evaluation step
type Update struct {
	Robot     world.Robot
	World     world.World
	SetIntent intent.Sink
}

// emit forwards to the sink, tolerating a nil sink
func (u Update) emit(i intent.Intent) {
	if u.SetIntent != nil {
		u.SetIntent(i)
	}
}

// Tactic is a single robot's behavior
type Tactic interface {
	Name() string
	// Cost ranks how well robot suits this tactic, lower is better
	Cost(robot world.Robot, w world.World) float64
	// Update advances the behavior by one tick
	Update(robot world.Robot, w world.World, sink intent.Sink)
	// Done reports whether the behavior reached its terminal state
	Done() bool
	// Reset restarts the behavior, used when it is handed to another robot
	Reset()
	// State renders the active state path for logs and replays
	State() string
}
