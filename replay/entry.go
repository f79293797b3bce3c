package replay

import (
	"slices"

	"github.com/annaw245/Software/simulation"
	"github.com/annaw245/Software/world"
)

// Entry is one recorded tick
type Entry struct {
	Tick        int          `json:"tick"`
	TimeMillis  int64        `json:"time_ms"`
	Play        string       `json:"play"`
	State       string       `json:"state"`
	Possession  string       `json:"possession"`
	Ball        Body         `json:"ball"`
	Friendly    []Body       `json:"friendly"`
	Enemy       []Body       `json:"enemy"`
	Assignments []Assignment `json:"assignments,omitempty"`
	Intents     []string     `json:"intents,omitempty"`
}

// Body is a robot or the ball, ID is -1 for the ball
type Body struct {
	ID          int     `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	VX          float64 `json:"vx"`
	VY          float64 `json:"vy"`
	Orientation float64 `json:"orientation_deg,omitempty"`
	Goalie      bool    `json:"goalie,omitempty"`
}

type Assignment struct {
	Robot  int    `json:"robot"`
	Tactic string `json:"tactic"`
	State  string `json:"state"`
}

// FromFrame flattens a simulated frame, intents are ordered by robot
func FromFrame(f simulation.Frame) Entry {
	w := f.World
	e := Entry{
		Tick:       f.Tick,
		TimeMillis: f.Time.Milliseconds(),
		Play:       f.Play,
		State:      w.GameState.State().String(),
		Possession: w.Possession.String(),
		Ball: Body{
			ID: -1,
			X:  w.Ball.Position.X,
			Y:  w.Ball.Position.Y,
			VX: w.Ball.Velocity.X,
			VY: w.Ball.Velocity.Y,
		},
		Friendly: bodies(w.Friendly),
		Enemy:    bodies(w.Enemy),
	}
	for _, a := range f.Assignments {
		e.Assignments = append(e.Assignments, Assignment{Robot: int(a.Robot), Tactic: a.Tactic, State: a.State})
	}

	ids := make([]world.RobotID, 0, len(f.Intents))
	for id := range f.Intents {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		e.Intents = append(e.Intents, f.Intents[id].String())
	}
	return e
}

func bodies(t world.Team) []Body {
	out := make([]Body, 0, len(t.Robots))
	for _, r := range t.Robots {
		out = append(out, Body{
			ID:          int(r.ID),
			X:           r.Position.X,
			Y:           r.Position.Y,
			VX:          r.Velocity.X,
			VY:          r.Velocity.Y,
			Orientation: r.Orientation.Degrees(),
			Goalie:      r.ID == t.GoalieID,
		})
	}
	return out
}
