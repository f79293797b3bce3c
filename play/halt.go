package play

import (
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/tactic"
	"github.com/annaw245/Software/world"
)

// Halt stops every robot. It is also the fallback when no other play applies
type Halt struct {
	cfg    *parameter.Config
	goalie *tactic.Stop
	stops  []*tactic.Stop
}

func NewHalt(cfg *parameter.Config) *Halt {
	return &Halt{cfg: cfg, goalie: tactic.NewStop(cfg, false)}
}

func (h *Halt) ID() ID { return IDHalt }

func (h *Halt) IsApplicable(w world.World) bool {
	return w.GameState.IsHalted()
}

func (h *Halt) InvariantHolds(w world.World) bool {
	return h.IsApplicable(w)
}

func (h *Halt) Tactics(w world.World) Lineup {
	n := fieldRobots(w)
	for len(h.stops) < n {
		h.stops = append(h.stops, tactic.NewStop(h.cfg, false))
	}
	field := make([]tactic.Tactic, n)
	for i := range field {
		field[i] = h.stops[i]
	}
	return Lineup{Goalie: h.goalie, Field: [][]tactic.Tactic{field}}
}
