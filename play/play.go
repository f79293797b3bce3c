// Package play holds team-level strategies.
//
// A play is gated by two pure predicates over the world: IsApplicable decides
// whether it may start, InvariantHolds whether it may continue. The caller
// re-checks them every tick. A play owns the tactic instances it hands out so
// their state machines survive from one tick to the next.
package play

import (
	"errors"
	"fmt"

	"github.com/annaw245/Software/tactic"
	"github.com/annaw245/Software/world"
)

// ID identifies a play independently of its Go type
type ID int

const (
	IDNone ID = iota
	IDHalt
	IDDefense
)

var idNames = map[ID]string{
	IDHalt:    "halt",
	IDDefense: "defense",
}

var ErrUnknownPlay = errors.New("unknown play")

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("play(%d)", int(id))
}

// ParseID resolves a play name as used in config files and flags
func ParseID(name string) (ID, error) {
	for id, n := range idNames {
		if n == name {
			return id, nil
		}
	}
	return IDNone, fmt.Errorf("%q: %w", name, ErrUnknownPlay)
}

// Lineup is the set of tactics a play wants run this tick
type Lineup struct {
	// Goalie goes to the designated goalie, nil leaves it idle
	Goalie tactic.Tactic
	// Field holds tiers of tactics in priority order. Tiers are filled front
	// to back, robots inside a tier are matched at the least total cost
	Field [][]tactic.Tactic
}

// FieldTactics flattens the tiers in priority order
func (l Lineup) FieldTactics() []tactic.Tactic {
	var out []tactic.Tactic
	for _, tier := range l.Field {
		out = append(out, tier...)
	}
	return out
}

type Play interface {
	ID() ID
	IsApplicable(w world.World) bool
	InvariantHolds(w world.World) bool
	// Tactics refreshes control params from w and returns the lineup
	Tactics(w world.World) Lineup
}

// fieldRobots counts the robots left once the goalie is taken out
func fieldRobots(w world.World) int {
	if _, ok := w.Friendly.Goalie(); ok {
		return w.Friendly.Len() - 1
	}
	return w.Friendly.Len()
}
