// Package ai runs one decision tick: pick the play, assign its tactics to
// robots and collect the intents they emit.
package ai

import (
	"fmt"
	"log"
	"slices"

	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/play"
	"github.com/annaw245/Software/tactic"
	"github.com/annaw245/Software/world"
)

// Assignment records which tactic a robot ran this tick
type Assignment struct {
	Robot  world.RobotID
	Tactic string
	State  string
}

// AI is the tick-driven decision loop. It is not safe for concurrent use;
// the caller owns the tick.
type AI struct {
	cfg      *parameter.Config
	registry *play.Registry

	current  play.Play
	override play.Play

	// robot each tactic ran on last tick, a change resets the tactic
	owners      map[tactic.Tactic]world.RobotID
	assignments []Assignment
}

// New builds the AI. A non-empty cfg.AI.Play pins that play
func New(cfg *parameter.Config) (*AI, error) {
	a := &AI{
		cfg:      cfg,
		registry: play.NewRegistry(cfg),
		owners:   make(map[tactic.Tactic]world.RobotID),
	}
	if cfg.AI.Play != "" {
		id, err := play.ParseID(cfg.AI.Play)
		if err != nil {
			return nil, fmt.Errorf("ai.play: %w", err)
		}
		if err := a.OverridePlay(id); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// OverridePlay pins a play regardless of its predicates, IDNone clears it
func (a *AI) OverridePlay(id play.ID) error {
	if id == play.IDNone {
		a.override = nil
		return nil
	}
	p, err := a.registry.Get(id)
	if err != nil {
		return err
	}
	a.override = p
	return nil
}

// Play returns the play that ran on the last tick
func (a *AI) Play() play.ID {
	if a.current == nil {
		return play.IDNone
	}
	return a.current.ID()
}

// Assignments returns last tick's robot to tactic mapping, ordered by robot
func (a *AI) Assignments() []Assignment {
	return slices.Clone(a.assignments)
}

// Tick runs every assigned tactic once against w and returns the emitted
// intents by robot. Robots whose tactic emitted nothing are absent
func (a *AI) Tick(w world.World) map[world.RobotID]intent.Intent {
	next := a.selectPlay(w)
	if next != a.current {
		log.Printf("[AI] play %s -> %s", playName(a.current), playName(next))
		a.current = next
	}

	lineup := a.current.Tactics(w)
	pairs := assign(lineup, w)

	rec := intent.NewRecorder()
	owners := make(map[tactic.Tactic]world.RobotID, len(pairs))
	a.assignments = a.assignments[:0]
	for _, p := range pairs {
		if prev, ok := a.owners[p.tactic]; !ok || prev != p.robot.ID {
			p.tactic.Reset()
			log.Printf("[AI] robot %d -> %s", p.robot.ID, p.tactic.Name())
		}
		owners[p.tactic] = p.robot.ID
		p.tactic.Update(p.robot, w, rec.Sink())
		a.assignments = append(a.assignments, Assignment{
			Robot:  p.robot.ID,
			Tactic: p.tactic.Name(),
			State:  p.tactic.State(),
		})
	}
	a.owners = owners
	slices.SortFunc(a.assignments, func(x, y Assignment) int { return int(x.Robot) - int(y.Robot) })

	return rec.Map()
}

// selectPlay keeps the current play while its invariant holds, otherwise
// takes the first applicable play and falls back to Halt
func (a *AI) selectPlay(w world.World) play.Play {
	if a.override != nil {
		return a.override
	}
	if a.current != nil && a.current.InvariantHolds(w) {
		return a.current
	}
	for _, id := range a.registry.IDs() {
		p, _ := a.registry.Get(id)
		if p.IsApplicable(w) {
			return p
		}
	}
	halt, _ := a.registry.Get(play.IDHalt)
	return halt
}

func playName(p play.Play) string {
	if p == nil {
		return "none"
	}
	return p.ID().String()
}
