package play

import (
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/tactic"
	"github.com/annaw245/Software/world"
)

// Defense protects the goal while the enemy has the ball.
//
// The goalie guards the goal mouth. The field tiers are, in order: the crease
// defenders beside the goalie, a blocker between the ball and the goal, then
// the robots marking enemy threats, and Stop for any robot left over.
//
// Marking depends on how close the threats are. When the ball holder is the
// only enemy near the goal, two robots swarm the ball from both flanks.
// Otherwise a distant holder is covered from the inner flank of the ball,
// nearby enemies have their pass lane cut and distant ones have their shot
// guarded outside the defense area. A holder near the goal is left to the
// blocker.
type Defense struct {
	cfg *parameter.Config

	goalie  *tactic.Goalie
	block   *tactic.Block
	crease  []*tactic.CreaseDefender
	swarm   []*tactic.Swarm
	shadows []*tactic.ShadowEnemy
	stops   []*tactic.Stop
}

func NewDefense(cfg *parameter.Config) *Defense {
	d := &Defense{
		cfg:    cfg,
		goalie: tactic.NewGoalie(cfg),
		block:  tactic.NewBlock(cfg),
		swarm:  []*tactic.Swarm{tactic.NewSwarm(cfg, tactic.Left), tactic.NewSwarm(cfg, tactic.Right)},
	}
	sides := []tactic.Side{tactic.Left, tactic.Right}
	for _, side := range sides[:cfg.Defense.CreaseDefenders] {
		d.crease = append(d.crease, tactic.NewCreaseDefender(cfg, side))
	}
	return d
}

func (d *Defense) ID() ID { return IDDefense }

// IsApplicable holds while the enemy has the ball and the game is running
func (d *Defense) IsApplicable(w world.World) bool {
	return w.Possession == world.SideEnemy && w.GameState.IsPlaying()
}

func (d *Defense) InvariantHolds(w world.World) bool {
	return d.IsApplicable(w)
}

func (d *Defense) Tactics(w world.World) Lineup {
	crease := make([]tactic.Tactic, 0, len(d.crease))
	for _, c := range d.crease {
		crease = append(crease, c)
	}
	marking := d.marking(w)

	field := [][]tactic.Tactic{crease, {d.block}, marking}
	surplus := fieldRobots(w) - len(crease) - 1 - len(marking)
	if surplus > 0 {
		for len(d.stops) < surplus {
			d.stops = append(d.stops, tactic.NewStop(d.cfg, false))
		}
		stops := make([]tactic.Tactic, surplus)
		for i := range stops {
			stops[i] = d.stops[i]
		}
		field = append(field, stops)
	}

	return Lineup{Goalie: d.goalie, Field: field}
}

// marking returns the swarm and shadow tactics in threat order
func (d *Defense) marking(w world.World) []tactic.Tactic {
	threats := RankThreats(w, d.cfg.Defense.ImmediateThreatDistance)
	swarm := swarmTarget(threats)

	var out []tactic.Tactic
	if swarm {
		for _, s := range d.swarm {
			out = append(out, s)
		}
	}

	n := 0
	for _, t := range threats {
		mode := tactic.ShadowMark
		switch {
		case t.HasBall && (swarm || t.Immediate):
			continue
		case t.HasBall:
			mode = tactic.ShadowFlank
		case !t.Immediate:
			mode = tactic.ShadowGuard
		}
		if n == len(d.shadows) {
			d.shadows = append(d.shadows, tactic.NewShadowEnemy(d.cfg))
		}
		d.shadows[n].UpdateControlParams(t.Robot.ID, mode)
		out = append(out, d.shadows[n])
		n++
	}
	return out
}
