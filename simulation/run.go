package simulation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/annaw245/Software/ai"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/tactic"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

var ErrTimeout = errors.New("terminating validations did not pass before timeout")

// Controller decides the friendly team's intents each tick
type Controller interface {
	Tick(w world.World) map[world.RobotID]intent.Intent
	// Name is the running play or tactic
	Name() string
	Assignments() []ai.Assignment
}

// Frame is one simulated tick as seen by an observer
type Frame struct {
	Tick        int
	Time        time.Duration
	World       world.World
	Play        string
	Assignments []ai.Assignment
	Intents     map[world.RobotID]intent.Intent
}

type Options struct {
	// Extra checks on top of the scenario's expect block
	Terminating    []Validation
	NonTerminating []Validation
	// Timeout in simulated time, zero uses the scenario's
	Timeout time.Duration
	// Observer is called after every controller tick
	Observer func(Frame)
}

// Report summarises a run
type Report struct {
	Scenario string
	Ticks    int
	Elapsed  time.Duration
	Final    world.World
	Play     string
	// Pending is the first terminating failure at the end of a timed out run
	Pending string
}

// Run plays sc forward until every terminating validation holds on the same
// tick, a non-terminating validation fails, the timeout elapses or ctx ends.
// A scenario without terminating validations passes by reaching the timeout
func Run(ctx context.Context, cfg *parameter.Config, sc *Scenario, opts Options) (Report, error) {
	report := Report{Scenario: sc.Name}

	initial, err := sc.World()
	if err != nil {
		return report, err
	}
	ctrl, done, err := sc.controller(cfg)
	if err != nil {
		return report, err
	}
	terminating, always, err := sc.validations()
	if err != nil {
		return report, err
	}
	terminating = append(terminating, opts.Terminating...)
	if done != nil {
		terminating = append(terminating, done)
	}
	always = append(always, opts.NonTerminating...)

	sim := NewSimulator(cfg, initial)
	if side, fixed, _ := sc.possession(); fixed {
		sim.FixPossession(side)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = sc.Timeout()
	}

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		w := sim.World()
		report.Ticks, report.Elapsed, report.Final = sim.Ticks(), sim.Now(), w

		if err := check(w, always); err != nil {
			log.Printf("[SIM] %s: failed at %v: %v", sc.Name, sim.Now(), err)
			return report, fmt.Errorf("tick %d: %w", sim.Ticks(), err)
		}
		pending := check(w, terminating)
		if pending == nil && len(terminating) > 0 {
			log.Printf("[SIM] %s: passed after %v", sc.Name, sim.Now())
			return report, nil
		}
		if sim.Now() >= timeout {
			if len(terminating) == 0 {
				// nothing to wait for, surviving the run is the pass
				return report, nil
			}
			if pending != nil {
				report.Pending = pending.Error()
			}
			log.Printf("[SIM] %s: timed out: %s", sc.Name, report.Pending)
			return report, fmt.Errorf("%s after %v: %w", sc.Name, timeout, ErrTimeout)
		}

		intents := ctrl.Tick(w)
		report.Play = ctrl.Name()
		if opts.Observer != nil {
			opts.Observer(Frame{
				Tick:        sim.Ticks(),
				Time:        sim.Now(),
				World:       w,
				Play:        report.Play,
				Assignments: ctrl.Assignments(),
				Intents:     intents,
			})
		}
		sim.Advance(intents)
	}
}

// controller builds the AI, or a single tactic with a validation that holds
// once the tactic is done
func (sc *Scenario) controller(cfg *parameter.Config) (Controller, Validation, error) {
	if sc.Tactic == nil {
		c := *cfg
		if sc.Play != "" {
			c.AI.Play = sc.Play
		}
		a, err := ai.New(&c)
		if err != nil {
			return nil, nil, err
		}
		return aiController{a}, nil, nil
	}

	ts := sc.Tactic
	origin, err := ts.Origin.vec()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: tactic origin: %v", ErrBadScenario, err)
	}
	dir := vmath.FromDegrees(ts.DirectionDeg)

	var t tactic.Tactic
	switch ts.Kind {
	case "chip":
		c := tactic.NewChip(cfg)
		c.UpdateControlParams(origin, dir, ts.Distance)
		t = c
	case "kick":
		k := tactic.NewKick(cfg)
		k.UpdateControlParams(origin, dir, ts.Speed)
		t = k
	case "move":
		m := tactic.NewMove(cfg)
		m.UpdateControlParams(origin, dir, 0)
		t = m
	default:
		return nil, nil, fmt.Errorf("%w: tactic kind %q", ErrBadScenario, ts.Kind)
	}

	tc := &tacticController{robot: world.RobotID(ts.Robot), tactic: t}
	done := func(world.World) error {
		if !t.Done() {
			return fmt.Errorf("%s not done: %s", t.Name(), t.State())
		}
		return nil
	}
	return tc, done, nil
}

type aiController struct{ *ai.AI }

func (c aiController) Name() string { return c.Play().String() }

// tacticController runs one tactic on one robot
type tacticController struct {
	robot  world.RobotID
	tactic tactic.Tactic
}

func (c *tacticController) Tick(w world.World) map[world.RobotID]intent.Intent {
	r, ok := w.Friendly.Robot(c.robot)
	if !ok {
		return nil
	}
	rec := intent.NewRecorder()
	c.tactic.Update(r, w, rec.Sink())
	return rec.Map()
}

func (c *tacticController) Name() string { return c.tactic.Name() }

func (c *tacticController) Assignments() []ai.Assignment {
	return []ai.Assignment{{Robot: c.robot, Tactic: c.tactic.Name(), State: c.tactic.State()}}
}
