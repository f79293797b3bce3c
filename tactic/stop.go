package tactic

import (
	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/world"
)

const (
	StopStopping fsm.StateID = iota + 1
)

type StopUpdate struct {
	Coast  bool
	Common Update
}

func (StopUpdate) Type() fsm.EventType { return UpdateEvent }

// NewStopFSM builds Stopping -> Terminal, braking until the robot is at rest
func NewStopFSM(cfg *parameter.TacticConfig) *fsm.Machine[StopUpdate] {
	stopped := func(e StopUpdate) bool {
		return e.Common.Robot.IsStopped(cfg.StoppedSpeed, cfg.StoppedAngularSpeed())
	}

	m := fsm.NewMachine[StopUpdate]("stop")
	m.AddState(StopStopping, "Stopping")
	m.AddTransition(StopStopping, fsm.Transition[StopUpdate]{
		Event: UpdateEvent,
		Guard: func(e StopUpdate) bool { return !stopped(e) },
		Action: func(e StopUpdate) {
			e.Common.emit(intent.Stop{Robot: e.Common.Robot.ID, Coast: e.Coast})
		},
	})
	m.AddTransition(StopStopping, fsm.Transition[StopUpdate]{
		TargetID: fsm.StateTerminal,
		Event:    UpdateEvent,
		Guard:    stopped,
	})
	return m.MustInit(StopStopping)
}

// Stop brings a robot to rest; surplus robots and the halt play use it
type Stop struct {
	cfg     *parameter.TacticConfig
	coast   bool
	machine *fsm.Machine[StopUpdate]
}

func NewStop(cfg *parameter.Config, coast bool) *Stop {
	return &Stop{cfg: &cfg.Tactic, coast: coast, machine: NewStopFSM(&cfg.Tactic)}
}

func (s *Stop) Name() string { return "Stop" }

// Cost is flat, any robot can stop
func (s *Stop) Cost(world.Robot, world.World) float64 { return 0 }

// Update restarts a finished stop whose robot is moving again
func (s *Stop) Update(robot world.Robot, w world.World, sink intent.Sink) {
	if s.machine.Done() && !robot.IsStopped(s.cfg.StoppedSpeed, s.cfg.StoppedAngularSpeed()) {
		s.machine.Reset()
	}
	s.machine.Process(StopUpdate{
		Coast:  s.coast,
		Common: Update{Robot: robot, World: w, SetIntent: sink},
	})
}

func (s *Stop) Done() bool    { return s.machine.Done() }
func (s *Stop) Reset()        { s.machine.Reset() }
func (s *Stop) State() string { return s.machine.String() }
