package tactic

import (
	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// Move machine states
const (
	MoveMoving fsm.StateID = iota + 1
)

type MoveControlParams struct {
	Destination      vmath.Vec2
	FinalOrientation vmath.Angle
	FinalSpeed       float64
}

type MoveUpdate struct {
	Params MoveControlParams
	Common Update
}

func (MoveUpdate) Type() fsm.EventType { return UpdateEvent }

// Arrived reports whether robot sits on the destination with the final
// orientation. A zero final speed also requires the robot to have stopped
func Arrived(cfg *parameter.TacticConfig, robot world.Robot, p MoveControlParams) bool {
	if robot.Position.DistanceTo(p.Destination) > cfg.ArrivalDistance {
		return false
	}
	if !robot.Orientation.Near(p.FinalOrientation, cfg.ArrivalOrientation()) {
		return false
	}
	if p.FinalSpeed == 0 {
		return robot.IsStopped(cfg.StoppedSpeed, cfg.StoppedAngularSpeed())
	}
	return true
}

// NewMoveFSM builds Moving -> Terminal, commanding the move until arrival
func NewMoveFSM(cfg *parameter.TacticConfig) *fsm.Machine[MoveUpdate] {
	m := fsm.NewMachine[MoveUpdate]("move")
	m.AddState(MoveMoving, "Moving")

	m.AddTransition(MoveMoving, fsm.Transition[MoveUpdate]{
		Event: UpdateEvent,
		Guard: func(e MoveUpdate) bool { return !Arrived(cfg, e.Common.Robot, e.Params) },
		Action: func(e MoveUpdate) {
			e.Common.emit(intent.Move{
				Robot:            e.Common.Robot.ID,
				Destination:      e.Params.Destination,
				FinalOrientation: e.Params.FinalOrientation,
				FinalSpeed:       e.Params.FinalSpeed,
			})
		},
	})
	m.AddTransition(MoveMoving, fsm.Transition[MoveUpdate]{
		TargetID: fsm.StateTerminal,
		Event:    UpdateEvent,
		Guard:    func(e MoveUpdate) bool { return Arrived(cfg, e.Common.Robot, e.Params) },
	})

	return m.MustInit(MoveMoving)
}

// Move drives a robot to a fixed destination chosen by the play
type Move struct {
	cfg     *parameter.TacticConfig
	params  MoveControlParams
	machine *fsm.Machine[MoveUpdate]
}

func NewMove(cfg *parameter.Config) *Move {
	return &Move{
		cfg:     &cfg.Tactic,
		machine: NewMoveFSM(&cfg.Tactic),
	}
}

// UpdateControlParams sets the destination. A finished move restarts when the
// new destination is away from the robot
func (m *Move) UpdateControlParams(dest vmath.Vec2, orientation vmath.Angle, finalSpeed float64) {
	m.params = MoveControlParams{
		Destination:      dest,
		FinalOrientation: orientation,
		FinalSpeed:       finalSpeed,
	}
}

func (m *Move) FSM() *fsm.Machine[MoveUpdate] { return m.machine }

func (m *Move) Name() string { return "Move" }

func (m *Move) Cost(robot world.Robot, w world.World) float64 {
	return robot.Position.DistanceTo(m.params.Destination)
}

func (m *Move) Update(robot world.Robot, w world.World, sink intent.Sink) {
	runMove(m.cfg, m.machine, m.params, robot, w, sink)
}

func (m *Move) Done() bool    { return m.machine.Done() }
func (m *Move) Reset()        { m.machine.Reset() }
func (m *Move) State() string { return m.machine.String() }

// runMove restarts a finished machine whose destination has moved, then
// delivers one update
func runMove(cfg *parameter.TacticConfig, machine *fsm.Machine[MoveUpdate], p MoveControlParams,
	robot world.Robot, w world.World, sink intent.Sink) {
	if machine.Done() && !Arrived(cfg, robot, p) {
		machine.Reset()
	}
	machine.Process(MoveUpdate{
		Params: p,
		Common: Update{Robot: robot, World: w, SetIntent: sink},
	})
}
