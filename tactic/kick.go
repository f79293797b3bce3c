package tactic

import (
	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// Kick machine states
const (
	KickGetBehindBall fsm.StateID = iota + 1
	KickKick
)

type KickControlParams struct {
	KickOrigin               vmath.Vec2
	KickDirection            vmath.Angle
	KickSpeedMetersPerSecond float64
}

type KickUpdate struct {
	Params KickControlParams
	Common Update
}

func (KickUpdate) Type() fsm.EventType { return UpdateEvent }

// NewKickFSM builds GetBehindBall(Positioning) -> Kick -> Terminal
func NewKickFSM(cfg *parameter.TacticConfig) *fsm.Machine[KickUpdate] {
	m := fsm.NewMachine[KickUpdate]("kick")

	behind := fsm.Nest(NewGetBehindBallFSM(cfg), func(e KickUpdate) GetBehindBallUpdate {
		return GetBehindBallUpdate{
			Params: GetBehindBallControlParams{
				BallLocation:   e.Params.KickOrigin,
				ChickDirection: e.Params.KickDirection,
			},
			Common: e.Common,
		}
	})
	m.AddComposite(KickGetBehindBall, "GetBehindBall", behind, KickKick)

	m.AddState(KickKick, "Kick")
	m.AddTransition(KickKick, fsm.Transition[KickUpdate]{
		Event: UpdateEvent,
		Guard: func(e KickUpdate) bool { return !ballChicked(cfg, e.Common.World, e.Params.KickDirection) },
		Action: func(e KickUpdate) {
			e.Common.emit(intent.Kick{
				Robot:     e.Common.Robot.ID,
				Origin:    e.Params.KickOrigin,
				Direction: e.Params.KickDirection,
				Speed:     e.Params.KickSpeedMetersPerSecond,
			})
		},
	})
	m.AddTransition(KickKick, fsm.Transition[KickUpdate]{
		TargetID: fsm.StateTerminal,
		Event:    UpdateEvent,
		Guard:    func(e KickUpdate) bool { return ballChicked(cfg, e.Common.World, e.Params.KickDirection) },
	})

	return m.MustInit(KickGetBehindBall)
}

// Kick gets behind the ball and kicks it along the ground
type Kick struct {
	params  KickControlParams
	machine *fsm.Machine[KickUpdate]
}

func NewKick(cfg *parameter.Config) *Kick {
	return &Kick{machine: NewKickFSM(&cfg.Tactic)}
}

func (k *Kick) UpdateControlParams(origin vmath.Vec2, direction vmath.Angle, speed float64) {
	k.params = KickControlParams{
		KickOrigin:               origin,
		KickDirection:            direction,
		KickSpeedMetersPerSecond: speed,
	}
}

func (k *Kick) FSM() *fsm.Machine[KickUpdate] { return k.machine }

func (k *Kick) Name() string { return "Kick" }

func (k *Kick) Cost(robot world.Robot, w world.World) float64 {
	return robot.Position.DistanceTo(k.params.KickOrigin)
}

func (k *Kick) Update(robot world.Robot, w world.World, sink intent.Sink) {
	k.machine.Process(KickUpdate{
		Params: k.params,
		Common: Update{Robot: robot, World: w, SetIntent: sink},
	})
}

func (k *Kick) Done() bool    { return k.machine.Done() }
func (k *Kick) Reset()        { k.machine.Reset() }
func (k *Kick) State() string { return k.machine.String() }
