package tactic

import (
	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// Chip machine states
const (
	ChipGetBehindBall fsm.StateID = iota + 1
	ChipChip
)

type ChipControlParams struct {
	// Where the ball is chipped from
	ChipOrigin vmath.Vec2
	// Direction of the chip
	ChipDirection vmath.Angle
	// Distance to the first bounce
	ChipDistanceMeters float64
}

type ChipUpdate struct {
	Params ChipControlParams
	Common Update
}

func (ChipUpdate) Type() fsm.EventType { return UpdateEvent }

// NewChipFSM builds GetBehindBall(Positioning) -> Chip -> Terminal
func NewChipFSM(cfg *parameter.TacticConfig) *fsm.Machine[ChipUpdate] {
	m := fsm.NewMachine[ChipUpdate]("chip")

	behind := fsm.Nest(NewGetBehindBallFSM(cfg), func(e ChipUpdate) GetBehindBallUpdate {
		return GetBehindBallUpdate{
			Params: GetBehindBallControlParams{
				BallLocation:   e.Params.ChipOrigin,
				ChickDirection: e.Params.ChipDirection,
			},
			Common: e.Common,
		}
	})
	m.AddComposite(ChipGetBehindBall, "GetBehindBall", behind, ChipChip)

	m.AddState(ChipChip, "Chip")
	m.AddTransition(ChipChip, fsm.Transition[ChipUpdate]{
		Event:  UpdateEvent,
		Guard:  func(e ChipUpdate) bool { return !ballChicked(cfg, e.Common.World, e.Params.ChipDirection) },
		Action: updateChip,
	})
	m.AddTransition(ChipChip, fsm.Transition[ChipUpdate]{
		TargetID: fsm.StateTerminal,
		Event:    UpdateEvent,
		Guard:    func(e ChipUpdate) bool { return ballChicked(cfg, e.Common.World, e.Params.ChipDirection) },
	})

	return m.MustInit(ChipGetBehindBall)
}

func updateChip(e ChipUpdate) {
	e.Common.emit(intent.Chip{
		Robot:     e.Common.Robot.ID,
		Origin:    e.Params.ChipOrigin,
		Direction: e.Params.ChipDirection,
		Distance:  e.Params.ChipDistanceMeters,
	})
}

// ballChicked is shared by the chip and kick machines
func ballChicked(cfg *parameter.TacticConfig, w world.World, direction vmath.Angle) bool {
	return w.Ball.HasBeenKicked(direction, cfg.KickedMinSpeed, cfg.KickedMaxAngleDiff())
}

// Chip gets behind the ball and chips it towards a target distance
type Chip struct {
	params  ChipControlParams
	machine *fsm.Machine[ChipUpdate]
}

func NewChip(cfg *parameter.Config) *Chip {
	return &Chip{machine: NewChipFSM(&cfg.Tactic)}
}

// UpdateControlParams sets the chip used by the next updates
func (c *Chip) UpdateControlParams(origin vmath.Vec2, direction vmath.Angle, distance float64) {
	c.params = ChipControlParams{
		ChipOrigin:         origin,
		ChipDirection:      direction,
		ChipDistanceMeters: distance,
	}
}

func (c *Chip) Params() ChipControlParams { return c.params }

// FSM exposes the machine for state queries
func (c *Chip) FSM() *fsm.Machine[ChipUpdate] { return c.machine }

func (c *Chip) Name() string { return "Chip" }

func (c *Chip) Cost(robot world.Robot, w world.World) float64 {
	return robot.Position.DistanceTo(c.params.ChipOrigin)
}

func (c *Chip) Update(robot world.Robot, w world.World, sink intent.Sink) {
	c.machine.Process(ChipUpdate{
		Params: c.params,
		Common: Update{Robot: robot, World: w, SetIntent: sink},
	})
}

func (c *Chip) Done() bool    { return c.machine.Done() }
func (c *Chip) Reset()        { c.machine.Reset() }
func (c *Chip) State() string { return c.machine.String() }
