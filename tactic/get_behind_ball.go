package tactic

import (
	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
)

// GetBehindBall states
const (
	GetBehindBallPositioning fsm.StateID = iota + 1
)

// GetBehindBallControlParams places the robot so it can strike the ball at
// BallLocation towards ChickDirection
type GetBehindBallControlParams struct {
	BallLocation   vmath.Vec2
	ChickDirection vmath.Angle
}

type GetBehindBallUpdate struct {
	Params GetBehindBallControlParams
	Common Update
}

func (GetBehindBallUpdate) Type() fsm.EventType { return UpdateEvent }

// BehindBallRegion is the triangle with its apex on the ball that opens
// away from the chick direction
func BehindBallRegion(p GetBehindBallControlParams, size float64) vmath.Triangle {
	back := (p.ChickDirection + vmath.Half).Unit()
	perp := back.Perp().Scale(size / 2)
	behind := p.BallLocation.Add(back.Scale(size))
	return vmath.Triangle{
		A: p.BallLocation,
		B: behind.Add(perp),
		C: behind.Sub(perp),
	}
}

// IsBehindBall reports whether the robot in e is inside the region behind the
// ball and facing the chick direction
func IsBehindBall(cfg *parameter.TacticConfig, e GetBehindBallUpdate) bool {
	region := BehindBallRegion(e.Params, cfg.BehindBallRegionSize)
	if !region.Contains(e.Common.Robot.Position) {
		return false
	}
	return e.Common.Robot.Orientation.Near(e.Params.ChickDirection, cfg.BehindBallOrientationTolerance())
}

// NewGetBehindBallFSM builds the positioning machine. It keeps commanding a
// move to a point inside the region until the robot is behind the ball
func NewGetBehindBallFSM(cfg *parameter.TacticConfig) *fsm.Machine[GetBehindBallUpdate] {
	m := fsm.NewMachine[GetBehindBallUpdate]("get_behind_ball")
	m.AddState(GetBehindBallPositioning, "Positioning")

	m.AddTransition(GetBehindBallPositioning, fsm.Transition[GetBehindBallUpdate]{
		Event:  UpdateEvent,
		Guard:  func(e GetBehindBallUpdate) bool { return !IsBehindBall(cfg, e) },
		Action: func(e GetBehindBallUpdate) { moveBehindBall(cfg, e) },
	})
	m.AddTransition(GetBehindBallPositioning, fsm.Transition[GetBehindBallUpdate]{
		TargetID: fsm.StateTerminal,
		Event:    UpdateEvent,
		Guard:    func(e GetBehindBallUpdate) bool { return IsBehindBall(cfg, e) },
	})

	return m.MustInit(GetBehindBallPositioning)
}

func moveBehindBall(cfg *parameter.TacticConfig, e GetBehindBallUpdate) {
	// Three quarters of the region depth keeps the target well inside it
	dest := e.Params.BallLocation.Sub(e.Params.ChickDirection.Unit().Scale(cfg.BehindBallRegionSize * 3 / 4))
	e.Common.emit(intent.Move{
		Robot:            e.Common.Robot.ID,
		Destination:      dest,
		FinalOrientation: e.Params.ChickDirection,
	})
}
