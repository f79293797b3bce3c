package tactic

import (
	"strconv"

	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// positioner drives its robot to a spot recomputed from the world every tick
type positioner struct {
	name    string
	cfg     *parameter.TacticConfig
	params  MoveControlParams
	machine *fsm.Machine[MoveUpdate]

	// target returns the destination and final orientation, false when it
	// cannot be computed and the robot should hold where it is
	target func(w world.World) (vmath.Vec2, vmath.Angle, bool)
}

func newPositioner(cfg *parameter.Config, name string) positioner {
	return positioner{
		name:    name,
		cfg:     &cfg.Tactic,
		machine: NewMoveFSM(&cfg.Tactic),
	}
}

func (p *positioner) Name() string { return p.name }

func (p *positioner) Cost(robot world.Robot, w world.World) float64 {
	dest, _, ok := p.target(w)
	if !ok {
		return 0
	}
	return robot.Position.DistanceTo(dest)
}

func (p *positioner) Update(robot world.Robot, w world.World, sink intent.Sink) {
	dest, orientation, ok := p.target(w)
	if !ok {
		dest, orientation = robot.Position, robot.Orientation
	}
	p.params = MoveControlParams{Destination: dest, FinalOrientation: orientation}
	runMove(p.cfg, p.machine, p.params, robot, w, sink)
}

// Destination is the last destination commanded
func (p *positioner) Destination() vmath.Vec2 { return p.params.Destination }

func (p *positioner) Done() bool    { return p.machine.Done() }
func (p *positioner) Reset()        { p.machine.Reset() }
func (p *positioner) State() string { return p.machine.String() }

// facing returns the orientation at from that looks at to
func facing(from, to vmath.Vec2) vmath.Angle { return to.Sub(from).Orientation() }

// GoalieAnchor returns the goalie spot standoff metres out of the friendly
// goal towards the ball, and the unit vector from the goal towards the ball.
// A ball behind the goal line is treated as level with it
func GoalieAnchor(w world.World, standoff float64) (vmath.Vec2, vmath.Vec2) {
	goal := w.Field.FriendlyGoalCenter()
	dir := w.Ball.Position.Sub(goal)
	if dir.X < 0 {
		dir.X = 0
	}
	fwd := dir.Normalize()
	if fwd.IsZero() {
		fwd = vmath.V2(1, 0)
	}
	return goal.Add(fwd.Scale(standoff)), fwd
}

// Goalie guards the goal mouth on the line between the goal and the ball
type Goalie struct{ positioner }

func NewGoalie(cfg *parameter.Config) *Goalie {
	g := &Goalie{newPositioner(cfg, "Goalie")}
	d := &cfg.Defense
	g.target = func(w world.World) (vmath.Vec2, vmath.Angle, bool) {
		anchor, _ := GoalieAnchor(w, d.GoalieStandoff)
		return anchor, facing(anchor, w.Ball.Position), true
	}
	return g
}

// Side is seen from the friendly goal looking up the field
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// CreasePosition places a crease defender beside and slightly ahead of the
// goalie anchor
func CreasePosition(w world.World, d *parameter.DefenseConfig, side Side) vmath.Vec2 {
	anchor, fwd := GoalieAnchor(w, d.GoalieStandoff)
	lateral := fwd.Perp().Scale(d.CreaseLateralOffset)
	if side == Right {
		lateral = lateral.Scale(-1)
	}
	return anchor.Add(lateral).Add(fwd.Scale(d.CreaseForwardOffset))
}

// CreaseDefender screens one side of the goalie
type CreaseDefender struct {
	positioner
	Side Side
}

func NewCreaseDefender(cfg *parameter.Config, side Side) *CreaseDefender {
	c := &CreaseDefender{positioner: newPositioner(cfg, "CreaseDefender"+side.String()), Side: side}
	d := &cfg.Defense
	c.target = func(w world.World) (vmath.Vec2, vmath.Angle, bool) {
		dest := CreasePosition(w, d, side)
		return dest, facing(dest, w.Ball.Position), true
	}
	return c
}

// BlockPosition is distance metres from the ball towards the friendly goal
func BlockPosition(w world.World, distance float64) vmath.Vec2 {
	toGoal := w.Field.FriendlyGoalCenter().Sub(w.Ball.Position).Normalize()
	return w.Ball.Position.Add(toGoal.Scale(distance))
}

// Block stands between the ball and the friendly goal
type Block struct{ positioner }

func NewBlock(cfg *parameter.Config) *Block {
	b := &Block{newPositioner(cfg, "Block")}
	d := &cfg.Defense
	b.target = func(w world.World) (vmath.Vec2, vmath.Angle, bool) {
		dest := BlockPosition(w, d.BlockDistance)
		return dest, facing(dest, w.Ball.Position), true
	}
	return b
}

// ShadowPosition is distance metres from the enemy along its pass lane,
// between the enemy and the ball
func ShadowPosition(w world.World, enemy world.Robot, distance float64) vmath.Vec2 {
	toBall := w.Ball.Position.Sub(enemy.Position).Normalize()
	return enemy.Position.Add(toBall.Scale(distance))
}

// GuardPosition is on the shot line from the friendly goal centre to the
// enemy, margin metres clear of the defense area
func GuardPosition(w world.World, enemy world.Robot, margin float64) vmath.Vec2 {
	goal := w.Field.FriendlyGoalCenter()
	toEnemy := enemy.Position.Sub(goal).Normalize()
	if toEnemy.IsZero() {
		toEnemy = vmath.V2(1, 0)
	}
	return goal.Add(toEnemy.Scale(w.Field.DefenseAreaLength + margin))
}

// FlankPosition is distance metres from the ball, turned angle off the line
// from the ball to the friendly goal towards side
func FlankPosition(w world.World, distance float64, angle vmath.Angle, side Side) vmath.Vec2 {
	toGoal := w.Field.FriendlyGoalCenter().Sub(w.Ball.Position).Normalize()
	if toGoal.IsZero() {
		toGoal = vmath.V2(-1, 0)
	}
	// left as seen from the goal is clockwise from the ball's line to it
	if side == Left {
		angle = -angle
	}
	return w.Ball.Position.Add(toGoal.Rotate(angle).Scale(distance))
}

// InnerFlank returns the flank side nearer the centre of the field
func InnerFlank(w world.World, d *parameter.DefenseConfig) Side {
	left := FlankPosition(w, d.SwarmDistance, d.SwarmAngle(), Left)
	right := FlankPosition(w, d.SwarmDistance, d.SwarmAngle(), Right)
	if right.LenSq() < left.LenSq() {
		return Right
	}
	return Left
}

// ShadowMode selects where a shadow stands relative to its enemy
type ShadowMode int

const (
	// ShadowMark cuts the pass lane between the enemy and the ball
	ShadowMark ShadowMode = iota
	// ShadowGuard covers the enemy's shot just outside the defense area
	ShadowGuard
	// ShadowFlank covers the ball holder from the inner flank of the ball
	ShadowFlank
)

func (m ShadowMode) String() string {
	switch m {
	case ShadowMark:
		return "Mark"
	case ShadowGuard:
		return "Guard"
	case ShadowFlank:
		return "Flank"
	}
	return "ShadowMode(" + strconv.Itoa(int(m)) + ")"
}

// ShadowEnemy follows one enemy robot
type ShadowEnemy struct {
	positioner
	enemy world.RobotID
	mode  ShadowMode
}

func NewShadowEnemy(cfg *parameter.Config) *ShadowEnemy {
	s := &ShadowEnemy{positioner: newPositioner(cfg, "ShadowEnemy"), enemy: world.NoRobot}
	d := &cfg.Defense
	s.target = func(w world.World) (vmath.Vec2, vmath.Angle, bool) {
		enemy, ok := w.Enemy.Robot(s.enemy)
		if !ok {
			return vmath.Vec2{}, 0, false
		}
		var dest vmath.Vec2
		switch s.mode {
		case ShadowGuard:
			dest = GuardPosition(w, enemy, d.GuardMargin)
		case ShadowFlank:
			dest = FlankPosition(w, d.SwarmDistance, d.SwarmAngle(), InnerFlank(w, d))
			return dest, facing(dest, w.Ball.Position), true
		default:
			dest = ShadowPosition(w, enemy, d.ShadowDistance)
		}
		return dest, facing(dest, enemy.Position), true
	}
	return s
}

// UpdateControlParams picks the enemy to shadow and how
func (s *ShadowEnemy) UpdateControlParams(enemy world.RobotID, mode ShadowMode) {
	s.enemy, s.mode = enemy, mode
}

func (s *ShadowEnemy) Enemy() world.RobotID { return s.enemy }
func (s *ShadowEnemy) Mode() ShadowMode     { return s.mode }

// Swarm closes down the ball from one flank
type Swarm struct {
	positioner
	Side Side
}

func NewSwarm(cfg *parameter.Config, side Side) *Swarm {
	s := &Swarm{positioner: newPositioner(cfg, "Swarm"+side.String()), Side: side}
	d := &cfg.Defense
	s.target = func(w world.World) (vmath.Vec2, vmath.Angle, bool) {
		dest := FlankPosition(w, d.SwarmDistance, d.SwarmAngle(), side)
		return dest, facing(dest, w.Ball.Position), true
	}
	return s
}
