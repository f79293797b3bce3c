// Package simulation advances a world under friendly intents and checks
// scenarios against it.
//
// Robots accelerate towards their move destinations and snap onto them. The
// ball rolls with constant deceleration. Chips and kicks only launch when the
// robot is at the ball facing the commanded direction. There are no
// collisions and enemy robots hold still.
package simulation

import (
	"math"
	"slices"
	"time"

	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

const gravity = 9.81

// snapDistance is the distance under which a robot is placed on its destination
const snapDistance = 1e-3

// Simulator owns the simulated world and steps it at a fixed rate
type Simulator struct {
	cfg *parameter.SimulatorConfig
	tac *parameter.TacticConfig
	ai  *parameter.AIConfig

	dt    time.Duration
	now   time.Duration
	ticks int
	world world.World

	// possession is fixed when set, otherwise inferred every step
	possession *world.TeamSide
}

func NewSimulator(cfg *parameter.Config, initial world.World) *Simulator {
	return &Simulator{
		cfg:   &cfg.Simulator,
		tac:   &cfg.Tactic,
		ai:    &cfg.AI,
		dt:    time.Second / time.Duration(cfg.AI.TickRateHz),
		world: initial,
	}
}

// FixPossession stops possession inference and reports side every step
func (s *Simulator) FixPossession(side world.TeamSide) {
	s.possession = &side
	s.world.Possession = side
}

func (s *Simulator) World() world.World  { return s.world }
func (s *Simulator) Now() time.Duration  { return s.now }
func (s *Simulator) Ticks() int          { return s.ticks }
func (s *Simulator) Step() time.Duration { return s.dt }

// Advance applies intents for one step and produces the next world.
// Friendly robots without an intent brake
func (s *Simulator) Advance(intents map[world.RobotID]intent.Intent) {
	w := s.world
	ball := w.Ball
	robots := slices.Clone(w.Friendly.Robots)

	for i, r := range robots {
		robots[i], ball = s.apply(r, intents[r.ID], ball)
	}
	ball = s.roll(ball)

	s.now += s.dt
	s.ticks++
	for i := range robots {
		robots[i].Timestamp = s.now
	}
	ball.Timestamp = s.now

	w.Friendly = world.Team{Robots: robots, GoalieID: w.Friendly.GoalieID}
	w.Ball = ball
	w.GameState = w.GameState.ObserveBall(ball)
	if s.possession != nil {
		w.Possession = *s.possession
	} else {
		w.Possession = world.InferPossession(w, s.ai.PossessionRadius)
	}
	s.world = w
}

func (s *Simulator) apply(r world.Robot, in intent.Intent, ball world.Ball) (world.Robot, world.Ball) {
	switch in := in.(type) {
	case intent.Move:
		maxSpeed := s.cfg.RobotMaxSpeed
		if in.MaxSpeed > 0 {
			maxSpeed = math.Min(in.MaxSpeed, maxSpeed)
		}
		return s.drive(r, in.Destination, in.FinalOrientation, maxSpeed), ball
	case intent.Chip:
		return s.strike(r, ball, in.Direction, ChipSpeed(in.Distance, s.cfg.ChipLaunchAngleDeg))
	case intent.Kick:
		return s.strike(r, ball, in.Direction, in.Speed)
	}
	return s.brake(r), ball
}

// ChipSpeed is the horizontal launch speed that lands a chip distance metres
// away at the given launch angle
func ChipSpeed(distance, launchAngleDeg float64) float64 {
	theta := vmath.FromDegrees(launchAngleDeg).Radians()
	v := math.Sqrt(distance * gravity / math.Sin(2*theta))
	return v * math.Cos(theta)
}

// strike launches the ball when the robot is touching it from behind and
// facing direction, otherwise it drives the robot onto the ball
func (s *Simulator) strike(r world.Robot, ball world.Ball, direction vmath.Angle, speed float64) (world.Robot, world.Ball) {
	contact := world.RobotMaxRadius + world.BallRadius
	toBall := ball.Position.Sub(r.Position)
	heading := direction.Unit()

	inReach := toBall.Len() <= contact+s.cfg.KickReach
	ahead := toBall.Dot(heading) > 0
	aligned := r.Orientation.Near(direction, s.tac.BehindBallOrientationTolerance())
	if inReach && ahead && aligned {
		ball.Velocity = heading.Scale(math.Min(speed, s.cfg.MaxKickSpeed))
		return s.brake(r), ball
	}

	dest := ball.Position.Sub(heading.Scale(contact))
	return s.drive(r, dest, direction, s.cfg.RobotMaxSpeed), ball
}

// drive moves r towards dest along a trapezoidal speed profile
func (s *Simulator) drive(r world.Robot, dest vmath.Vec2, orientation vmath.Angle, maxSpeed float64) world.Robot {
	dt := s.dt.Seconds()
	accel := s.cfg.RobotMaxAccel

	toDest := dest.Sub(r.Position)
	dist := toDest.Len()
	if dist < snapDistance || dist <= r.Velocity.Len()*dt {
		r.Position = dest
		r.Velocity = vmath.Vec2{}
	} else {
		want := toDest.WithLen(math.Min(maxSpeed, math.Sqrt(2*accel*dist)))
		r.Velocity = r.Velocity.Add(want.Sub(r.Velocity).ClampLen(accel * dt))
		r.Position = r.Position.Add(r.Velocity.Scale(dt))
	}
	return s.turn(r, orientation)
}

func (s *Simulator) turn(r world.Robot, orientation vmath.Angle) world.Robot {
	maxStep := s.cfg.RobotMaxAngularSpeed * s.dt.Seconds()
	diff := orientation.MinDiff(r.Orientation)
	if math.Abs(diff.Radians()) <= maxStep {
		r.Orientation = orientation.Clamp()
		r.AngularVelocity = 0
		return r
	}
	sign := math.Copysign(1, diff.Radians())
	r.Orientation = (r.Orientation + vmath.FromRadians(sign*maxStep)).Clamp()
	r.AngularVelocity = vmath.FromRadians(sign * s.cfg.RobotMaxAngularSpeed)
	return r
}

func (s *Simulator) brake(r world.Robot) world.Robot {
	dt := s.dt.Seconds()
	dv := s.cfg.RobotMaxAccel * dt
	if speed := r.Velocity.Len(); speed <= dv {
		r.Velocity = vmath.Vec2{}
	} else {
		r.Velocity = r.Velocity.WithLen(speed - dv)
	}
	r.Position = r.Position.Add(r.Velocity.Scale(dt))
	r.AngularVelocity = 0
	return r
}

func (s *Simulator) roll(b world.Ball) world.Ball {
	speed := b.Velocity.Len()
	if speed == 0 {
		return b
	}
	dt := s.dt.Seconds()
	speed = math.Max(0, speed-s.cfg.BallRollingDecel*dt)
	b.Velocity = b.Velocity.WithLen(speed)
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	return b
}
