package simulation

import (
	"math"
	"testing"
	"time"

	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

func oneRobot(r world.Robot, ball world.Ball) world.World {
	return world.NewBlankWorld().
		WithFriendly(world.NewTeam([]world.Robot{r}, world.NoRobot)).
		WithBall(ball)
}

func robot0(t *testing.T, s *Simulator) world.Robot {
	t.Helper()
	r, ok := s.World().Friendly.Robot(0)
	if !ok {
		t.Fatal("robot 0 missing")
	}
	return r
}

func TestRobotDrivesToDestinationAndHalts(t *testing.T) {
	cfg := parameter.Default()
	s := NewSimulator(cfg, oneRobot(world.NewRobotAt(0, vmath.V2(0, 0)), world.Ball{Position: vmath.V2(3, 3)}))
	dest := vmath.V2(1, 0.5)
	move := map[world.RobotID]intent.Intent{0: intent.Move{Robot: 0, Destination: dest, FinalOrientation: vmath.Quarter}}

	maxSpeed := 0.0
	for i := 0; i < 5*cfg.AI.TickRateHz; i++ {
		s.Advance(move)
		r := robot0(t, s)
		maxSpeed = math.Max(maxSpeed, r.Velocity.Len())
		if r.Position == dest && r.Velocity.IsZero() {
			break
		}
	}

	r := robot0(t, s)
	if r.Position != dest {
		t.Fatalf("robot at %v, want %v", r.Position, dest)
	}
	if !r.Velocity.IsZero() || r.AngularVelocity != 0 {
		t.Errorf("robot still moving: v=%v w=%v", r.Velocity, r.AngularVelocity)
	}
	if !r.Orientation.Near(vmath.Quarter, 1e-9) {
		t.Errorf("orientation %.1f°, want 90°", r.Orientation.Degrees())
	}
	if maxSpeed > cfg.Simulator.RobotMaxSpeed+1e-9 {
		t.Errorf("speed limit exceeded: %.3f", maxSpeed)
	}
	if r.Timestamp != s.Now() {
		t.Errorf("robot timestamp %v, want %v", r.Timestamp, s.Now())
	}
}

func TestRobotWithoutIntentBrakes(t *testing.T) {
	cfg := parameter.Default()
	start := world.Robot{ID: 0, Velocity: vmath.V2(1.5, 0), AngularVelocity: 2}
	s := NewSimulator(cfg, oneRobot(start, world.Ball{Position: vmath.V2(3, 3)}))

	// 1.5 m/s at 3 m/s² needs half a second
	for i := 0; i < cfg.AI.TickRateHz; i++ {
		s.Advance(nil)
	}
	r := robot0(t, s)
	if !r.Velocity.IsZero() || r.AngularVelocity != 0 {
		t.Fatalf("robot not stopped: %+v", r)
	}
	if r.Position.X <= 0 || r.Position.X > 0.4 {
		t.Errorf("braking distance %.3f out of range", r.Position.X)
	}
}

func TestBallRollsToRest(t *testing.T) {
	cfg := parameter.Default()
	s := NewSimulator(cfg, world.NewBlankWorld().WithBall(world.Ball{Velocity: vmath.V2(1, 0)}))

	for i := 0; i < 3*cfg.AI.TickRateHz; i++ {
		s.Advance(nil)
	}
	b := s.World().Ball
	if !b.Velocity.IsZero() {
		t.Fatalf("ball still rolling at %v", b.Velocity)
	}
	// v²/2a = 1 m
	if b.Position.X < 0.95 || b.Position.X > 1.05 || b.Position.Y != 0 {
		t.Errorf("ball stopped at %v, want about (1, 0)", b.Position)
	}
}

func TestChipSpeed(t *testing.T) {
	got := ChipSpeed(1.2, 45)
	want := math.Sqrt(1.2*gravity) * math.Cos(math.Pi/4)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ChipSpeed = %v, want %v", got, want)
	}
	if ChipSpeed(2, 45) <= got {
		t.Error("longer chips must be faster")
	}
}

func TestChipLaunchesOnlyFromBehindTheBall(t *testing.T) {
	cfg := parameter.Default()
	dir := vmath.FromDegrees(135)
	ball := world.Ball{Position: vmath.V2(-2, 1.5)}
	contact := world.RobotMaxRadius + world.BallRadius
	behind := ball.Position.Sub(dir.Unit().Scale(contact))
	chip := map[world.RobotID]intent.Intent{0: intent.Chip{Robot: 0, Origin: ball.Position, Direction: dir, Distance: 1.2}}

	t.Run("touching and facing", func(t *testing.T) {
		s := NewSimulator(cfg, oneRobot(world.Robot{ID: 0, Position: behind, Orientation: dir}, ball))
		s.Advance(chip)
		v := s.World().Ball.Velocity
		if !v.Orientation().Near(dir, vmath.FromDegrees(0.1)) {
			t.Errorf("ball heading %.1f°, want 135°", v.Orientation().Degrees())
		}
		want := ChipSpeed(1.2, cfg.Simulator.ChipLaunchAngleDeg)
		if math.Abs(v.Len()-want) > 0.01 {
			t.Errorf("ball speed %.3f, want about %.3f", v.Len(), want)
		}
	})

	t.Run("facing away", func(t *testing.T) {
		s := NewSimulator(cfg, oneRobot(world.Robot{ID: 0, Position: behind, Orientation: dir + vmath.Half}, ball))
		s.Advance(chip)
		if !s.World().Ball.Velocity.IsZero() {
			t.Fatal("robot chipped while facing away")
		}
		if robot0(t, s).AngularVelocity == 0 {
			t.Error("robot is not turning towards the chip direction")
		}
	})

	t.Run("too far", func(t *testing.T) {
		far := ball.Position.Sub(dir.Unit().Scale(0.5))
		s := NewSimulator(cfg, oneRobot(world.Robot{ID: 0, Position: far, Orientation: dir}, ball))
		s.Advance(chip)
		if !s.World().Ball.Velocity.IsZero() {
			t.Fatal("robot chipped from half a metre away")
		}
		if robot0(t, s).Position.DistanceTo(ball.Position) >= 0.5 {
			t.Error("robot did not approach the ball")
		}
	})
}

func TestPossession(t *testing.T) {
	cfg := parameter.Default()
	w := oneRobot(world.NewRobotAt(0, vmath.V2(0.1, 0)), world.Ball{})

	s := NewSimulator(cfg, w)
	s.Advance(nil)
	if got := s.World().Possession; got != world.SideFriendly {
		t.Errorf("inferred possession %s, want FRIENDLY", got)
	}

	s = NewSimulator(cfg, w)
	s.FixPossession(world.SideEnemy)
	s.Advance(nil)
	if got := s.World().Possession; got != world.SideEnemy {
		t.Errorf("fixed possession %s, want ENEMY", got)
	}
}

func TestClockAdvances(t *testing.T) {
	s := NewSimulator(parameter.Default(), world.NewBlankWorld())
	for i := 0; i < 60; i++ {
		s.Advance(nil)
	}
	if s.Ticks() != 60 {
		t.Errorf("Ticks = %d", s.Ticks())
	}
	if d := s.Now() - time.Second; d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("Now = %v, want about 1s", s.Now())
	}
}
