package tactic

import (
	"testing"

	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// defenseWorld has the ball next to an enemy forward in the friendly half
func defenseWorld() world.World {
	enemy := world.NewTeam(world.NewStationaryRobots(
		vmath.V2(4.5, 0),
		vmath.V2(1, 3),
		vmath.V2(-2, -1.25),
	), 0)
	return world.NewBlankWorld().
		WithBall(world.Ball{Position: vmath.V2(0.9, 2.85)}).
		WithEnemy(enemy)
}

func TestDefensivePositions(t *testing.T) {
	cfg := parameter.Default()
	w := defenseWorld()

	anchor, fwd := GoalieAnchor(w, cfg.Defense.GoalieStandoff)
	enemy1, _ := w.Enemy.Robot(1)
	enemy2, _ := w.Enemy.Robot(2)

	tests := []struct {
		name string
		got  vmath.Vec2
		want vmath.Vec2
	}{
		{"goalie anchor", anchor, vmath.V2(-4.2347, 0.1400)},
		{"crease left", CreasePosition(w, &cfg.Defense, Left), vmath.V2(-4.1954, 0.3869)},
		{"crease right", CreasePosition(w, &cfg.Defense, Right), vmath.V2(-4.0087, 0.0332)},
		{"block", BlockPosition(w, cfg.Defense.BlockDistance), vmath.V2(0.4578, 2.6166)},
		{"mark ball holder", ShadowPosition(w, enemy1, cfg.Defense.ShadowDistance), vmath.V2(0.7781, 2.6672)},
		{"mark deep forward", ShadowPosition(w, enemy2, cfg.Defense.ShadowDistance), vmath.V2(-1.7690, -0.9234)},
		{"guard deep forward", GuardPosition(w, enemy2, cfg.Defense.GuardMargin), vmath.V2(-3.4714, -0.5143)},
		{"flank right", FlankPosition(w, cfg.Defense.SwarmDistance, cfg.Defense.SwarmAngle(), Right), vmath.V2(0.7228, 2.2768)},
		{"flank left", FlankPosition(w, cfg.Defense.SwarmDistance, cfg.Defense.SwarmAngle(), Left), vmath.V2(0.3268, 3.0272)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Near(tt.want, 1e-3) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if fwd.Len() < 0.999 || fwd.Len() > 1.001 {
		t.Errorf("forward vector not unit: %v", fwd)
	}
}

func TestGoalieAnchorDegenerateBall(t *testing.T) {
	cfg := parameter.Default()
	w := world.NewBlankWorld()
	goal := w.Field.FriendlyGoalCenter()

	t.Run("ball on goal centre", func(t *testing.T) {
		anchor, fwd := GoalieAnchor(w.WithBall(world.Ball{Position: goal}), cfg.Defense.GoalieStandoff)
		if !fwd.Near(vmath.V2(1, 0), 1e-9) {
			t.Errorf("fwd = %v, want +x", fwd)
		}
		if !anchor.Near(goal.Add(vmath.V2(cfg.Defense.GoalieStandoff, 0)), 1e-9) {
			t.Errorf("anchor = %v", anchor)
		}
	})

	t.Run("ball behind goal line", func(t *testing.T) {
		_, fwd := GoalieAnchor(w.WithBall(world.Ball{Position: goal.Add(vmath.V2(-0.5, 0.5))}), cfg.Defense.GoalieStandoff)
		if fwd.X < 0 {
			t.Errorf("goalie pushed into the goal: fwd = %v", fwd)
		}
	})
}

func TestMarkStandsInThePassLane(t *testing.T) {
	cfg := parameter.Default()
	w := defenseWorld()

	for _, id := range []world.RobotID{1, 2} {
		enemy, _ := w.Enemy.Robot(id)
		dest := ShadowPosition(w, enemy, cfg.Defense.ShadowDistance)

		lane := enemy.Position.DistanceTo(w.Ball.Position)
		via := enemy.Position.DistanceTo(dest) + dest.DistanceTo(w.Ball.Position)
		if via-lane > 1e-9 {
			t.Errorf("enemy %d: mark %v is off the line to the ball", id, dest)
		}
		if got := enemy.Position.DistanceTo(dest); got < cfg.Defense.ShadowDistance-1e-9 || got > cfg.Defense.ShadowDistance+1e-9 {
			t.Errorf("enemy %d: mark %.3f m away, want %.3f", id, got, cfg.Defense.ShadowDistance)
		}
	}

	// the holder's flank keeps clear of the robot blocking the shot
	block := BlockPosition(w, cfg.Defense.BlockDistance)
	flank := FlankPosition(w, cfg.Defense.SwarmDistance, cfg.Defense.SwarmAngle(), InnerFlank(w, &cfg.Defense))
	if d := flank.DistanceTo(block); d < 0.3 {
		t.Errorf("flank %v is %.2f m from the block spot", flank, d)
	}
	if InnerFlank(w, &cfg.Defense) != Right {
		t.Error("inner flank of a ball near the left touch line should be Right")
	}
}

func TestShadowEnemyModes(t *testing.T) {
	cfg := parameter.Default()
	w := defenseWorld()
	enemy, _ := w.Enemy.Robot(2)

	tests := []struct {
		mode ShadowMode
		want vmath.Vec2
		face vmath.Vec2
	}{
		{ShadowMark, ShadowPosition(w, enemy, cfg.Defense.ShadowDistance), enemy.Position},
		{ShadowGuard, GuardPosition(w, enemy, cfg.Defense.GuardMargin), enemy.Position},
		{ShadowFlank, FlankPosition(w, cfg.Defense.SwarmDistance, cfg.Defense.SwarmAngle(), Right), w.Ball.Position},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s := NewShadowEnemy(cfg)
			s.UpdateControlParams(2, tt.mode)
			rec := intent.NewRecorder()
			s.Update(world.NewRobotAt(4, vmath.V2(0, 0)), w, rec.Sink())

			got, ok := rec.Get(4)
			if !ok {
				t.Fatal("no move emitted")
			}
			mv := got.(intent.Move)
			if !mv.Destination.Near(tt.want, 1e-9) {
				t.Errorf("destination %v, want %v", mv.Destination, tt.want)
			}
			if want := facing(tt.want, tt.face); !mv.FinalOrientation.Near(want, 1e-9) {
				t.Errorf("orientation %.1f°, want %.1f°", mv.FinalOrientation.Degrees(), want.Degrees())
			}
			if s.Enemy() != 2 || s.Mode() != tt.mode {
				t.Errorf("params %d/%s", s.Enemy(), s.Mode())
			}
		})
	}
}

func TestShadowEnemyHoldsWhenTargetMissing(t *testing.T) {
	cfg := parameter.Default()
	w := defenseWorld()
	s := NewShadowEnemy(cfg)
	s.UpdateControlParams(42, ShadowMark)

	robot := world.NewRobotAt(3, vmath.V2(-1, 1))
	rec := intent.NewRecorder()
	s.Update(robot, w, rec.Sink())

	if !s.Done() {
		// a stationary robot already on its own spot is done immediately
		t.Fatalf("expected shadow with no target to be done, got %s", s.State())
	}
	if rec.Count() != 0 {
		t.Errorf("holding robot emitted %v", rec.All())
	}
	if s.Cost(robot, w) != 0 {
		t.Errorf("cost without target = %v, want 0", s.Cost(robot, w))
	}
}

func TestPositionTacticRestartsWhenTargetMoves(t *testing.T) {
	cfg := parameter.Default()
	w := defenseWorld()
	b := NewBlock(cfg)

	dest := BlockPosition(w, cfg.Defense.BlockDistance)
	arrived := world.Robot{ID: 1, Position: dest, Orientation: facing(dest, w.Ball.Position)}

	b.Update(arrived, w, intent.Discard)
	if !b.Done() {
		t.Fatalf("robot on the block spot not done: %s", b.State())
	}

	moved := w.WithBall(world.Ball{Position: vmath.V2(0, 0)})
	rec := intent.NewRecorder()
	b.Update(arrived, moved, rec.Sink())
	if b.Done() {
		t.Fatal("block stayed done after the ball moved")
	}
	got, ok := rec.Get(1)
	if !ok {
		t.Fatal("no move emitted after restart")
	}
	mv := got.(intent.Move)
	if !mv.Destination.Near(BlockPosition(moved, cfg.Defense.BlockDistance), 1e-9) {
		t.Errorf("destination %v does not follow the ball", mv.Destination)
	}
}

func TestPositionTacticNames(t *testing.T) {
	cfg := parameter.Default()
	names := map[string]Tactic{
		"Goalie":              NewGoalie(cfg),
		"Block":               NewBlock(cfg),
		"CreaseDefenderLeft":  NewCreaseDefender(cfg, Left),
		"CreaseDefenderRight": NewCreaseDefender(cfg, Right),
		"ShadowEnemy":         NewShadowEnemy(cfg),
		"SwarmLeft":           NewSwarm(cfg, Left),
		"SwarmRight":          NewSwarm(cfg, Right),
		"Stop":                NewStop(cfg, false),
		"Move":                NewMove(cfg),
		"Chip":                NewChip(cfg),
		"Kick":                NewKick(cfg),
	}
	for want, tac := range names {
		if tac.Name() != want {
			t.Errorf("Name() = %q, want %q", tac.Name(), want)
		}
	}
}
