package tactic

import (
	"testing"
	"time"

	"github.com/annaw245/Software/engine/fsm"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

func TestChipStartsBehindBall(t *testing.T) {
	chip := NewChip(parameter.Default())
	m := chip.FSM()

	if !m.Is(ChipGetBehindBall, GetBehindBallPositioning) {
		t.Fatalf("fresh chip not in GetBehindBall/Positioning: %s", m)
	}
	if m.Is(ChipChip) || m.Done() || chip.Done() {
		t.Fatalf("fresh chip already past positioning: %s", m)
	}
	if got := chip.State(); got != "chip:GetBehindBall/Positioning" {
		t.Errorf("State() = %q", got)
	}
}

// roundTrip drives the chip through all three phases with the robot placed
// inside the behind-ball region by hand
func roundTrip(t *testing.T, direction vmath.Angle, positioned vmath.Vec2) {
	t.Helper()

	origin := vmath.V2(-2, 1.5)
	w := world.NewBlankWorld()
	rec := intent.NewRecorder()

	chip := NewChip(parameter.Default())
	chip.UpdateControlParams(origin, direction, 1.2)

	robot := world.NewRobotAt(0, vmath.V2(-2, -3))
	chip.Update(robot, w, rec.Sink())
	if !chip.FSM().Is(ChipGetBehindBall, GetBehindBallPositioning) {
		t.Fatalf("far robot left GetBehindBall: %s", chip.FSM())
	}
	if _, ok := rec.Get(0); !ok {
		t.Fatal("positioning emitted no intent")
	}

	robot = world.Robot{ID: 0, Position: positioned, Orientation: direction}
	chip.Update(robot, w, rec.Sink())
	if !chip.FSM().Is(ChipChip) {
		t.Fatalf("positioned robot did not reach Chip: %s", chip.FSM())
	}

	w = w.WithBallVelocity(direction.Unit().Scale(2.1), time.Second)
	chip.Update(robot, w, rec.Sink())
	if !chip.Done() || !chip.FSM().Is(fsm.StateTerminal) {
		t.Fatalf("chipped ball did not finish the tactic: %s", chip.FSM())
	}
}

func TestChipRoundTrip(t *testing.T) {
	t.Run("straight down the field side", func(t *testing.T) {
		// (-2, 1.7) lies behind (-2, 1.5) for a chip towards -y
		roundTrip(t, vmath.ThreeQuarter, vmath.V2(-2, 1.7))
	})
	t.Run("diagonal", func(t *testing.T) {
		dir := vmath.FromDegrees(135)
		behind := vmath.V2(-2, 1.5).Sub(dir.Unit().Scale(0.2))
		roundTrip(t, dir, behind)
	})
}

func TestChipHoldsWhileNotBehindBall(t *testing.T) {
	cfg := parameter.Default()
	w := world.NewBlankWorld()
	chip := NewChip(cfg)
	chip.UpdateControlParams(vmath.V2(-2, 1.5), vmath.ThreeQuarter, 1.2)

	// Inside the region but facing the wrong way
	robot := world.Robot{ID: 3, Position: vmath.V2(-2, 1.7), Orientation: vmath.Quarter}

	for i := 0; i < 5; i++ {
		rec := intent.NewRecorder()
		chip.Update(robot, w, rec.Sink())
		if !chip.FSM().Is(ChipGetBehindBall, GetBehindBallPositioning) {
			t.Fatalf("tick %d: left GetBehindBall: %s", i, chip.FSM())
		}
		got, ok := rec.Get(3)
		if !ok {
			t.Fatalf("tick %d: no intent", i)
		}
		mv, isMove := got.(intent.Move)
		if !isMove {
			t.Fatalf("tick %d: intent %T, want Move", i, got)
		}
		want := vmath.V2(-2, 1.5+cfg.Tactic.BehindBallRegionSize*3/4)
		if !mv.Destination.Near(want, 1e-9) {
			t.Errorf("tick %d: destination %v, want %v", i, mv.Destination, want)
		}
		if !mv.FinalOrientation.Near(vmath.ThreeQuarter, 1e-9) {
			t.Errorf("tick %d: orientation %v", i, mv.FinalOrientation.Degrees())
		}
	}
}

func TestChipStaysInChipUntilBallMovesAlongDirection(t *testing.T) {
	w := world.NewBlankWorld()
	chip := NewChip(parameter.Default())
	dir := vmath.FromDegrees(135)
	origin := vmath.V2(1, 1)
	chip.UpdateControlParams(origin, dir, 2)

	robot := world.Robot{ID: 1, Position: origin.Sub(dir.Unit().Scale(0.2)), Orientation: dir}
	chip.Update(robot, w, intent.Discard)
	if !chip.FSM().Is(ChipChip) {
		t.Fatalf("expected Chip, got %s", chip.FSM())
	}

	tests := []struct {
		name string
		vel  vmath.Vec2
	}{
		{"no velocity observed", vmath.Vec2{}},
		{"too slow", dir.Unit().Scale(0.1)},
		{"wrong direction", (dir + vmath.Quarter).Unit().Scale(3)},
		{"backwards", (dir + vmath.Half).Unit().Scale(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := intent.NewRecorder()
			chip.Update(robot, w.WithBallVelocity(tt.vel, time.Second), rec.Sink())
			if !chip.FSM().Is(ChipChip) {
				t.Fatalf("left Chip: %s", chip.FSM())
			}
			got, ok := rec.Get(1)
			if !ok {
				t.Fatal("no chip intent re-emitted")
			}
			c, isChip := got.(intent.Chip)
			if !isChip {
				t.Fatalf("intent %T, want Chip", got)
			}
			if c.Distance != 2 || c.Origin != origin || !c.Direction.Near(dir, 1e-9) {
				t.Errorf("chip intent %v does not carry the control params", c)
			}
		})
	}
}

func TestChipDoneIsStable(t *testing.T) {
	w := world.NewBlankWorld()
	chip := NewChip(parameter.Default())
	chip.UpdateControlParams(vmath.V2(-2, 1.5), vmath.ThreeQuarter, 1.2)
	robot := world.Robot{ID: 0, Position: vmath.V2(-2, 1.7), Orientation: vmath.ThreeQuarter}

	chip.Update(robot, w, intent.Discard)
	kicked := w.WithBallVelocity(vmath.ThreeQuarter.Unit().Scale(2.1), time.Second)
	chip.Update(robot, kicked, intent.Discard)
	if !chip.Done() {
		t.Fatalf("expected done, got %s", chip.FSM())
	}

	// Further updates, even with a stationary ball, do nothing
	rec := intent.NewRecorder()
	for i := 0; i < 3; i++ {
		chip.Update(robot, w, rec.Sink())
		if !chip.Done() {
			t.Fatalf("tick %d: left terminal state", i)
		}
	}
	if rec.Count() != 0 {
		t.Errorf("terminal chip emitted %d intents", rec.Count())
	}

	chip.Reset()
	if !chip.FSM().Is(ChipGetBehindBall, GetBehindBallPositioning) {
		t.Errorf("Reset did not restart the chip: %s", chip.FSM())
	}
}

func TestChipCostIsDistanceToOrigin(t *testing.T) {
	chip := NewChip(parameter.Default())
	chip.UpdateControlParams(vmath.V2(3, 4), 0, 1)
	got := chip.Cost(world.NewRobotAt(0, vmath.V2(0, 0)), world.NewBlankWorld())
	if got != 5 {
		t.Errorf("Cost = %v, want 5", got)
	}
}
