package replay

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/annaw245/Software/ai"
	"github.com/annaw245/Software/intent"
	"github.com/annaw245/Software/simulation"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

func frame(tick int) simulation.Frame {
	robots := []world.Robot{
		world.NewRobotAt(0, vmath.V2(-4.5, 0)),
		{ID: 1, Position: vmath.V2(-3, 1), Velocity: vmath.V2(0.5, 0), Orientation: vmath.Quarter},
	}
	w := world.NewBlankWorld().
		WithFriendly(world.NewTeam(robots, 0)).
		WithBall(world.Ball{Position: vmath.V2(0.9, 2.85)}).
		WithPossession(world.SideEnemy)
	return simulation.Frame{
		Tick:  tick,
		Time:  time.Duration(tick) * 10 * time.Millisecond,
		World: w,
		Play:  "defense",
		Assignments: []ai.Assignment{
			{Robot: 1, Tactic: "Block", State: "move:Moving"},
		},
		Intents: map[world.RobotID]intent.Intent{
			1: intent.Move{Robot: 1, Destination: vmath.V2(0.46, 2.62)},
			0: intent.Stop{Robot: 0},
		},
	}
}

func TestFromFrame(t *testing.T) {
	e := FromFrame(frame(3))

	if e.Tick != 3 || e.TimeMillis != 30 || e.Play != "defense" || e.Possession != "ENEMY" {
		t.Errorf("header %+v", e)
	}
	if e.Ball.ID != -1 || e.Ball.X != 0.9 || e.Ball.Y != 2.85 {
		t.Errorf("ball %+v", e.Ball)
	}
	if len(e.Friendly) != 2 || !e.Friendly[0].Goalie || e.Friendly[1].Goalie {
		t.Fatalf("friendly %+v", e.Friendly)
	}
	if e.Friendly[1].VX != 0.5 || math.Abs(e.Friendly[1].Orientation-90) > 1e-9 {
		t.Errorf("robot 1 %+v", e.Friendly[1])
	}
	if len(e.Intents) != 2 || e.Intents[0] != "stop[0]" {
		t.Errorf("intents %q, want robot 0 first", e.Intents)
	}
	if len(e.Assignments) != 1 || e.Assignments[0].Tactic != "Block" {
		t.Errorf("assignments %+v", e.Assignments)
	}
}

func TestRecordAndRead(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		if err := rec.Write(FromFrame(frame(i))); err != nil {
			t.Fatal(err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rec.Write(Entry{}); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write after close: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	n := 0
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if e.Tick != n {
			t.Fatalf("entry %d has tick %d", n, e.Tick)
		}
		n++
	}
	if n != 50 {
		t.Errorf("read %d entries, want 50", n)
	}
}

func TestCreateAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "replays")
	rec, err := Create(dir, "defense")
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Write(FromFrame(frame(0))); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(filepath.Join(dir, "defense"+Ext))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	e, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if e.Play != "defense" || len(e.Friendly) != 2 {
		t.Errorf("entry %+v", e)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("second Next: %v, want EOF", err)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "none"+Ext)); err == nil {
		t.Error("opened a missing replay")
	}
}
