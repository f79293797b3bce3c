package intent

import (
	"testing"

	"github.com/annaw245/Software/vmath"
)

func TestRecorderKeepsLatestPerRobot(t *testing.T) {
	r := NewRecorder()
	sink := r.Sink()

	sink(Move{Robot: 2, Destination: vmath.V2(1, 1)})
	sink(Stop{Robot: 1})
	sink(Chip{Robot: 2, Direction: vmath.FromDegrees(135), Distance: 1.2})
	sink(nil)

	if r.Count() != 3 {
		t.Errorf("Count = %d, want 3", r.Count())
	}

	got, ok := r.Get(2)
	if !ok {
		t.Fatal("missing intent for robot 2")
	}
	if _, isChip := got.(Chip); !isChip {
		t.Errorf("robot 2 intent = %T, want Chip", got)
	}

	all := r.All()
	if len(all) != 2 || all[0].RobotID() != 2 || all[1].RobotID() != 1 {
		t.Errorf("All() = %v, want robot 2 then robot 1", all)
	}

	r.Reset()
	if r.Count() != 0 || len(r.All()) != 0 {
		t.Error("Reset did not clear the recorder")
	}
}
