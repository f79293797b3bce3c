package ai

import (
	"testing"

	"github.com/annaw245/Software/parameter"
	"github.com/annaw245/Software/play"
	"github.com/annaw245/Software/tactic"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

func moveTo(cfg *parameter.Config, x, y float64) *tactic.Move {
	m := tactic.NewMove(cfg)
	m.UpdateControlParams(vmath.V2(x, y), 0, 0)
	return m
}

func owners(pairs []pairing) map[tactic.Tactic]world.RobotID {
	out := make(map[tactic.Tactic]world.RobotID)
	for _, p := range pairs {
		out[p.tactic] = p.robot.ID
	}
	return out
}

func TestMinCostMatch(t *testing.T) {
	tests := []struct {
		name string
		cost [][]float64
		want []int
	}{
		{"single row takes the cheapest", [][]float64{{4, 2, 3}}, []int{1}},
		{"tie goes to the lower column", [][]float64{{5, 5, 5}}, []int{0}},
		{"beats row by row greed", [][]float64{{1.5, 0.5}, {3, 1}}, []int{0, 1}},
		{"more columns than rows", [][]float64{{9, 1, 8}, {1, 2, 9}}, []int{1, 0}},
		{"square", [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}, []int{1, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := minCostMatch(tt.cost)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAssignFillsTiersInOrder(t *testing.T) {
	cfg := parameter.Default()
	w := world.NewBlankWorld().WithFriendly(world.NewTeam(world.NewStationaryRobots(
		vmath.V2(0, 0), vmath.V2(2, 0),
	), world.NoRobot))

	t.Run("earlier tier picks first", func(t *testing.T) {
		low := moveTo(cfg, 0, 0)
		high := moveTo(cfg, 0.1, 0)
		got := owners(assign(play.Lineup{Field: [][]tactic.Tactic{{high}, {low}}}, w))
		if got[high] != 0 || got[low] != 1 {
			t.Errorf("high on %d, low on %d", got[high], got[low])
		}
	})

	t.Run("least total cost inside a tier", func(t *testing.T) {
		a := moveTo(cfg, 1.5, 0)
		b := moveTo(cfg, 3, 0)
		got := owners(assign(play.Lineup{Field: [][]tactic.Tactic{{a, b}}}, w))
		if got[a] != 0 || got[b] != 1 {
			t.Errorf("a on %d, b on %d", got[a], got[b])
		}
	})

	t.Run("surplus tactics dropped from the back", func(t *testing.T) {
		a, b, c := moveTo(cfg, 5, 0), moveTo(cfg, 0, 0), moveTo(cfg, 2, 0)
		pairs := assign(play.Lineup{Field: [][]tactic.Tactic{{a, b, c}}}, w)
		if len(pairs) != 2 {
			t.Fatalf("assigned %d tactics, want 2", len(pairs))
		}
		if _, ok := owners(pairs)[c]; ok {
			t.Error("third tactic of the tier assigned with only two robots")
		}
	})

	t.Run("empty tiers skipped", func(t *testing.T) {
		a := moveTo(cfg, 2, 0)
		got := owners(assign(play.Lineup{Field: [][]tactic.Tactic{nil, {a}}}, w))
		if got[a] != 1 {
			t.Errorf("a on %d, want 1", got[a])
		}
	})
}
