package ai

import (
	"math"
	"slices"

	"github.com/annaw245/Software/play"
	"github.com/annaw245/Software/tactic"
	"github.com/annaw245/Software/world"
)

type pairing struct {
	robot  world.Robot
	tactic tactic.Tactic
}

// assign gives the goalie tactic to the designated goalie, then fills the
// field tiers in priority order. A tier takes as many of its leading tactics
// as there are free robots and matches them at the least total cost. Tactics
// beyond the robot count are left unassigned
func assign(lineup play.Lineup, w world.World) []pairing {
	var out []pairing

	pool := slices.Clone(w.Friendly.Robots)
	if goalie, ok := w.Friendly.Goalie(); ok {
		pool = slices.DeleteFunc(pool, func(r world.Robot) bool { return r.ID == goalie.ID })
		if lineup.Goalie != nil {
			out = append(out, pairing{robot: goalie, tactic: lineup.Goalie})
		}
	}
	slices.SortFunc(pool, func(a, b world.Robot) int { return int(a.ID) - int(b.ID) })

	for _, tier := range lineup.Field {
		if len(pool) == 0 {
			break
		}
		tier = tier[:min(len(tier), len(pool))]
		if len(tier) == 0 {
			continue
		}

		cost := make([][]float64, len(tier))
		for i, t := range tier {
			cost[i] = make([]float64, len(pool))
			for j, r := range pool {
				cost[i][j] = t.Cost(r, w)
			}
		}

		match := minCostMatch(cost)
		taken := make([]bool, len(pool))
		for i, j := range match {
			out = append(out, pairing{robot: pool[j], tactic: tier[i]})
			taken[j] = true
		}
		next := pool[:0:0]
		for j, r := range pool {
			if !taken[j] {
				next = append(next, r)
			}
		}
		pool = next
	}
	return out
}

// minCostMatch solves the assignment problem for a cost matrix with no more
// rows than columns and returns the column matched to each row. Columns are
// scanned in order, so a tie goes to the lower column
func minCostMatch(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}
	m := len(cost[0])

	// potentials and matching are 1-based, column 0 is the virtual start
	u := make([]float64, n+1)
	v := make([]float64, m+1)
	row := make([]int, m+1)
	way := make([]int, m+1)
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		row[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := row[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				if c := cost[i0-1][j-1] - u[i0] - v[j]; c < minv[j] {
					minv[j], way[j] = c, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[row[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if row[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			row[j0] = row[j1]
			j0 = j1
		}
	}

	match := make([]int, n)
	for j := 1; j <= m; j++ {
		if row[j] != 0 {
			match[row[j]-1] = j - 1
		}
	}
	return match
}
