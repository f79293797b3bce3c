package world

import (
	"github.com/annaw245/Software/vmath"
)

// TeamSide names a team relative to us
type TeamSide int

const (
	SideNone TeamSide = iota
	SideFriendly
	SideEnemy
)

func (s TeamSide) String() string {
	switch s {
	case SideFriendly:
		return "FRIENDLY"
	case SideEnemy:
		return "ENEMY"
	default:
		return "NONE"
	}
}

// Team is one side's robots plus its designated goalie
// Robots is shared between snapshot copies and must not be modified in place
type Team struct {
	Robots   []Robot
	GoalieID RobotID
}

// NewTeam copies robots so later edits by the caller cannot leak into snapshots
func NewTeam(robots []Robot, goalie RobotID) Team {
	cp := make([]Robot, len(robots))
	copy(cp, robots)
	return Team{Robots: cp, GoalieID: goalie}
}

func (t Team) Len() int { return len(t.Robots) }

// Robot looks up a robot by id
func (t Team) Robot(id RobotID) (Robot, bool) {
	for _, r := range t.Robots {
		if r.ID == id {
			return r, true
		}
	}
	return Robot{}, false
}

// Goalie returns the goalie, false when none is designated or it is not on the field
func (t Team) Goalie() (Robot, bool) {
	if t.GoalieID == NoRobot {
		return Robot{}, false
	}
	return t.Robot(t.GoalieID)
}

// NonGoalie returns every robot except the goalie, in snapshot order
func (t Team) NonGoalie() []Robot {
	out := make([]Robot, 0, len(t.Robots))
	for _, r := range t.Robots {
		if r.ID != t.GoalieID {
			out = append(out, r)
		}
	}
	return out
}

// Nearest returns the robot closest to p, ties go to the lower id
func (t Team) Nearest(p vmath.Vec2) (Robot, bool) {
	var best Robot
	bestDist := -1.0
	for _, r := range t.Robots {
		d := r.Position.Sub(p).LenSq()
		if bestDist < 0 || d < bestDist || (d == bestDist && r.ID < best.ID) {
			best, bestDist = r, d
		}
	}
	return best, bestDist >= 0
}
