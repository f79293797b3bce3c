package simulation

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

//go:embed scenarios/*.yaml
var builtinScenarios embed.FS

const defaultTimeout = 10 * time.Second

var ErrBadScenario = errors.New("bad scenario")

// Point is an [x, y] pair in metres
type Point []float64

func (p Point) vec() (vmath.Vec2, error) {
	if len(p) == 0 {
		return vmath.Vec2{}, nil
	}
	if len(p) != 2 {
		return vmath.Vec2{}, fmt.Errorf("point %v: want [x, y]", []float64(p))
	}
	return vmath.V2(p[0], p[1]), nil
}

type BallSpec struct {
	Position Point `yaml:"position"`
	Velocity Point `yaml:"velocity"`
}

type TeamSpec struct {
	// Goalie is the goalie robot id, absent for no goalie
	Goalie *int    `yaml:"goalie"`
	Robots []Point `yaml:"robots"`
}

// TacticSpec runs a single tactic on one robot instead of a play
type TacticSpec struct {
	Kind         string  `yaml:"kind"` // chip, kick or move
	Robot        int     `yaml:"robot"`
	Origin       Point   `yaml:"origin"`
	DirectionDeg float64 `yaml:"direction_deg"`
	Distance     float64 `yaml:"distance"`
	Speed        float64 `yaml:"speed"`
}

type RegionSpec struct {
	Robot int   `yaml:"robot"`
	Min   Point `yaml:"min"`
	Max   Point `yaml:"max"`
	// RelativeToGoalie offsets the corners by the friendly goalie's position
	RelativeToGoalie bool `yaml:"relative_to_goalie"`
}

type ExpectSpec struct {
	Halt       bool         `yaml:"halt"`
	BallInPlay bool         `yaml:"ball_in_play"`
	Regions    []RegionSpec `yaml:"regions"`
}

// Scenario is a simulated test case: an initial world, what drives the
// friendly team, and what must hold for it to pass
type Scenario struct {
	Name            string      `yaml:"name"`
	Field           string      `yaml:"field"`
	Ball            BallSpec    `yaml:"ball"`
	Friendly        TeamSpec    `yaml:"friendly"`
	Enemy           TeamSpec    `yaml:"enemy"`
	Possession      string      `yaml:"possession"`
	Command         string      `yaml:"command"`
	PreviousCommand string      `yaml:"previous_command"`
	Play            string      `yaml:"play"`
	Tactic          *TacticSpec `yaml:"tactic"`
	TimeoutSeconds  float64     `yaml:"timeout_seconds"`
	Expect          ExpectSpec  `yaml:"expect"`
}

// ParseScenario decodes and checks a YAML scenario
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if _, err := sc.World(); err != nil {
		return nil, err
	}
	if _, _, err := sc.validations(); err != nil {
		return nil, err
	}
	if sc.Tactic != nil {
		switch sc.Tactic.Kind {
		case "chip", "kick", "move":
		default:
			return nil, fmt.Errorf("%w: tactic kind %q", ErrBadScenario, sc.Tactic.Kind)
		}
	}
	return &sc, nil
}

func LoadScenario(p string) (*Scenario, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return sc, nil
}

// Builtin loads one of the scenarios shipped with the package
func Builtin(name string) (*Scenario, error) {
	data, err := builtinScenarios.ReadFile(path.Join("scenarios", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: no builtin scenario %q", ErrBadScenario, name)
	}
	return ParseScenario(data)
}

// BuiltinNames lists the shipped scenarios
func BuiltinNames() []string {
	entries, _ := fs.ReadDir(builtinScenarios, "scenarios")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

func (sc *Scenario) Timeout() time.Duration {
	if sc.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(sc.TimeoutSeconds * float64(time.Second))
}

// World builds the initial snapshot
func (sc *Scenario) World() (world.World, error) {
	w := world.NewBlankWorld()

	switch sc.Field {
	case "", "division_b":
		w.Field = world.DivisionB()
	case "division_a":
		w.Field = world.DivisionA()
	default:
		return w, fmt.Errorf("%w: field %q", ErrBadScenario, sc.Field)
	}

	pos, err := sc.Ball.Position.vec()
	if err != nil {
		return w, fmt.Errorf("%w: ball: %v", ErrBadScenario, err)
	}
	vel, err := sc.Ball.Velocity.vec()
	if err != nil {
		return w, fmt.Errorf("%w: ball: %v", ErrBadScenario, err)
	}
	w.Ball = world.Ball{Position: pos, Velocity: vel}

	if w.Friendly, err = sc.Friendly.team(); err != nil {
		return w, fmt.Errorf("%w: friendly: %v", ErrBadScenario, err)
	}
	if w.Enemy, err = sc.Enemy.team(); err != nil {
		return w, fmt.Errorf("%w: enemy: %v", ErrBadScenario, err)
	}

	command, err := parseCommand(sc.Command, world.CommandForceStart)
	if err != nil {
		return w, err
	}
	previous, err := parseCommand(sc.PreviousCommand, world.CommandHalt)
	if err != nil {
		return w, err
	}
	w.GameState = world.NewGameState(command, previous)

	if _, _, err := sc.possession(); err != nil {
		return w, err
	}
	return w, nil
}

func (t TeamSpec) team() (world.Team, error) {
	points := make([]vmath.Vec2, 0, len(t.Robots))
	for _, p := range t.Robots {
		v, err := p.vec()
		if err != nil {
			return world.Team{}, err
		}
		points = append(points, v)
	}
	goalie := world.NoRobot
	if t.Goalie != nil {
		goalie = world.RobotID(*t.Goalie)
	}
	return world.NewTeam(world.NewStationaryRobots(points...), goalie), nil
}

func parseCommand(name string, def world.RefereeCommand) (world.RefereeCommand, error) {
	if name == "" {
		return def, nil
	}
	c, ok := world.ParseRefereeCommand(strings.ToUpper(name))
	if !ok {
		return def, fmt.Errorf("%w: referee command %q", ErrBadScenario, name)
	}
	return c, nil
}

// possession returns the fixed side, or false when it is inferred
func (sc *Scenario) possession() (world.TeamSide, bool, error) {
	switch strings.ToLower(sc.Possession) {
	case "", "infer":
		return world.SideNone, false, nil
	case "friendly":
		return world.SideFriendly, true, nil
	case "enemy":
		return world.SideEnemy, true, nil
	case "none":
		return world.SideNone, true, nil
	}
	return world.SideNone, false, fmt.Errorf("%w: possession %q", ErrBadScenario, sc.Possession)
}

// validations turns the expect block into terminating and non-terminating checks
func (sc *Scenario) validations() (terminating, always []Validation, err error) {
	if sc.Expect.Halt {
		terminating = append(terminating, RobotHalt())
	}
	for _, r := range sc.Expect.Regions {
		lo, err := r.Min.vec()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: region: %v", ErrBadScenario, err)
		}
		hi, err := r.Max.vec()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: region: %v", ErrBadScenario, err)
		}
		id := world.RobotID(r.Robot)
		if !r.RelativeToGoalie {
			terminating = append(terminating, RobotInPolygon(id, vmath.NewRect(lo, hi)))
			continue
		}
		terminating = append(terminating, RobotInRegion(id, func(w world.World) vmath.Polygon {
			g, ok := w.Friendly.Goalie()
			if !ok {
				return vmath.Rect{Min: vmath.V2(1, 1), Max: vmath.V2(-1, -1)}
			}
			return vmath.NewRect(g.Position.Add(lo), g.Position.Add(hi))
		}))
	}
	if sc.Expect.BallInPlay {
		always = append(always, BallInPlay())
	}
	return terminating, always, nil
}
