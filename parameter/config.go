// Package parameter holds the tuning values shared by plays, tactics, the AI
// loop and the simulator.
//
// One Config is built at startup (Default, then Load and ApplyEnv) and handed
// by pointer to every constructor. Nothing in the decision layer writes to it.
package parameter

import (
	"fmt"

	"github.com/annaw245/Software/vmath"
)

// Config is the root of all tuning values
type Config struct {
	Tactic    TacticConfig    `yaml:"tactic"`
	Defense   DefenseConfig   `yaml:"defense"`
	AI        AIConfig        `yaml:"ai"`
	Simulator SimulatorConfig `yaml:"simulator"`
}

// TacticConfig holds tolerances used by tactic guards
type TacticConfig struct {
	// Depth of the triangular region behind the ball that counts as "behind the ball"
	BehindBallRegionSize float64 `yaml:"behind_ball_region_size" env:"SOCCER_BEHIND_BALL_REGION_SIZE"`

	// Facing error allowed before a chip or kick
	BehindBallOrientationToleranceDeg float64 `yaml:"behind_ball_orientation_tolerance_deg" env:"SOCCER_BEHIND_BALL_ORIENTATION_TOLERANCE_DEG"`

	// Ball speed and heading error that count as "the ball has been kicked"
	KickedMinSpeed        float64 `yaml:"kicked_min_speed" env:"SOCCER_KICKED_MIN_SPEED"`
	KickedMaxAngleDiffDeg float64 `yaml:"kicked_max_angle_diff_deg" env:"SOCCER_KICKED_MAX_ANGLE_DIFF_DEG"`

	// Arrival tolerances for position tactics
	ArrivalDistance          float64 `yaml:"arrival_distance"`
	ArrivalOrientationDeg    float64 `yaml:"arrival_orientation_deg"`
	StoppedSpeed             float64 `yaml:"stopped_speed"`
	StoppedAngularSpeedDegPS float64 `yaml:"stopped_angular_speed_deg_ps"`
}

func (c TacticConfig) BehindBallOrientationTolerance() vmath.Angle {
	return vmath.FromDegrees(c.BehindBallOrientationToleranceDeg)
}

func (c TacticConfig) KickedMaxAngleDiff() vmath.Angle {
	return vmath.FromDegrees(c.KickedMaxAngleDiffDeg)
}

func (c TacticConfig) ArrivalOrientation() vmath.Angle {
	return vmath.FromDegrees(c.ArrivalOrientationDeg)
}

func (c TacticConfig) StoppedAngularSpeed() vmath.Angle {
	return vmath.FromDegrees(c.StoppedAngularSpeedDegPS)
}

// DefenseConfig positions the defense play's roles, metres
type DefenseConfig struct {
	BlockDistance       float64 `yaml:"block_distance" env:"SOCCER_DEFENSE_BLOCK_DISTANCE"`
	ShadowDistance      float64 `yaml:"shadow_distance" env:"SOCCER_DEFENSE_SHADOW_DISTANCE"`
	GoalieStandoff      float64 `yaml:"goalie_standoff"`
	CreaseLateralOffset float64 `yaml:"crease_lateral_offset"`
	CreaseForwardOffset float64 `yaml:"crease_forward_offset"`
	CreaseDefenders     int     `yaml:"crease_defenders"`

	// Enemies closer than this to the friendly goal are immediate threats
	ImmediateThreatDistance float64 `yaml:"immediate_threat_distance" env:"SOCCER_DEFENSE_IMMEDIATE_THREAT_DISTANCE"`
	// Swarming robots flank the ball this far out, this many degrees off the
	// line from the ball to the goal
	SwarmDistance float64 `yaml:"swarm_distance"`
	SwarmAngleDeg float64 `yaml:"swarm_angle_deg"`
	// Gap between the defense area and a robot guarding a distant shooter
	GuardMargin float64 `yaml:"guard_margin"`
}

func (c DefenseConfig) SwarmAngle() vmath.Angle {
	return vmath.FromDegrees(c.SwarmAngleDeg)
}

// AIConfig controls the tick loop
type AIConfig struct {
	TickRateHz       int     `yaml:"tick_rate_hz" env:"SOCCER_TICK_RATE_HZ"`
	PossessionRadius float64 `yaml:"possession_radius"`
	// Play pins one play by name, empty selects plays by applicability
	Play string `yaml:"play" env:"SOCCER_PLAY"`
}

// SimulatorConfig holds the simple physics model used by the simulator
type SimulatorConfig struct {
	RobotMaxSpeed        float64 `yaml:"robot_max_speed"`
	RobotMaxAccel        float64 `yaml:"robot_max_accel"`
	RobotMaxAngularSpeed float64 `yaml:"robot_max_angular_speed"` // rad/s
	BallRollingDecel     float64 `yaml:"ball_rolling_decel"`
	KickReach            float64 `yaml:"kick_reach"`
	ChipLaunchAngleDeg   float64 `yaml:"chip_launch_angle_deg"`
	MaxKickSpeed         float64 `yaml:"max_kick_speed"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Tactic: TacticConfig{
			BehindBallRegionSize:              0.36,
			BehindBallOrientationToleranceDeg: 5,
			KickedMinSpeed:                    0.5,
			KickedMaxAngleDiffDeg:             20,
			ArrivalDistance:                   0.02,
			ArrivalOrientationDeg:             2,
			StoppedSpeed:                      0.05,
			StoppedAngularSpeedDegPS:          5,
		},
		Defense: DefenseConfig{
			BlockDistance:       0.5,
			ShadowDistance:      0.4,
			GoalieStandoff:      0.3,
			CreaseLateralOffset: 0.2,
			CreaseForwardOffset: 0.15,
			CreaseDefenders:     2,

			ImmediateThreatDistance: 2.9,
			SwarmDistance:           0.6,
			SwarmAngleDeg:           45,
			GuardMargin:             0.15,
		},
		AI: AIConfig{
			TickRateHz:       60,
			PossessionRadius: 0.25,
		},
		Simulator: SimulatorConfig{
			RobotMaxSpeed:        2.0,
			RobotMaxAccel:        3.0,
			RobotMaxAngularSpeed: 6.0,
			BallRollingDecel:     0.5,
			KickReach:            0.02,
			ChipLaunchAngleDeg:   45,
			MaxKickSpeed:         6.5,
		},
	}
}

// Validate rejects values the decision layer cannot work with
func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"tactic.behind_ball_region_size", c.Tactic.BehindBallRegionSize},
		{"tactic.behind_ball_orientation_tolerance_deg", c.Tactic.BehindBallOrientationToleranceDeg},
		{"tactic.kicked_min_speed", c.Tactic.KickedMinSpeed},
		{"tactic.kicked_max_angle_diff_deg", c.Tactic.KickedMaxAngleDiffDeg},
		{"tactic.arrival_distance", c.Tactic.ArrivalDistance},
		{"tactic.arrival_orientation_deg", c.Tactic.ArrivalOrientationDeg},
		{"tactic.stopped_speed", c.Tactic.StoppedSpeed},
		{"defense.block_distance", c.Defense.BlockDistance},
		{"defense.shadow_distance", c.Defense.ShadowDistance},
		{"defense.goalie_standoff", c.Defense.GoalieStandoff},
		{"defense.immediate_threat_distance", c.Defense.ImmediateThreatDistance},
		{"defense.swarm_distance", c.Defense.SwarmDistance},
		{"ai.possession_radius", c.AI.PossessionRadius},
		{"simulator.robot_max_speed", c.Simulator.RobotMaxSpeed},
		{"simulator.robot_max_accel", c.Simulator.RobotMaxAccel},
		{"simulator.robot_max_angular_speed", c.Simulator.RobotMaxAngularSpeed},
		{"simulator.max_kick_speed", c.Simulator.MaxKickSpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.v)
		}
	}
	if c.AI.TickRateHz <= 0 {
		return fmt.Errorf("ai.tick_rate_hz must be positive, got %d", c.AI.TickRateHz)
	}
	if c.Defense.CreaseDefenders < 0 || c.Defense.CreaseDefenders > 2 {
		return fmt.Errorf("defense.crease_defenders must be 0, 1 or 2, got %d", c.Defense.CreaseDefenders)
	}
	if c.Defense.SwarmAngleDeg < 0 || c.Defense.SwarmAngleDeg >= 90 {
		return fmt.Errorf("defense.swarm_angle_deg must be in [0, 90), got %v", c.Defense.SwarmAngleDeg)
	}
	if c.Defense.GuardMargin < 0 {
		return fmt.Errorf("defense.guard_margin must not be negative, got %v", c.Defense.GuardMargin)
	}
	if c.Simulator.ChipLaunchAngleDeg <= 0 || c.Simulator.ChipLaunchAngleDeg >= 90 {
		return fmt.Errorf("simulator.chip_launch_angle_deg must be in (0, 90), got %v", c.Simulator.ChipLaunchAngleDeg)
	}
	return nil
}
