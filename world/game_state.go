package world

import (
	"github.com/annaw245/Software/vmath"
)

// RefereeCommand is a command issued by the game controller
// US/THEM are resolved against our team colour before reaching the core
type RefereeCommand int

const (
	CommandHalt RefereeCommand = iota
	CommandStop
	CommandNormalStart
	CommandForceStart
	CommandPrepareKickoffUs
	CommandPrepareKickoffThem
	CommandPreparePenaltyUs
	CommandPreparePenaltyThem
	CommandDirectFreeUs
	CommandDirectFreeThem
	CommandIndirectFreeUs
	CommandIndirectFreeThem
	CommandTimeoutUs
	CommandTimeoutThem
	CommandGoalUs
	CommandGoalThem
	CommandBallPlacementUs
	CommandBallPlacementThem
)

var commandNames = [...]string{
	CommandHalt:               "HALT",
	CommandStop:               "STOP",
	CommandNormalStart:        "NORMAL_START",
	CommandForceStart:         "FORCE_START",
	CommandPrepareKickoffUs:   "PREPARE_KICKOFF_US",
	CommandPrepareKickoffThem: "PREPARE_KICKOFF_THEM",
	CommandPreparePenaltyUs:   "PREPARE_PENALTY_US",
	CommandPreparePenaltyThem: "PREPARE_PENALTY_THEM",
	CommandDirectFreeUs:       "DIRECT_FREE_US",
	CommandDirectFreeThem:     "DIRECT_FREE_THEM",
	CommandIndirectFreeUs:     "INDIRECT_FREE_US",
	CommandIndirectFreeThem:   "INDIRECT_FREE_THEM",
	CommandTimeoutUs:          "TIMEOUT_US",
	CommandTimeoutThem:        "TIMEOUT_THEM",
	CommandGoalUs:             "GOAL_US",
	CommandGoalThem:           "GOAL_THEM",
	CommandBallPlacementUs:    "BALL_PLACEMENT_US",
	CommandBallPlacementThem:  "BALL_PLACEMENT_THEM",
}

func (c RefereeCommand) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "UNKNOWN"
}

// ParseRefereeCommand resolves a command by its upper-case name
func ParseRefereeCommand(name string) (RefereeCommand, bool) {
	for i, n := range commandNames {
		if n == name {
			return RefereeCommand(i), true
		}
	}
	return CommandHalt, false
}

// PlayState is the coarse game phase derived from the command stream
type PlayState int

const (
	StateHalt PlayState = iota
	StateStop
	StateSetup
	StateReady
	StatePlaying
)

func (s PlayState) String() string {
	switch s {
	case StateHalt:
		return "HALT"
	case StateStop:
		return "STOP"
	case StateSetup:
		return "SETUP"
	case StateReady:
		return "READY"
	case StatePlaying:
		return "PLAYING"
	}
	return "UNKNOWN"
}

// RestartReason records why play was interrupted
type RestartReason int

const (
	RestartNone RestartReason = iota
	RestartKickoff
	RestartDirect
	RestartIndirect
	RestartPenalty
	RestartBallPlacement
)

// ballMovedThreshold is how far the ball travels from its restart spot before a ready restart becomes play
const ballMovedThreshold = 0.05

// GameState is the referee-derived game phase. It is a value: updates return a new state
type GameState struct {
	Command         RefereeCommand
	PreviousCommand RefereeCommand

	state       PlayState
	restart     RestartReason
	ourRestart  bool
	restartBall vmath.Vec2
	hasBall     bool
}

// NewGameState applies previous then command to a halted state
func NewGameState(command, previous RefereeCommand) GameState {
	return GameState{}.UpdateRefereeCommand(previous).UpdateRefereeCommand(command)
}

// UpdateRefereeCommand returns the state after receiving cmd
func (g GameState) UpdateRefereeCommand(cmd RefereeCommand) GameState {
	g.PreviousCommand = g.Command
	g.Command = cmd

	switch cmd {
	case CommandHalt, CommandTimeoutUs, CommandTimeoutThem:
		g.state = StateHalt
	case CommandStop, CommandGoalUs, CommandGoalThem:
		g.state = StateStop
		g.restart = RestartNone
	case CommandNormalStart:
		if g.state == StateSetup {
			g.state = StateReady
		}
	case CommandForceStart:
		g.state = StatePlaying
		g.restart = RestartNone
	case CommandPrepareKickoffUs, CommandPrepareKickoffThem:
		g.setRestart(StateSetup, RestartKickoff, cmd == CommandPrepareKickoffUs)
	case CommandPreparePenaltyUs, CommandPreparePenaltyThem:
		g.setRestart(StateSetup, RestartPenalty, cmd == CommandPreparePenaltyUs)
	case CommandDirectFreeUs, CommandDirectFreeThem:
		g.setRestart(StateReady, RestartDirect, cmd == CommandDirectFreeUs)
	case CommandIndirectFreeUs, CommandIndirectFreeThem:
		g.setRestart(StateReady, RestartIndirect, cmd == CommandIndirectFreeUs)
	case CommandBallPlacementUs, CommandBallPlacementThem:
		g.setRestart(StateSetup, RestartBallPlacement, cmd == CommandBallPlacementUs)
	}
	if g.state != StateReady {
		g.hasBall = false
	}
	return g
}

func (g *GameState) setRestart(s PlayState, r RestartReason, ours bool) {
	g.state = s
	g.restart = r
	g.ourRestart = ours
	g.hasBall = false
}

// ObserveBall promotes a ready restart to play once the ball has left its restart spot
func (g GameState) ObserveBall(b Ball) GameState {
	if g.state != StateReady {
		return g
	}
	if !g.hasBall {
		g.restartBall = b.Position
		g.hasBall = true
		return g
	}
	if !g.restartBall.Near(b.Position, ballMovedThreshold) {
		g.state = StatePlaying
		g.restart = RestartNone
		g.hasBall = false
	}
	return g
}

func (g GameState) State() PlayState { return g.state }

func (g GameState) IsHalted() bool  { return g.state == StateHalt }
func (g GameState) IsStopped() bool { return g.state == StateStop }
func (g GameState) IsSetup() bool   { return g.state == StateSetup }
func (g GameState) IsReady() bool   { return g.state == StateReady }
func (g GameState) IsPlaying() bool { return g.state == StatePlaying }

func (g GameState) IsKickoff() bool       { return g.restart == RestartKickoff }
func (g GameState) IsPenalty() bool       { return g.restart == RestartPenalty }
func (g GameState) IsDirectFree() bool    { return g.restart == RestartDirect }
func (g GameState) IsIndirectFree() bool  { return g.restart == RestartIndirect }
func (g GameState) IsFreeKick() bool      { return g.IsDirectFree() || g.IsIndirectFree() }
func (g GameState) IsBallPlacement() bool { return g.restart == RestartBallPlacement }

func (g GameState) IsOurRestart() bool   { return g.restart != RestartNone && g.ourRestart }
func (g GameState) IsTheirRestart() bool { return g.restart != RestartNone && !g.ourRestart }

// StayAwayFromBall is true while robots must keep their distance from the ball
func (g GameState) StayAwayFromBall() bool {
	return g.IsStopped() || (g.IsTheirRestart() && !g.IsPlaying())
}
