// Package player provides the two player kinds the match state machine can
// drive: an agent-backed player wrapping a supervised subprocess, and an inert
// human player whose moves are injected from outside.
package player

import (
	"fmt"
	"time"

	"github.com/Error-42/othello-arena/internal/agent"
	"github.com/Error-42/othello-arena/internal/game"
	"github.com/Error-42/othello-arena/internal/othello"
)

const defaultNote = "no notes provided"

// AI - a player backed by an external agent program. Every failure the agent
// can cause (timeout, crash, protocol violation, invalid move) surfaces as a
// forfeit report carrying the exact request, never as an error.
type AI struct {
	agent *agent.Agent
}

func NewAI(path string, args []string, timeLimit time.Duration) *AI {
	return &AI{agent: agent.New(path, args, timeLimit)}
}

func (that *AI) Name() string {
	return that.agent.Path
}

func (that *AI) Init(pos othello.Position) error {
	return that.agent.Start(pos)
}

func (that *AI) Update(pos othello.Position) (game.Update, error) {
	result, err := that.agent.Poll()
	if err != nil {
		return game.Update{}, fmt.Errorf("failed to poll agent: %w", err)
	}

	switch result.State {
	case agent.StateRunning:
		return game.Update{Kind: game.UpdateWait}, nil

	case agent.StateInvalidOutput:
		return game.Update{
			Kind:   game.UpdateFail,
			Report: fmt.Sprintf("Error reading AI move: %s\n%s", result.Reason, that.agent.DebugInfo(pos)),
		}, nil

	case agent.StateRuntimeError:
		return game.Update{
			Kind: game.UpdateFail,
			Report: fmt.Sprintf("AI program exit code was non-zero: %d\nstderr:\n%s\n%s",
				result.ExitCode, result.Stderr, that.agent.DebugInfo(pos)),
		}, nil

	case agent.StateTimedOut:
		return game.Update{
			Kind:   game.UpdateFail,
			Report: fmt.Sprintf("AI program exceeded time limit\n%s", that.agent.DebugInfo(pos)),
		}, nil

	default: // agent.StateSuccess
		if !pos.IsValidMove(result.Move) {
			return game.Update{
				Kind:   game.UpdateFail,
				Report: fmt.Sprintf("Invalid move played by AI: %s\n%s", result.Move, that.agent.DebugInfo(pos)),
			}, nil
		}

		note := result.Note
		if note == "" {
			note = defaultNote
		}

		return game.Update{Kind: game.UpdateMove, Move: result.Move, Note: note}, nil
	}
}

func (that *AI) Interrupt() error {
	return that.agent.Interrupt()
}

// Human - the inert player kind. It always reports waiting; the external input
// layer validates and injects the actual move through Game.Play.
type Human struct{}

func (Human) Name() string {
	return "human"
}

func (Human) Init(_ othello.Position) error {
	return nil
}

func (Human) Update(_ othello.Position) (game.Update, error) {
	return game.Update{Kind: game.UpdateWait}, nil
}

func (Human) Interrupt() error {
	return nil
}
