package agent

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Error-42/othello-arena/internal/othello"
)

// State - outcome of polling an agent run.
type State uint8

const (
	// StateRunning - the process is still alive and within its deadline.
	StateRunning State = iota
	// StateTimedOut - the deadline passed; the process has been killed.
	StateTimedOut
	// StateRuntimeError - the process exited with a non-zero status.
	StateRuntimeError
	// StateInvalidOutput - the process exited cleanly but its stdout does not
	// decode as a response.
	StateInvalidOutput
	// StateSuccess - the process exited cleanly with a well-formed response.
	StateSuccess
)

// PollResult - the resolved (or still-pending) outcome of one agent run.
// Move and Note are set on success, ExitCode and Stderr on a runtime error,
// Reason on invalid output.
type PollResult struct {
	State    State
	Move     othello.Move
	Note     string
	ExitCode int
	Stderr   string
	Reason   string
}

// RunHandle - one spawned agent process between request and resolution. The
// process is owned exclusively by this handle and is reaped exactly once,
// either by Poll observing its exit or by Kill.
type RunHandle struct {
	cmd       *exec.Cmd
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	start     time.Time
	timeLimit time.Duration
	done      chan error

	reaped   bool
	timedOut bool
	waitErr  error
}

// Poll - non-blocking. Checks whether the process has already exited; if it is
// still alive past the deadline it is killed and reported as timed out.
func (that *RunHandle) Poll() PollResult {
	if !that.reaped {
		select {
		case err := <-that.done:
			that.reaped = true
			that.waitErr = err
		default:
			if time.Since(that.start) <= that.timeLimit {
				return PollResult{State: StateRunning}
			}

			_ = that.cmd.Process.Kill()
			<-that.done
			that.reaped = true
			that.timedOut = true
		}
	}

	return that.classify()
}

// Kill - forcibly terminates the process if it has not been reaped yet.
// Idempotent; safe to call after the run resolved.
func (that *RunHandle) Kill() error {
	if that.reaped {
		return nil
	}

	err := that.cmd.Process.Kill()
	<-that.done
	that.reaped = true
	that.timedOut = true

	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to kill agent process: %w", err)
	}

	return nil
}

func (that *RunHandle) classify() PollResult {
	if that.timedOut {
		return PollResult{State: StateTimedOut}
	}

	if that.waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(that.waitErr, &exitErr) {
			return PollResult{
				State:    StateRuntimeError,
				ExitCode: exitErr.ExitCode(),
				Stderr:   that.stderr.String(),
			}
		}

		return PollResult{
			State:    StateRuntimeError,
			ExitCode: -1,
			Stderr:   that.waitErr.Error(),
		}
	}

	return decodeResponse(that.stdout.String())
}

// decodeResponse - parses agent stdout: a move token on line one and an
// optional free-text note on line two. Anything else is invalid output.
func decodeResponse(output string) PollResult {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	if len(lines) > 2 {
		return PollResult{
			State:  StateInvalidOutput,
			Reason: fmt.Sprintf("output contains %d lines, which is invalid; it must be 1 or 2", len(lines)),
		}
	}

	mv, err := othello.ParseMove(lines[0])
	if err != nil {
		return PollResult{State: StateInvalidOutput, Reason: err.Error()}
	}

	result := PollResult{State: StateSuccess, Move: mv}
	if len(lines) == 2 {
		result.Note = lines[1]
	}

	return result
}
