// Package agent supervises one external agent program per outstanding move
// request. The agent is spawned as a child process, receives the position on
// stdin and answers with a move token on stdout before exiting; polling for
// the answer never blocks the caller.
package agent

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/Error-42/othello-arena/internal/apperror"
	"github.com/Error-42/othello-arena/internal/othello"
)

// Agent - configuration for one agent program playing one side of a match.
// At most one run is outstanding at a time.
type Agent struct {
	Path      string
	Args      []string
	TimeLimit time.Duration

	handle *RunHandle
}

func New(path string, args []string, timeLimit time.Duration) *Agent {
	return &Agent{
		Path:      path,
		Args:      args,
		TimeLimit: timeLimit,
	}
}

// Request - the exact stdin payload for pos:
//
//	<64-char board><next player>\n
//	<time limit, ms>\n
//	<valid move count> <move tokens...>\n
func (that *Agent) Request(pos othello.Position) string {
	moves := pos.ValidMoves()

	parts := make([]string, 0, len(moves)+1)
	parts = append(parts, fmt.Sprintf("%d", len(moves)))
	for _, mv := range moves {
		parts = append(parts, mv.String())
	}

	return fmt.Sprintf("%s%s\n%d\n%s\n",
		pos.Board, pos.NextPlayer, that.TimeLimit.Milliseconds(), strings.Join(parts, " "))
}

// Start - spawns the agent process, writes the request and records the
// deadline. A failure here cannot be attributed to the agent and is fatal for
// the whole run, so it propagates as an error instead of a forfeit.
func (that *Agent) Start(pos othello.Position) error {
	handle, err := start(that.Path, that.Args, that.Request(pos), that.TimeLimit)
	if err != nil {
		return err
	}

	that.handle = handle

	return nil
}

// Poll - non-blocking check of the outstanding run. The run handle is released
// once it resolves to a success; failed runs keep the handle so that repeated
// polls stay consistent.
func (that *Agent) Poll() (PollResult, error) {
	if that.handle == nil {
		return PollResult{}, apperror.ErrNoRunningAgent
	}

	result := that.handle.Poll()
	if result.State == StateSuccess {
		that.handle = nil
	}

	return result, nil
}

// Interrupt - kills the outstanding run, if any. Idempotent.
func (that *Agent) Interrupt() error {
	if that.handle == nil {
		return nil
	}

	err := that.handle.Kill()
	that.handle = nil

	if err != nil {
		return fmt.Errorf("failed to interrupt agent %q: %w", that.Path, err)
	}

	return nil
}

// DebugInfo - the reproduction context attached to every failure report: the
// exact request the agent was given.
func (that *Agent) DebugInfo(pos othello.Position) string {
	return fmt.Sprintf("For '%s' the input was\n%s", that.Path, that.Request(pos))
}

func start(path string, args []string, request string, timeLimit time.Duration) (*RunHandle, error) {
	cmd := exec.Command(path, args...)

	handle := &RunHandle{
		cmd:       cmd,
		timeLimit: timeLimit,
		done:      make(chan error, 1),
	}

	cmd.Stdout = &handle.stdout
	cmd.Stderr = &handle.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open agent stdin: %w", err)
	}

	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start agent %q: %w", path, err)
	}

	handle.start = time.Now()

	if _, err = io.WriteString(stdin, request); err != nil {
		_ = cmd.Process.Kill()
		<-waitAsync(cmd)
		return nil, fmt.Errorf("failed to write request to agent %q: %w", path, err)
	}

	if err = stdin.Close(); err != nil {
		_ = cmd.Process.Kill()
		<-waitAsync(cmd)
		return nil, fmt.Errorf("failed to close agent stdin: %w", err)
	}

	go func() {
		handle.done <- cmd.Wait()
	}()

	return handle, nil
}

func waitAsync(cmd *exec.Cmd) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done
}
