package player

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Error-42/othello-arena/internal/game"
	"github.com/Error-42/othello-arena/internal/othello"
)

// shellAI - an agent player backed by an inline shell script.
func shellAI(t *testing.T, script string, timeLimit time.Duration) *AI {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell-script agents need a POSIX sh")
	}

	return NewAI("sh", []string{"-c", script}, timeLimit)
}

// updateUntilResolved - polls until the player stops reporting a wait.
func updateUntilResolved(t *testing.T, ai *AI, pos othello.Position) game.Update {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		update, err := ai.Update(pos)
		require.NoError(t, err)

		if update.Kind != game.UpdateWait {
			return update
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("player did not resolve in time")
	return game.Update{}
}

func TestAI_Update(t *testing.T) {
	pos := othello.NewPosition()

	t.Run("a legal move with a note passes through", func(t *testing.T) {
		// Given: an agent answering d3 with a comment line
		ai := shellAI(t, `printf 'd3\nopening book\n'`, time.Second)
		require.NoError(t, ai.Init(pos))

		// When: polling until resolution
		update := updateUntilResolved(t, ai, pos)

		// Then: the move and note are forwarded
		assert.Equal(t, game.UpdateMove, update.Kind)
		assert.Equal(t, "d3", update.Move.String())
		assert.Equal(t, "opening book", update.Note)
	})

	t.Run("a missing note gets the default", func(t *testing.T) {
		ai := shellAI(t, `echo d3`, time.Second)
		require.NoError(t, ai.Init(pos))

		update := updateUntilResolved(t, ai, pos)

		assert.Equal(t, game.UpdateMove, update.Kind)
		assert.Equal(t, "no notes provided", update.Note)
	})

	t.Run("a well-formed but illegal move forfeits", func(t *testing.T) {
		// Given: a1 parses fine but flips nothing from the opening
		ai := shellAI(t, `echo a1`, time.Second)
		require.NoError(t, ai.Init(pos))

		// When: polling until resolution
		update := updateUntilResolved(t, ai, pos)

		// Then: the forfeit report names the move and carries the request
		assert.Equal(t, game.UpdateFail, update.Kind)
		assert.Contains(t, update.Report, "Invalid move played by AI: a1")
		assert.Contains(t, update.Report, "the input was")
	})

	t.Run("garbage output forfeits with the read error", func(t *testing.T) {
		ai := shellAI(t, `echo zz`, time.Second)
		require.NoError(t, ai.Init(pos))

		update := updateUntilResolved(t, ai, pos)

		assert.Equal(t, game.UpdateFail, update.Kind)
		assert.Contains(t, update.Report, "Error reading AI move")
	})

	t.Run("a crash forfeits with exit code and stderr", func(t *testing.T) {
		ai := shellAI(t, `echo broken >&2; exit 5`, time.Second)
		require.NoError(t, ai.Init(pos))

		update := updateUntilResolved(t, ai, pos)

		assert.Equal(t, game.UpdateFail, update.Kind)
		assert.Contains(t, update.Report, "AI program exit code was non-zero: 5")
		assert.Contains(t, update.Report, "broken")
	})

	t.Run("a slow agent forfeits on the time limit", func(t *testing.T) {
		ai := shellAI(t, `sleep 30`, 50*time.Millisecond)
		require.NoError(t, ai.Init(pos))

		update := updateUntilResolved(t, ai, pos)

		assert.Equal(t, game.UpdateFail, update.Kind)
		assert.Contains(t, update.Report, "AI program exceeded time limit")
	})

	t.Run("the player is named after its agent path", func(t *testing.T) {
		ai := NewAI("./agents/alpha", nil, time.Second)
		assert.Equal(t, "./agents/alpha", ai.Name())
	})

	t.Run("a thinking agent reports a wait", func(t *testing.T) {
		ai := shellAI(t, `sleep 30`, time.Minute)
		require.NoError(t, ai.Init(pos))

		update, err := ai.Update(pos)
		require.NoError(t, err)
		assert.Equal(t, game.UpdateWait, update.Kind)

		require.NoError(t, ai.Interrupt())
	})
}

func TestHuman(t *testing.T) {
	var h Human

	assert.Equal(t, "human", h.Name())
	require.NoError(t, h.Init(othello.NewPosition()))

	update, err := h.Update(othello.NewPosition())
	require.NoError(t, err)
	assert.Equal(t, game.UpdateWait, update.Kind)

	require.NoError(t, h.Interrupt())
}

func TestAI_ReportsCarryTheRequest(t *testing.T) {
	// the debug block always repeats the exact request so failures are
	// reproducible by hand
	pos := othello.NewPosition()
	ai := shellAI(t, `echo a1`, time.Second)
	require.NoError(t, ai.Init(pos))

	update := updateUntilResolved(t, ai, pos)

	require.Equal(t, game.UpdateFail, update.Kind)
	lines := strings.Split(update.Report, "\n")
	assert.Contains(t, lines[1], "For 'sh' the input was")
}
