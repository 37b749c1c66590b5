package game

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Error-42/othello-arena/internal/apperror"
	"github.com/Error-42/othello-arena/internal/console"
	"github.com/Error-42/othello-arena/internal/othello"
)

// scriptedPlayer - a test double that plays back a fixed sequence of updates.
type scriptedPlayer struct {
	name       string
	script     []Update
	inits      int
	interrupts int
}

func (that *scriptedPlayer) Name() string { return that.name }

func (that *scriptedPlayer) Init(_ othello.Position) error {
	that.inits++
	return nil
}

func (that *scriptedPlayer) Update(_ othello.Position) (Update, error) {
	if len(that.script) == 0 {
		return Update{Kind: UpdateWait}, nil
	}

	next := that.script[0]
	that.script = that.script[1:]
	return next, nil
}

func (that *scriptedPlayer) Interrupt() error {
	that.interrupts++
	return nil
}

// firstMovePlayer - always plays the first valid move immediately.
type firstMovePlayer struct {
	name string
}

func (that *firstMovePlayer) Name() string                  { return that.name }
func (that *firstMovePlayer) Init(_ othello.Position) error { return nil }
func (that *firstMovePlayer) Interrupt() error              { return nil }

func (that *firstMovePlayer) Update(pos othello.Position) (Update, error) {
	return Update{Kind: UpdateMove, Move: pos.ValidMoves()[0], Note: "first"}, nil
}

func testConsole() *console.Console {
	return console.NewWithWriter(&bytes.Buffer{}, false, console.LevelNecessary, nil)
}

func TestGame_Update(t *testing.T) {
	t.Run("a waiting player leaves the match untouched", func(t *testing.T) {
		// Given: an initialized match whose on-turn player is thinking
		g := New(0, [2]Player{&scriptedPlayer{name: "x"}, &scriptedPlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())

		// When: ticking the match
		require.NoError(t, g.Update())

		// Then: nothing changed
		assert.Len(t, g.History, 1)
		assert.False(t, g.IsOver())
	})

	t.Run("a move grows the history and re-initializes the next player", func(t *testing.T) {
		// Given: X plays d3 on its first poll
		x := &scriptedPlayer{name: "x", script: []Update{
			{Kind: UpdateMove, Move: othello.Move{X: 3, Y: 2}, Note: "book"},
		}}
		o := &scriptedPlayer{name: "o"}
		g := New(0, [2]Player{x, o}, testConsole())
		require.NoError(t, g.Initialize())

		// When: ticking once
		require.NoError(t, g.Update())

		// Then: history holds the applied move and O has been initialized
		require.Len(t, g.History, 2)
		assert.True(t, g.History[1].HasMove)
		assert.Equal(t, "d3", g.History[1].Move.String())
		assert.Equal(t, othello.TileO, g.Pos.NextPlayer)
		assert.Equal(t, 1, o.inits)
		assert.False(t, g.IsOver())
	})

	t.Run("a failing player forfeits to its opponent", func(t *testing.T) {
		// Given: X fails its first poll
		x := &scriptedPlayer{name: "x", script: []Update{
			{Kind: UpdateFail, Report: "exceeded time limit"},
		}}
		g := New(0, [2]Player{x, &scriptedPlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())

		// When: ticking once
		require.NoError(t, g.Update())

		// Then: O wins by forfeit and the history is unchanged
		winner, over := g.Winner()
		require.True(t, over)
		assert.Equal(t, othello.TileO, winner)
		assert.Len(t, g.History, 1)
	})

	t.Run("a terminal match ignores further updates", func(t *testing.T) {
		x := &scriptedPlayer{name: "x", script: []Update{
			{Kind: UpdateFail, Report: "crash"},
		}}
		g := New(0, [2]Player{x, &scriptedPlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())
		require.NoError(t, g.Update())

		// When: ticking a finished match
		require.NoError(t, g.Update())

		// Then: the recorded winner is untouched
		winner, over := g.Winner()
		require.True(t, over)
		assert.Equal(t, othello.TileO, winner)
	})

	t.Run("a full game reaches a natural conclusion", func(t *testing.T) {
		// Given: two players that always take the first valid move
		g := New(0, [2]Player{&firstMovePlayer{name: "x"}, &firstMovePlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())

		// When: ticking until the match ends
		for i := 0; i < 100 && !g.IsOver(); i++ {
			require.NoError(t, g.Update())
		}

		// Then: the game finished and history tracks every move
		require.True(t, g.IsOver())
		assert.Equal(t, len(g.History), movesPlayed(g)+1)
	})
}

func movesPlayed(g *Game) int {
	count := 0
	for _, entry := range g.History {
		if entry.HasMove {
			count++
		}
	}
	return count
}

func TestGame_Undo(t *testing.T) {
	t.Run("undo then replay reproduces the history", func(t *testing.T) {
		// Given: a match with two moves applied
		g := New(0, [2]Player{&scriptedPlayer{name: "x"}, &scriptedPlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())

		first := g.Pos.ValidMoves()[0]
		g.Play(first, "human")
		second := g.Pos.ValidMoves()[0]
		g.Play(second, "human")

		want := append([]HistoryEntry(nil), g.History...)

		// When: undoing both moves and replaying them
		require.NoError(t, g.Undo(2))
		require.Len(t, g.History, 1)
		g.Play(first, "human")
		g.Play(second, "human")

		// Then: the history matches exactly
		assert.Equal(t, want, g.History)
	})

	t.Run("undo clears a recorded winner", func(t *testing.T) {
		// Given: a match lost by forfeit after one move
		g := New(0, [2]Player{&scriptedPlayer{name: "x"}, &scriptedPlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())
		g.Play(g.Pos.ValidMoves()[0], "human")
		g.setWinner(othello.TileX)

		// When: undoing the move
		require.NoError(t, g.Undo(1))

		// Then: the match is live again
		assert.False(t, g.IsOver())
		assert.Len(t, g.History, 1)
	})

	t.Run("the initial entry cannot be undone", func(t *testing.T) {
		g := New(0, [2]Player{&scriptedPlayer{name: "x"}, &scriptedPlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())

		err := g.ManualUndo()
		assert.ErrorIs(t, err, apperror.ErrHistoryEmpty)
	})

	t.Run("manual undo interrupts the on-turn player first", func(t *testing.T) {
		// Given: a match with one applied move
		x := &scriptedPlayer{name: "x"}
		o := &scriptedPlayer{name: "o"}
		g := New(0, [2]Player{x, o}, testConsole())
		require.NoError(t, g.Initialize())
		g.Play(g.Pos.ValidMoves()[0], "human")

		// When: the manual undo sequence runs
		g.ManualInterrupt()
		require.NoError(t, g.ManualUndo())
		require.NoError(t, g.InitializeNextPlayer())

		// Then: the on-turn player was interrupted and X is back on turn
		assert.Equal(t, 1, o.interrupts)
		assert.Equal(t, othello.TileX, g.Pos.NextPlayer)
		assert.Equal(t, 2, x.inits)
	})
}

func TestGame_ScoreFor(t *testing.T) {
	t.Run("scores sum to one for every finished match", func(t *testing.T) {
		// Given: a forfeit win for O
		x := &scriptedPlayer{name: "x", script: []Update{{Kind: UpdateFail, Report: "bad output"}}}
		g := New(0, [2]Player{x, &scriptedPlayer{name: "o"}}, testConsole())
		require.NoError(t, g.Initialize())
		require.NoError(t, g.Update())

		// When: scoring both sides
		scoreX, err := g.ScoreFor(othello.TileX)
		require.NoError(t, err)
		scoreO, err := g.ScoreFor(othello.TileO)
		require.NoError(t, err)

		// Then: the match is zero-sum
		assert.Equal(t, 0.0, scoreX)
		assert.Equal(t, 1.0, scoreO)
		assert.Equal(t, 1.0, scoreX+scoreO)
	})

	t.Run("a draw scores half for both sides", func(t *testing.T) {
		g := New(0, [2]Player{&scriptedPlayer{name: "x"}, &scriptedPlayer{name: "o"}}, testConsole())
		g.setWinner(othello.TileEmpty)

		scoreX, err := g.ScoreFor(othello.TileX)
		require.NoError(t, err)
		scoreO, err := g.ScoreFor(othello.TileO)
		require.NoError(t, err)

		assert.Equal(t, 0.5, scoreX)
		assert.Equal(t, 0.5, scoreO)
	})

	t.Run("an unfinished match cannot be scored", func(t *testing.T) {
		g := New(0, [2]Player{&scriptedPlayer{name: "x"}, &scriptedPlayer{name: "o"}}, testConsole())

		_, err := g.ScoreFor(othello.TileX)
		assert.ErrorIs(t, err, apperror.ErrGameNotFinished)
	})
}

func TestGame_View(t *testing.T) {
	t.Run("tracks current, previous and last move", func(t *testing.T) {
		g := New(0, [2]Player{&scriptedPlayer{name: "x"}, &scriptedPlayer{name: "o"}}, testConsole())

		// Given: a fresh match
		view := g.View()
		assert.False(t, view.HasLastMove)
		assert.Equal(t, view.Current, view.Previous)

		// When: a move is applied
		mv := g.Pos.ValidMoves()[0]
		before := g.Pos
		g.Play(mv, "human")

		// Then: the view exposes the transition
		view = g.View()
		assert.True(t, view.HasLastMove)
		assert.Equal(t, mv, view.LastMove)
		assert.Equal(t, before, view.Previous)
		assert.Equal(t, g.Pos, view.Current)
	})
}
