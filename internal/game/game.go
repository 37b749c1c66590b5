package game

import (
	"fmt"
	"strconv"

	"github.com/Error-42/othello-arena/internal/apperror"
	"github.com/Error-42/othello-arena/internal/console"
	"github.com/Error-42/othello-arena/internal/othello"
)

// HistoryEntry - one step of a match: the position reached and the move that
// produced it. The initial entry has no move.
type HistoryEntry struct {
	Pos     othello.Position
	Move    othello.Move
	HasMove bool
}

// Game - one match between two players. Players[0] plays X, Players[1] plays
// O. History always starts with the initial position and grows by one entry
// per applied move; once a winner is recorded the match is terminal and no
// further moves are accepted.
type Game struct {
	ID      int
	Pos     othello.Position
	History []HistoryEntry
	Players [2]Player

	console *console.Console
	winner  othello.Tile
	over    bool
}

// New - a match starting from the standard opening.
func New(id int, players [2]Player, cons *console.Console) *Game {
	return FromPosition(id, players, othello.NewPosition(), cons)
}

// FromPosition - a match starting from an arbitrary position.
func FromPosition(id int, players [2]Player, pos othello.Position, cons *console.Console) *Game {
	return &Game{
		ID:      id,
		Pos:     pos,
		History: []HistoryEntry{{Pos: pos}},
		Players: players,
		console: cons,
	}
}

func (that *Game) formattedID() string {
	id := strconv.Itoa(that.ID)
	for len(id) < 3 {
		id = "_" + id
	}
	return "#" + id + ">"
}

// nextPlayerIndex - the index of the on-turn player, or -1 when nobody is on
// turn (the match is terminal or the position is played out).
func (that *Game) nextPlayerIndex() int {
	if that.over || that.Pos.NextPlayer == othello.TileEmpty {
		return -1
	}
	return int(that.Pos.NextPlayer)
}

// NextPlayer - the on-turn player, or nil when nobody is on turn.
func (that *Game) NextPlayer() Player {
	idx := that.nextPlayerIndex()
	if idx < 0 {
		return nil
	}
	return that.Players[idx]
}

// IsOver - reports whether a winner (or draw) has been recorded.
func (that *Game) IsOver() bool {
	return that.over
}

// Winner - the recorded outcome. TileEmpty with ok=true is a draw.
func (that *Game) Winner() (othello.Tile, bool) {
	return that.winner, that.over
}

func (that *Game) setWinner(winner othello.Tile) {
	that.winner = winner
	that.over = true
}

// Initialize - announces the match and brings the first on-turn player up.
func (that *Game) Initialize() error {
	that.console.Info(fmt.Sprintf("%s Game Started", that.formattedID()))

	return that.InitializeNextPlayer()
}

// InitializeNextPlayer - hands the current position to the on-turn player's
// Init. When nobody is on turn the position's own outcome is recorded instead.
func (that *Game) InitializeNextPlayer() error {
	idx := that.nextPlayerIndex()
	if idx < 0 {
		if !that.over {
			that.setWinner(that.Pos.Winner())
		}
		that.console.Info(fmt.Sprintf("%s Game ended, winner: %s", that.formattedID(), that.winner))
		return nil
	}

	player := that.Players[idx]
	if err := player.Init(that.Pos); err != nil {
		return fmt.Errorf("failed to initialize player %s: %w", player.Name(), err)
	}

	return nil
}

// Play - appends a move to the match. The caller guarantees the move is valid
// for the current position; external input layers must validate before
// injecting.
func (that *Game) Play(mv othello.Move, note string) {
	that.console.Info(fmt.Sprintf("%s %s: %s (%s)", that.formattedID(), that.Pos.NextPlayer, mv, note))

	that.Pos = that.Pos.Play(mv)
	that.History = append(that.History, HistoryEntry{Pos: that.Pos, Move: mv, HasMove: true})

	if that.Pos.IsGameOver() {
		that.setWinner(that.Pos.Winner())
	}
}

// Update - one non-blocking advance of the match. Polls the on-turn player;
// applies its move, records a forfeit on failure, or leaves the match
// untouched while the player is still thinking. A terminal match is a no-op.
func (that *Game) Update() error {
	pos := that.Pos

	idx := that.nextPlayerIndex()
	if idx < 0 {
		return nil
	}
	player := that.Players[idx]

	result, err := player.Update(pos)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", player.Name(), err)
	}

	switch result.Kind {
	case UpdateMove:
		that.Play(result.Move, result.Note)
		return that.InitializeNextPlayer()
	case UpdateFail:
		that.console.Warn(fmt.Sprintf("%s Player %s Error:\n%s", that.formattedID(), pos.NextPlayer, result.Report))
		that.setWinner(pos.NextPlayer.Opponent())
	case UpdateWait:
	}

	return nil
}

// ManualInterrupt - stops the on-turn player, if any. Must precede one or more
// ManualUndo calls when the number of undos is not known in advance;
// InitializeNextPlayer resumes the match afterwards.
func (that *Game) ManualInterrupt() {
	player := that.NextPlayer()
	if player == nil {
		return
	}

	if err := player.Interrupt(); err != nil {
		that.console.Warn(fmt.Sprintf("%s %v", that.formattedID(), err))
	}
}

// ManualUndo - pops exactly one history entry and clears any recorded winner.
// The initial entry can never be popped.
func (that *Game) ManualUndo() error {
	if len(that.History) <= 1 {
		return apperror.ErrHistoryEmpty
	}

	that.winner = othello.TileEmpty
	that.over = false

	that.History = that.History[:len(that.History)-1]
	that.console.Info(fmt.Sprintf("%s Undid move", that.formattedID()))

	that.Pos = that.History[len(that.History)-1].Pos

	return nil
}

// Undo - the convenience form: interrupt, pop moves entries, resume.
func (that *Game) Undo(moves int) error {
	that.ManualInterrupt()

	for i := 0; i < moves; i++ {
		if err := that.ManualUndo(); err != nil {
			return err
		}
	}

	return that.InitializeNextPlayer()
}

// ScoreFor - the finished match's score from side's perspective: 1 for a win,
// 0.5 for a draw, 0 for a loss.
func (that *Game) ScoreFor(side othello.Tile) (float64, error) {
	if !that.over {
		return 0, apperror.ErrGameNotFinished
	}

	switch that.winner.RelationTo(side) {
	case othello.RelationSame:
		return 1.0, nil
	case othello.RelationNeutral:
		return 0.5, nil
	default:
		return 0.0, nil
	}
}

// View - the read-only rendering view: the current and previous positions and
// the last applied move.
type View struct {
	Current     othello.Position
	Previous    othello.Position
	LastMove    othello.Move
	HasLastMove bool
}

func (that *Game) View() View {
	prevIdx := len(that.History) - 2
	if prevIdx < 0 {
		prevIdx = 0
	}

	last := that.History[len(that.History)-1]

	return View{
		Current:     that.Pos,
		Previous:    that.History[prevIdx].Pos,
		LastMove:    last.Move,
		HasLastMove: last.HasMove,
	}
}
