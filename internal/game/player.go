package game

import "github.com/Error-42/othello-arena/internal/othello"

// UpdateKind - what a player reported when polled for its move.
type UpdateKind uint8

const (
	// UpdateWait - the player is still thinking; poll again next tick.
	UpdateWait UpdateKind = iota
	// UpdateMove - the player produced a valid move.
	UpdateMove
	// UpdateFail - the player forfeits; Report carries the diagnostic context.
	UpdateFail
)

// Update - the result of polling a player. Move and Note are set for
// UpdateMove, Report for UpdateFail.
type Update struct {
	Kind   UpdateKind
	Move   othello.Move
	Note   string
	Report string
}

// Player - the uniform lifecycle the match drives both player kinds through.
// Init is called whenever the player comes on turn; Update is polled once per
// tick and must never block; Interrupt stops any outstanding work when the
// match is undone or abandoned. Errors are reserved for failures fatal to the
// whole run (such as being unable to spawn a process) - everything
// attributable to the player itself is an UpdateFail, not an error.
type Player interface {
	Name() string
	Init(pos othello.Position) error
	Update(pos othello.Position) (Update, error)
	Interrupt() error
}
