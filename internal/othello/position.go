package othello

// Position - an immutable snapshot of the board plus the side to move.
// Positions are values: Play returns a new Position and never mutates the
// receiver. NextPlayer always has at least one valid move unless the game is
// over.
type Position struct {
	Board      Board
	NextPlayer Tile
}

// NewPosition - the standard opening position with X to move.
func NewPosition() Position {
	return Position{Board: NewBoard(), NextPlayer: TileX}
}

// place - puts a disk of NextPlayer on mv, flips captured lines and passes the
// turn. Reports whether any disk was flipped, which is what makes a move valid.
func (that Position) place(mv Move) (Position, bool) {
	next := that
	next.Board.set(mv, that.NextPlayer)

	flipped := false

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}

			cur := Move{X: mv.X + dx, Y: mv.Y + dy}
			for cur.InBoard() && next.Board.Get(cur) == that.NextPlayer.Opponent() {
				cur = Move{X: cur.X + dx, Y: cur.Y + dy}
			}

			if !cur.InBoard() || next.Board.Get(cur) != that.NextPlayer {
				continue
			}

			for cur = (Move{X: cur.X - dx, Y: cur.Y - dy}); cur != mv; cur = (Move{X: cur.X - dx, Y: cur.Y - dy}) {
				next.Board.set(cur, that.NextPlayer)
				flipped = true
			}
		}
	}

	next.NextPlayer = that.NextPlayer.Opponent()

	return next, flipped
}

// IsValidMove - reports whether NextPlayer may play mv.
func (that Position) IsValidMove(mv Move) bool {
	if that.NextPlayer == TileEmpty {
		return false
	}

	if !mv.InBoard() || that.Board.Get(mv) != TileEmpty {
		return false
	}

	_, flipped := that.place(mv)

	return flipped
}

// ValidMoves - every valid move for NextPlayer, in rank-then-file order.
func (that Position) ValidMoves() []Move {
	var moves []Move

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			mv := Move{X: x, Y: y}
			if that.IsValidMove(mv) {
				moves = append(moves, mv)
			}
		}
	}

	return moves
}

// Play - applies a valid move and returns the resulting position. When the
// opponent has no reply the turn passes back, so NextPlayer is always a side
// that can actually move; once neither side can, NextPlayer becomes TileEmpty.
func (that Position) Play(mv Move) Position {
	next, _ := that.place(mv)

	if next.IsGameOver() {
		next.NextPlayer = TileEmpty
		return next
	}

	if len(next.ValidMoves()) == 0 {
		next.NextPlayer = next.NextPlayer.Opponent()
	}

	return next
}

// IsGameOver - neither side has a valid move left.
func (that Position) IsGameOver() bool {
	if that.NextPlayer == TileEmpty {
		return true
	}

	for _, side := range Sides() {
		tester := that
		tester.NextPlayer = side

		if len(tester.ValidMoves()) > 0 {
			return false
		}
	}

	return true
}

// Winner - the side with more disks, or TileEmpty on an equal count. Only
// meaningful once IsGameOver reports true.
func (that Position) Winner() Tile {
	counts := map[Tile]int{}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			counts[that.Board.Get(Move{X: x, Y: y})]++
		}
	}

	switch {
	case counts[TileX] > counts[TileO]:
		return TileX
	case counts[TileO] > counts[TileX]:
		return TileO
	default:
		return TileEmpty
	}
}

// OpeningPositions - every position reachable after exactly depth plies. With
// depth >= 1 the first ply is fixed to d3; by symmetry the three other openings
// are rotations of it.
func OpeningPositions(depth int) []Position {
	if depth == 0 {
		return []Position{NewPosition()}
	}

	layer := []Position{NewPosition().Play(Move{X: 3, Y: 2})}

	for ply := 1; ply < depth; ply++ {
		var next []Position
		for _, pos := range layer {
			for _, mv := range pos.ValidMoves() {
				next = append(next, pos.Play(mv))
			}
		}
		layer = next
	}

	return layer
}
