package othello

import "strings"

const BoardSize = 8

// Board - an 8x8 grid of tiles. Boards are plain values; copying one is cheap
// and never shares state.
type Board struct {
	cells [BoardSize * BoardSize]Tile
}

// EmptyBoard - a board with every cell empty.
func EmptyBoard() Board {
	var board Board
	for i := range board.cells {
		board.cells[i] = TileEmpty
	}
	return board
}

// NewBoard - the standard opening: X on d5/e4, O on d4/e5.
func NewBoard() Board {
	board := EmptyBoard()

	board.set(Move{X: 3, Y: 3}, TileO)
	board.set(Move{X: 4, Y: 4}, TileO)
	board.set(Move{X: 3, Y: 4}, TileX)
	board.set(Move{X: 4, Y: 3}, TileX)

	return board
}

func (that Board) Get(mv Move) Tile {
	return that.cells[mv.Y*BoardSize+mv.X]
}

func (that *Board) set(mv Move, tile Tile) {
	that.cells[mv.Y*BoardSize+mv.X] = tile
}

// String - the 64-character wire encoding, rank 1 first, file a first within
// each rank. X and O cells keep their tile letter, empty cells become '.'.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			switch that.Get(Move{X: x, Y: y}) {
			case TileX:
				sb.WriteByte('X')
			case TileO:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
