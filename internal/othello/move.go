package othello

import (
	"fmt"

	"github.com/Error-42/othello-arena/internal/apperror"
)

// Move - a zero-based board coordinate. X is the column (file a-h), Y is the
// row (rank 1-8).
type Move struct {
	X int
	Y int
}

// String - the canonical move token, e.g. "d3".
func (that Move) String() string {
	return string([]byte{byte('a' + that.X), byte('1' + that.Y)})
}

func (that Move) InBoard() bool {
	return that.X >= 0 && that.X < BoardSize && that.Y >= 0 && that.Y < BoardSize
}

// ParseMove - decodes a move token. The returned error names the constraint
// that failed, so protocol reports can carry it verbatim.
func ParseMove(token string) (Move, error) {
	if len(token) != 2 {
		return Move{}, fmt.Errorf("%w: token %q has invalid length", apperror.ErrInvalidMove, token)
	}

	col := token[0]
	if col < 'a' || col > 'h' {
		return Move{}, fmt.Errorf("%w: token %q has invalid column", apperror.ErrInvalidMove, token)
	}

	row := token[1]
	if row < '1' || row > '8' {
		return Move{}, fmt.Errorf("%w: token %q has invalid row", apperror.ErrInvalidMove, token)
	}

	return Move{X: int(col - 'a'), Y: int(row - '1')}, nil
}
