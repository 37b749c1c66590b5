package othello

// Tile - the owner of a board cell. TileX always moves first; TileEmpty doubles
// as the "draw" outcome when used as a winner.
type Tile uint8

const (
	TileX Tile = iota
	TileO
	TileEmpty
)

// Relation - how a recorded winner relates to a queried side.
type Relation uint8

const (
	RelationSame Relation = iota
	RelationOpponent
	RelationNeutral
)

func (that Tile) String() string {
	switch that {
	case TileX:
		return "X"
	case TileO:
		return "O"
	default:
		return "-"
	}
}

// Opponent - the other side. Must not be called on TileEmpty.
func (that Tile) Opponent() Tile {
	switch that {
	case TileX:
		return TileO
	case TileO:
		return TileX
	default:
		panic("called Opponent on an empty tile")
	}
}

// RelationTo - relates a winner tile to a queried side. A drawn winner
// (TileEmpty) is neutral towards both sides.
func (that Tile) RelationTo(side Tile) Relation {
	switch {
	case that == TileEmpty:
		return RelationNeutral
	case that == side:
		return RelationSame
	default:
		return RelationOpponent
	}
}

// Sides - both playing sides in move order.
func Sides() [2]Tile {
	return [2]Tile{TileX, TileO}
}
