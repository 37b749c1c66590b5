package arena

import (
	"github.com/Error-42/othello-arena/internal/console"
	"github.com/Error-42/othello-arena/internal/game"
	"github.com/Error-42/othello-arena/internal/othello"
)

// PlayerFactory - builds a fresh player instance for one match. Agents hold an
// exclusive process handle per outstanding request, so they cannot be shared
// between matches.
type PlayerFactory func() game.Player

// BuildComparePairs - for every starting position, two matches with swapped
// colors: competitor 1 plays X in the even-id game and O in the odd-id game of
// each pair.
func BuildComparePairs(starts []othello.Position, first, second PlayerFactory, cons *console.Console) []*game.Game {
	games := make([]*game.Game, 0, 2*len(starts))

	for i, start := range starts {
		games = append(games,
			game.FromPosition(2*i, [2]game.Player{first(), second()}, start, cons),
			game.FromPosition(2*i+1, [2]game.Player{second(), first()}, start, cons),
		)
	}

	return games
}

// BuildRoundRobin - every pair of participants plays twice, once with each
// color, from the standard opening.
func BuildRoundRobin(factories []PlayerFactory, cons *console.Console) []*game.Game {
	var games []*game.Game

	id := 0
	for i, first := range factories {
		for _, second := range factories[i+1:] {
			games = append(games, game.New(id, [2]game.Player{first(), second()}, cons))
			id++

			games = append(games, game.New(id, [2]game.Player{second(), first()}, cons))
			id++
		}
	}

	return games
}
