// Package elo estimates relative ratings from a finished batch of pairwise
// games. The computation is the iterated batch Elo update: every round
// recomputes all ratings simultaneously from a frozen snapshot of the previous
// round, so the result does not depend on iteration order.
package elo

import (
	"fmt"
	"math"

	"github.com/Error-42/othello-arena/internal/apperror"
)

// Baseline - the rating every participant starts from.
const Baseline = 1000.0

// Game - one finished pairwise game. Score is from Players[0]'s perspective
// and must be exactly 0, 0.5 or 1.
type Game struct {
	Players [2]string
	Score   float64
}

// halfGame - one participant's perspective of a game.
type halfGame struct {
	opponent string
	score    float64
}

// FromSingleTournament - computes ratings for every participant appearing in
// games, running the batch update for iterations rounds with the given
// K-factor. Deterministic for identical inputs.
func FromSingleTournament(games []Game, iterations int, k float64) (map[string]float64, error) {
	ratings := make(map[string]float64)
	halves := make(map[string][]halfGame)

	for _, g := range games {
		if g.Score != 0.0 && g.Score != 0.5 && g.Score != 1.0 {
			return nil, fmt.Errorf("%w: got %v for %s vs %s", apperror.ErrInvalidScore, g.Score, g.Players[0], g.Players[1])
		}

		for _, p := range g.Players {
			if _, ok := ratings[p]; !ok {
				ratings[p] = Baseline
			}
		}

		halves[g.Players[0]] = append(halves[g.Players[0]], halfGame{opponent: g.Players[1], score: g.Score})
		halves[g.Players[1]] = append(halves[g.Players[1]], halfGame{opponent: g.Players[0], score: 1.0 - g.Score})
	}

	for i := 0; i < iterations; i++ {
		next := make(map[string]float64, len(ratings))
		for p, r := range ratings {
			next[p] = r
		}

		for p, playerHalves := range halves {
			next[p] = newRating(ratings[p], playerHalves, ratings, k)
		}

		ratings = next
	}

	return ratings, nil
}

// newRating - the standard Elo period update: all of a participant's games are
// applied at once against the snapshot ratings.
func newRating(rating float64, halves []halfGame, ratings map[string]float64, k float64) float64 {
	delta := 0.0

	for _, hg := range halves {
		expected := 1.0 / (1.0 + math.Pow(10, (ratings[hg.opponent]-rating)/400.0))
		delta += k * (hg.score - expected)
	}

	return rating + delta
}
