package arena

import (
	"fmt"
	"sort"

	"github.com/Error-42/othello-arena/internal/console"
	"github.com/Error-42/othello-arena/internal/elo"
	"github.com/Error-42/othello-arena/internal/othello"
)

// Report - the batch outcome, shaped by the submode.
type Report struct {
	Submode    Submode
	Compare    *CompareReport
	Tournament *TournamentReport
}

// CompareReport - total score per nominal competitor. Matches are paired with
// swapped colors, so competitor 1 is X in even-indexed games and O in odd ones.
type CompareReport struct {
	Score1 float64
	Score2 float64
}

// TournamentRow - one participant's aggregate result.
type TournamentRow struct {
	Name  string
	Elo   float64
	Score float64
}

// TournamentReport - rows sorted by score descending.
type TournamentReport struct {
	Rows []TournamentRow
}

func (that *Arena) buildReport() (*Report, error) {
	switch that.submode {
	case SubmodeCompare:
		compare, err := that.buildCompareReport()
		if err != nil {
			return nil, err
		}
		return &Report{Submode: SubmodeCompare, Compare: compare}, nil
	default:
		tournament, err := that.buildTournamentReport()
		if err != nil {
			return nil, err
		}
		return &Report{Submode: SubmodeTournament, Tournament: tournament}, nil
	}
}

func (that *Arena) buildCompareReport() (*CompareReport, error) {
	var report CompareReport

	for i, g := range that.games {
		scoreX, err := g.ScoreFor(othello.TileX)
		if err != nil {
			return nil, fmt.Errorf("failed to score game %d: %w", g.ID, err)
		}
		scoreO, err := g.ScoreFor(othello.TileO)
		if err != nil {
			return nil, fmt.Errorf("failed to score game %d: %w", g.ID, err)
		}

		// the pairing swaps colors every other game for fairness
		if i%2 == 0 {
			report.Score1 += scoreX
			report.Score2 += scoreO
		} else {
			report.Score1 += scoreO
			report.Score2 += scoreX
		}
	}

	return &report, nil
}

func (that *Arena) buildTournamentReport() (*TournamentReport, error) {
	scores := make(map[string]float64)
	eloGames := make([]elo.Game, 0, len(that.games))

	for _, g := range that.games {
		for i, side := range othello.Sides() {
			score, err := g.ScoreFor(side)
			if err != nil {
				return nil, fmt.Errorf("failed to score game %d: %w", g.ID, err)
			}
			scores[g.Players[i].Name()] += score
		}

		scoreX, err := g.ScoreFor(othello.TileX)
		if err != nil {
			return nil, fmt.Errorf("failed to score game %d: %w", g.ID, err)
		}

		eloGames = append(eloGames, elo.Game{
			Players: [2]string{g.Players[0].Name(), g.Players[1].Name()},
			Score:   scoreX,
		})
	}

	elos, err := elo.FromSingleTournament(eloGames, that.eloIterations, that.eloK)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ratings: %w", err)
	}

	rows := make([]TournamentRow, 0, len(scores))
	for name, score := range scores {
		rows = append(rows, TournamentRow{Name: name, Elo: elos[name], Score: score})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Name < rows[j].Name
	})

	return &TournamentReport{Rows: rows}, nil
}

// Print - renders the report through the status sink.
func (that *Report) Print(cons *console.Console) {
	switch that.Submode {
	case SubmodeCompare:
		cons.Print(fmt.Sprintf("Score 1: %.1f, score 2: %.1f", that.Compare.Score1, that.Compare.Score2))
	default:
		cons.Print(fmt.Sprintf("%4s %5s Path", "Elo", "Score"))
		for _, row := range that.Tournament.Rows {
			cons.Print(fmt.Sprintf("%4.0f %5.1f %s", row.Elo, row.Score, row.Name))
		}
	}
}
