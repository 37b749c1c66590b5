// Package arena schedules a batch of matches under a bounded concurrency
// budget and aggregates their outcomes into a report. The arena is advanced by
// an external caller invoking Tick at whatever cadence it likes; no call ever
// blocks.
package arena

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Error-42/othello-arena/internal/console"
	"github.com/Error-42/othello-arena/internal/game"
	"github.com/Error-42/othello-arena/internal/othello"
	"github.com/Error-42/othello-arena/internal/repository"
)

// Submode - the reporting strategy.
type Submode uint8

const (
	SubmodeCompare Submode = iota
	SubmodeTournament
)

// MatchArchiver - the optional sink finished matches are persisted to.
type MatchArchiver interface {
	Save(ctx context.Context, record *repository.MatchRecord) error
}

// ViewPublisher - the optional sink the currently-showed match is published
// to, for external front-ends.
type ViewPublisher interface {
	PublishView(ctx context.Context, gameID int, view game.View) error
}

// Arena - a batch of matches. Matches [0, firstUnstarted) have been
// initialized; the rest are queued. The number of initialized, unfinished
// matches never exceeds maxConcurrency.
type Arena struct {
	games          []*game.Game
	console        *console.Console
	showedIdx      int
	firstUnstarted int
	maxConcurrency int
	submode        Submode

	eloIterations int
	eloK          float64

	archiver MatchArchiver
	archived []bool

	publisher ViewPublisher

	report *Report
}

func New(games []*game.Game, maxConcurrency int, cons *console.Console, submode Submode) *Arena {
	return &Arena{
		games:          games,
		console:        cons,
		maxConcurrency: maxConcurrency,
		submode:        submode,
		eloIterations:  50,
		eloK:           16.0,
		archived:       make([]bool, len(games)),
	}
}

// SetEloParams - overrides the tournament rating parameters.
func (that *Arena) SetEloParams(iterations int, k float64) {
	that.eloIterations = iterations
	that.eloK = k
}

// SetArchiver - persists every finished match through archiver.
func (that *Arena) SetArchiver(archiver MatchArchiver) {
	that.archiver = archiver
}

// SetPublisher - publishes the showed match's view every tick.
func (that *Arena) SetPublisher(publisher ViewPublisher) {
	that.publisher = publisher
}

// ShowedGame - the match a front-end should display.
func (that *Arena) ShowedGame() *game.Game {
	return that.games[that.showedIdx]
}

// Report - the final report; nil until every match has finished.
func (that *Arena) Report() *Report {
	return that.report
}

// Tick - one cooperative advance of the whole batch: admit queued matches up
// to the concurrency budget, advance the showed-match pointer, update every
// initialized match, archive and publish, and report progress. Returns true
// once every match is over and the final report has been built.
func (that *Arena) Tick(ctx context.Context) (bool, error) {
	if err := that.startNewGames(); err != nil {
		return false, err
	}

	if that.games[that.showedIdx].IsOver() {
		that.showedIdx = that.firstUnstarted - 1
	}

	for _, g := range that.games[:that.firstUnstarted] {
		if err := g.Update(); err != nil {
			return false, err
		}
	}

	that.archiveFinished(ctx)
	that.publishShowed(ctx)
	that.printFinishedCount()

	for _, g := range that.games {
		if !g.IsOver() {
			return false, nil
		}
	}

	that.console.Unpin()

	report, err := that.buildReport()
	if err != nil {
		return false, err
	}
	that.report = report

	return true, nil
}

// startNewGames - admission control: initializes queued matches in index order
// while the ongoing count stays within the budget.
func (that *Arena) startNewGames() error {
	ongoing := 0
	for _, g := range that.games[:that.firstUnstarted] {
		if !g.IsOver() {
			ongoing++
		}
	}

	canStart := that.maxConcurrency - ongoing

	for i := 0; i < canStart && that.firstUnstarted < len(that.games); i++ {
		if err := that.games[that.firstUnstarted].Initialize(); err != nil {
			return fmt.Errorf("failed to start game %d: %w", that.firstUnstarted, err)
		}
		that.firstUnstarted++
	}

	return nil
}

func (that *Arena) printFinishedCount() {
	finished := 0
	for _, g := range that.games[:that.firstUnstarted] {
		if g.IsOver() {
			finished++
		}
	}

	that.console.Pin(fmt.Sprintf("Games done: %d/%d", finished, len(that.games)))
}

func (that *Arena) archiveFinished(ctx context.Context) {
	if that.archiver == nil {
		return
	}

	for idx, g := range that.games[:that.firstUnstarted] {
		if !g.IsOver() || that.archived[idx] {
			continue
		}

		if err := that.archiver.Save(ctx, matchRecord(g)); err != nil {
			// archiving is diagnostics, not an outcome; the batch keeps going
			that.console.Warn(fmt.Sprintf("failed to archive game %d: %v", g.ID, err))
		}

		that.archived[idx] = true
	}
}

func (that *Arena) publishShowed(ctx context.Context) {
	if that.publisher == nil {
		return
	}

	showed := that.ShowedGame()
	if err := that.publisher.PublishView(ctx, showed.ID, showed.View()); err != nil {
		that.console.Warn(fmt.Sprintf("failed to publish live view: %v", err))
	}
}

func matchRecord(g *game.Game) *repository.MatchRecord {
	var tokens []string
	for _, entry := range g.History {
		if entry.HasMove {
			tokens = append(tokens, entry.Move.String())
		}
	}

	winner, _ := g.Winner()

	return &repository.MatchRecord{
		GameID:     g.ID,
		PlayerX:    g.Players[othello.TileX].Name(),
		PlayerO:    g.Players[othello.TileO].Name(),
		Winner:     winner.String(),
		Moves:      strings.Join(tokens, " "),
		FinishedAt: time.Now(),
	}
}
