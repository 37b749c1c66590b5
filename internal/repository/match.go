package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MatchRecord - one archived finished match.
type MatchRecord struct {
	GameID     int       `json:"game_id"`
	PlayerX    string    `json:"player_x"`
	PlayerO    string    `json:"player_o"`
	Winner     string    `json:"winner"`
	Moves      string    `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

type MatchRepository interface {
	Save(ctx context.Context, record *MatchRecord) error
	ListRecent(ctx context.Context, limit int) ([]*MatchRecord, error)
}

type matchRepository struct {
	conn *sql.DB
}

func NewMatchRepository(conn *sql.DB) MatchRepository {
	return &matchRepository{
		conn: conn,
	}
}

func (that *matchRepository) Save(ctx context.Context, record *MatchRecord) error {
	query := `INSERT INTO matches (game_id, player_x, player_o, winner, moves, finished_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		record.GameID, record.PlayerX, record.PlayerO, record.Winner, record.Moves, record.FinishedAt)
	if err != nil {
		return fmt.Errorf("can't save match: %w", err)
	}

	return nil
}

func (that *matchRepository) ListRecent(ctx context.Context, limit int) ([]*MatchRecord, error) {
	query := `SELECT game_id, player_x, player_o, winner, moves, finished_at
		FROM matches ORDER BY finished_at DESC, id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}
	defer rows.Close()

	var records []*MatchRecord
	for rows.Next() {
		var record MatchRecord
		if err = rows.Scan(&record.GameID, &record.PlayerX, &record.PlayerO,
			&record.Winner, &record.Moves, &record.FinishedAt); err != nil {
			return nil, fmt.Errorf("can't scan match: %w", err)
		}
		records = append(records, &record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read matches: %w", err)
	}

	return records, nil
}
