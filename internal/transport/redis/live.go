// Package redis publishes the arena's currently-showed match as JSON so that
// external front-ends can render it without linking the engine.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Error-42/othello-arena/internal/game"
)

const liveViewKey = "arena:live-view"

type Client struct {
	client *redis.Client
}

func New(ctx context.Context, addr string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb}, nil
}

// LiveView - the wire shape of a showed match.
type LiveView struct {
	GameID     int    `json:"game_id"`
	Board      string `json:"board"`
	Previous   string `json:"previous_board"`
	NextPlayer string `json:"next_player"`
	LastMove   string `json:"last_move,omitempty"`
}

// PublishView - overwrites the live-view key with the given match view.
func (that *Client) PublishView(ctx context.Context, gameID int, view game.View) error {
	payload := LiveView{
		GameID:     gameID,
		Board:      view.Current.Board.String(),
		Previous:   view.Previous.Board.String(),
		NextPlayer: view.Current.NextPlayer.String(),
	}
	if view.HasLastMove {
		payload.LastMove = view.LastMove.String()
	}

	viewJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal live view: %w", err)
	}

	if err = that.client.Set(ctx, liveViewKey, viewJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to publish live view: %w", err)
	}

	return nil
}

// GetView - reads the last published view; used by front-ends and tests.
func (that *Client) GetView(ctx context.Context) (*LiveView, error) {
	val, err := that.client.Get(ctx, liveViewKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get live view: %w", err)
	}

	var payload LiveView
	if err = json.Unmarshal([]byte(val), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal live view: %w", err)
	}

	return &payload, nil
}

func (that *Client) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
