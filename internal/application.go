package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Error-42/othello-arena/internal/arena"
	"github.com/Error-42/othello-arena/internal/config"
	"github.com/Error-42/othello-arena/internal/console"
	"github.com/Error-42/othello-arena/internal/repository"
	"github.com/Error-42/othello-arena/internal/repository/storage/sqlite"
	transportredis "github.com/Error-42/othello-arena/internal/transport/redis"
)

// RunArena - wires the configured sinks into the arena and drives it with a
// ticker until every match is over, then prints the final report. The tick
// loop is the single control-flow thread of the whole engine; parallelism
// across matches comes from the agent processes themselves.
func RunArena(logger *slog.Logger, conf *config.Config, cons *console.Console, batch *arena.Arena) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Storage.SQLitePath != "" {
		storage, err := sqlite.New(conf.Storage.SQLitePath)
		if err != nil {
			return fmt.Errorf("could not open match archive: %w", err)
		}
		defer func() {
			if err = storage.Close(); err != nil {
				log.Error("could not close match archive", "error", err)
			}
		}()

		if err = storage.Init(ctx); err != nil {
			return fmt.Errorf("could not init match archive: %w", err)
		}

		batch.SetArchiver(repository.NewMatchRepository(storage.Connection))
	}

	if conf.Live.Enabled {
		live, err := transportredis.New(ctx, conf.Live.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to live-view redis: %w", err)
		}
		defer func() {
			if err = live.Close(); err != nil {
				log.Error("could not close live-view redis", "error", err)
			}
		}()

		batch.SetPublisher(live)
	}

	batch.SetEloParams(conf.Elo.Iterations, conf.Elo.KFactor)

	ticker := time.NewTicker(time.Duration(conf.TickInterval) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Application context canceled, shutting down")
			return nil
		case <-ticker.C:
			done, err := batch.Tick(ctx)
			if err != nil {
				return fmt.Errorf("arena tick failed: %w", err)
			}
			if done {
				batch.Report().Print(cons)
				return nil
			}
		}
	}
}
