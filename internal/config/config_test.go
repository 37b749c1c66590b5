package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		conf := MustLoad(filepath.Join(t.TempDir(), "config.yml"))

		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 10, conf.TickInterval)
		assert.Equal(t, 50, conf.Elo.Iterations)
		assert.Equal(t, 16.0, conf.Elo.KFactor)
		assert.Empty(t, conf.Storage.SQLitePath)
		assert.False(t, conf.Live.Enabled)
		assert.Equal(t, "localhost:6379", conf.Live.Redis.GetRedisAddr())
	})

	t.Run("a config file overrides the defaults", func(t *testing.T) {
		content := `log-level: debug
tick-interval-ms: 25
elo:
  iterations: 100
  k-factor: 24
storage:
  sqlite-path: matches.db
live:
  enabled: true
  redis:
    host: redis.internal
    port: "6380"
`
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		conf := MustLoad(path)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 25, conf.TickInterval)
		assert.Equal(t, 100, conf.Elo.Iterations)
		assert.Equal(t, 24.0, conf.Elo.KFactor)
		assert.Equal(t, "matches.db", conf.Storage.SQLitePath)
		assert.True(t, conf.Live.Enabled)
		assert.Equal(t, "redis.internal:6380", conf.Live.Redis.GetRedisAddr())
	})

	t.Run("a malformed file panics", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [broken"), 0o644))

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
