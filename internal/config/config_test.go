package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the config file", func(t *testing.T) {
		// Given: a config file selecting the redis backend
		path := filepath.Join(t.TempDir(), "config.yml")
		content := []byte(`log-level: debug
storage:
  driver: redis
redis:
  host: cache
  port: "6380"
players:
  x: Alice
`)
		require.NoError(t, os.WriteFile(path, content, 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values win and defaults fill the rest
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, "tictactoe-scores", conf.Storage.Key)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "Alice", conf.Players.X)
		assert.Equal(t, "Player O", conf.Players.O)
	})

	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, DriverMemory, conf.Storage.Driver)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe.db", conf.SQLite.Path)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: the storage driver set through the environment
		t.Setenv("TICTACTOE_STORAGE", DriverSQLite)

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, conf.Storage.Driver)
	})

	t.Run("Returns an error for a malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
	})
}
