package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

func TestOpenScoreRepository(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("SQLite scores are shared between opens", func(t *testing.T) {
		ctx := context.Background()
		conf := &config.Config{
			Storage: config.Storage{Driver: config.DriverSQLite, Key: "tictactoe-scores"},
			SQLite:  config.SQLite{Path: filepath.Join(t.TempDir(), "scores.db")},
		}

		// Given: a score saved through one repository
		first, closeFirst, err := OpenScoreRepository(ctx, logger, conf)
		require.NoError(t, err)
		require.NoError(t, first.Save(ctx, entity.Score{X: 2, Draw: 1}))
		closeFirst()

		// When: the storage is opened again
		second, closeSecond, err := OpenScoreRepository(ctx, logger, conf)
		require.NoError(t, err)
		defer closeSecond()

		// Then: the score is there
		score, err := second.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Score{X: 2, Draw: 1}, score)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: "floppy"}}

		_, _, err := OpenScoreRepository(context.Background(), logger, conf)

		require.ErrorIs(t, err, apperror.ErrUnknownStorage)
	})
}

func TestRunApp_UnreachableStorage(t *testing.T) {
	// Given: redis configured on a port nothing listens on
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	conf := &config.Config{
		Storage: config.Storage{Driver: config.DriverRedis, Key: "tictactoe-scores"},
		Redis:   config.Redis{Host: "127.0.0.1", Port: "1"},
	}

	// When: a session is played and quit right away
	var output bytes.Buffer
	err := RunApp(logger, conf, strings.NewReader("q"), &output)

	// Then: the session still runs and the fallback is logged
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "storage unavailable")
}

func TestOpenSessionScores_FallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := &config.Config{
		Storage: config.Storage{Driver: config.DriverSQLite},
		SQLite:  config.SQLite{Path: filepath.Join(t.TempDir(), "missing-dir", "scores.db")},
	}

	// When: the sqlite file can't be opened
	scoreRepo, closeStorage := openSessionScores(ctx, logger, conf)
	defer closeStorage()

	// Then: scores still round-trip in memory
	require.NoError(t, scoreRepo.Save(ctx, entity.Score{O: 1}))
	score, err := scoreRepo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Score{O: 1}, score)
}
