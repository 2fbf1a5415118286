package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the same get/set/delete contract against any backend.
func exerciseStorage(ctx context.Context, t *testing.T, st Storage) {
	t.Helper()

	// Given: an empty store
	_, err := st.Get(ctx, "scores")
	require.ErrorIs(t, err, ErrKeyNotFound)

	// When: a value is set and then overwritten
	require.NoError(t, st.Set(ctx, "scores", `{"x":1,"o":0,"draw":0}`))
	require.NoError(t, st.Set(ctx, "scores", `{"x":2,"o":0,"draw":0}`))

	// Then: the last value is returned
	value, err := st.Get(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, `{"x":2,"o":0,"draw":0}`, value)

	// When: the key is deleted twice
	require.NoError(t, st.Delete(ctx, "scores"))
	require.NoError(t, st.Delete(ctx, "scores"))

	// Then: it is gone
	_, err = st.Get(ctx, "scores")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(context.Background(), t, NewMemoryStorage())
}

func TestSQLiteStorage(t *testing.T) {
	t.Run("Get, set and delete", func(t *testing.T) {
		ctx := context.Background()

		st, err := NewSQLiteStorage(ctx, filepath.Join(t.TempDir(), "scores.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		exerciseStorage(ctx, t, st)
	})

	t.Run("Values survive reopening the file", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "scores.db")

		// Given: a value written and the store closed
		st, err := NewSQLiteStorage(ctx, path)
		require.NoError(t, err)
		require.NoError(t, st.Set(ctx, "scores", "persisted"))
		require.NoError(t, st.Close())

		// When: the same file is opened again
		reopened, err := NewSQLiteStorage(ctx, path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = reopened.Close() })

		// Then: the value is still there
		value, err := reopened.Get(ctx, "scores")
		require.NoError(t, err)
		assert.Equal(t, "persisted", value)
	})

	t.Run("Empty path is rejected", func(t *testing.T) {
		_, err := NewSQLiteStorage(context.Background(), " ")

		require.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	t.Run("Defaults to memory", func(t *testing.T) {
		st, err := New(context.Background(), &config.Config{})

		require.NoError(t, err)
		assert.IsType(t, &MemoryStorage{}, st)
	})

	t.Run("Opens sqlite", func(t *testing.T) {
		conf := &config.Config{
			Storage: config.Storage{Driver: config.DriverSQLite},
			SQLite:  config.SQLite{Path: filepath.Join(t.TempDir(), "scores.db")},
		}

		st, err := New(context.Background(), conf)
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })

		assert.IsType(t, &SQLiteStorage{}, st)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: "etcd"}}

		_, err := New(context.Background(), conf)

		require.ErrorIs(t, err, apperror.ErrUnknownStorage)
	})
}
