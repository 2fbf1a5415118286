package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

var ErrKeyNotFound = errors.New("key not found")

// Storage is a flat string key-value store.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New opens the backend selected by conf.Storage.Driver.
func New(ctx context.Context, conf *config.Config) (Storage, error) {
	switch conf.Storage.Driver {
	case config.DriverMemory, "":
		return NewMemoryStorage(), nil
	case config.DriverRedis:
		return NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
	case config.DriverSQLite:
		return NewSQLiteStorage(ctx, conf.SQLite.Path)
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStorage, conf.Storage.Driver)
	}
}
