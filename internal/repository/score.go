package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
)

const DefaultScoreKey = "tictactoe-scores"

type ScoreRepository interface {
	Save(ctx context.Context, score entity.Score) error
	Load(ctx context.Context) (entity.Score, error)
	Clear(ctx context.Context) error
}

// scoreRecord is the stored shape: a flat record of three counters.
// Pointers tell a missing field apart from a zero one.
type scoreRecord struct {
	X    *int `json:"x"`
	O    *int `json:"o"`
	Draw *int `json:"draw"`
}

type kvScore struct {
	storage storage.Storage
	key     string
}

func NewScoreRepository(storage storage.Storage, key string) ScoreRepository {
	if key == "" {
		key = DefaultScoreKey
	}

	return &kvScore{
		storage: storage,
		key:     key,
	}
}

func (that *kvScore) Save(ctx context.Context, score entity.Score) error {
	if !score.IsValid() {
		return fmt.Errorf("%w: negative counter in %+v", apperror.ErrMalformedScore, score)
	}

	scoreJSON, err := json.Marshal(scoreRecord{X: &score.X, O: &score.O, Draw: &score.Draw})
	if err != nil {
		return fmt.Errorf("could not marshal score: %w", err)
	}

	if err = that.storage.Set(ctx, that.key, string(scoreJSON)); err != nil {
		return fmt.Errorf("%w: failed to save score: %w", apperror.ErrStorageUnavailable, err)
	}

	return nil
}

// Load returns apperror.ErrScoreNotFound when nothing is stored and
// apperror.ErrMalformedScore when the stored value can't be decoded.
func (that *kvScore) Load(ctx context.Context) (entity.Score, error) {
	response, err := that.storage.Get(ctx, that.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return entity.Score{}, apperror.ErrScoreNotFound
	}

	if err != nil {
		return entity.Score{}, fmt.Errorf("%w: failed to load score: %w", apperror.ErrStorageUnavailable, err)
	}

	var record scoreRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return entity.Score{}, fmt.Errorf("%w: %w", apperror.ErrMalformedScore, err)
	}

	if record.X == nil || record.O == nil || record.Draw == nil {
		return entity.Score{}, fmt.Errorf("%w: missing counter in %s", apperror.ErrMalformedScore, response)
	}

	score := entity.Score{X: *record.X, O: *record.O, Draw: *record.Draw}
	if !score.IsValid() {
		return entity.Score{}, fmt.Errorf("%w: negative counter in %s", apperror.ErrMalformedScore, response)
	}

	return score, nil
}

func (that *kvScore) Clear(ctx context.Context) error {
	if err := that.storage.Delete(ctx, that.key); err != nil {
		return fmt.Errorf("%w: failed to clear score: %w", apperror.ErrStorageUnavailable, err)
	}

	return nil
}
