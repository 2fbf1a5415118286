package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type gameController interface {
	ApplyMove(cell int) entity.MoveResult
	Reset() entity.Game
	ResetScore() entity.Score
	State() entity.Game
	Score() entity.Score
}

type scoreRepo interface {
	Save(ctx context.Context, score entity.Score) error
	Load(ctx context.Context) (entity.Score, error)
	Clear(ctx context.Context) error
}

// Session drives one game controller on behalf of a UI and mirrors the
// score into the score repository. Persistence failures are logged and
// never change in-memory state.
type Session struct {
	ID string

	logger     *slog.Logger
	controller gameController
	scoreRepo  scoreRepo
	players    entity.Players
}

func NewSession(logger *slog.Logger, controller gameController, scoreRepo scoreRepo, players entity.Players) *Session {
	id := uuid.NewString()

	return &Session{
		ID:         id,
		logger:     logger.With("component", "session", "session_id", id),
		controller: controller,
		scoreRepo:  scoreRepo,
		players:    players,
	}
}

// Start zeroes the score and drops whatever was persisted by earlier
// sessions. Scores never carry over between sessions.
func (that *Session) Start(ctx context.Context) entity.Score {
	log := that.logger.With("method", "Start")

	score := that.controller.ResetScore()

	if err := that.scoreRepo.Clear(ctx); err != nil {
		log.Warn("failed to clear stored score", "error", err)
	}

	log.Info("session started")

	return score
}

func (that *Session) Play(ctx context.Context, cell int) entity.MoveResult {
	log := that.logger.With("method", "Play")

	result := that.controller.ApplyMove(cell)

	switch {
	case result.IsRejected():
		log.Debug("move rejected", "cell", cell, "player", result.Player, "reason", result.Reason)
	case result.IsTerminal():
		log.Info("game finished",
			"outcome", result.Outcome,
			"result", result.Game.String(),
			"x", result.Score.X, "o", result.Score.O, "draw", result.Score.Draw,
		)
		that.saveScore(ctx, result.Score)
	default:
		log.Debug("move applied", "cell", cell, "player", result.Player)
	}

	return result
}

func (that *Session) NewGame() entity.Game {
	that.logger.Debug("new game")

	return that.controller.Reset()
}

// ResetScores zeroes the tally unconditionally and persists the zeroed tally.
func (that *Session) ResetScores(ctx context.Context) entity.Score {
	score := that.controller.ResetScore()
	that.logger.Info("scores reset")

	that.saveScore(ctx, score)

	return score
}

func (that *Session) State() entity.Game {
	return that.controller.State()
}

func (that *Session) Score() entity.Score {
	return that.controller.Score()
}

func (that *Session) Players() entity.Players {
	return that.players
}

func (that *Session) saveScore(ctx context.Context, score entity.Score) {
	if err := that.scoreRepo.Save(ctx, score); err != nil {
		that.logger.Warn("failed to save score", "method", "saveScore", "error", err)
	}
}

// StoredScore reads the persisted tally. Anything unreadable counts as
// absent; only unexpected failures are logged.
func StoredScore(ctx context.Context, logger *slog.Logger, scoreRepo scoreRepo) (entity.Score, bool) {
	score, err := scoreRepo.Load(ctx)
	if err == nil {
		return score, true
	}

	if !errors.Is(err, apperror.ErrScoreNotFound) {
		logger.Warn("failed to load stored score", "error", err)
	}

	return entity.Score{}, false
}
