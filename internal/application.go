package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/tui"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - plays one session in the terminal until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config, input io.Reader, output io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	scoreRepo, closeStorage := openSessionScores(ctx, logger, conf)
	defer closeStorage()

	gameController := tictactoe.NewGameController()
	players := entity.NewPlayers(conf.Players.X, conf.Players.O)
	session := usecase.NewSession(logger, gameController, scoreRepo, players)

	session.Start(ctx)

	log.Info("Starting terminal UI", "storage", conf.Storage.Driver, "session_id", session.ID)
	if err := tui.Run(ctx, session, input, output); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished", "session_id", session.ID)

	return nil
}

// openSessionScores never fails: an unreachable store is replaced by an
// in-memory one so the session can still be played.
func openSessionScores(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ScoreRepository, func()) {
	scoreRepo, closeStorage, err := OpenScoreRepository(ctx, logger, conf)
	if err == nil {
		return scoreRepo, closeStorage
	}

	logger.Warn("storage unavailable, scores are kept in memory only",
		"component", "app", "storage", conf.Storage.Driver, "error", err)

	return repository.NewScoreRepository(storage.NewMemoryStorage(), conf.Storage.Key), func() {}
}

// OpenScoreRepository opens the configured storage. The returned func closes it.
func OpenScoreRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	log := logger.With("component", "app")

	kvStorage, err := storage.New(ctx, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	closeStorage := func() {
		if err := kvStorage.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}

	return repository.NewScoreRepository(kvStorage, conf.Storage.Key), closeStorage, nil
}
