package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// GameController owns the board, the turn and the score tally of one session.
// It is not safe for concurrent use; the caller serializes input.
type GameController struct {
	game  entity.Game
	score entity.Score
}

func NewGameController() *GameController {
	return &GameController{
		game: entity.NewGame(),
	}
}

// ApplyMove places the current player's mark on cell. Invalid moves are
// rejected without changing any state; the reason is attached to the result.
func (that *GameController) ApplyMove(cell int) entity.MoveResult {
	player := that.game.CurrentPlayer

	if err := that.validateMove(cell); err != nil {
		return that.result(entity.OutcomeRejected, cell, player, err)
	}

	that.game.Board[cell] = player

	return that.result(that.updateGameStatus(player), cell, player, nil)
}

// Reset starts a fresh round. The score is kept.
func (that *GameController) Reset() entity.Game {
	that.game = entity.NewGame()

	return that.game
}

// ResetScore zeroes all counters. Confirmation is the caller's job.
func (that *GameController) ResetScore() entity.Score {
	that.score.Reset()

	return that.score
}

func (that *GameController) State() entity.Game {
	return that.game
}

func (that *GameController) Score() entity.Score {
	return that.score
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(cell int) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.game.Board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *GameController) updateGameStatus(player entity.Mark) entity.Outcome {
	if winner, line, ok := that.game.Board.Winner(); ok {
		that.game.Status = entity.StatusWon
		that.game.Winner = winner
		that.game.WinningLine = &line
		that.score.Record(winner)

		return entity.OutcomeWin
	}

	if that.game.Board.IsFull() {
		that.game.Status = entity.StatusDraw
		that.score.Record(entity.EmptyCell)

		return entity.OutcomeDraw
	}

	that.game.CurrentPlayer = player.Opponent()

	return entity.OutcomeContinue
}

func (that *GameController) result(outcome entity.Outcome, cell int, player entity.Mark, reason error) entity.MoveResult {
	return entity.MoveResult{
		Outcome: outcome,
		Cell:    cell,
		Player:  player,
		Game:    that.game,
		Score:   that.score,
		Reason:  reason,
	}
}
