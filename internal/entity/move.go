package entity

type Outcome string

const (
	OutcomeRejected Outcome = "rejected"
	OutcomeContinue Outcome = "continue"
	OutcomeWin      Outcome = "win"
	OutcomeDraw     Outcome = "draw"
)

// MoveResult is what the engine reports back for every applied or rejected move.
// Game and Score are snapshots taken after the move.
type MoveResult struct {
	Outcome Outcome
	Cell    int
	Player  Mark
	Game    Game
	Score   Score

	// Reason is set for rejected moves only.
	Reason error
}

func (that MoveResult) IsRejected() bool {
	return that.Outcome == OutcomeRejected
}

func (that MoveResult) IsTerminal() bool {
	return that.Outcome == OutcomeWin || that.Outcome == OutcomeDraw
}
