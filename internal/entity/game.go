package entity

import "fmt"

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Opponent returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// IsTerminal reports whether no more moves are accepted until reset.
func (that Status) IsTerminal() bool {
	return that == StatusWon || that == StatusDraw
}

const BoardSize = 9

// Line is an index-triple of cells.
type Line [3]int

// WinCombos holds the 3 rows, 3 columns and 2 diagonals, in that order.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Contains reports whether cell is part of the line.
func (that Line) Contains(cell int) bool {
	for _, idx := range that {
		if idx == cell {
			return true
		}
	}
	return false
}

// Board is indexed 0-8 in row-major order.
type Board [BoardSize]Mark

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Winner returns the mark occupying a complete line and that line.
// The first completed line in WinCombos order is reported.
func (that *Board) Winner() (Mark, Line, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, combo, true
		}
	}

	return EmptyCell, Line{}, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells returns the indexes of the unoccupied cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for idx, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, idx)
		}
	}

	return cells
}

// Game is the state of a single round.
type Game struct {
	Board         Board  `json:"board"`
	CurrentPlayer Mark   `json:"current_player"`
	Status        Status `json:"status"`
	Winner        Mark   `json:"winner,omitempty"`
	WinningLine   *Line  `json:"winning_line,omitempty"`
}

func NewGame() Game {
	return Game{
		CurrentPlayer: PlayerX,
		Status:        StatusInProgress,
	}
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) String() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("%s won", that.Winner)
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("%s to move", that.CurrentPlayer)
	}
}
