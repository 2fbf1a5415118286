// Package tui renders a game session in the terminal and turns key presses
// into session calls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type gameSession interface {
	Play(ctx context.Context, cell int) entity.MoveResult
	NewGame() entity.Game
	ResetScores(ctx context.Context) entity.Score
	State() entity.Game
	Score() entity.Score
	Players() entity.Players
}

type model struct {
	ctx     context.Context
	session gameSession
	keys    keyMap
	help    help.Model

	cursor       int
	game         entity.Game
	score        entity.Score
	confirmReset bool
	notice       string
	quitting     bool
}

func newModel(ctx context.Context, session gameSession) model {
	return model{
		ctx:     ctx,
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
		game:    session.State(),
		score:   session.Score(),
	}
}

// Run blocks until the player quits or ctx is cancelled.
func Run(ctx context.Context, session gameSession, input io.Reader, output io.Writer) error {
	program := tea.NewProgram(
		newModel(ctx, session),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m model) handleKeyMsg(msg tea.KeyMsg) (model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirmReset {
		return m.handleResetConfirmation(msg), nil
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, -3)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 3)
	case key.Matches(msg, m.keys.Left):
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor%3 < 2 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Place):
		m = m.place(m.cursor)
	case key.Matches(msg, m.keys.NewGame):
		m.game = m.session.NewGame()
		m.cursor = 0
	case key.Matches(msg, m.keys.ResetScore):
		m.confirmReset = true
	default:
		if cell, ok := digitCell(msg.String()); ok {
			m.cursor = cell
			m = m.place(cell)
		}
	}

	return m, nil
}

func (m model) handleResetConfirmation(msg tea.KeyMsg) model {
	m.confirmReset = false

	if !key.Matches(msg, m.keys.Confirm) {
		m.notice = "Score reset cancelled."
		return m
	}

	m.score = m.session.ResetScores(m.ctx)
	m.notice = "Scores reset."

	return m
}

func (m model) place(cell int) model {
	result := m.session.Play(m.ctx, cell)

	m.game = result.Game
	m.score = result.Score

	if result.IsRejected() {
		m.notice = rejectionNotice(result.Reason)
	}

	return m
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic-Tac-Toe"))
	b.WriteString("\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusText()))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(m.scoreText()))
	b.WriteString("\n")

	switch {
	case m.confirmReset:
		b.WriteString(warningStyle.Render("Reset all scores? (y/n)"))
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(hintStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m model) renderBoard() string {
	separator := gridStyle.Render(strings.Repeat("─", cellWidth) + "┼" + strings.Repeat("─", cellWidth) + "┼" + strings.Repeat("─", cellWidth))
	pipe := gridStyle.Render("│")

	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, m.renderCell(row*3+col))
		}
		rows = append(rows, strings.Join(cells, pipe))
	}

	return strings.Join(rows, "\n"+separator+"\n")
}

func (m model) renderCell(cell int) string {
	mark := m.game.Board[cell]

	var rendered string
	switch {
	case m.game.WinningLine != nil && m.game.WinningLine.Contains(cell):
		rendered = winningCellStyle.Render(string(mark))
	case mark.IsEmpty():
		rendered = emptyCellStyle.Render(fmt.Sprintf("%d", cell+1))
	default:
		rendered = markStyles[string(mark)].Render(string(mark))
	}

	// cells are inert once the game is over
	if cell == m.cursor && m.game.IsInProgress() {
		return cursorStyle.Render(rendered)
	}

	return rendered
}

func (m model) statusText() string {
	players := m.session.Players()

	switch m.game.Status {
	case entity.StatusWon:
		return fmt.Sprintf("%s wins! Press n for a new game.", players.ByMark(m.game.Winner).Name)
	case entity.StatusDraw:
		return "It's a draw! Press n for a new game."
	default:
		current := players.ByMark(m.game.CurrentPlayer)
		return fmt.Sprintf("%s's turn (%s)", current.Name, current.Mark)
	}
}

func (m model) scoreText() string {
	players := m.session.Players()

	return fmt.Sprintf("%s: %d   %s: %d   Draws: %d",
		players.X.Name, m.score.X,
		players.O.Name, m.score.O,
		m.score.Draw,
	)
}

func moveCursor(cursor, delta int) int {
	if next := cursor + delta; entity.IsValidCell(next) {
		return next
	}

	return cursor
}

// digitCell maps the keys 1-9 to cells 0-8.
func digitCell(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}

	return int(s[0] - '1'), true
}

func rejectionNotice(reason error) string {
	switch {
	case errors.Is(reason, apperror.ErrCellOccupied):
		return "That cell is taken."
	case errors.Is(reason, apperror.ErrGameFinished):
		return "The game is over. Press n for a new game."
	default:
		return "That move is not allowed."
	}
}
