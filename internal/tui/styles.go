package tui

import "github.com/charmbracelet/lipgloss"

const cellWidth = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13")).
			MarginBottom(1)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	emptyCellStyle = cellStyle.
			Foreground(lipgloss.Color("8")).
			Faint(true)

	markStyles = map[string]lipgloss.Style{
		"X": cellStyle.Foreground(lipgloss.Color("12")).Bold(true),
		"O": cellStyle.Foreground(lipgloss.Color("11")).Bold(true),
	}

	winningCellStyle = cellStyle.
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("2")).
				Bold(true)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	gridStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)
