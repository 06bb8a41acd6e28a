package board

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/ui/theme"
)

const (
	cellWidth  = 14
	cellHeight = 1
)

func (s *BoardScreen) View(width, height int) string {
	if s.dealing {
		return center(width, height, theme.Hint.Render("Dealing the board..."))
	}
	if s.dealErr != nil {
		msg := theme.Incorrect.Render("Cannot start a game") + "\n\n" +
			theme.Body.Render(s.dealErr.Error()) + "\n\n" +
			theme.Hint.Render("Import a question pack with: quizbox import <pack.json>")
		return center(width, height, msg)
	}

	var rows []string
	rows = append(rows, s.renderHeaderRow())
	for rowIdx, points := range pointRows {
		rows = append(rows, s.renderPointRow(rowIdx, points))
	}

	grid := strings.Join(rows, "\n")

	var footer []string
	footer = append(footer, theme.Body.Render(fmt.Sprintf("Score: %d", s.score)))
	if s.freshCycle {
		footer = append(footer, theme.Correct.Render("Every question has been played — the pool starts fresh!"))
	}
	if s.finished {
		footer = append(footer, theme.Correct.Render(fmt.Sprintf("Game over! Final score: %d", s.score)))
	}

	content := grid + "\n\n" + strings.Join(footer, "\n")
	return center(width, height, content)
}

func (s *BoardScreen) renderHeaderRow() string {
	cells := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		name := col.category.Name
		if len(name) > cellWidth-2 {
			name = name[:cellWidth-2]
		}
		cells = append(cells, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(name))
	}
	return strings.Join(cells, " ")
}

func (s *BoardScreen) renderPointRow(rowIdx, points int) string {
	cells := make([]string, 0, len(s.columns))
	for colIdx, col := range s.columns {
		key := buttonKey(col.category.ID, points)
		_, hasQuestion := col.questions[points]
		spent := !hasQuestion || s.answered[key]
		focused := colIdx == s.curCol && rowIdx == s.curRow

		label := fmt.Sprintf("%d", points)
		if spent {
			label = "—"
		}

		style := theme.ButtonOpen
		if spent {
			style = theme.ButtonSpent
		}
		if focused {
			style = theme.ButtonFocused
		}

		cells = append(cells, style.Width(cellWidth).Height(cellHeight).Render(label))
	}
	return strings.Join(cells, " ")
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
