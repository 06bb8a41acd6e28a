// Package question renders a single revealed board button: the clue,
// then the answer, then scoring.
package question

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
)

// AnsweredMsg reports back to the board that this button has been
// played out.
type AnsweredMsg struct {
	// ButtonKey identifies the board button ("geo:300").
	ButtonKey string
	// Correct is whether the host judged the response right.
	Correct bool
}

type phase int

const (
	phaseClue phase = iota
	phaseAnswer
)

// QuestionScreen shows one question for a board button.
type QuestionScreen struct {
	buttonKey    string
	question     catalog.Question
	categoryName string
	phase        phase
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a question screen for the given board button.
func New(buttonKey string, q catalog.Question, categoryName string) *QuestionScreen {
	return &QuestionScreen{
		buttonKey:    buttonKey,
		question:     q,
		categoryName: categoryName,
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseClue:
		switch kmsg.String() {
		case "enter", "space":
			s.phase = phaseAnswer
		}
	case phaseAnswer:
		switch kmsg.String() {
		case "y", "enter":
			return s, s.finish(true)
		case "n":
			return s, s.finish(false)
		}
	}

	return s, nil
}

// finish pops back to the board, handing it the verdict through the
// pop so the board is the screen that receives it.
func (s *QuestionScreen) finish(correct bool) tea.Cmd {
	key := s.buttonKey
	return func() tea.Msg {
		return router.PopScreenMsg{Result: AnsweredMsg{ButtonKey: key, Correct: correct}}
	}
}

func (s *QuestionScreen) View(width, height int) string {
	banner := theme.Subtitle.Render(fmt.Sprintf("%s · %d points", s.categoryName, s.question.Points))

	clue := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 20).
		Align(lipgloss.Center).
		Render(s.question.Text)

	var bottom string
	switch s.phase {
	case phaseClue:
		bottom = theme.Hint.Render("Press Enter to reveal the answer")
	case phaseAnswer:
		answer := lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Width(width - 20).
			Align(lipgloss.Center).
			Render(s.question.Answer)
		bottom = answer + "\n\n" + theme.Hint.Render("Did they get it?  y = correct   n = wrong")
	}

	card := theme.Card.Width(width - 12).Render(
		banner + "\n\n" + clue + "\n\n" + bottom,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuestionScreen) Title() string {
	return s.categoryName
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseClue {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "y", Description: "Correct"},
		{Key: "n", Description: "Wrong"},
	}
}
