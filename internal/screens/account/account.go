// Package account lets the player sign in or out of a shared account.
package account

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/ui/theme"
	"github.com/abhisek/quizbox/internal/usage"
)

// AccountScreen switches the tracker to a different account.
type AccountScreen struct {
	tracker *usage.Tracker
	input   components.TextInput
}

var _ screen.Screen = (*AccountScreen)(nil)
var _ screen.KeyHintProvider = (*AccountScreen)(nil)

// New creates the account screen, pre-filled with the current account.
func New(tracker *usage.Tracker) *AccountScreen {
	input := components.NewTextInput("account id (empty for local play)", 64)
	input.Model.SetValue(tracker.AccountID())
	return &AccountScreen{
		tracker: tracker,
		input:   input,
	}
}

func (s *AccountScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AccountScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		id := strings.TrimSpace(s.input.Value())
		// SetAccount restarts mirror state and kicks off history
		// reconciliation in the background.
		s.tracker.SetAccount(id)
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AccountScreen) View(width, height int) string {
	current := s.tracker.AccountID()
	if current == "" {
		current = "local (not signed in)"
	}

	content := theme.Title.Render("Account") + "\n\n" +
		theme.Body.Render("Current: "+current) + "\n\n" +
		s.input.View() + "\n\n" +
		theme.Hint.Render("Usage progress is shared between devices signed into the same account.")

	card := theme.Card.Width(width - 20).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *AccountScreen) Title() string {
	return "Account"
}

func (s *AccountScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Switch"},
		{Key: "Esc", Description: "Cancel"},
	}
}
