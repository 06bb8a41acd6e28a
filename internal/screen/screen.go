package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbox/internal/ui/layout"
)

// Screen is one view on the router's stack: home, the game board, a
// question, stats, or account. Only the active screen receives
// messages.
type Screen interface {
	// Init returns the command to run when the screen becomes active
	// for the first time.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus any
	// follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body; the frame draws header and footer
	// around it.
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer
// instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
