// Package home is the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/screens/account"
	"github.com/abhisek/quizbox/internal/screens/board"
	"github.com/abhisek/quizbox/internal/screens/stats"
	"github.com/abhisek/quizbox/internal/store"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/theme"
	"github.com/abhisek/quizbox/internal/usage"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	tracker *usage.Tracker
	catalog *catalog.Catalog
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tracker *usage.Tracker, cat *catalog.Catalog, games store.GameRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: board.New(tracker, cat, games)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(tracker)}
			}
		}},
		{Label: "ACCOUNT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: account.New(tracker)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		tracker: tracker,
		catalog: cat,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render(marquee)
	subtitle := theme.Subtitle.Render("The terminal game show")

	catCount := len(h.catalog.Categories)
	qCount := h.catalog.Size()
	packs := theme.Hint.Render(fmt.Sprintf("%d categories · %d questions loaded", catCount, qCount))

	sections := []string{
		title,
		subtitle,
		"",
		h.menu.View(),
		packs,
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

const marquee = `
 ██████  ██  ██ ██ ██████ ██████   ██████  ██  ██
 ██  ██  ██  ██ ██   ██▀  ██  ██  ██  ██   ████
 ██  ██  ██  ██ ██  ▄██   ██████  ██  ██  ██  ██
 ██████▄ ██████ ██ ██████ ██████▄ ██████ ▄██  ██▄
`
