// Package stats shows the question-pool progress summary.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/ui/components"
	"github.com/abhisek/quizbox/internal/ui/theme"
	"github.com/abhisek/quizbox/internal/usage"
)

const syncWait = 2 * time.Second

// loadedMsg carries the stats computed off the event loop.
type loadedMsg struct {
	stats  usage.Stats
	synced bool
}

// StatsScreen displays pool accounting for the signed-in account.
type StatsScreen struct {
	tracker *usage.Tracker

	loading bool
	stats   usage.Stats
	synced  bool
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a stats screen. Statistics load asynchronously because
// the first read may hit the remote store.
func New(tracker *usage.Tracker) *StatsScreen {
	return &StatsScreen{tracker: tracker, loading: true}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load
}

func (s *StatsScreen) load() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Give history reconciliation a moment to land so the numbers
	// include games played on other devices.
	synced := s.tracker.WaitForSync(ctx, syncWait)
	return loadedMsg{stats: s.tracker.Statistics(ctx), synced: synced}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		s.loading = false
		s.stats = m.stats
		s.synced = m.synced
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading statistics..."))
	}

	account := s.tracker.AccountID()
	if account == "" {
		account = "local (not signed in)"
	}

	var lines []string
	lines = append(lines, theme.Title.Render("Question Pool"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Account          %s", account)))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Pool size        %d", s.stats.PoolSize)))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Played           %d", s.stats.UsedCount)))
	lines = append(lines, theme.Body.Render(fmt.Sprintf("Remaining        %d", s.stats.UnusedCount)))
	lines = append(lines, "")

	bar := components.NewProgressBar("Cycle", s.stats.CompletionPercentage/100, true, 44)
	lines = append(lines, bar.View())

	if s.stats.CycleComplete {
		lines = append(lines, "")
		lines = append(lines, theme.Correct.Render("Cycle complete — the pool has been reset."))
	}
	if !s.synced {
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("History sync still running; counts may lag."))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}
