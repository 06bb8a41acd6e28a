// Package board deals and renders the game board: a grid of category
// columns and point-value rows.
package board

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/history"
	"github.com/abhisek/quizbox/internal/router"
	"github.com/abhisek/quizbox/internal/screen"
	"github.com/abhisek/quizbox/internal/screens/question"
	"github.com/abhisek/quizbox/internal/store"
	"github.com/abhisek/quizbox/internal/ui/layout"
	"github.com/abhisek/quizbox/internal/usage"
)

const (
	maxColumns  = 5
	dealTimeout = 30 * time.Second
)

var pointRows = []int{100, 200, 300, 400, 500}

// column is one dealt category with its per-row questions.
type column struct {
	category  catalog.Category
	questions map[int]catalog.Question // points -> question; missing = no fresh question left
}

// dealtMsg carries the result of the background deal.
type dealtMsg struct {
	gameID   string
	columns  []column
	assigned map[string]history.Assignment
	err      error
}

// savedMsg reports a background game-record write.
type savedMsg struct{ err error }

// BoardScreen runs one game of quizbox.
type BoardScreen struct {
	tracker *usage.Tracker
	catalog *catalog.Catalog
	games   store.GameRepo

	gameID   string
	columns  []column
	assigned map[string]history.Assignment
	answered map[string]bool
	score    int

	curCol, curRow int

	dealing    bool
	dealErr    error
	finished   bool
	freshCycle bool
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

// New creates a board screen. The board is dealt asynchronously by Init.
func New(tracker *usage.Tracker, cat *catalog.Catalog, games store.GameRepo) *BoardScreen {
	return &BoardScreen{
		tracker:  tracker,
		catalog:  cat,
		games:    games,
		answered: make(map[string]bool),
		dealing:  true,
	}
}

func (s *BoardScreen) Init() tea.Cmd {
	return s.deal
}

// deal picks categories and questions, records the game, and marks the
// dealt questions as used in one batch.
func (s *BoardScreen) deal() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), dealTimeout)
	defer cancel()

	// Packs may have been imported since the last game; recount.
	s.tracker.RecheckPool()
	s.tracker.UpdatePool(ctx, s.catalog)

	candidates := make([]catalog.Category, 0, len(s.catalog.Categories))
	for _, c := range s.catalog.Categories {
		if len(c.Questions) > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return dealtMsg{err: fmt.Errorf("no question packs loaded")}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > maxColumns {
		candidates = candidates[:maxColumns]
	}

	columns := make([]column, 0, len(candidates))
	assigned := make(map[string]history.Assignment)

	for _, cat := range candidates {
		col := column{category: cat, questions: make(map[int]catalog.Question)}
		for _, points := range pointRows {
			avail := s.tracker.AvailableQuestions(ctx, cat.Questions, points, cat.ID)
			if len(avail) == 0 {
				continue
			}
			q := avail[rand.Intn(len(avail))]
			col.questions[points] = q
			assigned[buttonKey(cat.ID, points)] = history.Assignment{
				Key:        catalog.Fingerprint(q, cat.ID),
				QuestionID: q.ID,
				CategoryID: cat.ID,
				Points:     points,
			}
		}
		columns = append(columns, col)
	}

	if len(assigned) == 0 {
		return dealtMsg{err: fmt.Errorf("no unused questions left for a board")}
	}

	rec := &history.GameRecord{
		ID:        uuid.NewString(),
		AccountID: s.tracker.AccountID(),
		StartedAt: time.Now(),
		Format:    history.FormatAssigned,
		Assigned:  assigned,
	}
	if err := s.games.Append(ctx, rec); err != nil {
		return dealtMsg{err: fmt.Errorf("record game: %w", err)}
	}

	s.tracker.MarkBatchUsed(assigned)

	return dealtMsg{gameID: rec.ID, columns: columns, assigned: assigned}
}

func buttonKey(categoryID string, points int) string {
	return fmt.Sprintf("%s:%d", categoryID, points)
}

func (s *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dealtMsg:
		s.dealing = false
		if msg.err != nil {
			s.dealErr = msg.err
			return s, nil
		}
		s.gameID = msg.gameID
		s.columns = msg.columns
		s.assigned = msg.assigned
		s.freshCycle = s.tracker.Statistics(context.Background()).CycleComplete
		return s, nil

	case question.AnsweredMsg:
		return s, s.recordAnswer(msg)

	case savedMsg:
		// Persist failures degrade silently; the in-memory board state
		// is still correct for this session.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *BoardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.dealing || s.dealErr != nil {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if s.curCol > 0 {
			s.curCol--
		}
	case "right", "l":
		if s.curCol < len(s.columns)-1 {
			s.curCol++
		}
	case "up", "k":
		if s.curRow > 0 {
			s.curRow--
		}
	case "down", "j":
		if s.curRow < len(pointRows)-1 {
			s.curRow++
		}
	case "enter", "space":
		return s, s.openButton()
	}

	return s, nil
}

// openButton pushes the question screen for the focused button.
func (s *BoardScreen) openButton() tea.Cmd {
	col := s.columns[s.curCol]
	points := pointRows[s.curRow]
	key := buttonKey(col.category.ID, points)

	q, ok := col.questions[points]
	if !ok || s.answered[key] {
		return nil
	}

	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: question.New(key, q, col.category.Name),
		}
	}
}

// recordAnswer marks the button spent, re-marks its key used, and
// persists the updated assignment map.
func (s *BoardScreen) recordAnswer(msg question.AnsweredMsg) tea.Cmd {
	a, ok := s.assigned[msg.ButtonKey]
	if !ok || s.answered[msg.ButtonKey] {
		return nil
	}

	s.answered[msg.ButtonKey] = true
	a.Answered = true
	s.assigned[msg.ButtonKey] = a
	if msg.Correct {
		s.score += a.Points
	} else {
		s.score -= a.Points
	}

	// Assignment already marked the key at deal time; re-marking on
	// play keeps the count right if the deal write was lost.
	s.tracker.MarkKeyUsed(a.UsageKey())

	allDone := len(s.answered) == len(s.assigned)
	s.finished = allDone

	gameID := s.gameID
	snapshot := make(map[string]history.Assignment, len(s.assigned))
	for k, v := range s.assigned {
		snapshot[k] = v
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.games.UpdateAssignments(ctx, gameID, snapshot); err != nil {
			return savedMsg{err: err}
		}
		if allDone {
			return savedMsg{err: s.games.Finish(ctx, gameID, time.Now())}
		}
		return savedMsg{}
	}
}

func (s *BoardScreen) Title() string {
	return "Game Board"
}

func (s *BoardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Leave game"},
	}
}
