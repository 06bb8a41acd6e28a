package board

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/history"
	"github.com/abhisek/quizbox/internal/remote"
	"github.com/abhisek/quizbox/internal/screens/question"
	"github.com/abhisek/quizbox/internal/usage"
)

// fakeFallback is an in-memory store.FallbackRepo.
type fakeFallback struct {
	mu   sync.Mutex
	docs map[string]*remote.Document
}

func (f *fakeFallback) LoadDoc(ctx context.Context, key string) (*remote.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[key]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (f *fakeFallback) SaveDoc(ctx context.Context, key string, doc *remote.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.docs == nil {
		f.docs = make(map[string]*remote.Document)
	}
	f.docs[key] = doc.Clone()
	return nil
}

// fakeGames is an in-memory store.GameRepo.
type fakeGames struct {
	mu    sync.Mutex
	games []history.GameRecord
}

func (g *fakeGames) ListGames(ctx context.Context, accountID string) ([]history.GameRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]history.GameRecord(nil), g.games...), nil
}

func (g *fakeGames) Append(ctx context.Context, rec *history.GameRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.games = append(g.games, *rec)
	return nil
}

func (g *fakeGames) UpdateAssignments(ctx context.Context, gameID string, assigned map[string]history.Assignment) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.games {
		if g.games[i].ID == gameID {
			g.games[i].Assigned = assigned
			return nil
		}
	}
	return fmt.Errorf("game %s not found", gameID)
}

func (g *fakeGames) Finish(ctx context.Context, gameID string, at time.Time) error {
	return nil
}

func (g *fakeGames) Delete(ctx context.Context, gameID string) error {
	return nil
}

func testCatalog(categories, perRow int) *catalog.Catalog {
	cat := &catalog.Catalog{}
	for c := 0; c < categories; c++ {
		id := fmt.Sprintf("cat%d", c)
		col := catalog.Category{ID: id, Name: fmt.Sprintf("Category %d", c)}
		for _, points := range pointRows {
			for n := 0; n < perRow; n++ {
				col.Questions = append(col.Questions, catalog.Question{
					ID:         fmt.Sprintf("%s-q%d-%06d", id, points, n),
					CategoryID: id,
					Text:       fmt.Sprintf("question %d/%d/%d", c, points, n),
					Answer:     "answer",
					Points:     points,
				})
			}
		}
		cat.Categories = append(cat.Categories, col)
	}
	return cat
}

func newTestBoard(t *testing.T, cat *catalog.Catalog) (*BoardScreen, *fakeGames) {
	t.Helper()
	games := &fakeGames{}
	tracker := usage.New(usage.Options{Fallback: &fakeFallback{}})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = tracker.Flush(ctx)
	})
	return New(tracker, cat, games), games
}

func TestDealFillsBoard(t *testing.T) {
	s, games := newTestBoard(t, testCatalog(6, 2))

	msg := s.deal().(dealtMsg)
	require.NoError(t, msg.err)

	assert.Len(t, msg.columns, maxColumns)
	assert.Len(t, msg.assigned, maxColumns*len(pointRows))

	// Every column has one question per point row, matching its row.
	for _, col := range msg.columns {
		for _, points := range pointRows {
			q, ok := col.questions[points]
			require.True(t, ok)
			assert.Equal(t, points, q.Points)
			assert.Equal(t, col.category.ID, q.CategoryID)
		}
	}

	// The dealt game was appended with assigned-format records.
	recs, err := games.ListGames(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, history.FormatAssigned, recs[0].Format)
	assert.Len(t, recs[0].Assigned, maxColumns*len(pointRows))
}

func TestDealMarksQuestionsUsed(t *testing.T) {
	cat := testCatalog(2, 1)
	s, _ := newTestBoard(t, cat)

	msg := s.deal().(dealtMsg)
	require.NoError(t, msg.err)

	stats := s.tracker.Statistics(context.Background())
	assert.Equal(t, len(msg.assigned), stats.UsedCount)
}

func TestConsecutiveDealsAvoidRepeats(t *testing.T) {
	cat := testCatalog(2, 2)
	s, games := newTestBoard(t, cat)

	first := s.deal().(dealtMsg)
	require.NoError(t, first.err)

	second := New(s.tracker, cat, games).deal().(dealtMsg)
	require.NoError(t, second.err)

	seen := make(map[string]bool)
	for _, a := range first.assigned {
		seen[a.Key] = true
	}
	for _, a := range second.assigned {
		assert.False(t, seen[a.Key], "question %s dealt twice", a.Key)
	}
}

func TestDealRecountsPoolAfterImport(t *testing.T) {
	cat := testCatalog(1, 1)
	s, games := newTestBoard(t, cat)

	msg := s.deal().(dealtMsg)
	require.NoError(t, msg.err)
	before := s.tracker.Statistics(context.Background()).PoolSize

	// A pack imported between games grows the catalog; the next deal
	// must recount the pool.
	cat.Merge(&catalog.Catalog{Categories: []catalog.Category{{
		ID:   "bonus",
		Name: "Bonus",
		Questions: []catalog.Question{{
			ID:         "bonus-q100-000001",
			CategoryID: "bonus",
			Text:       "bonus question",
			Answer:     "answer",
			Points:     100,
		}},
	}}})

	second := New(s.tracker, cat, games).deal().(dealtMsg)
	require.NoError(t, second.err)

	after := s.tracker.Statistics(context.Background()).PoolSize
	assert.Equal(t, before+1, after)
}

func TestDealEmptyCatalog(t *testing.T) {
	s, _ := newTestBoard(t, &catalog.Catalog{})

	msg := s.deal().(dealtMsg)
	require.Error(t, msg.err)
}

func TestAnswerScoring(t *testing.T) {
	s, _ := newTestBoard(t, testCatalog(1, 1))

	msg := s.deal().(dealtMsg)
	require.NoError(t, msg.err)
	s.Update(msg)

	var key string
	var points int
	for k, a := range s.assigned {
		key, points = k, a.Points
		break
	}

	_, cmd := s.Update(question.AnsweredMsg{ButtonKey: key, Correct: true})
	require.NotNil(t, cmd)
	cmd() // run the persist command

	assert.Equal(t, points, s.score)
	assert.True(t, s.answered[key])
	assert.True(t, s.assigned[key].Answered)

	// A replayed verdict for the same button is ignored.
	_, cmd = s.Update(question.AnsweredMsg{ButtonKey: key, Correct: true})
	assert.Nil(t, cmd)
	assert.Equal(t, points, s.score)
}

func TestWrongAnswerDeductsPoints(t *testing.T) {
	s, _ := newTestBoard(t, testCatalog(1, 1))

	msg := s.deal().(dealtMsg)
	require.NoError(t, msg.err)
	s.Update(msg)

	var key string
	var points int
	for k, a := range s.assigned {
		key, points = k, a.Points
		break
	}

	_, cmd := s.Update(question.AnsweredMsg{ButtonKey: key, Correct: false})
	require.NotNil(t, cmd)
	assert.Equal(t, -points, s.score)
}

func TestGameFinishesWhenAllAnswered(t *testing.T) {
	s, _ := newTestBoard(t, testCatalog(1, 1))

	msg := s.deal().(dealtMsg)
	require.NoError(t, msg.err)
	s.Update(msg)

	for key := range s.assigned {
		_, cmd := s.Update(question.AnsweredMsg{ButtonKey: key, Correct: true})
		if cmd != nil {
			cmd()
		}
	}

	assert.True(t, s.finished)
}
