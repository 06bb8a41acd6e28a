package usage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/history"
	"github.com/abhisek/quizbox/internal/remote"
)

// memFallback implements store.FallbackRepo in memory.
type memFallback struct {
	mu      sync.Mutex
	docs    map[string]*remote.Document
	loadErr error
	saveErr error
}

func newMemFallback() *memFallback {
	return &memFallback{docs: make(map[string]*remote.Document)}
}

func (f *memFallback) LoadDoc(_ context.Context, key string) (*remote.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.docs[key].Clone(), nil
}

func (f *memFallback) SaveDoc(_ context.Context, key string, doc *remote.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.docs[key] = doc.Clone()
	return nil
}

func (f *memFallback) doc(key string) *remote.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs[key].Clone()
}

// memLog implements history.Log in memory.
type memLog struct {
	mu      sync.Mutex
	games   []history.GameRecord
	err     error
	delay   time.Duration
	listed  int
}

func (l *memLog) ListGames(ctx context.Context, _ string) ([]history.GameRecord, error) {
	l.mu.Lock()
	l.listed++
	games := make([]history.GameRecord, len(l.games))
	copy(games, l.games)
	err := l.err
	delay := l.delay
	l.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (l *memLog) add(rec history.GameRecord) {
	rec.ResolveFormat()
	l.mu.Lock()
	l.games = append(l.games, rec)
	l.mu.Unlock()
}

func (l *memLog) remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, g := range l.games {
		if g.ID == id {
			l.games = append(l.games[:i], l.games[i+1:]...)
			return
		}
	}
}

func (l *memLog) listCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listed
}

// countingStore wraps a Store and counts Load calls.
type countingStore struct {
	remote.Store
	mu    sync.Mutex
	loads int
	gate  chan struct{} // when set, Load blocks until the gate closes
}

func (c *countingStore) Load(ctx context.Context, accountID string) (*remote.Document, error) {
	c.mu.Lock()
	c.loads++
	gate := c.gate
	c.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return c.Store.Load(ctx, accountID)
}

func (c *countingStore) loadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

// makeCatalog builds one category with n questions carrying durable
// IDs.
func makeCatalog(categoryID string, n int) *catalog.Catalog {
	cat := catalog.Category{ID: categoryID, Name: categoryID}
	for i := range n {
		cat.Questions = append(cat.Questions, catalog.Question{
			ID:         fmt.Sprintf("%s-%04d", categoryID, i),
			CategoryID: categoryID,
			Text:       fmt.Sprintf("question %d", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Points:     (i%5 + 1) * 100,
		})
	}
	return &catalog.Catalog{Categories: []catalog.Category{cat}}
}
