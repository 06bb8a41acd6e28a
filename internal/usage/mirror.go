package usage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/abhisek/quizbox/internal/remote"
	"github.com/abhisek/quizbox/internal/store"
)

// mirror is the in-process cache of the usage document. It loads once
// per account (remote first, local fallback on error or when signed
// out) and is afterwards the single mutation point for the usage map.
type mirror struct {
	remote   remote.Store
	fallback store.FallbackRepo

	// group collapses concurrent loads for the same account into one
	// remote read.
	group singleflight.Group

	mu        sync.Mutex
	accountID string
	usage     UsageMap         // nil until the first load
	doc       *remote.Document // last loaded document, holds reset markers
}

func newMirror(rs remote.Store, fb store.FallbackRepo) *mirror {
	return &mirror{remote: rs, fallback: fb}
}

// reset drops all cached state and rebinds the mirror to an account.
func (m *mirror) reset(accountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountID = accountID
	m.usage = nil
	m.doc = nil
}

// get returns a snapshot of the usage map, loading it first if needed.
// It never fails: a dead remote degrades to the fallback store, and a
// dead fallback degrades to an empty map.
func (m *mirror) get(ctx context.Context) UsageMap {
	m.ensure(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.usage.Clone()
}

// update applies fn to the usage map under the mirror's lock and
// returns a snapshot of the result plus fn's changed report. All
// mutations (mark used, resets, reconciliation merges) go through here.
func (m *mirror) update(ctx context.Context, fn func(UsageMap) bool) (UsageMap, bool) {
	m.ensure(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	changed := fn(m.usage)
	return m.usage.Clone(), changed
}

// set replaces the usage map wholesale. Prefer update for read-modify
// sequences; set is for callers that rebuilt the map from a fresh
// remote read.
func (m *mirror) set(u UsageMap) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage = u.Clone()
}

// document returns the last loaded document (markers included). Never
// nil.
func (m *mirror) document(ctx context.Context) *remote.Document {
	m.ensure(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		return &remote.Document{Usage: map[string]int{}}
	}
	return m.doc.Clone()
}

// setMarkers records reset markers on the cached document so that a
// reconciliation in the same session sees them without a re-read.
func (m *mirror) setMarkers(global *time.Time, category map[string]time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		m.doc = &remote.Document{Usage: map[string]int{}}
	}
	if global != nil {
		t := *global
		m.doc.LastResetTime = &t
	}
	if len(category) > 0 {
		if m.doc.CategoryResetTimes == nil {
			m.doc.CategoryResetTimes = make(map[string]time.Time, len(category))
		}
		for k, v := range category {
			m.doc.CategoryResetTimes[k] = v
		}
	}
}

// ensure populates the cache if it is empty.
func (m *mirror) ensure(ctx context.Context) {
	m.mu.Lock()
	if m.usage != nil {
		m.mu.Unlock()
		return
	}
	accountID := m.accountID
	m.mu.Unlock()

	doc := m.load(ctx, accountID)

	m.mu.Lock()
	defer m.mu.Unlock()
	// The account may have switched while the load was in flight; a
	// stale load must not populate the new account's cache.
	if m.accountID != accountID || m.usage != nil {
		return
	}
	m.doc = doc
	m.usage = UsageMap(doc.Usage)
	if m.usage == nil {
		m.usage = UsageMap{}
	}
}

// load fetches the account's document, sharing one in-flight read
// between concurrent callers.
func (m *mirror) load(ctx context.Context, accountID string) *remote.Document {
	key := accountKeyFor(accountID)
	v, _, _ := m.group.Do(key, func() (any, error) {
		if m.remote != nil && accountID != "" {
			doc, err := m.remote.Load(ctx, accountID)
			if err == nil {
				return doc, nil
			}
			if !errors.Is(err, remote.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "warning: remote usage load failed, using local fallback: %v\n", err)
			}
			// Fall through: the fallback may hold writes that never
			// reached the remote store.
		}
		doc, err := m.fallback.LoadDoc(ctx, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: local usage load failed: %v\n", err)
			doc = nil
		}
		if doc == nil {
			doc = &remote.Document{Usage: map[string]int{}}
		}
		return doc, nil
	})
	// Each caller gets its own copy; the singleflight result is shared.
	return v.(*remote.Document).Clone()
}
