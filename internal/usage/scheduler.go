package usage

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abhisek/quizbox/internal/remote"
	"github.com/abhisek/quizbox/internal/store"
)

// defaultWriteInterval is the minimum spacing between remote writes.
// Bursts of marks inside one window coalesce into a single write of the
// latest state.
const defaultWriteInterval = 2 * time.Second

// writeTimeout bounds a single remote write, retries included.
const writeTimeout = 10 * time.Second

// scheduler is the throttled write path to the remote store. Pending
// fields are coalesced per key with latest-payload-wins; a failed
// remote write degrades to the local fallback store and is never
// surfaced to the caller.
type scheduler struct {
	remote   remote.Store
	fallback store.FallbackRepo
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	accountID string
	pending   map[string]any
	timer     *time.Timer
	lastWrite time.Time
}

func newScheduler(rs remote.Store, fb store.FallbackRepo, interval time.Duration, now func() time.Time) *scheduler {
	if interval <= 0 {
		interval = defaultWriteInterval
	}
	s := &scheduler{remote: rs, fallback: fb, interval: interval, now: nowFunc(now)}
	s.lastWrite = s.now()
	return s
}

// reset drops any pending write and rebinds the scheduler to an
// account. Pending state for the previous account is discarded, not
// flushed: account switches invalidate it.
func (s *scheduler) reset(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accountID = accountID
	s.pending = nil
	s.lastWrite = s.now()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// save persists the usage snapshot plus any extra document fields.
// Non-immediate saves are coalesced into the next throttle-window
// flush; immediate saves flush synchronously, carrying any pending
// fields along.
func (s *scheduler) save(usage UsageMap, extra map[string]any, immediate bool) error {
	fields := map[string]any{
		remote.FieldUsage:       map[string]int(usage),
		remote.FieldLastUpdated: s.now(),
	}
	for k, v := range extra {
		fields[k] = v
	}

	if !immediate {
		s.enqueue(fields)
		return nil
	}

	s.mu.Lock()
	// Fold the pending write into this one so it isn't lost, then
	// disarm the timer.
	for k, v := range s.pending {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.write(fields)
}

// enqueue merges fields into the pending write and arms the flush timer
// if it isn't already running. Later payloads supersede earlier ones
// per field.
func (s *scheduler) enqueue(fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		s.pending = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		s.pending[k] = v
	}

	if s.timer != nil {
		return
	}
	delay := s.interval - s.now().Sub(s.lastWrite)
	if delay < 0 {
		delay = 0
	}
	if delay > s.interval {
		delay = s.interval
	}
	s.timer = time.AfterFunc(delay, s.fire)
}

func (s *scheduler) fire() {
	s.mu.Lock()
	fields := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if fields != nil {
		s.write(fields)
	}
}

// Flush forces any pending write out now. Used at shutdown and by
// tests.
func (s *scheduler) Flush() error {
	s.mu.Lock()
	fields := s.pending
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if fields == nil {
		return nil
	}
	return s.write(fields)
}

// write sends fields to the remote store, degrading to the local
// fallback on failure. Returns an error only when both paths fail.
func (s *scheduler) write(fields map[string]any) error {
	s.mu.Lock()
	accountID := s.accountID
	s.lastWrite = s.now()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if s.remote != nil && accountID != "" {
		err := s.remote.Merge(ctx, accountID, fields)
		if err == nil {
			return nil
		}
		fmt.Fprintf(os.Stderr, "warning: remote usage write failed, writing local fallback: %v\n", err)
	}

	if err := mergeIntoFallback(ctx, s.fallback, accountKeyFor(accountID), fields); err != nil {
		fmt.Fprintf(os.Stderr, "warning: local usage write failed: %v\n", err)
		return err
	}
	return nil
}

// mergeIntoFallback applies document fields onto the stored fallback
// document, preserving fields not named — the same semantics the remote
// store's merge write has.
func mergeIntoFallback(ctx context.Context, fb store.FallbackRepo, key string, fields map[string]any) error {
	doc, err := fb.LoadDoc(ctx, key)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = &remote.Document{Usage: map[string]int{}}
	}
	applyFields(doc, fields)
	return fb.SaveDoc(ctx, key, doc)
}

// applyFields maps wire field names onto a Document. Only fields this
// package writes are handled.
func applyFields(doc *remote.Document, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case remote.FieldUsage:
			if u, ok := v.(map[string]int); ok {
				doc.Usage = UsageMap(u).Clone()
			}
		case remote.FieldPoolSize:
			if n, ok := v.(int); ok {
				doc.PoolSize = n
			}
		case remote.FieldLastUpdated:
			if t, ok := v.(time.Time); ok {
				doc.LastUpdated = t
			}
		case remote.FieldLastResetTime:
			if t, ok := v.(time.Time); ok {
				doc.LastResetTime = &t
			}
		case remote.FieldCategoryResetTimes:
			if m, ok := v.(map[string]time.Time); ok {
				if doc.CategoryResetTimes == nil {
					doc.CategoryResetTimes = make(map[string]time.Time, len(m))
				}
				for cat, t := range m {
					doc.CategoryResetTimes[cat] = t
				}
			}
		}
	}
}
