package usage

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/history"
	"github.com/abhisek/quizbox/internal/remote"
	"github.com/abhisek/quizbox/internal/store"
)

// Options configures a Tracker.
type Options struct {
	// Remote is the shared document store. Optional: without it the
	// tracker runs local-only.
	Remote remote.Store

	// Fallback is the local persistent store. Required.
	Fallback store.FallbackRepo

	// Log is the game-history log used for reconciliation. Optional.
	Log history.Log

	// OnExhausted is called (from a background goroutine) when a full
	// cycle completes and usage is reset.
	OnExhausted func()

	// WriteInterval overrides the remote write throttle window.
	// Zero means the default (2s).
	WriteInterval time.Duration

	// Now overrides the clock. Tests only.
	Now func() time.Time
}

// Tracker is the question usage tracker: one instance per process,
// scoped to the signed-in account by SetAccount.
type Tracker struct {
	remote      remote.Store
	fallback    store.FallbackRepo
	log         history.Log
	onExhausted func()
	now         func() time.Time

	mirror *mirror
	sched  *scheduler

	mu            sync.Mutex
	accountID     string
	poolSize      int
	poolChecked   bool
	cycleComplete bool
	recon         reconcileState

	bg sync.WaitGroup
}

// New creates a Tracker. It is inert (local fallback only) until
// SetAccount supplies an account identifier.
func New(opts Options) *Tracker {
	t := &Tracker{
		remote:      opts.Remote,
		fallback:    opts.Fallback,
		log:         opts.Log,
		onExhausted: opts.OnExhausted,
		now:         nowFunc(opts.Now),
		mirror:      newMirror(opts.Remote, opts.Fallback),
		sched:       newScheduler(opts.Remote, opts.Fallback, opts.WriteInterval, opts.Now),
	}
	t.recon.reset()
	return t
}

// SetAccount switches the tracker to a new account, clearing all cached
// state and session guards. A non-empty account kicks off a background
// history reconciliation.
func (t *Tracker) SetAccount(id string) {
	t.mu.Lock()
	if t.accountID == id {
		t.mu.Unlock()
		return
	}
	t.accountID = id
	t.poolSize = 0
	t.poolChecked = false
	t.cycleComplete = false
	t.recon.reset()
	t.mu.Unlock()

	t.mirror.reset(id)
	t.sched.reset(id)

	if id != "" && t.log != nil {
		t.bg.Add(1)
		go func() {
			defer t.bg.Done()
			if _, err := t.Reconcile(context.Background(), false); err != nil {
				fmt.Fprintf(os.Stderr, "warning: history reconciliation failed: %v\n", err)
			}
		}()
	}
}

// AccountID returns the current account identifier ("" when signed
// out).
func (t *Tracker) AccountID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.accountID
}

// MarkUsed records that a question was revealed. Fire-and-forget: the
// in-memory mirror updates synchronously, the remote write and the
// exhaustion check run in the background.
func (t *Tracker) MarkUsed(q catalog.Question, categoryID string) {
	t.markKey(catalog.Fingerprint(q, categoryID))
}

// MarkKeyUsed is MarkUsed for callers that already hold a question key
// (reconciled history entries, stored assignments).
func (t *Tracker) MarkKeyUsed(key string) {
	t.markKey(key)
}

func (t *Tracker) markKey(key string) {
	if key == "" {
		return
	}
	ctx := context.Background()
	snap, changed := t.mirror.update(ctx, func(u UsageMap) bool {
		if u.Used(key) {
			return false
		}
		u[key] = 1
		return true
	})
	if !changed {
		// Already used this cycle: nothing new to persist.
		return
	}

	t.mu.Lock()
	t.cycleComplete = false
	t.mu.Unlock()

	t.sched.save(snap, nil, false)

	t.bg.Add(1)
	go func() {
		defer t.bg.Done()
		t.maybeReset(context.Background())
	}()
}

// MarkBatchUsed pre-marks a whole board's worth of assignments in one
// immediate write, so a dealt game holds its questions even if the app
// dies mid-play. Returns the number of keys newly marked.
func (t *Tracker) MarkBatchUsed(assignments map[string]history.Assignment) int {
	ctx := context.Background()
	marked := 0
	snap, changed := t.mirror.update(ctx, func(u UsageMap) bool {
		for _, a := range assignments {
			key := a.UsageKey()
			if key == "" || u.Used(key) {
				continue
			}
			u[key] = 1
			marked++
		}
		return marked > 0
	})
	if !changed {
		return 0
	}

	t.mu.Lock()
	t.cycleComplete = false
	t.mu.Unlock()

	t.sched.save(snap, nil, true)
	return marked
}

// Statistics reports pool progress for the current account.
func (t *Tracker) Statistics(ctx context.Context) Stats {
	usage := t.mirror.get(ctx)

	t.mu.Lock()
	pool := t.poolSize
	cycleComplete := t.cycleComplete
	t.mu.Unlock()

	used := usage.UsedCount()
	if pool == 0 {
		pool = len(usage)
	}
	unused := pool - used
	if unused < 0 {
		unused = 0
	}
	var pct float64
	if pool > 0 {
		pct = float64(used) / float64(pool) * 100
	}
	return Stats{
		PoolSize:             pool,
		UsedCount:            used,
		UnusedCount:          unused,
		CompletionPercentage: pct,
		CycleComplete:        cycleComplete,
	}
}

// Flush waits for background work and forces any pending write out.
// Call on shutdown.
func (t *Tracker) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.bg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return t.sched.Flush()
}
