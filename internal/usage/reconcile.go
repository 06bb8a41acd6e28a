package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/quizbox/internal/history"
)

// History reconciliation: the game log is the source of truth for what
// a player has actually seen. Replaying it repairs the usage map after
// lost writes, deleted games, or a first sign-in on a new device.

// reconcileState tracks the per-session reconciliation lifecycle.
type reconcileState struct {
	checked   bool
	inflight  bool
	done      chan struct{}
	closed    bool
	lastStats ReconcileStats
}

func (r *reconcileState) reset() {
	r.checked = false
	r.inflight = false
	r.done = make(chan struct{})
	r.closed = false
	r.lastStats = ReconcileStats{}
}

func (r *reconcileState) finish(stats ReconcileStats) {
	r.checked = true
	r.inflight = false
	r.lastStats = stats
	if !r.closed {
		close(r.done)
		r.closed = true
	}
}

// Reconcile rebuilds usage from the game-history log.
//
// In merge mode (replace=false) recovered keys are unioned into the
// existing map, only ever turning unused to used; an incomplete history
// can never lose data this way. Replace mode (replace=true, used after
// a game deletion) recomputes every value from the history, allowing a
// deleted game's questions to return to the pool.
//
// One pass runs per account session; concurrent callers join the
// in-flight pass instead of starting a second one. The session guard is
// distrusted if the map shows zero used questions — a previous pass
// that failed after setting the guard must not suppress the retry.
func (t *Tracker) Reconcile(ctx context.Context, replace bool) (ReconcileStats, error) {
	// The session guard needs the current used count, which may trigger
	// a load; fetch it before taking the state lock.
	usedCount := t.mirror.get(ctx).UsedCount()

	for {
		t.mu.Lock()
		accountID := t.accountID
		if t.recon.inflight {
			done := t.recon.done
			t.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return ReconcileStats{}, ctx.Err()
			}
			if replace {
				// The joined pass may have been merge mode, which
				// cannot return a deleted game's questions to the
				// pool. A rebuild must actually run: take the slot.
				continue
			}
			t.mu.Lock()
			stats := t.recon.lastStats
			t.mu.Unlock()
			return stats, nil
		}
		if t.recon.checked && !replace && usedCount > 0 {
			// Guard holds and the map looks sane. A guard with zero
			// used questions is distrusted: a previous pass likely
			// failed after setting it, so fall through and re-run.
			stats := t.recon.lastStats
			t.mu.Unlock()
			return stats, nil
		}
		t.recon.inflight = true
		if t.recon.closed {
			// Re-arm the completion channel so joiners and
			// WaitForSync wait on this pass, not the finished one.
			t.recon.done = make(chan struct{})
			t.recon.closed = false
		}
		t.mu.Unlock()

		stats, err := t.reconcileOnce(ctx, accountID, replace)

		t.mu.Lock()
		// An account switch mid-pass resets recon; don't resurrect it.
		if t.accountID == accountID {
			t.recon.finish(stats)
		}
		t.mu.Unlock()

		return stats, err
	}
}

func (t *Tracker) reconcileOnce(ctx context.Context, accountID string, replace bool) (stats ReconcileStats, err error) {
	// A panic inside the pass must still resolve joiners; the caller's
	// finish() runs regardless, so only the error path needs care here.
	if t.log == nil {
		return ReconcileStats{}, nil
	}

	games, err := t.log.ListGames(ctx, accountID)
	if err != nil {
		return ReconcileStats{}, fmt.Errorf("list games: %w", err)
	}

	doc := t.mirror.document(ctx)
	scratch, tally := stageHistory(games, doc.LastResetTime, doc.CategoryResetTimes)
	stats = ReconcileStats{Synced: len(scratch), PerCategory: tally}

	if replace {
		snap, _ := t.mirror.update(ctx, func(u UsageMap) bool {
			for k := range u {
				if scratch[k] > 0 {
					u[k] = 1
				} else {
					u[k] = 0
				}
			}
			for k := range scratch {
				if _, ok := u[k]; !ok {
					u[k] = 1
				}
			}
			return true
		})
		// Operationally significant (a game was deleted): write now.
		t.sched.save(snap, nil, true)
		return stats, nil
	}

	snap, changed := t.mirror.update(ctx, func(u UsageMap) bool {
		mutated := false
		for k := range scratch {
			if u[k] == 0 {
				u[k] = 1
				mutated = true
			}
		}
		return mutated
	})
	if changed {
		t.sched.save(snap, nil, false)
	}
	return stats, nil
}

// stageHistory replays game records into a scratch usage map, honoring
// reset-marker exclusion windows: records older than the global marker
// are skipped whole, entries older than their category's marker are
// skipped individually.
func stageHistory(games []history.GameRecord, global *time.Time, catMarkers map[string]time.Time) (map[string]int, map[string]int) {
	scratch := make(map[string]int)
	tally := make(map[string]int)

	stage := func(ts time.Time, categoryID, key string) {
		if key == "" {
			return
		}
		if categoryID != "" {
			if marker, ok := catMarkers[categoryID]; ok && ts.Before(marker) {
				return
			}
		}
		if scratch[key] == 0 {
			scratch[key] = 1
			if categoryID != "" {
				tally[categoryID]++
			}
		}
	}

	for i := range games {
		rec := &games[i]
		ts := rec.Timestamp()
		if global != nil && ts.Before(*global) {
			continue
		}
		switch rec.Format {
		case history.FormatAssigned:
			for _, a := range rec.Assigned {
				stage(ts, a.CategoryID, a.UsageKey())
			}
		case history.FormatLegacy:
			// Legacy lists are per button, not per question; the key
			// mapping is best effort.
			for _, entry := range rec.LegacyUsed {
				catID, key := history.SplitLegacyEntry(entry)
				stage(ts, catID, key)
			}
		}
	}
	return scratch, tally
}

// WaitForSync blocks until the session's reconciliation pass has
// completed, the timeout elapses, or ctx is done. Returns true when
// sync finished (or there is nothing to sync); false means the caller
// should proceed on possibly stale data rather than keep waiting.
func (t *Tracker) WaitForSync(ctx context.Context, timeout time.Duration) bool {
	t.mu.Lock()
	accountID := t.accountID
	checked := t.recon.checked
	inflight := t.recon.inflight
	done := t.recon.done
	t.mu.Unlock()

	if accountID == "" || t.log == nil {
		return true
	}
	if checked && !inflight {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}
