package usage

import (
	"context"
	"errors"

	"github.com/abhisek/quizbox/internal/remote"
)

// Cycle reset: when every question in the pool has been used, usage
// clears so play can continue. Guarded hard against firing on partial
// data — a wrong reset silently loses a whole cycle of
// no-repeat guarantees.

const (
	// MinPoolForReset refuses resets while the catalog is tiny or not
	// yet loaded.
	MinPoolForReset = 50

	// trackedCoverage is the share of the pool that must be present in
	// the usage map before exhaustion can be trusted. Below it, the map
	// is assumed to still be syncing.
	trackedCoverage = 0.9
)

// maybeReset checks for pool exhaustion after a mark and resets usage
// if the cycle is truly complete. Best effort: a failed remote read
// aborts the check silently rather than deciding on partial data.
func (t *Tracker) maybeReset(ctx context.Context) {
	t.mu.Lock()
	accountID := t.accountID
	poolSize := t.poolSize
	t.mu.Unlock()

	// Fold in the freshest remote state so marks made on another device
	// count toward exhaustion.
	if t.remote != nil && accountID != "" {
		doc, err := t.remote.Load(ctx, accountID)
		switch {
		case err == nil:
			if poolSize == 0 {
				poolSize = doc.PoolSize
			}
			remoteUsage := doc.Usage
			t.mirror.update(ctx, func(u UsageMap) bool {
				changed := false
				for k, v := range remoteUsage {
					if v > 0 && u[k] == 0 {
						u[k] = 1
						changed = true
					}
				}
				return changed
			})
		case errors.Is(err, remote.ErrNotFound):
			// Fresh account: nothing to fold in.
		default:
			// Can't see the full picture; do nothing this time.
			return
		}
	}

	if poolSize < MinPoolForReset {
		return
	}

	usage := t.mirror.get(ctx)
	tracked := len(usage)
	used := usage.UsedCount()

	if float64(tracked) < trackedCoverage*float64(poolSize) {
		return
	}
	if used < poolSize || used < tracked {
		return
	}

	// Exhausted: start the next cycle.
	snap, _ := t.mirror.update(ctx, func(u UsageMap) bool {
		for k := range u {
			u[k] = 0
		}
		return true
	})
	t.sched.save(snap, map[string]any{remote.FieldPoolSize: poolSize}, true)

	t.mu.Lock()
	t.cycleComplete = true
	t.mu.Unlock()

	if t.onExhausted != nil {
		t.onExhausted()
	}
}
