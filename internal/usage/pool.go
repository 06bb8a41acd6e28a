package usage

import (
	"context"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/remote"
)

// Pool accounting: the denominator (total eligible questions) tracked
// separately from the numerator (used questions), kept in agreement as
// packs are imported or categories merged.

// UpdatePool recomputes the pool size from the catalog, seeds any
// catalog questions missing from the usage map at count 0, and persists
// both. Idempotent per session: after one successful run it is a no-op
// until RecheckPool.
func (t *Tracker) UpdatePool(ctx context.Context, cat *catalog.Catalog) {
	t.mu.Lock()
	if t.poolChecked {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	size := cat.Size()
	keys := cat.Keys()

	snap, changed := t.mirror.update(ctx, func(u UsageMap) bool {
		seeded := false
		for _, k := range keys {
			if _, ok := u[k]; !ok {
				u[k] = 0
				seeded = true
			}
		}
		return seeded
	})

	t.mu.Lock()
	t.poolSize = size
	t.poolChecked = true
	t.mu.Unlock()

	extra := map[string]any{remote.FieldPoolSize: size}
	if changed || size > 0 {
		t.sched.save(snap, extra, false)
	}
}

// RecheckPool clears the session flag so the next UpdatePool call
// recomputes. Called when a new game starts, in case packs were
// imported since.
func (t *Tracker) RecheckPool() {
	t.mu.Lock()
	t.poolChecked = false
	t.mu.Unlock()
}

// AvailableQuestions filters candidates down to unused ones, optionally
// narrowed by points tier and category. Fail-open: until the first
// successful UpdatePool of the session, every candidate is considered
// available rather than blocking gameplay on a pool that never loaded.
func (t *Tracker) AvailableQuestions(ctx context.Context, candidates []catalog.Question, points int, categoryID string) []catalog.Question {
	narrowed := candidates[:0:0]
	for _, q := range candidates {
		if points != 0 && q.Points != points {
			continue
		}
		if categoryID != "" && q.CategoryID != categoryID {
			continue
		}
		narrowed = append(narrowed, q)
	}

	t.mu.Lock()
	ready := t.poolChecked
	t.mu.Unlock()
	if !ready {
		return narrowed
	}

	usage := t.mirror.get(ctx)
	out := narrowed[:0:0]
	for _, q := range narrowed {
		if !usage.Used(catalog.Fingerprint(q, q.CategoryID)) {
			out = append(out, q)
		}
	}
	return out
}
