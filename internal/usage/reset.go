package usage

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/remote"
)

// ResetAll clears every usage entry and records a global reset marker,
// so reconciliation treats all earlier game history as a previous
// cycle. Writes immediately.
func (t *Tracker) ResetAll(ctx context.Context) error {
	now := t.now()

	snap, _ := t.mirror.update(ctx, func(u UsageMap) bool {
		for k := range u {
			u[k] = 0
		}
		return true
	})
	t.mirror.setMarkers(&now, nil)

	t.mu.Lock()
	t.cycleComplete = false
	poolSize := t.poolSize
	t.mu.Unlock()

	extra := map[string]any{remote.FieldLastResetTime: now}
	if poolSize > 0 {
		extra[remote.FieldPoolSize] = poolSize
	}
	return t.sched.save(snap, extra, true)
}

// ResetCategory clears usage for one category only and records a
// per-category reset marker, leaving other categories untouched even if
// another device writes concurrently: the write is a read-modify-merge
// of the targeted keys plus the marker, never a blind overwrite. The
// catalog tells it which keys belong to sibling categories so those
// survive even when their IDs extend the target's.
func (t *Tracker) ResetCategory(ctx context.Context, categoryID string, cat *catalog.Catalog) error {
	if categoryID == "" {
		return errors.New("usage: empty category id")
	}
	now := t.now()

	targets := make(map[string]bool)
	foreign := make(map[string]bool)
	var siblingIDs []string
	if cat != nil {
		for _, c := range cat.Categories {
			keys := categoryKeys(c)
			if c.ID == categoryID {
				for _, k := range keys {
					targets[k] = true
				}
				continue
			}
			siblingIDs = append(siblingIDs, c.ID)
			for _, k := range keys {
				foreign[k] = true
			}
		}
	}

	// Read the freshest document so concurrently written keys survive
	// the merge.
	t.mu.Lock()
	accountID := t.accountID
	t.mu.Unlock()

	merged := t.mirror.get(ctx)
	if t.remote != nil && accountID != "" {
		// A failed read is tolerable: the merge write below still only
		// touches this category's keys plus the marker.
		if doc, err := t.remote.Load(ctx, accountID); err == nil {
			for k, v := range doc.Usage {
				if v > merged[k] {
					merged[k] = v
				}
			}
		}
	}
	for k := range merged {
		if targets[k] || belongsTo(k, categoryID, siblingIDs, foreign) {
			merged[k] = 0
		}
	}

	t.mirror.set(merged)
	t.mirror.setMarkers(nil, map[string]time.Time{categoryID: now})

	markers := t.mirror.document(ctx).CategoryResetTimes
	extra := map[string]any{remote.FieldCategoryResetTimes: markers}

	t.mu.Lock()
	t.cycleComplete = false
	t.mu.Unlock()

	return t.sched.save(merged, extra, true)
}

// belongsTo matches keys derived for a category even when the caller's
// question list is incomplete. Keys are "<categoryID>-...", so a bare
// prefix test would also swallow categories whose ID extends the
// target's ("geo" vs "geo-extra"); any key known to a sibling, or
// prefixed by a longer sibling ID, is left alone.
func belongsTo(key, categoryID string, siblingIDs []string, foreign map[string]bool) bool {
	if !hasIDPrefix(key, categoryID) || foreign[key] {
		return false
	}
	for _, id := range siblingIDs {
		if len(id) > len(categoryID) && hasIDPrefix(key, id) {
			return false
		}
	}
	return true
}

func hasIDPrefix(key, categoryID string) bool {
	return len(key) > len(categoryID)+1 &&
		key[:len(categoryID)] == categoryID &&
		key[len(categoryID)] == '-'
}

// categoryKeys mirrors Catalog.Keys for a single category.
func categoryKeys(c catalog.Category) []string {
	if len(c.Questions) > 0 {
		keys := make([]string, 0, len(c.Questions))
		for _, q := range c.Questions {
			keys = append(keys, catalog.Fingerprint(q, c.ID))
		}
		return keys
	}
	keys := make([]string, 0, len(c.QuestionIDs))
	for _, id := range c.QuestionIDs {
		keys = append(keys, catalog.KeyFromID(c.ID, id))
	}
	return keys
}
