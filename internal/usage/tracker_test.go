package usage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/history"
	"github.com/abhisek/quizbox/internal/remote"
)

func newTestTracker(t *testing.T, opts Options) *Tracker {
	t.Helper()
	if opts.Fallback == nil {
		opts.Fallback = newMemFallback()
	}
	if opts.WriteInterval == 0 {
		opts.WriteInterval = 10 * time.Millisecond
	}
	tr := New(opts)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tr.Flush(ctx)
	})
	return tr
}

func TestMarkUsedIdempotent(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs})
	tr.SetAccount("acct")

	q := catalog.Question{ID: "geo-0001", CategoryID: "geo", Text: "x", Answer: "y"}
	tr.MarkUsed(q, "geo")
	tr.MarkUsed(q, "geo")
	tr.MarkUsed(q, "geo")
	require.NoError(t, tr.Flush(ctx))

	doc := rs.Doc("acct")
	require.NotNil(t, doc)
	assert.Equal(t, map[string]int{"geo-geo-0001": 1}, doc.Usage, "count stays 1, no double counting")
	assert.Equal(t, 1, tr.Statistics(ctx).UsedCount)
}

func TestThrottleCoalescing(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs, WriteInterval: 100 * time.Millisecond})
	tr.SetAccount("acct")

	for i := range 5 {
		q := catalog.Question{ID: "geo-000" + string(rune('0'+i)), CategoryID: "geo"}
		tr.MarkUsed(q, "geo")
	}

	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 1, rs.MergeCalls, "N marks inside one window coalesce into one write")
	doc := rs.Doc("acct")
	require.NotNil(t, doc)
	assert.Len(t, doc.Usage, 5, "the single write carries the state after the Nth mark")
	require.NoError(t, tr.Flush(ctx))
}

func TestMarkBatchUsedImmediate(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs, WriteInterval: time.Hour})
	tr.SetAccount("acct")

	n := tr.MarkBatchUsed(map[string]history.Assignment{
		"geo:100": {CategoryID: "geo", QuestionID: "geo-0001"},
		"geo:200": {CategoryID: "geo", QuestionID: "geo-0002"},
		"sci:100": {Key: "sci-sci-0001", CategoryID: "sci"},
	})
	assert.Equal(t, 3, n)

	// Immediate: visible remotely without waiting out the throttle.
	doc := rs.Doc("acct")
	require.NotNil(t, doc)
	assert.Len(t, doc.Usage, 3)

	// Re-marking the same board marks nothing new.
	assert.Equal(t, 0, tr.MarkBatchUsed(map[string]history.Assignment{
		"geo:100": {CategoryID: "geo", QuestionID: "geo-0001"},
	}))
	require.NoError(t, tr.Flush(ctx))
}

func TestRemoteWriteFailureDegradesToFallback(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	rs.MergeErr = &remote.ErrUnavailable{Status: 503}
	fb := newMemFallback()
	tr := newTestTracker(t, Options{Remote: rs, Fallback: fb})
	tr.SetAccount("acct")

	tr.MarkUsed(catalog.Question{ID: "geo-0001", CategoryID: "geo"}, "geo")
	require.NoError(t, tr.Flush(ctx))

	doc := fb.doc("acct")
	require.NotNil(t, doc, "failed remote write must land in the local fallback")
	assert.Equal(t, 1, doc.Usage["geo-geo-0001"])
}

func TestAnonymousTrackerUsesFallbackOnly(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	fb := newMemFallback()
	tr := newTestTracker(t, Options{Remote: rs, Fallback: fb})

	tr.MarkUsed(catalog.Question{ID: "geo-0001", CategoryID: "geo"}, "geo")
	require.NoError(t, tr.Flush(ctx))

	assert.Equal(t, 0, rs.MergeCalls, "no remote writes while signed out")
	doc := fb.doc(anonymousKey)
	require.NotNil(t, doc)
	assert.Equal(t, 1, doc.Usage["geo-geo-0001"])
}

func TestAvailableQuestionsFailOpenBeforePoolCheck(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, Options{})

	cat := makeCatalog("geo", 10)
	qs := cat.Categories[0].Questions

	tr.MarkUsed(qs[0], "geo")
	got := tr.AvailableQuestions(ctx, qs, 0, "")
	assert.Len(t, got, 10, "before UpdatePool everything is available")

	tr.UpdatePool(ctx, cat)
	got = tr.AvailableQuestions(ctx, qs, 0, "")
	assert.Len(t, got, 9)
}

func TestAvailableQuestionsFilters(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, Options{})
	cat := makeCatalog("geo", 10)
	tr.UpdatePool(ctx, cat)
	qs := cat.Categories[0].Questions

	tr.MarkUsed(qs[0], "geo") // points 100

	byPoints := tr.AvailableQuestions(ctx, qs, 100, "")
	for _, q := range byPoints {
		assert.Equal(t, 100, q.Points)
	}
	assert.Len(t, byPoints, 1, "two 100-point questions exist, one is used")

	byCategory := tr.AvailableQuestions(ctx, qs, 0, "nope")
	assert.Empty(t, byCategory)
}

func TestUpdatePoolIdempotentPerSession(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, Options{})

	tr.UpdatePool(ctx, makeCatalog("geo", 10))
	assert.Equal(t, 10, tr.Statistics(ctx).PoolSize)

	// Second call is a no-op until RecheckPool.
	tr.UpdatePool(ctx, makeCatalog("geo", 25))
	assert.Equal(t, 10, tr.Statistics(ctx).PoolSize)

	tr.RecheckPool()
	tr.UpdatePool(ctx, makeCatalog("geo", 25))
	assert.Equal(t, 25, tr.Statistics(ctx).PoolSize)
}

func TestResetSafetySmallPool(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, Options{})

	cat := makeCatalog("geo", 10)
	tr.UpdatePool(ctx, cat)
	for _, q := range cat.Categories[0].Questions {
		tr.MarkUsed(q, "geo")
	}
	require.NoError(t, tr.Flush(ctx))
	tr.maybeReset(ctx)

	stats := tr.Statistics(ctx)
	assert.False(t, stats.CycleComplete, "pool below minimum must never reset")
	assert.Equal(t, 10, stats.UsedCount, "usage must be untouched")
}

func TestResetSafetyIncompleteTracking(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs})
	tr.SetAccount("acct")

	// Pool says 100 but only 60 keys are tracked: coverage below 90%.
	cat := makeCatalog("geo", 100)
	tr.UpdatePool(ctx, &catalog.Catalog{Categories: []catalog.Category{{
		ID: "geo", QuestionIDs: func() []string {
			ids := make([]string, 100)
			for i := range ids {
				ids[i] = cat.Categories[0].Questions[i].ID
			}
			return ids
		}(),
	}}})

	// Simulate a partially synced map: replace with 60 used keys.
	partial := UsageMap{}
	for i := range 60 {
		partial[catalog.KeyFromID("geo", cat.Categories[0].Questions[i].ID)] = 1
	}
	tr.mirror.set(partial)

	tr.maybeReset(ctx)
	assert.False(t, tr.Statistics(ctx).CycleComplete)
	assert.Equal(t, 60, tr.Statistics(ctx).UsedCount)
}

func TestExhaustionScenario(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	notices := 0
	tr := newTestTracker(t, Options{Remote: rs, OnExhausted: func() { notices++ }})
	tr.SetAccount("acct")

	cat := makeCatalog("geo", 50)
	tr.UpdatePool(ctx, cat)
	qs := cat.Categories[0].Questions

	for i := range 49 {
		tr.MarkUsed(qs[i], "geo")
		require.NoError(t, tr.Flush(ctx))
		assert.False(t, tr.Statistics(ctx).CycleComplete, "mark %d must not complete the cycle", i+1)
	}

	tr.MarkUsed(qs[49], "geo")
	require.NoError(t, tr.Flush(ctx))

	stats := tr.Statistics(ctx)
	assert.True(t, stats.CycleComplete, "50th mark exhausts the pool")
	assert.Equal(t, 1, notices, "exhaustion notice fires once")

	avail := tr.AvailableQuestions(ctx, qs, 0, "")
	assert.Len(t, avail, 50, "reset returns every question to the pool")

	doc := rs.Doc("acct")
	require.NotNil(t, doc)
	assert.Equal(t, 0, UsageMap(doc.Usage).UsedCount(), "reset was written through immediately")
}

func TestSetAccountResetsState(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs})
	tr.SetAccount("alice")

	cat := makeCatalog("geo", 10)
	tr.UpdatePool(ctx, cat)
	tr.MarkUsed(cat.Categories[0].Questions[0], "geo")
	require.NoError(t, tr.Flush(ctx))
	assert.Equal(t, 1, tr.Statistics(ctx).UsedCount)

	tr.SetAccount("bob")
	stats := tr.Statistics(ctx)
	assert.Equal(t, 0, stats.UsedCount, "bob must not inherit alice's usage")
	assert.Equal(t, 0, stats.PoolSize, "pool flag cleared on account switch")

	// Switching back reloads alice's remote document.
	tr.SetAccount("alice")
	assert.Equal(t, 1, tr.Statistics(ctx).UsedCount)
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t, Options{})

	cat := makeCatalog("geo", 10)
	tr.UpdatePool(ctx, cat)
	tr.MarkUsed(cat.Categories[0].Questions[0], "geo")
	tr.MarkUsed(cat.Categories[0].Questions[1], "geo")

	stats := tr.Statistics(ctx)
	assert.Equal(t, 10, stats.PoolSize)
	assert.Equal(t, 2, stats.UsedCount)
	assert.Equal(t, 8, stats.UnusedCount)
	assert.InDelta(t, 20.0, stats.CompletionPercentage, 0.01)
}
