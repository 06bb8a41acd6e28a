package usage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/catalog"
	"github.com/abhisek/quizbox/internal/remote"
)

func TestMaybeResetSilentOnRemoteReadFailure(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs})
	tr.SetAccount("acct")

	cat := makeCatalog("geo", 60)
	tr.UpdatePool(ctx, cat)
	qs := cat.Categories[0].Questions

	// Mark all but one through the public path, then stage the last one
	// directly so the background exhaustion check doesn't race this
	// test's own maybeReset calls.
	for i := range 59 {
		tr.MarkUsed(qs[i], "geo")
	}
	require.NoError(t, tr.Flush(ctx))
	tr.mirror.update(ctx, func(u UsageMap) bool {
		u[catalog.Fingerprint(qs[59], "geo")] = 1
		return true
	})

	// The pool is genuinely exhausted, but the check can't confirm it
	// against the remote store. It must no-op, not half-reset.
	rs.LoadErr = &remote.ErrUnavailable{Status: 503}
	tr.maybeReset(ctx)

	stats := tr.Statistics(ctx)
	assert.False(t, stats.CycleComplete)
	assert.Equal(t, 60, stats.UsedCount)

	// Link restored: the same check now completes the cycle.
	rs.LoadErr = nil
	tr.maybeReset(ctx)
	stats = tr.Statistics(ctx)
	assert.True(t, stats.CycleComplete)
	assert.Equal(t, 0, stats.UsedCount)
}

func TestMaybeResetFoldsRemoteMarks(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs})
	tr.SetAccount("acct")

	cat := makeCatalog("geo", 50)
	tr.UpdatePool(ctx, cat)
	qs := cat.Categories[0].Questions

	// This device saw 49 questions; the 50th was played elsewhere.
	for i := range 49 {
		tr.MarkUsed(qs[i], "geo")
	}
	require.NoError(t, tr.Flush(ctx))

	doc := rs.Doc("acct")
	require.NotNil(t, doc)
	doc.Usage[catalog.Fingerprint(qs[49], "geo")] = 1
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{remote.FieldUsage: doc.Usage}))

	tr.maybeReset(ctx)
	assert.True(t, tr.Statistics(ctx).CycleComplete, "cross-device marks count toward exhaustion")
}
