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

func assignedGame(id string, at time.Time, assignments map[string]history.Assignment) history.GameRecord {
	rec := history.GameRecord{ID: id, AccountID: "acct", StartedAt: at, Assigned: assignments}
	rec.ResolveFormat()
	return rec
}

func TestReconcileMergeNeverLosesData(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{
		remote.FieldUsage: map[string]int{"geo-A": 1, "geo-B": 0},
	}))

	log := &memLog{}
	log.add(assignedGame("g1", time.Now(), map[string]history.Assignment{
		"geo:100": {Key: "geo-B", CategoryID: "geo"},
	}))

	tr := newTestTracker(t, Options{Remote: rs, Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 1, usage["geo-A"], "A was used before and must stay used")
	assert.Equal(t, 1, usage["geo-B"], "B recovered from history")
}

func TestReconcileMergePersistsOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{
		remote.FieldUsage: map[string]int{"geo-A": 1},
	}))
	baseline := rs.MergeCalls

	log := &memLog{}
	log.add(assignedGame("g1", time.Now(), map[string]history.Assignment{
		"geo:100": {Key: "geo-A", CategoryID: "geo"},
	}))

	tr := newTestTracker(t, Options{Remote: rs, Log: log, WriteInterval: 10 * time.Millisecond})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))
	require.NoError(t, tr.Flush(ctx))

	assert.Equal(t, baseline, rs.MergeCalls, "nothing changed, nothing written")
}

func TestReconcileReplaceReturnsDeletedGameQuestions(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{
		remote.FieldUsage: map[string]int{"geo-A": 1, "geo-B": 1},
	}))

	// Only one surviving game, and it references only A.
	log := &memLog{}
	log.add(assignedGame("g1", time.Now(), map[string]history.Assignment{
		"geo:100": {Key: "geo-A", CategoryID: "geo"},
	}))

	tr := newTestTracker(t, Options{Remote: rs, Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))

	stats, err := tr.Reconcile(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Synced)

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 1, usage["geo-A"])
	assert.Equal(t, 0, usage["geo-B"], "no surviving record references B; it returns to the pool")

	doc := rs.Doc("acct")
	require.NotNil(t, doc)
	assert.Equal(t, 0, doc.Usage["geo-B"], "replace mode writes through immediately")
}

func TestReconcileGlobalResetMarkerSkipsOldRecords(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	marker := time.Now()
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{
		remote.FieldLastResetTime: marker,
	}))

	log := &memLog{}
	log.add(assignedGame("old", marker.Add(-time.Hour), map[string]history.Assignment{
		"geo:100": {Key: "geo-old", CategoryID: "geo"},
	}))
	log.add(assignedGame("new", marker.Add(time.Hour), map[string]history.Assignment{
		"geo:200": {Key: "geo-new", CategoryID: "geo"},
	}))

	tr := newTestTracker(t, Options{Remote: rs, Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 0, usage["geo-old"], "pre-reset record is a previous cycle")
	assert.Equal(t, 1, usage["geo-new"])
}

func TestReconcilePerCategoryExclusionWindow(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	marker := time.Now()
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{
		remote.FieldCategoryResetTimes: map[string]time.Time{"x": marker},
	}))

	// One pre-marker game touching both categories: X's entry must be
	// excluded, Y's applied.
	log := &memLog{}
	log.add(assignedGame("g1", marker.Add(-time.Hour), map[string]history.Assignment{
		"x:100": {Key: "x-q1", CategoryID: "x"},
		"y:100": {Key: "y-q1", CategoryID: "y"},
	}))

	tr := newTestTracker(t, Options{Remote: rs, Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 0, usage["x-q1"], "reset category's pre-marker history excluded")
	assert.Equal(t, 1, usage["y-q1"], "unrelated category applied normally")
}

func TestReconcileLegacyFormat(t *testing.T) {
	ctx := context.Background()
	log := &memLog{}
	rec := history.GameRecord{
		ID:         "g0",
		AccountID:  "acct",
		StartedAt:  time.Now(),
		LegacyUsed: []string{"geo|geo-0001", "bare-key"},
	}
	rec.ResolveFormat()
	log.add(rec)

	tr := newTestTracker(t, Options{Remote: remote.NewMemoryStore(), Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 1, usage["geo-geo-0001"])
	assert.Equal(t, 1, usage["bare-key"])
}

func TestReconcileOncePerSession(t *testing.T) {
	ctx := context.Background()
	log := &memLog{}
	log.add(assignedGame("g1", time.Now(), map[string]history.Assignment{
		"geo:100": {Key: "geo-A", CategoryID: "geo"},
	}))

	tr := newTestTracker(t, Options{Remote: remote.NewMemoryStore(), Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))
	require.Equal(t, 1, log.listCount())

	_, err := tr.Reconcile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, log.listCount(), "session guard suppresses a second pass")
}

func TestReconcileDistrustsGuardWithZeroUsed(t *testing.T) {
	ctx := context.Background()
	log := &memLog{}

	tr := newTestTracker(t, Options{Remote: remote.NewMemoryStore(), Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))
	first := log.listCount()

	// History appears later (e.g. the first pass raced the log, or
	// failed silently). Zero used questions means the guard is not
	// trusted.
	log.add(assignedGame("g1", time.Now(), map[string]history.Assignment{
		"geo:100": {Key: "geo-A", CategoryID: "geo"},
	}))

	stats, err := tr.Reconcile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Synced)
	assert.Greater(t, log.listCount(), first, "guard with zero used questions re-runs")
	assert.Equal(t, 1, tr.mirror.get(ctx)["geo-A"])
}

func TestReconcileConcurrentCallersJoin(t *testing.T) {
	ctx := context.Background()
	log := &memLog{delay: 100 * time.Millisecond}
	log.add(assignedGame("g1", time.Now(), map[string]history.Assignment{
		"geo:100": {Key: "geo-A", CategoryID: "geo"},
	}))

	tr := newTestTracker(t, Options{Remote: remote.NewMemoryStore(), Log: log})
	tr.SetAccount("acct") // kicks off the slow background pass
	time.Sleep(20 * time.Millisecond)

	// Joins the in-flight pass instead of starting a second one.
	stats, err := tr.Reconcile(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Synced)
	assert.Equal(t, 1, log.listCount())
}

func TestReconcileRebuildRunsAfterInflightMerge(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{
		remote.FieldUsage: map[string]int{"geo-stale": 1},
	}))

	// Empty history: a rebuild must zero the stale key. The slow list
	// keeps the background merge pass in flight when the rebuild
	// arrives.
	log := &memLog{delay: 300 * time.Millisecond}

	tr := newTestTracker(t, Options{Remote: rs, Log: log})
	tr.SetAccount("acct") // kicks off the background merge pass
	time.Sleep(100 * time.Millisecond)

	// A rebuild arriving mid-merge must not degrade into joining the
	// merge pass; it has to run its own pass once the merge completes.
	_, err := tr.Reconcile(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, 0, tr.mirror.get(ctx)["geo-stale"], "rebuild recomputes from the (empty) history")
	assert.Equal(t, 2, log.listCount(), "rebuild runs a second pass")
}

func TestReconcileErrorResolvesJoiners(t *testing.T) {
	ctx := context.Background()
	log := &memLog{err: assert.AnError}

	tr := newTestTracker(t, Options{Remote: remote.NewMemoryStore(), Log: log})
	tr.SetAccount("acct")

	// The failed pass must still resolve waiters promptly.
	start := time.Now()
	synced := tr.WaitForSync(ctx, 5*time.Second)
	assert.True(t, synced)
	assert.Less(t, time.Since(start), time.Second, "joiners must not wait out the timeout")

	// And the mirror is not corrupted.
	assert.Equal(t, 0, tr.mirror.get(ctx).UsedCount())
}

func TestWaitForSyncTimeout(t *testing.T) {
	ctx := context.Background()
	log := &memLog{delay: 500 * time.Millisecond}

	tr := newTestTracker(t, Options{Remote: remote.NewMemoryStore(), Log: log})
	tr.SetAccount("acct")

	assert.False(t, tr.WaitForSync(ctx, 30*time.Millisecond), "timeout proceeds rather than blocking")
	assert.True(t, tr.WaitForSync(ctx, 2*time.Second))
}

func TestWaitForSyncNoAccountIsImmediate(t *testing.T) {
	tr := newTestTracker(t, Options{Log: &memLog{}})
	assert.True(t, tr.WaitForSync(context.Background(), time.Hour))
}

func TestResetCategoryExclusionEndToEnd(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	log := &memLog{}

	xq := catalog.Question{ID: "x-q-0001", CategoryID: "x"}
	yq := catalog.Question{ID: "y-q-0001", CategoryID: "y"}

	log.add(assignedGame("g1", time.Now().Add(-time.Hour), map[string]history.Assignment{
		"x:100": {Key: catalog.Fingerprint(xq, "x"), CategoryID: "x"},
		"y:100": {Key: catalog.Fingerprint(yq, "y"), CategoryID: "y"},
	}))

	tr := newTestTracker(t, Options{Remote: rs, Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))
	require.Equal(t, 1, tr.mirror.get(ctx)[catalog.Fingerprint(xq, "x")])

	cat := &catalog.Catalog{Categories: []catalog.Category{
		{ID: "x", Questions: []catalog.Question{xq}},
		{ID: "y", Questions: []catalog.Question{yq}},
	}}
	require.NoError(t, tr.ResetCategory(ctx, "x", cat))

	// Force a fresh pass: the pre-reset record must not re-mark X,
	// while Y survives.
	stats, err := tr.Reconcile(ctx, true)
	require.NoError(t, err)

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 0, usage[catalog.Fingerprint(xq, "x")])
	assert.Equal(t, 1, usage[catalog.Fingerprint(yq, "y")])
	assert.Equal(t, 1, stats.PerCategory["y"])
	assert.Equal(t, 0, stats.PerCategory["x"])
}

func TestResetCategoryLeavesPrefixSibling(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs, WriteInterval: time.Hour})
	tr.SetAccount("acct")

	gq := catalog.Question{ID: "q1", CategoryID: "geo"}
	eq := catalog.Question{ID: "q1", CategoryID: "geo-extra"}
	cat := &catalog.Catalog{Categories: []catalog.Category{
		{ID: "geo", Questions: []catalog.Question{gq}},
		{ID: "geo-extra", Questions: []catalog.Question{eq}},
	}}

	tr.mirror.update(ctx, func(u UsageMap) bool {
		u[catalog.Fingerprint(gq, "geo")] = 1
		u[catalog.Fingerprint(eq, "geo-extra")] = 1
		// Keys from a pack no longer on disk: one per category.
		u[catalog.KeyFromID("geo", "old")] = 1
		u[catalog.KeyFromID("geo-extra", "old")] = 1
		return true
	})

	require.NoError(t, tr.ResetCategory(ctx, "geo", cat))

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 0, usage[catalog.Fingerprint(gq, "geo")])
	assert.Equal(t, 0, usage[catalog.KeyFromID("geo", "old")],
		"stale keys of the target category still clear")
	assert.Equal(t, 1, usage[catalog.Fingerprint(eq, "geo-extra")],
		"sibling whose ID extends the target's is untouched")
	assert.Equal(t, 1, usage[catalog.KeyFromID("geo-extra", "old")])
}

func TestRebuildDropsDeletedGame(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	log := &memLog{}

	q1 := catalog.Question{ID: "geo-0001", CategoryID: "geo"}
	q2 := catalog.Question{ID: "sci-0001", CategoryID: "sci"}
	log.add(assignedGame("g1", time.Now().Add(-2*time.Hour), map[string]history.Assignment{
		"geo:100": {Key: catalog.Fingerprint(q1, "geo"), CategoryID: "geo"},
	}))
	log.add(assignedGame("g2", time.Now().Add(-time.Hour), map[string]history.Assignment{
		"sci:100": {Key: catalog.Fingerprint(q2, "sci"), CategoryID: "sci"},
	}))

	tr := newTestTracker(t, Options{Remote: rs, Log: log})
	tr.SetAccount("acct")
	require.True(t, tr.WaitForSync(ctx, 2*time.Second))
	require.Equal(t, 1, tr.mirror.get(ctx)[catalog.Fingerprint(q1, "geo")])

	// Deleting a game's record and rebuilding returns its questions to
	// the pool while other games' marks survive.
	log.remove("g1")
	stats, err := tr.Reconcile(ctx, true)
	require.NoError(t, err)

	usage := tr.mirror.get(ctx)
	assert.Equal(t, 0, usage[catalog.Fingerprint(q1, "geo")])
	assert.Equal(t, 1, usage[catalog.Fingerprint(q2, "sci")])
	assert.Equal(t, 0, stats.PerCategory["geo"])
	assert.Equal(t, 1, stats.PerCategory["sci"])
}

func TestResetAllWritesMarkerImmediately(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	tr := newTestTracker(t, Options{Remote: rs, WriteInterval: time.Hour})
	tr.SetAccount("acct")

	cat := makeCatalog("geo", 10)
	tr.UpdatePool(ctx, cat)
	tr.MarkUsed(cat.Categories[0].Questions[0], "geo")

	require.NoError(t, tr.ResetAll(ctx))

	doc := rs.Doc("acct")
	require.NotNil(t, doc)
	assert.Equal(t, 0, UsageMap(doc.Usage).UsedCount())
	require.NotNil(t, doc.LastResetTime, "global reset marker recorded")
	assert.Equal(t, 0, tr.Statistics(ctx).UsedCount)
}
