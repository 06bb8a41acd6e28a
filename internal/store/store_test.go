package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/history"
	"github.com/abhisek/quizbox/internal/remote"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestFallbackRepoRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.FallbackRepo()
	ctx := context.Background()

	doc, err := repo.LoadDoc(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, doc, "missing key should load as nil")

	resetAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	in := &remote.Document{
		Usage:              map[string]int{"geo-q1": 1, "geo-q2": 0},
		PoolSize:           50,
		LastUpdated:        time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC),
		LastResetTime:      &resetAt,
		CategoryResetTimes: map[string]time.Time{"geo": resetAt},
	}
	require.NoError(t, repo.SaveDoc(ctx, "acct-1", in))

	out, err := repo.LoadDoc(ctx, "acct-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Usage, out.Usage)
	assert.Equal(t, 50, out.PoolSize)
	require.NotNil(t, out.LastResetTime)
	assert.True(t, out.LastResetTime.Equal(resetAt))

	// Upsert: a second save replaces, not duplicates.
	in.Usage["geo-q2"] = 1
	in.PoolSize = 51
	require.NoError(t, repo.SaveDoc(ctx, "acct-1", in))

	out, err = repo.LoadDoc(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, 51, out.PoolSize)
	assert.Equal(t, 1, out.Usage["geo-q2"])
}

func TestFallbackRepoKeysAreIsolated(t *testing.T) {
	st := openTestStore(t)
	repo := st.FallbackRepo()
	ctx := context.Background()

	require.NoError(t, repo.SaveDoc(ctx, "a", &remote.Document{Usage: map[string]int{"x": 1}}))
	require.NoError(t, repo.SaveDoc(ctx, "b", &remote.Document{Usage: map[string]int{"y": 1}}))

	docA, err := repo.LoadDoc(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"x": 1}, docA.Usage)
}

func TestGameRepoAppendListDelete(t *testing.T) {
	st := openTestStore(t)
	repo := st.GameRepo()
	ctx := context.Background()

	rec := &history.GameRecord{
		ID:        "game-1",
		AccountID: "acct-1",
		StartedAt: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
		Assigned: map[string]history.Assignment{
			"geo:100": {Key: "geo-geo-0001", CategoryID: "geo", QuestionID: "geo-0001", Points: 100},
			"sci:200": {CategoryID: "sci", QuestionID: "sci-0002", Points: 200},
		},
	}
	require.NoError(t, repo.Append(ctx, rec))

	legacy := &history.GameRecord{
		ID:         "game-0",
		AccountID:  "acct-1",
		StartedAt:  time.Date(2025, 12, 25, 19, 0, 0, 0, time.UTC),
		LegacyUsed: []string{"geo|geo-0009", "sci|sci-0004"},
	}
	require.NoError(t, repo.Append(ctx, legacy))

	// Another account's game must not leak into the listing.
	require.NoError(t, repo.Append(ctx, &history.GameRecord{
		ID: "game-x", AccountID: "acct-2", StartedAt: time.Now(),
	}))

	games, err := repo.ListGames(ctx, "acct-1")
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Ordered by start time: the legacy game first.
	assert.Equal(t, "game-0", games[0].ID)
	assert.Equal(t, history.FormatLegacy, games[0].Format)
	assert.Equal(t, "game-1", games[1].ID)
	assert.Equal(t, history.FormatAssigned, games[1].Format)
	assert.Equal(t, "geo-geo-0001", games[1].Assigned["geo:100"].UsageKey())

	require.NoError(t, repo.Delete(ctx, "game-0"))
	games, err = repo.ListGames(ctx, "acct-1")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "game-1", games[0].ID)
}

func TestGameRepoUpdateAndFinish(t *testing.T) {
	st := openTestStore(t)
	repo := st.GameRepo()
	ctx := context.Background()

	rec := &history.GameRecord{
		ID:        "game-1",
		AccountID: "acct-1",
		StartedAt: time.Now(),
		Assigned: map[string]history.Assignment{
			"geo:100": {CategoryID: "geo", QuestionID: "geo-0001"},
		},
	}
	require.NoError(t, repo.Append(ctx, rec))

	rec.Assigned["geo:100"] = history.Assignment{CategoryID: "geo", QuestionID: "geo-0001", Answered: true}
	require.NoError(t, repo.UpdateAssignments(ctx, "game-1", rec.Assigned))
	require.NoError(t, repo.Finish(ctx, "game-1", time.Now()))

	games, err := repo.ListGames(ctx, "acct-1")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.True(t, games[0].Assigned["geo:100"].Answered)
}
