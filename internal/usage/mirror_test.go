package usage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbox/internal/remote"
)

func TestMirrorSharesInflightLoad(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Merge(ctx, "acct", map[string]any{
		remote.FieldUsage: map[string]int{"geo-A": 1},
	}))

	gate := make(chan struct{})
	cs := &countingStore{Store: rs, gate: gate}
	m := newMirror(cs, newMemFallback())
	m.reset("acct")

	var wg sync.WaitGroup
	results := make([]UsageMap, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.get(ctx)
		}(i)
	}

	time.Sleep(20 * time.Millisecond) // let all callers pile up
	close(gate)
	wg.Wait()

	assert.Equal(t, 1, cs.loadCount(), "concurrent gets share one remote read")
	for _, u := range results {
		assert.Equal(t, 1, u["geo-A"])
	}
}

func TestMirrorRemoteErrorFallsBackLocally(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	rs.LoadErr = &remote.ErrUnavailable{Status: 503}

	fb := newMemFallback()
	require.NoError(t, fb.SaveDoc(ctx, "acct", &remote.Document{
		Usage: map[string]int{"geo-A": 1},
	}))

	m := newMirror(rs, fb)
	m.reset("acct")

	usage := m.get(ctx)
	assert.Equal(t, 1, usage["geo-A"], "remote outage degrades to fallback, no error surfaced")
}

func TestMirrorAnonymousUsesFixedKey(t *testing.T) {
	ctx := context.Background()
	fb := newMemFallback()
	require.NoError(t, fb.SaveDoc(ctx, anonymousKey, &remote.Document{
		Usage: map[string]int{"geo-A": 1},
	}))

	m := newMirror(remote.NewMemoryStore(), fb)
	usage := m.get(ctx)
	assert.Equal(t, 1, usage["geo-A"])
}

func TestMirrorStaleLoadDoesNotPolluteNewAccount(t *testing.T) {
	ctx := context.Background()
	rs := remote.NewMemoryStore()
	require.NoError(t, rs.Merge(ctx, "alice", map[string]any{
		remote.FieldUsage: map[string]int{"geo-A": 1},
	}))

	gate := make(chan struct{})
	cs := &countingStore{Store: rs, gate: gate}
	m := newMirror(cs, newMemFallback())
	m.reset("alice")

	done := make(chan struct{})
	go func() {
		m.get(ctx) // blocks on the gate
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)

	m.reset("bob") // account switch while alice's load is in flight
	close(gate)
	<-done

	cs.mu.Lock()
	cs.gate = nil
	cs.mu.Unlock()

	usage := m.get(ctx)
	assert.Equal(t, 0, usage["geo-A"], "alice's stale load must not populate bob's cache")
}

func TestMirrorGetReturnsSnapshots(t *testing.T) {
	ctx := context.Background()
	m := newMirror(nil, newMemFallback())

	m.update(ctx, func(u UsageMap) bool {
		u["k"] = 1
		return true
	})
	snap := m.get(ctx)
	snap["k"] = 0

	assert.Equal(t, 1, m.get(ctx)["k"], "callers mutate copies, not the cache")
}
