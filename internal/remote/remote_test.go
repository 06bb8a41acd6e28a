package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestClientLoadAndMerge(t *testing.T) {
	docs := map[string]map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodGet:
			doc, ok := docs["acct-1"]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(doc)
		case http.MethodPatch:
			var fields map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
			doc, ok := docs["acct-1"]
			if !ok {
				doc = map[string]any{}
				docs["acct-1"] = doc
			}
			for k, v := range fields {
				doc[k] = v
			}
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit")
	ctx := context.Background()

	_, err := c.Load(ctx, "acct-1")
	require.ErrorIs(t, err, ErrNotFound)

	err = c.Merge(ctx, "acct-1", map[string]any{
		FieldUsage:    map[string]int{"geo-q1": 1},
		FieldPoolSize: 50,
	})
	require.NoError(t, err)

	// Merge preserves fields not named in the write.
	err = c.Merge(ctx, "acct-1", map[string]any{FieldUsage: map[string]int{"geo-q1": 1, "geo-q2": 1}})
	require.NoError(t, err)

	doc, err := c.Load(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, 50, doc.PoolSize)
	assert.Equal(t, map[string]int{"geo-q1": 1, "geo-q2": 1}, doc.Usage)
}

func TestClientServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Load(context.Background(), "a")
	var unavail *ErrUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.Equal(t, http.StatusBadGateway, unavail.Status)
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"totalQuestionPool": 10})
	}))
	defer srv.Close()

	st := WithRetry(NewClient(srv.URL, ""), fastRetry(4))
	doc, err := st.Load(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 10, doc.PoolSize)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryDoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := WithRetry(NewClient(srv.URL, ""), fastRetry(5)).Load(context.Background(), "a")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := NewMemoryStore()
	inner.MergeErr = &ErrUnavailable{Status: 503}

	err := WithRetry(inner, fastRetry(3)).Merge(context.Background(), "a", map[string]any{FieldPoolSize: 1})
	require.Error(t, err)
	assert.Equal(t, 3, inner.MergeCalls)
}

func TestRetryRespectsContextCancel(t *testing.T) {
	inner := NewMemoryStore()
	inner.LoadErr = &ErrUnavailable{Status: 503}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := WithRetry(inner, RetryConfig{MaxAttempts: 5, InitialWait: time.Second, MaxWait: time.Second, Multiplier: 1}).Load(ctx, "a")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStoreMergeDetaches(t *testing.T) {
	m := NewMemoryStore()
	usage := map[string]int{"k": 1}
	require.NoError(t, m.Merge(context.Background(), "a", map[string]any{FieldUsage: usage}))

	usage["k"] = 0 // mutate caller copy after the write
	doc := m.Doc("a")
	require.NotNil(t, doc)
	assert.Equal(t, 1, doc.Usage["k"], "stored doc must be detached from caller maps")
}

func TestDocumentClone(t *testing.T) {
	now := time.Now()
	d := &Document{
		Usage:              map[string]int{"a": 1},
		PoolSize:           5,
		LastResetTime:      &now,
		CategoryResetTimes: map[string]time.Time{"geo": now},
	}
	c := d.Clone()
	c.Usage["a"] = 0
	c.CategoryResetTimes["geo"] = now.Add(time.Hour)

	assert.Equal(t, 1, d.Usage["a"])
	assert.Equal(t, now, d.CategoryResetTimes["geo"])

	var nilDoc *Document
	assert.Nil(t, nilDoc.Clone())
}
