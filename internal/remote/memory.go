package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used in tests and offline play.
// It mimics the real store's merge semantics by round-tripping the
// document through its JSON field names.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]map[string]any

	// LoadErr and MergeErr, when set, are returned by the corresponding
	// operations. Tests use these to simulate outages.
	LoadErr  error
	MergeErr error

	// MergeCalls counts Merge invocations, failed ones included.
	MergeCalls int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]any)}
}

func (m *MemoryStore) Load(_ context.Context, accountID string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	fields, ok := m.docs[accountID]
	if !ok {
		return nil, ErrNotFound
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal stored doc: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode stored doc: %w", err)
	}
	if doc.Usage == nil {
		doc.Usage = map[string]int{}
	}
	return &doc, nil
}

func (m *MemoryStore) Merge(_ context.Context, accountID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MergeCalls++
	if m.MergeErr != nil {
		return m.MergeErr
	}

	doc, ok := m.docs[accountID]
	if !ok {
		doc = make(map[string]any)
		m.docs[accountID] = doc
	}
	for k, v := range fields {
		// Round-trip through JSON so stored values are detached from
		// the caller's maps, like a real wire write.
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal field %s: %w", k, err)
		}
		var detached any
		if err := json.Unmarshal(raw, &detached); err != nil {
			return fmt.Errorf("detach field %s: %w", k, err)
		}
		doc[k] = detached
	}
	return nil
}

// Doc returns the decoded document for an account, or nil. Test helper.
func (m *MemoryStore) Doc(accountID string) *Document {
	doc, err := m.Load(context.Background(), accountID)
	if err != nil {
		return nil
	}
	return doc
}
