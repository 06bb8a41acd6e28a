// Package remote talks to the per-account usage document in the shared
// document store. One document per account, partial-field merge writes,
// at-least-once visibility. Everything here is best-effort from the
// game's point of view: callers degrade to local state when the store
// is unreachable.
package remote

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports that no document exists yet for the account.
// First login on a new account is expected to hit this.
var ErrNotFound = errors.New("remote: document not found")

// Document is the per-account usage document schema.
type Document struct {
	// Usage maps question key to use count (0 = unused).
	Usage map[string]int `json:"usedQuestions"`
	// PoolSize is the total distinct question count the usage map is
	// measured against.
	PoolSize int `json:"totalQuestionPool"`

	LastUpdated time.Time `json:"lastUpdated"`

	// LastResetTime, when set, invalidates all game history older than
	// it during reconciliation.
	LastResetTime *time.Time `json:"lastResetTime,omitempty"`
	// CategoryResetTimes does the same per category.
	CategoryResetTimes map[string]time.Time `json:"categoryResetTimes,omitempty"`
}

// Clone returns a deep copy. Callers hand Documents across goroutines;
// shared maps would be a footgun.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	if d.Usage != nil {
		out.Usage = make(map[string]int, len(d.Usage))
		for k, v := range d.Usage {
			out.Usage[k] = v
		}
	}
	if d.CategoryResetTimes != nil {
		out.CategoryResetTimes = make(map[string]time.Time, len(d.CategoryResetTimes))
		for k, v := range d.CategoryResetTimes {
			out.CategoryResetTimes[k] = v
		}
	}
	if d.LastResetTime != nil {
		t := *d.LastResetTime
		out.LastResetTime = &t
	}
	return &out
}

// Store is the remote document store contract.
type Store interface {
	// Load fetches the account's document. Returns ErrNotFound when the
	// account has no document yet.
	Load(ctx context.Context, accountID string) (*Document, error)

	// Merge writes the given top-level fields into the account's
	// document, preserving fields not named. The document is created if
	// it does not exist.
	Merge(ctx context.Context, accountID string, fields map[string]any) error
}

// Field names accepted by Merge. Kept as constants so the write paths
// and the document schema cannot drift apart silently.
const (
	FieldUsage              = "usedQuestions"
	FieldPoolSize           = "totalQuestionPool"
	FieldLastUpdated        = "lastUpdated"
	FieldLastResetTime      = "lastResetTime"
	FieldCategoryResetTimes = "categoryResetTimes"
)
