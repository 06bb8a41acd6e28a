// Package usage tracks which trivia questions an account has already
// seen, so no question repeats until the whole pool has been played
// through. State lives in three places with decreasing authority: the
// remote per-account document, the local SQLite fallback, and an
// in-memory mirror. The tracker keeps all three reconcilable and never
// lets a storage failure interrupt gameplay.
package usage

import (
	"time"
)

// anonymousKey is the fixed fallback-store key used while no account is
// signed in.
const anonymousKey = "local-player"

// UsageMap maps question key to use count. 0 means unused; anything
// greater counts as used. Values above 1 are tolerated but carry no
// extra meaning.
type UsageMap map[string]int

// Used reports whether the key counts as used.
func (m UsageMap) Used(key string) bool {
	return m[key] > 0
}

// UsedCount returns the number of used keys.
func (m UsageMap) UsedCount() int {
	n := 0
	for _, v := range m {
		if v > 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (m UsageMap) Clone() UsageMap {
	out := make(UsageMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Stats is the tracker's public progress summary.
type Stats struct {
	PoolSize             int
	UsedCount            int
	UnusedCount          int
	CompletionPercentage float64
	// CycleComplete reports that the pool was exhausted and usage was
	// reset. Cleared by the next mark or an explicit reset.
	CycleComplete bool
}

// ReconcileStats summarizes one reconciliation pass.
type ReconcileStats struct {
	// Synced is the number of distinct question keys recovered from the
	// game history.
	Synced int
	// PerCategory breaks Synced down by category for diagnostics.
	PerCategory map[string]int
}

func accountKeyFor(accountID string) string {
	if accountID == "" {
		return anonymousKey
	}
	return accountID
}

func nowFunc(fn func() time.Time) func() time.Time {
	if fn != nil {
		return fn
	}
	return time.Now
}
