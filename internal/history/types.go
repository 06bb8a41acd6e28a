// Package history models the game-history log: the append-only record
// of played games that reconciliation treats as the source of truth for
// which questions a player has actually seen.
package history

import (
	"context"
	"strings"
	"time"

	"github.com/abhisek/quizbox/internal/catalog"
)

// RecordFormat tags which payload a GameRecord carries. Resolved once
// when a record is decoded so consumers never sniff field presence.
type RecordFormat int

const (
	// FormatAssigned is the current format: board button → assignment.
	FormatAssigned RecordFormat = iota
	// FormatLegacy is the pre-assignment format: a flat list of used
	// identifiers, one per revealed board button. Coarser than the
	// per-question key scheme; mapping onto it is best effort.
	FormatLegacy
)

// Assignment is one board button's question, as recorded when the board
// was dealt.
type Assignment struct {
	// Key is the usage-tracking key stored at assignment time. Older
	// assigned-format records may lack it, in which case it is rebuilt
	// from CategoryID and QuestionID.
	Key        string `json:"key,omitempty"`
	QuestionID string `json:"questionId,omitempty"`
	CategoryID string `json:"categoryId"`
	Points     int    `json:"points,omitempty"`
	Answered   bool   `json:"answered,omitempty"`
}

// UsageKey returns the usage-tracking key for this assignment.
func (a Assignment) UsageKey() string {
	if a.Key != "" {
		return a.Key
	}
	return catalog.KeyFromID(a.CategoryID, a.QuestionID)
}

// GameRecord is one played (or in-progress) game. Immutable once
// finished, except for deletion by the player.
type GameRecord struct {
	ID        string
	AccountID string
	StartedAt time.Time

	Format RecordFormat

	// Assigned maps board button ("geo:300") to its question.
	// Populated only for FormatAssigned.
	Assigned map[string]Assignment

	// LegacyUsed is the flat used-identifier list. Populated only for
	// FormatLegacy. Entries are either "<categoryID>|<questionID>" or a
	// bare pre-derived key.
	LegacyUsed []string
}

// Timestamp returns the record's position on the reset-marker timeline.
func (r *GameRecord) Timestamp() time.Time {
	return r.StartedAt
}

// ResolveFormat tags the record from its populated payload. Decoders
// call this once at ingestion.
func (r *GameRecord) ResolveFormat() {
	if len(r.Assigned) > 0 {
		r.Format = FormatAssigned
	} else {
		r.Format = FormatLegacy
	}
}

// SplitLegacyEntry breaks a legacy used-identifier into category and
// key. Entries without a category separator yield an empty category,
// which exempts them from per-category reset exclusion (there is
// nothing to match the marker against).
func SplitLegacyEntry(entry string) (categoryID, key string) {
	if i := strings.IndexByte(entry, '|'); i > 0 {
		categoryID = entry[:i]
		key = catalog.KeyFromID(categoryID, entry[i+1:])
		return categoryID, key
	}
	return "", entry
}

// Log lists the game history for an account.
type Log interface {
	ListGames(ctx context.Context, accountID string) ([]GameRecord, error)
}
