package catalog

import (
	"strings"
	"unicode"
)

// Key derivation for usage tracking.
//
// Every question must map to the same key on every device and in every
// session, because the key is what the remote usage document is indexed
// by. Durable pack-assigned IDs are preferred; packs that predate IDs
// fall back to a content-derived key. The fallback deliberately keeps
// the historical scheme (bounded prefixes of question and answer text)
// so that keys already persisted remotely stay matchable — switching to
// a full-content hash would orphan them.

const (
	// minDurableIDLen guards against junk IDs (empty strings, single
	// characters from hand-edited packs) being trusted as durable.
	minDurableIDLen = 6

	// Prefix budgets for the content fallback. Long enough that
	// questions sharing a common opening (riddles often do) still
	// diverge within the window.
	textPrefixRunes   = 48
	answerPrefixRunes = 24
)

// Fingerprint derives the usage-tracking key for a question. The result
// is deterministic: it depends only on the question's durable ID or, if
// none, its category, text and answer content.
func Fingerprint(q Question, categoryID string) string {
	cat := categoryID
	if cat == "" {
		cat = q.CategoryID
	}
	if len(q.ID) >= minDurableIDLen {
		return KeyFromID(cat, q.ID)
	}
	return cat + "-" + normalizeKey(q.Text, textPrefixRunes) + "-" + normalizeKey(q.Answer, answerPrefixRunes)
}

// KeyFromID builds the key for a question with a durable identifier.
func KeyFromID(categoryID, id string) string {
	return categoryID + "-" + id
}

// normalizeKey strips everything outside the key-safe script allowlist
// (Latin letters, digits, Hebrew) and truncates to at most max runes.
// Latin letters are lowercased so that cosmetic edits to casing don't
// change the key.
func normalizeKey(s string, max int) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if !keySafe(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		n++
		if n >= max {
			break
		}
	}
	return b.String()
}

func keySafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case unicode.Is(unicode.Hebrew, r):
		return true
	}
	return false
}
