package history

import (
	"testing"
	"time"
)

func TestResolveFormat(t *testing.T) {
	assigned := GameRecord{Assigned: map[string]Assignment{
		"geo:100": {CategoryID: "geo", QuestionID: "geo-0001"},
	}}
	assigned.ResolveFormat()
	if assigned.Format != FormatAssigned {
		t.Errorf("Format = %v, want FormatAssigned", assigned.Format)
	}

	legacy := GameRecord{LegacyUsed: []string{"geo|geo-0001"}}
	legacy.ResolveFormat()
	if legacy.Format != FormatLegacy {
		t.Errorf("Format = %v, want FormatLegacy", legacy.Format)
	}
}

func TestAssignmentUsageKeyPrefersStored(t *testing.T) {
	a := Assignment{Key: "geo-stored", CategoryID: "geo", QuestionID: "geo-0001"}
	if got := a.UsageKey(); got != "geo-stored" {
		t.Errorf("UsageKey = %q, want stored key", got)
	}

	b := Assignment{CategoryID: "geo", QuestionID: "geo-0001"}
	if got := b.UsageKey(); got != "geo-geo-0001" {
		t.Errorf("UsageKey = %q, want derived key", got)
	}
}

func TestSplitLegacyEntry(t *testing.T) {
	tests := []struct {
		entry    string
		category string
		key      string
	}{
		{"geo|geo-0001", "geo", "geo-geo-0001"},
		{"bare-key-value", "", "bare-key-value"},
		{"|leading", "", "|leading"},
	}
	for _, tt := range tests {
		cat, key := SplitLegacyEntry(tt.entry)
		if cat != tt.category || key != tt.key {
			t.Errorf("SplitLegacyEntry(%q) = (%q, %q), want (%q, %q)",
				tt.entry, cat, key, tt.category, tt.key)
		}
	}
}

func TestTimestamp(t *testing.T) {
	start := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	r := GameRecord{StartedAt: start}
	if !r.Timestamp().Equal(start) {
		t.Errorf("Timestamp = %v, want %v", r.Timestamp(), start)
	}
}
