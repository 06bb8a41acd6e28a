package catalog

import (
	"encoding/json"
	"testing"
)

func TestFingerprintDurableID(t *testing.T) {
	q := Question{ID: "q-20240112", Text: "Capital of France?", Answer: "Paris"}
	got := Fingerprint(q, "geo")
	want := "geo-q-20240112"
	if got != want {
		t.Errorf("Fingerprint = %q, want %q", got, want)
	}
}

func TestFingerprintShortIDFallsBack(t *testing.T) {
	q := Question{ID: "7", Text: "Capital of France?", Answer: "Paris"}
	got := Fingerprint(q, "geo")
	if got == "geo-7" {
		t.Fatal("short ID should not be trusted as durable")
	}
	want := "geo-capitaloffrance-paris"
	if got != want {
		t.Errorf("Fingerprint = %q, want %q", got, want)
	}
}

func TestFingerprintStable(t *testing.T) {
	q := Question{CategoryID: "riddles", Text: "What has keys but no locks?", Answer: "A piano"}
	first := Fingerprint(q, "")
	for range 10 {
		if got := Fingerprint(q, ""); got != first {
			t.Fatalf("Fingerprint not stable: %q vs %q", got, first)
		}
	}
}

// JSON field ordering must not affect the derived key.
func TestFingerprintFieldOrderIndependent(t *testing.T) {
	a := `{"text":"What runs but never walks?","answer":"A river","categoryId":"riddles"}`
	b := `{"categoryId":"riddles","answer":"A river","text":"What runs but never walks?"}`

	var qa, qb Question
	if err := json.Unmarshal([]byte(a), &qa); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(b), &qb); err != nil {
		t.Fatal(err)
	}
	if Fingerprint(qa, "") != Fingerprint(qb, "") {
		t.Error("fingerprint depends on JSON field order")
	}
}

// Two riddles that open identically must not collide: the prefix budget
// has to be wide enough to reach the text where they diverge.
func TestFingerprintCommonPrefixNoCollision(t *testing.T) {
	a := Question{Text: "I speak without a mouth and hear without ears. What am I?", Answer: "An echo"}
	b := Question{Text: "I speak without a mouth and hear without ears, yet I follow you. What am I?", Answer: "A shadow"}
	if Fingerprint(a, "riddles") == Fingerprint(b, "riddles") {
		t.Error("distinct riddles with a common prefix collided")
	}
}

func TestFingerprintHebrewPreserved(t *testing.T) {
	q := Question{Text: "מהי בירת צרפת?", Answer: "פריז"}
	got := Fingerprint(q, "geo")
	want := "geo-מהיבירתצרפת-פריז"
	if got != want {
		t.Errorf("Fingerprint = %q, want %q", got, want)
	}
}

func TestNormalizeKeyStripsPunctuation(t *testing.T) {
	got := normalizeKey("What's  UP, Doc?!", 64)
	if got != "whatsupdoc" {
		t.Errorf("normalizeKey = %q, want %q", got, "whatsupdoc")
	}
}

func TestCatalogSizePrefersMaterialized(t *testing.T) {
	c := Catalog{Categories: []Category{
		{ID: "a", Questions: []Question{{ID: "a-0001-x"}, {ID: "a-0002-x"}}},
		{ID: "b", QuestionIDs: []string{"b1", "b2", "b3"}},
	}}
	if got := c.Size(); got != 5 {
		t.Errorf("Size = %d, want 5", got)
	}
	if got := len(c.Keys()); got != 5 {
		t.Errorf("len(Keys) = %d, want 5", got)
	}
}

func TestCatalogMergeDeduplicates(t *testing.T) {
	base := Catalog{Categories: []Category{
		{ID: "geo", Questions: []Question{{ID: "geo-0001", Text: "x"}}},
	}}
	incoming := Catalog{Categories: []Category{
		{ID: "geo", Questions: []Question{{ID: "geo-0001", Text: "x"}, {ID: "geo-0002", Text: "y"}}},
		{ID: "sci", Questions: []Question{{ID: "sci-0001", Text: "z"}}},
	}}
	base.Merge(&incoming)

	if got := base.Size(); got != 3 {
		t.Errorf("Size after merge = %d, want 3", got)
	}
	if base.Category("sci") == nil {
		t.Error("merged category missing")
	}
}
