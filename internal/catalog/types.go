package catalog

// Question is a single trivia question as delivered by a question pack.
type Question struct {
	// ID is the durable per-question identifier assigned by the pack
	// author. Older packs omit it, in which case usage tracking falls
	// back to content-derived keys.
	ID         string `json:"id,omitempty"`
	CategoryID string `json:"categoryId"`
	Text       string `json:"text"`
	Answer     string `json:"answer"`
	// Points is the board row value (100–500). Doubles as the
	// difficulty tier for availability filtering.
	Points int `json:"points"`
}

// Category groups questions under one board column.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Questions holds fully materialized question content.
	Questions []Question `json:"questions,omitempty"`
	// QuestionIDs is the lightweight form used when a pack manifest has
	// been indexed but its full content not yet loaded. Only one of
	// Questions/QuestionIDs is normally populated.
	QuestionIDs []string `json:"questionIds,omitempty"`
}

// Catalog is the full set of categories a player can draw a board from.
type Catalog struct {
	Categories []Category
}

// Size returns the total count of distinct questions in the catalog,
// preferring materialized questions and falling back to ID lists for
// categories whose content has not been fetched.
func (c *Catalog) Size() int {
	n := 0
	for _, cat := range c.Categories {
		if len(cat.Questions) > 0 {
			n += len(cat.Questions)
		} else {
			n += len(cat.QuestionIDs)
		}
	}
	return n
}

// Keys returns the usage-tracking key of every question the catalog
// knows about, in category order.
func (c *Catalog) Keys() []string {
	var keys []string
	for _, cat := range c.Categories {
		if len(cat.Questions) > 0 {
			for _, q := range cat.Questions {
				keys = append(keys, Fingerprint(q, cat.ID))
			}
			continue
		}
		for _, id := range cat.QuestionIDs {
			keys = append(keys, KeyFromID(cat.ID, id))
		}
	}
	return keys
}

// Category returns the category with the given ID, or nil.
func (c *Catalog) Category(id string) *Category {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return &c.Categories[i]
		}
	}
	return nil
}

// Merge folds another catalog into this one, combining categories that
// share an ID and deduplicating questions by key.
func (c *Catalog) Merge(other *Catalog) {
	for _, oc := range other.Categories {
		existing := c.Category(oc.ID)
		if existing == nil {
			c.Categories = append(c.Categories, oc)
			continue
		}
		seen := make(map[string]bool, len(existing.Questions))
		for _, q := range existing.Questions {
			seen[Fingerprint(q, existing.ID)] = true
		}
		for _, q := range oc.Questions {
			if !seen[Fingerprint(q, oc.ID)] {
				existing.Questions = append(existing.Questions, q)
			}
		}
		for _, id := range oc.QuestionIDs {
			if !containsString(existing.QuestionIDs, id) {
				existing.QuestionIDs = append(existing.QuestionIDs, id)
			}
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
