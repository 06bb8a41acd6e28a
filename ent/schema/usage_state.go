package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UsageState is the local persistent fallback for the remote usage
// document: one row per account key, holding the last known usage map
// so that nothing is lost while the remote store is unreachable (or
// while no account is signed in at all).
type UsageState struct {
	ent.Schema
}

func (UsageState) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (UsageState) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_key").
			Unique().
			Comment("Account ID, or the fixed anonymous key"),
		field.JSON("usage", map[string]int{}).
			Comment("Question key → use count"),
		field.Int("pool_size").
			Default(0),
		field.Time("last_updated").
			Default(time.Now),
		field.Time("last_reset_time").
			Optional().
			Nillable(),
		field.JSON("category_reset_times", map[string]time.Time{}).
			Optional(),
	}
}
