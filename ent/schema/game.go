package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Game is one played game: the history log that reconciliation replays.
// Records are appended when a board is dealt, updated as buttons are
// revealed, and deleted only by an explicit player action.
type Game struct {
	ent.Schema
}

func (Game) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Game) Fields() []ent.Field {
	return []ent.Field{
		field.String("game_id").
			Unique().
			Immutable().
			Comment("UUID assigned when the board is dealt"),
		field.String("account_id").
			Immutable().
			Comment("Account the game belongs to"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.JSON("assigned", map[string]any{}).
			Optional().
			Comment("Board button → assignment metadata (current format)"),
		field.JSON("legacy_used", []string{}).
			Optional().
			Comment("Flat used-identifier list (pre-assignment format)"),
	}
}

func (Game) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("account_id", "started_at"),
	}
}
