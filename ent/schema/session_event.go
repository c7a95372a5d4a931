package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records game session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("game_id").
			NotEmpty().
			Comment("Catalog identifier of the game played"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("difficulty").
			Default("").
			Comment("Selected difficulty profile (on start only)"),
		field.Int("score").
			Default(0).
			Comment("Final session score (on end only)"),
		field.Int("rounds_completed").
			Default(0).
			Comment("Rounds or levels completed (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual session duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("game_id"),
		index.Fields("action"),
	}
}
