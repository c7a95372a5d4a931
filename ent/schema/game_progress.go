package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameProgress stores per-game cumulative progress. One row per game,
// keyed by the catalog game identifier. High score and levels completed
// only ever move upward; play time accumulates.
type GameProgress struct {
	ent.Schema
}

func (GameProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("game_id").
			NotEmpty().
			Unique().
			Comment("Catalog identifier of the game"),
		field.Int("high_score").
			Default(0).
			Comment("Best session score ever recorded"),
		field.Int("levels_completed").
			Default(0).
			Comment("Highest level index completed"),
		field.Time("last_played").
			Optional().
			Nillable().
			Comment("When the game was last played"),
		field.Int("total_play_time_secs").
			Default(0).
			Comment("Cumulative play time in seconds"),
	}
}

func (GameProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_id"),
	}
}
