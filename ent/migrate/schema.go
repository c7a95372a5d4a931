// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GameProgressesColumns holds the columns for the "game_progresses" table.
	GameProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "game_id", Type: field.TypeString, Unique: true},
		{Name: "high_score", Type: field.TypeInt, Default: 0},
		{Name: "levels_completed", Type: field.TypeInt, Default: 0},
		{Name: "last_played", Type: field.TypeTime, Nullable: true},
		{Name: "total_play_time_secs", Type: field.TypeInt, Default: 0},
	}
	// GameProgressesTable holds the schema information for the "game_progresses" table.
	GameProgressesTable = &schema.Table{
		Name:       "game_progresses",
		Columns:    GameProgressesColumns,
		PrimaryKey: []*schema.Column{GameProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gameprogress_game_id",
				Unique:  false,
				Columns: []*schema.Column{GameProgressesColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "game_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "rounds_completed", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_game_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GameProgressesTable,
		SessionEventsTable,
	}
)

func init() {
}
