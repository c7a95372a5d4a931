// Code generated by ent, DO NOT EDIT.

package gameprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gameprogress type in the database.
	Label = "game_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGameID holds the string denoting the game_id field in the database.
	FieldGameID = "game_id"
	// FieldHighScore holds the string denoting the high_score field in the database.
	FieldHighScore = "high_score"
	// FieldLevelsCompleted holds the string denoting the levels_completed field in the database.
	FieldLevelsCompleted = "levels_completed"
	// FieldLastPlayed holds the string denoting the last_played field in the database.
	FieldLastPlayed = "last_played"
	// FieldTotalPlayTimeSecs holds the string denoting the total_play_time_secs field in the database.
	FieldTotalPlayTimeSecs = "total_play_time_secs"
	// Table holds the table name of the gameprogress in the database.
	Table = "game_progresses"
)

// Columns holds all SQL columns for gameprogress fields.
var Columns = []string{
	FieldID,
	FieldGameID,
	FieldHighScore,
	FieldLevelsCompleted,
	FieldLastPlayed,
	FieldTotalPlayTimeSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	GameIDValidator func(string) error
	// DefaultHighScore holds the default value on creation for the "high_score" field.
	DefaultHighScore int
	// DefaultLevelsCompleted holds the default value on creation for the "levels_completed" field.
	DefaultLevelsCompleted int
	// DefaultTotalPlayTimeSecs holds the default value on creation for the "total_play_time_secs" field.
	DefaultTotalPlayTimeSecs int
)

// OrderOption defines the ordering options for the GameProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGameID orders the results by the game_id field.
func ByGameID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGameID, opts...).ToFunc()
}

// ByHighScore orders the results by the high_score field.
func ByHighScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighScore, opts...).ToFunc()
}

// ByLevelsCompleted orders the results by the levels_completed field.
func ByLevelsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelsCompleted, opts...).ToFunc()
}

// ByLastPlayed orders the results by the last_played field.
func ByLastPlayed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPlayed, opts...).ToFunc()
}

// ByTotalPlayTimeSecs orders the results by the total_play_time_secs field.
func ByTotalPlayTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPlayTimeSecs, opts...).ToFunc()
}
