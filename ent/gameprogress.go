// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nandinis/edudeck/ent/gameprogress"
)

// GameProgress is the model entity for the GameProgress schema.
type GameProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Catalog identifier of the game
	GameID string `json:"game_id,omitempty"`
	// Best session score ever recorded
	HighScore int `json:"high_score,omitempty"`
	// Highest level index completed
	LevelsCompleted int `json:"levels_completed,omitempty"`
	// When the game was last played
	LastPlayed *time.Time `json:"last_played,omitempty"`
	// Cumulative play time in seconds
	TotalPlayTimeSecs int `json:"total_play_time_secs,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gameprogress.FieldID, gameprogress.FieldHighScore, gameprogress.FieldLevelsCompleted, gameprogress.FieldTotalPlayTimeSecs:
			values[i] = new(sql.NullInt64)
		case gameprogress.FieldGameID:
			values[i] = new(sql.NullString)
		case gameprogress.FieldLastPlayed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameProgress fields.
func (_m *GameProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gameprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gameprogress.FieldGameID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_id", values[i])
			} else if value.Valid {
				_m.GameID = value.String
			}
		case gameprogress.FieldHighScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_score", values[i])
			} else if value.Valid {
				_m.HighScore = int(value.Int64)
			}
		case gameprogress.FieldLevelsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field levels_completed", values[i])
			} else if value.Valid {
				_m.LevelsCompleted = int(value.Int64)
			}
		case gameprogress.FieldLastPlayed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_played", values[i])
			} else if value.Valid {
				_m.LastPlayed = new(time.Time)
				*_m.LastPlayed = value.Time
			}
		case gameprogress.FieldTotalPlayTimeSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_play_time_secs", values[i])
			} else if value.Valid {
				_m.TotalPlayTimeSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameProgress.
// This includes values selected through modifiers, order, etc.
func (_m *GameProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GameProgress.
// Note that you need to call GameProgress.Unwrap() before calling this method if this GameProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GameProgress) Update() *GameProgressUpdateOne {
	return NewGameProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GameProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GameProgress) Unwrap() *GameProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GameProgress) String() string {
	var builder strings.Builder
	builder.WriteString("GameProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("game_id=")
	builder.WriteString(_m.GameID)
	builder.WriteString(", ")
	builder.WriteString("high_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighScore))
	builder.WriteString(", ")
	builder.WriteString("levels_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelsCompleted))
	builder.WriteString(", ")
	if v := _m.LastPlayed; v != nil {
		builder.WriteString("last_played=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_play_time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPlayTimeSecs))
	builder.WriteByte(')')
	return builder.String()
}

// GameProgresses is a parsable slice of GameProgress.
type GameProgresses []*GameProgress
