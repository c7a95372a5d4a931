// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nandinis/edudeck/ent/gameprogress"
	"github.com/nandinis/edudeck/ent/schema"
	"github.com/nandinis/edudeck/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gameprogressFields := schema.GameProgress{}.Fields()
	_ = gameprogressFields
	// gameprogressDescGameID is the schema descriptor for game_id field.
	gameprogressDescGameID := gameprogressFields[0].Descriptor()
	// gameprogress.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	gameprogress.GameIDValidator = gameprogressDescGameID.Validators[0].(func(string) error)
	// gameprogressDescHighScore is the schema descriptor for high_score field.
	gameprogressDescHighScore := gameprogressFields[1].Descriptor()
	// gameprogress.DefaultHighScore holds the default value on creation for the high_score field.
	gameprogress.DefaultHighScore = gameprogressDescHighScore.Default.(int)
	// gameprogressDescLevelsCompleted is the schema descriptor for levels_completed field.
	gameprogressDescLevelsCompleted := gameprogressFields[2].Descriptor()
	// gameprogress.DefaultLevelsCompleted holds the default value on creation for the levels_completed field.
	gameprogress.DefaultLevelsCompleted = gameprogressDescLevelsCompleted.Default.(int)
	// gameprogressDescTotalPlayTimeSecs is the schema descriptor for total_play_time_secs field.
	gameprogressDescTotalPlayTimeSecs := gameprogressFields[4].Descriptor()
	// gameprogress.DefaultTotalPlayTimeSecs holds the default value on creation for the total_play_time_secs field.
	gameprogress.DefaultTotalPlayTimeSecs = gameprogressDescTotalPlayTimeSecs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescGameID is the schema descriptor for game_id field.
	sessioneventDescGameID := sessioneventFields[1].Descriptor()
	// sessionevent.GameIDValidator is a validator for the "game_id" field. It is called by the builders before save.
	sessionevent.GameIDValidator = sessioneventDescGameID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDifficulty is the schema descriptor for difficulty field.
	sessioneventDescDifficulty := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	sessionevent.DefaultDifficulty = sessioneventDescDifficulty.Default.(string)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescRoundsCompleted is the schema descriptor for rounds_completed field.
	sessioneventDescRoundsCompleted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultRoundsCompleted holds the default value on creation for the rounds_completed field.
	sessionevent.DefaultRoundsCompleted = sessioneventDescRoundsCompleted.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
