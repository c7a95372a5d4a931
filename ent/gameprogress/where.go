// Code generated by ent, DO NOT EDIT.

package gameprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nandinis/edudeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLTE(FieldID, id))
}

// GameID applies equality check predicate on the "game_id" field. It's identical to GameIDEQ.
func GameID(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldGameID, v))
}

// HighScore applies equality check predicate on the "high_score" field. It's identical to HighScoreEQ.
func HighScore(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldHighScore, v))
}

// LevelsCompleted applies equality check predicate on the "levels_completed" field. It's identical to LevelsCompletedEQ.
func LevelsCompleted(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldLevelsCompleted, v))
}

// LastPlayed applies equality check predicate on the "last_played" field. It's identical to LastPlayedEQ.
func LastPlayed(v time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldLastPlayed, v))
}

// TotalPlayTimeSecs applies equality check predicate on the "total_play_time_secs" field. It's identical to TotalPlayTimeSecsEQ.
func TotalPlayTimeSecs(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldTotalPlayTimeSecs, v))
}

// GameIDEQ applies the EQ predicate on the "game_id" field.
func GameIDEQ(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldGameID, v))
}

// GameIDNEQ applies the NEQ predicate on the "game_id" field.
func GameIDNEQ(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNEQ(FieldGameID, v))
}

// GameIDIn applies the In predicate on the "game_id" field.
func GameIDIn(vs ...string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldIn(FieldGameID, vs...))
}

// GameIDNotIn applies the NotIn predicate on the "game_id" field.
func GameIDNotIn(vs ...string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNotIn(FieldGameID, vs...))
}

// GameIDGT applies the GT predicate on the "game_id" field.
func GameIDGT(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGT(FieldGameID, v))
}

// GameIDGTE applies the GTE predicate on the "game_id" field.
func GameIDGTE(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGTE(FieldGameID, v))
}

// GameIDLT applies the LT predicate on the "game_id" field.
func GameIDLT(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLT(FieldGameID, v))
}

// GameIDLTE applies the LTE predicate on the "game_id" field.
func GameIDLTE(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLTE(FieldGameID, v))
}

// GameIDContains applies the Contains predicate on the "game_id" field.
func GameIDContains(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldContains(FieldGameID, v))
}

// GameIDHasPrefix applies the HasPrefix predicate on the "game_id" field.
func GameIDHasPrefix(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldHasPrefix(FieldGameID, v))
}

// GameIDHasSuffix applies the HasSuffix predicate on the "game_id" field.
func GameIDHasSuffix(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldHasSuffix(FieldGameID, v))
}

// GameIDEqualFold applies the EqualFold predicate on the "game_id" field.
func GameIDEqualFold(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEqualFold(FieldGameID, v))
}

// GameIDContainsFold applies the ContainsFold predicate on the "game_id" field.
func GameIDContainsFold(v string) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldContainsFold(FieldGameID, v))
}

// HighScoreEQ applies the EQ predicate on the "high_score" field.
func HighScoreEQ(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldHighScore, v))
}

// HighScoreNEQ applies the NEQ predicate on the "high_score" field.
func HighScoreNEQ(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNEQ(FieldHighScore, v))
}

// HighScoreIn applies the In predicate on the "high_score" field.
func HighScoreIn(vs ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldIn(FieldHighScore, vs...))
}

// HighScoreNotIn applies the NotIn predicate on the "high_score" field.
func HighScoreNotIn(vs ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNotIn(FieldHighScore, vs...))
}

// HighScoreGT applies the GT predicate on the "high_score" field.
func HighScoreGT(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGT(FieldHighScore, v))
}

// HighScoreGTE applies the GTE predicate on the "high_score" field.
func HighScoreGTE(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGTE(FieldHighScore, v))
}

// HighScoreLT applies the LT predicate on the "high_score" field.
func HighScoreLT(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLT(FieldHighScore, v))
}

// HighScoreLTE applies the LTE predicate on the "high_score" field.
func HighScoreLTE(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLTE(FieldHighScore, v))
}

// LevelsCompletedEQ applies the EQ predicate on the "levels_completed" field.
func LevelsCompletedEQ(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldLevelsCompleted, v))
}

// LevelsCompletedNEQ applies the NEQ predicate on the "levels_completed" field.
func LevelsCompletedNEQ(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNEQ(FieldLevelsCompleted, v))
}

// LevelsCompletedIn applies the In predicate on the "levels_completed" field.
func LevelsCompletedIn(vs ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldIn(FieldLevelsCompleted, vs...))
}

// LevelsCompletedNotIn applies the NotIn predicate on the "levels_completed" field.
func LevelsCompletedNotIn(vs ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNotIn(FieldLevelsCompleted, vs...))
}

// LevelsCompletedGT applies the GT predicate on the "levels_completed" field.
func LevelsCompletedGT(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGT(FieldLevelsCompleted, v))
}

// LevelsCompletedGTE applies the GTE predicate on the "levels_completed" field.
func LevelsCompletedGTE(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGTE(FieldLevelsCompleted, v))
}

// LevelsCompletedLT applies the LT predicate on the "levels_completed" field.
func LevelsCompletedLT(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLT(FieldLevelsCompleted, v))
}

// LevelsCompletedLTE applies the LTE predicate on the "levels_completed" field.
func LevelsCompletedLTE(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLTE(FieldLevelsCompleted, v))
}

// LastPlayedEQ applies the EQ predicate on the "last_played" field.
func LastPlayedEQ(v time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldLastPlayed, v))
}

// LastPlayedNEQ applies the NEQ predicate on the "last_played" field.
func LastPlayedNEQ(v time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNEQ(FieldLastPlayed, v))
}

// LastPlayedIn applies the In predicate on the "last_played" field.
func LastPlayedIn(vs ...time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldIn(FieldLastPlayed, vs...))
}

// LastPlayedNotIn applies the NotIn predicate on the "last_played" field.
func LastPlayedNotIn(vs ...time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNotIn(FieldLastPlayed, vs...))
}

// LastPlayedGT applies the GT predicate on the "last_played" field.
func LastPlayedGT(v time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGT(FieldLastPlayed, v))
}

// LastPlayedGTE applies the GTE predicate on the "last_played" field.
func LastPlayedGTE(v time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGTE(FieldLastPlayed, v))
}

// LastPlayedLT applies the LT predicate on the "last_played" field.
func LastPlayedLT(v time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLT(FieldLastPlayed, v))
}

// LastPlayedLTE applies the LTE predicate on the "last_played" field.
func LastPlayedLTE(v time.Time) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLTE(FieldLastPlayed, v))
}

// LastPlayedIsNil applies the IsNil predicate on the "last_played" field.
func LastPlayedIsNil() predicate.GameProgress {
	return predicate.GameProgress(sql.FieldIsNull(FieldLastPlayed))
}

// LastPlayedNotNil applies the NotNil predicate on the "last_played" field.
func LastPlayedNotNil() predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNotNull(FieldLastPlayed))
}

// TotalPlayTimeSecsEQ applies the EQ predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsEQ(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldEQ(FieldTotalPlayTimeSecs, v))
}

// TotalPlayTimeSecsNEQ applies the NEQ predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsNEQ(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNEQ(FieldTotalPlayTimeSecs, v))
}

// TotalPlayTimeSecsIn applies the In predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsIn(vs ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldIn(FieldTotalPlayTimeSecs, vs...))
}

// TotalPlayTimeSecsNotIn applies the NotIn predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsNotIn(vs ...int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldNotIn(FieldTotalPlayTimeSecs, vs...))
}

// TotalPlayTimeSecsGT applies the GT predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsGT(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGT(FieldTotalPlayTimeSecs, v))
}

// TotalPlayTimeSecsGTE applies the GTE predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsGTE(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldGTE(FieldTotalPlayTimeSecs, v))
}

// TotalPlayTimeSecsLT applies the LT predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsLT(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLT(FieldTotalPlayTimeSecs, v))
}

// TotalPlayTimeSecsLTE applies the LTE predicate on the "total_play_time_secs" field.
func TotalPlayTimeSecsLTE(v int) predicate.GameProgress {
	return predicate.GameProgress(sql.FieldLTE(FieldTotalPlayTimeSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameProgress) predicate.GameProgress {
	return predicate.GameProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameProgress) predicate.GameProgress {
	return predicate.GameProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameProgress) predicate.GameProgress {
	return predicate.GameProgress(sql.NotPredicates(p))
}
