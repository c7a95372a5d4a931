// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nandinis/edudeck/ent/gameprogress"
	"github.com/nandinis/edudeck/ent/predicate"
)

// GameProgressUpdate is the builder for updating GameProgress entities.
type GameProgressUpdate struct {
	config
	hooks    []Hook
	mutation *GameProgressMutation
}

// Where appends a list predicates to the GameProgressUpdate builder.
func (_u *GameProgressUpdate) Where(ps ...predicate.GameProgress) *GameProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGameID sets the "game_id" field.
func (_u *GameProgressUpdate) SetGameID(v string) *GameProgressUpdate {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *GameProgressUpdate) SetNillableGameID(v *string) *GameProgressUpdate {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetHighScore sets the "high_score" field.
func (_u *GameProgressUpdate) SetHighScore(v int) *GameProgressUpdate {
	_u.mutation.ResetHighScore()
	_u.mutation.SetHighScore(v)
	return _u
}

// SetNillableHighScore sets the "high_score" field if the given value is not nil.
func (_u *GameProgressUpdate) SetNillableHighScore(v *int) *GameProgressUpdate {
	if v != nil {
		_u.SetHighScore(*v)
	}
	return _u
}

// AddHighScore adds value to the "high_score" field.
func (_u *GameProgressUpdate) AddHighScore(v int) *GameProgressUpdate {
	_u.mutation.AddHighScore(v)
	return _u
}

// SetLevelsCompleted sets the "levels_completed" field.
func (_u *GameProgressUpdate) SetLevelsCompleted(v int) *GameProgressUpdate {
	_u.mutation.ResetLevelsCompleted()
	_u.mutation.SetLevelsCompleted(v)
	return _u
}

// SetNillableLevelsCompleted sets the "levels_completed" field if the given value is not nil.
func (_u *GameProgressUpdate) SetNillableLevelsCompleted(v *int) *GameProgressUpdate {
	if v != nil {
		_u.SetLevelsCompleted(*v)
	}
	return _u
}

// AddLevelsCompleted adds value to the "levels_completed" field.
func (_u *GameProgressUpdate) AddLevelsCompleted(v int) *GameProgressUpdate {
	_u.mutation.AddLevelsCompleted(v)
	return _u
}

// SetLastPlayed sets the "last_played" field.
func (_u *GameProgressUpdate) SetLastPlayed(v time.Time) *GameProgressUpdate {
	_u.mutation.SetLastPlayed(v)
	return _u
}

// SetNillableLastPlayed sets the "last_played" field if the given value is not nil.
func (_u *GameProgressUpdate) SetNillableLastPlayed(v *time.Time) *GameProgressUpdate {
	if v != nil {
		_u.SetLastPlayed(*v)
	}
	return _u
}

// ClearLastPlayed clears the value of the "last_played" field.
func (_u *GameProgressUpdate) ClearLastPlayed() *GameProgressUpdate {
	_u.mutation.ClearLastPlayed()
	return _u
}

// SetTotalPlayTimeSecs sets the "total_play_time_secs" field.
func (_u *GameProgressUpdate) SetTotalPlayTimeSecs(v int) *GameProgressUpdate {
	_u.mutation.ResetTotalPlayTimeSecs()
	_u.mutation.SetTotalPlayTimeSecs(v)
	return _u
}

// SetNillableTotalPlayTimeSecs sets the "total_play_time_secs" field if the given value is not nil.
func (_u *GameProgressUpdate) SetNillableTotalPlayTimeSecs(v *int) *GameProgressUpdate {
	if v != nil {
		_u.SetTotalPlayTimeSecs(*v)
	}
	return _u
}

// AddTotalPlayTimeSecs adds value to the "total_play_time_secs" field.
func (_u *GameProgressUpdate) AddTotalPlayTimeSecs(v int) *GameProgressUpdate {
	_u.mutation.AddTotalPlayTimeSecs(v)
	return _u
}

// Mutation returns the GameProgressMutation object of the builder.
func (_u *GameProgressUpdate) Mutation() *GameProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameProgressUpdate) check() error {
	if v, ok := _u.mutation.GameID(); ok {
		if err := gameprogress.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameProgress.game_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GameProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameprogress.Table, gameprogress.Columns, sqlgraph.NewFieldSpec(gameprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(gameprogress.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HighScore(); ok {
		_spec.SetField(gameprogress.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighScore(); ok {
		_spec.AddField(gameprogress.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelsCompleted(); ok {
		_spec.SetField(gameprogress.FieldLevelsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelsCompleted(); ok {
		_spec.AddField(gameprogress.FieldLevelsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayed(); ok {
		_spec.SetField(gameprogress.FieldLastPlayed, field.TypeTime, value)
	}
	if _u.mutation.LastPlayedCleared() {
		_spec.ClearField(gameprogress.FieldLastPlayed, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalPlayTimeSecs(); ok {
		_spec.SetField(gameprogress.FieldTotalPlayTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPlayTimeSecs(); ok {
		_spec.AddField(gameprogress.FieldTotalPlayTimeSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameProgressUpdateOne is the builder for updating a single GameProgress entity.
type GameProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameProgressMutation
}

// SetGameID sets the "game_id" field.
func (_u *GameProgressUpdateOne) SetGameID(v string) *GameProgressUpdateOne {
	_u.mutation.SetGameID(v)
	return _u
}

// SetNillableGameID sets the "game_id" field if the given value is not nil.
func (_u *GameProgressUpdateOne) SetNillableGameID(v *string) *GameProgressUpdateOne {
	if v != nil {
		_u.SetGameID(*v)
	}
	return _u
}

// SetHighScore sets the "high_score" field.
func (_u *GameProgressUpdateOne) SetHighScore(v int) *GameProgressUpdateOne {
	_u.mutation.ResetHighScore()
	_u.mutation.SetHighScore(v)
	return _u
}

// SetNillableHighScore sets the "high_score" field if the given value is not nil.
func (_u *GameProgressUpdateOne) SetNillableHighScore(v *int) *GameProgressUpdateOne {
	if v != nil {
		_u.SetHighScore(*v)
	}
	return _u
}

// AddHighScore adds value to the "high_score" field.
func (_u *GameProgressUpdateOne) AddHighScore(v int) *GameProgressUpdateOne {
	_u.mutation.AddHighScore(v)
	return _u
}

// SetLevelsCompleted sets the "levels_completed" field.
func (_u *GameProgressUpdateOne) SetLevelsCompleted(v int) *GameProgressUpdateOne {
	_u.mutation.ResetLevelsCompleted()
	_u.mutation.SetLevelsCompleted(v)
	return _u
}

// SetNillableLevelsCompleted sets the "levels_completed" field if the given value is not nil.
func (_u *GameProgressUpdateOne) SetNillableLevelsCompleted(v *int) *GameProgressUpdateOne {
	if v != nil {
		_u.SetLevelsCompleted(*v)
	}
	return _u
}

// AddLevelsCompleted adds value to the "levels_completed" field.
func (_u *GameProgressUpdateOne) AddLevelsCompleted(v int) *GameProgressUpdateOne {
	_u.mutation.AddLevelsCompleted(v)
	return _u
}

// SetLastPlayed sets the "last_played" field.
func (_u *GameProgressUpdateOne) SetLastPlayed(v time.Time) *GameProgressUpdateOne {
	_u.mutation.SetLastPlayed(v)
	return _u
}

// SetNillableLastPlayed sets the "last_played" field if the given value is not nil.
func (_u *GameProgressUpdateOne) SetNillableLastPlayed(v *time.Time) *GameProgressUpdateOne {
	if v != nil {
		_u.SetLastPlayed(*v)
	}
	return _u
}

// ClearLastPlayed clears the value of the "last_played" field.
func (_u *GameProgressUpdateOne) ClearLastPlayed() *GameProgressUpdateOne {
	_u.mutation.ClearLastPlayed()
	return _u
}

// SetTotalPlayTimeSecs sets the "total_play_time_secs" field.
func (_u *GameProgressUpdateOne) SetTotalPlayTimeSecs(v int) *GameProgressUpdateOne {
	_u.mutation.ResetTotalPlayTimeSecs()
	_u.mutation.SetTotalPlayTimeSecs(v)
	return _u
}

// SetNillableTotalPlayTimeSecs sets the "total_play_time_secs" field if the given value is not nil.
func (_u *GameProgressUpdateOne) SetNillableTotalPlayTimeSecs(v *int) *GameProgressUpdateOne {
	if v != nil {
		_u.SetTotalPlayTimeSecs(*v)
	}
	return _u
}

// AddTotalPlayTimeSecs adds value to the "total_play_time_secs" field.
func (_u *GameProgressUpdateOne) AddTotalPlayTimeSecs(v int) *GameProgressUpdateOne {
	_u.mutation.AddTotalPlayTimeSecs(v)
	return _u
}

// Mutation returns the GameProgressMutation object of the builder.
func (_u *GameProgressUpdateOne) Mutation() *GameProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameProgressUpdate builder.
func (_u *GameProgressUpdateOne) Where(ps ...predicate.GameProgress) *GameProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameProgressUpdateOne) Select(field string, fields ...string) *GameProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameProgress entity.
func (_u *GameProgressUpdateOne) Save(ctx context.Context) (*GameProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameProgressUpdateOne) SaveX(ctx context.Context) *GameProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameProgressUpdateOne) check() error {
	if v, ok := _u.mutation.GameID(); ok {
		if err := gameprogress.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameProgress.game_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GameProgressUpdateOne) sqlSave(ctx context.Context) (_node *GameProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameprogress.Table, gameprogress.Columns, sqlgraph.NewFieldSpec(gameprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameprogress.FieldID)
		for _, f := range fields {
			if !gameprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gameprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameID(); ok {
		_spec.SetField(gameprogress.FieldGameID, field.TypeString, value)
	}
	if value, ok := _u.mutation.HighScore(); ok {
		_spec.SetField(gameprogress.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighScore(); ok {
		_spec.AddField(gameprogress.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelsCompleted(); ok {
		_spec.SetField(gameprogress.FieldLevelsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelsCompleted(); ok {
		_spec.AddField(gameprogress.FieldLevelsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayed(); ok {
		_spec.SetField(gameprogress.FieldLastPlayed, field.TypeTime, value)
	}
	if _u.mutation.LastPlayedCleared() {
		_spec.ClearField(gameprogress.FieldLastPlayed, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalPlayTimeSecs(); ok {
		_spec.SetField(gameprogress.FieldTotalPlayTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPlayTimeSecs(); ok {
		_spec.AddField(gameprogress.FieldTotalPlayTimeSecs, field.TypeInt, value)
	}
	_node = &GameProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
