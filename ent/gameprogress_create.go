// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nandinis/edudeck/ent/gameprogress"
)

// GameProgressCreate is the builder for creating a GameProgress entity.
type GameProgressCreate struct {
	config
	mutation *GameProgressMutation
	hooks    []Hook
}

// SetGameID sets the "game_id" field.
func (_c *GameProgressCreate) SetGameID(v string) *GameProgressCreate {
	_c.mutation.SetGameID(v)
	return _c
}

// SetHighScore sets the "high_score" field.
func (_c *GameProgressCreate) SetHighScore(v int) *GameProgressCreate {
	_c.mutation.SetHighScore(v)
	return _c
}

// SetNillableHighScore sets the "high_score" field if the given value is not nil.
func (_c *GameProgressCreate) SetNillableHighScore(v *int) *GameProgressCreate {
	if v != nil {
		_c.SetHighScore(*v)
	}
	return _c
}

// SetLevelsCompleted sets the "levels_completed" field.
func (_c *GameProgressCreate) SetLevelsCompleted(v int) *GameProgressCreate {
	_c.mutation.SetLevelsCompleted(v)
	return _c
}

// SetNillableLevelsCompleted sets the "levels_completed" field if the given value is not nil.
func (_c *GameProgressCreate) SetNillableLevelsCompleted(v *int) *GameProgressCreate {
	if v != nil {
		_c.SetLevelsCompleted(*v)
	}
	return _c
}

// SetLastPlayed sets the "last_played" field.
func (_c *GameProgressCreate) SetLastPlayed(v time.Time) *GameProgressCreate {
	_c.mutation.SetLastPlayed(v)
	return _c
}

// SetNillableLastPlayed sets the "last_played" field if the given value is not nil.
func (_c *GameProgressCreate) SetNillableLastPlayed(v *time.Time) *GameProgressCreate {
	if v != nil {
		_c.SetLastPlayed(*v)
	}
	return _c
}

// SetTotalPlayTimeSecs sets the "total_play_time_secs" field.
func (_c *GameProgressCreate) SetTotalPlayTimeSecs(v int) *GameProgressCreate {
	_c.mutation.SetTotalPlayTimeSecs(v)
	return _c
}

// SetNillableTotalPlayTimeSecs sets the "total_play_time_secs" field if the given value is not nil.
func (_c *GameProgressCreate) SetNillableTotalPlayTimeSecs(v *int) *GameProgressCreate {
	if v != nil {
		_c.SetTotalPlayTimeSecs(*v)
	}
	return _c
}

// Mutation returns the GameProgressMutation object of the builder.
func (_c *GameProgressCreate) Mutation() *GameProgressMutation {
	return _c.mutation
}

// Save creates the GameProgress in the database.
func (_c *GameProgressCreate) Save(ctx context.Context) (*GameProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameProgressCreate) SaveX(ctx context.Context) *GameProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameProgressCreate) defaults() {
	if _, ok := _c.mutation.HighScore(); !ok {
		v := gameprogress.DefaultHighScore
		_c.mutation.SetHighScore(v)
	}
	if _, ok := _c.mutation.LevelsCompleted(); !ok {
		v := gameprogress.DefaultLevelsCompleted
		_c.mutation.SetLevelsCompleted(v)
	}
	if _, ok := _c.mutation.TotalPlayTimeSecs(); !ok {
		v := gameprogress.DefaultTotalPlayTimeSecs
		_c.mutation.SetTotalPlayTimeSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameProgressCreate) check() error {
	if _, ok := _c.mutation.GameID(); !ok {
		return &ValidationError{Name: "game_id", err: errors.New(`ent: missing required field "GameProgress.game_id"`)}
	}
	if v, ok := _c.mutation.GameID(); ok {
		if err := gameprogress.GameIDValidator(v); err != nil {
			return &ValidationError{Name: "game_id", err: fmt.Errorf(`ent: validator failed for field "GameProgress.game_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HighScore(); !ok {
		return &ValidationError{Name: "high_score", err: errors.New(`ent: missing required field "GameProgress.high_score"`)}
	}
	if _, ok := _c.mutation.LevelsCompleted(); !ok {
		return &ValidationError{Name: "levels_completed", err: errors.New(`ent: missing required field "GameProgress.levels_completed"`)}
	}
	if _, ok := _c.mutation.TotalPlayTimeSecs(); !ok {
		return &ValidationError{Name: "total_play_time_secs", err: errors.New(`ent: missing required field "GameProgress.total_play_time_secs"`)}
	}
	return nil
}

func (_c *GameProgressCreate) sqlSave(ctx context.Context) (*GameProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameProgressCreate) createSpec() (*GameProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &GameProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gameprogress.Table, sqlgraph.NewFieldSpec(gameprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GameID(); ok {
		_spec.SetField(gameprogress.FieldGameID, field.TypeString, value)
		_node.GameID = value
	}
	if value, ok := _c.mutation.HighScore(); ok {
		_spec.SetField(gameprogress.FieldHighScore, field.TypeInt, value)
		_node.HighScore = value
	}
	if value, ok := _c.mutation.LevelsCompleted(); ok {
		_spec.SetField(gameprogress.FieldLevelsCompleted, field.TypeInt, value)
		_node.LevelsCompleted = value
	}
	if value, ok := _c.mutation.LastPlayed(); ok {
		_spec.SetField(gameprogress.FieldLastPlayed, field.TypeTime, value)
		_node.LastPlayed = &value
	}
	if value, ok := _c.mutation.TotalPlayTimeSecs(); ok {
		_spec.SetField(gameprogress.FieldTotalPlayTimeSecs, field.TypeInt, value)
		_node.TotalPlayTimeSecs = value
	}
	return _node, _spec
}

// GameProgressCreateBulk is the builder for creating many GameProgress entities in bulk.
type GameProgressCreateBulk struct {
	config
	err      error
	builders []*GameProgressCreate
}

// Save creates the GameProgress entities in the database.
func (_c *GameProgressCreateBulk) Save(ctx context.Context) ([]*GameProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameProgressCreateBulk) SaveX(ctx context.Context) []*GameProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
