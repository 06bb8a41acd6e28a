// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizbox/ent/game"
	"github.com/abhisek/quizbox/ent/predicate"
)

// GameUpdate is the builder for updating Game entities.
type GameUpdate struct {
	config
	hooks    []Hook
	mutation *GameMutation
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdate) Where(ps ...predicate.Game) *GameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GameUpdate) SetUpdatedAt(v time.Time) *GameUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GameUpdate) SetFinishedAt(v time.Time) *GameUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GameUpdate) SetNillableFinishedAt(v *time.Time) *GameUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GameUpdate) ClearFinishedAt() *GameUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetAssigned sets the "assigned" field.
func (_u *GameUpdate) SetAssigned(v map[string]interface{}) *GameUpdate {
	_u.mutation.SetAssigned(v)
	return _u
}

// ClearAssigned clears the value of the "assigned" field.
func (_u *GameUpdate) ClearAssigned() *GameUpdate {
	_u.mutation.ClearAssigned()
	return _u
}

// SetLegacyUsed sets the "legacy_used" field.
func (_u *GameUpdate) SetLegacyUsed(v []string) *GameUpdate {
	_u.mutation.SetLegacyUsed(v)
	return _u
}

// AppendLegacyUsed appends value to the "legacy_used" field.
func (_u *GameUpdate) AppendLegacyUsed(v []string) *GameUpdate {
	_u.mutation.AppendLegacyUsed(v)
	return _u
}

// ClearLegacyUsed clears the value of the "legacy_used" field.
func (_u *GameUpdate) ClearLegacyUsed() *GameUpdate {
	_u.mutation.ClearLegacyUsed()
	return _u
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdate) Mutation() *GameMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GameUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := game.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *GameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(game.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(game.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(game.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Assigned(); ok {
		_spec.SetField(game.FieldAssigned, field.TypeJSON, value)
	}
	if _u.mutation.AssignedCleared() {
		_spec.ClearField(game.FieldAssigned, field.TypeJSON)
	}
	if value, ok := _u.mutation.LegacyUsed(); ok {
		_spec.SetField(game.FieldLegacyUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLegacyUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, game.FieldLegacyUsed, value)
		})
	}
	if _u.mutation.LegacyUsedCleared() {
		_spec.ClearField(game.FieldLegacyUsed, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameUpdateOne is the builder for updating a single Game entity.
type GameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GameUpdateOne) SetUpdatedAt(v time.Time) *GameUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GameUpdateOne) SetFinishedAt(v time.Time) *GameUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GameUpdateOne) SetNillableFinishedAt(v *time.Time) *GameUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GameUpdateOne) ClearFinishedAt() *GameUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetAssigned sets the "assigned" field.
func (_u *GameUpdateOne) SetAssigned(v map[string]interface{}) *GameUpdateOne {
	_u.mutation.SetAssigned(v)
	return _u
}

// ClearAssigned clears the value of the "assigned" field.
func (_u *GameUpdateOne) ClearAssigned() *GameUpdateOne {
	_u.mutation.ClearAssigned()
	return _u
}

// SetLegacyUsed sets the "legacy_used" field.
func (_u *GameUpdateOne) SetLegacyUsed(v []string) *GameUpdateOne {
	_u.mutation.SetLegacyUsed(v)
	return _u
}

// AppendLegacyUsed appends value to the "legacy_used" field.
func (_u *GameUpdateOne) AppendLegacyUsed(v []string) *GameUpdateOne {
	_u.mutation.AppendLegacyUsed(v)
	return _u
}

// ClearLegacyUsed clears the value of the "legacy_used" field.
func (_u *GameUpdateOne) ClearLegacyUsed() *GameUpdateOne {
	_u.mutation.ClearLegacyUsed()
	return _u
}

// Mutation returns the GameMutation object of the builder.
func (_u *GameUpdateOne) Mutation() *GameMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameUpdate builder.
func (_u *GameUpdateOne) Where(ps ...predicate.Game) *GameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameUpdateOne) Select(field string, fields ...string) *GameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Game entity.
func (_u *GameUpdateOne) Save(ctx context.Context) (*Game, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameUpdateOne) SaveX(ctx context.Context) *Game {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GameUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := game.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *GameUpdateOne) sqlSave(ctx context.Context) (_node *Game, err error) {
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Game.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, game.FieldID)
		for _, f := range fields {
			if !game.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != game.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(game.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(game.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(game.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Assigned(); ok {
		_spec.SetField(game.FieldAssigned, field.TypeJSON, value)
	}
	if _u.mutation.AssignedCleared() {
		_spec.ClearField(game.FieldAssigned, field.TypeJSON)
	}
	if value, ok := _u.mutation.LegacyUsed(); ok {
		_spec.SetField(game.FieldLegacyUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLegacyUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, game.FieldLegacyUsed, value)
		})
	}
	if _u.mutation.LegacyUsedCleared() {
		_spec.ClearField(game.FieldLegacyUsed, field.TypeJSON)
	}
	_node = &Game{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
