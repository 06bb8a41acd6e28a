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
	"github.com/abhisek/quizbox/ent/predicate"
	"github.com/abhisek/quizbox/ent/usagestate"
)

// UsageStateUpdate is the builder for updating UsageState entities.
type UsageStateUpdate struct {
	config
	hooks    []Hook
	mutation *UsageStateMutation
}

// Where appends a list predicates to the UsageStateUpdate builder.
func (_u *UsageStateUpdate) Where(ps ...predicate.UsageState) *UsageStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageStateUpdate) SetUpdatedAt(v time.Time) *UsageStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountKey sets the "account_key" field.
func (_u *UsageStateUpdate) SetAccountKey(v string) *UsageStateUpdate {
	_u.mutation.SetAccountKey(v)
	return _u
}

// SetNillableAccountKey sets the "account_key" field if the given value is not nil.
func (_u *UsageStateUpdate) SetNillableAccountKey(v *string) *UsageStateUpdate {
	if v != nil {
		_u.SetAccountKey(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *UsageStateUpdate) SetUsage(v map[string]int) *UsageStateUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// SetPoolSize sets the "pool_size" field.
func (_u *UsageStateUpdate) SetPoolSize(v int) *UsageStateUpdate {
	_u.mutation.ResetPoolSize()
	_u.mutation.SetPoolSize(v)
	return _u
}

// SetNillablePoolSize sets the "pool_size" field if the given value is not nil.
func (_u *UsageStateUpdate) SetNillablePoolSize(v *int) *UsageStateUpdate {
	if v != nil {
		_u.SetPoolSize(*v)
	}
	return _u
}

// AddPoolSize adds value to the "pool_size" field.
func (_u *UsageStateUpdate) AddPoolSize(v int) *UsageStateUpdate {
	_u.mutation.AddPoolSize(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UsageStateUpdate) SetLastUpdated(v time.Time) *UsageStateUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *UsageStateUpdate) SetNillableLastUpdated(v *time.Time) *UsageStateUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetLastResetTime sets the "last_reset_time" field.
func (_u *UsageStateUpdate) SetLastResetTime(v time.Time) *UsageStateUpdate {
	_u.mutation.SetLastResetTime(v)
	return _u
}

// SetNillableLastResetTime sets the "last_reset_time" field if the given value is not nil.
func (_u *UsageStateUpdate) SetNillableLastResetTime(v *time.Time) *UsageStateUpdate {
	if v != nil {
		_u.SetLastResetTime(*v)
	}
	return _u
}

// ClearLastResetTime clears the value of the "last_reset_time" field.
func (_u *UsageStateUpdate) ClearLastResetTime() *UsageStateUpdate {
	_u.mutation.ClearLastResetTime()
	return _u
}

// SetCategoryResetTimes sets the "category_reset_times" field.
func (_u *UsageStateUpdate) SetCategoryResetTimes(v map[string]time.Time) *UsageStateUpdate {
	_u.mutation.SetCategoryResetTimes(v)
	return _u
}

// ClearCategoryResetTimes clears the value of the "category_reset_times" field.
func (_u *UsageStateUpdate) ClearCategoryResetTimes() *UsageStateUpdate {
	_u.mutation.ClearCategoryResetTimes()
	return _u
}

// Mutation returns the UsageStateMutation object of the builder.
func (_u *UsageStateUpdate) Mutation() *UsageStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UsageStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagestate.Table, usagestate.Columns, sqlgraph.NewFieldSpec(usagestate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccountKey(); ok {
		_spec.SetField(usagestate.FieldAccountKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(usagestate.FieldUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PoolSize(); ok {
		_spec.SetField(usagestate.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoolSize(); ok {
		_spec.AddField(usagestate.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(usagestate.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastResetTime(); ok {
		_spec.SetField(usagestate.FieldLastResetTime, field.TypeTime, value)
	}
	if _u.mutation.LastResetTimeCleared() {
		_spec.ClearField(usagestate.FieldLastResetTime, field.TypeTime)
	}
	if value, ok := _u.mutation.CategoryResetTimes(); ok {
		_spec.SetField(usagestate.FieldCategoryResetTimes, field.TypeJSON, value)
	}
	if _u.mutation.CategoryResetTimesCleared() {
		_spec.ClearField(usagestate.FieldCategoryResetTimes, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageStateUpdateOne is the builder for updating a single UsageState entity.
type UsageStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageStateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageStateUpdateOne) SetUpdatedAt(v time.Time) *UsageStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAccountKey sets the "account_key" field.
func (_u *UsageStateUpdateOne) SetAccountKey(v string) *UsageStateUpdateOne {
	_u.mutation.SetAccountKey(v)
	return _u
}

// SetNillableAccountKey sets the "account_key" field if the given value is not nil.
func (_u *UsageStateUpdateOne) SetNillableAccountKey(v *string) *UsageStateUpdateOne {
	if v != nil {
		_u.SetAccountKey(*v)
	}
	return _u
}

// SetUsage sets the "usage" field.
func (_u *UsageStateUpdateOne) SetUsage(v map[string]int) *UsageStateUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// SetPoolSize sets the "pool_size" field.
func (_u *UsageStateUpdateOne) SetPoolSize(v int) *UsageStateUpdateOne {
	_u.mutation.ResetPoolSize()
	_u.mutation.SetPoolSize(v)
	return _u
}

// SetNillablePoolSize sets the "pool_size" field if the given value is not nil.
func (_u *UsageStateUpdateOne) SetNillablePoolSize(v *int) *UsageStateUpdateOne {
	if v != nil {
		_u.SetPoolSize(*v)
	}
	return _u
}

// AddPoolSize adds value to the "pool_size" field.
func (_u *UsageStateUpdateOne) AddPoolSize(v int) *UsageStateUpdateOne {
	_u.mutation.AddPoolSize(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *UsageStateUpdateOne) SetLastUpdated(v time.Time) *UsageStateUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *UsageStateUpdateOne) SetNillableLastUpdated(v *time.Time) *UsageStateUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// SetLastResetTime sets the "last_reset_time" field.
func (_u *UsageStateUpdateOne) SetLastResetTime(v time.Time) *UsageStateUpdateOne {
	_u.mutation.SetLastResetTime(v)
	return _u
}

// SetNillableLastResetTime sets the "last_reset_time" field if the given value is not nil.
func (_u *UsageStateUpdateOne) SetNillableLastResetTime(v *time.Time) *UsageStateUpdateOne {
	if v != nil {
		_u.SetLastResetTime(*v)
	}
	return _u
}

// ClearLastResetTime clears the value of the "last_reset_time" field.
func (_u *UsageStateUpdateOne) ClearLastResetTime() *UsageStateUpdateOne {
	_u.mutation.ClearLastResetTime()
	return _u
}

// SetCategoryResetTimes sets the "category_reset_times" field.
func (_u *UsageStateUpdateOne) SetCategoryResetTimes(v map[string]time.Time) *UsageStateUpdateOne {
	_u.mutation.SetCategoryResetTimes(v)
	return _u
}

// ClearCategoryResetTimes clears the value of the "category_reset_times" field.
func (_u *UsageStateUpdateOne) ClearCategoryResetTimes() *UsageStateUpdateOne {
	_u.mutation.ClearCategoryResetTimes()
	return _u
}

// Mutation returns the UsageStateMutation object of the builder.
func (_u *UsageStateUpdateOne) Mutation() *UsageStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageStateUpdate builder.
func (_u *UsageStateUpdateOne) Where(ps ...predicate.UsageState) *UsageStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageStateUpdateOne) Select(field string, fields ...string) *UsageStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageState entity.
func (_u *UsageStateUpdateOne) Save(ctx context.Context) (*UsageState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageStateUpdateOne) SaveX(ctx context.Context) *UsageState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UsageStateUpdateOne) sqlSave(ctx context.Context) (_node *UsageState, err error) {
	_spec := sqlgraph.NewUpdateSpec(usagestate.Table, usagestate.Columns, sqlgraph.NewFieldSpec(usagestate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagestate.FieldID)
		for _, f := range fields {
			if !usagestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagestate.FieldID {
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
		_spec.SetField(usagestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccountKey(); ok {
		_spec.SetField(usagestate.FieldAccountKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(usagestate.FieldUsage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PoolSize(); ok {
		_spec.SetField(usagestate.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoolSize(); ok {
		_spec.AddField(usagestate.FieldPoolSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(usagestate.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastResetTime(); ok {
		_spec.SetField(usagestate.FieldLastResetTime, field.TypeTime, value)
	}
	if _u.mutation.LastResetTimeCleared() {
		_spec.ClearField(usagestate.FieldLastResetTime, field.TypeTime)
	}
	if value, ok := _u.mutation.CategoryResetTimes(); ok {
		_spec.SetField(usagestate.FieldCategoryResetTimes, field.TypeJSON, value)
	}
	if _u.mutation.CategoryResetTimesCleared() {
		_spec.ClearField(usagestate.FieldCategoryResetTimes, field.TypeJSON)
	}
	_node = &UsageState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
