// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizbox/ent/usagestate"
)

// UsageStateCreate is the builder for creating a UsageState entity.
type UsageStateCreate struct {
	config
	mutation *UsageStateMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageStateCreate) SetCreatedAt(v time.Time) *UsageStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageStateCreate) SetNillableCreatedAt(v *time.Time) *UsageStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsageStateCreate) SetUpdatedAt(v time.Time) *UsageStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsageStateCreate) SetNillableUpdatedAt(v *time.Time) *UsageStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAccountKey sets the "account_key" field.
func (_c *UsageStateCreate) SetAccountKey(v string) *UsageStateCreate {
	_c.mutation.SetAccountKey(v)
	return _c
}

// SetUsage sets the "usage" field.
func (_c *UsageStateCreate) SetUsage(v map[string]int) *UsageStateCreate {
	_c.mutation.SetUsage(v)
	return _c
}

// SetPoolSize sets the "pool_size" field.
func (_c *UsageStateCreate) SetPoolSize(v int) *UsageStateCreate {
	_c.mutation.SetPoolSize(v)
	return _c
}

// SetNillablePoolSize sets the "pool_size" field if the given value is not nil.
func (_c *UsageStateCreate) SetNillablePoolSize(v *int) *UsageStateCreate {
	if v != nil {
		_c.SetPoolSize(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *UsageStateCreate) SetLastUpdated(v time.Time) *UsageStateCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *UsageStateCreate) SetNillableLastUpdated(v *time.Time) *UsageStateCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetLastResetTime sets the "last_reset_time" field.
func (_c *UsageStateCreate) SetLastResetTime(v time.Time) *UsageStateCreate {
	_c.mutation.SetLastResetTime(v)
	return _c
}

// SetNillableLastResetTime sets the "last_reset_time" field if the given value is not nil.
func (_c *UsageStateCreate) SetNillableLastResetTime(v *time.Time) *UsageStateCreate {
	if v != nil {
		_c.SetLastResetTime(*v)
	}
	return _c
}

// SetCategoryResetTimes sets the "category_reset_times" field.
func (_c *UsageStateCreate) SetCategoryResetTimes(v map[string]time.Time) *UsageStateCreate {
	_c.mutation.SetCategoryResetTimes(v)
	return _c
}

// Mutation returns the UsageStateMutation object of the builder.
func (_c *UsageStateCreate) Mutation() *UsageStateMutation {
	return _c.mutation
}

// Save creates the UsageState in the database.
func (_c *UsageStateCreate) Save(ctx context.Context) (*UsageState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageStateCreate) SaveX(ctx context.Context) *UsageState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagestate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usagestate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PoolSize(); !ok {
		v := usagestate.DefaultPoolSize
		_c.mutation.SetPoolSize(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := usagestate.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageStateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UsageState.updated_at"`)}
	}
	if _, ok := _c.mutation.AccountKey(); !ok {
		return &ValidationError{Name: "account_key", err: errors.New(`ent: missing required field "UsageState.account_key"`)}
	}
	if _, ok := _c.mutation.Usage(); !ok {
		return &ValidationError{Name: "usage", err: errors.New(`ent: missing required field "UsageState.usage"`)}
	}
	if _, ok := _c.mutation.PoolSize(); !ok {
		return &ValidationError{Name: "pool_size", err: errors.New(`ent: missing required field "UsageState.pool_size"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "UsageState.last_updated"`)}
	}
	return nil
}

func (_c *UsageStateCreate) sqlSave(ctx context.Context) (*UsageState, error) {
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

func (_c *UsageStateCreate) createSpec() (*UsageState, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagestate.Table, sqlgraph.NewFieldSpec(usagestate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagestate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usagestate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AccountKey(); ok {
		_spec.SetField(usagestate.FieldAccountKey, field.TypeString, value)
		_node.AccountKey = value
	}
	if value, ok := _c.mutation.Usage(); ok {
		_spec.SetField(usagestate.FieldUsage, field.TypeJSON, value)
		_node.Usage = value
	}
	if value, ok := _c.mutation.PoolSize(); ok {
		_spec.SetField(usagestate.FieldPoolSize, field.TypeInt, value)
		_node.PoolSize = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(usagestate.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := _c.mutation.LastResetTime(); ok {
		_spec.SetField(usagestate.FieldLastResetTime, field.TypeTime, value)
		_node.LastResetTime = &value
	}
	if value, ok := _c.mutation.CategoryResetTimes(); ok {
		_spec.SetField(usagestate.FieldCategoryResetTimes, field.TypeJSON, value)
		_node.CategoryResetTimes = value
	}
	return _node, _spec
}

// UsageStateCreateBulk is the builder for creating many UsageState entities in bulk.
type UsageStateCreateBulk struct {
	config
	err      error
	builders []*UsageStateCreate
}

// Save creates the UsageState entities in the database.
func (_c *UsageStateCreateBulk) Save(ctx context.Context) ([]*UsageState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageStateMutation)
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
func (_c *UsageStateCreateBulk) SaveX(ctx context.Context) []*UsageState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
