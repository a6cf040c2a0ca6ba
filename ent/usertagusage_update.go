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
	"github.com/clipdock/clipd/ent/predicate"
	"github.com/clipdock/clipd/ent/usertagusage"
)

// UserTagUsageUpdate is the builder for updating UserTagUsage entities.
type UserTagUsageUpdate struct {
	config
	hooks    []Hook
	mutation *UserTagUsageMutation
}

// Where appends a list predicates to the UserTagUsageUpdate builder.
func (_u *UserTagUsageUpdate) Where(ps ...predicate.UserTagUsage) *UserTagUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *UserTagUsageUpdate) SetUseCount(v int) *UserTagUsageUpdate {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *UserTagUsageUpdate) SetNillableUseCount(v *int) *UserTagUsageUpdate {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *UserTagUsageUpdate) AddUseCount(v int) *UserTagUsageUpdate {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UserTagUsageUpdate) SetLastUsedAt(v time.Time) *UserTagUsageUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UserTagUsageUpdate) SetNillableLastUsedAt(v *time.Time) *UserTagUsageUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the UserTagUsageMutation object of the builder.
func (_u *UserTagUsageUpdate) Mutation() *UserTagUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserTagUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserTagUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserTagUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserTagUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserTagUsageUpdate) check() error {
	if v, ok := _u.mutation.UseCount(); ok {
		if err := usertagusage.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`ent: validator failed for field "UserTagUsage.use_count": %w`, err)}
		}
	}
	if _u.mutation.TagCleared() && len(_u.mutation.TagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTagUsage.tag"`)
	}
	return nil
}

func (_u *UserTagUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usertagusage.Table, usertagusage.Columns, sqlgraph.NewFieldSpec(usertagusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(usertagusage.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(usertagusage.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(usertagusage.FieldLastUsedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usertagusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserTagUsageUpdateOne is the builder for updating a single UserTagUsage entity.
type UserTagUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserTagUsageMutation
}

// SetUseCount sets the "use_count" field.
func (_u *UserTagUsageUpdateOne) SetUseCount(v int) *UserTagUsageUpdateOne {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *UserTagUsageUpdateOne) SetNillableUseCount(v *int) *UserTagUsageUpdateOne {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *UserTagUsageUpdateOne) AddUseCount(v int) *UserTagUsageUpdateOne {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *UserTagUsageUpdateOne) SetLastUsedAt(v time.Time) *UserTagUsageUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *UserTagUsageUpdateOne) SetNillableLastUsedAt(v *time.Time) *UserTagUsageUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// Mutation returns the UserTagUsageMutation object of the builder.
func (_u *UserTagUsageUpdateOne) Mutation() *UserTagUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserTagUsageUpdate builder.
func (_u *UserTagUsageUpdateOne) Where(ps ...predicate.UserTagUsage) *UserTagUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserTagUsageUpdateOne) Select(field string, fields ...string) *UserTagUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserTagUsage entity.
func (_u *UserTagUsageUpdateOne) Save(ctx context.Context) (*UserTagUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserTagUsageUpdateOne) SaveX(ctx context.Context) *UserTagUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserTagUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserTagUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserTagUsageUpdateOne) check() error {
	if v, ok := _u.mutation.UseCount(); ok {
		if err := usertagusage.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`ent: validator failed for field "UserTagUsage.use_count": %w`, err)}
		}
	}
	if _u.mutation.TagCleared() && len(_u.mutation.TagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserTagUsage.tag"`)
	}
	return nil
}

func (_u *UserTagUsageUpdateOne) sqlSave(ctx context.Context) (_node *UserTagUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usertagusage.Table, usertagusage.Columns, sqlgraph.NewFieldSpec(usertagusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserTagUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usertagusage.FieldID)
		for _, f := range fields {
			if !usertagusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usertagusage.FieldID {
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
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(usertagusage.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(usertagusage.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(usertagusage.FieldLastUsedAt, field.TypeTime, value)
	}
	_node = &UserTagUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usertagusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
