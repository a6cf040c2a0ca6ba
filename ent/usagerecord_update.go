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
	"github.com/clipdock/clipd/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UsageRecordMutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAllocatedQuota sets the "allocated_quota" field.
func (_u *UsageRecordUpdate) SetAllocatedQuota(v int) *UsageRecordUpdate {
	_u.mutation.ResetAllocatedQuota()
	_u.mutation.SetAllocatedQuota(v)
	return _u
}

// SetNillableAllocatedQuota sets the "allocated_quota" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableAllocatedQuota(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetAllocatedQuota(*v)
	}
	return _u
}

// AddAllocatedQuota adds value to the "allocated_quota" field.
func (_u *UsageRecordUpdate) AddAllocatedQuota(v int) *UsageRecordUpdate {
	_u.mutation.AddAllocatedQuota(v)
	return _u
}

// SetUsedTokensWtu sets the "used_tokens_wtu" field.
func (_u *UsageRecordUpdate) SetUsedTokensWtu(v int) *UsageRecordUpdate {
	_u.mutation.ResetUsedTokensWtu()
	_u.mutation.SetUsedTokensWtu(v)
	return _u
}

// SetNillableUsedTokensWtu sets the "used_tokens_wtu" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableUsedTokensWtu(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetUsedTokensWtu(*v)
	}
	return _u
}

// AddUsedTokensWtu adds value to the "used_tokens_wtu" field.
func (_u *UsageRecordUpdate) AddUsedTokensWtu(v int) *UsageRecordUpdate {
	_u.mutation.AddUsedTokensWtu(v)
	return _u
}

// SetRemainingTokens sets the "remaining_tokens" field.
func (_u *UsageRecordUpdate) SetRemainingTokens(v int) *UsageRecordUpdate {
	_u.mutation.ResetRemainingTokens()
	_u.mutation.SetRemainingTokens(v)
	return _u
}

// SetNillableRemainingTokens sets the "remaining_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableRemainingTokens(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetRemainingTokens(*v)
	}
	return _u
}

// AddRemainingTokens adds value to the "remaining_tokens" field.
func (_u *UsageRecordUpdate) AddRemainingTokens(v int) *UsageRecordUpdate {
	_u.mutation.AddRemainingTokens(v)
	return _u
}

// SetTotalPurchased sets the "total_purchased" field.
func (_u *UsageRecordUpdate) SetTotalPurchased(v int) *UsageRecordUpdate {
	_u.mutation.ResetTotalPurchased()
	_u.mutation.SetTotalPurchased(v)
	return _u
}

// SetNillableTotalPurchased sets the "total_purchased" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableTotalPurchased(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetTotalPurchased(*v)
	}
	return _u
}

// AddTotalPurchased adds value to the "total_purchased" field.
func (_u *UsageRecordUpdate) AddTotalPurchased(v int) *UsageRecordUpdate {
	_u.mutation.AddTotalPurchased(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageRecordUpdate) SetUpdatedAt(v time.Time) *UsageRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdate) check() error {
	if v, ok := _u.mutation.AllocatedQuota(); ok {
		if err := usagerecord.AllocatedQuotaValidator(v); err != nil {
			return &ValidationError{Name: "allocated_quota", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.allocated_quota": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedTokensWtu(); ok {
		if err := usagerecord.UsedTokensWtuValidator(v); err != nil {
			return &ValidationError{Name: "used_tokens_wtu", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.used_tokens_wtu": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RemainingTokens(); ok {
		if err := usagerecord.RemainingTokensValidator(v); err != nil {
			return &ValidationError{Name: "remaining_tokens", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.remaining_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPurchased(); ok {
		if err := usagerecord.TotalPurchasedValidator(v); err != nil {
			return &ValidationError{Name: "total_purchased", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.total_purchased": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AllocatedQuota(); ok {
		_spec.SetField(usagerecord.FieldAllocatedQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllocatedQuota(); ok {
		_spec.AddField(usagerecord.FieldAllocatedQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedTokensWtu(); ok {
		_spec.SetField(usagerecord.FieldUsedTokensWtu, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedTokensWtu(); ok {
		_spec.AddField(usagerecord.FieldUsedTokensWtu, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingTokens(); ok {
		_spec.SetField(usagerecord.FieldRemainingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingTokens(); ok {
		_spec.AddField(usagerecord.FieldRemainingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPurchased(); ok {
		_spec.SetField(usagerecord.FieldTotalPurchased, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPurchased(); ok {
		_spec.AddField(usagerecord.FieldTotalPurchased, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageRecordMutation
}

// SetAllocatedQuota sets the "allocated_quota" field.
func (_u *UsageRecordUpdateOne) SetAllocatedQuota(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetAllocatedQuota()
	_u.mutation.SetAllocatedQuota(v)
	return _u
}

// SetNillableAllocatedQuota sets the "allocated_quota" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableAllocatedQuota(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetAllocatedQuota(*v)
	}
	return _u
}

// AddAllocatedQuota adds value to the "allocated_quota" field.
func (_u *UsageRecordUpdateOne) AddAllocatedQuota(v int) *UsageRecordUpdateOne {
	_u.mutation.AddAllocatedQuota(v)
	return _u
}

// SetUsedTokensWtu sets the "used_tokens_wtu" field.
func (_u *UsageRecordUpdateOne) SetUsedTokensWtu(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetUsedTokensWtu()
	_u.mutation.SetUsedTokensWtu(v)
	return _u
}

// SetNillableUsedTokensWtu sets the "used_tokens_wtu" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableUsedTokensWtu(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetUsedTokensWtu(*v)
	}
	return _u
}

// AddUsedTokensWtu adds value to the "used_tokens_wtu" field.
func (_u *UsageRecordUpdateOne) AddUsedTokensWtu(v int) *UsageRecordUpdateOne {
	_u.mutation.AddUsedTokensWtu(v)
	return _u
}

// SetRemainingTokens sets the "remaining_tokens" field.
func (_u *UsageRecordUpdateOne) SetRemainingTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetRemainingTokens()
	_u.mutation.SetRemainingTokens(v)
	return _u
}

// SetNillableRemainingTokens sets the "remaining_tokens" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableRemainingTokens(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetRemainingTokens(*v)
	}
	return _u
}

// AddRemainingTokens adds value to the "remaining_tokens" field.
func (_u *UsageRecordUpdateOne) AddRemainingTokens(v int) *UsageRecordUpdateOne {
	_u.mutation.AddRemainingTokens(v)
	return _u
}

// SetTotalPurchased sets the "total_purchased" field.
func (_u *UsageRecordUpdateOne) SetTotalPurchased(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetTotalPurchased()
	_u.mutation.SetTotalPurchased(v)
	return _u
}

// SetNillableTotalPurchased sets the "total_purchased" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableTotalPurchased(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetTotalPurchased(*v)
	}
	return _u
}

// AddTotalPurchased adds value to the "total_purchased" field.
func (_u *UsageRecordUpdateOne) AddTotalPurchased(v int) *UsageRecordUpdateOne {
	_u.mutation.AddTotalPurchased(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsageRecordUpdateOne) SetUpdatedAt(v time.Time) *UsageRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsageRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usagerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdateOne) check() error {
	if v, ok := _u.mutation.AllocatedQuota(); ok {
		if err := usagerecord.AllocatedQuotaValidator(v); err != nil {
			return &ValidationError{Name: "allocated_quota", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.allocated_quota": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedTokensWtu(); ok {
		if err := usagerecord.UsedTokensWtuValidator(v); err != nil {
			return &ValidationError{Name: "used_tokens_wtu", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.used_tokens_wtu": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RemainingTokens(); ok {
		if err := usagerecord.RemainingTokensValidator(v); err != nil {
			return &ValidationError{Name: "remaining_tokens", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.remaining_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPurchased(); ok {
		if err := usagerecord.TotalPurchasedValidator(v); err != nil {
			return &ValidationError{Name: "total_purchased", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.total_purchased": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
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
	if value, ok := _u.mutation.AllocatedQuota(); ok {
		_spec.SetField(usagerecord.FieldAllocatedQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAllocatedQuota(); ok {
		_spec.AddField(usagerecord.FieldAllocatedQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedTokensWtu(); ok {
		_spec.SetField(usagerecord.FieldUsedTokensWtu, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedTokensWtu(); ok {
		_spec.AddField(usagerecord.FieldUsedTokensWtu, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingTokens(); ok {
		_spec.SetField(usagerecord.FieldRemainingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingTokens(); ok {
		_spec.AddField(usagerecord.FieldRemainingTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPurchased(); ok {
		_spec.SetField(usagerecord.FieldTotalPurchased, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPurchased(); ok {
		_spec.AddField(usagerecord.FieldTotalPurchased, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usagerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
