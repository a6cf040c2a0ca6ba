// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clipdock/clipd/ent/predicate"
	"github.com/clipdock/clipd/ent/purchaseevent"
)

// PurchaseEventUpdate is the builder for updating PurchaseEvent entities.
type PurchaseEventUpdate struct {
	config
	hooks    []Hook
	mutation *PurchaseEventMutation
}

// Where appends a list predicates to the PurchaseEventUpdate builder.
func (_u *PurchaseEventUpdate) Where(ps ...predicate.PurchaseEvent) *PurchaseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTokenAmount sets the "token_amount" field.
func (_u *PurchaseEventUpdate) SetTokenAmount(v int) *PurchaseEventUpdate {
	_u.mutation.ResetTokenAmount()
	_u.mutation.SetTokenAmount(v)
	return _u
}

// SetNillableTokenAmount sets the "token_amount" field if the given value is not nil.
func (_u *PurchaseEventUpdate) SetNillableTokenAmount(v *int) *PurchaseEventUpdate {
	if v != nil {
		_u.SetTokenAmount(*v)
	}
	return _u
}

// AddTokenAmount adds value to the "token_amount" field.
func (_u *PurchaseEventUpdate) AddTokenAmount(v int) *PurchaseEventUpdate {
	_u.mutation.AddTokenAmount(v)
	return _u
}

// SetPurchaseType sets the "purchase_type" field.
func (_u *PurchaseEventUpdate) SetPurchaseType(v purchaseevent.PurchaseType) *PurchaseEventUpdate {
	_u.mutation.SetPurchaseType(v)
	return _u
}

// SetNillablePurchaseType sets the "purchase_type" field if the given value is not nil.
func (_u *PurchaseEventUpdate) SetNillablePurchaseType(v *purchaseevent.PurchaseType) *PurchaseEventUpdate {
	if v != nil {
		_u.SetPurchaseType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PurchaseEventUpdate) SetStatus(v purchaseevent.Status) *PurchaseEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PurchaseEventUpdate) SetNillableStatus(v *purchaseevent.Status) *PurchaseEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PurchaseEventUpdate) SetCurrency(v string) *PurchaseEventUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PurchaseEventUpdate) SetNillableCurrency(v *string) *PurchaseEventUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *PurchaseEventUpdate) SetTransactionID(v string) *PurchaseEventUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *PurchaseEventUpdate) SetNillableTransactionID(v *string) *PurchaseEventUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *PurchaseEventUpdate) ClearTransactionID() *PurchaseEventUpdate {
	_u.mutation.ClearTransactionID()
	return _u
}

// Mutation returns the PurchaseEventMutation object of the builder.
func (_u *PurchaseEventUpdate) Mutation() *PurchaseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PurchaseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PurchaseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseEventUpdate) check() error {
	if v, ok := _u.mutation.TokenAmount(); ok {
		if err := purchaseevent.TokenAmountValidator(v); err != nil {
			return &ValidationError{Name: "token_amount", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.token_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PurchaseType(); ok {
		if err := purchaseevent.PurchaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "purchase_type", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.purchase_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := purchaseevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PurchaseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseevent.Table, purchaseevent.Columns, sqlgraph.NewFieldSpec(purchaseevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TokenAmount(); ok {
		_spec.SetField(purchaseevent.FieldTokenAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenAmount(); ok {
		_spec.AddField(purchaseevent.FieldTokenAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PurchaseType(); ok {
		_spec.SetField(purchaseevent.FieldPurchaseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(purchaseevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(purchaseevent.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(purchaseevent.FieldTransactionID, field.TypeString, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(purchaseevent.FieldTransactionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PurchaseEventUpdateOne is the builder for updating a single PurchaseEvent entity.
type PurchaseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PurchaseEventMutation
}

// SetTokenAmount sets the "token_amount" field.
func (_u *PurchaseEventUpdateOne) SetTokenAmount(v int) *PurchaseEventUpdateOne {
	_u.mutation.ResetTokenAmount()
	_u.mutation.SetTokenAmount(v)
	return _u
}

// SetNillableTokenAmount sets the "token_amount" field if the given value is not nil.
func (_u *PurchaseEventUpdateOne) SetNillableTokenAmount(v *int) *PurchaseEventUpdateOne {
	if v != nil {
		_u.SetTokenAmount(*v)
	}
	return _u
}

// AddTokenAmount adds value to the "token_amount" field.
func (_u *PurchaseEventUpdateOne) AddTokenAmount(v int) *PurchaseEventUpdateOne {
	_u.mutation.AddTokenAmount(v)
	return _u
}

// SetPurchaseType sets the "purchase_type" field.
func (_u *PurchaseEventUpdateOne) SetPurchaseType(v purchaseevent.PurchaseType) *PurchaseEventUpdateOne {
	_u.mutation.SetPurchaseType(v)
	return _u
}

// SetNillablePurchaseType sets the "purchase_type" field if the given value is not nil.
func (_u *PurchaseEventUpdateOne) SetNillablePurchaseType(v *purchaseevent.PurchaseType) *PurchaseEventUpdateOne {
	if v != nil {
		_u.SetPurchaseType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PurchaseEventUpdateOne) SetStatus(v purchaseevent.Status) *PurchaseEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PurchaseEventUpdateOne) SetNillableStatus(v *purchaseevent.Status) *PurchaseEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *PurchaseEventUpdateOne) SetCurrency(v string) *PurchaseEventUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *PurchaseEventUpdateOne) SetNillableCurrency(v *string) *PurchaseEventUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *PurchaseEventUpdateOne) SetTransactionID(v string) *PurchaseEventUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *PurchaseEventUpdateOne) SetNillableTransactionID(v *string) *PurchaseEventUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *PurchaseEventUpdateOne) ClearTransactionID() *PurchaseEventUpdateOne {
	_u.mutation.ClearTransactionID()
	return _u
}

// Mutation returns the PurchaseEventMutation object of the builder.
func (_u *PurchaseEventUpdateOne) Mutation() *PurchaseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PurchaseEventUpdate builder.
func (_u *PurchaseEventUpdateOne) Where(ps ...predicate.PurchaseEvent) *PurchaseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PurchaseEventUpdateOne) Select(field string, fields ...string) *PurchaseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PurchaseEvent entity.
func (_u *PurchaseEventUpdateOne) Save(ctx context.Context) (*PurchaseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseEventUpdateOne) SaveX(ctx context.Context) *PurchaseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PurchaseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseEventUpdateOne) check() error {
	if v, ok := _u.mutation.TokenAmount(); ok {
		if err := purchaseevent.TokenAmountValidator(v); err != nil {
			return &ValidationError{Name: "token_amount", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.token_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PurchaseType(); ok {
		if err := purchaseevent.PurchaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "purchase_type", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.purchase_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := purchaseevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PurchaseEventUpdateOne) sqlSave(ctx context.Context) (_node *PurchaseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseevent.Table, purchaseevent.Columns, sqlgraph.NewFieldSpec(purchaseevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PurchaseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, purchaseevent.FieldID)
		for _, f := range fields {
			if !purchaseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != purchaseevent.FieldID {
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
	if value, ok := _u.mutation.TokenAmount(); ok {
		_spec.SetField(purchaseevent.FieldTokenAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenAmount(); ok {
		_spec.AddField(purchaseevent.FieldTokenAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PurchaseType(); ok {
		_spec.SetField(purchaseevent.FieldPurchaseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(purchaseevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(purchaseevent.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(purchaseevent.FieldTransactionID, field.TypeString, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(purchaseevent.FieldTransactionID, field.TypeString)
	}
	_node = &PurchaseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
