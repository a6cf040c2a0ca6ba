// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clipdock/clipd/ent/purchaseevent"
)

// PurchaseEventCreate is the builder for creating a PurchaseEvent entity.
type PurchaseEventCreate struct {
	config
	mutation *PurchaseEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PurchaseEventCreate) SetUserID(v string) *PurchaseEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlanMonth sets the "plan_month" field.
func (_c *PurchaseEventCreate) SetPlanMonth(v time.Time) *PurchaseEventCreate {
	_c.mutation.SetPlanMonth(v)
	return _c
}

// SetTokenAmount sets the "token_amount" field.
func (_c *PurchaseEventCreate) SetTokenAmount(v int) *PurchaseEventCreate {
	_c.mutation.SetTokenAmount(v)
	return _c
}

// SetPurchaseType sets the "purchase_type" field.
func (_c *PurchaseEventCreate) SetPurchaseType(v purchaseevent.PurchaseType) *PurchaseEventCreate {
	_c.mutation.SetPurchaseType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PurchaseEventCreate) SetStatus(v purchaseevent.Status) *PurchaseEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PurchaseEventCreate) SetNillableStatus(v *purchaseevent.Status) *PurchaseEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *PurchaseEventCreate) SetCurrency(v string) *PurchaseEventCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *PurchaseEventCreate) SetNillableCurrency(v *string) *PurchaseEventCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *PurchaseEventCreate) SetTransactionID(v string) *PurchaseEventCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_c *PurchaseEventCreate) SetNillableTransactionID(v *string) *PurchaseEventCreate {
	if v != nil {
		_c.SetTransactionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PurchaseEventCreate) SetCreatedAt(v time.Time) *PurchaseEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PurchaseEventCreate) SetNillableCreatedAt(v *time.Time) *PurchaseEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PurchaseEventCreate) SetID(v string) *PurchaseEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PurchaseEventMutation object of the builder.
func (_c *PurchaseEventCreate) Mutation() *PurchaseEventMutation {
	return _c.mutation
}

// Save creates the PurchaseEvent in the database.
func (_c *PurchaseEventCreate) Save(ctx context.Context) (*PurchaseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PurchaseEventCreate) SaveX(ctx context.Context) *PurchaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PurchaseEventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := purchaseevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := purchaseevent.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := purchaseevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PurchaseEventCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PurchaseEvent.user_id"`)}
	}
	if _, ok := _c.mutation.PlanMonth(); !ok {
		return &ValidationError{Name: "plan_month", err: errors.New(`ent: missing required field "PurchaseEvent.plan_month"`)}
	}
	if _, ok := _c.mutation.TokenAmount(); !ok {
		return &ValidationError{Name: "token_amount", err: errors.New(`ent: missing required field "PurchaseEvent.token_amount"`)}
	}
	if v, ok := _c.mutation.TokenAmount(); ok {
		if err := purchaseevent.TokenAmountValidator(v); err != nil {
			return &ValidationError{Name: "token_amount", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.token_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PurchaseType(); !ok {
		return &ValidationError{Name: "purchase_type", err: errors.New(`ent: missing required field "PurchaseEvent.purchase_type"`)}
	}
	if v, ok := _c.mutation.PurchaseType(); ok {
		if err := purchaseevent.PurchaseTypeValidator(v); err != nil {
			return &ValidationError{Name: "purchase_type", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.purchase_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PurchaseEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := purchaseevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "PurchaseEvent.currency"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PurchaseEvent.created_at"`)}
	}
	return nil
}

func (_c *PurchaseEventCreate) sqlSave(ctx context.Context) (*PurchaseEvent, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PurchaseEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PurchaseEventCreate) createSpec() (*PurchaseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PurchaseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(purchaseevent.Table, sqlgraph.NewFieldSpec(purchaseevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(purchaseevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PlanMonth(); ok {
		_spec.SetField(purchaseevent.FieldPlanMonth, field.TypeTime, value)
		_node.PlanMonth = value
	}
	if value, ok := _c.mutation.TokenAmount(); ok {
		_spec.SetField(purchaseevent.FieldTokenAmount, field.TypeInt, value)
		_node.TokenAmount = value
	}
	if value, ok := _c.mutation.PurchaseType(); ok {
		_spec.SetField(purchaseevent.FieldPurchaseType, field.TypeEnum, value)
		_node.PurchaseType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(purchaseevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(purchaseevent.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(purchaseevent.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(purchaseevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PurchaseEvent.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PurchaseEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PurchaseEventCreate) OnConflict(opts ...sql.ConflictOption) *PurchaseEventUpsertOne {
	_c.conflict = opts
	return &PurchaseEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PurchaseEventCreate) OnConflictColumns(columns ...string) *PurchaseEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PurchaseEventUpsertOne{
		create: _c,
	}
}

type (
	// PurchaseEventUpsertOne is the builder for "upsert"-ing
	//  one PurchaseEvent node.
	PurchaseEventUpsertOne struct {
		create *PurchaseEventCreate
	}

	// PurchaseEventUpsert is the "OnConflict" setter.
	PurchaseEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetTokenAmount sets the "token_amount" field.
func (u *PurchaseEventUpsert) SetTokenAmount(v int) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldTokenAmount, v)
	return u
}

// UpdateTokenAmount sets the "token_amount" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdateTokenAmount() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldTokenAmount)
	return u
}

// AddTokenAmount adds v to the "token_amount" field.
func (u *PurchaseEventUpsert) AddTokenAmount(v int) *PurchaseEventUpsert {
	u.Add(purchaseevent.FieldTokenAmount, v)
	return u
}

// SetPurchaseType sets the "purchase_type" field.
func (u *PurchaseEventUpsert) SetPurchaseType(v purchaseevent.PurchaseType) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldPurchaseType, v)
	return u
}

// UpdatePurchaseType sets the "purchase_type" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdatePurchaseType() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldPurchaseType)
	return u
}

// SetStatus sets the "status" field.
func (u *PurchaseEventUpsert) SetStatus(v purchaseevent.Status) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdateStatus() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldStatus)
	return u
}

// SetCurrency sets the "currency" field.
func (u *PurchaseEventUpsert) SetCurrency(v string) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdateCurrency() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldCurrency)
	return u
}

// SetTransactionID sets the "transaction_id" field.
func (u *PurchaseEventUpsert) SetTransactionID(v string) *PurchaseEventUpsert {
	u.Set(purchaseevent.FieldTransactionID, v)
	return u
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *PurchaseEventUpsert) UpdateTransactionID() *PurchaseEventUpsert {
	u.SetExcluded(purchaseevent.FieldTransactionID)
	return u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *PurchaseEventUpsert) ClearTransactionID() *PurchaseEventUpsert {
	u.SetNull(purchaseevent.FieldTransactionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(purchaseevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PurchaseEventUpsertOne) UpdateNewValues() *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(purchaseevent.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(purchaseevent.FieldUserID)
		}
		if _, exists := u.create.mutation.PlanMonth(); exists {
			s.SetIgnore(purchaseevent.FieldPlanMonth)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(purchaseevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PurchaseEventUpsertOne) Ignore() *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PurchaseEventUpsertOne) DoNothing() *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PurchaseEventCreate.OnConflict
// documentation for more info.
func (u *PurchaseEventUpsertOne) Update(set func(*PurchaseEventUpsert)) *PurchaseEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PurchaseEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTokenAmount sets the "token_amount" field.
func (u *PurchaseEventUpsertOne) SetTokenAmount(v int) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetTokenAmount(v)
	})
}

// AddTokenAmount adds v to the "token_amount" field.
func (u *PurchaseEventUpsertOne) AddTokenAmount(v int) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.AddTokenAmount(v)
	})
}

// UpdateTokenAmount sets the "token_amount" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdateTokenAmount() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateTokenAmount()
	})
}

// SetPurchaseType sets the "purchase_type" field.
func (u *PurchaseEventUpsertOne) SetPurchaseType(v purchaseevent.PurchaseType) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetPurchaseType(v)
	})
}

// UpdatePurchaseType sets the "purchase_type" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdatePurchaseType() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdatePurchaseType()
	})
}

// SetStatus sets the "status" field.
func (u *PurchaseEventUpsertOne) SetStatus(v purchaseevent.Status) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdateStatus() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrency sets the "currency" field.
func (u *PurchaseEventUpsertOne) SetCurrency(v string) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdateCurrency() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateCurrency()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *PurchaseEventUpsertOne) SetTransactionID(v string) *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *PurchaseEventUpsertOne) UpdateTransactionID() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateTransactionID()
	})
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *PurchaseEventUpsertOne) ClearTransactionID() *PurchaseEventUpsertOne {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.ClearTransactionID()
	})
}

// Exec executes the query.
func (u *PurchaseEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PurchaseEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PurchaseEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PurchaseEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PurchaseEventUpsertOne.ID is not supported by MySQL driver. Use PurchaseEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PurchaseEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PurchaseEventCreateBulk is the builder for creating many PurchaseEvent entities in bulk.
type PurchaseEventCreateBulk struct {
	config
	err      error
	builders []*PurchaseEventCreate
	conflict []sql.ConflictOption
}

// Save creates the PurchaseEvent entities in the database.
func (_c *PurchaseEventCreateBulk) Save(ctx context.Context) ([]*PurchaseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PurchaseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PurchaseEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *PurchaseEventCreateBulk) SaveX(ctx context.Context) []*PurchaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PurchaseEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PurchaseEventUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PurchaseEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *PurchaseEventUpsertBulk {
	_c.conflict = opts
	return &PurchaseEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PurchaseEventCreateBulk) OnConflictColumns(columns ...string) *PurchaseEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PurchaseEventUpsertBulk{
		create: _c,
	}
}

// PurchaseEventUpsertBulk is the builder for "upsert"-ing
// a bulk of PurchaseEvent nodes.
type PurchaseEventUpsertBulk struct {
	create *PurchaseEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(purchaseevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PurchaseEventUpsertBulk) UpdateNewValues() *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(purchaseevent.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(purchaseevent.FieldUserID)
			}
			if _, exists := b.mutation.PlanMonth(); exists {
				s.SetIgnore(purchaseevent.FieldPlanMonth)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(purchaseevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PurchaseEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PurchaseEventUpsertBulk) Ignore() *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PurchaseEventUpsertBulk) DoNothing() *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PurchaseEventCreateBulk.OnConflict
// documentation for more info.
func (u *PurchaseEventUpsertBulk) Update(set func(*PurchaseEventUpsert)) *PurchaseEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PurchaseEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTokenAmount sets the "token_amount" field.
func (u *PurchaseEventUpsertBulk) SetTokenAmount(v int) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetTokenAmount(v)
	})
}

// AddTokenAmount adds v to the "token_amount" field.
func (u *PurchaseEventUpsertBulk) AddTokenAmount(v int) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.AddTokenAmount(v)
	})
}

// UpdateTokenAmount sets the "token_amount" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdateTokenAmount() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateTokenAmount()
	})
}

// SetPurchaseType sets the "purchase_type" field.
func (u *PurchaseEventUpsertBulk) SetPurchaseType(v purchaseevent.PurchaseType) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetPurchaseType(v)
	})
}

// UpdatePurchaseType sets the "purchase_type" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdatePurchaseType() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdatePurchaseType()
	})
}

// SetStatus sets the "status" field.
func (u *PurchaseEventUpsertBulk) SetStatus(v purchaseevent.Status) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdateStatus() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrency sets the "currency" field.
func (u *PurchaseEventUpsertBulk) SetCurrency(v string) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdateCurrency() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateCurrency()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *PurchaseEventUpsertBulk) SetTransactionID(v string) *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *PurchaseEventUpsertBulk) UpdateTransactionID() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.UpdateTransactionID()
	})
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *PurchaseEventUpsertBulk) ClearTransactionID() *PurchaseEventUpsertBulk {
	return u.Update(func(s *PurchaseEventUpsert) {
		s.ClearTransactionID()
	})
}

// Exec executes the query.
func (u *PurchaseEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PurchaseEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PurchaseEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PurchaseEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
