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
	"github.com/clipdock/clipd/ent/usagerecord"
)

// UsageRecordCreate is the builder for creating a UsageRecord entity.
type UsageRecordCreate struct {
	config
	mutation *UsageRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UsageRecordCreate) SetUserID(v string) *UsageRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlanMonth sets the "plan_month" field.
func (_c *UsageRecordCreate) SetPlanMonth(v time.Time) *UsageRecordCreate {
	_c.mutation.SetPlanMonth(v)
	return _c
}

// SetAllocatedQuota sets the "allocated_quota" field.
func (_c *UsageRecordCreate) SetAllocatedQuota(v int) *UsageRecordCreate {
	_c.mutation.SetAllocatedQuota(v)
	return _c
}

// SetUsedTokensWtu sets the "used_tokens_wtu" field.
func (_c *UsageRecordCreate) SetUsedTokensWtu(v int) *UsageRecordCreate {
	_c.mutation.SetUsedTokensWtu(v)
	return _c
}

// SetNillableUsedTokensWtu sets the "used_tokens_wtu" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableUsedTokensWtu(v *int) *UsageRecordCreate {
	if v != nil {
		_c.SetUsedTokensWtu(*v)
	}
	return _c
}

// SetRemainingTokens sets the "remaining_tokens" field.
func (_c *UsageRecordCreate) SetRemainingTokens(v int) *UsageRecordCreate {
	_c.mutation.SetRemainingTokens(v)
	return _c
}

// SetTotalPurchased sets the "total_purchased" field.
func (_c *UsageRecordCreate) SetTotalPurchased(v int) *UsageRecordCreate {
	_c.mutation.SetTotalPurchased(v)
	return _c
}

// SetNillableTotalPurchased sets the "total_purchased" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableTotalPurchased(v *int) *UsageRecordCreate {
	if v != nil {
		_c.SetTotalPurchased(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageRecordCreate) SetCreatedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCreatedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsageRecordCreate) SetUpdatedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableUpdatedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageRecordCreate) SetID(v string) *UsageRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_c *UsageRecordCreate) Mutation() *UsageRecordMutation {
	return _c.mutation
}

// Save creates the UsageRecord in the database.
func (_c *UsageRecordCreate) Save(ctx context.Context) (*UsageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageRecordCreate) SaveX(ctx context.Context) *UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageRecordCreate) defaults() {
	if _, ok := _c.mutation.UsedTokensWtu(); !ok {
		v := usagerecord.DefaultUsedTokensWtu
		_c.mutation.SetUsedTokensWtu(v)
	}
	if _, ok := _c.mutation.TotalPurchased(); !ok {
		v := usagerecord.DefaultTotalPurchased
		_c.mutation.SetTotalPurchased(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usagerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageRecord.user_id"`)}
	}
	if _, ok := _c.mutation.PlanMonth(); !ok {
		return &ValidationError{Name: "plan_month", err: errors.New(`ent: missing required field "UsageRecord.plan_month"`)}
	}
	if _, ok := _c.mutation.AllocatedQuota(); !ok {
		return &ValidationError{Name: "allocated_quota", err: errors.New(`ent: missing required field "UsageRecord.allocated_quota"`)}
	}
	if v, ok := _c.mutation.AllocatedQuota(); ok {
		if err := usagerecord.AllocatedQuotaValidator(v); err != nil {
			return &ValidationError{Name: "allocated_quota", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.allocated_quota": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsedTokensWtu(); !ok {
		return &ValidationError{Name: "used_tokens_wtu", err: errors.New(`ent: missing required field "UsageRecord.used_tokens_wtu"`)}
	}
	if v, ok := _c.mutation.UsedTokensWtu(); ok {
		if err := usagerecord.UsedTokensWtuValidator(v); err != nil {
			return &ValidationError{Name: "used_tokens_wtu", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.used_tokens_wtu": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RemainingTokens(); !ok {
		return &ValidationError{Name: "remaining_tokens", err: errors.New(`ent: missing required field "UsageRecord.remaining_tokens"`)}
	}
	if v, ok := _c.mutation.RemainingTokens(); ok {
		if err := usagerecord.RemainingTokensValidator(v); err != nil {
			return &ValidationError{Name: "remaining_tokens", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.remaining_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPurchased(); !ok {
		return &ValidationError{Name: "total_purchased", err: errors.New(`ent: missing required field "UsageRecord.total_purchased"`)}
	}
	if v, ok := _c.mutation.TotalPurchased(); ok {
		if err := usagerecord.TotalPurchasedValidator(v); err != nil {
			return &ValidationError{Name: "total_purchased", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.total_purchased": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UsageRecord.updated_at"`)}
	}
	return nil
}

func (_c *UsageRecordCreate) sqlSave(ctx context.Context) (*UsageRecord, error) {
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
			return nil, fmt.Errorf("unexpected UsageRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageRecordCreate) createSpec() (*UsageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagerecord.Table, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usagerecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PlanMonth(); ok {
		_spec.SetField(usagerecord.FieldPlanMonth, field.TypeTime, value)
		_node.PlanMonth = value
	}
	if value, ok := _c.mutation.AllocatedQuota(); ok {
		_spec.SetField(usagerecord.FieldAllocatedQuota, field.TypeInt, value)
		_node.AllocatedQuota = value
	}
	if value, ok := _c.mutation.UsedTokensWtu(); ok {
		_spec.SetField(usagerecord.FieldUsedTokensWtu, field.TypeInt, value)
		_node.UsedTokensWtu = value
	}
	if value, ok := _c.mutation.RemainingTokens(); ok {
		_spec.SetField(usagerecord.FieldRemainingTokens, field.TypeInt, value)
		_node.RemainingTokens = value
	}
	if value, ok := _c.mutation.TotalPurchased(); ok {
		_spec.SetField(usagerecord.FieldTotalPurchased, field.TypeInt, value)
		_node.TotalPurchased = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usagerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageRecord.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageRecordCreate) OnConflict(opts ...sql.ConflictOption) *UsageRecordUpsertOne {
	_c.conflict = opts
	return &UsageRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageRecordCreate) OnConflictColumns(columns ...string) *UsageRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageRecordUpsertOne{
		create: _c,
	}
}

type (
	// UsageRecordUpsertOne is the builder for "upsert"-ing
	//  one UsageRecord node.
	UsageRecordUpsertOne struct {
		create *UsageRecordCreate
	}

	// UsageRecordUpsert is the "OnConflict" setter.
	UsageRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetAllocatedQuota sets the "allocated_quota" field.
func (u *UsageRecordUpsert) SetAllocatedQuota(v int) *UsageRecordUpsert {
	u.Set(usagerecord.FieldAllocatedQuota, v)
	return u
}

// UpdateAllocatedQuota sets the "allocated_quota" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateAllocatedQuota() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldAllocatedQuota)
	return u
}

// AddAllocatedQuota adds v to the "allocated_quota" field.
func (u *UsageRecordUpsert) AddAllocatedQuota(v int) *UsageRecordUpsert {
	u.Add(usagerecord.FieldAllocatedQuota, v)
	return u
}

// SetUsedTokensWtu sets the "used_tokens_wtu" field.
func (u *UsageRecordUpsert) SetUsedTokensWtu(v int) *UsageRecordUpsert {
	u.Set(usagerecord.FieldUsedTokensWtu, v)
	return u
}

// UpdateUsedTokensWtu sets the "used_tokens_wtu" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateUsedTokensWtu() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldUsedTokensWtu)
	return u
}

// AddUsedTokensWtu adds v to the "used_tokens_wtu" field.
func (u *UsageRecordUpsert) AddUsedTokensWtu(v int) *UsageRecordUpsert {
	u.Add(usagerecord.FieldUsedTokensWtu, v)
	return u
}

// SetRemainingTokens sets the "remaining_tokens" field.
func (u *UsageRecordUpsert) SetRemainingTokens(v int) *UsageRecordUpsert {
	u.Set(usagerecord.FieldRemainingTokens, v)
	return u
}

// UpdateRemainingTokens sets the "remaining_tokens" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateRemainingTokens() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldRemainingTokens)
	return u
}

// AddRemainingTokens adds v to the "remaining_tokens" field.
func (u *UsageRecordUpsert) AddRemainingTokens(v int) *UsageRecordUpsert {
	u.Add(usagerecord.FieldRemainingTokens, v)
	return u
}

// SetTotalPurchased sets the "total_purchased" field.
func (u *UsageRecordUpsert) SetTotalPurchased(v int) *UsageRecordUpsert {
	u.Set(usagerecord.FieldTotalPurchased, v)
	return u
}

// UpdateTotalPurchased sets the "total_purchased" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateTotalPurchased() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldTotalPurchased)
	return u
}

// AddTotalPurchased adds v to the "total_purchased" field.
func (u *UsageRecordUpsert) AddTotalPurchased(v int) *UsageRecordUpsert {
	u.Add(usagerecord.FieldTotalPurchased, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageRecordUpsert) SetUpdatedAt(v time.Time) *UsageRecordUpsert {
	u.Set(usagerecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageRecordUpsert) UpdateUpdatedAt() *UsageRecordUpsert {
	u.SetExcluded(usagerecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usagerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UsageRecordUpsertOne) UpdateNewValues() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(usagerecord.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(usagerecord.FieldUserID)
		}
		if _, exists := u.create.mutation.PlanMonth(); exists {
			s.SetIgnore(usagerecord.FieldPlanMonth)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(usagerecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UsageRecordUpsertOne) Ignore() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageRecordUpsertOne) DoNothing() *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageRecordCreate.OnConflict
// documentation for more info.
func (u *UsageRecordUpsertOne) Update(set func(*UsageRecordUpsert)) *UsageRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAllocatedQuota sets the "allocated_quota" field.
func (u *UsageRecordUpsertOne) SetAllocatedQuota(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetAllocatedQuota(v)
	})
}

// AddAllocatedQuota adds v to the "allocated_quota" field.
func (u *UsageRecordUpsertOne) AddAllocatedQuota(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddAllocatedQuota(v)
	})
}

// UpdateAllocatedQuota sets the "allocated_quota" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateAllocatedQuota() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateAllocatedQuota()
	})
}

// SetUsedTokensWtu sets the "used_tokens_wtu" field.
func (u *UsageRecordUpsertOne) SetUsedTokensWtu(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUsedTokensWtu(v)
	})
}

// AddUsedTokensWtu adds v to the "used_tokens_wtu" field.
func (u *UsageRecordUpsertOne) AddUsedTokensWtu(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddUsedTokensWtu(v)
	})
}

// UpdateUsedTokensWtu sets the "used_tokens_wtu" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateUsedTokensWtu() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUsedTokensWtu()
	})
}

// SetRemainingTokens sets the "remaining_tokens" field.
func (u *UsageRecordUpsertOne) SetRemainingTokens(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetRemainingTokens(v)
	})
}

// AddRemainingTokens adds v to the "remaining_tokens" field.
func (u *UsageRecordUpsertOne) AddRemainingTokens(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddRemainingTokens(v)
	})
}

// UpdateRemainingTokens sets the "remaining_tokens" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateRemainingTokens() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateRemainingTokens()
	})
}

// SetTotalPurchased sets the "total_purchased" field.
func (u *UsageRecordUpsertOne) SetTotalPurchased(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetTotalPurchased(v)
	})
}

// AddTotalPurchased adds v to the "total_purchased" field.
func (u *UsageRecordUpsertOne) AddTotalPurchased(v int) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddTotalPurchased(v)
	})
}

// UpdateTotalPurchased sets the "total_purchased" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateTotalPurchased() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateTotalPurchased()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageRecordUpsertOne) SetUpdatedAt(v time.Time) *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageRecordUpsertOne) UpdateUpdatedAt() *UsageRecordUpsertOne {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UsageRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UsageRecordUpsertOne.ID is not supported by MySQL driver. Use UsageRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UsageRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UsageRecordCreateBulk is the builder for creating many UsageRecord entities in bulk.
type UsageRecordCreateBulk struct {
	config
	err      error
	builders []*UsageRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the UsageRecord entities in the database.
func (_c *UsageRecordCreateBulk) Save(ctx context.Context) ([]*UsageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageRecordMutation)
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
func (_c *UsageRecordCreateBulk) SaveX(ctx context.Context) []*UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UsageRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UsageRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UsageRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *UsageRecordUpsertBulk {
	_c.conflict = opts
	return &UsageRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UsageRecordCreateBulk) OnConflictColumns(columns ...string) *UsageRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UsageRecordUpsertBulk{
		create: _c,
	}
}

// UsageRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of UsageRecord nodes.
type UsageRecordUpsertBulk struct {
	create *UsageRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usagerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UsageRecordUpsertBulk) UpdateNewValues() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(usagerecord.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(usagerecord.FieldUserID)
			}
			if _, exists := b.mutation.PlanMonth(); exists {
				s.SetIgnore(usagerecord.FieldPlanMonth)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(usagerecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UsageRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UsageRecordUpsertBulk) Ignore() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UsageRecordUpsertBulk) DoNothing() *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UsageRecordCreateBulk.OnConflict
// documentation for more info.
func (u *UsageRecordUpsertBulk) Update(set func(*UsageRecordUpsert)) *UsageRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UsageRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAllocatedQuota sets the "allocated_quota" field.
func (u *UsageRecordUpsertBulk) SetAllocatedQuota(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetAllocatedQuota(v)
	})
}

// AddAllocatedQuota adds v to the "allocated_quota" field.
func (u *UsageRecordUpsertBulk) AddAllocatedQuota(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddAllocatedQuota(v)
	})
}

// UpdateAllocatedQuota sets the "allocated_quota" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateAllocatedQuota() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateAllocatedQuota()
	})
}

// SetUsedTokensWtu sets the "used_tokens_wtu" field.
func (u *UsageRecordUpsertBulk) SetUsedTokensWtu(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUsedTokensWtu(v)
	})
}

// AddUsedTokensWtu adds v to the "used_tokens_wtu" field.
func (u *UsageRecordUpsertBulk) AddUsedTokensWtu(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddUsedTokensWtu(v)
	})
}

// UpdateUsedTokensWtu sets the "used_tokens_wtu" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateUsedTokensWtu() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUsedTokensWtu()
	})
}

// SetRemainingTokens sets the "remaining_tokens" field.
func (u *UsageRecordUpsertBulk) SetRemainingTokens(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetRemainingTokens(v)
	})
}

// AddRemainingTokens adds v to the "remaining_tokens" field.
func (u *UsageRecordUpsertBulk) AddRemainingTokens(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddRemainingTokens(v)
	})
}

// UpdateRemainingTokens sets the "remaining_tokens" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateRemainingTokens() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateRemainingTokens()
	})
}

// SetTotalPurchased sets the "total_purchased" field.
func (u *UsageRecordUpsertBulk) SetTotalPurchased(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetTotalPurchased(v)
	})
}

// AddTotalPurchased adds v to the "total_purchased" field.
func (u *UsageRecordUpsertBulk) AddTotalPurchased(v int) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.AddTotalPurchased(v)
	})
}

// UpdateTotalPurchased sets the "total_purchased" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateTotalPurchased() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateTotalPurchased()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UsageRecordUpsertBulk) SetUpdatedAt(v time.Time) *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UsageRecordUpsertBulk) UpdateUpdatedAt() *UsageRecordUpsertBulk {
	return u.Update(func(s *UsageRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UsageRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UsageRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UsageRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UsageRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
