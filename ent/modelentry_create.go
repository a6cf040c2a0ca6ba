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
	"github.com/clipdock/clipd/ent/modelentry"
)

// ModelEntryCreate is the builder for creating a ModelEntry entity.
type ModelEntryCreate struct {
	config
	mutation *ModelEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAlias sets the "alias" field.
func (_c *ModelEntryCreate) SetAlias(v string) *ModelEntryCreate {
	_c.mutation.SetAlias(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ModelEntryCreate) SetProvider(v modelentry.Provider) *ModelEntryCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ModelEntryCreate) SetModelName(v string) *ModelEntryCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *ModelEntryCreate) SetTier(v modelentry.Tier) *ModelEntryCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetInputWtuMultiplier sets the "input_wtu_multiplier" field.
func (_c *ModelEntryCreate) SetInputWtuMultiplier(v float64) *ModelEntryCreate {
	_c.mutation.SetInputWtuMultiplier(v)
	return _c
}

// SetNillableInputWtuMultiplier sets the "input_wtu_multiplier" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillableInputWtuMultiplier(v *float64) *ModelEntryCreate {
	if v != nil {
		_c.SetInputWtuMultiplier(*v)
	}
	return _c
}

// SetOutputWtuMultiplier sets the "output_wtu_multiplier" field.
func (_c *ModelEntryCreate) SetOutputWtuMultiplier(v float64) *ModelEntryCreate {
	_c.mutation.SetOutputWtuMultiplier(v)
	return _c
}

// SetNillableOutputWtuMultiplier sets the "output_wtu_multiplier" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillableOutputWtuMultiplier(v *float64) *ModelEntryCreate {
	if v != nil {
		_c.SetOutputWtuMultiplier(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ModelEntryCreate) SetIsActive(v bool) *ModelEntryCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillableIsActive(v *bool) *ModelEntryCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetPriceInputPerMillion sets the "price_input_per_million" field.
func (_c *ModelEntryCreate) SetPriceInputPerMillion(v float64) *ModelEntryCreate {
	_c.mutation.SetPriceInputPerMillion(v)
	return _c
}

// SetNillablePriceInputPerMillion sets the "price_input_per_million" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillablePriceInputPerMillion(v *float64) *ModelEntryCreate {
	if v != nil {
		_c.SetPriceInputPerMillion(*v)
	}
	return _c
}

// SetPriceOutputPerMillion sets the "price_output_per_million" field.
func (_c *ModelEntryCreate) SetPriceOutputPerMillion(v float64) *ModelEntryCreate {
	_c.mutation.SetPriceOutputPerMillion(v)
	return _c
}

// SetNillablePriceOutputPerMillion sets the "price_output_per_million" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillablePriceOutputPerMillion(v *float64) *ModelEntryCreate {
	if v != nil {
		_c.SetPriceOutputPerMillion(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *ModelEntryCreate) SetSortOrder(v int) *ModelEntryCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillableSortOrder(v *int) *ModelEntryCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (_c *ModelEntryCreate) SetEmbeddingDims(v int) *ModelEntryCreate {
	_c.mutation.SetEmbeddingDims(v)
	return _c
}

// SetNillableEmbeddingDims sets the "embedding_dims" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillableEmbeddingDims(v *int) *ModelEntryCreate {
	if v != nil {
		_c.SetEmbeddingDims(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelEntryCreate) SetCreatedAt(v time.Time) *ModelEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillableCreatedAt(v *time.Time) *ModelEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelEntryCreate) SetUpdatedAt(v time.Time) *ModelEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelEntryCreate) SetNillableUpdatedAt(v *time.Time) *ModelEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelEntryCreate) SetID(v string) *ModelEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelEntryMutation object of the builder.
func (_c *ModelEntryCreate) Mutation() *ModelEntryMutation {
	return _c.mutation
}

// Save creates the ModelEntry in the database.
func (_c *ModelEntryCreate) Save(ctx context.Context) (*ModelEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelEntryCreate) SaveX(ctx context.Context) *ModelEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelEntryCreate) defaults() {
	if _, ok := _c.mutation.InputWtuMultiplier(); !ok {
		v := modelentry.DefaultInputWtuMultiplier
		_c.mutation.SetInputWtuMultiplier(v)
	}
	if _, ok := _c.mutation.OutputWtuMultiplier(); !ok {
		v := modelentry.DefaultOutputWtuMultiplier
		_c.mutation.SetOutputWtuMultiplier(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := modelentry.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := modelentry.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelEntryCreate) check() error {
	if _, ok := _c.mutation.Alias(); !ok {
		return &ValidationError{Name: "alias", err: errors.New(`ent: missing required field "ModelEntry.alias"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ModelEntry.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := modelentry.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelEntry.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "ModelEntry.model_name"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "ModelEntry.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := modelentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ModelEntry.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputWtuMultiplier(); !ok {
		return &ValidationError{Name: "input_wtu_multiplier", err: errors.New(`ent: missing required field "ModelEntry.input_wtu_multiplier"`)}
	}
	if _, ok := _c.mutation.OutputWtuMultiplier(); !ok {
		return &ValidationError{Name: "output_wtu_multiplier", err: errors.New(`ent: missing required field "ModelEntry.output_wtu_multiplier"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ModelEntry.is_active"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "ModelEntry.sort_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelEntry.updated_at"`)}
	}
	return nil
}

func (_c *ModelEntryCreate) sqlSave(ctx context.Context) (*ModelEntry, error) {
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
			return nil, fmt.Errorf("unexpected ModelEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelEntryCreate) createSpec() (*ModelEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelentry.Table, sqlgraph.NewFieldSpec(modelentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Alias(); ok {
		_spec.SetField(modelentry.FieldAlias, field.TypeString, value)
		_node.Alias = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(modelentry.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(modelentry.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(modelentry.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.InputWtuMultiplier(); ok {
		_spec.SetField(modelentry.FieldInputWtuMultiplier, field.TypeFloat64, value)
		_node.InputWtuMultiplier = value
	}
	if value, ok := _c.mutation.OutputWtuMultiplier(); ok {
		_spec.SetField(modelentry.FieldOutputWtuMultiplier, field.TypeFloat64, value)
		_node.OutputWtuMultiplier = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(modelentry.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.PriceInputPerMillion(); ok {
		_spec.SetField(modelentry.FieldPriceInputPerMillion, field.TypeFloat64, value)
		_node.PriceInputPerMillion = &value
	}
	if value, ok := _c.mutation.PriceOutputPerMillion(); ok {
		_spec.SetField(modelentry.FieldPriceOutputPerMillion, field.TypeFloat64, value)
		_node.PriceOutputPerMillion = &value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(modelentry.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.EmbeddingDims(); ok {
		_spec.SetField(modelentry.FieldEmbeddingDims, field.TypeInt, value)
		_node.EmbeddingDims = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelEntry.Create().
//		SetAlias(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelEntryUpsert) {
//			SetAlias(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelEntryCreate) OnConflict(opts ...sql.ConflictOption) *ModelEntryUpsertOne {
	_c.conflict = opts
	return &ModelEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelEntryCreate) OnConflictColumns(columns ...string) *ModelEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelEntryUpsertOne{
		create: _c,
	}
}

type (
	// ModelEntryUpsertOne is the builder for "upsert"-ing
	//  one ModelEntry node.
	ModelEntryUpsertOne struct {
		create *ModelEntryCreate
	}

	// ModelEntryUpsert is the "OnConflict" setter.
	ModelEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetAlias sets the "alias" field.
func (u *ModelEntryUpsert) SetAlias(v string) *ModelEntryUpsert {
	u.Set(modelentry.FieldAlias, v)
	return u
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateAlias() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldAlias)
	return u
}

// SetProvider sets the "provider" field.
func (u *ModelEntryUpsert) SetProvider(v modelentry.Provider) *ModelEntryUpsert {
	u.Set(modelentry.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateProvider() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldProvider)
	return u
}

// SetModelName sets the "model_name" field.
func (u *ModelEntryUpsert) SetModelName(v string) *ModelEntryUpsert {
	u.Set(modelentry.FieldModelName, v)
	return u
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateModelName() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldModelName)
	return u
}

// SetTier sets the "tier" field.
func (u *ModelEntryUpsert) SetTier(v modelentry.Tier) *ModelEntryUpsert {
	u.Set(modelentry.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateTier() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldTier)
	return u
}

// SetInputWtuMultiplier sets the "input_wtu_multiplier" field.
func (u *ModelEntryUpsert) SetInputWtuMultiplier(v float64) *ModelEntryUpsert {
	u.Set(modelentry.FieldInputWtuMultiplier, v)
	return u
}

// UpdateInputWtuMultiplier sets the "input_wtu_multiplier" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateInputWtuMultiplier() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldInputWtuMultiplier)
	return u
}

// AddInputWtuMultiplier adds v to the "input_wtu_multiplier" field.
func (u *ModelEntryUpsert) AddInputWtuMultiplier(v float64) *ModelEntryUpsert {
	u.Add(modelentry.FieldInputWtuMultiplier, v)
	return u
}

// SetOutputWtuMultiplier sets the "output_wtu_multiplier" field.
func (u *ModelEntryUpsert) SetOutputWtuMultiplier(v float64) *ModelEntryUpsert {
	u.Set(modelentry.FieldOutputWtuMultiplier, v)
	return u
}

// UpdateOutputWtuMultiplier sets the "output_wtu_multiplier" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateOutputWtuMultiplier() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldOutputWtuMultiplier)
	return u
}

// AddOutputWtuMultiplier adds v to the "output_wtu_multiplier" field.
func (u *ModelEntryUpsert) AddOutputWtuMultiplier(v float64) *ModelEntryUpsert {
	u.Add(modelentry.FieldOutputWtuMultiplier, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ModelEntryUpsert) SetIsActive(v bool) *ModelEntryUpsert {
	u.Set(modelentry.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateIsActive() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldIsActive)
	return u
}

// SetPriceInputPerMillion sets the "price_input_per_million" field.
func (u *ModelEntryUpsert) SetPriceInputPerMillion(v float64) *ModelEntryUpsert {
	u.Set(modelentry.FieldPriceInputPerMillion, v)
	return u
}

// UpdatePriceInputPerMillion sets the "price_input_per_million" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdatePriceInputPerMillion() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldPriceInputPerMillion)
	return u
}

// AddPriceInputPerMillion adds v to the "price_input_per_million" field.
func (u *ModelEntryUpsert) AddPriceInputPerMillion(v float64) *ModelEntryUpsert {
	u.Add(modelentry.FieldPriceInputPerMillion, v)
	return u
}

// ClearPriceInputPerMillion clears the value of the "price_input_per_million" field.
func (u *ModelEntryUpsert) ClearPriceInputPerMillion() *ModelEntryUpsert {
	u.SetNull(modelentry.FieldPriceInputPerMillion)
	return u
}

// SetPriceOutputPerMillion sets the "price_output_per_million" field.
func (u *ModelEntryUpsert) SetPriceOutputPerMillion(v float64) *ModelEntryUpsert {
	u.Set(modelentry.FieldPriceOutputPerMillion, v)
	return u
}

// UpdatePriceOutputPerMillion sets the "price_output_per_million" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdatePriceOutputPerMillion() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldPriceOutputPerMillion)
	return u
}

// AddPriceOutputPerMillion adds v to the "price_output_per_million" field.
func (u *ModelEntryUpsert) AddPriceOutputPerMillion(v float64) *ModelEntryUpsert {
	u.Add(modelentry.FieldPriceOutputPerMillion, v)
	return u
}

// ClearPriceOutputPerMillion clears the value of the "price_output_per_million" field.
func (u *ModelEntryUpsert) ClearPriceOutputPerMillion() *ModelEntryUpsert {
	u.SetNull(modelentry.FieldPriceOutputPerMillion)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *ModelEntryUpsert) SetSortOrder(v int) *ModelEntryUpsert {
	u.Set(modelentry.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateSortOrder() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ModelEntryUpsert) AddSortOrder(v int) *ModelEntryUpsert {
	u.Add(modelentry.FieldSortOrder, v)
	return u
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (u *ModelEntryUpsert) SetEmbeddingDims(v int) *ModelEntryUpsert {
	u.Set(modelentry.FieldEmbeddingDims, v)
	return u
}

// UpdateEmbeddingDims sets the "embedding_dims" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateEmbeddingDims() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldEmbeddingDims)
	return u
}

// AddEmbeddingDims adds v to the "embedding_dims" field.
func (u *ModelEntryUpsert) AddEmbeddingDims(v int) *ModelEntryUpsert {
	u.Add(modelentry.FieldEmbeddingDims, v)
	return u
}

// ClearEmbeddingDims clears the value of the "embedding_dims" field.
func (u *ModelEntryUpsert) ClearEmbeddingDims() *ModelEntryUpsert {
	u.SetNull(modelentry.FieldEmbeddingDims)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelEntryUpsert) SetUpdatedAt(v time.Time) *ModelEntryUpsert {
	u.Set(modelentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelEntryUpsert) UpdateUpdatedAt() *ModelEntryUpsert {
	u.SetExcluded(modelentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ModelEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelEntryUpsertOne) UpdateNewValues() *ModelEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(modelentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(modelentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModelEntryUpsertOne) Ignore() *ModelEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelEntryUpsertOne) DoNothing() *ModelEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelEntryCreate.OnConflict
// documentation for more info.
func (u *ModelEntryUpsertOne) Update(set func(*ModelEntryUpsert)) *ModelEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlias sets the "alias" field.
func (u *ModelEntryUpsertOne) SetAlias(v string) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateAlias() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateAlias()
	})
}

// SetProvider sets the "provider" field.
func (u *ModelEntryUpsertOne) SetProvider(v modelentry.Provider) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateProvider() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *ModelEntryUpsertOne) SetModelName(v string) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateModelName() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateModelName()
	})
}

// SetTier sets the "tier" field.
func (u *ModelEntryUpsertOne) SetTier(v modelentry.Tier) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateTier() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateTier()
	})
}

// SetInputWtuMultiplier sets the "input_wtu_multiplier" field.
func (u *ModelEntryUpsertOne) SetInputWtuMultiplier(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetInputWtuMultiplier(v)
	})
}

// AddInputWtuMultiplier adds v to the "input_wtu_multiplier" field.
func (u *ModelEntryUpsertOne) AddInputWtuMultiplier(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddInputWtuMultiplier(v)
	})
}

// UpdateInputWtuMultiplier sets the "input_wtu_multiplier" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateInputWtuMultiplier() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateInputWtuMultiplier()
	})
}

// SetOutputWtuMultiplier sets the "output_wtu_multiplier" field.
func (u *ModelEntryUpsertOne) SetOutputWtuMultiplier(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetOutputWtuMultiplier(v)
	})
}

// AddOutputWtuMultiplier adds v to the "output_wtu_multiplier" field.
func (u *ModelEntryUpsertOne) AddOutputWtuMultiplier(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddOutputWtuMultiplier(v)
	})
}

// UpdateOutputWtuMultiplier sets the "output_wtu_multiplier" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateOutputWtuMultiplier() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateOutputWtuMultiplier()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ModelEntryUpsertOne) SetIsActive(v bool) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateIsActive() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateIsActive()
	})
}

// SetPriceInputPerMillion sets the "price_input_per_million" field.
func (u *ModelEntryUpsertOne) SetPriceInputPerMillion(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetPriceInputPerMillion(v)
	})
}

// AddPriceInputPerMillion adds v to the "price_input_per_million" field.
func (u *ModelEntryUpsertOne) AddPriceInputPerMillion(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddPriceInputPerMillion(v)
	})
}

// UpdatePriceInputPerMillion sets the "price_input_per_million" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdatePriceInputPerMillion() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdatePriceInputPerMillion()
	})
}

// ClearPriceInputPerMillion clears the value of the "price_input_per_million" field.
func (u *ModelEntryUpsertOne) ClearPriceInputPerMillion() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.ClearPriceInputPerMillion()
	})
}

// SetPriceOutputPerMillion sets the "price_output_per_million" field.
func (u *ModelEntryUpsertOne) SetPriceOutputPerMillion(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetPriceOutputPerMillion(v)
	})
}

// AddPriceOutputPerMillion adds v to the "price_output_per_million" field.
func (u *ModelEntryUpsertOne) AddPriceOutputPerMillion(v float64) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddPriceOutputPerMillion(v)
	})
}

// UpdatePriceOutputPerMillion sets the "price_output_per_million" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdatePriceOutputPerMillion() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdatePriceOutputPerMillion()
	})
}

// ClearPriceOutputPerMillion clears the value of the "price_output_per_million" field.
func (u *ModelEntryUpsertOne) ClearPriceOutputPerMillion() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.ClearPriceOutputPerMillion()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *ModelEntryUpsertOne) SetSortOrder(v int) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ModelEntryUpsertOne) AddSortOrder(v int) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateSortOrder() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateSortOrder()
	})
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (u *ModelEntryUpsertOne) SetEmbeddingDims(v int) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetEmbeddingDims(v)
	})
}

// AddEmbeddingDims adds v to the "embedding_dims" field.
func (u *ModelEntryUpsertOne) AddEmbeddingDims(v int) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddEmbeddingDims(v)
	})
}

// UpdateEmbeddingDims sets the "embedding_dims" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateEmbeddingDims() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateEmbeddingDims()
	})
}

// ClearEmbeddingDims clears the value of the "embedding_dims" field.
func (u *ModelEntryUpsertOne) ClearEmbeddingDims() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.ClearEmbeddingDims()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelEntryUpsertOne) SetUpdatedAt(v time.Time) *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelEntryUpsertOne) UpdateUpdatedAt() *ModelEntryUpsertOne {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModelEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ModelEntryUpsertOne.ID is not supported by MySQL driver. Use ModelEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModelEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModelEntryCreateBulk is the builder for creating many ModelEntry entities in bulk.
type ModelEntryCreateBulk struct {
	config
	err      error
	builders []*ModelEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the ModelEntry entities in the database.
func (_c *ModelEntryCreateBulk) Save(ctx context.Context) ([]*ModelEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelEntryMutation)
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
func (_c *ModelEntryCreateBulk) SaveX(ctx context.Context) []*ModelEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelEntryUpsert) {
//			SetAlias(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModelEntryUpsertBulk {
	_c.conflict = opts
	return &ModelEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelEntryCreateBulk) OnConflictColumns(columns ...string) *ModelEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelEntryUpsertBulk{
		create: _c,
	}
}

// ModelEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of ModelEntry nodes.
type ModelEntryUpsertBulk struct {
	create *ModelEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModelEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelEntryUpsertBulk) UpdateNewValues() *ModelEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(modelentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(modelentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModelEntryUpsertBulk) Ignore() *ModelEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelEntryUpsertBulk) DoNothing() *ModelEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelEntryCreateBulk.OnConflict
// documentation for more info.
func (u *ModelEntryUpsertBulk) Update(set func(*ModelEntryUpsert)) *ModelEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetAlias sets the "alias" field.
func (u *ModelEntryUpsertBulk) SetAlias(v string) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateAlias() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateAlias()
	})
}

// SetProvider sets the "provider" field.
func (u *ModelEntryUpsertBulk) SetProvider(v modelentry.Provider) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateProvider() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateProvider()
	})
}

// SetModelName sets the "model_name" field.
func (u *ModelEntryUpsertBulk) SetModelName(v string) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetModelName(v)
	})
}

// UpdateModelName sets the "model_name" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateModelName() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateModelName()
	})
}

// SetTier sets the "tier" field.
func (u *ModelEntryUpsertBulk) SetTier(v modelentry.Tier) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateTier() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateTier()
	})
}

// SetInputWtuMultiplier sets the "input_wtu_multiplier" field.
func (u *ModelEntryUpsertBulk) SetInputWtuMultiplier(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetInputWtuMultiplier(v)
	})
}

// AddInputWtuMultiplier adds v to the "input_wtu_multiplier" field.
func (u *ModelEntryUpsertBulk) AddInputWtuMultiplier(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddInputWtuMultiplier(v)
	})
}

// UpdateInputWtuMultiplier sets the "input_wtu_multiplier" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateInputWtuMultiplier() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateInputWtuMultiplier()
	})
}

// SetOutputWtuMultiplier sets the "output_wtu_multiplier" field.
func (u *ModelEntryUpsertBulk) SetOutputWtuMultiplier(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetOutputWtuMultiplier(v)
	})
}

// AddOutputWtuMultiplier adds v to the "output_wtu_multiplier" field.
func (u *ModelEntryUpsertBulk) AddOutputWtuMultiplier(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddOutputWtuMultiplier(v)
	})
}

// UpdateOutputWtuMultiplier sets the "output_wtu_multiplier" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateOutputWtuMultiplier() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateOutputWtuMultiplier()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ModelEntryUpsertBulk) SetIsActive(v bool) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateIsActive() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateIsActive()
	})
}

// SetPriceInputPerMillion sets the "price_input_per_million" field.
func (u *ModelEntryUpsertBulk) SetPriceInputPerMillion(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetPriceInputPerMillion(v)
	})
}

// AddPriceInputPerMillion adds v to the "price_input_per_million" field.
func (u *ModelEntryUpsertBulk) AddPriceInputPerMillion(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddPriceInputPerMillion(v)
	})
}

// UpdatePriceInputPerMillion sets the "price_input_per_million" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdatePriceInputPerMillion() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdatePriceInputPerMillion()
	})
}

// ClearPriceInputPerMillion clears the value of the "price_input_per_million" field.
func (u *ModelEntryUpsertBulk) ClearPriceInputPerMillion() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.ClearPriceInputPerMillion()
	})
}

// SetPriceOutputPerMillion sets the "price_output_per_million" field.
func (u *ModelEntryUpsertBulk) SetPriceOutputPerMillion(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetPriceOutputPerMillion(v)
	})
}

// AddPriceOutputPerMillion adds v to the "price_output_per_million" field.
func (u *ModelEntryUpsertBulk) AddPriceOutputPerMillion(v float64) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddPriceOutputPerMillion(v)
	})
}

// UpdatePriceOutputPerMillion sets the "price_output_per_million" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdatePriceOutputPerMillion() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdatePriceOutputPerMillion()
	})
}

// ClearPriceOutputPerMillion clears the value of the "price_output_per_million" field.
func (u *ModelEntryUpsertBulk) ClearPriceOutputPerMillion() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.ClearPriceOutputPerMillion()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *ModelEntryUpsertBulk) SetSortOrder(v int) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ModelEntryUpsertBulk) AddSortOrder(v int) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateSortOrder() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateSortOrder()
	})
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (u *ModelEntryUpsertBulk) SetEmbeddingDims(v int) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetEmbeddingDims(v)
	})
}

// AddEmbeddingDims adds v to the "embedding_dims" field.
func (u *ModelEntryUpsertBulk) AddEmbeddingDims(v int) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.AddEmbeddingDims(v)
	})
}

// UpdateEmbeddingDims sets the "embedding_dims" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateEmbeddingDims() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateEmbeddingDims()
	})
}

// ClearEmbeddingDims clears the value of the "embedding_dims" field.
func (u *ModelEntryUpsertBulk) ClearEmbeddingDims() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.ClearEmbeddingDims()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelEntryUpsertBulk) SetUpdatedAt(v time.Time) *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelEntryUpsertBulk) UpdateUpdatedAt() *ModelEntryUpsertBulk {
	return u.Update(func(s *ModelEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModelEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
