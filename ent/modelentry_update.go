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
	"github.com/clipdock/clipd/ent/modelentry"
	"github.com/clipdock/clipd/ent/predicate"
)

// ModelEntryUpdate is the builder for updating ModelEntry entities.
type ModelEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ModelEntryMutation
}

// Where appends a list predicates to the ModelEntryUpdate builder.
func (_u *ModelEntryUpdate) Where(ps ...predicate.ModelEntry) *ModelEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAlias sets the "alias" field.
func (_u *ModelEntryUpdate) SetAlias(v string) *ModelEntryUpdate {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableAlias(v *string) *ModelEntryUpdate {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelEntryUpdate) SetProvider(v modelentry.Provider) *ModelEntryUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableProvider(v *modelentry.Provider) *ModelEntryUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ModelEntryUpdate) SetModelName(v string) *ModelEntryUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableModelName(v *string) *ModelEntryUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ModelEntryUpdate) SetTier(v modelentry.Tier) *ModelEntryUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableTier(v *modelentry.Tier) *ModelEntryUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetInputWtuMultiplier sets the "input_wtu_multiplier" field.
func (_u *ModelEntryUpdate) SetInputWtuMultiplier(v float64) *ModelEntryUpdate {
	_u.mutation.ResetInputWtuMultiplier()
	_u.mutation.SetInputWtuMultiplier(v)
	return _u
}

// SetNillableInputWtuMultiplier sets the "input_wtu_multiplier" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableInputWtuMultiplier(v *float64) *ModelEntryUpdate {
	if v != nil {
		_u.SetInputWtuMultiplier(*v)
	}
	return _u
}

// AddInputWtuMultiplier adds value to the "input_wtu_multiplier" field.
func (_u *ModelEntryUpdate) AddInputWtuMultiplier(v float64) *ModelEntryUpdate {
	_u.mutation.AddInputWtuMultiplier(v)
	return _u
}

// SetOutputWtuMultiplier sets the "output_wtu_multiplier" field.
func (_u *ModelEntryUpdate) SetOutputWtuMultiplier(v float64) *ModelEntryUpdate {
	_u.mutation.ResetOutputWtuMultiplier()
	_u.mutation.SetOutputWtuMultiplier(v)
	return _u
}

// SetNillableOutputWtuMultiplier sets the "output_wtu_multiplier" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableOutputWtuMultiplier(v *float64) *ModelEntryUpdate {
	if v != nil {
		_u.SetOutputWtuMultiplier(*v)
	}
	return _u
}

// AddOutputWtuMultiplier adds value to the "output_wtu_multiplier" field.
func (_u *ModelEntryUpdate) AddOutputWtuMultiplier(v float64) *ModelEntryUpdate {
	_u.mutation.AddOutputWtuMultiplier(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ModelEntryUpdate) SetIsActive(v bool) *ModelEntryUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableIsActive(v *bool) *ModelEntryUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPriceInputPerMillion sets the "price_input_per_million" field.
func (_u *ModelEntryUpdate) SetPriceInputPerMillion(v float64) *ModelEntryUpdate {
	_u.mutation.ResetPriceInputPerMillion()
	_u.mutation.SetPriceInputPerMillion(v)
	return _u
}

// SetNillablePriceInputPerMillion sets the "price_input_per_million" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillablePriceInputPerMillion(v *float64) *ModelEntryUpdate {
	if v != nil {
		_u.SetPriceInputPerMillion(*v)
	}
	return _u
}

// AddPriceInputPerMillion adds value to the "price_input_per_million" field.
func (_u *ModelEntryUpdate) AddPriceInputPerMillion(v float64) *ModelEntryUpdate {
	_u.mutation.AddPriceInputPerMillion(v)
	return _u
}

// ClearPriceInputPerMillion clears the value of the "price_input_per_million" field.
func (_u *ModelEntryUpdate) ClearPriceInputPerMillion() *ModelEntryUpdate {
	_u.mutation.ClearPriceInputPerMillion()
	return _u
}

// SetPriceOutputPerMillion sets the "price_output_per_million" field.
func (_u *ModelEntryUpdate) SetPriceOutputPerMillion(v float64) *ModelEntryUpdate {
	_u.mutation.ResetPriceOutputPerMillion()
	_u.mutation.SetPriceOutputPerMillion(v)
	return _u
}

// SetNillablePriceOutputPerMillion sets the "price_output_per_million" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillablePriceOutputPerMillion(v *float64) *ModelEntryUpdate {
	if v != nil {
		_u.SetPriceOutputPerMillion(*v)
	}
	return _u
}

// AddPriceOutputPerMillion adds value to the "price_output_per_million" field.
func (_u *ModelEntryUpdate) AddPriceOutputPerMillion(v float64) *ModelEntryUpdate {
	_u.mutation.AddPriceOutputPerMillion(v)
	return _u
}

// ClearPriceOutputPerMillion clears the value of the "price_output_per_million" field.
func (_u *ModelEntryUpdate) ClearPriceOutputPerMillion() *ModelEntryUpdate {
	_u.mutation.ClearPriceOutputPerMillion()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ModelEntryUpdate) SetSortOrder(v int) *ModelEntryUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableSortOrder(v *int) *ModelEntryUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ModelEntryUpdate) AddSortOrder(v int) *ModelEntryUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (_u *ModelEntryUpdate) SetEmbeddingDims(v int) *ModelEntryUpdate {
	_u.mutation.ResetEmbeddingDims()
	_u.mutation.SetEmbeddingDims(v)
	return _u
}

// SetNillableEmbeddingDims sets the "embedding_dims" field if the given value is not nil.
func (_u *ModelEntryUpdate) SetNillableEmbeddingDims(v *int) *ModelEntryUpdate {
	if v != nil {
		_u.SetEmbeddingDims(*v)
	}
	return _u
}

// AddEmbeddingDims adds value to the "embedding_dims" field.
func (_u *ModelEntryUpdate) AddEmbeddingDims(v int) *ModelEntryUpdate {
	_u.mutation.AddEmbeddingDims(v)
	return _u
}

// ClearEmbeddingDims clears the value of the "embedding_dims" field.
func (_u *ModelEntryUpdate) ClearEmbeddingDims() *ModelEntryUpdate {
	_u.mutation.ClearEmbeddingDims()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelEntryUpdate) SetUpdatedAt(v time.Time) *ModelEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelEntryMutation object of the builder.
func (_u *ModelEntryUpdate) Mutation() *ModelEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelEntryUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := modelentry.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelEntry.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := modelentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ModelEntry.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelentry.Table, modelentry.Columns, sqlgraph.NewFieldSpec(modelentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(modelentry.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelentry.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(modelentry.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(modelentry.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputWtuMultiplier(); ok {
		_spec.SetField(modelentry.FieldInputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInputWtuMultiplier(); ok {
		_spec.AddField(modelentry.FieldInputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutputWtuMultiplier(); ok {
		_spec.SetField(modelentry.FieldOutputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputWtuMultiplier(); ok {
		_spec.AddField(modelentry.FieldOutputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(modelentry.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PriceInputPerMillion(); ok {
		_spec.SetField(modelentry.FieldPriceInputPerMillion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceInputPerMillion(); ok {
		_spec.AddField(modelentry.FieldPriceInputPerMillion, field.TypeFloat64, value)
	}
	if _u.mutation.PriceInputPerMillionCleared() {
		_spec.ClearField(modelentry.FieldPriceInputPerMillion, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceOutputPerMillion(); ok {
		_spec.SetField(modelentry.FieldPriceOutputPerMillion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceOutputPerMillion(); ok {
		_spec.AddField(modelentry.FieldPriceOutputPerMillion, field.TypeFloat64, value)
	}
	if _u.mutation.PriceOutputPerMillionCleared() {
		_spec.ClearField(modelentry.FieldPriceOutputPerMillion, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(modelentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(modelentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmbeddingDims(); ok {
		_spec.SetField(modelentry.FieldEmbeddingDims, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingDims(); ok {
		_spec.AddField(modelentry.FieldEmbeddingDims, field.TypeInt, value)
	}
	if _u.mutation.EmbeddingDimsCleared() {
		_spec.ClearField(modelentry.FieldEmbeddingDims, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelEntryUpdateOne is the builder for updating a single ModelEntry entity.
type ModelEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelEntryMutation
}

// SetAlias sets the "alias" field.
func (_u *ModelEntryUpdateOne) SetAlias(v string) *ModelEntryUpdateOne {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableAlias(v *string) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ModelEntryUpdateOne) SetProvider(v modelentry.Provider) *ModelEntryUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableProvider(v *modelentry.Provider) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ModelEntryUpdateOne) SetModelName(v string) *ModelEntryUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableModelName(v *string) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ModelEntryUpdateOne) SetTier(v modelentry.Tier) *ModelEntryUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableTier(v *modelentry.Tier) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetInputWtuMultiplier sets the "input_wtu_multiplier" field.
func (_u *ModelEntryUpdateOne) SetInputWtuMultiplier(v float64) *ModelEntryUpdateOne {
	_u.mutation.ResetInputWtuMultiplier()
	_u.mutation.SetInputWtuMultiplier(v)
	return _u
}

// SetNillableInputWtuMultiplier sets the "input_wtu_multiplier" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableInputWtuMultiplier(v *float64) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetInputWtuMultiplier(*v)
	}
	return _u
}

// AddInputWtuMultiplier adds value to the "input_wtu_multiplier" field.
func (_u *ModelEntryUpdateOne) AddInputWtuMultiplier(v float64) *ModelEntryUpdateOne {
	_u.mutation.AddInputWtuMultiplier(v)
	return _u
}

// SetOutputWtuMultiplier sets the "output_wtu_multiplier" field.
func (_u *ModelEntryUpdateOne) SetOutputWtuMultiplier(v float64) *ModelEntryUpdateOne {
	_u.mutation.ResetOutputWtuMultiplier()
	_u.mutation.SetOutputWtuMultiplier(v)
	return _u
}

// SetNillableOutputWtuMultiplier sets the "output_wtu_multiplier" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableOutputWtuMultiplier(v *float64) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetOutputWtuMultiplier(*v)
	}
	return _u
}

// AddOutputWtuMultiplier adds value to the "output_wtu_multiplier" field.
func (_u *ModelEntryUpdateOne) AddOutputWtuMultiplier(v float64) *ModelEntryUpdateOne {
	_u.mutation.AddOutputWtuMultiplier(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ModelEntryUpdateOne) SetIsActive(v bool) *ModelEntryUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableIsActive(v *bool) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetPriceInputPerMillion sets the "price_input_per_million" field.
func (_u *ModelEntryUpdateOne) SetPriceInputPerMillion(v float64) *ModelEntryUpdateOne {
	_u.mutation.ResetPriceInputPerMillion()
	_u.mutation.SetPriceInputPerMillion(v)
	return _u
}

// SetNillablePriceInputPerMillion sets the "price_input_per_million" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillablePriceInputPerMillion(v *float64) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetPriceInputPerMillion(*v)
	}
	return _u
}

// AddPriceInputPerMillion adds value to the "price_input_per_million" field.
func (_u *ModelEntryUpdateOne) AddPriceInputPerMillion(v float64) *ModelEntryUpdateOne {
	_u.mutation.AddPriceInputPerMillion(v)
	return _u
}

// ClearPriceInputPerMillion clears the value of the "price_input_per_million" field.
func (_u *ModelEntryUpdateOne) ClearPriceInputPerMillion() *ModelEntryUpdateOne {
	_u.mutation.ClearPriceInputPerMillion()
	return _u
}

// SetPriceOutputPerMillion sets the "price_output_per_million" field.
func (_u *ModelEntryUpdateOne) SetPriceOutputPerMillion(v float64) *ModelEntryUpdateOne {
	_u.mutation.ResetPriceOutputPerMillion()
	_u.mutation.SetPriceOutputPerMillion(v)
	return _u
}

// SetNillablePriceOutputPerMillion sets the "price_output_per_million" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillablePriceOutputPerMillion(v *float64) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetPriceOutputPerMillion(*v)
	}
	return _u
}

// AddPriceOutputPerMillion adds value to the "price_output_per_million" field.
func (_u *ModelEntryUpdateOne) AddPriceOutputPerMillion(v float64) *ModelEntryUpdateOne {
	_u.mutation.AddPriceOutputPerMillion(v)
	return _u
}

// ClearPriceOutputPerMillion clears the value of the "price_output_per_million" field.
func (_u *ModelEntryUpdateOne) ClearPriceOutputPerMillion() *ModelEntryUpdateOne {
	_u.mutation.ClearPriceOutputPerMillion()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ModelEntryUpdateOne) SetSortOrder(v int) *ModelEntryUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableSortOrder(v *int) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ModelEntryUpdateOne) AddSortOrder(v int) *ModelEntryUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (_u *ModelEntryUpdateOne) SetEmbeddingDims(v int) *ModelEntryUpdateOne {
	_u.mutation.ResetEmbeddingDims()
	_u.mutation.SetEmbeddingDims(v)
	return _u
}

// SetNillableEmbeddingDims sets the "embedding_dims" field if the given value is not nil.
func (_u *ModelEntryUpdateOne) SetNillableEmbeddingDims(v *int) *ModelEntryUpdateOne {
	if v != nil {
		_u.SetEmbeddingDims(*v)
	}
	return _u
}

// AddEmbeddingDims adds value to the "embedding_dims" field.
func (_u *ModelEntryUpdateOne) AddEmbeddingDims(v int) *ModelEntryUpdateOne {
	_u.mutation.AddEmbeddingDims(v)
	return _u
}

// ClearEmbeddingDims clears the value of the "embedding_dims" field.
func (_u *ModelEntryUpdateOne) ClearEmbeddingDims() *ModelEntryUpdateOne {
	_u.mutation.ClearEmbeddingDims()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelEntryUpdateOne) SetUpdatedAt(v time.Time) *ModelEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelEntryMutation object of the builder.
func (_u *ModelEntryUpdateOne) Mutation() *ModelEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelEntryUpdate builder.
func (_u *ModelEntryUpdateOne) Where(ps ...predicate.ModelEntry) *ModelEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelEntryUpdateOne) Select(field string, fields ...string) *ModelEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelEntry entity.
func (_u *ModelEntryUpdateOne) Save(ctx context.Context) (*ModelEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelEntryUpdateOne) SaveX(ctx context.Context) *ModelEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := modelentry.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ModelEntry.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := modelentry.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ModelEntry.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *ModelEntryUpdateOne) sqlSave(ctx context.Context) (_node *ModelEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelentry.Table, modelentry.Columns, sqlgraph.NewFieldSpec(modelentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelentry.FieldID)
		for _, f := range fields {
			if !modelentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelentry.FieldID {
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
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(modelentry.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(modelentry.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(modelentry.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(modelentry.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputWtuMultiplier(); ok {
		_spec.SetField(modelentry.FieldInputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInputWtuMultiplier(); ok {
		_spec.AddField(modelentry.FieldInputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutputWtuMultiplier(); ok {
		_spec.SetField(modelentry.FieldOutputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutputWtuMultiplier(); ok {
		_spec.AddField(modelentry.FieldOutputWtuMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(modelentry.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PriceInputPerMillion(); ok {
		_spec.SetField(modelentry.FieldPriceInputPerMillion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceInputPerMillion(); ok {
		_spec.AddField(modelentry.FieldPriceInputPerMillion, field.TypeFloat64, value)
	}
	if _u.mutation.PriceInputPerMillionCleared() {
		_spec.ClearField(modelentry.FieldPriceInputPerMillion, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceOutputPerMillion(); ok {
		_spec.SetField(modelentry.FieldPriceOutputPerMillion, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceOutputPerMillion(); ok {
		_spec.AddField(modelentry.FieldPriceOutputPerMillion, field.TypeFloat64, value)
	}
	if _u.mutation.PriceOutputPerMillionCleared() {
		_spec.ClearField(modelentry.FieldPriceOutputPerMillion, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(modelentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(modelentry.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmbeddingDims(); ok {
		_spec.SetField(modelentry.FieldEmbeddingDims, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingDims(); ok {
		_spec.AddField(modelentry.FieldEmbeddingDims, field.TypeInt, value)
	}
	if _u.mutation.EmbeddingDimsCleared() {
		_spec.ClearField(modelentry.FieldEmbeddingDims, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
