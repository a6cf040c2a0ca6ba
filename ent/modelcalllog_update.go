// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clipdock/clipd/ent/modelcalllog"
	"github.com/clipdock/clipd/ent/predicate"
)

// ModelCallLogUpdate is the builder for updating ModelCallLog entities.
type ModelCallLogUpdate struct {
	config
	hooks    []Hook
	mutation *ModelCallLogMutation
}

// Where appends a list predicates to the ModelCallLogUpdate builder.
func (_u *ModelCallLogUpdate) Where(ps ...predicate.ModelCallLog) *ModelCallLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *ModelCallLogUpdate) SetErrorType(v string) *ModelCallLogUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *ModelCallLogUpdate) SetNillableErrorType(v *string) *ModelCallLogUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *ModelCallLogUpdate) ClearErrorType() *ModelCallLogUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ModelCallLogUpdate) SetErrorMessage(v string) *ModelCallLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ModelCallLogUpdate) SetNillableErrorMessage(v *string) *ModelCallLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ModelCallLogUpdate) ClearErrorMessage() *ModelCallLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFallbackTo sets the "fallback_to" field.
func (_u *ModelCallLogUpdate) SetFallbackTo(v string) *ModelCallLogUpdate {
	_u.mutation.SetFallbackTo(v)
	return _u
}

// SetNillableFallbackTo sets the "fallback_to" field if the given value is not nil.
func (_u *ModelCallLogUpdate) SetNillableFallbackTo(v *string) *ModelCallLogUpdate {
	if v != nil {
		_u.SetFallbackTo(*v)
	}
	return _u
}

// ClearFallbackTo clears the value of the "fallback_to" field.
func (_u *ModelCallLogUpdate) ClearFallbackTo() *ModelCallLogUpdate {
	_u.mutation.ClearFallbackTo()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ModelCallLogUpdate) SetInputTokens(v int) *ModelCallLogUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ModelCallLogUpdate) SetNillableInputTokens(v *int) *ModelCallLogUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ModelCallLogUpdate) AddInputTokens(v int) *ModelCallLogUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *ModelCallLogUpdate) ClearInputTokens() *ModelCallLogUpdate {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ModelCallLogUpdate) SetOutputTokens(v int) *ModelCallLogUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ModelCallLogUpdate) SetNillableOutputTokens(v *int) *ModelCallLogUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ModelCallLogUpdate) AddOutputTokens(v int) *ModelCallLogUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *ModelCallLogUpdate) ClearOutputTokens() *ModelCallLogUpdate {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ModelCallLogUpdate) SetLatencyMs(v int) *ModelCallLogUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ModelCallLogUpdate) SetNillableLatencyMs(v *int) *ModelCallLogUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ModelCallLogUpdate) AddLatencyMs(v int) *ModelCallLogUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ModelCallLogMutation object of the builder.
func (_u *ModelCallLogUpdate) Mutation() *ModelCallLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelCallLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCallLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelCallLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCallLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelCallLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelcalllog.Table, modelcalllog.Columns, sqlgraph.NewFieldSpec(modelcalllog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(modelcalllog.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(modelcalllog.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(modelcalllog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(modelcalllog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FallbackTo(); ok {
		_spec.SetField(modelcalllog.FieldFallbackTo, field.TypeString, value)
	}
	if _u.mutation.FallbackToCleared() {
		_spec.ClearField(modelcalllog.FieldFallbackTo, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(modelcalllog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(modelcalllog.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(modelcalllog.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(modelcalllog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(modelcalllog.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(modelcalllog.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(modelcalllog.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(modelcalllog.FieldLatencyMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcalllog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelCallLogUpdateOne is the builder for updating a single ModelCallLog entity.
type ModelCallLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelCallLogMutation
}

// SetErrorType sets the "error_type" field.
func (_u *ModelCallLogUpdateOne) SetErrorType(v string) *ModelCallLogUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *ModelCallLogUpdateOne) SetNillableErrorType(v *string) *ModelCallLogUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *ModelCallLogUpdateOne) ClearErrorType() *ModelCallLogUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ModelCallLogUpdateOne) SetErrorMessage(v string) *ModelCallLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ModelCallLogUpdateOne) SetNillableErrorMessage(v *string) *ModelCallLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ModelCallLogUpdateOne) ClearErrorMessage() *ModelCallLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFallbackTo sets the "fallback_to" field.
func (_u *ModelCallLogUpdateOne) SetFallbackTo(v string) *ModelCallLogUpdateOne {
	_u.mutation.SetFallbackTo(v)
	return _u
}

// SetNillableFallbackTo sets the "fallback_to" field if the given value is not nil.
func (_u *ModelCallLogUpdateOne) SetNillableFallbackTo(v *string) *ModelCallLogUpdateOne {
	if v != nil {
		_u.SetFallbackTo(*v)
	}
	return _u
}

// ClearFallbackTo clears the value of the "fallback_to" field.
func (_u *ModelCallLogUpdateOne) ClearFallbackTo() *ModelCallLogUpdateOne {
	_u.mutation.ClearFallbackTo()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ModelCallLogUpdateOne) SetInputTokens(v int) *ModelCallLogUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ModelCallLogUpdateOne) SetNillableInputTokens(v *int) *ModelCallLogUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ModelCallLogUpdateOne) AddInputTokens(v int) *ModelCallLogUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (_u *ModelCallLogUpdateOne) ClearInputTokens() *ModelCallLogUpdateOne {
	_u.mutation.ClearInputTokens()
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ModelCallLogUpdateOne) SetOutputTokens(v int) *ModelCallLogUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ModelCallLogUpdateOne) SetNillableOutputTokens(v *int) *ModelCallLogUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ModelCallLogUpdateOne) AddOutputTokens(v int) *ModelCallLogUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (_u *ModelCallLogUpdateOne) ClearOutputTokens() *ModelCallLogUpdateOne {
	_u.mutation.ClearOutputTokens()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ModelCallLogUpdateOne) SetLatencyMs(v int) *ModelCallLogUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ModelCallLogUpdateOne) SetNillableLatencyMs(v *int) *ModelCallLogUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ModelCallLogUpdateOne) AddLatencyMs(v int) *ModelCallLogUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the ModelCallLogMutation object of the builder.
func (_u *ModelCallLogUpdateOne) Mutation() *ModelCallLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelCallLogUpdate builder.
func (_u *ModelCallLogUpdateOne) Where(ps ...predicate.ModelCallLog) *ModelCallLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelCallLogUpdateOne) Select(field string, fields ...string) *ModelCallLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelCallLog entity.
func (_u *ModelCallLogUpdateOne) Save(ctx context.Context) (*ModelCallLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCallLogUpdateOne) SaveX(ctx context.Context) *ModelCallLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelCallLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCallLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelCallLogUpdateOne) sqlSave(ctx context.Context) (_node *ModelCallLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelcalllog.Table, modelcalllog.Columns, sqlgraph.NewFieldSpec(modelcalllog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelCallLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelcalllog.FieldID)
		for _, f := range fields {
			if !modelcalllog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelcalllog.FieldID {
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
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(modelcalllog.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(modelcalllog.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(modelcalllog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(modelcalllog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FallbackTo(); ok {
		_spec.SetField(modelcalllog.FieldFallbackTo, field.TypeString, value)
	}
	if _u.mutation.FallbackToCleared() {
		_spec.ClearField(modelcalllog.FieldFallbackTo, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(modelcalllog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(modelcalllog.FieldInputTokens, field.TypeInt, value)
	}
	if _u.mutation.InputTokensCleared() {
		_spec.ClearField(modelcalllog.FieldInputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(modelcalllog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(modelcalllog.FieldOutputTokens, field.TypeInt, value)
	}
	if _u.mutation.OutputTokensCleared() {
		_spec.ClearField(modelcalllog.FieldOutputTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(modelcalllog.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(modelcalllog.FieldLatencyMs, field.TypeInt, value)
	}
	_node = &ModelCallLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcalllog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
