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
	"github.com/clipdock/clipd/ent/modelcalllog"
)

// ModelCallLogCreate is the builder for creating a ModelCallLog entity.
type ModelCallLogCreate struct {
	config
	mutation *ModelCallLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRequestID sets the "request_id" field.
func (_c *ModelCallLogCreate) SetRequestID(v string) *ModelCallLogCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetModelAlias sets the "model_alias" field.
func (_c *ModelCallLogCreate) SetModelAlias(v string) *ModelCallLogCreate {
	_c.mutation.SetModelAlias(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *ModelCallLogCreate) SetTier(v modelcalllog.Tier) *ModelCallLogCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModelCallLogCreate) SetStatus(v modelcalllog.Status) *ModelCallLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *ModelCallLogCreate) SetErrorType(v string) *ModelCallLogCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *ModelCallLogCreate) SetNillableErrorType(v *string) *ModelCallLogCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ModelCallLogCreate) SetErrorMessage(v string) *ModelCallLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ModelCallLogCreate) SetNillableErrorMessage(v *string) *ModelCallLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFallbackTo sets the "fallback_to" field.
func (_c *ModelCallLogCreate) SetFallbackTo(v string) *ModelCallLogCreate {
	_c.mutation.SetFallbackTo(v)
	return _c
}

// SetNillableFallbackTo sets the "fallback_to" field if the given value is not nil.
func (_c *ModelCallLogCreate) SetNillableFallbackTo(v *string) *ModelCallLogCreate {
	if v != nil {
		_c.SetFallbackTo(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *ModelCallLogCreate) SetInputTokens(v int) *ModelCallLogCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *ModelCallLogCreate) SetNillableInputTokens(v *int) *ModelCallLogCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *ModelCallLogCreate) SetOutputTokens(v int) *ModelCallLogCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *ModelCallLogCreate) SetNillableOutputTokens(v *int) *ModelCallLogCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ModelCallLogCreate) SetLatencyMs(v int) *ModelCallLogCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ModelCallLogCreate) SetNillableLatencyMs(v *int) *ModelCallLogCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelCallLogCreate) SetCreatedAt(v time.Time) *ModelCallLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelCallLogCreate) SetNillableCreatedAt(v *time.Time) *ModelCallLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelCallLogCreate) SetID(v string) *ModelCallLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelCallLogMutation object of the builder.
func (_c *ModelCallLogCreate) Mutation() *ModelCallLogMutation {
	return _c.mutation
}

// Save creates the ModelCallLog in the database.
func (_c *ModelCallLogCreate) Save(ctx context.Context) (*ModelCallLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelCallLogCreate) SaveX(ctx context.Context) *ModelCallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCallLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCallLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelCallLogCreate) defaults() {
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := modelcalllog.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modelcalllog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelCallLogCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ModelCallLog.request_id"`)}
	}
	if _, ok := _c.mutation.ModelAlias(); !ok {
		return &ValidationError{Name: "model_alias", err: errors.New(`ent: missing required field "ModelCallLog.model_alias"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "ModelCallLog.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := modelcalllog.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ModelCallLog.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModelCallLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := modelcalllog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelCallLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ModelCallLog.latency_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelCallLog.created_at"`)}
	}
	return nil
}

func (_c *ModelCallLogCreate) sqlSave(ctx context.Context) (*ModelCallLog, error) {
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
			return nil, fmt.Errorf("unexpected ModelCallLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelCallLogCreate) createSpec() (*ModelCallLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelCallLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelcalllog.Table, sqlgraph.NewFieldSpec(modelcalllog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(modelcalllog.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.ModelAlias(); ok {
		_spec.SetField(modelcalllog.FieldModelAlias, field.TypeString, value)
		_node.ModelAlias = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(modelcalllog.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(modelcalllog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(modelcalllog.FieldErrorType, field.TypeString, value)
		_node.ErrorType = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(modelcalllog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FallbackTo(); ok {
		_spec.SetField(modelcalllog.FieldFallbackTo, field.TypeString, value)
		_node.FallbackTo = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(modelcalllog.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(modelcalllog.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(modelcalllog.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modelcalllog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelCallLog.Create().
//		SetRequestID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelCallLogUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelCallLogCreate) OnConflict(opts ...sql.ConflictOption) *ModelCallLogUpsertOne {
	_c.conflict = opts
	return &ModelCallLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelCallLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelCallLogCreate) OnConflictColumns(columns ...string) *ModelCallLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelCallLogUpsertOne{
		create: _c,
	}
}

type (
	// ModelCallLogUpsertOne is the builder for "upsert"-ing
	//  one ModelCallLog node.
	ModelCallLogUpsertOne struct {
		create *ModelCallLogCreate
	}

	// ModelCallLogUpsert is the "OnConflict" setter.
	ModelCallLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetErrorType sets the "error_type" field.
func (u *ModelCallLogUpsert) SetErrorType(v string) *ModelCallLogUpsert {
	u.Set(modelcalllog.FieldErrorType, v)
	return u
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *ModelCallLogUpsert) UpdateErrorType() *ModelCallLogUpsert {
	u.SetExcluded(modelcalllog.FieldErrorType)
	return u
}

// ClearErrorType clears the value of the "error_type" field.
func (u *ModelCallLogUpsert) ClearErrorType() *ModelCallLogUpsert {
	u.SetNull(modelcalllog.FieldErrorType)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ModelCallLogUpsert) SetErrorMessage(v string) *ModelCallLogUpsert {
	u.Set(modelcalllog.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ModelCallLogUpsert) UpdateErrorMessage() *ModelCallLogUpsert {
	u.SetExcluded(modelcalllog.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ModelCallLogUpsert) ClearErrorMessage() *ModelCallLogUpsert {
	u.SetNull(modelcalllog.FieldErrorMessage)
	return u
}

// SetFallbackTo sets the "fallback_to" field.
func (u *ModelCallLogUpsert) SetFallbackTo(v string) *ModelCallLogUpsert {
	u.Set(modelcalllog.FieldFallbackTo, v)
	return u
}

// UpdateFallbackTo sets the "fallback_to" field to the value that was provided on create.
func (u *ModelCallLogUpsert) UpdateFallbackTo() *ModelCallLogUpsert {
	u.SetExcluded(modelcalllog.FieldFallbackTo)
	return u
}

// ClearFallbackTo clears the value of the "fallback_to" field.
func (u *ModelCallLogUpsert) ClearFallbackTo() *ModelCallLogUpsert {
	u.SetNull(modelcalllog.FieldFallbackTo)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *ModelCallLogUpsert) SetInputTokens(v int) *ModelCallLogUpsert {
	u.Set(modelcalllog.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ModelCallLogUpsert) UpdateInputTokens() *ModelCallLogUpsert {
	u.SetExcluded(modelcalllog.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ModelCallLogUpsert) AddInputTokens(v int) *ModelCallLogUpsert {
	u.Add(modelcalllog.FieldInputTokens, v)
	return u
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *ModelCallLogUpsert) ClearInputTokens() *ModelCallLogUpsert {
	u.SetNull(modelcalllog.FieldInputTokens)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ModelCallLogUpsert) SetOutputTokens(v int) *ModelCallLogUpsert {
	u.Set(modelcalllog.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ModelCallLogUpsert) UpdateOutputTokens() *ModelCallLogUpsert {
	u.SetExcluded(modelcalllog.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ModelCallLogUpsert) AddOutputTokens(v int) *ModelCallLogUpsert {
	u.Add(modelcalllog.FieldOutputTokens, v)
	return u
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *ModelCallLogUpsert) ClearOutputTokens() *ModelCallLogUpsert {
	u.SetNull(modelcalllog.FieldOutputTokens)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ModelCallLogUpsert) SetLatencyMs(v int) *ModelCallLogUpsert {
	u.Set(modelcalllog.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ModelCallLogUpsert) UpdateLatencyMs() *ModelCallLogUpsert {
	u.SetExcluded(modelcalllog.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ModelCallLogUpsert) AddLatencyMs(v int) *ModelCallLogUpsert {
	u.Add(modelcalllog.FieldLatencyMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ModelCallLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelcalllog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelCallLogUpsertOne) UpdateNewValues() *ModelCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(modelcalllog.FieldID)
		}
		if _, exists := u.create.mutation.RequestID(); exists {
			s.SetIgnore(modelcalllog.FieldRequestID)
		}
		if _, exists := u.create.mutation.ModelAlias(); exists {
			s.SetIgnore(modelcalllog.FieldModelAlias)
		}
		if _, exists := u.create.mutation.Tier(); exists {
			s.SetIgnore(modelcalllog.FieldTier)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(modelcalllog.FieldStatus)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(modelcalllog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelCallLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModelCallLogUpsertOne) Ignore() *ModelCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelCallLogUpsertOne) DoNothing() *ModelCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelCallLogCreate.OnConflict
// documentation for more info.
func (u *ModelCallLogUpsertOne) Update(set func(*ModelCallLogUpsert)) *ModelCallLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelCallLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetErrorType sets the "error_type" field.
func (u *ModelCallLogUpsertOne) SetErrorType(v string) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *ModelCallLogUpsertOne) UpdateErrorType() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateErrorType()
	})
}

// ClearErrorType clears the value of the "error_type" field.
func (u *ModelCallLogUpsertOne) ClearErrorType() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearErrorType()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ModelCallLogUpsertOne) SetErrorMessage(v string) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ModelCallLogUpsertOne) UpdateErrorMessage() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ModelCallLogUpsertOne) ClearErrorMessage() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFallbackTo sets the "fallback_to" field.
func (u *ModelCallLogUpsertOne) SetFallbackTo(v string) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetFallbackTo(v)
	})
}

// UpdateFallbackTo sets the "fallback_to" field to the value that was provided on create.
func (u *ModelCallLogUpsertOne) UpdateFallbackTo() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateFallbackTo()
	})
}

// ClearFallbackTo clears the value of the "fallback_to" field.
func (u *ModelCallLogUpsertOne) ClearFallbackTo() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearFallbackTo()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *ModelCallLogUpsertOne) SetInputTokens(v int) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ModelCallLogUpsertOne) AddInputTokens(v int) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ModelCallLogUpsertOne) UpdateInputTokens() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *ModelCallLogUpsertOne) ClearInputTokens() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ModelCallLogUpsertOne) SetOutputTokens(v int) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ModelCallLogUpsertOne) AddOutputTokens(v int) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ModelCallLogUpsertOne) UpdateOutputTokens() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *ModelCallLogUpsertOne) ClearOutputTokens() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ModelCallLogUpsertOne) SetLatencyMs(v int) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ModelCallLogUpsertOne) AddLatencyMs(v int) *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ModelCallLogUpsertOne) UpdateLatencyMs() *ModelCallLogUpsertOne {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// Exec executes the query.
func (u *ModelCallLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelCallLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelCallLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModelCallLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ModelCallLogUpsertOne.ID is not supported by MySQL driver. Use ModelCallLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModelCallLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModelCallLogCreateBulk is the builder for creating many ModelCallLog entities in bulk.
type ModelCallLogCreateBulk struct {
	config
	err      error
	builders []*ModelCallLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ModelCallLog entities in the database.
func (_c *ModelCallLogCreateBulk) Save(ctx context.Context) ([]*ModelCallLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelCallLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelCallLogMutation)
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
func (_c *ModelCallLogCreateBulk) SaveX(ctx context.Context) []*ModelCallLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCallLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCallLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelCallLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelCallLogUpsert) {
//			SetRequestID(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelCallLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModelCallLogUpsertBulk {
	_c.conflict = opts
	return &ModelCallLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelCallLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelCallLogCreateBulk) OnConflictColumns(columns ...string) *ModelCallLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelCallLogUpsertBulk{
		create: _c,
	}
}

// ModelCallLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ModelCallLog nodes.
type ModelCallLogUpsertBulk struct {
	create *ModelCallLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModelCallLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelcalllog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelCallLogUpsertBulk) UpdateNewValues() *ModelCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(modelcalllog.FieldID)
			}
			if _, exists := b.mutation.RequestID(); exists {
				s.SetIgnore(modelcalllog.FieldRequestID)
			}
			if _, exists := b.mutation.ModelAlias(); exists {
				s.SetIgnore(modelcalllog.FieldModelAlias)
			}
			if _, exists := b.mutation.Tier(); exists {
				s.SetIgnore(modelcalllog.FieldTier)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(modelcalllog.FieldStatus)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(modelcalllog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelCallLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModelCallLogUpsertBulk) Ignore() *ModelCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelCallLogUpsertBulk) DoNothing() *ModelCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelCallLogCreateBulk.OnConflict
// documentation for more info.
func (u *ModelCallLogUpsertBulk) Update(set func(*ModelCallLogUpsert)) *ModelCallLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelCallLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetErrorType sets the "error_type" field.
func (u *ModelCallLogUpsertBulk) SetErrorType(v string) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetErrorType(v)
	})
}

// UpdateErrorType sets the "error_type" field to the value that was provided on create.
func (u *ModelCallLogUpsertBulk) UpdateErrorType() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateErrorType()
	})
}

// ClearErrorType clears the value of the "error_type" field.
func (u *ModelCallLogUpsertBulk) ClearErrorType() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearErrorType()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ModelCallLogUpsertBulk) SetErrorMessage(v string) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ModelCallLogUpsertBulk) UpdateErrorMessage() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ModelCallLogUpsertBulk) ClearErrorMessage() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFallbackTo sets the "fallback_to" field.
func (u *ModelCallLogUpsertBulk) SetFallbackTo(v string) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetFallbackTo(v)
	})
}

// UpdateFallbackTo sets the "fallback_to" field to the value that was provided on create.
func (u *ModelCallLogUpsertBulk) UpdateFallbackTo() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateFallbackTo()
	})
}

// ClearFallbackTo clears the value of the "fallback_to" field.
func (u *ModelCallLogUpsertBulk) ClearFallbackTo() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearFallbackTo()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *ModelCallLogUpsertBulk) SetInputTokens(v int) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *ModelCallLogUpsertBulk) AddInputTokens(v int) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *ModelCallLogUpsertBulk) UpdateInputTokens() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateInputTokens()
	})
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (u *ModelCallLogUpsertBulk) ClearInputTokens() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *ModelCallLogUpsertBulk) SetOutputTokens(v int) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *ModelCallLogUpsertBulk) AddOutputTokens(v int) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *ModelCallLogUpsertBulk) UpdateOutputTokens() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateOutputTokens()
	})
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (u *ModelCallLogUpsertBulk) ClearOutputTokens() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.ClearOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ModelCallLogUpsertBulk) SetLatencyMs(v int) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ModelCallLogUpsertBulk) AddLatencyMs(v int) *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ModelCallLogUpsertBulk) UpdateLatencyMs() *ModelCallLogUpsertBulk {
	return u.Update(func(s *ModelCallLogUpsert) {
		s.UpdateLatencyMs()
	})
}

// Exec executes the query.
func (u *ModelCallLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModelCallLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelCallLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelCallLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
