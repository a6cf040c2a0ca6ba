// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/modelcalllog"
	"github.com/clipdock/clipd/ent/modelentry"
	"github.com/clipdock/clipd/ent/predicate"
	"github.com/clipdock/clipd/ent/purchaseevent"
	"github.com/clipdock/clipd/ent/summarycache"
	"github.com/clipdock/clipd/ent/tagmaster"
	"github.com/clipdock/clipd/ent/usagerecord"
	"github.com/clipdock/clipd/ent/usertagusage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeModelCallLog  = "ModelCallLog"
	TypeModelEntry    = "ModelEntry"
	TypePurchaseEvent = "PurchaseEvent"
	TypeSummaryCache  = "SummaryCache"
	TypeTagMaster     = "TagMaster"
	TypeUsageRecord   = "UsageRecord"
	TypeUserTagUsage  = "UserTagUsage"
)

// ModelCallLogMutation represents an operation that mutates the ModelCallLog nodes in the graph.
type ModelCallLogMutation struct {
	config
	op               Op
	typ              string
	id               *string
	request_id       *string
	model_alias      *string
	tier             *modelcalllog.Tier
	status           *modelcalllog.Status
	error_type       *string
	error_message    *string
	fallback_to      *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int
	addlatency_ms    *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ModelCallLog, error)
	predicates       []predicate.ModelCallLog
}

var _ ent.Mutation = (*ModelCallLogMutation)(nil)

// modelcalllogOption allows management of the mutation configuration using functional options.
type modelcalllogOption func(*ModelCallLogMutation)

// newModelCallLogMutation creates new mutation for the ModelCallLog entity.
func newModelCallLogMutation(c config, op Op, opts ...modelcalllogOption) *ModelCallLogMutation {
	m := &ModelCallLogMutation{
		config:        c,
		op:            op,
		typ:           TypeModelCallLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelCallLogID sets the ID field of the mutation.
func withModelCallLogID(id string) modelcalllogOption {
	return func(m *ModelCallLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelCallLog
		)
		m.oldValue = func(ctx context.Context) (*ModelCallLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelCallLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelCallLog sets the old ModelCallLog of the mutation.
func withModelCallLog(node *ModelCallLog) modelcalllogOption {
	return func(m *ModelCallLogMutation) {
		m.oldValue = func(context.Context) (*ModelCallLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelCallLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelCallLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelCallLog entities.
func (m *ModelCallLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelCallLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelCallLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelCallLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *ModelCallLogMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ModelCallLogMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ModelCallLogMutation) ResetRequestID() {
	m.request_id = nil
}

// SetModelAlias sets the "model_alias" field.
func (m *ModelCallLogMutation) SetModelAlias(s string) {
	m.model_alias = &s
}

// ModelAlias returns the value of the "model_alias" field in the mutation.
func (m *ModelCallLogMutation) ModelAlias() (r string, exists bool) {
	v := m.model_alias
	if v == nil {
		return
	}
	return *v, true
}

// OldModelAlias returns the old "model_alias" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldModelAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelAlias: %w", err)
	}
	return oldValue.ModelAlias, nil
}

// ResetModelAlias resets all changes to the "model_alias" field.
func (m *ModelCallLogMutation) ResetModelAlias() {
	m.model_alias = nil
}

// SetTier sets the "tier" field.
func (m *ModelCallLogMutation) SetTier(value modelcalllog.Tier) {
	m.tier = &value
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ModelCallLogMutation) Tier() (r modelcalllog.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldTier(ctx context.Context) (v modelcalllog.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *ModelCallLogMutation) ResetTier() {
	m.tier = nil
}

// SetStatus sets the "status" field.
func (m *ModelCallLogMutation) SetStatus(value modelcalllog.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *ModelCallLogMutation) Status() (r modelcalllog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldStatus(ctx context.Context) (v modelcalllog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ModelCallLogMutation) ResetStatus() {
	m.status = nil
}

// SetErrorType sets the "error_type" field.
func (m *ModelCallLogMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *ModelCallLogMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ClearErrorType clears the value of the "error_type" field.
func (m *ModelCallLogMutation) ClearErrorType() {
	m.error_type = nil
	m.clearedFields[modelcalllog.FieldErrorType] = struct{}{}
}

// ErrorTypeCleared returns if the "error_type" field was cleared in this mutation.
func (m *ModelCallLogMutation) ErrorTypeCleared() bool {
	_, ok := m.clearedFields[modelcalllog.FieldErrorType]
	return ok
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *ModelCallLogMutation) ResetErrorType() {
	m.error_type = nil
	delete(m.clearedFields, modelcalllog.FieldErrorType)
}

// SetErrorMessage sets the "error_message" field.
func (m *ModelCallLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ModelCallLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ModelCallLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[modelcalllog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ModelCallLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[modelcalllog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ModelCallLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, modelcalllog.FieldErrorMessage)
}

// SetFallbackTo sets the "fallback_to" field.
func (m *ModelCallLogMutation) SetFallbackTo(s string) {
	m.fallback_to = &s
}

// FallbackTo returns the value of the "fallback_to" field in the mutation.
func (m *ModelCallLogMutation) FallbackTo() (r string, exists bool) {
	v := m.fallback_to
	if v == nil {
		return
	}
	return *v, true
}

// OldFallbackTo returns the old "fallback_to" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldFallbackTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallbackTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallbackTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallbackTo: %w", err)
	}
	return oldValue.FallbackTo, nil
}

// ClearFallbackTo clears the value of the "fallback_to" field.
func (m *ModelCallLogMutation) ClearFallbackTo() {
	m.fallback_to = nil
	m.clearedFields[modelcalllog.FieldFallbackTo] = struct{}{}
}

// FallbackToCleared returns if the "fallback_to" field was cleared in this mutation.
func (m *ModelCallLogMutation) FallbackToCleared() bool {
	_, ok := m.clearedFields[modelcalllog.FieldFallbackTo]
	return ok
}

// ResetFallbackTo resets all changes to the "fallback_to" field.
func (m *ModelCallLogMutation) ResetFallbackTo() {
	m.fallback_to = nil
	delete(m.clearedFields, modelcalllog.FieldFallbackTo)
}

// SetInputTokens sets the "input_tokens" field.
func (m *ModelCallLogMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *ModelCallLogMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *ModelCallLogMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *ModelCallLogMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *ModelCallLogMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[modelcalllog.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *ModelCallLogMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[modelcalllog.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *ModelCallLogMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, modelcalllog.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *ModelCallLogMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *ModelCallLogMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *ModelCallLogMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *ModelCallLogMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *ModelCallLogMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[modelcalllog.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *ModelCallLogMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[modelcalllog.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *ModelCallLogMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, modelcalllog.FieldOutputTokens)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ModelCallLogMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ModelCallLogMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ModelCallLogMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ModelCallLogMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ModelCallLogMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelCallLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelCallLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelCallLog entity.
// If the ModelCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelCallLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ModelCallLogMutation builder.
func (m *ModelCallLogMutation) Where(ps ...predicate.ModelCallLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelCallLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelCallLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelCallLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelCallLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelCallLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelCallLog).
func (m *ModelCallLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelCallLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.request_id != nil {
		fields = append(fields, modelcalllog.FieldRequestID)
	}
	if m.model_alias != nil {
		fields = append(fields, modelcalllog.FieldModelAlias)
	}
	if m.tier != nil {
		fields = append(fields, modelcalllog.FieldTier)
	}
	if m.status != nil {
		fields = append(fields, modelcalllog.FieldStatus)
	}
	if m.error_type != nil {
		fields = append(fields, modelcalllog.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, modelcalllog.FieldErrorMessage)
	}
	if m.fallback_to != nil {
		fields = append(fields, modelcalllog.FieldFallbackTo)
	}
	if m.input_tokens != nil {
		fields = append(fields, modelcalllog.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, modelcalllog.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, modelcalllog.FieldLatencyMs)
	}
	if m.created_at != nil {
		fields = append(fields, modelcalllog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelCallLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelcalllog.FieldRequestID:
		return m.RequestID()
	case modelcalllog.FieldModelAlias:
		return m.ModelAlias()
	case modelcalllog.FieldTier:
		return m.Tier()
	case modelcalllog.FieldStatus:
		return m.Status()
	case modelcalllog.FieldErrorType:
		return m.ErrorType()
	case modelcalllog.FieldErrorMessage:
		return m.ErrorMessage()
	case modelcalllog.FieldFallbackTo:
		return m.FallbackTo()
	case modelcalllog.FieldInputTokens:
		return m.InputTokens()
	case modelcalllog.FieldOutputTokens:
		return m.OutputTokens()
	case modelcalllog.FieldLatencyMs:
		return m.LatencyMs()
	case modelcalllog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelCallLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelcalllog.FieldRequestID:
		return m.OldRequestID(ctx)
	case modelcalllog.FieldModelAlias:
		return m.OldModelAlias(ctx)
	case modelcalllog.FieldTier:
		return m.OldTier(ctx)
	case modelcalllog.FieldStatus:
		return m.OldStatus(ctx)
	case modelcalllog.FieldErrorType:
		return m.OldErrorType(ctx)
	case modelcalllog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case modelcalllog.FieldFallbackTo:
		return m.OldFallbackTo(ctx)
	case modelcalllog.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case modelcalllog.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case modelcalllog.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case modelcalllog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelCallLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCallLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelcalllog.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case modelcalllog.FieldModelAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelAlias(v)
		return nil
	case modelcalllog.FieldTier:
		v, ok := value.(modelcalllog.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case modelcalllog.FieldStatus:
		v, ok := value.(modelcalllog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case modelcalllog.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case modelcalllog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case modelcalllog.FieldFallbackTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallbackTo(v)
		return nil
	case modelcalllog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case modelcalllog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case modelcalllog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case modelcalllog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCallLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelCallLogMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, modelcalllog.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, modelcalllog.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, modelcalllog.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelCallLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelcalllog.FieldInputTokens:
		return m.AddedInputTokens()
	case modelcalllog.FieldOutputTokens:
		return m.AddedOutputTokens()
	case modelcalllog.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCallLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelcalllog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case modelcalllog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case modelcalllog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCallLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelCallLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelcalllog.FieldErrorType) {
		fields = append(fields, modelcalllog.FieldErrorType)
	}
	if m.FieldCleared(modelcalllog.FieldErrorMessage) {
		fields = append(fields, modelcalllog.FieldErrorMessage)
	}
	if m.FieldCleared(modelcalllog.FieldFallbackTo) {
		fields = append(fields, modelcalllog.FieldFallbackTo)
	}
	if m.FieldCleared(modelcalllog.FieldInputTokens) {
		fields = append(fields, modelcalllog.FieldInputTokens)
	}
	if m.FieldCleared(modelcalllog.FieldOutputTokens) {
		fields = append(fields, modelcalllog.FieldOutputTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelCallLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelCallLogMutation) ClearField(name string) error {
	switch name {
	case modelcalllog.FieldErrorType:
		m.ClearErrorType()
		return nil
	case modelcalllog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case modelcalllog.FieldFallbackTo:
		m.ClearFallbackTo()
		return nil
	case modelcalllog.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case modelcalllog.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	}
	return fmt.Errorf("unknown ModelCallLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelCallLogMutation) ResetField(name string) error {
	switch name {
	case modelcalllog.FieldRequestID:
		m.ResetRequestID()
		return nil
	case modelcalllog.FieldModelAlias:
		m.ResetModelAlias()
		return nil
	case modelcalllog.FieldTier:
		m.ResetTier()
		return nil
	case modelcalllog.FieldStatus:
		m.ResetStatus()
		return nil
	case modelcalllog.FieldErrorType:
		m.ResetErrorType()
		return nil
	case modelcalllog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case modelcalllog.FieldFallbackTo:
		m.ResetFallbackTo()
		return nil
	case modelcalllog.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case modelcalllog.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case modelcalllog.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case modelcalllog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelCallLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelCallLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelCallLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelCallLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelCallLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelCallLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelCallLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelCallLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelCallLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelCallLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelCallLog edge %s", name)
}

// ModelEntryMutation represents an operation that mutates the ModelEntry nodes in the graph.
type ModelEntryMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	alias                       *string
	provider                    *modelentry.Provider
	model_name                  *string
	tier                        *modelentry.Tier
	input_wtu_multiplier        *float64
	addinput_wtu_multiplier     *float64
	output_wtu_multiplier       *float64
	addoutput_wtu_multiplier    *float64
	is_active                   *bool
	price_input_per_million     *float64
	addprice_input_per_million  *float64
	price_output_per_million    *float64
	addprice_output_per_million *float64
	sort_order                  *int
	addsort_order               *int
	embedding_dims              *int
	addembedding_dims           *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*ModelEntry, error)
	predicates                  []predicate.ModelEntry
}

var _ ent.Mutation = (*ModelEntryMutation)(nil)

// modelentryOption allows management of the mutation configuration using functional options.
type modelentryOption func(*ModelEntryMutation)

// newModelEntryMutation creates new mutation for the ModelEntry entity.
func newModelEntryMutation(c config, op Op, opts ...modelentryOption) *ModelEntryMutation {
	m := &ModelEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeModelEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelEntryID sets the ID field of the mutation.
func withModelEntryID(id string) modelentryOption {
	return func(m *ModelEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelEntry
		)
		m.oldValue = func(ctx context.Context) (*ModelEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelEntry sets the old ModelEntry of the mutation.
func withModelEntry(node *ModelEntry) modelentryOption {
	return func(m *ModelEntryMutation) {
		m.oldValue = func(context.Context) (*ModelEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelEntry entities.
func (m *ModelEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAlias sets the "alias" field.
func (m *ModelEntryMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *ModelEntryMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *ModelEntryMutation) ResetAlias() {
	m.alias = nil
}

// SetProvider sets the "provider" field.
func (m *ModelEntryMutation) SetProvider(value modelentry.Provider) {
	m.provider = &value
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ModelEntryMutation) Provider() (r modelentry.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldProvider(ctx context.Context) (v modelentry.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ModelEntryMutation) ResetProvider() {
	m.provider = nil
}

// SetModelName sets the "model_name" field.
func (m *ModelEntryMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ModelEntryMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ModelEntryMutation) ResetModelName() {
	m.model_name = nil
}

// SetTier sets the "tier" field.
func (m *ModelEntryMutation) SetTier(value modelentry.Tier) {
	m.tier = &value
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ModelEntryMutation) Tier() (r modelentry.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldTier(ctx context.Context) (v modelentry.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *ModelEntryMutation) ResetTier() {
	m.tier = nil
}

// SetInputWtuMultiplier sets the "input_wtu_multiplier" field.
func (m *ModelEntryMutation) SetInputWtuMultiplier(f float64) {
	m.input_wtu_multiplier = &f
	m.addinput_wtu_multiplier = nil
}

// InputWtuMultiplier returns the value of the "input_wtu_multiplier" field in the mutation.
func (m *ModelEntryMutation) InputWtuMultiplier() (r float64, exists bool) {
	v := m.input_wtu_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// OldInputWtuMultiplier returns the old "input_wtu_multiplier" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldInputWtuMultiplier(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputWtuMultiplier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputWtuMultiplier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputWtuMultiplier: %w", err)
	}
	return oldValue.InputWtuMultiplier, nil
}

// AddInputWtuMultiplier adds f to the "input_wtu_multiplier" field.
func (m *ModelEntryMutation) AddInputWtuMultiplier(f float64) {
	if m.addinput_wtu_multiplier != nil {
		*m.addinput_wtu_multiplier += f
	} else {
		m.addinput_wtu_multiplier = &f
	}
}

// AddedInputWtuMultiplier returns the value that was added to the "input_wtu_multiplier" field in this mutation.
func (m *ModelEntryMutation) AddedInputWtuMultiplier() (r float64, exists bool) {
	v := m.addinput_wtu_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputWtuMultiplier resets all changes to the "input_wtu_multiplier" field.
func (m *ModelEntryMutation) ResetInputWtuMultiplier() {
	m.input_wtu_multiplier = nil
	m.addinput_wtu_multiplier = nil
}

// SetOutputWtuMultiplier sets the "output_wtu_multiplier" field.
func (m *ModelEntryMutation) SetOutputWtuMultiplier(f float64) {
	m.output_wtu_multiplier = &f
	m.addoutput_wtu_multiplier = nil
}

// OutputWtuMultiplier returns the value of the "output_wtu_multiplier" field in the mutation.
func (m *ModelEntryMutation) OutputWtuMultiplier() (r float64, exists bool) {
	v := m.output_wtu_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputWtuMultiplier returns the old "output_wtu_multiplier" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldOutputWtuMultiplier(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputWtuMultiplier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputWtuMultiplier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputWtuMultiplier: %w", err)
	}
	return oldValue.OutputWtuMultiplier, nil
}

// AddOutputWtuMultiplier adds f to the "output_wtu_multiplier" field.
func (m *ModelEntryMutation) AddOutputWtuMultiplier(f float64) {
	if m.addoutput_wtu_multiplier != nil {
		*m.addoutput_wtu_multiplier += f
	} else {
		m.addoutput_wtu_multiplier = &f
	}
}

// AddedOutputWtuMultiplier returns the value that was added to the "output_wtu_multiplier" field in this mutation.
func (m *ModelEntryMutation) AddedOutputWtuMultiplier() (r float64, exists bool) {
	v := m.addoutput_wtu_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputWtuMultiplier resets all changes to the "output_wtu_multiplier" field.
func (m *ModelEntryMutation) ResetOutputWtuMultiplier() {
	m.output_wtu_multiplier = nil
	m.addoutput_wtu_multiplier = nil
}

// SetIsActive sets the "is_active" field.
func (m *ModelEntryMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ModelEntryMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ModelEntryMutation) ResetIsActive() {
	m.is_active = nil
}

// SetPriceInputPerMillion sets the "price_input_per_million" field.
func (m *ModelEntryMutation) SetPriceInputPerMillion(f float64) {
	m.price_input_per_million = &f
	m.addprice_input_per_million = nil
}

// PriceInputPerMillion returns the value of the "price_input_per_million" field in the mutation.
func (m *ModelEntryMutation) PriceInputPerMillion() (r float64, exists bool) {
	v := m.price_input_per_million
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceInputPerMillion returns the old "price_input_per_million" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldPriceInputPerMillion(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceInputPerMillion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceInputPerMillion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceInputPerMillion: %w", err)
	}
	return oldValue.PriceInputPerMillion, nil
}

// AddPriceInputPerMillion adds f to the "price_input_per_million" field.
func (m *ModelEntryMutation) AddPriceInputPerMillion(f float64) {
	if m.addprice_input_per_million != nil {
		*m.addprice_input_per_million += f
	} else {
		m.addprice_input_per_million = &f
	}
}

// AddedPriceInputPerMillion returns the value that was added to the "price_input_per_million" field in this mutation.
func (m *ModelEntryMutation) AddedPriceInputPerMillion() (r float64, exists bool) {
	v := m.addprice_input_per_million
	if v == nil {
		return
	}
	return *v, true
}

// ClearPriceInputPerMillion clears the value of the "price_input_per_million" field.
func (m *ModelEntryMutation) ClearPriceInputPerMillion() {
	m.price_input_per_million = nil
	m.addprice_input_per_million = nil
	m.clearedFields[modelentry.FieldPriceInputPerMillion] = struct{}{}
}

// PriceInputPerMillionCleared returns if the "price_input_per_million" field was cleared in this mutation.
func (m *ModelEntryMutation) PriceInputPerMillionCleared() bool {
	_, ok := m.clearedFields[modelentry.FieldPriceInputPerMillion]
	return ok
}

// ResetPriceInputPerMillion resets all changes to the "price_input_per_million" field.
func (m *ModelEntryMutation) ResetPriceInputPerMillion() {
	m.price_input_per_million = nil
	m.addprice_input_per_million = nil
	delete(m.clearedFields, modelentry.FieldPriceInputPerMillion)
}

// SetPriceOutputPerMillion sets the "price_output_per_million" field.
func (m *ModelEntryMutation) SetPriceOutputPerMillion(f float64) {
	m.price_output_per_million = &f
	m.addprice_output_per_million = nil
}

// PriceOutputPerMillion returns the value of the "price_output_per_million" field in the mutation.
func (m *ModelEntryMutation) PriceOutputPerMillion() (r float64, exists bool) {
	v := m.price_output_per_million
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceOutputPerMillion returns the old "price_output_per_million" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldPriceOutputPerMillion(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceOutputPerMillion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceOutputPerMillion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceOutputPerMillion: %w", err)
	}
	return oldValue.PriceOutputPerMillion, nil
}

// AddPriceOutputPerMillion adds f to the "price_output_per_million" field.
func (m *ModelEntryMutation) AddPriceOutputPerMillion(f float64) {
	if m.addprice_output_per_million != nil {
		*m.addprice_output_per_million += f
	} else {
		m.addprice_output_per_million = &f
	}
}

// AddedPriceOutputPerMillion returns the value that was added to the "price_output_per_million" field in this mutation.
func (m *ModelEntryMutation) AddedPriceOutputPerMillion() (r float64, exists bool) {
	v := m.addprice_output_per_million
	if v == nil {
		return
	}
	return *v, true
}

// ClearPriceOutputPerMillion clears the value of the "price_output_per_million" field.
func (m *ModelEntryMutation) ClearPriceOutputPerMillion() {
	m.price_output_per_million = nil
	m.addprice_output_per_million = nil
	m.clearedFields[modelentry.FieldPriceOutputPerMillion] = struct{}{}
}

// PriceOutputPerMillionCleared returns if the "price_output_per_million" field was cleared in this mutation.
func (m *ModelEntryMutation) PriceOutputPerMillionCleared() bool {
	_, ok := m.clearedFields[modelentry.FieldPriceOutputPerMillion]
	return ok
}

// ResetPriceOutputPerMillion resets all changes to the "price_output_per_million" field.
func (m *ModelEntryMutation) ResetPriceOutputPerMillion() {
	m.price_output_per_million = nil
	m.addprice_output_per_million = nil
	delete(m.clearedFields, modelentry.FieldPriceOutputPerMillion)
}

// SetSortOrder sets the "sort_order" field.
func (m *ModelEntryMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *ModelEntryMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *ModelEntryMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *ModelEntryMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *ModelEntryMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetEmbeddingDims sets the "embedding_dims" field.
func (m *ModelEntryMutation) SetEmbeddingDims(i int) {
	m.embedding_dims = &i
	m.addembedding_dims = nil
}

// EmbeddingDims returns the value of the "embedding_dims" field in the mutation.
func (m *ModelEntryMutation) EmbeddingDims() (r int, exists bool) {
	v := m.embedding_dims
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingDims returns the old "embedding_dims" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldEmbeddingDims(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingDims is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingDims requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingDims: %w", err)
	}
	return oldValue.EmbeddingDims, nil
}

// AddEmbeddingDims adds i to the "embedding_dims" field.
func (m *ModelEntryMutation) AddEmbeddingDims(i int) {
	if m.addembedding_dims != nil {
		*m.addembedding_dims += i
	} else {
		m.addembedding_dims = &i
	}
}

// AddedEmbeddingDims returns the value that was added to the "embedding_dims" field in this mutation.
func (m *ModelEntryMutation) AddedEmbeddingDims() (r int, exists bool) {
	v := m.addembedding_dims
	if v == nil {
		return
	}
	return *v, true
}

// ClearEmbeddingDims clears the value of the "embedding_dims" field.
func (m *ModelEntryMutation) ClearEmbeddingDims() {
	m.embedding_dims = nil
	m.addembedding_dims = nil
	m.clearedFields[modelentry.FieldEmbeddingDims] = struct{}{}
}

// EmbeddingDimsCleared returns if the "embedding_dims" field was cleared in this mutation.
func (m *ModelEntryMutation) EmbeddingDimsCleared() bool {
	_, ok := m.clearedFields[modelentry.FieldEmbeddingDims]
	return ok
}

// ResetEmbeddingDims resets all changes to the "embedding_dims" field.
func (m *ModelEntryMutation) ResetEmbeddingDims() {
	m.embedding_dims = nil
	m.addembedding_dims = nil
	delete(m.clearedFields, modelentry.FieldEmbeddingDims)
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelEntry entity.
// If the ModelEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelEntryMutation builder.
func (m *ModelEntryMutation) Where(ps ...predicate.ModelEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelEntry).
func (m *ModelEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelEntryMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.alias != nil {
		fields = append(fields, modelentry.FieldAlias)
	}
	if m.provider != nil {
		fields = append(fields, modelentry.FieldProvider)
	}
	if m.model_name != nil {
		fields = append(fields, modelentry.FieldModelName)
	}
	if m.tier != nil {
		fields = append(fields, modelentry.FieldTier)
	}
	if m.input_wtu_multiplier != nil {
		fields = append(fields, modelentry.FieldInputWtuMultiplier)
	}
	if m.output_wtu_multiplier != nil {
		fields = append(fields, modelentry.FieldOutputWtuMultiplier)
	}
	if m.is_active != nil {
		fields = append(fields, modelentry.FieldIsActive)
	}
	if m.price_input_per_million != nil {
		fields = append(fields, modelentry.FieldPriceInputPerMillion)
	}
	if m.price_output_per_million != nil {
		fields = append(fields, modelentry.FieldPriceOutputPerMillion)
	}
	if m.sort_order != nil {
		fields = append(fields, modelentry.FieldSortOrder)
	}
	if m.embedding_dims != nil {
		fields = append(fields, modelentry.FieldEmbeddingDims)
	}
	if m.created_at != nil {
		fields = append(fields, modelentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelentry.FieldAlias:
		return m.Alias()
	case modelentry.FieldProvider:
		return m.Provider()
	case modelentry.FieldModelName:
		return m.ModelName()
	case modelentry.FieldTier:
		return m.Tier()
	case modelentry.FieldInputWtuMultiplier:
		return m.InputWtuMultiplier()
	case modelentry.FieldOutputWtuMultiplier:
		return m.OutputWtuMultiplier()
	case modelentry.FieldIsActive:
		return m.IsActive()
	case modelentry.FieldPriceInputPerMillion:
		return m.PriceInputPerMillion()
	case modelentry.FieldPriceOutputPerMillion:
		return m.PriceOutputPerMillion()
	case modelentry.FieldSortOrder:
		return m.SortOrder()
	case modelentry.FieldEmbeddingDims:
		return m.EmbeddingDims()
	case modelentry.FieldCreatedAt:
		return m.CreatedAt()
	case modelentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelentry.FieldAlias:
		return m.OldAlias(ctx)
	case modelentry.FieldProvider:
		return m.OldProvider(ctx)
	case modelentry.FieldModelName:
		return m.OldModelName(ctx)
	case modelentry.FieldTier:
		return m.OldTier(ctx)
	case modelentry.FieldInputWtuMultiplier:
		return m.OldInputWtuMultiplier(ctx)
	case modelentry.FieldOutputWtuMultiplier:
		return m.OldOutputWtuMultiplier(ctx)
	case modelentry.FieldIsActive:
		return m.OldIsActive(ctx)
	case modelentry.FieldPriceInputPerMillion:
		return m.OldPriceInputPerMillion(ctx)
	case modelentry.FieldPriceOutputPerMillion:
		return m.OldPriceOutputPerMillion(ctx)
	case modelentry.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case modelentry.FieldEmbeddingDims:
		return m.OldEmbeddingDims(ctx)
	case modelentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelentry.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	case modelentry.FieldProvider:
		v, ok := value.(modelentry.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case modelentry.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case modelentry.FieldTier:
		v, ok := value.(modelentry.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case modelentry.FieldInputWtuMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputWtuMultiplier(v)
		return nil
	case modelentry.FieldOutputWtuMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputWtuMultiplier(v)
		return nil
	case modelentry.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case modelentry.FieldPriceInputPerMillion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceInputPerMillion(v)
		return nil
	case modelentry.FieldPriceOutputPerMillion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceOutputPerMillion(v)
		return nil
	case modelentry.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case modelentry.FieldEmbeddingDims:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingDims(v)
		return nil
	case modelentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelEntryMutation) AddedFields() []string {
	var fields []string
	if m.addinput_wtu_multiplier != nil {
		fields = append(fields, modelentry.FieldInputWtuMultiplier)
	}
	if m.addoutput_wtu_multiplier != nil {
		fields = append(fields, modelentry.FieldOutputWtuMultiplier)
	}
	if m.addprice_input_per_million != nil {
		fields = append(fields, modelentry.FieldPriceInputPerMillion)
	}
	if m.addprice_output_per_million != nil {
		fields = append(fields, modelentry.FieldPriceOutputPerMillion)
	}
	if m.addsort_order != nil {
		fields = append(fields, modelentry.FieldSortOrder)
	}
	if m.addembedding_dims != nil {
		fields = append(fields, modelentry.FieldEmbeddingDims)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelentry.FieldInputWtuMultiplier:
		return m.AddedInputWtuMultiplier()
	case modelentry.FieldOutputWtuMultiplier:
		return m.AddedOutputWtuMultiplier()
	case modelentry.FieldPriceInputPerMillion:
		return m.AddedPriceInputPerMillion()
	case modelentry.FieldPriceOutputPerMillion:
		return m.AddedPriceOutputPerMillion()
	case modelentry.FieldSortOrder:
		return m.AddedSortOrder()
	case modelentry.FieldEmbeddingDims:
		return m.AddedEmbeddingDims()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelentry.FieldInputWtuMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputWtuMultiplier(v)
		return nil
	case modelentry.FieldOutputWtuMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputWtuMultiplier(v)
		return nil
	case modelentry.FieldPriceInputPerMillion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceInputPerMillion(v)
		return nil
	case modelentry.FieldPriceOutputPerMillion:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceOutputPerMillion(v)
		return nil
	case modelentry.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	case modelentry.FieldEmbeddingDims:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmbeddingDims(v)
		return nil
	}
	return fmt.Errorf("unknown ModelEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelentry.FieldPriceInputPerMillion) {
		fields = append(fields, modelentry.FieldPriceInputPerMillion)
	}
	if m.FieldCleared(modelentry.FieldPriceOutputPerMillion) {
		fields = append(fields, modelentry.FieldPriceOutputPerMillion)
	}
	if m.FieldCleared(modelentry.FieldEmbeddingDims) {
		fields = append(fields, modelentry.FieldEmbeddingDims)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelEntryMutation) ClearField(name string) error {
	switch name {
	case modelentry.FieldPriceInputPerMillion:
		m.ClearPriceInputPerMillion()
		return nil
	case modelentry.FieldPriceOutputPerMillion:
		m.ClearPriceOutputPerMillion()
		return nil
	case modelentry.FieldEmbeddingDims:
		m.ClearEmbeddingDims()
		return nil
	}
	return fmt.Errorf("unknown ModelEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelEntryMutation) ResetField(name string) error {
	switch name {
	case modelentry.FieldAlias:
		m.ResetAlias()
		return nil
	case modelentry.FieldProvider:
		m.ResetProvider()
		return nil
	case modelentry.FieldModelName:
		m.ResetModelName()
		return nil
	case modelentry.FieldTier:
		m.ResetTier()
		return nil
	case modelentry.FieldInputWtuMultiplier:
		m.ResetInputWtuMultiplier()
		return nil
	case modelentry.FieldOutputWtuMultiplier:
		m.ResetOutputWtuMultiplier()
		return nil
	case modelentry.FieldIsActive:
		m.ResetIsActive()
		return nil
	case modelentry.FieldPriceInputPerMillion:
		m.ResetPriceInputPerMillion()
		return nil
	case modelentry.FieldPriceOutputPerMillion:
		m.ResetPriceOutputPerMillion()
		return nil
	case modelentry.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case modelentry.FieldEmbeddingDims:
		m.ResetEmbeddingDims()
		return nil
	case modelentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelEntry edge %s", name)
}

// PurchaseEventMutation represents an operation that mutates the PurchaseEvent nodes in the graph.
type PurchaseEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	plan_month      *time.Time
	token_amount    *int
	addtoken_amount *int
	purchase_type   *purchaseevent.PurchaseType
	status          *purchaseevent.Status
	currency        *string
	transaction_id  *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PurchaseEvent, error)
	predicates      []predicate.PurchaseEvent
}

var _ ent.Mutation = (*PurchaseEventMutation)(nil)

// purchaseeventOption allows management of the mutation configuration using functional options.
type purchaseeventOption func(*PurchaseEventMutation)

// newPurchaseEventMutation creates new mutation for the PurchaseEvent entity.
func newPurchaseEventMutation(c config, op Op, opts ...purchaseeventOption) *PurchaseEventMutation {
	m := &PurchaseEventMutation{
		config:        c,
		op:            op,
		typ:           TypePurchaseEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPurchaseEventID sets the ID field of the mutation.
func withPurchaseEventID(id string) purchaseeventOption {
	return func(m *PurchaseEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PurchaseEvent
		)
		m.oldValue = func(ctx context.Context) (*PurchaseEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PurchaseEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPurchaseEvent sets the old PurchaseEvent of the mutation.
func withPurchaseEvent(node *PurchaseEvent) purchaseeventOption {
	return func(m *PurchaseEventMutation) {
		m.oldValue = func(context.Context) (*PurchaseEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PurchaseEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PurchaseEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PurchaseEvent entities.
func (m *PurchaseEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PurchaseEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PurchaseEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PurchaseEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PurchaseEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PurchaseEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PurchaseEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetPlanMonth sets the "plan_month" field.
func (m *PurchaseEventMutation) SetPlanMonth(t time.Time) {
	m.plan_month = &t
}

// PlanMonth returns the value of the "plan_month" field in the mutation.
func (m *PurchaseEventMutation) PlanMonth() (r time.Time, exists bool) {
	v := m.plan_month
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanMonth returns the old "plan_month" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldPlanMonth(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanMonth: %w", err)
	}
	return oldValue.PlanMonth, nil
}

// ResetPlanMonth resets all changes to the "plan_month" field.
func (m *PurchaseEventMutation) ResetPlanMonth() {
	m.plan_month = nil
}

// SetTokenAmount sets the "token_amount" field.
func (m *PurchaseEventMutation) SetTokenAmount(i int) {
	m.token_amount = &i
	m.addtoken_amount = nil
}

// TokenAmount returns the value of the "token_amount" field in the mutation.
func (m *PurchaseEventMutation) TokenAmount() (r int, exists bool) {
	v := m.token_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenAmount returns the old "token_amount" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldTokenAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenAmount: %w", err)
	}
	return oldValue.TokenAmount, nil
}

// AddTokenAmount adds i to the "token_amount" field.
func (m *PurchaseEventMutation) AddTokenAmount(i int) {
	if m.addtoken_amount != nil {
		*m.addtoken_amount += i
	} else {
		m.addtoken_amount = &i
	}
}

// AddedTokenAmount returns the value that was added to the "token_amount" field in this mutation.
func (m *PurchaseEventMutation) AddedTokenAmount() (r int, exists bool) {
	v := m.addtoken_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenAmount resets all changes to the "token_amount" field.
func (m *PurchaseEventMutation) ResetTokenAmount() {
	m.token_amount = nil
	m.addtoken_amount = nil
}

// SetPurchaseType sets the "purchase_type" field.
func (m *PurchaseEventMutation) SetPurchaseType(pt purchaseevent.PurchaseType) {
	m.purchase_type = &pt
}

// PurchaseType returns the value of the "purchase_type" field in the mutation.
func (m *PurchaseEventMutation) PurchaseType() (r purchaseevent.PurchaseType, exists bool) {
	v := m.purchase_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseType returns the old "purchase_type" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldPurchaseType(ctx context.Context) (v purchaseevent.PurchaseType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseType: %w", err)
	}
	return oldValue.PurchaseType, nil
}

// ResetPurchaseType resets all changes to the "purchase_type" field.
func (m *PurchaseEventMutation) ResetPurchaseType() {
	m.purchase_type = nil
}

// SetStatus sets the "status" field.
func (m *PurchaseEventMutation) SetStatus(pu purchaseevent.Status) {
	m.status = &pu
}

// Status returns the value of the "status" field in the mutation.
func (m *PurchaseEventMutation) Status() (r purchaseevent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldStatus(ctx context.Context) (v purchaseevent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PurchaseEventMutation) ResetStatus() {
	m.status = nil
}

// SetCurrency sets the "currency" field.
func (m *PurchaseEventMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *PurchaseEventMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *PurchaseEventMutation) ResetCurrency() {
	m.currency = nil
}

// SetTransactionID sets the "transaction_id" field.
func (m *PurchaseEventMutation) SetTransactionID(s string) {
	m.transaction_id = &s
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *PurchaseEventMutation) TransactionID() (r string, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldTransactionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (m *PurchaseEventMutation) ClearTransactionID() {
	m.transaction_id = nil
	m.clearedFields[purchaseevent.FieldTransactionID] = struct{}{}
}

// TransactionIDCleared returns if the "transaction_id" field was cleared in this mutation.
func (m *PurchaseEventMutation) TransactionIDCleared() bool {
	_, ok := m.clearedFields[purchaseevent.FieldTransactionID]
	return ok
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *PurchaseEventMutation) ResetTransactionID() {
	m.transaction_id = nil
	delete(m.clearedFields, purchaseevent.FieldTransactionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PurchaseEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PurchaseEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PurchaseEvent entity.
// If the PurchaseEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PurchaseEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PurchaseEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PurchaseEventMutation builder.
func (m *PurchaseEventMutation) Where(ps ...predicate.PurchaseEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PurchaseEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PurchaseEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PurchaseEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PurchaseEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PurchaseEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PurchaseEvent).
func (m *PurchaseEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PurchaseEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, purchaseevent.FieldUserID)
	}
	if m.plan_month != nil {
		fields = append(fields, purchaseevent.FieldPlanMonth)
	}
	if m.token_amount != nil {
		fields = append(fields, purchaseevent.FieldTokenAmount)
	}
	if m.purchase_type != nil {
		fields = append(fields, purchaseevent.FieldPurchaseType)
	}
	if m.status != nil {
		fields = append(fields, purchaseevent.FieldStatus)
	}
	if m.currency != nil {
		fields = append(fields, purchaseevent.FieldCurrency)
	}
	if m.transaction_id != nil {
		fields = append(fields, purchaseevent.FieldTransactionID)
	}
	if m.created_at != nil {
		fields = append(fields, purchaseevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PurchaseEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case purchaseevent.FieldUserID:
		return m.UserID()
	case purchaseevent.FieldPlanMonth:
		return m.PlanMonth()
	case purchaseevent.FieldTokenAmount:
		return m.TokenAmount()
	case purchaseevent.FieldPurchaseType:
		return m.PurchaseType()
	case purchaseevent.FieldStatus:
		return m.Status()
	case purchaseevent.FieldCurrency:
		return m.Currency()
	case purchaseevent.FieldTransactionID:
		return m.TransactionID()
	case purchaseevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PurchaseEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case purchaseevent.FieldUserID:
		return m.OldUserID(ctx)
	case purchaseevent.FieldPlanMonth:
		return m.OldPlanMonth(ctx)
	case purchaseevent.FieldTokenAmount:
		return m.OldTokenAmount(ctx)
	case purchaseevent.FieldPurchaseType:
		return m.OldPurchaseType(ctx)
	case purchaseevent.FieldStatus:
		return m.OldStatus(ctx)
	case purchaseevent.FieldCurrency:
		return m.OldCurrency(ctx)
	case purchaseevent.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case purchaseevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PurchaseEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PurchaseEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case purchaseevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case purchaseevent.FieldPlanMonth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanMonth(v)
		return nil
	case purchaseevent.FieldTokenAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenAmount(v)
		return nil
	case purchaseevent.FieldPurchaseType:
		v, ok := value.(purchaseevent.PurchaseType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseType(v)
		return nil
	case purchaseevent.FieldStatus:
		v, ok := value.(purchaseevent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case purchaseevent.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case purchaseevent.FieldTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case purchaseevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PurchaseEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PurchaseEventMutation) AddedFields() []string {
	var fields []string
	if m.addtoken_amount != nil {
		fields = append(fields, purchaseevent.FieldTokenAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PurchaseEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case purchaseevent.FieldTokenAmount:
		return m.AddedTokenAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PurchaseEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case purchaseevent.FieldTokenAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenAmount(v)
		return nil
	}
	return fmt.Errorf("unknown PurchaseEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PurchaseEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(purchaseevent.FieldTransactionID) {
		fields = append(fields, purchaseevent.FieldTransactionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PurchaseEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PurchaseEventMutation) ClearField(name string) error {
	switch name {
	case purchaseevent.FieldTransactionID:
		m.ClearTransactionID()
		return nil
	}
	return fmt.Errorf("unknown PurchaseEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PurchaseEventMutation) ResetField(name string) error {
	switch name {
	case purchaseevent.FieldUserID:
		m.ResetUserID()
		return nil
	case purchaseevent.FieldPlanMonth:
		m.ResetPlanMonth()
		return nil
	case purchaseevent.FieldTokenAmount:
		m.ResetTokenAmount()
		return nil
	case purchaseevent.FieldPurchaseType:
		m.ResetPurchaseType()
		return nil
	case purchaseevent.FieldStatus:
		m.ResetStatus()
		return nil
	case purchaseevent.FieldCurrency:
		m.ResetCurrency()
		return nil
	case purchaseevent.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case purchaseevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PurchaseEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PurchaseEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PurchaseEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PurchaseEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PurchaseEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PurchaseEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PurchaseEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PurchaseEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PurchaseEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PurchaseEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PurchaseEvent edge %s", name)
}

// SummaryCacheMutation represents an operation that mutates the SummaryCache nodes in the graph.
type SummaryCacheMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	cache_key                  *string
	cache_type                 *summarycache.CacheType
	content_hash               *string
	extracted_text             *string
	summary                    *string
	candidate_tags             *[]string
	appendcandidate_tags       []string
	candidate_categories       *[]string
	appendcandidate_categories []string
	wtu_cost                   *int
	addwtu_cost                *int
	expires_at                 *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*SummaryCache, error)
	predicates                 []predicate.SummaryCache
}

var _ ent.Mutation = (*SummaryCacheMutation)(nil)

// summarycacheOption allows management of the mutation configuration using functional options.
type summarycacheOption func(*SummaryCacheMutation)

// newSummaryCacheMutation creates new mutation for the SummaryCache entity.
func newSummaryCacheMutation(c config, op Op, opts ...summarycacheOption) *SummaryCacheMutation {
	m := &SummaryCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeSummaryCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryCacheID sets the ID field of the mutation.
func withSummaryCacheID(id string) summarycacheOption {
	return func(m *SummaryCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *SummaryCache
		)
		m.oldValue = func(ctx context.Context) (*SummaryCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummaryCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummaryCache sets the old SummaryCache of the mutation.
func withSummaryCache(node *SummaryCache) summarycacheOption {
	return func(m *SummaryCacheMutation) {
		m.oldValue = func(context.Context) (*SummaryCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SummaryCache entities.
func (m *SummaryCacheMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryCacheMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryCacheMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummaryCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCacheKey sets the "cache_key" field.
func (m *SummaryCacheMutation) SetCacheKey(s string) {
	m.cache_key = &s
}

// CacheKey returns the value of the "cache_key" field in the mutation.
func (m *SummaryCacheMutation) CacheKey() (r string, exists bool) {
	v := m.cache_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheKey returns the old "cache_key" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldCacheKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheKey: %w", err)
	}
	return oldValue.CacheKey, nil
}

// ResetCacheKey resets all changes to the "cache_key" field.
func (m *SummaryCacheMutation) ResetCacheKey() {
	m.cache_key = nil
}

// SetCacheType sets the "cache_type" field.
func (m *SummaryCacheMutation) SetCacheType(st summarycache.CacheType) {
	m.cache_type = &st
}

// CacheType returns the value of the "cache_type" field in the mutation.
func (m *SummaryCacheMutation) CacheType() (r summarycache.CacheType, exists bool) {
	v := m.cache_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheType returns the old "cache_type" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldCacheType(ctx context.Context) (v summarycache.CacheType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheType: %w", err)
	}
	return oldValue.CacheType, nil
}

// ResetCacheType resets all changes to the "cache_type" field.
func (m *SummaryCacheMutation) ResetCacheType() {
	m.cache_type = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SummaryCacheMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SummaryCacheMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SummaryCacheMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *SummaryCacheMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *SummaryCacheMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldExtractedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *SummaryCacheMutation) ResetExtractedText() {
	m.extracted_text = nil
}

// SetSummary sets the "summary" field.
func (m *SummaryCacheMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SummaryCacheMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *SummaryCacheMutation) ResetSummary() {
	m.summary = nil
}

// SetCandidateTags sets the "candidate_tags" field.
func (m *SummaryCacheMutation) SetCandidateTags(s []string) {
	m.candidate_tags = &s
	m.appendcandidate_tags = nil
}

// CandidateTags returns the value of the "candidate_tags" field in the mutation.
func (m *SummaryCacheMutation) CandidateTags() (r []string, exists bool) {
	v := m.candidate_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateTags returns the old "candidate_tags" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldCandidateTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateTags: %w", err)
	}
	return oldValue.CandidateTags, nil
}

// AppendCandidateTags adds s to the "candidate_tags" field.
func (m *SummaryCacheMutation) AppendCandidateTags(s []string) {
	m.appendcandidate_tags = append(m.appendcandidate_tags, s...)
}

// AppendedCandidateTags returns the list of values that were appended to the "candidate_tags" field in this mutation.
func (m *SummaryCacheMutation) AppendedCandidateTags() ([]string, bool) {
	if len(m.appendcandidate_tags) == 0 {
		return nil, false
	}
	return m.appendcandidate_tags, true
}

// ResetCandidateTags resets all changes to the "candidate_tags" field.
func (m *SummaryCacheMutation) ResetCandidateTags() {
	m.candidate_tags = nil
	m.appendcandidate_tags = nil
}

// SetCandidateCategories sets the "candidate_categories" field.
func (m *SummaryCacheMutation) SetCandidateCategories(s []string) {
	m.candidate_categories = &s
	m.appendcandidate_categories = nil
}

// CandidateCategories returns the value of the "candidate_categories" field in the mutation.
func (m *SummaryCacheMutation) CandidateCategories() (r []string, exists bool) {
	v := m.candidate_categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateCategories returns the old "candidate_categories" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldCandidateCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateCategories: %w", err)
	}
	return oldValue.CandidateCategories, nil
}

// AppendCandidateCategories adds s to the "candidate_categories" field.
func (m *SummaryCacheMutation) AppendCandidateCategories(s []string) {
	m.appendcandidate_categories = append(m.appendcandidate_categories, s...)
}

// AppendedCandidateCategories returns the list of values that were appended to the "candidate_categories" field in this mutation.
func (m *SummaryCacheMutation) AppendedCandidateCategories() ([]string, bool) {
	if len(m.appendcandidate_categories) == 0 {
		return nil, false
	}
	return m.appendcandidate_categories, true
}

// ResetCandidateCategories resets all changes to the "candidate_categories" field.
func (m *SummaryCacheMutation) ResetCandidateCategories() {
	m.candidate_categories = nil
	m.appendcandidate_categories = nil
}

// SetWtuCost sets the "wtu_cost" field.
func (m *SummaryCacheMutation) SetWtuCost(i int) {
	m.wtu_cost = &i
	m.addwtu_cost = nil
}

// WtuCost returns the value of the "wtu_cost" field in the mutation.
func (m *SummaryCacheMutation) WtuCost() (r int, exists bool) {
	v := m.wtu_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldWtuCost returns the old "wtu_cost" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldWtuCost(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWtuCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWtuCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWtuCost: %w", err)
	}
	return oldValue.WtuCost, nil
}

// AddWtuCost adds i to the "wtu_cost" field.
func (m *SummaryCacheMutation) AddWtuCost(i int) {
	if m.addwtu_cost != nil {
		*m.addwtu_cost += i
	} else {
		m.addwtu_cost = &i
	}
}

// AddedWtuCost returns the value that was added to the "wtu_cost" field in this mutation.
func (m *SummaryCacheMutation) AddedWtuCost() (r int, exists bool) {
	v := m.addwtu_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetWtuCost resets all changes to the "wtu_cost" field.
func (m *SummaryCacheMutation) ResetWtuCost() {
	m.wtu_cost = nil
	m.addwtu_cost = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *SummaryCacheMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SummaryCacheMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SummaryCacheMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SummaryCacheMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SummaryCacheMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SummaryCacheMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SummaryCacheMutation builder.
func (m *SummaryCacheMutation) Where(ps ...predicate.SummaryCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummaryCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummaryCache).
func (m *SummaryCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryCacheMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.cache_key != nil {
		fields = append(fields, summarycache.FieldCacheKey)
	}
	if m.cache_type != nil {
		fields = append(fields, summarycache.FieldCacheType)
	}
	if m.content_hash != nil {
		fields = append(fields, summarycache.FieldContentHash)
	}
	if m.extracted_text != nil {
		fields = append(fields, summarycache.FieldExtractedText)
	}
	if m.summary != nil {
		fields = append(fields, summarycache.FieldSummary)
	}
	if m.candidate_tags != nil {
		fields = append(fields, summarycache.FieldCandidateTags)
	}
	if m.candidate_categories != nil {
		fields = append(fields, summarycache.FieldCandidateCategories)
	}
	if m.wtu_cost != nil {
		fields = append(fields, summarycache.FieldWtuCost)
	}
	if m.expires_at != nil {
		fields = append(fields, summarycache.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, summarycache.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, summarycache.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summarycache.FieldCacheKey:
		return m.CacheKey()
	case summarycache.FieldCacheType:
		return m.CacheType()
	case summarycache.FieldContentHash:
		return m.ContentHash()
	case summarycache.FieldExtractedText:
		return m.ExtractedText()
	case summarycache.FieldSummary:
		return m.Summary()
	case summarycache.FieldCandidateTags:
		return m.CandidateTags()
	case summarycache.FieldCandidateCategories:
		return m.CandidateCategories()
	case summarycache.FieldWtuCost:
		return m.WtuCost()
	case summarycache.FieldExpiresAt:
		return m.ExpiresAt()
	case summarycache.FieldCreatedAt:
		return m.CreatedAt()
	case summarycache.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summarycache.FieldCacheKey:
		return m.OldCacheKey(ctx)
	case summarycache.FieldCacheType:
		return m.OldCacheType(ctx)
	case summarycache.FieldContentHash:
		return m.OldContentHash(ctx)
	case summarycache.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case summarycache.FieldSummary:
		return m.OldSummary(ctx)
	case summarycache.FieldCandidateTags:
		return m.OldCandidateTags(ctx)
	case summarycache.FieldCandidateCategories:
		return m.OldCandidateCategories(ctx)
	case summarycache.FieldWtuCost:
		return m.OldWtuCost(ctx)
	case summarycache.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case summarycache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case summarycache.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SummaryCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summarycache.FieldCacheKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheKey(v)
		return nil
	case summarycache.FieldCacheType:
		v, ok := value.(summarycache.CacheType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheType(v)
		return nil
	case summarycache.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case summarycache.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case summarycache.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case summarycache.FieldCandidateTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateTags(v)
		return nil
	case summarycache.FieldCandidateCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateCategories(v)
		return nil
	case summarycache.FieldWtuCost:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWtuCost(v)
		return nil
	case summarycache.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case summarycache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case summarycache.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryCacheMutation) AddedFields() []string {
	var fields []string
	if m.addwtu_cost != nil {
		fields = append(fields, summarycache.FieldWtuCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case summarycache.FieldWtuCost:
		return m.AddedWtuCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case summarycache.FieldWtuCost:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWtuCost(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SummaryCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryCacheMutation) ResetField(name string) error {
	switch name {
	case summarycache.FieldCacheKey:
		m.ResetCacheKey()
		return nil
	case summarycache.FieldCacheType:
		m.ResetCacheType()
		return nil
	case summarycache.FieldContentHash:
		m.ResetContentHash()
		return nil
	case summarycache.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case summarycache.FieldSummary:
		m.ResetSummary()
		return nil
	case summarycache.FieldCandidateTags:
		m.ResetCandidateTags()
		return nil
	case summarycache.FieldCandidateCategories:
		m.ResetCandidateCategories()
		return nil
	case summarycache.FieldWtuCost:
		m.ResetWtuCost()
		return nil
	case summarycache.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case summarycache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case summarycache.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SummaryCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SummaryCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SummaryCache edge %s", name)
}

// TagMasterMutation represents an operation that mutates the TagMaster nodes in the graph.
type TagMasterMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tag_name           *string
	embedding          *[]float64
	appendembedding    []float64
	use_count          *int
	adduse_count       *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	user_usages        map[string]struct{}
	removeduser_usages map[string]struct{}
	cleareduser_usages bool
	done               bool
	oldValue           func(context.Context) (*TagMaster, error)
	predicates         []predicate.TagMaster
}

var _ ent.Mutation = (*TagMasterMutation)(nil)

// tagmasterOption allows management of the mutation configuration using functional options.
type tagmasterOption func(*TagMasterMutation)

// newTagMasterMutation creates new mutation for the TagMaster entity.
func newTagMasterMutation(c config, op Op, opts ...tagmasterOption) *TagMasterMutation {
	m := &TagMasterMutation{
		config:        c,
		op:            op,
		typ:           TypeTagMaster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagMasterID sets the ID field of the mutation.
func withTagMasterID(id string) tagmasterOption {
	return func(m *TagMasterMutation) {
		var (
			err   error
			once  sync.Once
			value *TagMaster
		)
		m.oldValue = func(ctx context.Context) (*TagMaster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TagMaster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTagMaster sets the old TagMaster of the mutation.
func withTagMaster(node *TagMaster) tagmasterOption {
	return func(m *TagMasterMutation) {
		m.oldValue = func(context.Context) (*TagMaster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagMasterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagMasterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TagMaster entities.
func (m *TagMasterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagMasterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagMasterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TagMaster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTagName sets the "tag_name" field.
func (m *TagMasterMutation) SetTagName(s string) {
	m.tag_name = &s
}

// TagName returns the value of the "tag_name" field in the mutation.
func (m *TagMasterMutation) TagName() (r string, exists bool) {
	v := m.tag_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTagName returns the old "tag_name" field's value of the TagMaster entity.
// If the TagMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMasterMutation) OldTagName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagName: %w", err)
	}
	return oldValue.TagName, nil
}

// ResetTagName resets all changes to the "tag_name" field.
func (m *TagMasterMutation) ResetTagName() {
	m.tag_name = nil
}

// SetEmbedding sets the "embedding" field.
func (m *TagMasterMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *TagMasterMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the TagMaster entity.
// If the TagMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMasterMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *TagMasterMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *TagMasterMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *TagMasterMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[tagmaster.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *TagMasterMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[tagmaster.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *TagMasterMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, tagmaster.FieldEmbedding)
}

// SetUseCount sets the "use_count" field.
func (m *TagMasterMutation) SetUseCount(i int) {
	m.use_count = &i
	m.adduse_count = nil
}

// UseCount returns the value of the "use_count" field in the mutation.
func (m *TagMasterMutation) UseCount() (r int, exists bool) {
	v := m.use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCount returns the old "use_count" field's value of the TagMaster entity.
// If the TagMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMasterMutation) OldUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCount: %w", err)
	}
	return oldValue.UseCount, nil
}

// AddUseCount adds i to the "use_count" field.
func (m *TagMasterMutation) AddUseCount(i int) {
	if m.adduse_count != nil {
		*m.adduse_count += i
	} else {
		m.adduse_count = &i
	}
}

// AddedUseCount returns the value that was added to the "use_count" field in this mutation.
func (m *TagMasterMutation) AddedUseCount() (r int, exists bool) {
	v := m.adduse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUseCount resets all changes to the "use_count" field.
func (m *TagMasterMutation) ResetUseCount() {
	m.use_count = nil
	m.adduse_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TagMasterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TagMasterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TagMaster entity.
// If the TagMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMasterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TagMasterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddUserUsageIDs adds the "user_usages" edge to the UserTagUsage entity by ids.
func (m *TagMasterMutation) AddUserUsageIDs(ids ...string) {
	if m.user_usages == nil {
		m.user_usages = make(map[string]struct{})
	}
	for i := range ids {
		m.user_usages[ids[i]] = struct{}{}
	}
}

// ClearUserUsages clears the "user_usages" edge to the UserTagUsage entity.
func (m *TagMasterMutation) ClearUserUsages() {
	m.cleareduser_usages = true
}

// UserUsagesCleared reports if the "user_usages" edge to the UserTagUsage entity was cleared.
func (m *TagMasterMutation) UserUsagesCleared() bool {
	return m.cleareduser_usages
}

// RemoveUserUsageIDs removes the "user_usages" edge to the UserTagUsage entity by IDs.
func (m *TagMasterMutation) RemoveUserUsageIDs(ids ...string) {
	if m.removeduser_usages == nil {
		m.removeduser_usages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.user_usages, ids[i])
		m.removeduser_usages[ids[i]] = struct{}{}
	}
}

// RemovedUserUsages returns the removed IDs of the "user_usages" edge to the UserTagUsage entity.
func (m *TagMasterMutation) RemovedUserUsagesIDs() (ids []string) {
	for id := range m.removeduser_usages {
		ids = append(ids, id)
	}
	return
}

// UserUsagesIDs returns the "user_usages" edge IDs in the mutation.
func (m *TagMasterMutation) UserUsagesIDs() (ids []string) {
	for id := range m.user_usages {
		ids = append(ids, id)
	}
	return
}

// ResetUserUsages resets all changes to the "user_usages" edge.
func (m *TagMasterMutation) ResetUserUsages() {
	m.user_usages = nil
	m.cleareduser_usages = false
	m.removeduser_usages = nil
}

// Where appends a list predicates to the TagMasterMutation builder.
func (m *TagMasterMutation) Where(ps ...predicate.TagMaster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagMasterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagMasterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TagMaster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagMasterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagMasterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TagMaster).
func (m *TagMasterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagMasterMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tag_name != nil {
		fields = append(fields, tagmaster.FieldTagName)
	}
	if m.embedding != nil {
		fields = append(fields, tagmaster.FieldEmbedding)
	}
	if m.use_count != nil {
		fields = append(fields, tagmaster.FieldUseCount)
	}
	if m.created_at != nil {
		fields = append(fields, tagmaster.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagMasterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tagmaster.FieldTagName:
		return m.TagName()
	case tagmaster.FieldEmbedding:
		return m.Embedding()
	case tagmaster.FieldUseCount:
		return m.UseCount()
	case tagmaster.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagMasterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tagmaster.FieldTagName:
		return m.OldTagName(ctx)
	case tagmaster.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case tagmaster.FieldUseCount:
		return m.OldUseCount(ctx)
	case tagmaster.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TagMaster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMasterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tagmaster.FieldTagName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagName(v)
		return nil
	case tagmaster.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case tagmaster.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCount(v)
		return nil
	case tagmaster.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TagMaster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagMasterMutation) AddedFields() []string {
	var fields []string
	if m.adduse_count != nil {
		fields = append(fields, tagmaster.FieldUseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagMasterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tagmaster.FieldUseCount:
		return m.AddedUseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMasterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tagmaster.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUseCount(v)
		return nil
	}
	return fmt.Errorf("unknown TagMaster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagMasterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tagmaster.FieldEmbedding) {
		fields = append(fields, tagmaster.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagMasterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagMasterMutation) ClearField(name string) error {
	switch name {
	case tagmaster.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown TagMaster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagMasterMutation) ResetField(name string) error {
	switch name {
	case tagmaster.FieldTagName:
		m.ResetTagName()
		return nil
	case tagmaster.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case tagmaster.FieldUseCount:
		m.ResetUseCount()
		return nil
	case tagmaster.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TagMaster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagMasterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user_usages != nil {
		edges = append(edges, tagmaster.EdgeUserUsages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagMasterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tagmaster.EdgeUserUsages:
		ids := make([]ent.Value, 0, len(m.user_usages))
		for id := range m.user_usages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagMasterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeduser_usages != nil {
		edges = append(edges, tagmaster.EdgeUserUsages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagMasterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tagmaster.EdgeUserUsages:
		ids := make([]ent.Value, 0, len(m.removeduser_usages))
		for id := range m.removeduser_usages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagMasterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser_usages {
		edges = append(edges, tagmaster.EdgeUserUsages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagMasterMutation) EdgeCleared(name string) bool {
	switch name {
	case tagmaster.EdgeUserUsages:
		return m.cleareduser_usages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagMasterMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TagMaster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagMasterMutation) ResetEdge(name string) error {
	switch name {
	case tagmaster.EdgeUserUsages:
		m.ResetUserUsages()
		return nil
	}
	return fmt.Errorf("unknown TagMaster edge %s", name)
}

// UsageRecordMutation represents an operation that mutates the UsageRecord nodes in the graph.
type UsageRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *string
	plan_month          *time.Time
	allocated_quota     *int
	addallocated_quota  *int
	used_tokens_wtu     *int
	addused_tokens_wtu  *int
	remaining_tokens    *int
	addremaining_tokens *int
	total_purchased     *int
	addtotal_purchased  *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*UsageRecord, error)
	predicates          []predicate.UsageRecord
}

var _ ent.Mutation = (*UsageRecordMutation)(nil)

// usagerecordOption allows management of the mutation configuration using functional options.
type usagerecordOption func(*UsageRecordMutation)

// newUsageRecordMutation creates new mutation for the UsageRecord entity.
func newUsageRecordMutation(c config, op Op, opts ...usagerecordOption) *UsageRecordMutation {
	m := &UsageRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageRecordID sets the ID field of the mutation.
func withUsageRecordID(id string) usagerecordOption {
	return func(m *UsageRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageRecord
		)
		m.oldValue = func(ctx context.Context) (*UsageRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageRecord sets the old UsageRecord of the mutation.
func withUsageRecord(node *UsageRecord) usagerecordOption {
	return func(m *UsageRecordMutation) {
		m.oldValue = func(context.Context) (*UsageRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageRecord entities.
func (m *UsageRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UsageRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UsageRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UsageRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetPlanMonth sets the "plan_month" field.
func (m *UsageRecordMutation) SetPlanMonth(t time.Time) {
	m.plan_month = &t
}

// PlanMonth returns the value of the "plan_month" field in the mutation.
func (m *UsageRecordMutation) PlanMonth() (r time.Time, exists bool) {
	v := m.plan_month
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanMonth returns the old "plan_month" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldPlanMonth(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanMonth: %w", err)
	}
	return oldValue.PlanMonth, nil
}

// ResetPlanMonth resets all changes to the "plan_month" field.
func (m *UsageRecordMutation) ResetPlanMonth() {
	m.plan_month = nil
}

// SetAllocatedQuota sets the "allocated_quota" field.
func (m *UsageRecordMutation) SetAllocatedQuota(i int) {
	m.allocated_quota = &i
	m.addallocated_quota = nil
}

// AllocatedQuota returns the value of the "allocated_quota" field in the mutation.
func (m *UsageRecordMutation) AllocatedQuota() (r int, exists bool) {
	v := m.allocated_quota
	if v == nil {
		return
	}
	return *v, true
}

// OldAllocatedQuota returns the old "allocated_quota" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldAllocatedQuota(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllocatedQuota is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllocatedQuota requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllocatedQuota: %w", err)
	}
	return oldValue.AllocatedQuota, nil
}

// AddAllocatedQuota adds i to the "allocated_quota" field.
func (m *UsageRecordMutation) AddAllocatedQuota(i int) {
	if m.addallocated_quota != nil {
		*m.addallocated_quota += i
	} else {
		m.addallocated_quota = &i
	}
}

// AddedAllocatedQuota returns the value that was added to the "allocated_quota" field in this mutation.
func (m *UsageRecordMutation) AddedAllocatedQuota() (r int, exists bool) {
	v := m.addallocated_quota
	if v == nil {
		return
	}
	return *v, true
}

// ResetAllocatedQuota resets all changes to the "allocated_quota" field.
func (m *UsageRecordMutation) ResetAllocatedQuota() {
	m.allocated_quota = nil
	m.addallocated_quota = nil
}

// SetUsedTokensWtu sets the "used_tokens_wtu" field.
func (m *UsageRecordMutation) SetUsedTokensWtu(i int) {
	m.used_tokens_wtu = &i
	m.addused_tokens_wtu = nil
}

// UsedTokensWtu returns the value of the "used_tokens_wtu" field in the mutation.
func (m *UsageRecordMutation) UsedTokensWtu() (r int, exists bool) {
	v := m.used_tokens_wtu
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedTokensWtu returns the old "used_tokens_wtu" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldUsedTokensWtu(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedTokensWtu is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedTokensWtu requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedTokensWtu: %w", err)
	}
	return oldValue.UsedTokensWtu, nil
}

// AddUsedTokensWtu adds i to the "used_tokens_wtu" field.
func (m *UsageRecordMutation) AddUsedTokensWtu(i int) {
	if m.addused_tokens_wtu != nil {
		*m.addused_tokens_wtu += i
	} else {
		m.addused_tokens_wtu = &i
	}
}

// AddedUsedTokensWtu returns the value that was added to the "used_tokens_wtu" field in this mutation.
func (m *UsageRecordMutation) AddedUsedTokensWtu() (r int, exists bool) {
	v := m.addused_tokens_wtu
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsedTokensWtu resets all changes to the "used_tokens_wtu" field.
func (m *UsageRecordMutation) ResetUsedTokensWtu() {
	m.used_tokens_wtu = nil
	m.addused_tokens_wtu = nil
}

// SetRemainingTokens sets the "remaining_tokens" field.
func (m *UsageRecordMutation) SetRemainingTokens(i int) {
	m.remaining_tokens = &i
	m.addremaining_tokens = nil
}

// RemainingTokens returns the value of the "remaining_tokens" field in the mutation.
func (m *UsageRecordMutation) RemainingTokens() (r int, exists bool) {
	v := m.remaining_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldRemainingTokens returns the old "remaining_tokens" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldRemainingTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemainingTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemainingTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemainingTokens: %w", err)
	}
	return oldValue.RemainingTokens, nil
}

// AddRemainingTokens adds i to the "remaining_tokens" field.
func (m *UsageRecordMutation) AddRemainingTokens(i int) {
	if m.addremaining_tokens != nil {
		*m.addremaining_tokens += i
	} else {
		m.addremaining_tokens = &i
	}
}

// AddedRemainingTokens returns the value that was added to the "remaining_tokens" field in this mutation.
func (m *UsageRecordMutation) AddedRemainingTokens() (r int, exists bool) {
	v := m.addremaining_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetRemainingTokens resets all changes to the "remaining_tokens" field.
func (m *UsageRecordMutation) ResetRemainingTokens() {
	m.remaining_tokens = nil
	m.addremaining_tokens = nil
}

// SetTotalPurchased sets the "total_purchased" field.
func (m *UsageRecordMutation) SetTotalPurchased(i int) {
	m.total_purchased = &i
	m.addtotal_purchased = nil
}

// TotalPurchased returns the value of the "total_purchased" field in the mutation.
func (m *UsageRecordMutation) TotalPurchased() (r int, exists bool) {
	v := m.total_purchased
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPurchased returns the old "total_purchased" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldTotalPurchased(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPurchased is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPurchased requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPurchased: %w", err)
	}
	return oldValue.TotalPurchased, nil
}

// AddTotalPurchased adds i to the "total_purchased" field.
func (m *UsageRecordMutation) AddTotalPurchased(i int) {
	if m.addtotal_purchased != nil {
		*m.addtotal_purchased += i
	} else {
		m.addtotal_purchased = &i
	}
}

// AddedTotalPurchased returns the value that was added to the "total_purchased" field in this mutation.
func (m *UsageRecordMutation) AddedTotalPurchased() (r int, exists bool) {
	v := m.addtotal_purchased
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPurchased resets all changes to the "total_purchased" field.
func (m *UsageRecordMutation) ResetTotalPurchased() {
	m.total_purchased = nil
	m.addtotal_purchased = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsageRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsageRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsageRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UsageRecord entity.
// If the UsageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UsageRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UsageRecordMutation builder.
func (m *UsageRecordMutation) Where(ps ...predicate.UsageRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageRecord).
func (m *UsageRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, usagerecord.FieldUserID)
	}
	if m.plan_month != nil {
		fields = append(fields, usagerecord.FieldPlanMonth)
	}
	if m.allocated_quota != nil {
		fields = append(fields, usagerecord.FieldAllocatedQuota)
	}
	if m.used_tokens_wtu != nil {
		fields = append(fields, usagerecord.FieldUsedTokensWtu)
	}
	if m.remaining_tokens != nil {
		fields = append(fields, usagerecord.FieldRemainingTokens)
	}
	if m.total_purchased != nil {
		fields = append(fields, usagerecord.FieldTotalPurchased)
	}
	if m.created_at != nil {
		fields = append(fields, usagerecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usagerecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldUserID:
		return m.UserID()
	case usagerecord.FieldPlanMonth:
		return m.PlanMonth()
	case usagerecord.FieldAllocatedQuota:
		return m.AllocatedQuota()
	case usagerecord.FieldUsedTokensWtu:
		return m.UsedTokensWtu()
	case usagerecord.FieldRemainingTokens:
		return m.RemainingTokens()
	case usagerecord.FieldTotalPurchased:
		return m.TotalPurchased()
	case usagerecord.FieldCreatedAt:
		return m.CreatedAt()
	case usagerecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usagerecord.FieldUserID:
		return m.OldUserID(ctx)
	case usagerecord.FieldPlanMonth:
		return m.OldPlanMonth(ctx)
	case usagerecord.FieldAllocatedQuota:
		return m.OldAllocatedQuota(ctx)
	case usagerecord.FieldUsedTokensWtu:
		return m.OldUsedTokensWtu(ctx)
	case usagerecord.FieldRemainingTokens:
		return m.OldRemainingTokens(ctx)
	case usagerecord.FieldTotalPurchased:
		return m.OldTotalPurchased(ctx)
	case usagerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usagerecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usagerecord.FieldPlanMonth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanMonth(v)
		return nil
	case usagerecord.FieldAllocatedQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllocatedQuota(v)
		return nil
	case usagerecord.FieldUsedTokensWtu:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedTokensWtu(v)
		return nil
	case usagerecord.FieldRemainingTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemainingTokens(v)
		return nil
	case usagerecord.FieldTotalPurchased:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPurchased(v)
		return nil
	case usagerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usagerecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageRecordMutation) AddedFields() []string {
	var fields []string
	if m.addallocated_quota != nil {
		fields = append(fields, usagerecord.FieldAllocatedQuota)
	}
	if m.addused_tokens_wtu != nil {
		fields = append(fields, usagerecord.FieldUsedTokensWtu)
	}
	if m.addremaining_tokens != nil {
		fields = append(fields, usagerecord.FieldRemainingTokens)
	}
	if m.addtotal_purchased != nil {
		fields = append(fields, usagerecord.FieldTotalPurchased)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usagerecord.FieldAllocatedQuota:
		return m.AddedAllocatedQuota()
	case usagerecord.FieldUsedTokensWtu:
		return m.AddedUsedTokensWtu()
	case usagerecord.FieldRemainingTokens:
		return m.AddedRemainingTokens()
	case usagerecord.FieldTotalPurchased:
		return m.AddedTotalPurchased()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usagerecord.FieldAllocatedQuota:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAllocatedQuota(v)
		return nil
	case usagerecord.FieldUsedTokensWtu:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsedTokensWtu(v)
		return nil
	case usagerecord.FieldRemainingTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemainingTokens(v)
		return nil
	case usagerecord.FieldTotalPurchased:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPurchased(v)
		return nil
	}
	return fmt.Errorf("unknown UsageRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UsageRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageRecordMutation) ResetField(name string) error {
	switch name {
	case usagerecord.FieldUserID:
		m.ResetUserID()
		return nil
	case usagerecord.FieldPlanMonth:
		m.ResetPlanMonth()
		return nil
	case usagerecord.FieldAllocatedQuota:
		m.ResetAllocatedQuota()
		return nil
	case usagerecord.FieldUsedTokensWtu:
		m.ResetUsedTokensWtu()
		return nil
	case usagerecord.FieldRemainingTokens:
		m.ResetRemainingTokens()
		return nil
	case usagerecord.FieldTotalPurchased:
		m.ResetTotalPurchased()
		return nil
	case usagerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usagerecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UsageRecord edge %s", name)
}

// UserTagUsageMutation represents an operation that mutates the UserTagUsage nodes in the graph.
type UserTagUsageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	use_count     *int
	adduse_count  *int
	last_used_at  *time.Time
	clearedFields map[string]struct{}
	tag           *string
	clearedtag    bool
	done          bool
	oldValue      func(context.Context) (*UserTagUsage, error)
	predicates    []predicate.UserTagUsage
}

var _ ent.Mutation = (*UserTagUsageMutation)(nil)

// usertagusageOption allows management of the mutation configuration using functional options.
type usertagusageOption func(*UserTagUsageMutation)

// newUserTagUsageMutation creates new mutation for the UserTagUsage entity.
func newUserTagUsageMutation(c config, op Op, opts ...usertagusageOption) *UserTagUsageMutation {
	m := &UserTagUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeUserTagUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserTagUsageID sets the ID field of the mutation.
func withUserTagUsageID(id string) usertagusageOption {
	return func(m *UserTagUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *UserTagUsage
		)
		m.oldValue = func(ctx context.Context) (*UserTagUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserTagUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserTagUsage sets the old UserTagUsage of the mutation.
func withUserTagUsage(node *UserTagUsage) usertagusageOption {
	return func(m *UserTagUsageMutation) {
		m.oldValue = func(context.Context) (*UserTagUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserTagUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserTagUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserTagUsage entities.
func (m *UserTagUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserTagUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserTagUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserTagUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserTagUsageMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserTagUsageMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserTagUsage entity.
// If the UserTagUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTagUsageMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserTagUsageMutation) ResetUserID() {
	m.user_id = nil
}

// SetTagID sets the "tag_id" field.
func (m *UserTagUsageMutation) SetTagID(s string) {
	m.tag = &s
}

// TagID returns the value of the "tag_id" field in the mutation.
func (m *UserTagUsageMutation) TagID() (r string, exists bool) {
	v := m.tag
	if v == nil {
		return
	}
	return *v, true
}

// OldTagID returns the old "tag_id" field's value of the UserTagUsage entity.
// If the UserTagUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTagUsageMutation) OldTagID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagID: %w", err)
	}
	return oldValue.TagID, nil
}

// ResetTagID resets all changes to the "tag_id" field.
func (m *UserTagUsageMutation) ResetTagID() {
	m.tag = nil
}

// SetUseCount sets the "use_count" field.
func (m *UserTagUsageMutation) SetUseCount(i int) {
	m.use_count = &i
	m.adduse_count = nil
}

// UseCount returns the value of the "use_count" field in the mutation.
func (m *UserTagUsageMutation) UseCount() (r int, exists bool) {
	v := m.use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCount returns the old "use_count" field's value of the UserTagUsage entity.
// If the UserTagUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTagUsageMutation) OldUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCount: %w", err)
	}
	return oldValue.UseCount, nil
}

// AddUseCount adds i to the "use_count" field.
func (m *UserTagUsageMutation) AddUseCount(i int) {
	if m.adduse_count != nil {
		*m.adduse_count += i
	} else {
		m.adduse_count = &i
	}
}

// AddedUseCount returns the value that was added to the "use_count" field in this mutation.
func (m *UserTagUsageMutation) AddedUseCount() (r int, exists bool) {
	v := m.adduse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUseCount resets all changes to the "use_count" field.
func (m *UserTagUsageMutation) ResetUseCount() {
	m.use_count = nil
	m.adduse_count = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserTagUsageMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserTagUsageMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserTagUsage entity.
// If the UserTagUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserTagUsageMutation) OldLastUsedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserTagUsageMutation) ResetLastUsedAt() {
	m.last_used_at = nil
}

// ClearTag clears the "tag" edge to the TagMaster entity.
func (m *UserTagUsageMutation) ClearTag() {
	m.clearedtag = true
	m.clearedFields[usertagusage.FieldTagID] = struct{}{}
}

// TagCleared reports if the "tag" edge to the TagMaster entity was cleared.
func (m *UserTagUsageMutation) TagCleared() bool {
	return m.clearedtag
}

// TagIDs returns the "tag" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TagID instead. It exists only for internal usage by the builders.
func (m *UserTagUsageMutation) TagIDs() (ids []string) {
	if id := m.tag; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTag resets all changes to the "tag" edge.
func (m *UserTagUsageMutation) ResetTag() {
	m.tag = nil
	m.clearedtag = false
}

// Where appends a list predicates to the UserTagUsageMutation builder.
func (m *UserTagUsageMutation) Where(ps ...predicate.UserTagUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserTagUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserTagUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserTagUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserTagUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserTagUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserTagUsage).
func (m *UserTagUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserTagUsageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, usertagusage.FieldUserID)
	}
	if m.tag != nil {
		fields = append(fields, usertagusage.FieldTagID)
	}
	if m.use_count != nil {
		fields = append(fields, usertagusage.FieldUseCount)
	}
	if m.last_used_at != nil {
		fields = append(fields, usertagusage.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserTagUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usertagusage.FieldUserID:
		return m.UserID()
	case usertagusage.FieldTagID:
		return m.TagID()
	case usertagusage.FieldUseCount:
		return m.UseCount()
	case usertagusage.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserTagUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usertagusage.FieldUserID:
		return m.OldUserID(ctx)
	case usertagusage.FieldTagID:
		return m.OldTagID(ctx)
	case usertagusage.FieldUseCount:
		return m.OldUseCount(ctx)
	case usertagusage.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserTagUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserTagUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usertagusage.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usertagusage.FieldTagID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagID(v)
		return nil
	case usertagusage.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCount(v)
		return nil
	case usertagusage.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserTagUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserTagUsageMutation) AddedFields() []string {
	var fields []string
	if m.adduse_count != nil {
		fields = append(fields, usertagusage.FieldUseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserTagUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usertagusage.FieldUseCount:
		return m.AddedUseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserTagUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usertagusage.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUseCount(v)
		return nil
	}
	return fmt.Errorf("unknown UserTagUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserTagUsageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserTagUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserTagUsageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserTagUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserTagUsageMutation) ResetField(name string) error {
	switch name {
	case usertagusage.FieldUserID:
		m.ResetUserID()
		return nil
	case usertagusage.FieldTagID:
		m.ResetTagID()
		return nil
	case usertagusage.FieldUseCount:
		m.ResetUseCount()
		return nil
	case usertagusage.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown UserTagUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserTagUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tag != nil {
		edges = append(edges, usertagusage.EdgeTag)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserTagUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usertagusage.EdgeTag:
		if id := m.tag; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserTagUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserTagUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserTagUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtag {
		edges = append(edges, usertagusage.EdgeTag)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserTagUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case usertagusage.EdgeTag:
		return m.clearedtag
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserTagUsageMutation) ClearEdge(name string) error {
	switch name {
	case usertagusage.EdgeTag:
		m.ClearTag()
		return nil
	}
	return fmt.Errorf("unknown UserTagUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserTagUsageMutation) ResetEdge(name string) error {
	switch name {
	case usertagusage.EdgeTag:
		m.ResetTag()
		return nil
	}
	return fmt.Errorf("unknown UserTagUsage edge %s", name)
}
