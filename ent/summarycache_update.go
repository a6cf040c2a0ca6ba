// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/clipdock/clipd/ent/predicate"
	"github.com/clipdock/clipd/ent/summarycache"
)

// SummaryCacheUpdate is the builder for updating SummaryCache entities.
type SummaryCacheUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryCacheMutation
}

// Where appends a list predicates to the SummaryCacheUpdate builder.
func (_u *SummaryCacheUpdate) Where(ps ...predicate.SummaryCache) *SummaryCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCacheKey sets the "cache_key" field.
func (_u *SummaryCacheUpdate) SetCacheKey(v string) *SummaryCacheUpdate {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableCacheKey(v *string) *SummaryCacheUpdate {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetCacheType sets the "cache_type" field.
func (_u *SummaryCacheUpdate) SetCacheType(v summarycache.CacheType) *SummaryCacheUpdate {
	_u.mutation.SetCacheType(v)
	return _u
}

// SetNillableCacheType sets the "cache_type" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableCacheType(v *summarycache.CacheType) *SummaryCacheUpdate {
	if v != nil {
		_u.SetCacheType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SummaryCacheUpdate) SetContentHash(v string) *SummaryCacheUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableContentHash(v *string) *SummaryCacheUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *SummaryCacheUpdate) SetExtractedText(v string) *SummaryCacheUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableExtractedText(v *string) *SummaryCacheUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SummaryCacheUpdate) SetSummary(v string) *SummaryCacheUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableSummary(v *string) *SummaryCacheUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCandidateTags sets the "candidate_tags" field.
func (_u *SummaryCacheUpdate) SetCandidateTags(v []string) *SummaryCacheUpdate {
	_u.mutation.SetCandidateTags(v)
	return _u
}

// AppendCandidateTags appends value to the "candidate_tags" field.
func (_u *SummaryCacheUpdate) AppendCandidateTags(v []string) *SummaryCacheUpdate {
	_u.mutation.AppendCandidateTags(v)
	return _u
}

// SetCandidateCategories sets the "candidate_categories" field.
func (_u *SummaryCacheUpdate) SetCandidateCategories(v []string) *SummaryCacheUpdate {
	_u.mutation.SetCandidateCategories(v)
	return _u
}

// AppendCandidateCategories appends value to the "candidate_categories" field.
func (_u *SummaryCacheUpdate) AppendCandidateCategories(v []string) *SummaryCacheUpdate {
	_u.mutation.AppendCandidateCategories(v)
	return _u
}

// SetWtuCost sets the "wtu_cost" field.
func (_u *SummaryCacheUpdate) SetWtuCost(v int) *SummaryCacheUpdate {
	_u.mutation.ResetWtuCost()
	_u.mutation.SetWtuCost(v)
	return _u
}

// SetNillableWtuCost sets the "wtu_cost" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableWtuCost(v *int) *SummaryCacheUpdate {
	if v != nil {
		_u.SetWtuCost(*v)
	}
	return _u
}

// AddWtuCost adds value to the "wtu_cost" field.
func (_u *SummaryCacheUpdate) AddWtuCost(v int) *SummaryCacheUpdate {
	_u.mutation.AddWtuCost(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SummaryCacheUpdate) SetExpiresAt(v time.Time) *SummaryCacheUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableExpiresAt(v *time.Time) *SummaryCacheUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryCacheUpdate) SetUpdatedAt(v time.Time) *SummaryCacheUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SummaryCacheMutation object of the builder.
func (_u *SummaryCacheUpdate) Mutation() *SummaryCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryCacheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryCacheUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summarycache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryCacheUpdate) check() error {
	if v, ok := _u.mutation.CacheType(); ok {
		if err := summarycache.CacheTypeValidator(v); err != nil {
			return &ValidationError{Name: "cache_type", err: fmt.Errorf(`ent: validator failed for field "SummaryCache.cache_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarycache.Table, summarycache.Columns, sqlgraph.NewFieldSpec(summarycache.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(summarycache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CacheType(); ok {
		_spec.SetField(summarycache.FieldCacheType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(summarycache.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(summarycache.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(summarycache.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateTags(); ok {
		_spec.SetField(summarycache.FieldCandidateTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidateTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycache.FieldCandidateTags, value)
		})
	}
	if value, ok := _u.mutation.CandidateCategories(); ok {
		_spec.SetField(summarycache.FieldCandidateCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidateCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycache.FieldCandidateCategories, value)
		})
	}
	if value, ok := _u.mutation.WtuCost(); ok {
		_spec.SetField(summarycache.FieldWtuCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWtuCost(); ok {
		_spec.AddField(summarycache.FieldWtuCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(summarycache.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summarycache.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarycache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryCacheUpdateOne is the builder for updating a single SummaryCache entity.
type SummaryCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryCacheMutation
}

// SetCacheKey sets the "cache_key" field.
func (_u *SummaryCacheUpdateOne) SetCacheKey(v string) *SummaryCacheUpdateOne {
	_u.mutation.SetCacheKey(v)
	return _u
}

// SetNillableCacheKey sets the "cache_key" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableCacheKey(v *string) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetCacheKey(*v)
	}
	return _u
}

// SetCacheType sets the "cache_type" field.
func (_u *SummaryCacheUpdateOne) SetCacheType(v summarycache.CacheType) *SummaryCacheUpdateOne {
	_u.mutation.SetCacheType(v)
	return _u
}

// SetNillableCacheType sets the "cache_type" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableCacheType(v *summarycache.CacheType) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetCacheType(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SummaryCacheUpdateOne) SetContentHash(v string) *SummaryCacheUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableContentHash(v *string) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *SummaryCacheUpdateOne) SetExtractedText(v string) *SummaryCacheUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableExtractedText(v *string) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SummaryCacheUpdateOne) SetSummary(v string) *SummaryCacheUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableSummary(v *string) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCandidateTags sets the "candidate_tags" field.
func (_u *SummaryCacheUpdateOne) SetCandidateTags(v []string) *SummaryCacheUpdateOne {
	_u.mutation.SetCandidateTags(v)
	return _u
}

// AppendCandidateTags appends value to the "candidate_tags" field.
func (_u *SummaryCacheUpdateOne) AppendCandidateTags(v []string) *SummaryCacheUpdateOne {
	_u.mutation.AppendCandidateTags(v)
	return _u
}

// SetCandidateCategories sets the "candidate_categories" field.
func (_u *SummaryCacheUpdateOne) SetCandidateCategories(v []string) *SummaryCacheUpdateOne {
	_u.mutation.SetCandidateCategories(v)
	return _u
}

// AppendCandidateCategories appends value to the "candidate_categories" field.
func (_u *SummaryCacheUpdateOne) AppendCandidateCategories(v []string) *SummaryCacheUpdateOne {
	_u.mutation.AppendCandidateCategories(v)
	return _u
}

// SetWtuCost sets the "wtu_cost" field.
func (_u *SummaryCacheUpdateOne) SetWtuCost(v int) *SummaryCacheUpdateOne {
	_u.mutation.ResetWtuCost()
	_u.mutation.SetWtuCost(v)
	return _u
}

// SetNillableWtuCost sets the "wtu_cost" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableWtuCost(v *int) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetWtuCost(*v)
	}
	return _u
}

// AddWtuCost adds value to the "wtu_cost" field.
func (_u *SummaryCacheUpdateOne) AddWtuCost(v int) *SummaryCacheUpdateOne {
	_u.mutation.AddWtuCost(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SummaryCacheUpdateOne) SetExpiresAt(v time.Time) *SummaryCacheUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableExpiresAt(v *time.Time) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryCacheUpdateOne) SetUpdatedAt(v time.Time) *SummaryCacheUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SummaryCacheMutation object of the builder.
func (_u *SummaryCacheUpdateOne) Mutation() *SummaryCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryCacheUpdate builder.
func (_u *SummaryCacheUpdateOne) Where(ps ...predicate.SummaryCache) *SummaryCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryCacheUpdateOne) Select(field string, fields ...string) *SummaryCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SummaryCache entity.
func (_u *SummaryCacheUpdateOne) Save(ctx context.Context) (*SummaryCache, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryCacheUpdateOne) SaveX(ctx context.Context) *SummaryCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryCacheUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summarycache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryCacheUpdateOne) check() error {
	if v, ok := _u.mutation.CacheType(); ok {
		if err := summarycache.CacheTypeValidator(v); err != nil {
			return &ValidationError{Name: "cache_type", err: fmt.Errorf(`ent: validator failed for field "SummaryCache.cache_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SummaryCacheUpdateOne) sqlSave(ctx context.Context) (_node *SummaryCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarycache.Table, summarycache.Columns, sqlgraph.NewFieldSpec(summarycache.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummaryCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summarycache.FieldID)
		for _, f := range fields {
			if !summarycache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summarycache.FieldID {
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
	if value, ok := _u.mutation.CacheKey(); ok {
		_spec.SetField(summarycache.FieldCacheKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.CacheType(); ok {
		_spec.SetField(summarycache.FieldCacheType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(summarycache.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(summarycache.FieldExtractedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(summarycache.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateTags(); ok {
		_spec.SetField(summarycache.FieldCandidateTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidateTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycache.FieldCandidateTags, value)
		})
	}
	if value, ok := _u.mutation.CandidateCategories(); ok {
		_spec.SetField(summarycache.FieldCandidateCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCandidateCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycache.FieldCandidateCategories, value)
		})
	}
	if value, ok := _u.mutation.WtuCost(); ok {
		_spec.SetField(summarycache.FieldWtuCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWtuCost(); ok {
		_spec.AddField(summarycache.FieldWtuCost, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(summarycache.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summarycache.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SummaryCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarycache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
