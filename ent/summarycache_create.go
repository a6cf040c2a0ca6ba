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
	"github.com/clipdock/clipd/ent/summarycache"
)

// SummaryCacheCreate is the builder for creating a SummaryCache entity.
type SummaryCacheCreate struct {
	config
	mutation *SummaryCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCacheKey sets the "cache_key" field.
func (_c *SummaryCacheCreate) SetCacheKey(v string) *SummaryCacheCreate {
	_c.mutation.SetCacheKey(v)
	return _c
}

// SetCacheType sets the "cache_type" field.
func (_c *SummaryCacheCreate) SetCacheType(v summarycache.CacheType) *SummaryCacheCreate {
	_c.mutation.SetCacheType(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SummaryCacheCreate) SetContentHash(v string) *SummaryCacheCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *SummaryCacheCreate) SetExtractedText(v string) *SummaryCacheCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SummaryCacheCreate) SetSummary(v string) *SummaryCacheCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetCandidateTags sets the "candidate_tags" field.
func (_c *SummaryCacheCreate) SetCandidateTags(v []string) *SummaryCacheCreate {
	_c.mutation.SetCandidateTags(v)
	return _c
}

// SetCandidateCategories sets the "candidate_categories" field.
func (_c *SummaryCacheCreate) SetCandidateCategories(v []string) *SummaryCacheCreate {
	_c.mutation.SetCandidateCategories(v)
	return _c
}

// SetWtuCost sets the "wtu_cost" field.
func (_c *SummaryCacheCreate) SetWtuCost(v int) *SummaryCacheCreate {
	_c.mutation.SetWtuCost(v)
	return _c
}

// SetNillableWtuCost sets the "wtu_cost" field if the given value is not nil.
func (_c *SummaryCacheCreate) SetNillableWtuCost(v *int) *SummaryCacheCreate {
	if v != nil {
		_c.SetWtuCost(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SummaryCacheCreate) SetExpiresAt(v time.Time) *SummaryCacheCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCacheCreate) SetCreatedAt(v time.Time) *SummaryCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCacheCreate) SetNillableCreatedAt(v *time.Time) *SummaryCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SummaryCacheCreate) SetUpdatedAt(v time.Time) *SummaryCacheCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SummaryCacheCreate) SetNillableUpdatedAt(v *time.Time) *SummaryCacheCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryCacheCreate) SetID(v string) *SummaryCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SummaryCacheMutation object of the builder.
func (_c *SummaryCacheCreate) Mutation() *SummaryCacheMutation {
	return _c.mutation
}

// Save creates the SummaryCache in the database.
func (_c *SummaryCacheCreate) Save(ctx context.Context) (*SummaryCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCacheCreate) SaveX(ctx context.Context) *SummaryCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCacheCreate) defaults() {
	if _, ok := _c.mutation.WtuCost(); !ok {
		v := summarycache.DefaultWtuCost
		_c.mutation.SetWtuCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summarycache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := summarycache.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCacheCreate) check() error {
	if _, ok := _c.mutation.CacheKey(); !ok {
		return &ValidationError{Name: "cache_key", err: errors.New(`ent: missing required field "SummaryCache.cache_key"`)}
	}
	if _, ok := _c.mutation.CacheType(); !ok {
		return &ValidationError{Name: "cache_type", err: errors.New(`ent: missing required field "SummaryCache.cache_type"`)}
	}
	if v, ok := _c.mutation.CacheType(); ok {
		if err := summarycache.CacheTypeValidator(v); err != nil {
			return &ValidationError{Name: "cache_type", err: fmt.Errorf(`ent: validator failed for field "SummaryCache.cache_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "SummaryCache.content_hash"`)}
	}
	if _, ok := _c.mutation.ExtractedText(); !ok {
		return &ValidationError{Name: "extracted_text", err: errors.New(`ent: missing required field "SummaryCache.extracted_text"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "SummaryCache.summary"`)}
	}
	if _, ok := _c.mutation.CandidateTags(); !ok {
		return &ValidationError{Name: "candidate_tags", err: errors.New(`ent: missing required field "SummaryCache.candidate_tags"`)}
	}
	if _, ok := _c.mutation.CandidateCategories(); !ok {
		return &ValidationError{Name: "candidate_categories", err: errors.New(`ent: missing required field "SummaryCache.candidate_categories"`)}
	}
	if _, ok := _c.mutation.WtuCost(); !ok {
		return &ValidationError{Name: "wtu_cost", err: errors.New(`ent: missing required field "SummaryCache.wtu_cost"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "SummaryCache.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SummaryCache.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SummaryCache.updated_at"`)}
	}
	return nil
}

func (_c *SummaryCacheCreate) sqlSave(ctx context.Context) (*SummaryCache, error) {
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
			return nil, fmt.Errorf("unexpected SummaryCache.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryCacheCreate) createSpec() (*SummaryCache, *sqlgraph.CreateSpec) {
	var (
		_node = &SummaryCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summarycache.Table, sqlgraph.NewFieldSpec(summarycache.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CacheKey(); ok {
		_spec.SetField(summarycache.FieldCacheKey, field.TypeString, value)
		_node.CacheKey = value
	}
	if value, ok := _c.mutation.CacheType(); ok {
		_spec.SetField(summarycache.FieldCacheType, field.TypeEnum, value)
		_node.CacheType = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(summarycache.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(summarycache.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(summarycache.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.CandidateTags(); ok {
		_spec.SetField(summarycache.FieldCandidateTags, field.TypeJSON, value)
		_node.CandidateTags = value
	}
	if value, ok := _c.mutation.CandidateCategories(); ok {
		_spec.SetField(summarycache.FieldCandidateCategories, field.TypeJSON, value)
		_node.CandidateCategories = value
	}
	if value, ok := _c.mutation.WtuCost(); ok {
		_spec.SetField(summarycache.FieldWtuCost, field.TypeInt, value)
		_node.WtuCost = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(summarycache.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summarycache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(summarycache.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SummaryCache.Create().
//		SetCacheKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SummaryCacheUpsert) {
//			SetCacheKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SummaryCacheCreate) OnConflict(opts ...sql.ConflictOption) *SummaryCacheUpsertOne {
	_c.conflict = opts
	return &SummaryCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SummaryCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SummaryCacheCreate) OnConflictColumns(columns ...string) *SummaryCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SummaryCacheUpsertOne{
		create: _c,
	}
}

type (
	// SummaryCacheUpsertOne is the builder for "upsert"-ing
	//  one SummaryCache node.
	SummaryCacheUpsertOne struct {
		create *SummaryCacheCreate
	}

	// SummaryCacheUpsert is the "OnConflict" setter.
	SummaryCacheUpsert struct {
		*sql.UpdateSet
	}
)

// SetCacheKey sets the "cache_key" field.
func (u *SummaryCacheUpsert) SetCacheKey(v string) *SummaryCacheUpsert {
	u.Set(summarycache.FieldCacheKey, v)
	return u
}

// UpdateCacheKey sets the "cache_key" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateCacheKey() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldCacheKey)
	return u
}

// SetCacheType sets the "cache_type" field.
func (u *SummaryCacheUpsert) SetCacheType(v summarycache.CacheType) *SummaryCacheUpsert {
	u.Set(summarycache.FieldCacheType, v)
	return u
}

// UpdateCacheType sets the "cache_type" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateCacheType() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldCacheType)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *SummaryCacheUpsert) SetContentHash(v string) *SummaryCacheUpsert {
	u.Set(summarycache.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateContentHash() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldContentHash)
	return u
}

// SetExtractedText sets the "extracted_text" field.
func (u *SummaryCacheUpsert) SetExtractedText(v string) *SummaryCacheUpsert {
	u.Set(summarycache.FieldExtractedText, v)
	return u
}

// UpdateExtractedText sets the "extracted_text" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateExtractedText() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldExtractedText)
	return u
}

// SetSummary sets the "summary" field.
func (u *SummaryCacheUpsert) SetSummary(v string) *SummaryCacheUpsert {
	u.Set(summarycache.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateSummary() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldSummary)
	return u
}

// SetCandidateTags sets the "candidate_tags" field.
func (u *SummaryCacheUpsert) SetCandidateTags(v []string) *SummaryCacheUpsert {
	u.Set(summarycache.FieldCandidateTags, v)
	return u
}

// UpdateCandidateTags sets the "candidate_tags" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateCandidateTags() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldCandidateTags)
	return u
}

// SetCandidateCategories sets the "candidate_categories" field.
func (u *SummaryCacheUpsert) SetCandidateCategories(v []string) *SummaryCacheUpsert {
	u.Set(summarycache.FieldCandidateCategories, v)
	return u
}

// UpdateCandidateCategories sets the "candidate_categories" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateCandidateCategories() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldCandidateCategories)
	return u
}

// SetWtuCost sets the "wtu_cost" field.
func (u *SummaryCacheUpsert) SetWtuCost(v int) *SummaryCacheUpsert {
	u.Set(summarycache.FieldWtuCost, v)
	return u
}

// UpdateWtuCost sets the "wtu_cost" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateWtuCost() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldWtuCost)
	return u
}

// AddWtuCost adds v to the "wtu_cost" field.
func (u *SummaryCacheUpsert) AddWtuCost(v int) *SummaryCacheUpsert {
	u.Add(summarycache.FieldWtuCost, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *SummaryCacheUpsert) SetExpiresAt(v time.Time) *SummaryCacheUpsert {
	u.Set(summarycache.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateExpiresAt() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldExpiresAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SummaryCacheUpsert) SetUpdatedAt(v time.Time) *SummaryCacheUpsert {
	u.Set(summarycache.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SummaryCacheUpsert) UpdateUpdatedAt() *SummaryCacheUpsert {
	u.SetExcluded(summarycache.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SummaryCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(summarycache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SummaryCacheUpsertOne) UpdateNewValues() *SummaryCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(summarycache.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(summarycache.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SummaryCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SummaryCacheUpsertOne) Ignore() *SummaryCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SummaryCacheUpsertOne) DoNothing() *SummaryCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SummaryCacheCreate.OnConflict
// documentation for more info.
func (u *SummaryCacheUpsertOne) Update(set func(*SummaryCacheUpsert)) *SummaryCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SummaryCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetCacheKey sets the "cache_key" field.
func (u *SummaryCacheUpsertOne) SetCacheKey(v string) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCacheKey(v)
	})
}

// UpdateCacheKey sets the "cache_key" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateCacheKey() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCacheKey()
	})
}

// SetCacheType sets the "cache_type" field.
func (u *SummaryCacheUpsertOne) SetCacheType(v summarycache.CacheType) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCacheType(v)
	})
}

// UpdateCacheType sets the "cache_type" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateCacheType() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCacheType()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *SummaryCacheUpsertOne) SetContentHash(v string) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateContentHash() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateContentHash()
	})
}

// SetExtractedText sets the "extracted_text" field.
func (u *SummaryCacheUpsertOne) SetExtractedText(v string) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetExtractedText(v)
	})
}

// UpdateExtractedText sets the "extracted_text" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateExtractedText() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateExtractedText()
	})
}

// SetSummary sets the "summary" field.
func (u *SummaryCacheUpsertOne) SetSummary(v string) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateSummary() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateSummary()
	})
}

// SetCandidateTags sets the "candidate_tags" field.
func (u *SummaryCacheUpsertOne) SetCandidateTags(v []string) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCandidateTags(v)
	})
}

// UpdateCandidateTags sets the "candidate_tags" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateCandidateTags() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCandidateTags()
	})
}

// SetCandidateCategories sets the "candidate_categories" field.
func (u *SummaryCacheUpsertOne) SetCandidateCategories(v []string) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCandidateCategories(v)
	})
}

// UpdateCandidateCategories sets the "candidate_categories" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateCandidateCategories() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCandidateCategories()
	})
}

// SetWtuCost sets the "wtu_cost" field.
func (u *SummaryCacheUpsertOne) SetWtuCost(v int) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetWtuCost(v)
	})
}

// AddWtuCost adds v to the "wtu_cost" field.
func (u *SummaryCacheUpsertOne) AddWtuCost(v int) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.AddWtuCost(v)
	})
}

// UpdateWtuCost sets the "wtu_cost" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateWtuCost() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateWtuCost()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SummaryCacheUpsertOne) SetExpiresAt(v time.Time) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateExpiresAt() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SummaryCacheUpsertOne) SetUpdatedAt(v time.Time) *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SummaryCacheUpsertOne) UpdateUpdatedAt() *SummaryCacheUpsertOne {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SummaryCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SummaryCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SummaryCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SummaryCacheUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SummaryCacheUpsertOne.ID is not supported by MySQL driver. Use SummaryCacheUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SummaryCacheUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SummaryCacheCreateBulk is the builder for creating many SummaryCache entities in bulk.
type SummaryCacheCreateBulk struct {
	config
	err      error
	builders []*SummaryCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the SummaryCache entities in the database.
func (_c *SummaryCacheCreateBulk) Save(ctx context.Context) ([]*SummaryCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SummaryCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryCacheMutation)
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
func (_c *SummaryCacheCreateBulk) SaveX(ctx context.Context) []*SummaryCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SummaryCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SummaryCacheUpsert) {
//			SetCacheKey(v+v).
//		}).
//		Exec(ctx)
func (_c *SummaryCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *SummaryCacheUpsertBulk {
	_c.conflict = opts
	return &SummaryCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SummaryCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SummaryCacheCreateBulk) OnConflictColumns(columns ...string) *SummaryCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SummaryCacheUpsertBulk{
		create: _c,
	}
}

// SummaryCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of SummaryCache nodes.
type SummaryCacheUpsertBulk struct {
	create *SummaryCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SummaryCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(summarycache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SummaryCacheUpsertBulk) UpdateNewValues() *SummaryCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(summarycache.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(summarycache.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SummaryCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SummaryCacheUpsertBulk) Ignore() *SummaryCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SummaryCacheUpsertBulk) DoNothing() *SummaryCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SummaryCacheCreateBulk.OnConflict
// documentation for more info.
func (u *SummaryCacheUpsertBulk) Update(set func(*SummaryCacheUpsert)) *SummaryCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SummaryCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetCacheKey sets the "cache_key" field.
func (u *SummaryCacheUpsertBulk) SetCacheKey(v string) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCacheKey(v)
	})
}

// UpdateCacheKey sets the "cache_key" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateCacheKey() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCacheKey()
	})
}

// SetCacheType sets the "cache_type" field.
func (u *SummaryCacheUpsertBulk) SetCacheType(v summarycache.CacheType) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCacheType(v)
	})
}

// UpdateCacheType sets the "cache_type" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateCacheType() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCacheType()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *SummaryCacheUpsertBulk) SetContentHash(v string) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateContentHash() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateContentHash()
	})
}

// SetExtractedText sets the "extracted_text" field.
func (u *SummaryCacheUpsertBulk) SetExtractedText(v string) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetExtractedText(v)
	})
}

// UpdateExtractedText sets the "extracted_text" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateExtractedText() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateExtractedText()
	})
}

// SetSummary sets the "summary" field.
func (u *SummaryCacheUpsertBulk) SetSummary(v string) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateSummary() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateSummary()
	})
}

// SetCandidateTags sets the "candidate_tags" field.
func (u *SummaryCacheUpsertBulk) SetCandidateTags(v []string) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCandidateTags(v)
	})
}

// UpdateCandidateTags sets the "candidate_tags" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateCandidateTags() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCandidateTags()
	})
}

// SetCandidateCategories sets the "candidate_categories" field.
func (u *SummaryCacheUpsertBulk) SetCandidateCategories(v []string) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetCandidateCategories(v)
	})
}

// UpdateCandidateCategories sets the "candidate_categories" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateCandidateCategories() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateCandidateCategories()
	})
}

// SetWtuCost sets the "wtu_cost" field.
func (u *SummaryCacheUpsertBulk) SetWtuCost(v int) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetWtuCost(v)
	})
}

// AddWtuCost adds v to the "wtu_cost" field.
func (u *SummaryCacheUpsertBulk) AddWtuCost(v int) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.AddWtuCost(v)
	})
}

// UpdateWtuCost sets the "wtu_cost" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateWtuCost() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateWtuCost()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SummaryCacheUpsertBulk) SetExpiresAt(v time.Time) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateExpiresAt() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SummaryCacheUpsertBulk) SetUpdatedAt(v time.Time) *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SummaryCacheUpsertBulk) UpdateUpdatedAt() *SummaryCacheUpsertBulk {
	return u.Update(func(s *SummaryCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SummaryCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SummaryCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SummaryCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SummaryCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
