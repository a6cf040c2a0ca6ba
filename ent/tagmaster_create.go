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
	"github.com/clipdock/clipd/ent/tagmaster"
	"github.com/clipdock/clipd/ent/usertagusage"
)

// TagMasterCreate is the builder for creating a TagMaster entity.
type TagMasterCreate struct {
	config
	mutation *TagMasterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTagName sets the "tag_name" field.
func (_c *TagMasterCreate) SetTagName(v string) *TagMasterCreate {
	_c.mutation.SetTagName(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *TagMasterCreate) SetEmbedding(v []float64) *TagMasterCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetUseCount sets the "use_count" field.
func (_c *TagMasterCreate) SetUseCount(v int) *TagMasterCreate {
	_c.mutation.SetUseCount(v)
	return _c
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_c *TagMasterCreate) SetNillableUseCount(v *int) *TagMasterCreate {
	if v != nil {
		_c.SetUseCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TagMasterCreate) SetCreatedAt(v time.Time) *TagMasterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TagMasterCreate) SetNillableCreatedAt(v *time.Time) *TagMasterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TagMasterCreate) SetID(v string) *TagMasterCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUserUsageIDs adds the "user_usages" edge to the UserTagUsage entity by IDs.
func (_c *TagMasterCreate) AddUserUsageIDs(ids ...string) *TagMasterCreate {
	_c.mutation.AddUserUsageIDs(ids...)
	return _c
}

// AddUserUsages adds the "user_usages" edges to the UserTagUsage entity.
func (_c *TagMasterCreate) AddUserUsages(v ...*UserTagUsage) *TagMasterCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserUsageIDs(ids...)
}

// Mutation returns the TagMasterMutation object of the builder.
func (_c *TagMasterCreate) Mutation() *TagMasterMutation {
	return _c.mutation
}

// Save creates the TagMaster in the database.
func (_c *TagMasterCreate) Save(ctx context.Context) (*TagMaster, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TagMasterCreate) SaveX(ctx context.Context) *TagMaster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagMasterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagMasterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TagMasterCreate) defaults() {
	if _, ok := _c.mutation.UseCount(); !ok {
		v := tagmaster.DefaultUseCount
		_c.mutation.SetUseCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tagmaster.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TagMasterCreate) check() error {
	if _, ok := _c.mutation.TagName(); !ok {
		return &ValidationError{Name: "tag_name", err: errors.New(`ent: missing required field "TagMaster.tag_name"`)}
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		return &ValidationError{Name: "use_count", err: errors.New(`ent: missing required field "TagMaster.use_count"`)}
	}
	if v, ok := _c.mutation.UseCount(); ok {
		if err := tagmaster.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`ent: validator failed for field "TagMaster.use_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TagMaster.created_at"`)}
	}
	return nil
}

func (_c *TagMasterCreate) sqlSave(ctx context.Context) (*TagMaster, error) {
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
			return nil, fmt.Errorf("unexpected TagMaster.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TagMasterCreate) createSpec() (*TagMaster, *sqlgraph.CreateSpec) {
	var (
		_node = &TagMaster{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tagmaster.Table, sqlgraph.NewFieldSpec(tagmaster.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TagName(); ok {
		_spec.SetField(tagmaster.FieldTagName, field.TypeString, value)
		_node.TagName = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(tagmaster.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.UseCount(); ok {
		_spec.SetField(tagmaster.FieldUseCount, field.TypeInt, value)
		_node.UseCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tagmaster.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserUsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tagmaster.UserUsagesTable,
			Columns: []string{tagmaster.UserUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usertagusage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TagMaster.Create().
//		SetTagName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TagMasterUpsert) {
//			SetTagName(v+v).
//		}).
//		Exec(ctx)
func (_c *TagMasterCreate) OnConflict(opts ...sql.ConflictOption) *TagMasterUpsertOne {
	_c.conflict = opts
	return &TagMasterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TagMaster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TagMasterCreate) OnConflictColumns(columns ...string) *TagMasterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TagMasterUpsertOne{
		create: _c,
	}
}

type (
	// TagMasterUpsertOne is the builder for "upsert"-ing
	//  one TagMaster node.
	TagMasterUpsertOne struct {
		create *TagMasterCreate
	}

	// TagMasterUpsert is the "OnConflict" setter.
	TagMasterUpsert struct {
		*sql.UpdateSet
	}
)

// SetTagName sets the "tag_name" field.
func (u *TagMasterUpsert) SetTagName(v string) *TagMasterUpsert {
	u.Set(tagmaster.FieldTagName, v)
	return u
}

// UpdateTagName sets the "tag_name" field to the value that was provided on create.
func (u *TagMasterUpsert) UpdateTagName() *TagMasterUpsert {
	u.SetExcluded(tagmaster.FieldTagName)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *TagMasterUpsert) SetEmbedding(v []float64) *TagMasterUpsert {
	u.Set(tagmaster.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TagMasterUpsert) UpdateEmbedding() *TagMasterUpsert {
	u.SetExcluded(tagmaster.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TagMasterUpsert) ClearEmbedding() *TagMasterUpsert {
	u.SetNull(tagmaster.FieldEmbedding)
	return u
}

// SetUseCount sets the "use_count" field.
func (u *TagMasterUpsert) SetUseCount(v int) *TagMasterUpsert {
	u.Set(tagmaster.FieldUseCount, v)
	return u
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *TagMasterUpsert) UpdateUseCount() *TagMasterUpsert {
	u.SetExcluded(tagmaster.FieldUseCount)
	return u
}

// AddUseCount adds v to the "use_count" field.
func (u *TagMasterUpsert) AddUseCount(v int) *TagMasterUpsert {
	u.Add(tagmaster.FieldUseCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TagMaster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tagmaster.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TagMasterUpsertOne) UpdateNewValues() *TagMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tagmaster.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tagmaster.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TagMaster.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TagMasterUpsertOne) Ignore() *TagMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TagMasterUpsertOne) DoNothing() *TagMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TagMasterCreate.OnConflict
// documentation for more info.
func (u *TagMasterUpsertOne) Update(set func(*TagMasterUpsert)) *TagMasterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TagMasterUpsert{UpdateSet: update})
	}))
	return u
}

// SetTagName sets the "tag_name" field.
func (u *TagMasterUpsertOne) SetTagName(v string) *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.SetTagName(v)
	})
}

// UpdateTagName sets the "tag_name" field to the value that was provided on create.
func (u *TagMasterUpsertOne) UpdateTagName() *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.UpdateTagName()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *TagMasterUpsertOne) SetEmbedding(v []float64) *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TagMasterUpsertOne) UpdateEmbedding() *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TagMasterUpsertOne) ClearEmbedding() *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.ClearEmbedding()
	})
}

// SetUseCount sets the "use_count" field.
func (u *TagMasterUpsertOne) SetUseCount(v int) *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *TagMasterUpsertOne) AddUseCount(v int) *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *TagMasterUpsertOne) UpdateUseCount() *TagMasterUpsertOne {
	return u.Update(func(s *TagMasterUpsert) {
		s.UpdateUseCount()
	})
}

// Exec executes the query.
func (u *TagMasterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TagMasterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TagMasterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TagMasterUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TagMasterUpsertOne.ID is not supported by MySQL driver. Use TagMasterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TagMasterUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TagMasterCreateBulk is the builder for creating many TagMaster entities in bulk.
type TagMasterCreateBulk struct {
	config
	err      error
	builders []*TagMasterCreate
	conflict []sql.ConflictOption
}

// Save creates the TagMaster entities in the database.
func (_c *TagMasterCreateBulk) Save(ctx context.Context) ([]*TagMaster, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TagMaster, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TagMasterMutation)
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
func (_c *TagMasterCreateBulk) SaveX(ctx context.Context) []*TagMaster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagMasterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagMasterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TagMaster.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TagMasterUpsert) {
//			SetTagName(v+v).
//		}).
//		Exec(ctx)
func (_c *TagMasterCreateBulk) OnConflict(opts ...sql.ConflictOption) *TagMasterUpsertBulk {
	_c.conflict = opts
	return &TagMasterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TagMaster.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TagMasterCreateBulk) OnConflictColumns(columns ...string) *TagMasterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TagMasterUpsertBulk{
		create: _c,
	}
}

// TagMasterUpsertBulk is the builder for "upsert"-ing
// a bulk of TagMaster nodes.
type TagMasterUpsertBulk struct {
	create *TagMasterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TagMaster.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tagmaster.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TagMasterUpsertBulk) UpdateNewValues() *TagMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tagmaster.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tagmaster.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TagMaster.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TagMasterUpsertBulk) Ignore() *TagMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TagMasterUpsertBulk) DoNothing() *TagMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TagMasterCreateBulk.OnConflict
// documentation for more info.
func (u *TagMasterUpsertBulk) Update(set func(*TagMasterUpsert)) *TagMasterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TagMasterUpsert{UpdateSet: update})
	}))
	return u
}

// SetTagName sets the "tag_name" field.
func (u *TagMasterUpsertBulk) SetTagName(v string) *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.SetTagName(v)
	})
}

// UpdateTagName sets the "tag_name" field to the value that was provided on create.
func (u *TagMasterUpsertBulk) UpdateTagName() *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.UpdateTagName()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *TagMasterUpsertBulk) SetEmbedding(v []float64) *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TagMasterUpsertBulk) UpdateEmbedding() *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *TagMasterUpsertBulk) ClearEmbedding() *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.ClearEmbedding()
	})
}

// SetUseCount sets the "use_count" field.
func (u *TagMasterUpsertBulk) SetUseCount(v int) *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *TagMasterUpsertBulk) AddUseCount(v int) *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *TagMasterUpsertBulk) UpdateUseCount() *TagMasterUpsertBulk {
	return u.Update(func(s *TagMasterUpsert) {
		s.UpdateUseCount()
	})
}

// Exec executes the query.
func (u *TagMasterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TagMasterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TagMasterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TagMasterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
