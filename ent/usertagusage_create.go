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

// UserTagUsageCreate is the builder for creating a UserTagUsage entity.
type UserTagUsageCreate struct {
	config
	mutation *UserTagUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserTagUsageCreate) SetUserID(v string) *UserTagUsageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTagID sets the "tag_id" field.
func (_c *UserTagUsageCreate) SetTagID(v string) *UserTagUsageCreate {
	_c.mutation.SetTagID(v)
	return _c
}

// SetUseCount sets the "use_count" field.
func (_c *UserTagUsageCreate) SetUseCount(v int) *UserTagUsageCreate {
	_c.mutation.SetUseCount(v)
	return _c
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_c *UserTagUsageCreate) SetNillableUseCount(v *int) *UserTagUsageCreate {
	if v != nil {
		_c.SetUseCount(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *UserTagUsageCreate) SetLastUsedAt(v time.Time) *UserTagUsageCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *UserTagUsageCreate) SetNillableLastUsedAt(v *time.Time) *UserTagUsageCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserTagUsageCreate) SetID(v string) *UserTagUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTag sets the "tag" edge to the TagMaster entity.
func (_c *UserTagUsageCreate) SetTag(v *TagMaster) *UserTagUsageCreate {
	return _c.SetTagID(v.ID)
}

// Mutation returns the UserTagUsageMutation object of the builder.
func (_c *UserTagUsageCreate) Mutation() *UserTagUsageMutation {
	return _c.mutation
}

// Save creates the UserTagUsage in the database.
func (_c *UserTagUsageCreate) Save(ctx context.Context) (*UserTagUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserTagUsageCreate) SaveX(ctx context.Context) *UserTagUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserTagUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserTagUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserTagUsageCreate) defaults() {
	if _, ok := _c.mutation.UseCount(); !ok {
		v := usertagusage.DefaultUseCount
		_c.mutation.SetUseCount(v)
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		v := usertagusage.DefaultLastUsedAt()
		_c.mutation.SetLastUsedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserTagUsageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserTagUsage.user_id"`)}
	}
	if _, ok := _c.mutation.TagID(); !ok {
		return &ValidationError{Name: "tag_id", err: errors.New(`ent: missing required field "UserTagUsage.tag_id"`)}
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		return &ValidationError{Name: "use_count", err: errors.New(`ent: missing required field "UserTagUsage.use_count"`)}
	}
	if v, ok := _c.mutation.UseCount(); ok {
		if err := usertagusage.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`ent: validator failed for field "UserTagUsage.use_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		return &ValidationError{Name: "last_used_at", err: errors.New(`ent: missing required field "UserTagUsage.last_used_at"`)}
	}
	if len(_c.mutation.TagIDs()) == 0 {
		return &ValidationError{Name: "tag", err: errors.New(`ent: missing required edge "UserTagUsage.tag"`)}
	}
	return nil
}

func (_c *UserTagUsageCreate) sqlSave(ctx context.Context) (*UserTagUsage, error) {
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
			return nil, fmt.Errorf("unexpected UserTagUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserTagUsageCreate) createSpec() (*UserTagUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &UserTagUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usertagusage.Table, sqlgraph.NewFieldSpec(usertagusage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usertagusage.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UseCount(); ok {
		_spec.SetField(usertagusage.FieldUseCount, field.TypeInt, value)
		_node.UseCount = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(usertagusage.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = value
	}
	if nodes := _c.mutation.TagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usertagusage.TagTable,
			Columns: []string{usertagusage.TagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tagmaster.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TagID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserTagUsage.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserTagUsageUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserTagUsageCreate) OnConflict(opts ...sql.ConflictOption) *UserTagUsageUpsertOne {
	_c.conflict = opts
	return &UserTagUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserTagUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserTagUsageCreate) OnConflictColumns(columns ...string) *UserTagUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserTagUsageUpsertOne{
		create: _c,
	}
}

type (
	// UserTagUsageUpsertOne is the builder for "upsert"-ing
	//  one UserTagUsage node.
	UserTagUsageUpsertOne struct {
		create *UserTagUsageCreate
	}

	// UserTagUsageUpsert is the "OnConflict" setter.
	UserTagUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUseCount sets the "use_count" field.
func (u *UserTagUsageUpsert) SetUseCount(v int) *UserTagUsageUpsert {
	u.Set(usertagusage.FieldUseCount, v)
	return u
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *UserTagUsageUpsert) UpdateUseCount() *UserTagUsageUpsert {
	u.SetExcluded(usertagusage.FieldUseCount)
	return u
}

// AddUseCount adds v to the "use_count" field.
func (u *UserTagUsageUpsert) AddUseCount(v int) *UserTagUsageUpsert {
	u.Add(usertagusage.FieldUseCount, v)
	return u
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UserTagUsageUpsert) SetLastUsedAt(v time.Time) *UserTagUsageUpsert {
	u.Set(usertagusage.FieldLastUsedAt, v)
	return u
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UserTagUsageUpsert) UpdateLastUsedAt() *UserTagUsageUpsert {
	u.SetExcluded(usertagusage.FieldLastUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserTagUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usertagusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserTagUsageUpsertOne) UpdateNewValues() *UserTagUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(usertagusage.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(usertagusage.FieldUserID)
		}
		if _, exists := u.create.mutation.TagID(); exists {
			s.SetIgnore(usertagusage.FieldTagID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserTagUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserTagUsageUpsertOne) Ignore() *UserTagUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserTagUsageUpsertOne) DoNothing() *UserTagUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserTagUsageCreate.OnConflict
// documentation for more info.
func (u *UserTagUsageUpsertOne) Update(set func(*UserTagUsageUpsert)) *UserTagUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserTagUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUseCount sets the "use_count" field.
func (u *UserTagUsageUpsertOne) SetUseCount(v int) *UserTagUsageUpsertOne {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *UserTagUsageUpsertOne) AddUseCount(v int) *UserTagUsageUpsertOne {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *UserTagUsageUpsertOne) UpdateUseCount() *UserTagUsageUpsertOne {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.UpdateUseCount()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UserTagUsageUpsertOne) SetLastUsedAt(v time.Time) *UserTagUsageUpsertOne {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UserTagUsageUpsertOne) UpdateLastUsedAt() *UserTagUsageUpsertOne {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.UpdateLastUsedAt()
	})
}

// Exec executes the query.
func (u *UserTagUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserTagUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserTagUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserTagUsageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserTagUsageUpsertOne.ID is not supported by MySQL driver. Use UserTagUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserTagUsageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserTagUsageCreateBulk is the builder for creating many UserTagUsage entities in bulk.
type UserTagUsageCreateBulk struct {
	config
	err      error
	builders []*UserTagUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the UserTagUsage entities in the database.
func (_c *UserTagUsageCreateBulk) Save(ctx context.Context) ([]*UserTagUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserTagUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserTagUsageMutation)
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
func (_c *UserTagUsageCreateBulk) SaveX(ctx context.Context) []*UserTagUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserTagUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserTagUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserTagUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserTagUsageUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserTagUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserTagUsageUpsertBulk {
	_c.conflict = opts
	return &UserTagUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserTagUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserTagUsageCreateBulk) OnConflictColumns(columns ...string) *UserTagUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserTagUsageUpsertBulk{
		create: _c,
	}
}

// UserTagUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of UserTagUsage nodes.
type UserTagUsageUpsertBulk struct {
	create *UserTagUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserTagUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usertagusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserTagUsageUpsertBulk) UpdateNewValues() *UserTagUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(usertagusage.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(usertagusage.FieldUserID)
			}
			if _, exists := b.mutation.TagID(); exists {
				s.SetIgnore(usertagusage.FieldTagID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserTagUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserTagUsageUpsertBulk) Ignore() *UserTagUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserTagUsageUpsertBulk) DoNothing() *UserTagUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserTagUsageCreateBulk.OnConflict
// documentation for more info.
func (u *UserTagUsageUpsertBulk) Update(set func(*UserTagUsageUpsert)) *UserTagUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserTagUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUseCount sets the "use_count" field.
func (u *UserTagUsageUpsertBulk) SetUseCount(v int) *UserTagUsageUpsertBulk {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *UserTagUsageUpsertBulk) AddUseCount(v int) *UserTagUsageUpsertBulk {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *UserTagUsageUpsertBulk) UpdateUseCount() *UserTagUsageUpsertBulk {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.UpdateUseCount()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *UserTagUsageUpsertBulk) SetLastUsedAt(v time.Time) *UserTagUsageUpsertBulk {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *UserTagUsageUpsertBulk) UpdateLastUsedAt() *UserTagUsageUpsertBulk {
	return u.Update(func(s *UserTagUsageUpsert) {
		s.UpdateLastUsedAt()
	})
}

// Exec executes the query.
func (u *UserTagUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserTagUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserTagUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserTagUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
