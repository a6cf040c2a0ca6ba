// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/clipdock/clipd/ent/predicate"
	"github.com/clipdock/clipd/ent/tagmaster"
	"github.com/clipdock/clipd/ent/usertagusage"
)

// TagMasterUpdate is the builder for updating TagMaster entities.
type TagMasterUpdate struct {
	config
	hooks    []Hook
	mutation *TagMasterMutation
}

// Where appends a list predicates to the TagMasterUpdate builder.
func (_u *TagMasterUpdate) Where(ps ...predicate.TagMaster) *TagMasterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTagName sets the "tag_name" field.
func (_u *TagMasterUpdate) SetTagName(v string) *TagMasterUpdate {
	_u.mutation.SetTagName(v)
	return _u
}

// SetNillableTagName sets the "tag_name" field if the given value is not nil.
func (_u *TagMasterUpdate) SetNillableTagName(v *string) *TagMasterUpdate {
	if v != nil {
		_u.SetTagName(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TagMasterUpdate) SetEmbedding(v []float64) *TagMasterUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *TagMasterUpdate) AppendEmbedding(v []float64) *TagMasterUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TagMasterUpdate) ClearEmbedding() *TagMasterUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *TagMasterUpdate) SetUseCount(v int) *TagMasterUpdate {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *TagMasterUpdate) SetNillableUseCount(v *int) *TagMasterUpdate {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *TagMasterUpdate) AddUseCount(v int) *TagMasterUpdate {
	_u.mutation.AddUseCount(v)
	return _u
}

// AddUserUsageIDs adds the "user_usages" edge to the UserTagUsage entity by IDs.
func (_u *TagMasterUpdate) AddUserUsageIDs(ids ...string) *TagMasterUpdate {
	_u.mutation.AddUserUsageIDs(ids...)
	return _u
}

// AddUserUsages adds the "user_usages" edges to the UserTagUsage entity.
func (_u *TagMasterUpdate) AddUserUsages(v ...*UserTagUsage) *TagMasterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserUsageIDs(ids...)
}

// Mutation returns the TagMasterMutation object of the builder.
func (_u *TagMasterUpdate) Mutation() *TagMasterMutation {
	return _u.mutation
}

// ClearUserUsages clears all "user_usages" edges to the UserTagUsage entity.
func (_u *TagMasterUpdate) ClearUserUsages() *TagMasterUpdate {
	_u.mutation.ClearUserUsages()
	return _u
}

// RemoveUserUsageIDs removes the "user_usages" edge to UserTagUsage entities by IDs.
func (_u *TagMasterUpdate) RemoveUserUsageIDs(ids ...string) *TagMasterUpdate {
	_u.mutation.RemoveUserUsageIDs(ids...)
	return _u
}

// RemoveUserUsages removes "user_usages" edges to UserTagUsage entities.
func (_u *TagMasterUpdate) RemoveUserUsages(v ...*UserTagUsage) *TagMasterUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserUsageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TagMasterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TagMasterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TagMasterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TagMasterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TagMasterUpdate) check() error {
	if v, ok := _u.mutation.UseCount(); ok {
		if err := tagmaster.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`ent: validator failed for field "TagMaster.use_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TagMasterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tagmaster.Table, tagmaster.Columns, sqlgraph.NewFieldSpec(tagmaster.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TagName(); ok {
		_spec.SetField(tagmaster.FieldTagName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(tagmaster.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tagmaster.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(tagmaster.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(tagmaster.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(tagmaster.FieldUseCount, field.TypeInt, value)
	}
	if _u.mutation.UserUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserUsagesIDs(); len(nodes) > 0 && !_u.mutation.UserUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tagmaster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TagMasterUpdateOne is the builder for updating a single TagMaster entity.
type TagMasterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TagMasterMutation
}

// SetTagName sets the "tag_name" field.
func (_u *TagMasterUpdateOne) SetTagName(v string) *TagMasterUpdateOne {
	_u.mutation.SetTagName(v)
	return _u
}

// SetNillableTagName sets the "tag_name" field if the given value is not nil.
func (_u *TagMasterUpdateOne) SetNillableTagName(v *string) *TagMasterUpdateOne {
	if v != nil {
		_u.SetTagName(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TagMasterUpdateOne) SetEmbedding(v []float64) *TagMasterUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *TagMasterUpdateOne) AppendEmbedding(v []float64) *TagMasterUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *TagMasterUpdateOne) ClearEmbedding() *TagMasterUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *TagMasterUpdateOne) SetUseCount(v int) *TagMasterUpdateOne {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *TagMasterUpdateOne) SetNillableUseCount(v *int) *TagMasterUpdateOne {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *TagMasterUpdateOne) AddUseCount(v int) *TagMasterUpdateOne {
	_u.mutation.AddUseCount(v)
	return _u
}

// AddUserUsageIDs adds the "user_usages" edge to the UserTagUsage entity by IDs.
func (_u *TagMasterUpdateOne) AddUserUsageIDs(ids ...string) *TagMasterUpdateOne {
	_u.mutation.AddUserUsageIDs(ids...)
	return _u
}

// AddUserUsages adds the "user_usages" edges to the UserTagUsage entity.
func (_u *TagMasterUpdateOne) AddUserUsages(v ...*UserTagUsage) *TagMasterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserUsageIDs(ids...)
}

// Mutation returns the TagMasterMutation object of the builder.
func (_u *TagMasterUpdateOne) Mutation() *TagMasterMutation {
	return _u.mutation
}

// ClearUserUsages clears all "user_usages" edges to the UserTagUsage entity.
func (_u *TagMasterUpdateOne) ClearUserUsages() *TagMasterUpdateOne {
	_u.mutation.ClearUserUsages()
	return _u
}

// RemoveUserUsageIDs removes the "user_usages" edge to UserTagUsage entities by IDs.
func (_u *TagMasterUpdateOne) RemoveUserUsageIDs(ids ...string) *TagMasterUpdateOne {
	_u.mutation.RemoveUserUsageIDs(ids...)
	return _u
}

// RemoveUserUsages removes "user_usages" edges to UserTagUsage entities.
func (_u *TagMasterUpdateOne) RemoveUserUsages(v ...*UserTagUsage) *TagMasterUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserUsageIDs(ids...)
}

// Where appends a list predicates to the TagMasterUpdate builder.
func (_u *TagMasterUpdateOne) Where(ps ...predicate.TagMaster) *TagMasterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TagMasterUpdateOne) Select(field string, fields ...string) *TagMasterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TagMaster entity.
func (_u *TagMasterUpdateOne) Save(ctx context.Context) (*TagMaster, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TagMasterUpdateOne) SaveX(ctx context.Context) *TagMaster {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TagMasterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TagMasterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TagMasterUpdateOne) check() error {
	if v, ok := _u.mutation.UseCount(); ok {
		if err := tagmaster.UseCountValidator(v); err != nil {
			return &ValidationError{Name: "use_count", err: fmt.Errorf(`ent: validator failed for field "TagMaster.use_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TagMasterUpdateOne) sqlSave(ctx context.Context) (_node *TagMaster, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tagmaster.Table, tagmaster.Columns, sqlgraph.NewFieldSpec(tagmaster.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TagMaster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tagmaster.FieldID)
		for _, f := range fields {
			if !tagmaster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tagmaster.FieldID {
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
	if value, ok := _u.mutation.TagName(); ok {
		_spec.SetField(tagmaster.FieldTagName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(tagmaster.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tagmaster.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(tagmaster.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(tagmaster.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(tagmaster.FieldUseCount, field.TypeInt, value)
	}
	if _u.mutation.UserUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserUsagesIDs(); len(nodes) > 0 && !_u.mutation.UserUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TagMaster{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tagmaster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
