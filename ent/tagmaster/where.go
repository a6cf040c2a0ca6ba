// Code generated by ent, DO NOT EDIT.

package tagmaster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clipdock/clipd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldContainsFold(FieldID, id))
}

// TagName applies equality check predicate on the "tag_name" field. It's identical to TagNameEQ.
func TagName(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldTagName, v))
}

// UseCount applies equality check predicate on the "use_count" field. It's identical to UseCountEQ.
func UseCount(v int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldUseCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldCreatedAt, v))
}

// TagNameEQ applies the EQ predicate on the "tag_name" field.
func TagNameEQ(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldTagName, v))
}

// TagNameNEQ applies the NEQ predicate on the "tag_name" field.
func TagNameNEQ(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNEQ(FieldTagName, v))
}

// TagNameIn applies the In predicate on the "tag_name" field.
func TagNameIn(vs ...string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldIn(FieldTagName, vs...))
}

// TagNameNotIn applies the NotIn predicate on the "tag_name" field.
func TagNameNotIn(vs ...string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNotIn(FieldTagName, vs...))
}

// TagNameGT applies the GT predicate on the "tag_name" field.
func TagNameGT(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGT(FieldTagName, v))
}

// TagNameGTE applies the GTE predicate on the "tag_name" field.
func TagNameGTE(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGTE(FieldTagName, v))
}

// TagNameLT applies the LT predicate on the "tag_name" field.
func TagNameLT(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLT(FieldTagName, v))
}

// TagNameLTE applies the LTE predicate on the "tag_name" field.
func TagNameLTE(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLTE(FieldTagName, v))
}

// TagNameContains applies the Contains predicate on the "tag_name" field.
func TagNameContains(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldContains(FieldTagName, v))
}

// TagNameHasPrefix applies the HasPrefix predicate on the "tag_name" field.
func TagNameHasPrefix(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldHasPrefix(FieldTagName, v))
}

// TagNameHasSuffix applies the HasSuffix predicate on the "tag_name" field.
func TagNameHasSuffix(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldHasSuffix(FieldTagName, v))
}

// TagNameEqualFold applies the EqualFold predicate on the "tag_name" field.
func TagNameEqualFold(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEqualFold(FieldTagName, v))
}

// TagNameContainsFold applies the ContainsFold predicate on the "tag_name" field.
func TagNameContainsFold(v string) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldContainsFold(FieldTagName, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.TagMaster {
	return predicate.TagMaster(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNotNull(FieldEmbedding))
}

// UseCountEQ applies the EQ predicate on the "use_count" field.
func UseCountEQ(v int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldUseCount, v))
}

// UseCountNEQ applies the NEQ predicate on the "use_count" field.
func UseCountNEQ(v int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNEQ(FieldUseCount, v))
}

// UseCountIn applies the In predicate on the "use_count" field.
func UseCountIn(vs ...int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldIn(FieldUseCount, vs...))
}

// UseCountNotIn applies the NotIn predicate on the "use_count" field.
func UseCountNotIn(vs ...int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNotIn(FieldUseCount, vs...))
}

// UseCountGT applies the GT predicate on the "use_count" field.
func UseCountGT(v int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGT(FieldUseCount, v))
}

// UseCountGTE applies the GTE predicate on the "use_count" field.
func UseCountGTE(v int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGTE(FieldUseCount, v))
}

// UseCountLT applies the LT predicate on the "use_count" field.
func UseCountLT(v int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLT(FieldUseCount, v))
}

// UseCountLTE applies the LTE predicate on the "use_count" field.
func UseCountLTE(v int) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLTE(FieldUseCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TagMaster {
	return predicate.TagMaster(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUserUsages applies the HasEdge predicate on the "user_usages" edge.
func HasUserUsages() predicate.TagMaster {
	return predicate.TagMaster(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UserUsagesTable, UserUsagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserUsagesWith applies the HasEdge predicate on the "user_usages" edge with a given conditions (other predicates).
func HasUserUsagesWith(preds ...predicate.UserTagUsage) predicate.TagMaster {
	return predicate.TagMaster(func(s *sql.Selector) {
		step := newUserUsagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TagMaster) predicate.TagMaster {
	return predicate.TagMaster(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TagMaster) predicate.TagMaster {
	return predicate.TagMaster(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TagMaster) predicate.TagMaster {
	return predicate.TagMaster(sql.NotPredicates(p))
}
