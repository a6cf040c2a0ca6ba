// Code generated by ent, DO NOT EDIT.

package usertagusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the usertagusage type in the database.
	Label = "user_tag_usage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "usage_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTagID holds the string denoting the tag_id field in the database.
	FieldTagID = "tag_id"
	// FieldUseCount holds the string denoting the use_count field in the database.
	FieldUseCount = "use_count"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// EdgeTag holds the string denoting the tag edge name in mutations.
	EdgeTag = "tag"
	// TagMasterFieldID holds the string denoting the ID field of the TagMaster.
	TagMasterFieldID = "tag_id"
	// Table holds the table name of the usertagusage in the database.
	Table = "user_tag_usages"
	// TagTable is the table that holds the tag relation/edge.
	TagTable = "user_tag_usages"
	// TagInverseTable is the table name for the TagMaster entity.
	// It exists in this package in order to avoid circular dependency with the "tagmaster" package.
	TagInverseTable = "tag_masters"
	// TagColumn is the table column denoting the tag relation/edge.
	TagColumn = "tag_id"
)

// Columns holds all SQL columns for usertagusage fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTagID,
	FieldUseCount,
	FieldLastUsedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUseCount holds the default value on creation for the "use_count" field.
	DefaultUseCount int
	// UseCountValidator is a validator for the "use_count" field. It is called by the builders before save.
	UseCountValidator func(int) error
	// DefaultLastUsedAt holds the default value on creation for the "last_used_at" field.
	DefaultLastUsedAt func() time.Time
)

// OrderOption defines the ordering options for the UserTagUsage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTagID orders the results by the tag_id field.
func ByTagID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTagID, opts...).ToFunc()
}

// ByUseCount orders the results by the use_count field.
func ByUseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseCount, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}

// ByTagField orders the results by tag field.
func ByTagField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTagStep(), sql.OrderByField(field, opts...))
	}
}
func newTagStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TagInverseTable, TagMasterFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TagTable, TagColumn),
	)
}
