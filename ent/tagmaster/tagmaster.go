// Code generated by ent, DO NOT EDIT.

package tagmaster

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tagmaster type in the database.
	Label = "tag_master"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tag_id"
	// FieldTagName holds the string denoting the tag_name field in the database.
	FieldTagName = "tag_name"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldUseCount holds the string denoting the use_count field in the database.
	FieldUseCount = "use_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUserUsages holds the string denoting the user_usages edge name in mutations.
	EdgeUserUsages = "user_usages"
	// UserTagUsageFieldID holds the string denoting the ID field of the UserTagUsage.
	UserTagUsageFieldID = "usage_id"
	// Table holds the table name of the tagmaster in the database.
	Table = "tag_masters"
	// UserUsagesTable is the table that holds the user_usages relation/edge.
	UserUsagesTable = "user_tag_usages"
	// UserUsagesInverseTable is the table name for the UserTagUsage entity.
	// It exists in this package in order to avoid circular dependency with the "usertagusage" package.
	UserUsagesInverseTable = "user_tag_usages"
	// UserUsagesColumn is the table column denoting the user_usages relation/edge.
	UserUsagesColumn = "tag_id"
)

// Columns holds all SQL columns for tagmaster fields.
var Columns = []string{
	FieldID,
	FieldTagName,
	FieldEmbedding,
	FieldUseCount,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TagMaster queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTagName orders the results by the tag_name field.
func ByTagName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTagName, opts...).ToFunc()
}

// ByUseCount orders the results by the use_count field.
func ByUseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserUsagesCount orders the results by user_usages count.
func ByUserUsagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUserUsagesStep(), opts...)
	}
}

// ByUserUsages orders the results by user_usages terms.
func ByUserUsages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserUsagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserUsagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserUsagesInverseTable, UserTagUsageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UserUsagesTable, UserUsagesColumn),
	)
}
