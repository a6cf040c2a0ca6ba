// Code generated by ent, DO NOT EDIT.

package usagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the usagerecord type in the database.
	Label = "usage_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "usage_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPlanMonth holds the string denoting the plan_month field in the database.
	FieldPlanMonth = "plan_month"
	// FieldAllocatedQuota holds the string denoting the allocated_quota field in the database.
	FieldAllocatedQuota = "allocated_quota"
	// FieldUsedTokensWtu holds the string denoting the used_tokens_wtu field in the database.
	FieldUsedTokensWtu = "used_tokens_wtu"
	// FieldRemainingTokens holds the string denoting the remaining_tokens field in the database.
	FieldRemainingTokens = "remaining_tokens"
	// FieldTotalPurchased holds the string denoting the total_purchased field in the database.
	FieldTotalPurchased = "total_purchased"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the usagerecord in the database.
	Table = "usage_records"
)

// Columns holds all SQL columns for usagerecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPlanMonth,
	FieldAllocatedQuota,
	FieldUsedTokensWtu,
	FieldRemainingTokens,
	FieldTotalPurchased,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// AllocatedQuotaValidator is a validator for the "allocated_quota" field. It is called by the builders before save.
	AllocatedQuotaValidator func(int) error
	// DefaultUsedTokensWtu holds the default value on creation for the "used_tokens_wtu" field.
	DefaultUsedTokensWtu int
	// UsedTokensWtuValidator is a validator for the "used_tokens_wtu" field. It is called by the builders before save.
	UsedTokensWtuValidator func(int) error
	// RemainingTokensValidator is a validator for the "remaining_tokens" field. It is called by the builders before save.
	RemainingTokensValidator func(int) error
	// DefaultTotalPurchased holds the default value on creation for the "total_purchased" field.
	DefaultTotalPurchased int
	// TotalPurchasedValidator is a validator for the "total_purchased" field. It is called by the builders before save.
	TotalPurchasedValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the UsageRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPlanMonth orders the results by the plan_month field.
func ByPlanMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanMonth, opts...).ToFunc()
}

// ByAllocatedQuota orders the results by the allocated_quota field.
func ByAllocatedQuota(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllocatedQuota, opts...).ToFunc()
}

// ByUsedTokensWtu orders the results by the used_tokens_wtu field.
func ByUsedTokensWtu(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedTokensWtu, opts...).ToFunc()
}

// ByRemainingTokens orders the results by the remaining_tokens field.
func ByRemainingTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingTokens, opts...).ToFunc()
}

// ByTotalPurchased orders the results by the total_purchased field.
func ByTotalPurchased(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPurchased, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
