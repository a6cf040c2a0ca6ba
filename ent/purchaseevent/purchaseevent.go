// Code generated by ent, DO NOT EDIT.

package purchaseevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the purchaseevent type in the database.
	Label = "purchase_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "purchase_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPlanMonth holds the string denoting the plan_month field in the database.
	FieldPlanMonth = "plan_month"
	// FieldTokenAmount holds the string denoting the token_amount field in the database.
	FieldTokenAmount = "token_amount"
	// FieldPurchaseType holds the string denoting the purchase_type field in the database.
	FieldPurchaseType = "purchase_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the purchaseevent in the database.
	Table = "purchase_events"
)

// Columns holds all SQL columns for purchaseevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPlanMonth,
	FieldTokenAmount,
	FieldPurchaseType,
	FieldStatus,
	FieldCurrency,
	FieldTransactionID,
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
	// TokenAmountValidator is a validator for the "token_amount" field. It is called by the builders before save.
	TokenAmountValidator func(int) error
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// PurchaseType defines the type for the "purchase_type" enum field.
type PurchaseType string

// PurchaseType values.
const (
	PurchaseTypePurchase PurchaseType = "purchase"
	PurchaseTypeBonus    PurchaseType = "bonus"
	PurchaseTypeRefund   PurchaseType = "refund"
)

func (pt PurchaseType) String() string {
	return string(pt)
}

// PurchaseTypeValidator is a validator for the "purchase_type" field enum values. It is called by the builders before save.
func PurchaseTypeValidator(pt PurchaseType) error {
	switch pt {
	case PurchaseTypePurchase, PurchaseTypeBonus, PurchaseTypeRefund:
		return nil
	default:
		return fmt.Errorf("purchaseevent: invalid enum value for purchase_type field: %q", pt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return nil
	default:
		return fmt.Errorf("purchaseevent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PurchaseEvent queries.
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

// ByTokenAmount orders the results by the token_amount field.
func ByTokenAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenAmount, opts...).ToFunc()
}

// ByPurchaseType orders the results by the purchase_type field.
func ByPurchaseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
