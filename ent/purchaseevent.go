// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/purchaseevent"
)

// PurchaseEvent is the model entity for the PurchaseEvent schema.
type PurchaseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PlanMonth holds the value of the "plan_month" field.
	PlanMonth time.Time `json:"plan_month,omitempty"`
	// TokenAmount holds the value of the "token_amount" field.
	TokenAmount int `json:"token_amount,omitempty"`
	// PurchaseType holds the value of the "purchase_type" field.
	PurchaseType purchaseevent.PurchaseType `json:"purchase_type,omitempty"`
	// Status holds the value of the "status" field.
	Status purchaseevent.Status `json:"status,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID *string `json:"transaction_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PurchaseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case purchaseevent.FieldTokenAmount:
			values[i] = new(sql.NullInt64)
		case purchaseevent.FieldID, purchaseevent.FieldUserID, purchaseevent.FieldPurchaseType, purchaseevent.FieldStatus, purchaseevent.FieldCurrency, purchaseevent.FieldTransactionID:
			values[i] = new(sql.NullString)
		case purchaseevent.FieldPlanMonth, purchaseevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PurchaseEvent fields.
func (_m *PurchaseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case purchaseevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case purchaseevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case purchaseevent.FieldPlanMonth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field plan_month", values[i])
			} else if value.Valid {
				_m.PlanMonth = value.Time
			}
		case purchaseevent.FieldTokenAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_amount", values[i])
			} else if value.Valid {
				_m.TokenAmount = int(value.Int64)
			}
		case purchaseevent.FieldPurchaseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_type", values[i])
			} else if value.Valid {
				_m.PurchaseType = purchaseevent.PurchaseType(value.String)
			}
		case purchaseevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = purchaseevent.Status(value.String)
			}
		case purchaseevent.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case purchaseevent.FieldTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = new(string)
				*_m.TransactionID = value.String
			}
		case purchaseevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PurchaseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PurchaseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PurchaseEvent.
// Note that you need to call PurchaseEvent.Unwrap() before calling this method if this PurchaseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PurchaseEvent) Update() *PurchaseEventUpdateOne {
	return NewPurchaseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PurchaseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PurchaseEvent) Unwrap() *PurchaseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PurchaseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PurchaseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PurchaseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("plan_month=")
	builder.WriteString(_m.PlanMonth.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("token_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenAmount))
	builder.WriteString(", ")
	builder.WriteString("purchase_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PurchaseType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PurchaseEvents is a parsable slice of PurchaseEvent.
type PurchaseEvents []*PurchaseEvent
