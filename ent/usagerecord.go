// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/usagerecord"
)

// UsageRecord is the model entity for the UsageRecord schema.
type UsageRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// First day of the billing month (UTC)
	PlanMonth time.Time `json:"plan_month,omitempty"`
	// AllocatedQuota holds the value of the "allocated_quota" field.
	AllocatedQuota int `json:"allocated_quota,omitempty"`
	// UsedTokensWtu holds the value of the "used_tokens_wtu" field.
	UsedTokensWtu int `json:"used_tokens_wtu,omitempty"`
	// Invariant: remaining = allocated - used
	RemainingTokens int `json:"remaining_tokens,omitempty"`
	// TotalPurchased holds the value of the "total_purchased" field.
	TotalPurchased int `json:"total_purchased,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usagerecord.FieldAllocatedQuota, usagerecord.FieldUsedTokensWtu, usagerecord.FieldRemainingTokens, usagerecord.FieldTotalPurchased:
			values[i] = new(sql.NullInt64)
		case usagerecord.FieldID, usagerecord.FieldUserID:
			values[i] = new(sql.NullString)
		case usagerecord.FieldPlanMonth, usagerecord.FieldCreatedAt, usagerecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageRecord fields.
func (_m *UsageRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usagerecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case usagerecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case usagerecord.FieldPlanMonth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field plan_month", values[i])
			} else if value.Valid {
				_m.PlanMonth = value.Time
			}
		case usagerecord.FieldAllocatedQuota:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field allocated_quota", values[i])
			} else if value.Valid {
				_m.AllocatedQuota = int(value.Int64)
			}
		case usagerecord.FieldUsedTokensWtu:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field used_tokens_wtu", values[i])
			} else if value.Valid {
				_m.UsedTokensWtu = int(value.Int64)
			}
		case usagerecord.FieldRemainingTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining_tokens", values[i])
			} else if value.Valid {
				_m.RemainingTokens = int(value.Int64)
			}
		case usagerecord.FieldTotalPurchased:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_purchased", values[i])
			} else if value.Valid {
				_m.TotalPurchased = int(value.Int64)
			}
		case usagerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case usagerecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageRecord.
// This includes values selected through modifiers, order, etc.
func (_m *UsageRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UsageRecord.
// Note that you need to call UsageRecord.Unwrap() before calling this method if this UsageRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageRecord) Update() *UsageRecordUpdateOne {
	return NewUsageRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageRecord) Unwrap() *UsageRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageRecord) String() string {
	var builder strings.Builder
	builder.WriteString("UsageRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("plan_month=")
	builder.WriteString(_m.PlanMonth.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("allocated_quota=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllocatedQuota))
	builder.WriteString(", ")
	builder.WriteString("used_tokens_wtu=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedTokensWtu))
	builder.WriteString(", ")
	builder.WriteString("remaining_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemainingTokens))
	builder.WriteString(", ")
	builder.WriteString("total_purchased=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPurchased))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageRecords is a parsable slice of UsageRecord.
type UsageRecords []*UsageRecord
