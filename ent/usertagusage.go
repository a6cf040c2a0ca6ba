// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/tagmaster"
	"github.com/clipdock/clipd/ent/usertagusage"
)

// UserTagUsage is the model entity for the UserTagUsage schema.
type UserTagUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TagID holds the value of the "tag_id" field.
	TagID string `json:"tag_id,omitempty"`
	// UseCount holds the value of the "use_count" field.
	UseCount int `json:"use_count,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt time.Time `json:"last_used_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserTagUsageQuery when eager-loading is set.
	Edges        UserTagUsageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserTagUsageEdges holds the relations/edges for other nodes in the graph.
type UserTagUsageEdges struct {
	// Tag holds the value of the tag edge.
	Tag *TagMaster `json:"tag,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TagOrErr returns the Tag value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserTagUsageEdges) TagOrErr() (*TagMaster, error) {
	if e.Tag != nil {
		return e.Tag, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tagmaster.Label}
	}
	return nil, &NotLoadedError{edge: "tag"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserTagUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usertagusage.FieldUseCount:
			values[i] = new(sql.NullInt64)
		case usertagusage.FieldID, usertagusage.FieldUserID, usertagusage.FieldTagID:
			values[i] = new(sql.NullString)
		case usertagusage.FieldLastUsedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserTagUsage fields.
func (_m *UserTagUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usertagusage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case usertagusage.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case usertagusage.FieldTagID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tag_id", values[i])
			} else if value.Valid {
				_m.TagID = value.String
			}
		case usertagusage.FieldUseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field use_count", values[i])
			} else if value.Valid {
				_m.UseCount = int(value.Int64)
			}
		case usertagusage.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserTagUsage.
// This includes values selected through modifiers, order, etc.
func (_m *UserTagUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTag queries the "tag" edge of the UserTagUsage entity.
func (_m *UserTagUsage) QueryTag() *TagMasterQuery {
	return NewUserTagUsageClient(_m.config).QueryTag(_m)
}

// Update returns a builder for updating this UserTagUsage.
// Note that you need to call UserTagUsage.Unwrap() before calling this method if this UserTagUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserTagUsage) Update() *UserTagUsageUpdateOne {
	return NewUserTagUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserTagUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserTagUsage) Unwrap() *UserTagUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserTagUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserTagUsage) String() string {
	var builder strings.Builder
	builder.WriteString("UserTagUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("tag_id=")
	builder.WriteString(_m.TagID)
	builder.WriteString(", ")
	builder.WriteString("use_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseCount))
	builder.WriteString(", ")
	builder.WriteString("last_used_at=")
	builder.WriteString(_m.LastUsedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserTagUsages is a parsable slice of UserTagUsage.
type UserTagUsages []*UserTagUsage
