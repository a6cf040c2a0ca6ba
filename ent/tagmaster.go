// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/tagmaster"
)

// TagMaster is the model entity for the TagMaster schema.
type TagMaster struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Case-normalized (lower) tag text
	TagName string `json:"tag_name,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float64 `json:"embedding,omitempty"`
	// Global popularity counter
	UseCount int `json:"use_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TagMasterQuery when eager-loading is set.
	Edges        TagMasterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TagMasterEdges holds the relations/edges for other nodes in the graph.
type TagMasterEdges struct {
	// UserUsages holds the value of the user_usages edge.
	UserUsages []*UserTagUsage `json:"user_usages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserUsagesOrErr returns the UserUsages value or an error if the edge
// was not loaded in eager-loading.
func (e TagMasterEdges) UserUsagesOrErr() ([]*UserTagUsage, error) {
	if e.loadedTypes[0] {
		return e.UserUsages, nil
	}
	return nil, &NotLoadedError{edge: "user_usages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TagMaster) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tagmaster.FieldEmbedding:
			values[i] = new([]byte)
		case tagmaster.FieldUseCount:
			values[i] = new(sql.NullInt64)
		case tagmaster.FieldID, tagmaster.FieldTagName:
			values[i] = new(sql.NullString)
		case tagmaster.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TagMaster fields.
func (_m *TagMaster) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tagmaster.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tagmaster.FieldTagName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tag_name", values[i])
			} else if value.Valid {
				_m.TagName = value.String
			}
		case tagmaster.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case tagmaster.FieldUseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field use_count", values[i])
			} else if value.Valid {
				_m.UseCount = int(value.Int64)
			}
		case tagmaster.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TagMaster.
// This includes values selected through modifiers, order, etc.
func (_m *TagMaster) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUserUsages queries the "user_usages" edge of the TagMaster entity.
func (_m *TagMaster) QueryUserUsages() *UserTagUsageQuery {
	return NewTagMasterClient(_m.config).QueryUserUsages(_m)
}

// Update returns a builder for updating this TagMaster.
// Note that you need to call TagMaster.Unwrap() before calling this method if this TagMaster
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TagMaster) Update() *TagMasterUpdateOne {
	return NewTagMasterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TagMaster entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TagMaster) Unwrap() *TagMaster {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TagMaster is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TagMaster) String() string {
	var builder strings.Builder
	builder.WriteString("TagMaster(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tag_name=")
	builder.WriteString(_m.TagName)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("use_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TagMasters is a parsable slice of TagMaster.
type TagMasters []*TagMaster
