// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/modelentry"
)

// ModelEntry is the model entity for the ModelEntry schema.
type ModelEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stable identifier used by callers, e.g. 'gpt-4o-mini'
	Alias string `json:"alias,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider modelentry.Provider `json:"provider,omitempty"`
	// Provider-specific model identifier
	ModelName string `json:"model_name,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier modelentry.Tier `json:"tier,omitempty"`
	// InputWtuMultiplier holds the value of the "input_wtu_multiplier" field.
	InputWtuMultiplier float64 `json:"input_wtu_multiplier,omitempty"`
	// OutputWtuMultiplier holds the value of the "output_wtu_multiplier" field.
	OutputWtuMultiplier float64 `json:"output_wtu_multiplier,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// PriceInputPerMillion holds the value of the "price_input_per_million" field.
	PriceInputPerMillion *float64 `json:"price_input_per_million,omitempty"`
	// PriceOutputPerMillion holds the value of the "price_output_per_million" field.
	PriceOutputPerMillion *float64 `json:"price_output_per_million,omitempty"`
	// Fallback order within a tier (ascending)
	SortOrder int `json:"sort_order,omitempty"`
	// Vector dimension for embedding-tier models
	EmbeddingDims *int `json:"embedding_dims,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelentry.FieldIsActive:
			values[i] = new(sql.NullBool)
		case modelentry.FieldInputWtuMultiplier, modelentry.FieldOutputWtuMultiplier, modelentry.FieldPriceInputPerMillion, modelentry.FieldPriceOutputPerMillion:
			values[i] = new(sql.NullFloat64)
		case modelentry.FieldSortOrder, modelentry.FieldEmbeddingDims:
			values[i] = new(sql.NullInt64)
		case modelentry.FieldID, modelentry.FieldAlias, modelentry.FieldProvider, modelentry.FieldModelName, modelentry.FieldTier:
			values[i] = new(sql.NullString)
		case modelentry.FieldCreatedAt, modelentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelEntry fields.
func (_m *ModelEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case modelentry.FieldAlias:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alias", values[i])
			} else if value.Valid {
				_m.Alias = value.String
			}
		case modelentry.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = modelentry.Provider(value.String)
			}
		case modelentry.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case modelentry.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = modelentry.Tier(value.String)
			}
		case modelentry.FieldInputWtuMultiplier:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field input_wtu_multiplier", values[i])
			} else if value.Valid {
				_m.InputWtuMultiplier = value.Float64
			}
		case modelentry.FieldOutputWtuMultiplier:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field output_wtu_multiplier", values[i])
			} else if value.Valid {
				_m.OutputWtuMultiplier = value.Float64
			}
		case modelentry.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case modelentry.FieldPriceInputPerMillion:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_input_per_million", values[i])
			} else if value.Valid {
				_m.PriceInputPerMillion = new(float64)
				*_m.PriceInputPerMillion = value.Float64
			}
		case modelentry.FieldPriceOutputPerMillion:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_output_per_million", values[i])
			} else if value.Valid {
				_m.PriceOutputPerMillion = new(float64)
				*_m.PriceOutputPerMillion = value.Float64
			}
		case modelentry.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case modelentry.FieldEmbeddingDims:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_dims", values[i])
			} else if value.Valid {
				_m.EmbeddingDims = new(int)
				*_m.EmbeddingDims = int(value.Int64)
			}
		case modelentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case modelentry.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ModelEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ModelEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelEntry.
// Note that you need to call ModelEntry.Unwrap() before calling this method if this ModelEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelEntry) Update() *ModelEntryUpdateOne {
	return NewModelEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelEntry) Unwrap() *ModelEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ModelEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alias=")
	builder.WriteString(_m.Alias)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("input_wtu_multiplier=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputWtuMultiplier))
	builder.WriteString(", ")
	builder.WriteString("output_wtu_multiplier=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputWtuMultiplier))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.PriceInputPerMillion; v != nil {
		builder.WriteString("price_input_per_million=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PriceOutputPerMillion; v != nil {
		builder.WriteString("price_output_per_million=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	if v := _m.EmbeddingDims; v != nil {
		builder.WriteString("embedding_dims=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelEntries is a parsable slice of ModelEntry.
type ModelEntries []*ModelEntry
