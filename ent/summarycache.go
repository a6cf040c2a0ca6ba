// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/summarycache"
)

// SummaryCache is the model entity for the SummaryCache schema.
type SummaryCache struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Hash of source URL (webpage/youtube) or raw bytes (pdf)
	CacheKey string `json:"cache_key,omitempty"`
	// CacheType holds the value of the "cache_type" field.
	CacheType summarycache.CacheType `json:"cache_type,omitempty"`
	// Hash of the extracted plaintext; detects changed content
	ContentHash string `json:"content_hash,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText string `json:"extracted_text,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// CandidateTags holds the value of the "candidate_tags" field.
	CandidateTags []string `json:"candidate_tags,omitempty"`
	// CandidateCategories holds the value of the "candidate_categories" field.
	CandidateCategories []string `json:"candidate_categories,omitempty"`
	// Sum of the three LLM calls that produced the entry
	WtuCost int `json:"wtu_cost,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SummaryCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summarycache.FieldCandidateTags, summarycache.FieldCandidateCategories:
			values[i] = new([]byte)
		case summarycache.FieldWtuCost:
			values[i] = new(sql.NullInt64)
		case summarycache.FieldID, summarycache.FieldCacheKey, summarycache.FieldCacheType, summarycache.FieldContentHash, summarycache.FieldExtractedText, summarycache.FieldSummary:
			values[i] = new(sql.NullString)
		case summarycache.FieldExpiresAt, summarycache.FieldCreatedAt, summarycache.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SummaryCache fields.
func (_m *SummaryCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summarycache.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case summarycache.FieldCacheKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cache_key", values[i])
			} else if value.Valid {
				_m.CacheKey = value.String
			}
		case summarycache.FieldCacheType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cache_type", values[i])
			} else if value.Valid {
				_m.CacheType = summarycache.CacheType(value.String)
			}
		case summarycache.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case summarycache.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = value.String
			}
		case summarycache.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case summarycache.FieldCandidateTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CandidateTags); err != nil {
					return fmt.Errorf("unmarshal field candidate_tags: %w", err)
				}
			}
		case summarycache.FieldCandidateCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CandidateCategories); err != nil {
					return fmt.Errorf("unmarshal field candidate_categories: %w", err)
				}
			}
		case summarycache.FieldWtuCost:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wtu_cost", values[i])
			} else if value.Valid {
				_m.WtuCost = int(value.Int64)
			}
		case summarycache.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case summarycache.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case summarycache.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SummaryCache.
// This includes values selected through modifiers, order, etc.
func (_m *SummaryCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SummaryCache.
// Note that you need to call SummaryCache.Unwrap() before calling this method if this SummaryCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SummaryCache) Update() *SummaryCacheUpdateOne {
	return NewSummaryCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SummaryCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SummaryCache) Unwrap() *SummaryCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SummaryCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SummaryCache) String() string {
	var builder strings.Builder
	builder.WriteString("SummaryCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cache_key=")
	builder.WriteString(_m.CacheKey)
	builder.WriteString(", ")
	builder.WriteString("cache_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheType))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("extracted_text=")
	builder.WriteString(_m.ExtractedText)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("candidate_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.CandidateTags))
	builder.WriteString(", ")
	builder.WriteString("candidate_categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.CandidateCategories))
	builder.WriteString(", ")
	builder.WriteString("wtu_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.WtuCost))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SummaryCaches is a parsable slice of SummaryCache.
type SummaryCaches []*SummaryCache
