// Code generated by ent, DO NOT EDIT.

package summarycache

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the summarycache type in the database.
	Label = "summary_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entry_id"
	// FieldCacheKey holds the string denoting the cache_key field in the database.
	FieldCacheKey = "cache_key"
	// FieldCacheType holds the string denoting the cache_type field in the database.
	FieldCacheType = "cache_type"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldCandidateTags holds the string denoting the candidate_tags field in the database.
	FieldCandidateTags = "candidate_tags"
	// FieldCandidateCategories holds the string denoting the candidate_categories field in the database.
	FieldCandidateCategories = "candidate_categories"
	// FieldWtuCost holds the string denoting the wtu_cost field in the database.
	FieldWtuCost = "wtu_cost"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the summarycache in the database.
	Table = "summary_caches"
)

// Columns holds all SQL columns for summarycache fields.
var Columns = []string{
	FieldID,
	FieldCacheKey,
	FieldCacheType,
	FieldContentHash,
	FieldExtractedText,
	FieldSummary,
	FieldCandidateTags,
	FieldCandidateCategories,
	FieldWtuCost,
	FieldExpiresAt,
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
	// DefaultWtuCost holds the default value on creation for the "wtu_cost" field.
	DefaultWtuCost int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CacheType defines the type for the "cache_type" enum field.
type CacheType string

// CacheType values.
const (
	CacheTypeWebpage CacheType = "webpage"
	CacheTypeYoutube CacheType = "youtube"
	CacheTypePdf     CacheType = "pdf"
)

func (ct CacheType) String() string {
	return string(ct)
}

// CacheTypeValidator is a validator for the "cache_type" field enum values. It is called by the builders before save.
func CacheTypeValidator(ct CacheType) error {
	switch ct {
	case CacheTypeWebpage, CacheTypeYoutube, CacheTypePdf:
		return nil
	default:
		return fmt.Errorf("summarycache: invalid enum value for cache_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the SummaryCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCacheKey orders the results by the cache_key field.
func ByCacheKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheKey, opts...).ToFunc()
}

// ByCacheType orders the results by the cache_type field.
func ByCacheType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheType, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByWtuCost orders the results by the wtu_cost field.
func ByWtuCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWtuCost, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
