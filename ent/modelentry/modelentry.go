// Code generated by ent, DO NOT EDIT.

package modelentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modelentry type in the database.
	Label = "model_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "model_id"
	// FieldAlias holds the string denoting the alias field in the database.
	FieldAlias = "alias"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldInputWtuMultiplier holds the string denoting the input_wtu_multiplier field in the database.
	FieldInputWtuMultiplier = "input_wtu_multiplier"
	// FieldOutputWtuMultiplier holds the string denoting the output_wtu_multiplier field in the database.
	FieldOutputWtuMultiplier = "output_wtu_multiplier"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldPriceInputPerMillion holds the string denoting the price_input_per_million field in the database.
	FieldPriceInputPerMillion = "price_input_per_million"
	// FieldPriceOutputPerMillion holds the string denoting the price_output_per_million field in the database.
	FieldPriceOutputPerMillion = "price_output_per_million"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldEmbeddingDims holds the string denoting the embedding_dims field in the database.
	FieldEmbeddingDims = "embedding_dims"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the modelentry in the database.
	Table = "model_entries"
)

// Columns holds all SQL columns for modelentry fields.
var Columns = []string{
	FieldID,
	FieldAlias,
	FieldProvider,
	FieldModelName,
	FieldTier,
	FieldInputWtuMultiplier,
	FieldOutputWtuMultiplier,
	FieldIsActive,
	FieldPriceInputPerMillion,
	FieldPriceOutputPerMillion,
	FieldSortOrder,
	FieldEmbeddingDims,
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
	// DefaultInputWtuMultiplier holds the default value on creation for the "input_wtu_multiplier" field.
	DefaultInputWtuMultiplier float64
	// DefaultOutputWtuMultiplier holds the default value on creation for the "output_wtu_multiplier" field.
	DefaultOutputWtuMultiplier float64
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Provider defines the type for the "provider" enum field.
type Provider string

// Provider values.
const (
	ProviderOpenai     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGoogle     Provider = "google"
	ProviderPerplexity Provider = "perplexity"
)

func (pr Provider) String() string {
	return string(pr)
}

// ProviderValidator is a validator for the "provider" field enum values. It is called by the builders before save.
func ProviderValidator(pr Provider) error {
	switch pr {
	case ProviderOpenai, ProviderAnthropic, ProviderGoogle, ProviderPerplexity:
		return nil
	default:
		return fmt.Errorf("modelentry: invalid enum value for provider field: %q", pr)
	}
}

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierLight     Tier = "light"
	TierStandard  Tier = "standard"
	TierPremium   Tier = "premium"
	TierSearch    Tier = "search"
	TierEmbedding Tier = "embedding"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierLight, TierStandard, TierPremium, TierSearch, TierEmbedding:
		return nil
	default:
		return fmt.Errorf("modelentry: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the ModelEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAlias orders the results by the alias field.
func ByAlias(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlias, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByInputWtuMultiplier orders the results by the input_wtu_multiplier field.
func ByInputWtuMultiplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputWtuMultiplier, opts...).ToFunc()
}

// ByOutputWtuMultiplier orders the results by the output_wtu_multiplier field.
func ByOutputWtuMultiplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputWtuMultiplier, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByPriceInputPerMillion orders the results by the price_input_per_million field.
func ByPriceInputPerMillion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceInputPerMillion, opts...).ToFunc()
}

// ByPriceOutputPerMillion orders the results by the price_output_per_million field.
func ByPriceOutputPerMillion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceOutputPerMillion, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByEmbeddingDims orders the results by the embedding_dims field.
func ByEmbeddingDims(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingDims, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
