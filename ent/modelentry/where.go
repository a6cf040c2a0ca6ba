// Code generated by ent, DO NOT EDIT.

package modelentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldContainsFold(FieldID, id))
}

// Alias applies equality check predicate on the "alias" field. It's identical to AliasEQ.
func Alias(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldAlias, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldModelName, v))
}

// InputWtuMultiplier applies equality check predicate on the "input_wtu_multiplier" field. It's identical to InputWtuMultiplierEQ.
func InputWtuMultiplier(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldInputWtuMultiplier, v))
}

// OutputWtuMultiplier applies equality check predicate on the "output_wtu_multiplier" field. It's identical to OutputWtuMultiplierEQ.
func OutputWtuMultiplier(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldOutputWtuMultiplier, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldIsActive, v))
}

// PriceInputPerMillion applies equality check predicate on the "price_input_per_million" field. It's identical to PriceInputPerMillionEQ.
func PriceInputPerMillion(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldPriceInputPerMillion, v))
}

// PriceOutputPerMillion applies equality check predicate on the "price_output_per_million" field. It's identical to PriceOutputPerMillionEQ.
func PriceOutputPerMillion(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldPriceOutputPerMillion, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldSortOrder, v))
}

// EmbeddingDims applies equality check predicate on the "embedding_dims" field. It's identical to EmbeddingDimsEQ.
func EmbeddingDims(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldEmbeddingDims, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// AliasEQ applies the EQ predicate on the "alias" field.
func AliasEQ(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldAlias, v))
}

// AliasNEQ applies the NEQ predicate on the "alias" field.
func AliasNEQ(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldAlias, v))
}

// AliasIn applies the In predicate on the "alias" field.
func AliasIn(vs ...string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldAlias, vs...))
}

// AliasNotIn applies the NotIn predicate on the "alias" field.
func AliasNotIn(vs ...string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldAlias, vs...))
}

// AliasGT applies the GT predicate on the "alias" field.
func AliasGT(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldAlias, v))
}

// AliasGTE applies the GTE predicate on the "alias" field.
func AliasGTE(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldAlias, v))
}

// AliasLT applies the LT predicate on the "alias" field.
func AliasLT(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldAlias, v))
}

// AliasLTE applies the LTE predicate on the "alias" field.
func AliasLTE(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldAlias, v))
}

// AliasContains applies the Contains predicate on the "alias" field.
func AliasContains(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldContains(FieldAlias, v))
}

// AliasHasPrefix applies the HasPrefix predicate on the "alias" field.
func AliasHasPrefix(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldHasPrefix(FieldAlias, v))
}

// AliasHasSuffix applies the HasSuffix predicate on the "alias" field.
func AliasHasSuffix(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldHasSuffix(FieldAlias, v))
}

// AliasEqualFold applies the EqualFold predicate on the "alias" field.
func AliasEqualFold(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEqualFold(FieldAlias, v))
}

// AliasContainsFold applies the ContainsFold predicate on the "alias" field.
func AliasContainsFold(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldContainsFold(FieldAlias, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldProvider, vs...))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldContainsFold(FieldModelName, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldTier, vs...))
}

// InputWtuMultiplierEQ applies the EQ predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldInputWtuMultiplier, v))
}

// InputWtuMultiplierNEQ applies the NEQ predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierNEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldInputWtuMultiplier, v))
}

// InputWtuMultiplierIn applies the In predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldInputWtuMultiplier, vs...))
}

// InputWtuMultiplierNotIn applies the NotIn predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierNotIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldInputWtuMultiplier, vs...))
}

// InputWtuMultiplierGT applies the GT predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierGT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldInputWtuMultiplier, v))
}

// InputWtuMultiplierGTE applies the GTE predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierGTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldInputWtuMultiplier, v))
}

// InputWtuMultiplierLT applies the LT predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierLT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldInputWtuMultiplier, v))
}

// InputWtuMultiplierLTE applies the LTE predicate on the "input_wtu_multiplier" field.
func InputWtuMultiplierLTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldInputWtuMultiplier, v))
}

// OutputWtuMultiplierEQ applies the EQ predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldOutputWtuMultiplier, v))
}

// OutputWtuMultiplierNEQ applies the NEQ predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierNEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldOutputWtuMultiplier, v))
}

// OutputWtuMultiplierIn applies the In predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldOutputWtuMultiplier, vs...))
}

// OutputWtuMultiplierNotIn applies the NotIn predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierNotIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldOutputWtuMultiplier, vs...))
}

// OutputWtuMultiplierGT applies the GT predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierGT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldOutputWtuMultiplier, v))
}

// OutputWtuMultiplierGTE applies the GTE predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierGTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldOutputWtuMultiplier, v))
}

// OutputWtuMultiplierLT applies the LT predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierLT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldOutputWtuMultiplier, v))
}

// OutputWtuMultiplierLTE applies the LTE predicate on the "output_wtu_multiplier" field.
func OutputWtuMultiplierLTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldOutputWtuMultiplier, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldIsActive, v))
}

// PriceInputPerMillionEQ applies the EQ predicate on the "price_input_per_million" field.
func PriceInputPerMillionEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldPriceInputPerMillion, v))
}

// PriceInputPerMillionNEQ applies the NEQ predicate on the "price_input_per_million" field.
func PriceInputPerMillionNEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldPriceInputPerMillion, v))
}

// PriceInputPerMillionIn applies the In predicate on the "price_input_per_million" field.
func PriceInputPerMillionIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldPriceInputPerMillion, vs...))
}

// PriceInputPerMillionNotIn applies the NotIn predicate on the "price_input_per_million" field.
func PriceInputPerMillionNotIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldPriceInputPerMillion, vs...))
}

// PriceInputPerMillionGT applies the GT predicate on the "price_input_per_million" field.
func PriceInputPerMillionGT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldPriceInputPerMillion, v))
}

// PriceInputPerMillionGTE applies the GTE predicate on the "price_input_per_million" field.
func PriceInputPerMillionGTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldPriceInputPerMillion, v))
}

// PriceInputPerMillionLT applies the LT predicate on the "price_input_per_million" field.
func PriceInputPerMillionLT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldPriceInputPerMillion, v))
}

// PriceInputPerMillionLTE applies the LTE predicate on the "price_input_per_million" field.
func PriceInputPerMillionLTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldPriceInputPerMillion, v))
}

// PriceInputPerMillionIsNil applies the IsNil predicate on the "price_input_per_million" field.
func PriceInputPerMillionIsNil() predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIsNull(FieldPriceInputPerMillion))
}

// PriceInputPerMillionNotNil applies the NotNil predicate on the "price_input_per_million" field.
func PriceInputPerMillionNotNil() predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotNull(FieldPriceInputPerMillion))
}

// PriceOutputPerMillionEQ applies the EQ predicate on the "price_output_per_million" field.
func PriceOutputPerMillionEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldPriceOutputPerMillion, v))
}

// PriceOutputPerMillionNEQ applies the NEQ predicate on the "price_output_per_million" field.
func PriceOutputPerMillionNEQ(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldPriceOutputPerMillion, v))
}

// PriceOutputPerMillionIn applies the In predicate on the "price_output_per_million" field.
func PriceOutputPerMillionIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldPriceOutputPerMillion, vs...))
}

// PriceOutputPerMillionNotIn applies the NotIn predicate on the "price_output_per_million" field.
func PriceOutputPerMillionNotIn(vs ...float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldPriceOutputPerMillion, vs...))
}

// PriceOutputPerMillionGT applies the GT predicate on the "price_output_per_million" field.
func PriceOutputPerMillionGT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldPriceOutputPerMillion, v))
}

// PriceOutputPerMillionGTE applies the GTE predicate on the "price_output_per_million" field.
func PriceOutputPerMillionGTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldPriceOutputPerMillion, v))
}

// PriceOutputPerMillionLT applies the LT predicate on the "price_output_per_million" field.
func PriceOutputPerMillionLT(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldPriceOutputPerMillion, v))
}

// PriceOutputPerMillionLTE applies the LTE predicate on the "price_output_per_million" field.
func PriceOutputPerMillionLTE(v float64) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldPriceOutputPerMillion, v))
}

// PriceOutputPerMillionIsNil applies the IsNil predicate on the "price_output_per_million" field.
func PriceOutputPerMillionIsNil() predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIsNull(FieldPriceOutputPerMillion))
}

// PriceOutputPerMillionNotNil applies the NotNil predicate on the "price_output_per_million" field.
func PriceOutputPerMillionNotNil() predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotNull(FieldPriceOutputPerMillion))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldSortOrder, v))
}

// EmbeddingDimsEQ applies the EQ predicate on the "embedding_dims" field.
func EmbeddingDimsEQ(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldEmbeddingDims, v))
}

// EmbeddingDimsNEQ applies the NEQ predicate on the "embedding_dims" field.
func EmbeddingDimsNEQ(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldEmbeddingDims, v))
}

// EmbeddingDimsIn applies the In predicate on the "embedding_dims" field.
func EmbeddingDimsIn(vs ...int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldEmbeddingDims, vs...))
}

// EmbeddingDimsNotIn applies the NotIn predicate on the "embedding_dims" field.
func EmbeddingDimsNotIn(vs ...int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldEmbeddingDims, vs...))
}

// EmbeddingDimsGT applies the GT predicate on the "embedding_dims" field.
func EmbeddingDimsGT(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldEmbeddingDims, v))
}

// EmbeddingDimsGTE applies the GTE predicate on the "embedding_dims" field.
func EmbeddingDimsGTE(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldEmbeddingDims, v))
}

// EmbeddingDimsLT applies the LT predicate on the "embedding_dims" field.
func EmbeddingDimsLT(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldEmbeddingDims, v))
}

// EmbeddingDimsLTE applies the LTE predicate on the "embedding_dims" field.
func EmbeddingDimsLTE(v int) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldEmbeddingDims, v))
}

// EmbeddingDimsIsNil applies the IsNil predicate on the "embedding_dims" field.
func EmbeddingDimsIsNil() predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIsNull(FieldEmbeddingDims))
}

// EmbeddingDimsNotNil applies the NotNil predicate on the "embedding_dims" field.
func EmbeddingDimsNotNil() predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotNull(FieldEmbeddingDims))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModelEntry {
	return predicate.ModelEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelEntry) predicate.ModelEntry {
	return predicate.ModelEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelEntry) predicate.ModelEntry {
	return predicate.ModelEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelEntry) predicate.ModelEntry {
	return predicate.ModelEntry(sql.NotPredicates(p))
}
