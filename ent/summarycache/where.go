// Code generated by ent, DO NOT EDIT.

package summarycache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContainsFold(FieldID, id))
}

// CacheKey applies equality check predicate on the "cache_key" field. It's identical to CacheKeyEQ.
func CacheKey(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldCacheKey, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldContentHash, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldExtractedText, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldSummary, v))
}

// WtuCost applies equality check predicate on the "wtu_cost" field. It's identical to WtuCostEQ.
func WtuCost(v int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldWtuCost, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldUpdatedAt, v))
}

// CacheKeyEQ applies the EQ predicate on the "cache_key" field.
func CacheKeyEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldCacheKey, v))
}

// CacheKeyNEQ applies the NEQ predicate on the "cache_key" field.
func CacheKeyNEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldCacheKey, v))
}

// CacheKeyIn applies the In predicate on the "cache_key" field.
func CacheKeyIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldCacheKey, vs...))
}

// CacheKeyNotIn applies the NotIn predicate on the "cache_key" field.
func CacheKeyNotIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldCacheKey, vs...))
}

// CacheKeyGT applies the GT predicate on the "cache_key" field.
func CacheKeyGT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldCacheKey, v))
}

// CacheKeyGTE applies the GTE predicate on the "cache_key" field.
func CacheKeyGTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldCacheKey, v))
}

// CacheKeyLT applies the LT predicate on the "cache_key" field.
func CacheKeyLT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldCacheKey, v))
}

// CacheKeyLTE applies the LTE predicate on the "cache_key" field.
func CacheKeyLTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldCacheKey, v))
}

// CacheKeyContains applies the Contains predicate on the "cache_key" field.
func CacheKeyContains(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContains(FieldCacheKey, v))
}

// CacheKeyHasPrefix applies the HasPrefix predicate on the "cache_key" field.
func CacheKeyHasPrefix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasPrefix(FieldCacheKey, v))
}

// CacheKeyHasSuffix applies the HasSuffix predicate on the "cache_key" field.
func CacheKeyHasSuffix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasSuffix(FieldCacheKey, v))
}

// CacheKeyEqualFold applies the EqualFold predicate on the "cache_key" field.
func CacheKeyEqualFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEqualFold(FieldCacheKey, v))
}

// CacheKeyContainsFold applies the ContainsFold predicate on the "cache_key" field.
func CacheKeyContainsFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContainsFold(FieldCacheKey, v))
}

// CacheTypeEQ applies the EQ predicate on the "cache_type" field.
func CacheTypeEQ(v CacheType) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldCacheType, v))
}

// CacheTypeNEQ applies the NEQ predicate on the "cache_type" field.
func CacheTypeNEQ(v CacheType) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldCacheType, v))
}

// CacheTypeIn applies the In predicate on the "cache_type" field.
func CacheTypeIn(vs ...CacheType) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldCacheType, vs...))
}

// CacheTypeNotIn applies the NotIn predicate on the "cache_type" field.
func CacheTypeNotIn(vs ...CacheType) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldCacheType, vs...))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContainsFold(FieldContentHash, v))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContainsFold(FieldExtractedText, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContainsFold(FieldSummary, v))
}

// WtuCostEQ applies the EQ predicate on the "wtu_cost" field.
func WtuCostEQ(v int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldWtuCost, v))
}

// WtuCostNEQ applies the NEQ predicate on the "wtu_cost" field.
func WtuCostNEQ(v int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldWtuCost, v))
}

// WtuCostIn applies the In predicate on the "wtu_cost" field.
func WtuCostIn(vs ...int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldWtuCost, vs...))
}

// WtuCostNotIn applies the NotIn predicate on the "wtu_cost" field.
func WtuCostNotIn(vs ...int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldWtuCost, vs...))
}

// WtuCostGT applies the GT predicate on the "wtu_cost" field.
func WtuCostGT(v int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldWtuCost, v))
}

// WtuCostGTE applies the GTE predicate on the "wtu_cost" field.
func WtuCostGTE(v int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldWtuCost, v))
}

// WtuCostLT applies the LT predicate on the "wtu_cost" field.
func WtuCostLT(v int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldWtuCost, v))
}

// WtuCostLTE applies the LTE predicate on the "wtu_cost" field.
func WtuCostLTE(v int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldWtuCost, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SummaryCache) predicate.SummaryCache {
	return predicate.SummaryCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SummaryCache) predicate.SummaryCache {
	return predicate.SummaryCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SummaryCache) predicate.SummaryCache {
	return predicate.SummaryCache(sql.NotPredicates(p))
}
