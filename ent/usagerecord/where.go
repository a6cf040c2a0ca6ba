// Code generated by ent, DO NOT EDIT.

package usagerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUserID, v))
}

// PlanMonth applies equality check predicate on the "plan_month" field. It's identical to PlanMonthEQ.
func PlanMonth(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldPlanMonth, v))
}

// AllocatedQuota applies equality check predicate on the "allocated_quota" field. It's identical to AllocatedQuotaEQ.
func AllocatedQuota(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldAllocatedQuota, v))
}

// UsedTokensWtu applies equality check predicate on the "used_tokens_wtu" field. It's identical to UsedTokensWtuEQ.
func UsedTokensWtu(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUsedTokensWtu, v))
}

// RemainingTokens applies equality check predicate on the "remaining_tokens" field. It's identical to RemainingTokensEQ.
func RemainingTokens(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldRemainingTokens, v))
}

// TotalPurchased applies equality check predicate on the "total_purchased" field. It's identical to TotalPurchasedEQ.
func TotalPurchased(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldTotalPurchased, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldContainsFold(FieldUserID, v))
}

// PlanMonthEQ applies the EQ predicate on the "plan_month" field.
func PlanMonthEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldPlanMonth, v))
}

// PlanMonthNEQ applies the NEQ predicate on the "plan_month" field.
func PlanMonthNEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldPlanMonth, v))
}

// PlanMonthIn applies the In predicate on the "plan_month" field.
func PlanMonthIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldPlanMonth, vs...))
}

// PlanMonthNotIn applies the NotIn predicate on the "plan_month" field.
func PlanMonthNotIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldPlanMonth, vs...))
}

// PlanMonthGT applies the GT predicate on the "plan_month" field.
func PlanMonthGT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldPlanMonth, v))
}

// PlanMonthGTE applies the GTE predicate on the "plan_month" field.
func PlanMonthGTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldPlanMonth, v))
}

// PlanMonthLT applies the LT predicate on the "plan_month" field.
func PlanMonthLT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldPlanMonth, v))
}

// PlanMonthLTE applies the LTE predicate on the "plan_month" field.
func PlanMonthLTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldPlanMonth, v))
}

// AllocatedQuotaEQ applies the EQ predicate on the "allocated_quota" field.
func AllocatedQuotaEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldAllocatedQuota, v))
}

// AllocatedQuotaNEQ applies the NEQ predicate on the "allocated_quota" field.
func AllocatedQuotaNEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldAllocatedQuota, v))
}

// AllocatedQuotaIn applies the In predicate on the "allocated_quota" field.
func AllocatedQuotaIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldAllocatedQuota, vs...))
}

// AllocatedQuotaNotIn applies the NotIn predicate on the "allocated_quota" field.
func AllocatedQuotaNotIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldAllocatedQuota, vs...))
}

// AllocatedQuotaGT applies the GT predicate on the "allocated_quota" field.
func AllocatedQuotaGT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldAllocatedQuota, v))
}

// AllocatedQuotaGTE applies the GTE predicate on the "allocated_quota" field.
func AllocatedQuotaGTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldAllocatedQuota, v))
}

// AllocatedQuotaLT applies the LT predicate on the "allocated_quota" field.
func AllocatedQuotaLT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldAllocatedQuota, v))
}

// AllocatedQuotaLTE applies the LTE predicate on the "allocated_quota" field.
func AllocatedQuotaLTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldAllocatedQuota, v))
}

// UsedTokensWtuEQ applies the EQ predicate on the "used_tokens_wtu" field.
func UsedTokensWtuEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUsedTokensWtu, v))
}

// UsedTokensWtuNEQ applies the NEQ predicate on the "used_tokens_wtu" field.
func UsedTokensWtuNEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldUsedTokensWtu, v))
}

// UsedTokensWtuIn applies the In predicate on the "used_tokens_wtu" field.
func UsedTokensWtuIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldUsedTokensWtu, vs...))
}

// UsedTokensWtuNotIn applies the NotIn predicate on the "used_tokens_wtu" field.
func UsedTokensWtuNotIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldUsedTokensWtu, vs...))
}

// UsedTokensWtuGT applies the GT predicate on the "used_tokens_wtu" field.
func UsedTokensWtuGT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldUsedTokensWtu, v))
}

// UsedTokensWtuGTE applies the GTE predicate on the "used_tokens_wtu" field.
func UsedTokensWtuGTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldUsedTokensWtu, v))
}

// UsedTokensWtuLT applies the LT predicate on the "used_tokens_wtu" field.
func UsedTokensWtuLT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldUsedTokensWtu, v))
}

// UsedTokensWtuLTE applies the LTE predicate on the "used_tokens_wtu" field.
func UsedTokensWtuLTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldUsedTokensWtu, v))
}

// RemainingTokensEQ applies the EQ predicate on the "remaining_tokens" field.
func RemainingTokensEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldRemainingTokens, v))
}

// RemainingTokensNEQ applies the NEQ predicate on the "remaining_tokens" field.
func RemainingTokensNEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldRemainingTokens, v))
}

// RemainingTokensIn applies the In predicate on the "remaining_tokens" field.
func RemainingTokensIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldRemainingTokens, vs...))
}

// RemainingTokensNotIn applies the NotIn predicate on the "remaining_tokens" field.
func RemainingTokensNotIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldRemainingTokens, vs...))
}

// RemainingTokensGT applies the GT predicate on the "remaining_tokens" field.
func RemainingTokensGT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldRemainingTokens, v))
}

// RemainingTokensGTE applies the GTE predicate on the "remaining_tokens" field.
func RemainingTokensGTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldRemainingTokens, v))
}

// RemainingTokensLT applies the LT predicate on the "remaining_tokens" field.
func RemainingTokensLT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldRemainingTokens, v))
}

// RemainingTokensLTE applies the LTE predicate on the "remaining_tokens" field.
func RemainingTokensLTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldRemainingTokens, v))
}

// TotalPurchasedEQ applies the EQ predicate on the "total_purchased" field.
func TotalPurchasedEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldTotalPurchased, v))
}

// TotalPurchasedNEQ applies the NEQ predicate on the "total_purchased" field.
func TotalPurchasedNEQ(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldTotalPurchased, v))
}

// TotalPurchasedIn applies the In predicate on the "total_purchased" field.
func TotalPurchasedIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldTotalPurchased, vs...))
}

// TotalPurchasedNotIn applies the NotIn predicate on the "total_purchased" field.
func TotalPurchasedNotIn(vs ...int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldTotalPurchased, vs...))
}

// TotalPurchasedGT applies the GT predicate on the "total_purchased" field.
func TotalPurchasedGT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldTotalPurchased, v))
}

// TotalPurchasedGTE applies the GTE predicate on the "total_purchased" field.
func TotalPurchasedGTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldTotalPurchased, v))
}

// TotalPurchasedLT applies the LT predicate on the "total_purchased" field.
func TotalPurchasedLT(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldTotalPurchased, v))
}

// TotalPurchasedLTE applies the LTE predicate on the "total_purchased" field.
func TotalPurchasedLTE(v int) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldTotalPurchased, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UsageRecord {
	return predicate.UsageRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageRecord) predicate.UsageRecord {
	return predicate.UsageRecord(sql.NotPredicates(p))
}
