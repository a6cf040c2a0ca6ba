// Code generated by ent, DO NOT EDIT.

package purchaseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldUserID, v))
}

// PlanMonth applies equality check predicate on the "plan_month" field. It's identical to PlanMonthEQ.
func PlanMonth(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldPlanMonth, v))
}

// TokenAmount applies equality check predicate on the "token_amount" field. It's identical to TokenAmountEQ.
func TokenAmount(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTokenAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCurrency, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTransactionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContainsFold(FieldUserID, v))
}

// PlanMonthEQ applies the EQ predicate on the "plan_month" field.
func PlanMonthEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldPlanMonth, v))
}

// PlanMonthNEQ applies the NEQ predicate on the "plan_month" field.
func PlanMonthNEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldPlanMonth, v))
}

// PlanMonthIn applies the In predicate on the "plan_month" field.
func PlanMonthIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldPlanMonth, vs...))
}

// PlanMonthNotIn applies the NotIn predicate on the "plan_month" field.
func PlanMonthNotIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldPlanMonth, vs...))
}

// PlanMonthGT applies the GT predicate on the "plan_month" field.
func PlanMonthGT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldPlanMonth, v))
}

// PlanMonthGTE applies the GTE predicate on the "plan_month" field.
func PlanMonthGTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldPlanMonth, v))
}

// PlanMonthLT applies the LT predicate on the "plan_month" field.
func PlanMonthLT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldPlanMonth, v))
}

// PlanMonthLTE applies the LTE predicate on the "plan_month" field.
func PlanMonthLTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldPlanMonth, v))
}

// TokenAmountEQ applies the EQ predicate on the "token_amount" field.
func TokenAmountEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTokenAmount, v))
}

// TokenAmountNEQ applies the NEQ predicate on the "token_amount" field.
func TokenAmountNEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldTokenAmount, v))
}

// TokenAmountIn applies the In predicate on the "token_amount" field.
func TokenAmountIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldTokenAmount, vs...))
}

// TokenAmountNotIn applies the NotIn predicate on the "token_amount" field.
func TokenAmountNotIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldTokenAmount, vs...))
}

// TokenAmountGT applies the GT predicate on the "token_amount" field.
func TokenAmountGT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldTokenAmount, v))
}

// TokenAmountGTE applies the GTE predicate on the "token_amount" field.
func TokenAmountGTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldTokenAmount, v))
}

// TokenAmountLT applies the LT predicate on the "token_amount" field.
func TokenAmountLT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldTokenAmount, v))
}

// TokenAmountLTE applies the LTE predicate on the "token_amount" field.
func TokenAmountLTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldTokenAmount, v))
}

// PurchaseTypeEQ applies the EQ predicate on the "purchase_type" field.
func PurchaseTypeEQ(v PurchaseType) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldPurchaseType, v))
}

// PurchaseTypeNEQ applies the NEQ predicate on the "purchase_type" field.
func PurchaseTypeNEQ(v PurchaseType) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldPurchaseType, v))
}

// PurchaseTypeIn applies the In predicate on the "purchase_type" field.
func PurchaseTypeIn(vs ...PurchaseType) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldPurchaseType, vs...))
}

// PurchaseTypeNotIn applies the NotIn predicate on the "purchase_type" field.
func PurchaseTypeNotIn(vs ...PurchaseType) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldPurchaseType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContainsFold(FieldCurrency, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDContains applies the Contains predicate on the "transaction_id" field.
func TransactionIDContains(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContains(FieldTransactionID, v))
}

// TransactionIDHasPrefix applies the HasPrefix predicate on the "transaction_id" field.
func TransactionIDHasPrefix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasPrefix(FieldTransactionID, v))
}

// TransactionIDHasSuffix applies the HasSuffix predicate on the "transaction_id" field.
func TransactionIDHasSuffix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasSuffix(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotNull(FieldTransactionID))
}

// TransactionIDEqualFold applies the EqualFold predicate on the "transaction_id" field.
func TransactionIDEqualFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEqualFold(FieldTransactionID, v))
}

// TransactionIDContainsFold applies the ContainsFold predicate on the "transaction_id" field.
func TransactionIDContainsFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContainsFold(FieldTransactionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.NotPredicates(p))
}
