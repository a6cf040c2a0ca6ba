// Code generated by ent, DO NOT EDIT.

package modelcalllog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clipdock/clipd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldRequestID, v))
}

// ModelAlias applies equality check predicate on the "model_alias" field. It's identical to ModelAliasEQ.
func ModelAlias(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldModelAlias, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldErrorMessage, v))
}

// FallbackTo applies equality check predicate on the "fallback_to" field. It's identical to FallbackToEQ.
func FallbackTo(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldFallbackTo, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldOutputTokens, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldLatencyMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContainsFold(FieldRequestID, v))
}

// ModelAliasEQ applies the EQ predicate on the "model_alias" field.
func ModelAliasEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldModelAlias, v))
}

// ModelAliasNEQ applies the NEQ predicate on the "model_alias" field.
func ModelAliasNEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldModelAlias, v))
}

// ModelAliasIn applies the In predicate on the "model_alias" field.
func ModelAliasIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldModelAlias, vs...))
}

// ModelAliasNotIn applies the NotIn predicate on the "model_alias" field.
func ModelAliasNotIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldModelAlias, vs...))
}

// ModelAliasGT applies the GT predicate on the "model_alias" field.
func ModelAliasGT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldModelAlias, v))
}

// ModelAliasGTE applies the GTE predicate on the "model_alias" field.
func ModelAliasGTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldModelAlias, v))
}

// ModelAliasLT applies the LT predicate on the "model_alias" field.
func ModelAliasLT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldModelAlias, v))
}

// ModelAliasLTE applies the LTE predicate on the "model_alias" field.
func ModelAliasLTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldModelAlias, v))
}

// ModelAliasContains applies the Contains predicate on the "model_alias" field.
func ModelAliasContains(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContains(FieldModelAlias, v))
}

// ModelAliasHasPrefix applies the HasPrefix predicate on the "model_alias" field.
func ModelAliasHasPrefix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasPrefix(FieldModelAlias, v))
}

// ModelAliasHasSuffix applies the HasSuffix predicate on the "model_alias" field.
func ModelAliasHasSuffix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasSuffix(FieldModelAlias, v))
}

// ModelAliasEqualFold applies the EqualFold predicate on the "model_alias" field.
func ModelAliasEqualFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEqualFold(FieldModelAlias, v))
}

// ModelAliasContainsFold applies the ContainsFold predicate on the "model_alias" field.
func ModelAliasContainsFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContainsFold(FieldModelAlias, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldTier, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FallbackToEQ applies the EQ predicate on the "fallback_to" field.
func FallbackToEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldFallbackTo, v))
}

// FallbackToNEQ applies the NEQ predicate on the "fallback_to" field.
func FallbackToNEQ(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldFallbackTo, v))
}

// FallbackToIn applies the In predicate on the "fallback_to" field.
func FallbackToIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldFallbackTo, vs...))
}

// FallbackToNotIn applies the NotIn predicate on the "fallback_to" field.
func FallbackToNotIn(vs ...string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldFallbackTo, vs...))
}

// FallbackToGT applies the GT predicate on the "fallback_to" field.
func FallbackToGT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldFallbackTo, v))
}

// FallbackToGTE applies the GTE predicate on the "fallback_to" field.
func FallbackToGTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldFallbackTo, v))
}

// FallbackToLT applies the LT predicate on the "fallback_to" field.
func FallbackToLT(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldFallbackTo, v))
}

// FallbackToLTE applies the LTE predicate on the "fallback_to" field.
func FallbackToLTE(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldFallbackTo, v))
}

// FallbackToContains applies the Contains predicate on the "fallback_to" field.
func FallbackToContains(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContains(FieldFallbackTo, v))
}

// FallbackToHasPrefix applies the HasPrefix predicate on the "fallback_to" field.
func FallbackToHasPrefix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasPrefix(FieldFallbackTo, v))
}

// FallbackToHasSuffix applies the HasSuffix predicate on the "fallback_to" field.
func FallbackToHasSuffix(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldHasSuffix(FieldFallbackTo, v))
}

// FallbackToIsNil applies the IsNil predicate on the "fallback_to" field.
func FallbackToIsNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIsNull(FieldFallbackTo))
}

// FallbackToNotNil applies the NotNil predicate on the "fallback_to" field.
func FallbackToNotNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotNull(FieldFallbackTo))
}

// FallbackToEqualFold applies the EqualFold predicate on the "fallback_to" field.
func FallbackToEqualFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEqualFold(FieldFallbackTo, v))
}

// FallbackToContainsFold applies the ContainsFold predicate on the "fallback_to" field.
func FallbackToContainsFold(v string) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldContainsFold(FieldFallbackTo, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldInputTokens, v))
}

// InputTokensIsNil applies the IsNil predicate on the "input_tokens" field.
func InputTokensIsNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIsNull(FieldInputTokens))
}

// InputTokensNotNil applies the NotNil predicate on the "input_tokens" field.
func InputTokensNotNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotNull(FieldInputTokens))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldOutputTokens, v))
}

// OutputTokensIsNil applies the IsNil predicate on the "output_tokens" field.
func OutputTokensIsNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIsNull(FieldOutputTokens))
}

// OutputTokensNotNil applies the NotNil predicate on the "output_tokens" field.
func OutputTokensNotNil() predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotNull(FieldOutputTokens))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldLatencyMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelCallLog) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelCallLog) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelCallLog) predicate.ModelCallLog {
	return predicate.ModelCallLog(sql.NotPredicates(p))
}
