// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/clipdock/clipd/ent/modelcalllog"
	"github.com/clipdock/clipd/ent/modelentry"
	"github.com/clipdock/clipd/ent/purchaseevent"
	"github.com/clipdock/clipd/ent/schema"
	"github.com/clipdock/clipd/ent/summarycache"
	"github.com/clipdock/clipd/ent/tagmaster"
	"github.com/clipdock/clipd/ent/usagerecord"
	"github.com/clipdock/clipd/ent/usertagusage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	modelcalllogFields := schema.ModelCallLog{}.Fields()
	_ = modelcalllogFields
	// modelcalllogDescLatencyMs is the schema descriptor for latency_ms field.
	modelcalllogDescLatencyMs := modelcalllogFields[10].Descriptor()
	// modelcalllog.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	modelcalllog.DefaultLatencyMs = modelcalllogDescLatencyMs.Default.(int)
	// modelcalllogDescCreatedAt is the schema descriptor for created_at field.
	modelcalllogDescCreatedAt := modelcalllogFields[11].Descriptor()
	// modelcalllog.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelcalllog.DefaultCreatedAt = modelcalllogDescCreatedAt.Default.(func() time.Time)
	modelentryFields := schema.ModelEntry{}.Fields()
	_ = modelentryFields
	// modelentryDescInputWtuMultiplier is the schema descriptor for input_wtu_multiplier field.
	modelentryDescInputWtuMultiplier := modelentryFields[5].Descriptor()
	// modelentry.DefaultInputWtuMultiplier holds the default value on creation for the input_wtu_multiplier field.
	modelentry.DefaultInputWtuMultiplier = modelentryDescInputWtuMultiplier.Default.(float64)
	// modelentryDescOutputWtuMultiplier is the schema descriptor for output_wtu_multiplier field.
	modelentryDescOutputWtuMultiplier := modelentryFields[6].Descriptor()
	// modelentry.DefaultOutputWtuMultiplier holds the default value on creation for the output_wtu_multiplier field.
	modelentry.DefaultOutputWtuMultiplier = modelentryDescOutputWtuMultiplier.Default.(float64)
	// modelentryDescIsActive is the schema descriptor for is_active field.
	modelentryDescIsActive := modelentryFields[7].Descriptor()
	// modelentry.DefaultIsActive holds the default value on creation for the is_active field.
	modelentry.DefaultIsActive = modelentryDescIsActive.Default.(bool)
	// modelentryDescSortOrder is the schema descriptor for sort_order field.
	modelentryDescSortOrder := modelentryFields[10].Descriptor()
	// modelentry.DefaultSortOrder holds the default value on creation for the sort_order field.
	modelentry.DefaultSortOrder = modelentryDescSortOrder.Default.(int)
	// modelentryDescCreatedAt is the schema descriptor for created_at field.
	modelentryDescCreatedAt := modelentryFields[12].Descriptor()
	// modelentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelentry.DefaultCreatedAt = modelentryDescCreatedAt.Default.(func() time.Time)
	// modelentryDescUpdatedAt is the schema descriptor for updated_at field.
	modelentryDescUpdatedAt := modelentryFields[13].Descriptor()
	// modelentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelentry.DefaultUpdatedAt = modelentryDescUpdatedAt.Default.(func() time.Time)
	// modelentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelentry.UpdateDefaultUpdatedAt = modelentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	purchaseeventFields := schema.PurchaseEvent{}.Fields()
	_ = purchaseeventFields
	// purchaseeventDescTokenAmount is the schema descriptor for token_amount field.
	purchaseeventDescTokenAmount := purchaseeventFields[3].Descriptor()
	// purchaseevent.TokenAmountValidator is a validator for the "token_amount" field. It is called by the builders before save.
	purchaseevent.TokenAmountValidator = purchaseeventDescTokenAmount.Validators[0].(func(int) error)
	// purchaseeventDescCurrency is the schema descriptor for currency field.
	purchaseeventDescCurrency := purchaseeventFields[6].Descriptor()
	// purchaseevent.DefaultCurrency holds the default value on creation for the currency field.
	purchaseevent.DefaultCurrency = purchaseeventDescCurrency.Default.(string)
	// purchaseeventDescCreatedAt is the schema descriptor for created_at field.
	purchaseeventDescCreatedAt := purchaseeventFields[8].Descriptor()
	// purchaseevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	purchaseevent.DefaultCreatedAt = purchaseeventDescCreatedAt.Default.(func() time.Time)
	summarycacheFields := schema.SummaryCache{}.Fields()
	_ = summarycacheFields
	// summarycacheDescWtuCost is the schema descriptor for wtu_cost field.
	summarycacheDescWtuCost := summarycacheFields[8].Descriptor()
	// summarycache.DefaultWtuCost holds the default value on creation for the wtu_cost field.
	summarycache.DefaultWtuCost = summarycacheDescWtuCost.Default.(int)
	// summarycacheDescCreatedAt is the schema descriptor for created_at field.
	summarycacheDescCreatedAt := summarycacheFields[10].Descriptor()
	// summarycache.DefaultCreatedAt holds the default value on creation for the created_at field.
	summarycache.DefaultCreatedAt = summarycacheDescCreatedAt.Default.(func() time.Time)
	// summarycacheDescUpdatedAt is the schema descriptor for updated_at field.
	summarycacheDescUpdatedAt := summarycacheFields[11].Descriptor()
	// summarycache.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	summarycache.DefaultUpdatedAt = summarycacheDescUpdatedAt.Default.(func() time.Time)
	// summarycache.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	summarycache.UpdateDefaultUpdatedAt = summarycacheDescUpdatedAt.UpdateDefault.(func() time.Time)
	tagmasterFields := schema.TagMaster{}.Fields()
	_ = tagmasterFields
	// tagmasterDescUseCount is the schema descriptor for use_count field.
	tagmasterDescUseCount := tagmasterFields[3].Descriptor()
	// tagmaster.DefaultUseCount holds the default value on creation for the use_count field.
	tagmaster.DefaultUseCount = tagmasterDescUseCount.Default.(int)
	// tagmaster.UseCountValidator is a validator for the "use_count" field. It is called by the builders before save.
	tagmaster.UseCountValidator = tagmasterDescUseCount.Validators[0].(func(int) error)
	// tagmasterDescCreatedAt is the schema descriptor for created_at field.
	tagmasterDescCreatedAt := tagmasterFields[4].Descriptor()
	// tagmaster.DefaultCreatedAt holds the default value on creation for the created_at field.
	tagmaster.DefaultCreatedAt = tagmasterDescCreatedAt.Default.(func() time.Time)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescAllocatedQuota is the schema descriptor for allocated_quota field.
	usagerecordDescAllocatedQuota := usagerecordFields[3].Descriptor()
	// usagerecord.AllocatedQuotaValidator is a validator for the "allocated_quota" field. It is called by the builders before save.
	usagerecord.AllocatedQuotaValidator = usagerecordDescAllocatedQuota.Validators[0].(func(int) error)
	// usagerecordDescUsedTokensWtu is the schema descriptor for used_tokens_wtu field.
	usagerecordDescUsedTokensWtu := usagerecordFields[4].Descriptor()
	// usagerecord.DefaultUsedTokensWtu holds the default value on creation for the used_tokens_wtu field.
	usagerecord.DefaultUsedTokensWtu = usagerecordDescUsedTokensWtu.Default.(int)
	// usagerecord.UsedTokensWtuValidator is a validator for the "used_tokens_wtu" field. It is called by the builders before save.
	usagerecord.UsedTokensWtuValidator = usagerecordDescUsedTokensWtu.Validators[0].(func(int) error)
	// usagerecordDescRemainingTokens is the schema descriptor for remaining_tokens field.
	usagerecordDescRemainingTokens := usagerecordFields[5].Descriptor()
	// usagerecord.RemainingTokensValidator is a validator for the "remaining_tokens" field. It is called by the builders before save.
	usagerecord.RemainingTokensValidator = usagerecordDescRemainingTokens.Validators[0].(func(int) error)
	// usagerecordDescTotalPurchased is the schema descriptor for total_purchased field.
	usagerecordDescTotalPurchased := usagerecordFields[6].Descriptor()
	// usagerecord.DefaultTotalPurchased holds the default value on creation for the total_purchased field.
	usagerecord.DefaultTotalPurchased = usagerecordDescTotalPurchased.Default.(int)
	// usagerecord.TotalPurchasedValidator is a validator for the "total_purchased" field. It is called by the builders before save.
	usagerecord.TotalPurchasedValidator = usagerecordDescTotalPurchased.Validators[0].(func(int) error)
	// usagerecordDescCreatedAt is the schema descriptor for created_at field.
	usagerecordDescCreatedAt := usagerecordFields[7].Descriptor()
	// usagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagerecord.DefaultCreatedAt = usagerecordDescCreatedAt.Default.(func() time.Time)
	// usagerecordDescUpdatedAt is the schema descriptor for updated_at field.
	usagerecordDescUpdatedAt := usagerecordFields[8].Descriptor()
	// usagerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usagerecord.DefaultUpdatedAt = usagerecordDescUpdatedAt.Default.(func() time.Time)
	// usagerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usagerecord.UpdateDefaultUpdatedAt = usagerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	usertagusageFields := schema.UserTagUsage{}.Fields()
	_ = usertagusageFields
	// usertagusageDescUseCount is the schema descriptor for use_count field.
	usertagusageDescUseCount := usertagusageFields[3].Descriptor()
	// usertagusage.DefaultUseCount holds the default value on creation for the use_count field.
	usertagusage.DefaultUseCount = usertagusageDescUseCount.Default.(int)
	// usertagusage.UseCountValidator is a validator for the "use_count" field. It is called by the builders before save.
	usertagusage.UseCountValidator = usertagusageDescUseCount.Validators[0].(func(int) error)
	// usertagusageDescLastUsedAt is the schema descriptor for last_used_at field.
	usertagusageDescLastUsedAt := usertagusageFields[4].Descriptor()
	// usertagusage.DefaultLastUsedAt holds the default value on creation for the last_used_at field.
	usertagusage.DefaultLastUsedAt = usertagusageDescLastUsedAt.Default.(func() time.Time)
}
