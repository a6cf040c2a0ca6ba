// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ModelCallLogsColumns holds the columns for the "model_call_logs" table.
	ModelCallLogsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "model_alias", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"light", "standard", "premium", "search", "embedding"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "fallback", "failed"}},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fallback_to", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ModelCallLogsTable holds the schema information for the "model_call_logs" table.
	ModelCallLogsTable = &schema.Table{
		Name:       "model_call_logs",
		Columns:    ModelCallLogsColumns,
		PrimaryKey: []*schema.Column{ModelCallLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelcalllog_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModelCallLogsColumns[1], ModelCallLogsColumns[11]},
			},
			{
				Name:    "modelcalllog_tier_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModelCallLogsColumns[3], ModelCallLogsColumns[11]},
			},
		},
	}
	// ModelEntriesColumns holds the columns for the "model_entries" table.
	ModelEntriesColumns = []*schema.Column{
		{Name: "model_id", Type: field.TypeString, Unique: true},
		{Name: "alias", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"openai", "anthropic", "google", "perplexity"}},
		{Name: "model_name", Type: field.TypeString},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"light", "standard", "premium", "search", "embedding"}},
		{Name: "input_wtu_multiplier", Type: field.TypeFloat64, Default: 1},
		{Name: "output_wtu_multiplier", Type: field.TypeFloat64, Default: 1},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "price_input_per_million", Type: field.TypeFloat64, Nullable: true},
		{Name: "price_output_per_million", Type: field.TypeFloat64, Nullable: true},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "embedding_dims", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelEntriesTable holds the schema information for the "model_entries" table.
	ModelEntriesTable = &schema.Table{
		Name:       "model_entries",
		Columns:    ModelEntriesColumns,
		PrimaryKey: []*schema.Column{ModelEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modelentry_tier_sort_order_alias",
				Unique:  false,
				Columns: []*schema.Column{ModelEntriesColumns[4], ModelEntriesColumns[10], ModelEntriesColumns[1]},
			},
		},
	}
	// PurchaseEventsColumns holds the columns for the "purchase_events" table.
	PurchaseEventsColumns = []*schema.Column{
		{Name: "purchase_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "plan_month", Type: field.TypeTime},
		{Name: "token_amount", Type: field.TypeInt},
		{Name: "purchase_type", Type: field.TypeEnum, Enums: []string{"purchase", "bonus", "refund"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed", "refunded"}, Default: "pending"},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "transaction_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PurchaseEventsTable holds the schema information for the "purchase_events" table.
	PurchaseEventsTable = &schema.Table{
		Name:       "purchase_events",
		Columns:    PurchaseEventsColumns,
		PrimaryKey: []*schema.Column{PurchaseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "purchaseevent_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[1], PurchaseEventsColumns[8]},
			},
		},
	}
	// SummaryCachesColumns holds the columns for the "summary_caches" table.
	SummaryCachesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "cache_key", Type: field.TypeString},
		{Name: "cache_type", Type: field.TypeEnum, Enums: []string{"webpage", "youtube", "pdf"}},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Size: 2147483647},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "candidate_tags", Type: field.TypeJSON},
		{Name: "candidate_categories", Type: field.TypeJSON},
		{Name: "wtu_cost", Type: field.TypeInt, Default: 0},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SummaryCachesTable holds the schema information for the "summary_caches" table.
	SummaryCachesTable = &schema.Table{
		Name:       "summary_caches",
		Columns:    SummaryCachesColumns,
		PrimaryKey: []*schema.Column{SummaryCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summarycache_cache_key_cache_type",
				Unique:  true,
				Columns: []*schema.Column{SummaryCachesColumns[1], SummaryCachesColumns[2]},
			},
			{
				Name:    "summarycache_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SummaryCachesColumns[9]},
			},
		},
	}
	// TagMastersColumns holds the columns for the "tag_masters" table.
	TagMastersColumns = []*schema.Column{
		{Name: "tag_id", Type: field.TypeString, Unique: true},
		{Name: "tag_name", Type: field.TypeString, Unique: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "use_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TagMastersTable holds the schema information for the "tag_masters" table.
	TagMastersTable = &schema.Table{
		Name:       "tag_masters",
		Columns:    TagMastersColumns,
		PrimaryKey: []*schema.Column{TagMastersColumns[0]},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "plan_month", Type: field.TypeTime},
		{Name: "allocated_quota", Type: field.TypeInt},
		{Name: "used_tokens_wtu", Type: field.TypeInt, Default: 0},
		{Name: "remaining_tokens", Type: field.TypeInt},
		{Name: "total_purchased", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_user_id_plan_month",
				Unique:  true,
				Columns: []*schema.Column{UsageRecordsColumns[1], UsageRecordsColumns[2]},
			},
		},
	}
	// UserTagUsagesColumns holds the columns for the "user_tag_usages" table.
	UserTagUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "use_count", Type: field.TypeInt, Default: 1},
		{Name: "last_used_at", Type: field.TypeTime},
		{Name: "tag_id", Type: field.TypeString},
	}
	// UserTagUsagesTable holds the schema information for the "user_tag_usages" table.
	UserTagUsagesTable = &schema.Table{
		Name:       "user_tag_usages",
		Columns:    UserTagUsagesColumns,
		PrimaryKey: []*schema.Column{UserTagUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_tag_usages_tag_masters_user_usages",
				Columns:    []*schema.Column{UserTagUsagesColumns[4]},
				RefColumns: []*schema.Column{TagMastersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usertagusage_user_id_tag_id",
				Unique:  true,
				Columns: []*schema.Column{UserTagUsagesColumns[1], UserTagUsagesColumns[4]},
			},
			{
				Name:    "usertagusage_user_id_last_used_at",
				Unique:  false,
				Columns: []*schema.Column{UserTagUsagesColumns[1], UserTagUsagesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ModelCallLogsTable,
		ModelEntriesTable,
		PurchaseEventsTable,
		SummaryCachesTable,
		TagMastersTable,
		UsageRecordsTable,
		UserTagUsagesTable,
	}
)

func init() {
	UserTagUsagesTable.ForeignKeys[0].RefTable = TagMastersTable
}
