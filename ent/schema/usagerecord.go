package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageRecord holds the per-user-per-month WTU accumulator.
// All writes go through the billing accountant; rows are never deleted.
type UsageRecord struct {
	ent.Schema
}

// Fields of the UsageRecord.
func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Time("plan_month").
			Immutable().
			Comment("First day of the billing month (UTC)"),
		field.Int("allocated_quota").
			NonNegative(),
		field.Int("used_tokens_wtu").
			Default(0).
			NonNegative(),
		field.Int("remaining_tokens").
			NonNegative().
			Comment("Invariant: remaining = allocated - used"),
		field.Int("total_purchased").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the UsageRecord.
func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "plan_month").
			Unique(),
	}
}
