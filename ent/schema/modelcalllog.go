package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelCallLog records every tiered-caller attempt for observability.
// One row per model attempt: success, fallback (more models remained) or
// failed (last model in the tier).
type ModelCallLog struct {
	ent.Schema
}

// Fields of the ModelCallLog.
func (ModelCallLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("request_id").
			Immutable().
			Comment("Groups the attempts of a single tiered call"),
		field.String("model_alias").
			Immutable(),
		field.Enum("tier").
			Values("light", "standard", "premium", "search", "embedding").
			Immutable(),
		field.Enum("status").
			Values("success", "fallback", "failed").
			Immutable(),
		field.String("error_type").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.String("fallback_to").
			Optional().
			Nillable().
			Comment("Next alias tried after this failure"),
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Int("latency_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ModelCallLog.
func (ModelCallLog) Indexes() []ent.Index {
	return []ent.Index{
		// Attempts of one tiered call in order
		index.Fields("request_id", "created_at"),
		index.Fields("tier", "created_at"),
	}
}
