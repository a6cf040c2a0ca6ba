package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelEntry holds the schema definition for the model catalog.
// One row per concrete model; the catalog is the single source of truth for
// provider routing, tier membership and WTU pricing.
type ModelEntry struct {
	ent.Schema
}

// Fields of the ModelEntry.
func (ModelEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_id").
			Unique().
			Immutable(),
		field.String("alias").
			Unique().
			Comment("Stable identifier used by callers, e.g. 'gpt-4o-mini'"),
		field.Enum("provider").
			Values("openai", "anthropic", "google", "perplexity"),
		field.String("model_name").
			Comment("Provider-specific model identifier"),
		field.Enum("tier").
			Values("light", "standard", "premium", "search", "embedding"),
		field.Float("input_wtu_multiplier").
			Default(1.0),
		field.Float("output_wtu_multiplier").
			Default(1.0),
		field.Bool("is_active").
			Default(true),
		field.Float("price_input_per_million").
			Optional().
			Nillable(),
		field.Float("price_output_per_million").
			Optional().
			Nillable(),
		field.Int("sort_order").
			Default(0).
			Comment("Fallback order within a tier (ascending)"),
		field.Int("embedding_dims").
			Optional().
			Nillable().
			Comment("Vector dimension for embedding-tier models"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ModelEntry.
func (ModelEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Tier iteration in fallback order
		index.Fields("tier", "sort_order", "alias"),
	}
}
