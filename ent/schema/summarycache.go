package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SummaryCache is the content-addressed store of summarization results.
// It holds unpersonalized candidates; personalization is applied on read.
type SummaryCache struct {
	ent.Schema
}

// Fields of the SummaryCache.
func (SummaryCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("cache_key").
			Comment("Hash of source URL (webpage/youtube) or raw bytes (pdf)"),
		field.Enum("cache_type").
			Values("webpage", "youtube", "pdf"),
		field.String("content_hash").
			Comment("Hash of the extracted plaintext; detects changed content"),
		field.Text("extracted_text"),
		field.Text("summary"),
		field.JSON("candidate_tags", []string{}),
		field.JSON("candidate_categories", []string{}),
		field.Int("wtu_cost").
			Default(0).
			Comment("Sum of the three LLM calls that produced the entry"),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SummaryCache.
func (SummaryCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cache_key", "cache_type").
			Unique(),
		// Expiry sweep
		index.Fields("expires_at"),
	}
}
