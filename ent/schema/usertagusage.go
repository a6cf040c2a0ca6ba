package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserTagUsage tracks per-user tag history for personalization.
// Upserted whenever a user accepts a tag.
type UserTagUsage struct {
	ent.Schema
}

// Fields of the UserTagUsage.
func (UserTagUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("tag_id").
			Immutable(),
		field.Int("use_count").
			Default(1).
			Positive(),
		field.Time("last_used_at").
			Default(time.Now),
	}
}

// Edges of the UserTagUsage.
func (UserTagUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tag", TagMaster.Type).
			Ref("user_usages").
			Field("tag_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserTagUsage.
func (UserTagUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "tag_id").
			Unique(),
		// Recency lookups
		index.Fields("user_id", "last_used_at"),
	}
}
