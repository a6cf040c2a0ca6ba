package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// TagMaster is the global tag dictionary. Rows are created on demand the
// first time any user accepts a tag; embeddings are backfilled lazily.
type TagMaster struct {
	ent.Schema
}

// Fields of the TagMaster.
func (TagMaster) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tag_id").
			Unique().
			Immutable(),
		field.String("tag_name").
			Unique().
			Comment("Case-normalized (lower) tag text"),
		field.JSON("embedding", []float64{}).
			Optional(),
		field.Int("use_count").
			Default(0).
			NonNegative().
			Comment("Global popularity counter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TagMaster.
func (TagMaster) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user_usages", UserTagUsage.Type),
	}
}
