package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PurchaseEvent is the append-only audit log of quota grants.
type PurchaseEvent struct {
	ent.Schema
}

// Fields of the PurchaseEvent.
func (PurchaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("purchase_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Time("plan_month").
			Immutable(),
		field.Int("token_amount").
			Positive(),
		field.Enum("purchase_type").
			Values("purchase", "bonus", "refund"),
		field.Enum("status").
			Values("pending", "completed", "failed", "refunded").
			Default("pending"),
		field.String("currency").
			Default("USD"),
		field.String("transaction_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PurchaseEvent.
func (PurchaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
