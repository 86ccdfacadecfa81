package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressRecord is the single persisted learner progress aggregate.
// Exactly one row exists per database (keyed by the fixed record key);
// every save overwrites the full JSON payload rather than patching fields,
// so the durable record always matches the in-memory aggregate.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Fixed namespace key for the progress record"),
		field.JSON("data", map[string]any{}).
			Comment("Full UserProgress aggregate as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last overwrite time"),
	}
}
