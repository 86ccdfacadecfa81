package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a lesson or challenge completion.
// Idempotence lives in the progress aggregate, not here: the event log keeps
// one row per first-time completion, in mutation order.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the lesson session that produced the completion"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Catalog lesson id or challenge id"),
		field.String("lesson_title").
			Default("").
			Comment("Denormalized title for history display"),
		field.String("origin").
			NotEmpty().
			Comment("catalog or practice"),
		field.Int("xp_awarded").
			NonNegative().
			Comment("XP granted by this completion (0 on repeat completions never logged)"),
		field.Int("total_xp").
			NonNegative().
			Comment("Aggregate XP after this completion"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("origin"),
	}
}
