package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a badge unlock. Badges unlock at most once, so the log
// holds at most one row per badge id.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the lesson session whose completion unlocked the badge"),
		field.String("badge_id").
			NotEmpty().
			Comment("Badge id from the badge catalog"),
		field.String("badge_title").
			Default("").
			Comment("Denormalized title for history display"),
		field.String("reason").
			Default("").
			Comment("Human-readable condition that unlocked the badge"),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("badge_id"),
	}
}
