package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records a session lifecycle action: created, resumed,
// submitted, or replaced by a retry-wrong session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("session_id").
			Comment("Backend quiz session id"),
		field.String("action").
			NotEmpty().
			Comment("created, resumed, submitted or retry"),
		field.String("question_type").
			Default("").
			Comment("CHOICE, OX or INITIALS"),
		field.Int("question_count").
			Default(0),
		field.Int("elapsed_secs").
			Default(0).
			Comment("Seconds from first question load, for submitted actions"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
