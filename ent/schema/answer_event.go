package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered question within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("session_id").
			Comment("Backend quiz session id"),
		field.Int64("question_id").
			Comment("Backend question id"),
		field.Int("position").
			Comment("1-based position within the session"),
		field.String("picked").
			Comment("The user's UI-level pick: O/X mark, choice index or typed answer"),
		field.String("verdict").
			Comment("O for correct, X for incorrect"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from question display to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
