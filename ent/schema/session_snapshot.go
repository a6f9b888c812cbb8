package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot is the durable client-side view of one quiz session:
// which session was last played, the per-question progress marks, and the
// current position. The most recent row is the resume point after a page
// reload or process restart.
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("session_id").
			Comment("Backend quiz session id"),
		field.String("question_type").
			NotEmpty().
			Comment("CHOICE, OX or INITIALS"),
		field.JSON("progress", []string{}).
			Comment("One mark per question: O, X or empty for unanswered"),
		field.Int("position").
			Default(0).
			Comment("1-based position the user was on"),
		field.Bool("submitted").
			Default(false).
			Comment("Whether the session's answers were submitted"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").Unique(),
		index.Fields("updated_at"),
	}
}
