package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single judged submission in either mode.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Learning session or exam this answer belongs to"),
		field.String("mode").
			NotEmpty().
			Comment("learning or exam"),
		field.String("question_id").
			NotEmpty().
			Comment("Question bank id"),
		field.String("kind").
			NotEmpty().
			Comment("Question kind"),
		field.String("topic").
			Comment("Topic classification"),
		field.String("user_answer").
			Comment("Display form of what the user submitted"),
		field.Bool("correct").
			Comment("Verdict at submission time"),
		field.Bool("retried").
			Default(false).
			Comment("Whether this submission followed a retry"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
