package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records exam lifecycle transitions: start, submit, and
// time-up auto-submit, with the aggregate results on completion.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, submit, or time_up"),
		field.Int("total_questions").
			Default(0),
		field.Int("total_answered").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Float("percentage").
			Default(0),
		field.Int("time_spent_secs").
			Default(0),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
	}
}
