package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamSnapshot is one autosaved capture of an in-progress exam. Snapshots
// exist to detect interrupted sessions on the next launch, not to resume
// them mid-exam.
type ExamSnapshot struct {
	ent.Schema
}

func (ExamSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("Exam session this snapshot belongs to"),
		field.Int("remaining_seconds").
			Comment("Countdown value at save time"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Answers, bookmarks, and countdown as JSON"),
	}
}

func (ExamSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("timestamp"),
	}
}
