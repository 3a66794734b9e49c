// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/asengupta/quizdeck/ent/answerevent"
	"github.com/asengupta/quizdeck/ent/examevent"
	"github.com/asengupta/quizdeck/ent/examsnapshot"
	"github.com/asengupta/quizdeck/ent/schema"
	"github.com/asengupta/quizdeck/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[1].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[3].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescRetried is the schema descriptor for retried field.
	answereventDescRetried := answereventFields[7].Descriptor()
	// answerevent.DefaultRetried holds the default value on creation for the retried field.
	answerevent.DefaultRetried = answereventDescRetried.Default.(bool)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescExamID is the schema descriptor for exam_id field.
	exameventDescExamID := exameventFields[0].Descriptor()
	// examevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	examevent.ExamIDValidator = exameventDescExamID.Validators[0].(func(string) error)
	// exameventDescAction is the schema descriptor for action field.
	exameventDescAction := exameventFields[1].Descriptor()
	// examevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	examevent.ActionValidator = exameventDescAction.Validators[0].(func(string) error)
	// exameventDescTotalQuestions is the schema descriptor for total_questions field.
	exameventDescTotalQuestions := exameventFields[2].Descriptor()
	// examevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	examevent.DefaultTotalQuestions = exameventDescTotalQuestions.Default.(int)
	// exameventDescTotalAnswered is the schema descriptor for total_answered field.
	exameventDescTotalAnswered := exameventFields[3].Descriptor()
	// examevent.DefaultTotalAnswered holds the default value on creation for the total_answered field.
	examevent.DefaultTotalAnswered = exameventDescTotalAnswered.Default.(int)
	// exameventDescCorrectCount is the schema descriptor for correct_count field.
	exameventDescCorrectCount := exameventFields[4].Descriptor()
	// examevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	examevent.DefaultCorrectCount = exameventDescCorrectCount.Default.(int)
	// exameventDescPercentage is the schema descriptor for percentage field.
	exameventDescPercentage := exameventFields[5].Descriptor()
	// examevent.DefaultPercentage holds the default value on creation for the percentage field.
	examevent.DefaultPercentage = exameventDescPercentage.Default.(float64)
	// exameventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	exameventDescTimeSpentSecs := exameventFields[6].Descriptor()
	// examevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	examevent.DefaultTimeSpentSecs = exameventDescTimeSpentSecs.Default.(int)
	examsnapshotFields := schema.ExamSnapshot{}.Fields()
	_ = examsnapshotFields
	// examsnapshotDescExamID is the schema descriptor for exam_id field.
	examsnapshotDescExamID := examsnapshotFields[0].Descriptor()
	// examsnapshot.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	examsnapshot.ExamIDValidator = examsnapshotDescExamID.Validators[0].(func(string) error)
	// examsnapshotDescTimestamp is the schema descriptor for timestamp field.
	examsnapshotDescTimestamp := examsnapshotFields[2].Descriptor()
	// examsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	examsnapshot.DefaultTimestamp = examsnapshotDescTimestamp.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescTotal is the schema descriptor for total field.
	sessioneventDescTotal := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTotal holds the default value on creation for the total field.
	sessionevent.DefaultTotal = sessioneventDescTotal.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
