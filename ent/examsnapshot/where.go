// Code generated by ent, DO NOT EDIT.

package examsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/asengupta/quizdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLTE(FieldID, id))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldExamID, v))
}

// RemainingSeconds applies equality check predicate on the "remaining_seconds" field. It's identical to RemainingSecondsEQ.
func RemainingSeconds(v int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldRemainingSeconds, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldContainsFold(FieldExamID, v))
}

// RemainingSecondsEQ applies the EQ predicate on the "remaining_seconds" field.
func RemainingSecondsEQ(v int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldRemainingSeconds, v))
}

// RemainingSecondsNEQ applies the NEQ predicate on the "remaining_seconds" field.
func RemainingSecondsNEQ(v int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNEQ(FieldRemainingSeconds, v))
}

// RemainingSecondsIn applies the In predicate on the "remaining_seconds" field.
func RemainingSecondsIn(vs ...int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldIn(FieldRemainingSeconds, vs...))
}

// RemainingSecondsNotIn applies the NotIn predicate on the "remaining_seconds" field.
func RemainingSecondsNotIn(vs ...int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNotIn(FieldRemainingSeconds, vs...))
}

// RemainingSecondsGT applies the GT predicate on the "remaining_seconds" field.
func RemainingSecondsGT(v int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGT(FieldRemainingSeconds, v))
}

// RemainingSecondsGTE applies the GTE predicate on the "remaining_seconds" field.
func RemainingSecondsGTE(v int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGTE(FieldRemainingSeconds, v))
}

// RemainingSecondsLT applies the LT predicate on the "remaining_seconds" field.
func RemainingSecondsLT(v int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLT(FieldRemainingSeconds, v))
}

// RemainingSecondsLTE applies the LTE predicate on the "remaining_seconds" field.
func RemainingSecondsLTE(v int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLTE(FieldRemainingSeconds, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamSnapshot) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamSnapshot) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamSnapshot) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.NotPredicates(p))
}
