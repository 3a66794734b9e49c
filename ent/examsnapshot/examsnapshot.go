// Code generated by ent, DO NOT EDIT.

package examsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examsnapshot type in the database.
	Label = "exam_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExamID holds the string denoting the exam_id field in the database.
	FieldExamID = "exam_id"
	// FieldRemainingSeconds holds the string denoting the remaining_seconds field in the database.
	FieldRemainingSeconds = "remaining_seconds"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the examsnapshot in the database.
	Table = "exam_snapshots"
)

// Columns holds all SQL columns for examsnapshot fields.
var Columns = []string{
	FieldID,
	FieldExamID,
	FieldRemainingSeconds,
	FieldTimestamp,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	ExamIDValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the ExamSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExamID orders the results by the exam_id field.
func ByExamID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamID, opts...).ToFunc()
}

// ByRemainingSeconds orders the results by the remaining_seconds field.
func ByRemainingSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingSeconds, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
