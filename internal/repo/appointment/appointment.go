// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointment type in the database.
	Label = "appointment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldFacultyID holds the string denoting the faculty_id field in the database.
	FieldFacultyID = "faculty_id"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldStudentEmail holds the string denoting the student_email field in the database.
	FieldStudentEmail = "student_email"
	// FieldFacultyName holds the string denoting the faculty_name field in the database.
	FieldFacultyName = "faculty_name"
	// FieldFacultyEmail holds the string denoting the faculty_email field in the database.
	FieldFacultyEmail = "faculty_email"
	// FieldRequestedTime holds the string denoting the requested_time field in the database.
	FieldRequestedTime = "requested_time"
	// FieldRescheduleTime holds the string denoting the reschedule_time field in the database.
	FieldRescheduleTime = "reschedule_time"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMeetingLink holds the string denoting the meeting_link field in the database.
	FieldMeetingLink = "meeting_link"
	// FieldFacultyNotes holds the string denoting the faculty_notes field in the database.
	FieldFacultyNotes = "faculty_notes"
	// FieldNotesUpdatedAt holds the string denoting the notes_updated_at field in the database.
	FieldNotesUpdatedAt = "notes_updated_at"
	// FieldStudentFeedback holds the string denoting the student_feedback field in the database.
	FieldStudentFeedback = "student_feedback"
	// FieldStudentRating holds the string denoting the student_rating field in the database.
	FieldStudentRating = "student_rating"
	// FieldFeedbackSubmittedAt holds the string denoting the feedback_submitted_at field in the database.
	FieldFeedbackSubmittedAt = "feedback_submitted_at"
	// EdgeStudent holds the string denoting the student edge name in mutations.
	EdgeStudent = "student"
	// EdgeFaculty holds the string denoting the faculty edge name in mutations.
	EdgeFaculty = "faculty"
	// Table holds the table name of the appointment in the database.
	Table = "appointments"
	// StudentTable is the table that holds the student relation/edge.
	StudentTable = "appointments"
	// StudentInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	StudentInverseTable = "users"
	// StudentColumn is the table column denoting the student relation/edge.
	StudentColumn = "student_id"
	// FacultyTable is the table that holds the faculty relation/edge.
	FacultyTable = "appointments"
	// FacultyInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	FacultyInverseTable = "users"
	// FacultyColumn is the table column denoting the faculty relation/edge.
	FacultyColumn = "faculty_id"
)

// Columns holds all SQL columns for appointment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStudentID,
	FieldFacultyID,
	FieldStudentName,
	FieldStudentEmail,
	FieldFacultyName,
	FieldFacultyEmail,
	FieldRequestedTime,
	FieldRescheduleTime,
	FieldReason,
	FieldStatus,
	FieldMeetingLink,
	FieldFacultyNotes,
	FieldNotesUpdatedAt,
	FieldStudentFeedback,
	FieldStudentRating,
	FieldFeedbackSubmittedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	StudentNameValidator func(string) error
	// StudentEmailValidator is a validator for the "student_email" field. It is called by the builders before save.
	StudentEmailValidator func(string) error
	// FacultyNameValidator is a validator for the "faculty_name" field. It is called by the builders before save.
	FacultyNameValidator func(string) error
	// FacultyEmailValidator is a validator for the "faculty_email" field. It is called by the builders before save.
	FacultyEmailValidator func(string) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// MeetingLinkValidator is a validator for the "meeting_link" field. It is called by the builders before save.
	MeetingLinkValidator func(string) error
	// StudentRatingValidator is a validator for the "student_rating" field. It is called by the builders before save.
	StudentRatingValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusAccepted    Status = "accepted"
	StatusDeclined    Status = "declined"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusRescheduled, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Appointment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByFacultyID orders the results by the faculty_id field.
func ByFacultyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacultyID, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// ByStudentEmail orders the results by the student_email field.
func ByStudentEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentEmail, opts...).ToFunc()
}

// ByFacultyName orders the results by the faculty_name field.
func ByFacultyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacultyName, opts...).ToFunc()
}

// ByFacultyEmail orders the results by the faculty_email field.
func ByFacultyEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacultyEmail, opts...).ToFunc()
}

// ByRequestedTime orders the results by the requested_time field.
func ByRequestedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedTime, opts...).ToFunc()
}

// ByRescheduleTime orders the results by the reschedule_time field.
func ByRescheduleTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRescheduleTime, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMeetingLink orders the results by the meeting_link field.
func ByMeetingLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingLink, opts...).ToFunc()
}

// ByFacultyNotes orders the results by the faculty_notes field.
func ByFacultyNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacultyNotes, opts...).ToFunc()
}

// ByNotesUpdatedAt orders the results by the notes_updated_at field.
func ByNotesUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotesUpdatedAt, opts...).ToFunc()
}

// ByStudentFeedback orders the results by the student_feedback field.
func ByStudentFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentFeedback, opts...).ToFunc()
}

// ByStudentRating orders the results by the student_rating field.
func ByStudentRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentRating, opts...).ToFunc()
}

// ByFeedbackSubmittedAt orders the results by the feedback_submitted_at field.
func ByFeedbackSubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackSubmittedAt, opts...).ToFunc()
}

// ByStudentField orders the results by student field.
func ByStudentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudentStep(), sql.OrderByField(field, opts...))
	}
}

// ByFacultyField orders the results by faculty field.
func ByFacultyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacultyStep(), sql.OrderByField(field, opts...))
	}
}
func newStudentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, StudentTable, StudentColumn),
	)
}
func newFacultyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacultyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, FacultyTable, FacultyColumn),
	)
}
