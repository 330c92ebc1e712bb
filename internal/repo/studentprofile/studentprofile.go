// Code generated by ent, DO NOT EDIT.

package studentprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the studentprofile type in the database.
	Label = "student_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldStudentNumber holds the string denoting the student_number field in the database.
	FieldStudentNumber = "student_number"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldMajor holds the string denoting the major field in the database.
	FieldMajor = "major"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldGpa holds the string denoting the gpa field in the database.
	FieldGpa = "gpa"
	// FieldExpectedGraduation holds the string denoting the expected_graduation field in the database.
	FieldExpectedGraduation = "expected_graduation"
	// FieldPreferredDepartments holds the string denoting the preferred_departments field in the database.
	FieldPreferredDepartments = "preferred_departments"
	// FieldConsultationTypes holds the string denoting the consultation_types field in the database.
	FieldConsultationTypes = "consultation_types"
	// FieldTotalAppointments holds the string denoting the total_appointments field in the database.
	FieldTotalAppointments = "total_appointments"
	// FieldCompletedAppointments holds the string denoting the completed_appointments field in the database.
	FieldCompletedAppointments = "completed_appointments"
	// FieldCancelledAppointments holds the string denoting the cancelled_appointments field in the database.
	FieldCancelledAppointments = "cancelled_appointments"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the studentprofile in the database.
	Table = "student_profiles"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "student_profiles"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for studentprofile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldProfileID,
	FieldStudentNumber,
	FieldYear,
	FieldMajor,
	FieldDepartment,
	FieldGpa,
	FieldExpectedGraduation,
	FieldPreferredDepartments,
	FieldConsultationTypes,
	FieldTotalAppointments,
	FieldCompletedAppointments,
	FieldCancelledAppointments,
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
	// DefaultProfileID holds the default value on creation for the "profile_id" field.
	DefaultProfileID string
	// ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	ProfileIDValidator func(string) error
	// StudentNumberValidator is a validator for the "student_number" field. It is called by the builders before save.
	StudentNumberValidator func(string) error
	// YearValidator is a validator for the "year" field. It is called by the builders before save.
	YearValidator func(string) error
	// MajorValidator is a validator for the "major" field. It is called by the builders before save.
	MajorValidator func(string) error
	// DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	DepartmentValidator func(string) error
	// GpaValidator is a validator for the "gpa" field. It is called by the builders before save.
	GpaValidator func(float64) error
	// ExpectedGraduationValidator is a validator for the "expected_graduation" field. It is called by the builders before save.
	ExpectedGraduationValidator func(string) error
	// DefaultTotalAppointments holds the default value on creation for the "total_appointments" field.
	DefaultTotalAppointments int
	// TotalAppointmentsValidator is a validator for the "total_appointments" field. It is called by the builders before save.
	TotalAppointmentsValidator func(int) error
	// DefaultCompletedAppointments holds the default value on creation for the "completed_appointments" field.
	DefaultCompletedAppointments int
	// CompletedAppointmentsValidator is a validator for the "completed_appointments" field. It is called by the builders before save.
	CompletedAppointmentsValidator func(int) error
	// DefaultCancelledAppointments holds the default value on creation for the "cancelled_appointments" field.
	DefaultCancelledAppointments int
	// CancelledAppointmentsValidator is a validator for the "cancelled_appointments" field. It is called by the builders before save.
	CancelledAppointmentsValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StudentProfile queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByStudentNumber orders the results by the student_number field.
func ByStudentNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentNumber, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByMajor orders the results by the major field.
func ByMajor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajor, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByGpa orders the results by the gpa field.
func ByGpa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGpa, opts...).ToFunc()
}

// ByExpectedGraduation orders the results by the expected_graduation field.
func ByExpectedGraduation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedGraduation, opts...).ToFunc()
}

// ByTotalAppointments orders the results by the total_appointments field.
func ByTotalAppointments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAppointments, opts...).ToFunc()
}

// ByCompletedAppointments orders the results by the completed_appointments field.
func ByCompletedAppointments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAppointments, opts...).ToFunc()
}

// ByCancelledAppointments orders the results by the cancelled_appointments field.
func ByCancelledAppointments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAppointments, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
	)
}
