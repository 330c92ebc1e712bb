// Code generated by ent, DO NOT EDIT.

package facultyprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the facultyprofile type in the database.
	Label = "faculty_profile"
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
	// FieldEmployeeNumber holds the string denoting the employee_number field in the database.
	FieldEmployeeNumber = "employee_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldOffice holds the string denoting the office field in the database.
	FieldOffice = "office"
	// FieldExpertise holds the string denoting the expertise field in the database.
	FieldExpertise = "expertise"
	// FieldEducation holds the string denoting the education field in the database.
	FieldEducation = "education"
	// FieldPublicationCount holds the string denoting the publication_count field in the database.
	FieldPublicationCount = "publication_count"
	// FieldYearsExperience holds the string denoting the years_experience field in the database.
	FieldYearsExperience = "years_experience"
	// FieldDefaultDurationMin holds the string denoting the default_duration_min field in the database.
	FieldDefaultDurationMin = "default_duration_min"
	// FieldMaxDailyAppointments holds the string denoting the max_daily_appointments field in the database.
	FieldMaxDailyAppointments = "max_daily_appointments"
	// FieldBufferMinutes holds the string denoting the buffer_minutes field in the database.
	FieldBufferMinutes = "buffer_minutes"
	// FieldAdvanceBookingDays holds the string denoting the advance_booking_days field in the database.
	FieldAdvanceBookingDays = "advance_booking_days"
	// FieldAllowedConsultationTypes holds the string denoting the allowed_consultation_types field in the database.
	FieldAllowedConsultationTypes = "allowed_consultation_types"
	// FieldWeeklySchedule holds the string denoting the weekly_schedule field in the database.
	FieldWeeklySchedule = "weekly_schedule"
	// FieldTimeZone holds the string denoting the time_zone field in the database.
	FieldTimeZone = "time_zone"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the facultyprofile in the database.
	Table = "faculty_profiles"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "faculty_profiles"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for facultyprofile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldProfileID,
	FieldEmployeeNumber,
	FieldTitle,
	FieldDepartment,
	FieldOffice,
	FieldExpertise,
	FieldEducation,
	FieldPublicationCount,
	FieldYearsExperience,
	FieldDefaultDurationMin,
	FieldMaxDailyAppointments,
	FieldBufferMinutes,
	FieldAdvanceBookingDays,
	FieldAllowedConsultationTypes,
	FieldWeeklySchedule,
	FieldTimeZone,
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
	// EmployeeNumberValidator is a validator for the "employee_number" field. It is called by the builders before save.
	EmployeeNumberValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	DepartmentValidator func(string) error
	// OfficeValidator is a validator for the "office" field. It is called by the builders before save.
	OfficeValidator func(string) error
	// DefaultPublicationCount holds the default value on creation for the "publication_count" field.
	DefaultPublicationCount int
	// PublicationCountValidator is a validator for the "publication_count" field. It is called by the builders before save.
	PublicationCountValidator func(int) error
	// DefaultYearsExperience holds the default value on creation for the "years_experience" field.
	DefaultYearsExperience int
	// YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	YearsExperienceValidator func(int) error
	// DefaultDefaultDurationMin holds the default value on creation for the "default_duration_min" field.
	DefaultDefaultDurationMin int
	// DefaultDurationMinValidator is a validator for the "default_duration_min" field. It is called by the builders before save.
	DefaultDurationMinValidator func(int) error
	// DefaultMaxDailyAppointments holds the default value on creation for the "max_daily_appointments" field.
	DefaultMaxDailyAppointments int
	// MaxDailyAppointmentsValidator is a validator for the "max_daily_appointments" field. It is called by the builders before save.
	MaxDailyAppointmentsValidator func(int) error
	// DefaultBufferMinutes holds the default value on creation for the "buffer_minutes" field.
	DefaultBufferMinutes int
	// BufferMinutesValidator is a validator for the "buffer_minutes" field. It is called by the builders before save.
	BufferMinutesValidator func(int) error
	// DefaultAdvanceBookingDays holds the default value on creation for the "advance_booking_days" field.
	DefaultAdvanceBookingDays int
	// AdvanceBookingDaysValidator is a validator for the "advance_booking_days" field. It is called by the builders before save.
	AdvanceBookingDaysValidator func(int) error
	// DefaultTimeZone holds the default value on creation for the "time_zone" field.
	DefaultTimeZone string
	// TimeZoneValidator is a validator for the "time_zone" field. It is called by the builders before save.
	TimeZoneValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FacultyProfile queries.
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

// ByEmployeeNumber orders the results by the employee_number field.
func ByEmployeeNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByOffice orders the results by the office field.
func ByOffice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOffice, opts...).ToFunc()
}

// ByPublicationCount orders the results by the publication_count field.
func ByPublicationCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicationCount, opts...).ToFunc()
}

// ByYearsExperience orders the results by the years_experience field.
func ByYearsExperience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearsExperience, opts...).ToFunc()
}

// ByDefaultDurationMin orders the results by the default_duration_min field.
func ByDefaultDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultDurationMin, opts...).ToFunc()
}

// ByMaxDailyAppointments orders the results by the max_daily_appointments field.
func ByMaxDailyAppointments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDailyAppointments, opts...).ToFunc()
}

// ByBufferMinutes orders the results by the buffer_minutes field.
func ByBufferMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBufferMinutes, opts...).ToFunc()
}

// ByAdvanceBookingDays orders the results by the advance_booking_days field.
func ByAdvanceBookingDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdvanceBookingDays, opts...).ToFunc()
}

// ByTimeZone orders the results by the time_zone field.
func ByTimeZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeZone, opts...).ToFunc()
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
