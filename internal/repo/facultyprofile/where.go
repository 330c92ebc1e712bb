// Code generated by ent, DO NOT EDIT.

package facultyprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldUserID, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldProfileID, v))
}

// EmployeeNumber applies equality check predicate on the "employee_number" field. It's identical to EmployeeNumberEQ.
func EmployeeNumber(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldEmployeeNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldTitle, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldDepartment, v))
}

// Office applies equality check predicate on the "office" field. It's identical to OfficeEQ.
func Office(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldOffice, v))
}

// PublicationCount applies equality check predicate on the "publication_count" field. It's identical to PublicationCountEQ.
func PublicationCount(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldPublicationCount, v))
}

// YearsExperience applies equality check predicate on the "years_experience" field. It's identical to YearsExperienceEQ.
func YearsExperience(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldYearsExperience, v))
}

// DefaultDurationMin applies equality check predicate on the "default_duration_min" field. It's identical to DefaultDurationMinEQ.
func DefaultDurationMin(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// MaxDailyAppointments applies equality check predicate on the "max_daily_appointments" field. It's identical to MaxDailyAppointmentsEQ.
func MaxDailyAppointments(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldMaxDailyAppointments, v))
}

// BufferMinutes applies equality check predicate on the "buffer_minutes" field. It's identical to BufferMinutesEQ.
func BufferMinutes(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldBufferMinutes, v))
}

// AdvanceBookingDays applies equality check predicate on the "advance_booking_days" field. It's identical to AdvanceBookingDaysEQ.
func AdvanceBookingDays(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldAdvanceBookingDays, v))
}

// TimeZone applies equality check predicate on the "time_zone" field. It's identical to TimeZoneEQ.
func TimeZone(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldTimeZone, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContainsFold(FieldProfileID, v))
}

// EmployeeNumberEQ applies the EQ predicate on the "employee_number" field.
func EmployeeNumberEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldEmployeeNumber, v))
}

// EmployeeNumberNEQ applies the NEQ predicate on the "employee_number" field.
func EmployeeNumberNEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldEmployeeNumber, v))
}

// EmployeeNumberIn applies the In predicate on the "employee_number" field.
func EmployeeNumberIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldEmployeeNumber, vs...))
}

// EmployeeNumberNotIn applies the NotIn predicate on the "employee_number" field.
func EmployeeNumberNotIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldEmployeeNumber, vs...))
}

// EmployeeNumberGT applies the GT predicate on the "employee_number" field.
func EmployeeNumberGT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldEmployeeNumber, v))
}

// EmployeeNumberGTE applies the GTE predicate on the "employee_number" field.
func EmployeeNumberGTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldEmployeeNumber, v))
}

// EmployeeNumberLT applies the LT predicate on the "employee_number" field.
func EmployeeNumberLT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldEmployeeNumber, v))
}

// EmployeeNumberLTE applies the LTE predicate on the "employee_number" field.
func EmployeeNumberLTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldEmployeeNumber, v))
}

// EmployeeNumberContains applies the Contains predicate on the "employee_number" field.
func EmployeeNumberContains(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContains(FieldEmployeeNumber, v))
}

// EmployeeNumberHasPrefix applies the HasPrefix predicate on the "employee_number" field.
func EmployeeNumberHasPrefix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasPrefix(FieldEmployeeNumber, v))
}

// EmployeeNumberHasSuffix applies the HasSuffix predicate on the "employee_number" field.
func EmployeeNumberHasSuffix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasSuffix(FieldEmployeeNumber, v))
}

// EmployeeNumberIsNil applies the IsNil predicate on the "employee_number" field.
func EmployeeNumberIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldEmployeeNumber))
}

// EmployeeNumberNotNil applies the NotNil predicate on the "employee_number" field.
func EmployeeNumberNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldEmployeeNumber))
}

// EmployeeNumberEqualFold applies the EqualFold predicate on the "employee_number" field.
func EmployeeNumberEqualFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEqualFold(FieldEmployeeNumber, v))
}

// EmployeeNumberContainsFold applies the ContainsFold predicate on the "employee_number" field.
func EmployeeNumberContainsFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContainsFold(FieldEmployeeNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContainsFold(FieldTitle, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContainsFold(FieldDepartment, v))
}

// OfficeEQ applies the EQ predicate on the "office" field.
func OfficeEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldOffice, v))
}

// OfficeNEQ applies the NEQ predicate on the "office" field.
func OfficeNEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldOffice, v))
}

// OfficeIn applies the In predicate on the "office" field.
func OfficeIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldOffice, vs...))
}

// OfficeNotIn applies the NotIn predicate on the "office" field.
func OfficeNotIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldOffice, vs...))
}

// OfficeGT applies the GT predicate on the "office" field.
func OfficeGT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldOffice, v))
}

// OfficeGTE applies the GTE predicate on the "office" field.
func OfficeGTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldOffice, v))
}

// OfficeLT applies the LT predicate on the "office" field.
func OfficeLT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldOffice, v))
}

// OfficeLTE applies the LTE predicate on the "office" field.
func OfficeLTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldOffice, v))
}

// OfficeContains applies the Contains predicate on the "office" field.
func OfficeContains(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContains(FieldOffice, v))
}

// OfficeHasPrefix applies the HasPrefix predicate on the "office" field.
func OfficeHasPrefix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasPrefix(FieldOffice, v))
}

// OfficeHasSuffix applies the HasSuffix predicate on the "office" field.
func OfficeHasSuffix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasSuffix(FieldOffice, v))
}

// OfficeIsNil applies the IsNil predicate on the "office" field.
func OfficeIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldOffice))
}

// OfficeNotNil applies the NotNil predicate on the "office" field.
func OfficeNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldOffice))
}

// OfficeEqualFold applies the EqualFold predicate on the "office" field.
func OfficeEqualFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEqualFold(FieldOffice, v))
}

// OfficeContainsFold applies the ContainsFold predicate on the "office" field.
func OfficeContainsFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContainsFold(FieldOffice, v))
}

// ExpertiseIsNil applies the IsNil predicate on the "expertise" field.
func ExpertiseIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldExpertise))
}

// ExpertiseNotNil applies the NotNil predicate on the "expertise" field.
func ExpertiseNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldExpertise))
}

// EducationIsNil applies the IsNil predicate on the "education" field.
func EducationIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldEducation))
}

// EducationNotNil applies the NotNil predicate on the "education" field.
func EducationNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldEducation))
}

// PublicationCountEQ applies the EQ predicate on the "publication_count" field.
func PublicationCountEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldPublicationCount, v))
}

// PublicationCountNEQ applies the NEQ predicate on the "publication_count" field.
func PublicationCountNEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldPublicationCount, v))
}

// PublicationCountIn applies the In predicate on the "publication_count" field.
func PublicationCountIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldPublicationCount, vs...))
}

// PublicationCountNotIn applies the NotIn predicate on the "publication_count" field.
func PublicationCountNotIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldPublicationCount, vs...))
}

// PublicationCountGT applies the GT predicate on the "publication_count" field.
func PublicationCountGT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldPublicationCount, v))
}

// PublicationCountGTE applies the GTE predicate on the "publication_count" field.
func PublicationCountGTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldPublicationCount, v))
}

// PublicationCountLT applies the LT predicate on the "publication_count" field.
func PublicationCountLT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldPublicationCount, v))
}

// PublicationCountLTE applies the LTE predicate on the "publication_count" field.
func PublicationCountLTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldPublicationCount, v))
}

// YearsExperienceEQ applies the EQ predicate on the "years_experience" field.
func YearsExperienceEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldYearsExperience, v))
}

// YearsExperienceNEQ applies the NEQ predicate on the "years_experience" field.
func YearsExperienceNEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldYearsExperience, v))
}

// YearsExperienceIn applies the In predicate on the "years_experience" field.
func YearsExperienceIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldYearsExperience, vs...))
}

// YearsExperienceNotIn applies the NotIn predicate on the "years_experience" field.
func YearsExperienceNotIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldYearsExperience, vs...))
}

// YearsExperienceGT applies the GT predicate on the "years_experience" field.
func YearsExperienceGT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldYearsExperience, v))
}

// YearsExperienceGTE applies the GTE predicate on the "years_experience" field.
func YearsExperienceGTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldYearsExperience, v))
}

// YearsExperienceLT applies the LT predicate on the "years_experience" field.
func YearsExperienceLT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldYearsExperience, v))
}

// YearsExperienceLTE applies the LTE predicate on the "years_experience" field.
func YearsExperienceLTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldYearsExperience, v))
}

// DefaultDurationMinEQ applies the EQ predicate on the "default_duration_min" field.
func DefaultDurationMinEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinNEQ applies the NEQ predicate on the "default_duration_min" field.
func DefaultDurationMinNEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldDefaultDurationMin, v))
}

// DefaultDurationMinIn applies the In predicate on the "default_duration_min" field.
func DefaultDurationMinIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinNotIn applies the NotIn predicate on the "default_duration_min" field.
func DefaultDurationMinNotIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldDefaultDurationMin, vs...))
}

// DefaultDurationMinGT applies the GT predicate on the "default_duration_min" field.
func DefaultDurationMinGT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinGTE applies the GTE predicate on the "default_duration_min" field.
func DefaultDurationMinGTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLT applies the LT predicate on the "default_duration_min" field.
func DefaultDurationMinLT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldDefaultDurationMin, v))
}

// DefaultDurationMinLTE applies the LTE predicate on the "default_duration_min" field.
func DefaultDurationMinLTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldDefaultDurationMin, v))
}

// MaxDailyAppointmentsEQ applies the EQ predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsNEQ applies the NEQ predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsNEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsIn applies the In predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldMaxDailyAppointments, vs...))
}

// MaxDailyAppointmentsNotIn applies the NotIn predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsNotIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldMaxDailyAppointments, vs...))
}

// MaxDailyAppointmentsGT applies the GT predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsGT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsGTE applies the GTE predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsGTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsLT applies the LT predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsLT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldMaxDailyAppointments, v))
}

// MaxDailyAppointmentsLTE applies the LTE predicate on the "max_daily_appointments" field.
func MaxDailyAppointmentsLTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldMaxDailyAppointments, v))
}

// BufferMinutesEQ applies the EQ predicate on the "buffer_minutes" field.
func BufferMinutesEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldBufferMinutes, v))
}

// BufferMinutesNEQ applies the NEQ predicate on the "buffer_minutes" field.
func BufferMinutesNEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldBufferMinutes, v))
}

// BufferMinutesIn applies the In predicate on the "buffer_minutes" field.
func BufferMinutesIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldBufferMinutes, vs...))
}

// BufferMinutesNotIn applies the NotIn predicate on the "buffer_minutes" field.
func BufferMinutesNotIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldBufferMinutes, vs...))
}

// BufferMinutesGT applies the GT predicate on the "buffer_minutes" field.
func BufferMinutesGT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldBufferMinutes, v))
}

// BufferMinutesGTE applies the GTE predicate on the "buffer_minutes" field.
func BufferMinutesGTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldBufferMinutes, v))
}

// BufferMinutesLT applies the LT predicate on the "buffer_minutes" field.
func BufferMinutesLT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldBufferMinutes, v))
}

// BufferMinutesLTE applies the LTE predicate on the "buffer_minutes" field.
func BufferMinutesLTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldBufferMinutes, v))
}

// AdvanceBookingDaysEQ applies the EQ predicate on the "advance_booking_days" field.
func AdvanceBookingDaysEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldAdvanceBookingDays, v))
}

// AdvanceBookingDaysNEQ applies the NEQ predicate on the "advance_booking_days" field.
func AdvanceBookingDaysNEQ(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldAdvanceBookingDays, v))
}

// AdvanceBookingDaysIn applies the In predicate on the "advance_booking_days" field.
func AdvanceBookingDaysIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldAdvanceBookingDays, vs...))
}

// AdvanceBookingDaysNotIn applies the NotIn predicate on the "advance_booking_days" field.
func AdvanceBookingDaysNotIn(vs ...int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldAdvanceBookingDays, vs...))
}

// AdvanceBookingDaysGT applies the GT predicate on the "advance_booking_days" field.
func AdvanceBookingDaysGT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldAdvanceBookingDays, v))
}

// AdvanceBookingDaysGTE applies the GTE predicate on the "advance_booking_days" field.
func AdvanceBookingDaysGTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldAdvanceBookingDays, v))
}

// AdvanceBookingDaysLT applies the LT predicate on the "advance_booking_days" field.
func AdvanceBookingDaysLT(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldAdvanceBookingDays, v))
}

// AdvanceBookingDaysLTE applies the LTE predicate on the "advance_booking_days" field.
func AdvanceBookingDaysLTE(v int) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldAdvanceBookingDays, v))
}

// AllowedConsultationTypesIsNil applies the IsNil predicate on the "allowed_consultation_types" field.
func AllowedConsultationTypesIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldAllowedConsultationTypes))
}

// AllowedConsultationTypesNotNil applies the NotNil predicate on the "allowed_consultation_types" field.
func AllowedConsultationTypesNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldAllowedConsultationTypes))
}

// WeeklyScheduleIsNil applies the IsNil predicate on the "weekly_schedule" field.
func WeeklyScheduleIsNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIsNull(FieldWeeklySchedule))
}

// WeeklyScheduleNotNil applies the NotNil predicate on the "weekly_schedule" field.
func WeeklyScheduleNotNil() predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotNull(FieldWeeklySchedule))
}

// TimeZoneEQ applies the EQ predicate on the "time_zone" field.
func TimeZoneEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEQ(FieldTimeZone, v))
}

// TimeZoneNEQ applies the NEQ predicate on the "time_zone" field.
func TimeZoneNEQ(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNEQ(FieldTimeZone, v))
}

// TimeZoneIn applies the In predicate on the "time_zone" field.
func TimeZoneIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldIn(FieldTimeZone, vs...))
}

// TimeZoneNotIn applies the NotIn predicate on the "time_zone" field.
func TimeZoneNotIn(vs ...string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldNotIn(FieldTimeZone, vs...))
}

// TimeZoneGT applies the GT predicate on the "time_zone" field.
func TimeZoneGT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGT(FieldTimeZone, v))
}

// TimeZoneGTE applies the GTE predicate on the "time_zone" field.
func TimeZoneGTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldGTE(FieldTimeZone, v))
}

// TimeZoneLT applies the LT predicate on the "time_zone" field.
func TimeZoneLT(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLT(FieldTimeZone, v))
}

// TimeZoneLTE applies the LTE predicate on the "time_zone" field.
func TimeZoneLTE(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldLTE(FieldTimeZone, v))
}

// TimeZoneContains applies the Contains predicate on the "time_zone" field.
func TimeZoneContains(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContains(FieldTimeZone, v))
}

// TimeZoneHasPrefix applies the HasPrefix predicate on the "time_zone" field.
func TimeZoneHasPrefix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasPrefix(FieldTimeZone, v))
}

// TimeZoneHasSuffix applies the HasSuffix predicate on the "time_zone" field.
func TimeZoneHasSuffix(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldHasSuffix(FieldTimeZone, v))
}

// TimeZoneEqualFold applies the EqualFold predicate on the "time_zone" field.
func TimeZoneEqualFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldEqualFold(FieldTimeZone, v))
}

// TimeZoneContainsFold applies the ContainsFold predicate on the "time_zone" field.
func TimeZoneContainsFold(v string) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.FieldContainsFold(FieldTimeZone, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.FacultyProfile {
	return predicate.FacultyProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.FacultyProfile {
	return predicate.FacultyProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FacultyProfile) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FacultyProfile) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FacultyProfile) predicate.FacultyProfile {
	return predicate.FacultyProfile(sql.NotPredicates(p))
}
