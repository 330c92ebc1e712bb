// Code generated by ent, DO NOT EDIT.

package studentprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUserID, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldProfileID, v))
}

// StudentNumber applies equality check predicate on the "student_number" field. It's identical to StudentNumberEQ.
func StudentNumber(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldStudentNumber, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldYear, v))
}

// Major applies equality check predicate on the "major" field. It's identical to MajorEQ.
func Major(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldMajor, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldDepartment, v))
}

// Gpa applies equality check predicate on the "gpa" field. It's identical to GpaEQ.
func Gpa(v float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldGpa, v))
}

// ExpectedGraduation applies equality check predicate on the "expected_graduation" field. It's identical to ExpectedGraduationEQ.
func ExpectedGraduation(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldExpectedGraduation, v))
}

// TotalAppointments applies equality check predicate on the "total_appointments" field. It's identical to TotalAppointmentsEQ.
func TotalAppointments(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldTotalAppointments, v))
}

// CompletedAppointments applies equality check predicate on the "completed_appointments" field. It's identical to CompletedAppointmentsEQ.
func CompletedAppointments(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCompletedAppointments, v))
}

// CancelledAppointments applies equality check predicate on the "cancelled_appointments" field. It's identical to CancelledAppointmentsEQ.
func CancelledAppointments(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCancelledAppointments, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldProfileID, v))
}

// StudentNumberEQ applies the EQ predicate on the "student_number" field.
func StudentNumberEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldStudentNumber, v))
}

// StudentNumberNEQ applies the NEQ predicate on the "student_number" field.
func StudentNumberNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldStudentNumber, v))
}

// StudentNumberIn applies the In predicate on the "student_number" field.
func StudentNumberIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldStudentNumber, vs...))
}

// StudentNumberNotIn applies the NotIn predicate on the "student_number" field.
func StudentNumberNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldStudentNumber, vs...))
}

// StudentNumberGT applies the GT predicate on the "student_number" field.
func StudentNumberGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldStudentNumber, v))
}

// StudentNumberGTE applies the GTE predicate on the "student_number" field.
func StudentNumberGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldStudentNumber, v))
}

// StudentNumberLT applies the LT predicate on the "student_number" field.
func StudentNumberLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldStudentNumber, v))
}

// StudentNumberLTE applies the LTE predicate on the "student_number" field.
func StudentNumberLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldStudentNumber, v))
}

// StudentNumberContains applies the Contains predicate on the "student_number" field.
func StudentNumberContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldStudentNumber, v))
}

// StudentNumberHasPrefix applies the HasPrefix predicate on the "student_number" field.
func StudentNumberHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldStudentNumber, v))
}

// StudentNumberHasSuffix applies the HasSuffix predicate on the "student_number" field.
func StudentNumberHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldStudentNumber, v))
}

// StudentNumberIsNil applies the IsNil predicate on the "student_number" field.
func StudentNumberIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldStudentNumber))
}

// StudentNumberNotNil applies the NotNil predicate on the "student_number" field.
func StudentNumberNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldStudentNumber))
}

// StudentNumberEqualFold applies the EqualFold predicate on the "student_number" field.
func StudentNumberEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldStudentNumber, v))
}

// StudentNumberContainsFold applies the ContainsFold predicate on the "student_number" field.
func StudentNumberContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldStudentNumber, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldYear, v))
}

// YearContains applies the Contains predicate on the "year" field.
func YearContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldYear, v))
}

// YearHasPrefix applies the HasPrefix predicate on the "year" field.
func YearHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldYear, v))
}

// YearHasSuffix applies the HasSuffix predicate on the "year" field.
func YearHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldYear))
}

// YearEqualFold applies the EqualFold predicate on the "year" field.
func YearEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldYear, v))
}

// YearContainsFold applies the ContainsFold predicate on the "year" field.
func YearContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldYear, v))
}

// MajorEQ applies the EQ predicate on the "major" field.
func MajorEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldMajor, v))
}

// MajorNEQ applies the NEQ predicate on the "major" field.
func MajorNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldMajor, v))
}

// MajorIn applies the In predicate on the "major" field.
func MajorIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldMajor, vs...))
}

// MajorNotIn applies the NotIn predicate on the "major" field.
func MajorNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldMajor, vs...))
}

// MajorGT applies the GT predicate on the "major" field.
func MajorGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldMajor, v))
}

// MajorGTE applies the GTE predicate on the "major" field.
func MajorGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldMajor, v))
}

// MajorLT applies the LT predicate on the "major" field.
func MajorLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldMajor, v))
}

// MajorLTE applies the LTE predicate on the "major" field.
func MajorLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldMajor, v))
}

// MajorContains applies the Contains predicate on the "major" field.
func MajorContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldMajor, v))
}

// MajorHasPrefix applies the HasPrefix predicate on the "major" field.
func MajorHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldMajor, v))
}

// MajorHasSuffix applies the HasSuffix predicate on the "major" field.
func MajorHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldMajor, v))
}

// MajorIsNil applies the IsNil predicate on the "major" field.
func MajorIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldMajor))
}

// MajorNotNil applies the NotNil predicate on the "major" field.
func MajorNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldMajor))
}

// MajorEqualFold applies the EqualFold predicate on the "major" field.
func MajorEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldMajor, v))
}

// MajorContainsFold applies the ContainsFold predicate on the "major" field.
func MajorContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldMajor, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldDepartment, v))
}

// GpaEQ applies the EQ predicate on the "gpa" field.
func GpaEQ(v float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldGpa, v))
}

// GpaNEQ applies the NEQ predicate on the "gpa" field.
func GpaNEQ(v float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldGpa, v))
}

// GpaIn applies the In predicate on the "gpa" field.
func GpaIn(vs ...float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldGpa, vs...))
}

// GpaNotIn applies the NotIn predicate on the "gpa" field.
func GpaNotIn(vs ...float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldGpa, vs...))
}

// GpaGT applies the GT predicate on the "gpa" field.
func GpaGT(v float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldGpa, v))
}

// GpaGTE applies the GTE predicate on the "gpa" field.
func GpaGTE(v float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldGpa, v))
}

// GpaLT applies the LT predicate on the "gpa" field.
func GpaLT(v float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldGpa, v))
}

// GpaLTE applies the LTE predicate on the "gpa" field.
func GpaLTE(v float64) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldGpa, v))
}

// GpaIsNil applies the IsNil predicate on the "gpa" field.
func GpaIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldGpa))
}

// GpaNotNil applies the NotNil predicate on the "gpa" field.
func GpaNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldGpa))
}

// ExpectedGraduationEQ applies the EQ predicate on the "expected_graduation" field.
func ExpectedGraduationEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldExpectedGraduation, v))
}

// ExpectedGraduationNEQ applies the NEQ predicate on the "expected_graduation" field.
func ExpectedGraduationNEQ(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldExpectedGraduation, v))
}

// ExpectedGraduationIn applies the In predicate on the "expected_graduation" field.
func ExpectedGraduationIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldExpectedGraduation, vs...))
}

// ExpectedGraduationNotIn applies the NotIn predicate on the "expected_graduation" field.
func ExpectedGraduationNotIn(vs ...string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldExpectedGraduation, vs...))
}

// ExpectedGraduationGT applies the GT predicate on the "expected_graduation" field.
func ExpectedGraduationGT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldExpectedGraduation, v))
}

// ExpectedGraduationGTE applies the GTE predicate on the "expected_graduation" field.
func ExpectedGraduationGTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldExpectedGraduation, v))
}

// ExpectedGraduationLT applies the LT predicate on the "expected_graduation" field.
func ExpectedGraduationLT(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldExpectedGraduation, v))
}

// ExpectedGraduationLTE applies the LTE predicate on the "expected_graduation" field.
func ExpectedGraduationLTE(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldExpectedGraduation, v))
}

// ExpectedGraduationContains applies the Contains predicate on the "expected_graduation" field.
func ExpectedGraduationContains(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContains(FieldExpectedGraduation, v))
}

// ExpectedGraduationHasPrefix applies the HasPrefix predicate on the "expected_graduation" field.
func ExpectedGraduationHasPrefix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasPrefix(FieldExpectedGraduation, v))
}

// ExpectedGraduationHasSuffix applies the HasSuffix predicate on the "expected_graduation" field.
func ExpectedGraduationHasSuffix(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldHasSuffix(FieldExpectedGraduation, v))
}

// ExpectedGraduationIsNil applies the IsNil predicate on the "expected_graduation" field.
func ExpectedGraduationIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldExpectedGraduation))
}

// ExpectedGraduationNotNil applies the NotNil predicate on the "expected_graduation" field.
func ExpectedGraduationNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldExpectedGraduation))
}

// ExpectedGraduationEqualFold applies the EqualFold predicate on the "expected_graduation" field.
func ExpectedGraduationEqualFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEqualFold(FieldExpectedGraduation, v))
}

// ExpectedGraduationContainsFold applies the ContainsFold predicate on the "expected_graduation" field.
func ExpectedGraduationContainsFold(v string) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldContainsFold(FieldExpectedGraduation, v))
}

// PreferredDepartmentsIsNil applies the IsNil predicate on the "preferred_departments" field.
func PreferredDepartmentsIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldPreferredDepartments))
}

// PreferredDepartmentsNotNil applies the NotNil predicate on the "preferred_departments" field.
func PreferredDepartmentsNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldPreferredDepartments))
}

// ConsultationTypesIsNil applies the IsNil predicate on the "consultation_types" field.
func ConsultationTypesIsNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIsNull(FieldConsultationTypes))
}

// ConsultationTypesNotNil applies the NotNil predicate on the "consultation_types" field.
func ConsultationTypesNotNil() predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotNull(FieldConsultationTypes))
}

// TotalAppointmentsEQ applies the EQ predicate on the "total_appointments" field.
func TotalAppointmentsEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldTotalAppointments, v))
}

// TotalAppointmentsNEQ applies the NEQ predicate on the "total_appointments" field.
func TotalAppointmentsNEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldTotalAppointments, v))
}

// TotalAppointmentsIn applies the In predicate on the "total_appointments" field.
func TotalAppointmentsIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldTotalAppointments, vs...))
}

// TotalAppointmentsNotIn applies the NotIn predicate on the "total_appointments" field.
func TotalAppointmentsNotIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldTotalAppointments, vs...))
}

// TotalAppointmentsGT applies the GT predicate on the "total_appointments" field.
func TotalAppointmentsGT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldTotalAppointments, v))
}

// TotalAppointmentsGTE applies the GTE predicate on the "total_appointments" field.
func TotalAppointmentsGTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldTotalAppointments, v))
}

// TotalAppointmentsLT applies the LT predicate on the "total_appointments" field.
func TotalAppointmentsLT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldTotalAppointments, v))
}

// TotalAppointmentsLTE applies the LTE predicate on the "total_appointments" field.
func TotalAppointmentsLTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldTotalAppointments, v))
}

// CompletedAppointmentsEQ applies the EQ predicate on the "completed_appointments" field.
func CompletedAppointmentsEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCompletedAppointments, v))
}

// CompletedAppointmentsNEQ applies the NEQ predicate on the "completed_appointments" field.
func CompletedAppointmentsNEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldCompletedAppointments, v))
}

// CompletedAppointmentsIn applies the In predicate on the "completed_appointments" field.
func CompletedAppointmentsIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldCompletedAppointments, vs...))
}

// CompletedAppointmentsNotIn applies the NotIn predicate on the "completed_appointments" field.
func CompletedAppointmentsNotIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldCompletedAppointments, vs...))
}

// CompletedAppointmentsGT applies the GT predicate on the "completed_appointments" field.
func CompletedAppointmentsGT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldCompletedAppointments, v))
}

// CompletedAppointmentsGTE applies the GTE predicate on the "completed_appointments" field.
func CompletedAppointmentsGTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldCompletedAppointments, v))
}

// CompletedAppointmentsLT applies the LT predicate on the "completed_appointments" field.
func CompletedAppointmentsLT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldCompletedAppointments, v))
}

// CompletedAppointmentsLTE applies the LTE predicate on the "completed_appointments" field.
func CompletedAppointmentsLTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldCompletedAppointments, v))
}

// CancelledAppointmentsEQ applies the EQ predicate on the "cancelled_appointments" field.
func CancelledAppointmentsEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldEQ(FieldCancelledAppointments, v))
}

// CancelledAppointmentsNEQ applies the NEQ predicate on the "cancelled_appointments" field.
func CancelledAppointmentsNEQ(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNEQ(FieldCancelledAppointments, v))
}

// CancelledAppointmentsIn applies the In predicate on the "cancelled_appointments" field.
func CancelledAppointmentsIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldIn(FieldCancelledAppointments, vs...))
}

// CancelledAppointmentsNotIn applies the NotIn predicate on the "cancelled_appointments" field.
func CancelledAppointmentsNotIn(vs ...int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldNotIn(FieldCancelledAppointments, vs...))
}

// CancelledAppointmentsGT applies the GT predicate on the "cancelled_appointments" field.
func CancelledAppointmentsGT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGT(FieldCancelledAppointments, v))
}

// CancelledAppointmentsGTE applies the GTE predicate on the "cancelled_appointments" field.
func CancelledAppointmentsGTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldGTE(FieldCancelledAppointments, v))
}

// CancelledAppointmentsLT applies the LT predicate on the "cancelled_appointments" field.
func CancelledAppointmentsLT(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLT(FieldCancelledAppointments, v))
}

// CancelledAppointmentsLTE applies the LTE predicate on the "cancelled_appointments" field.
func CancelledAppointmentsLTE(v int) predicate.StudentProfile {
	return predicate.StudentProfile(sql.FieldLTE(FieldCancelledAppointments, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.StudentProfile {
	return predicate.StudentProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.StudentProfile {
	return predicate.StudentProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentProfile) predicate.StudentProfile {
	return predicate.StudentProfile(sql.NotPredicates(p))
}
