// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentID, v))
}

// FacultyID applies equality check predicate on the "faculty_id" field. It's identical to FacultyIDEQ.
func FacultyID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyID, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentName, v))
}

// StudentEmail applies equality check predicate on the "student_email" field. It's identical to StudentEmailEQ.
func StudentEmail(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentEmail, v))
}

// FacultyName applies equality check predicate on the "faculty_name" field. It's identical to FacultyNameEQ.
func FacultyName(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyName, v))
}

// FacultyEmail applies equality check predicate on the "faculty_email" field. It's identical to FacultyEmailEQ.
func FacultyEmail(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyEmail, v))
}

// RequestedTime applies equality check predicate on the "requested_time" field. It's identical to RequestedTimeEQ.
func RequestedTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRequestedTime, v))
}

// RescheduleTime applies equality check predicate on the "reschedule_time" field. It's identical to RescheduleTimeEQ.
func RescheduleTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRescheduleTime, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReason, v))
}

// MeetingLink applies equality check predicate on the "meeting_link" field. It's identical to MeetingLinkEQ.
func MeetingLink(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingLink, v))
}

// FacultyNotes applies equality check predicate on the "faculty_notes" field. It's identical to FacultyNotesEQ.
func FacultyNotes(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyNotes, v))
}

// NotesUpdatedAt applies equality check predicate on the "notes_updated_at" field. It's identical to NotesUpdatedAtEQ.
func NotesUpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotesUpdatedAt, v))
}

// StudentFeedback applies equality check predicate on the "student_feedback" field. It's identical to StudentFeedbackEQ.
func StudentFeedback(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentFeedback, v))
}

// StudentRating applies equality check predicate on the "student_rating" field. It's identical to StudentRatingEQ.
func StudentRating(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentRating, v))
}

// FeedbackSubmittedAt applies equality check predicate on the "feedback_submitted_at" field. It's identical to FeedbackSubmittedAtEQ.
func FeedbackSubmittedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFeedbackSubmittedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStudentID, vs...))
}

// FacultyIDEQ applies the EQ predicate on the "faculty_id" field.
func FacultyIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyID, v))
}

// FacultyIDNEQ applies the NEQ predicate on the "faculty_id" field.
func FacultyIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldFacultyID, v))
}

// FacultyIDIn applies the In predicate on the "faculty_id" field.
func FacultyIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldFacultyID, vs...))
}

// FacultyIDNotIn applies the NotIn predicate on the "faculty_id" field.
func FacultyIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldFacultyID, vs...))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldStudentName, v))
}

// StudentEmailEQ applies the EQ predicate on the "student_email" field.
func StudentEmailEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentEmail, v))
}

// StudentEmailNEQ applies the NEQ predicate on the "student_email" field.
func StudentEmailNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStudentEmail, v))
}

// StudentEmailIn applies the In predicate on the "student_email" field.
func StudentEmailIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStudentEmail, vs...))
}

// StudentEmailNotIn applies the NotIn predicate on the "student_email" field.
func StudentEmailNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStudentEmail, vs...))
}

// StudentEmailGT applies the GT predicate on the "student_email" field.
func StudentEmailGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStudentEmail, v))
}

// StudentEmailGTE applies the GTE predicate on the "student_email" field.
func StudentEmailGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStudentEmail, v))
}

// StudentEmailLT applies the LT predicate on the "student_email" field.
func StudentEmailLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStudentEmail, v))
}

// StudentEmailLTE applies the LTE predicate on the "student_email" field.
func StudentEmailLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStudentEmail, v))
}

// StudentEmailContains applies the Contains predicate on the "student_email" field.
func StudentEmailContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldStudentEmail, v))
}

// StudentEmailHasPrefix applies the HasPrefix predicate on the "student_email" field.
func StudentEmailHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldStudentEmail, v))
}

// StudentEmailHasSuffix applies the HasSuffix predicate on the "student_email" field.
func StudentEmailHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldStudentEmail, v))
}

// StudentEmailEqualFold applies the EqualFold predicate on the "student_email" field.
func StudentEmailEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldStudentEmail, v))
}

// StudentEmailContainsFold applies the ContainsFold predicate on the "student_email" field.
func StudentEmailContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldStudentEmail, v))
}

// FacultyNameEQ applies the EQ predicate on the "faculty_name" field.
func FacultyNameEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyName, v))
}

// FacultyNameNEQ applies the NEQ predicate on the "faculty_name" field.
func FacultyNameNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldFacultyName, v))
}

// FacultyNameIn applies the In predicate on the "faculty_name" field.
func FacultyNameIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldFacultyName, vs...))
}

// FacultyNameNotIn applies the NotIn predicate on the "faculty_name" field.
func FacultyNameNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldFacultyName, vs...))
}

// FacultyNameGT applies the GT predicate on the "faculty_name" field.
func FacultyNameGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldFacultyName, v))
}

// FacultyNameGTE applies the GTE predicate on the "faculty_name" field.
func FacultyNameGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldFacultyName, v))
}

// FacultyNameLT applies the LT predicate on the "faculty_name" field.
func FacultyNameLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldFacultyName, v))
}

// FacultyNameLTE applies the LTE predicate on the "faculty_name" field.
func FacultyNameLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldFacultyName, v))
}

// FacultyNameContains applies the Contains predicate on the "faculty_name" field.
func FacultyNameContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldFacultyName, v))
}

// FacultyNameHasPrefix applies the HasPrefix predicate on the "faculty_name" field.
func FacultyNameHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldFacultyName, v))
}

// FacultyNameHasSuffix applies the HasSuffix predicate on the "faculty_name" field.
func FacultyNameHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldFacultyName, v))
}

// FacultyNameEqualFold applies the EqualFold predicate on the "faculty_name" field.
func FacultyNameEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldFacultyName, v))
}

// FacultyNameContainsFold applies the ContainsFold predicate on the "faculty_name" field.
func FacultyNameContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldFacultyName, v))
}

// FacultyEmailEQ applies the EQ predicate on the "faculty_email" field.
func FacultyEmailEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyEmail, v))
}

// FacultyEmailNEQ applies the NEQ predicate on the "faculty_email" field.
func FacultyEmailNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldFacultyEmail, v))
}

// FacultyEmailIn applies the In predicate on the "faculty_email" field.
func FacultyEmailIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldFacultyEmail, vs...))
}

// FacultyEmailNotIn applies the NotIn predicate on the "faculty_email" field.
func FacultyEmailNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldFacultyEmail, vs...))
}

// FacultyEmailGT applies the GT predicate on the "faculty_email" field.
func FacultyEmailGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldFacultyEmail, v))
}

// FacultyEmailGTE applies the GTE predicate on the "faculty_email" field.
func FacultyEmailGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldFacultyEmail, v))
}

// FacultyEmailLT applies the LT predicate on the "faculty_email" field.
func FacultyEmailLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldFacultyEmail, v))
}

// FacultyEmailLTE applies the LTE predicate on the "faculty_email" field.
func FacultyEmailLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldFacultyEmail, v))
}

// FacultyEmailContains applies the Contains predicate on the "faculty_email" field.
func FacultyEmailContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldFacultyEmail, v))
}

// FacultyEmailHasPrefix applies the HasPrefix predicate on the "faculty_email" field.
func FacultyEmailHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldFacultyEmail, v))
}

// FacultyEmailHasSuffix applies the HasSuffix predicate on the "faculty_email" field.
func FacultyEmailHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldFacultyEmail, v))
}

// FacultyEmailEqualFold applies the EqualFold predicate on the "faculty_email" field.
func FacultyEmailEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldFacultyEmail, v))
}

// FacultyEmailContainsFold applies the ContainsFold predicate on the "faculty_email" field.
func FacultyEmailContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldFacultyEmail, v))
}

// RequestedTimeEQ applies the EQ predicate on the "requested_time" field.
func RequestedTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRequestedTime, v))
}

// RequestedTimeNEQ applies the NEQ predicate on the "requested_time" field.
func RequestedTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldRequestedTime, v))
}

// RequestedTimeIn applies the In predicate on the "requested_time" field.
func RequestedTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldRequestedTime, vs...))
}

// RequestedTimeNotIn applies the NotIn predicate on the "requested_time" field.
func RequestedTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldRequestedTime, vs...))
}

// RequestedTimeGT applies the GT predicate on the "requested_time" field.
func RequestedTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldRequestedTime, v))
}

// RequestedTimeGTE applies the GTE predicate on the "requested_time" field.
func RequestedTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldRequestedTime, v))
}

// RequestedTimeLT applies the LT predicate on the "requested_time" field.
func RequestedTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldRequestedTime, v))
}

// RequestedTimeLTE applies the LTE predicate on the "requested_time" field.
func RequestedTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldRequestedTime, v))
}

// RescheduleTimeEQ applies the EQ predicate on the "reschedule_time" field.
func RescheduleTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRescheduleTime, v))
}

// RescheduleTimeNEQ applies the NEQ predicate on the "reschedule_time" field.
func RescheduleTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldRescheduleTime, v))
}

// RescheduleTimeIn applies the In predicate on the "reschedule_time" field.
func RescheduleTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldRescheduleTime, vs...))
}

// RescheduleTimeNotIn applies the NotIn predicate on the "reschedule_time" field.
func RescheduleTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldRescheduleTime, vs...))
}

// RescheduleTimeGT applies the GT predicate on the "reschedule_time" field.
func RescheduleTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldRescheduleTime, v))
}

// RescheduleTimeGTE applies the GTE predicate on the "reschedule_time" field.
func RescheduleTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldRescheduleTime, v))
}

// RescheduleTimeLT applies the LT predicate on the "reschedule_time" field.
func RescheduleTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldRescheduleTime, v))
}

// RescheduleTimeLTE applies the LTE predicate on the "reschedule_time" field.
func RescheduleTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldRescheduleTime, v))
}

// RescheduleTimeIsNil applies the IsNil predicate on the "reschedule_time" field.
func RescheduleTimeIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldRescheduleTime))
}

// RescheduleTimeNotNil applies the NotNil predicate on the "reschedule_time" field.
func RescheduleTimeNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldRescheduleTime))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldReason, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// MeetingLinkEQ applies the EQ predicate on the "meeting_link" field.
func MeetingLinkEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldMeetingLink, v))
}

// MeetingLinkNEQ applies the NEQ predicate on the "meeting_link" field.
func MeetingLinkNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldMeetingLink, v))
}

// MeetingLinkIn applies the In predicate on the "meeting_link" field.
func MeetingLinkIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldMeetingLink, vs...))
}

// MeetingLinkNotIn applies the NotIn predicate on the "meeting_link" field.
func MeetingLinkNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldMeetingLink, vs...))
}

// MeetingLinkGT applies the GT predicate on the "meeting_link" field.
func MeetingLinkGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldMeetingLink, v))
}

// MeetingLinkGTE applies the GTE predicate on the "meeting_link" field.
func MeetingLinkGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldMeetingLink, v))
}

// MeetingLinkLT applies the LT predicate on the "meeting_link" field.
func MeetingLinkLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldMeetingLink, v))
}

// MeetingLinkLTE applies the LTE predicate on the "meeting_link" field.
func MeetingLinkLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldMeetingLink, v))
}

// MeetingLinkContains applies the Contains predicate on the "meeting_link" field.
func MeetingLinkContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldMeetingLink, v))
}

// MeetingLinkHasPrefix applies the HasPrefix predicate on the "meeting_link" field.
func MeetingLinkHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldMeetingLink, v))
}

// MeetingLinkHasSuffix applies the HasSuffix predicate on the "meeting_link" field.
func MeetingLinkHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldMeetingLink, v))
}

// MeetingLinkIsNil applies the IsNil predicate on the "meeting_link" field.
func MeetingLinkIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldMeetingLink))
}

// MeetingLinkNotNil applies the NotNil predicate on the "meeting_link" field.
func MeetingLinkNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldMeetingLink))
}

// MeetingLinkEqualFold applies the EqualFold predicate on the "meeting_link" field.
func MeetingLinkEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldMeetingLink, v))
}

// MeetingLinkContainsFold applies the ContainsFold predicate on the "meeting_link" field.
func MeetingLinkContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldMeetingLink, v))
}

// FacultyNotesEQ applies the EQ predicate on the "faculty_notes" field.
func FacultyNotesEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFacultyNotes, v))
}

// FacultyNotesNEQ applies the NEQ predicate on the "faculty_notes" field.
func FacultyNotesNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldFacultyNotes, v))
}

// FacultyNotesIn applies the In predicate on the "faculty_notes" field.
func FacultyNotesIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldFacultyNotes, vs...))
}

// FacultyNotesNotIn applies the NotIn predicate on the "faculty_notes" field.
func FacultyNotesNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldFacultyNotes, vs...))
}

// FacultyNotesGT applies the GT predicate on the "faculty_notes" field.
func FacultyNotesGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldFacultyNotes, v))
}

// FacultyNotesGTE applies the GTE predicate on the "faculty_notes" field.
func FacultyNotesGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldFacultyNotes, v))
}

// FacultyNotesLT applies the LT predicate on the "faculty_notes" field.
func FacultyNotesLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldFacultyNotes, v))
}

// FacultyNotesLTE applies the LTE predicate on the "faculty_notes" field.
func FacultyNotesLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldFacultyNotes, v))
}

// FacultyNotesContains applies the Contains predicate on the "faculty_notes" field.
func FacultyNotesContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldFacultyNotes, v))
}

// FacultyNotesHasPrefix applies the HasPrefix predicate on the "faculty_notes" field.
func FacultyNotesHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldFacultyNotes, v))
}

// FacultyNotesHasSuffix applies the HasSuffix predicate on the "faculty_notes" field.
func FacultyNotesHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldFacultyNotes, v))
}

// FacultyNotesIsNil applies the IsNil predicate on the "faculty_notes" field.
func FacultyNotesIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldFacultyNotes))
}

// FacultyNotesNotNil applies the NotNil predicate on the "faculty_notes" field.
func FacultyNotesNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldFacultyNotes))
}

// FacultyNotesEqualFold applies the EqualFold predicate on the "faculty_notes" field.
func FacultyNotesEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldFacultyNotes, v))
}

// FacultyNotesContainsFold applies the ContainsFold predicate on the "faculty_notes" field.
func FacultyNotesContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldFacultyNotes, v))
}

// NotesUpdatedAtEQ applies the EQ predicate on the "notes_updated_at" field.
func NotesUpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNotesUpdatedAt, v))
}

// NotesUpdatedAtNEQ applies the NEQ predicate on the "notes_updated_at" field.
func NotesUpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNotesUpdatedAt, v))
}

// NotesUpdatedAtIn applies the In predicate on the "notes_updated_at" field.
func NotesUpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNotesUpdatedAt, vs...))
}

// NotesUpdatedAtNotIn applies the NotIn predicate on the "notes_updated_at" field.
func NotesUpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNotesUpdatedAt, vs...))
}

// NotesUpdatedAtGT applies the GT predicate on the "notes_updated_at" field.
func NotesUpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNotesUpdatedAt, v))
}

// NotesUpdatedAtGTE applies the GTE predicate on the "notes_updated_at" field.
func NotesUpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNotesUpdatedAt, v))
}

// NotesUpdatedAtLT applies the LT predicate on the "notes_updated_at" field.
func NotesUpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNotesUpdatedAt, v))
}

// NotesUpdatedAtLTE applies the LTE predicate on the "notes_updated_at" field.
func NotesUpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNotesUpdatedAt, v))
}

// NotesUpdatedAtIsNil applies the IsNil predicate on the "notes_updated_at" field.
func NotesUpdatedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldNotesUpdatedAt))
}

// NotesUpdatedAtNotNil applies the NotNil predicate on the "notes_updated_at" field.
func NotesUpdatedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldNotesUpdatedAt))
}

// StudentFeedbackEQ applies the EQ predicate on the "student_feedback" field.
func StudentFeedbackEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentFeedback, v))
}

// StudentFeedbackNEQ applies the NEQ predicate on the "student_feedback" field.
func StudentFeedbackNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStudentFeedback, v))
}

// StudentFeedbackIn applies the In predicate on the "student_feedback" field.
func StudentFeedbackIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStudentFeedback, vs...))
}

// StudentFeedbackNotIn applies the NotIn predicate on the "student_feedback" field.
func StudentFeedbackNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStudentFeedback, vs...))
}

// StudentFeedbackGT applies the GT predicate on the "student_feedback" field.
func StudentFeedbackGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStudentFeedback, v))
}

// StudentFeedbackGTE applies the GTE predicate on the "student_feedback" field.
func StudentFeedbackGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStudentFeedback, v))
}

// StudentFeedbackLT applies the LT predicate on the "student_feedback" field.
func StudentFeedbackLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStudentFeedback, v))
}

// StudentFeedbackLTE applies the LTE predicate on the "student_feedback" field.
func StudentFeedbackLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStudentFeedback, v))
}

// StudentFeedbackContains applies the Contains predicate on the "student_feedback" field.
func StudentFeedbackContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldStudentFeedback, v))
}

// StudentFeedbackHasPrefix applies the HasPrefix predicate on the "student_feedback" field.
func StudentFeedbackHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldStudentFeedback, v))
}

// StudentFeedbackHasSuffix applies the HasSuffix predicate on the "student_feedback" field.
func StudentFeedbackHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldStudentFeedback, v))
}

// StudentFeedbackIsNil applies the IsNil predicate on the "student_feedback" field.
func StudentFeedbackIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldStudentFeedback))
}

// StudentFeedbackNotNil applies the NotNil predicate on the "student_feedback" field.
func StudentFeedbackNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldStudentFeedback))
}

// StudentFeedbackEqualFold applies the EqualFold predicate on the "student_feedback" field.
func StudentFeedbackEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldStudentFeedback, v))
}

// StudentFeedbackContainsFold applies the ContainsFold predicate on the "student_feedback" field.
func StudentFeedbackContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldStudentFeedback, v))
}

// StudentRatingEQ applies the EQ predicate on the "student_rating" field.
func StudentRatingEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStudentRating, v))
}

// StudentRatingNEQ applies the NEQ predicate on the "student_rating" field.
func StudentRatingNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStudentRating, v))
}

// StudentRatingIn applies the In predicate on the "student_rating" field.
func StudentRatingIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStudentRating, vs...))
}

// StudentRatingNotIn applies the NotIn predicate on the "student_rating" field.
func StudentRatingNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStudentRating, vs...))
}

// StudentRatingGT applies the GT predicate on the "student_rating" field.
func StudentRatingGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStudentRating, v))
}

// StudentRatingGTE applies the GTE predicate on the "student_rating" field.
func StudentRatingGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStudentRating, v))
}

// StudentRatingLT applies the LT predicate on the "student_rating" field.
func StudentRatingLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStudentRating, v))
}

// StudentRatingLTE applies the LTE predicate on the "student_rating" field.
func StudentRatingLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStudentRating, v))
}

// StudentRatingIsNil applies the IsNil predicate on the "student_rating" field.
func StudentRatingIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldStudentRating))
}

// StudentRatingNotNil applies the NotNil predicate on the "student_rating" field.
func StudentRatingNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldStudentRating))
}

// FeedbackSubmittedAtEQ applies the EQ predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldFeedbackSubmittedAt, v))
}

// FeedbackSubmittedAtNEQ applies the NEQ predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldFeedbackSubmittedAt, v))
}

// FeedbackSubmittedAtIn applies the In predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldFeedbackSubmittedAt, vs...))
}

// FeedbackSubmittedAtNotIn applies the NotIn predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldFeedbackSubmittedAt, vs...))
}

// FeedbackSubmittedAtGT applies the GT predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldFeedbackSubmittedAt, v))
}

// FeedbackSubmittedAtGTE applies the GTE predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldFeedbackSubmittedAt, v))
}

// FeedbackSubmittedAtLT applies the LT predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldFeedbackSubmittedAt, v))
}

// FeedbackSubmittedAtLTE applies the LTE predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldFeedbackSubmittedAt, v))
}

// FeedbackSubmittedAtIsNil applies the IsNil predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldFeedbackSubmittedAt))
}

// FeedbackSubmittedAtNotNil applies the NotNil predicate on the "feedback_submitted_at" field.
func FeedbackSubmittedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldFeedbackSubmittedAt))
}

// HasStudent applies the HasEdge predicate on the "student" edge.
func HasStudent() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, StudentTable, StudentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudentWith applies the HasEdge predicate on the "student" edge with a given conditions (other predicates).
func HasStudentWith(preds ...predicate.User) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newStudentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFaculty applies the HasEdge predicate on the "faculty" edge.
func HasFaculty() predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, FacultyTable, FacultyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacultyWith applies the HasEdge predicate on the "faculty" edge with a given conditions (other predicates).
func HasFacultyWith(preds ...predicate.User) predicate.Appointment {
	return predicate.Appointment(func(s *sql.Selector) {
		step := newFacultyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
