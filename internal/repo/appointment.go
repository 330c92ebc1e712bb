// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/appointment"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// Appointment is the model entity for the Appointment schema.
type Appointment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	StudentID uuid.UUID `json:"student_id,omitempty"`
	// FK → users.id
	FacultyID uuid.UUID `json:"faculty_id,omitempty"`
	// StudentName holds the value of the "student_name" field.
	StudentName string `json:"student_name,omitempty"`
	// StudentEmail holds the value of the "student_email" field.
	StudentEmail string `json:"student_email,omitempty"`
	// FacultyName holds the value of the "faculty_name" field.
	FacultyName string `json:"faculty_name,omitempty"`
	// FacultyEmail holds the value of the "faculty_email" field.
	FacultyEmail string `json:"faculty_email,omitempty"`
	// RequestedTime holds the value of the "requested_time" field.
	RequestedTime time.Time `json:"requested_time,omitempty"`
	// Set only alongside a transition to rescheduled
	RescheduleTime *time.Time `json:"reschedule_time,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Status holds the value of the "status" field.
	Status appointment.Status `json:"status,omitempty"`
	// Derived from the appointment id on acceptance
	MeetingLink *string `json:"meeting_link,omitempty"`
	// FacultyNotes holds the value of the "faculty_notes" field.
	FacultyNotes *string `json:"faculty_notes,omitempty"`
	// NotesUpdatedAt holds the value of the "notes_updated_at" field.
	NotesUpdatedAt *time.Time `json:"notes_updated_at,omitempty"`
	// StudentFeedback holds the value of the "student_feedback" field.
	StudentFeedback *string `json:"student_feedback,omitempty"`
	// StudentRating holds the value of the "student_rating" field.
	StudentRating *int `json:"student_rating,omitempty"`
	// FeedbackSubmittedAt holds the value of the "feedback_submitted_at" field.
	FeedbackSubmittedAt *time.Time `json:"feedback_submitted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AppointmentQuery when eager-loading is set.
	Edges        AppointmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AppointmentEdges holds the relations/edges for other nodes in the graph.
type AppointmentEdges struct {
	// Student holds the value of the student edge.
	Student *User `json:"student,omitempty"`
	// Faculty holds the value of the faculty edge.
	Faculty *User `json:"faculty,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) StudentOrErr() (*User, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// FacultyOrErr returns the Faculty value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AppointmentEdges) FacultyOrErr() (*User, error) {
	if e.Faculty != nil {
		return e.Faculty, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "faculty"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Appointment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case appointment.FieldStudentRating:
			values[i] = new(sql.NullInt64)
		case appointment.FieldStudentName, appointment.FieldStudentEmail, appointment.FieldFacultyName, appointment.FieldFacultyEmail, appointment.FieldReason, appointment.FieldStatus, appointment.FieldMeetingLink, appointment.FieldFacultyNotes, appointment.FieldStudentFeedback:
			values[i] = new(sql.NullString)
		case appointment.FieldCreatedAt, appointment.FieldUpdatedAt, appointment.FieldRequestedTime, appointment.FieldRescheduleTime, appointment.FieldNotesUpdatedAt, appointment.FieldFeedbackSubmittedAt:
			values[i] = new(sql.NullTime)
		case appointment.FieldID, appointment.FieldStudentID, appointment.FieldFacultyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Appointment fields.
func (_m *Appointment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case appointment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case appointment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case appointment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case appointment.FieldStudentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value != nil {
				_m.StudentID = *value
			}
		case appointment.FieldFacultyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field faculty_id", values[i])
			} else if value != nil {
				_m.FacultyID = *value
			}
		case appointment.FieldStudentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_name", values[i])
			} else if value.Valid {
				_m.StudentName = value.String
			}
		case appointment.FieldStudentEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_email", values[i])
			} else if value.Valid {
				_m.StudentEmail = value.String
			}
		case appointment.FieldFacultyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field faculty_name", values[i])
			} else if value.Valid {
				_m.FacultyName = value.String
			}
		case appointment.FieldFacultyEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field faculty_email", values[i])
			} else if value.Valid {
				_m.FacultyEmail = value.String
			}
		case appointment.FieldRequestedTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_time", values[i])
			} else if value.Valid {
				_m.RequestedTime = value.Time
			}
		case appointment.FieldRescheduleTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reschedule_time", values[i])
			} else if value.Valid {
				_m.RescheduleTime = new(time.Time)
				*_m.RescheduleTime = value.Time
			}
		case appointment.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case appointment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = appointment.Status(value.String)
			}
		case appointment.FieldMeetingLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_link", values[i])
			} else if value.Valid {
				_m.MeetingLink = new(string)
				*_m.MeetingLink = value.String
			}
		case appointment.FieldFacultyNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field faculty_notes", values[i])
			} else if value.Valid {
				_m.FacultyNotes = new(string)
				*_m.FacultyNotes = value.String
			}
		case appointment.FieldNotesUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field notes_updated_at", values[i])
			} else if value.Valid {
				_m.NotesUpdatedAt = new(time.Time)
				*_m.NotesUpdatedAt = value.Time
			}
		case appointment.FieldStudentFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_feedback", values[i])
			} else if value.Valid {
				_m.StudentFeedback = new(string)
				*_m.StudentFeedback = value.String
			}
		case appointment.FieldStudentRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_rating", values[i])
			} else if value.Valid {
				_m.StudentRating = new(int)
				*_m.StudentRating = int(value.Int64)
			}
		case appointment.FieldFeedbackSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_submitted_at", values[i])
			} else if value.Valid {
				_m.FeedbackSubmittedAt = new(time.Time)
				*_m.FeedbackSubmittedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Appointment.
// This includes values selected through modifiers, order, etc.
func (_m *Appointment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStudent queries the "student" edge of the Appointment entity.
func (_m *Appointment) QueryStudent() *UserQuery {
	return NewAppointmentClient(_m.config).QueryStudent(_m)
}

// QueryFaculty queries the "faculty" edge of the Appointment entity.
func (_m *Appointment) QueryFaculty() *UserQuery {
	return NewAppointmentClient(_m.config).QueryFaculty(_m)
}

// Update returns a builder for updating this Appointment.
// Note that you need to call Appointment.Unwrap() before calling this method if this Appointment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Appointment) Update() *AppointmentUpdateOne {
	return NewAppointmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Appointment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Appointment) Unwrap() *Appointment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Appointment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Appointment) String() string {
	var builder strings.Builder
	builder.WriteString("Appointment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("faculty_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FacultyID))
	builder.WriteString(", ")
	builder.WriteString("student_name=")
	builder.WriteString(_m.StudentName)
	builder.WriteString(", ")
	builder.WriteString("student_email=")
	builder.WriteString(_m.StudentEmail)
	builder.WriteString(", ")
	builder.WriteString("faculty_name=")
	builder.WriteString(_m.FacultyName)
	builder.WriteString(", ")
	builder.WriteString("faculty_email=")
	builder.WriteString(_m.FacultyEmail)
	builder.WriteString(", ")
	builder.WriteString("requested_time=")
	builder.WriteString(_m.RequestedTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RescheduleTime; v != nil {
		builder.WriteString("reschedule_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.MeetingLink; v != nil {
		builder.WriteString("meeting_link=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FacultyNotes; v != nil {
		builder.WriteString("faculty_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NotesUpdatedAt; v != nil {
		builder.WriteString("notes_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StudentFeedback; v != nil {
		builder.WriteString("student_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StudentRating; v != nil {
		builder.WriteString("student_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FeedbackSubmittedAt; v != nil {
		builder.WriteString("feedback_submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Appointments is a parsable slice of Appointment.
type Appointments []*Appointment
