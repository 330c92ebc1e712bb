// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/studentprofile"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// StudentProfile is the model entity for the StudentProfile schema.
type StudentProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID string `json:"profile_id,omitempty"`
	// StudentNumber holds the value of the "student_number" field.
	StudentNumber *string `json:"student_number,omitempty"`
	// Year holds the value of the "year" field.
	Year *string `json:"year,omitempty"`
	// Major holds the value of the "major" field.
	Major *string `json:"major,omitempty"`
	// Department holds the value of the "department" field.
	Department *string `json:"department,omitempty"`
	// Gpa holds the value of the "gpa" field.
	Gpa *float64 `json:"gpa,omitempty"`
	// ExpectedGraduation holds the value of the "expected_graduation" field.
	ExpectedGraduation *string `json:"expected_graduation,omitempty"`
	// PreferredDepartments holds the value of the "preferred_departments" field.
	PreferredDepartments []string `json:"preferred_departments,omitempty"`
	// ConsultationTypes holds the value of the "consultation_types" field.
	ConsultationTypes []string `json:"consultation_types,omitempty"`
	// TotalAppointments holds the value of the "total_appointments" field.
	TotalAppointments int `json:"total_appointments,omitempty"`
	// CompletedAppointments holds the value of the "completed_appointments" field.
	CompletedAppointments int `json:"completed_appointments,omitempty"`
	// CancelledAppointments holds the value of the "cancelled_appointments" field.
	CancelledAppointments int `json:"cancelled_appointments,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudentProfileQuery when eager-loading is set.
	Edges        StudentProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudentProfileEdges holds the relations/edges for other nodes in the graph.
type StudentProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudentProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentprofile.FieldPreferredDepartments, studentprofile.FieldConsultationTypes:
			values[i] = new([]byte)
		case studentprofile.FieldGpa:
			values[i] = new(sql.NullFloat64)
		case studentprofile.FieldTotalAppointments, studentprofile.FieldCompletedAppointments, studentprofile.FieldCancelledAppointments:
			values[i] = new(sql.NullInt64)
		case studentprofile.FieldProfileID, studentprofile.FieldStudentNumber, studentprofile.FieldYear, studentprofile.FieldMajor, studentprofile.FieldDepartment, studentprofile.FieldExpectedGraduation:
			values[i] = new(sql.NullString)
		case studentprofile.FieldCreatedAt, studentprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case studentprofile.FieldID, studentprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentProfile fields.
func (_m *StudentProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case studentprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case studentprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case studentprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case studentprofile.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case studentprofile.FieldStudentNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_number", values[i])
			} else if value.Valid {
				_m.StudentNumber = new(string)
				*_m.StudentNumber = value.String
			}
		case studentprofile.FieldYear:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = new(string)
				*_m.Year = value.String
			}
		case studentprofile.FieldMajor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field major", values[i])
			} else if value.Valid {
				_m.Major = new(string)
				*_m.Major = value.String
			}
		case studentprofile.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = new(string)
				*_m.Department = value.String
			}
		case studentprofile.FieldGpa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gpa", values[i])
			} else if value.Valid {
				_m.Gpa = new(float64)
				*_m.Gpa = value.Float64
			}
		case studentprofile.FieldExpectedGraduation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_graduation", values[i])
			} else if value.Valid {
				_m.ExpectedGraduation = new(string)
				*_m.ExpectedGraduation = value.String
			}
		case studentprofile.FieldPreferredDepartments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_departments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PreferredDepartments); err != nil {
					return fmt.Errorf("unmarshal field preferred_departments: %w", err)
				}
			}
		case studentprofile.FieldConsultationTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConsultationTypes); err != nil {
					return fmt.Errorf("unmarshal field consultation_types: %w", err)
				}
			}
		case studentprofile.FieldTotalAppointments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_appointments", values[i])
			} else if value.Valid {
				_m.TotalAppointments = int(value.Int64)
			}
		case studentprofile.FieldCompletedAppointments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_appointments", values[i])
			} else if value.Valid {
				_m.CompletedAppointments = int(value.Int64)
			}
		case studentprofile.FieldCancelledAppointments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_appointments", values[i])
			} else if value.Valid {
				_m.CancelledAppointments = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentProfile.
// This includes values selected through modifiers, order, etc.
func (_m *StudentProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the StudentProfile entity.
func (_m *StudentProfile) QueryUser() *UserQuery {
	return NewStudentProfileClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this StudentProfile.
// Note that you need to call StudentProfile.Unwrap() before calling this method if this StudentProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentProfile) Update() *StudentProfileUpdateOne {
	return NewStudentProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentProfile) Unwrap() *StudentProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: StudentProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentProfile) String() string {
	var builder strings.Builder
	builder.WriteString("StudentProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(_m.ProfileID)
	builder.WriteString(", ")
	if v := _m.StudentNumber; v != nil {
		builder.WriteString("student_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Year; v != nil {
		builder.WriteString("year=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Major; v != nil {
		builder.WriteString("major=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Department; v != nil {
		builder.WriteString("department=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Gpa; v != nil {
		builder.WriteString("gpa=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExpectedGraduation; v != nil {
		builder.WriteString("expected_graduation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("preferred_departments=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreferredDepartments))
	builder.WriteString(", ")
	builder.WriteString("consultation_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsultationTypes))
	builder.WriteString(", ")
	builder.WriteString("total_appointments=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAppointments))
	builder.WriteString(", ")
	builder.WriteString("completed_appointments=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedAppointments))
	builder.WriteString(", ")
	builder.WriteString("cancelled_appointments=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelledAppointments))
	builder.WriteByte(')')
	return builder.String()
}

// StudentProfiles is a parsable slice of StudentProfile.
type StudentProfiles []*StudentProfile
