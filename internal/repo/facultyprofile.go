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
	"github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// FacultyProfile is the model entity for the FacultyProfile schema.
type FacultyProfile struct {
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
	// EmployeeNumber holds the value of the "employee_number" field.
	EmployeeNumber *string `json:"employee_number,omitempty"`
	// e.g. Assistant Professor
	Title *string `json:"title,omitempty"`
	// Department holds the value of the "department" field.
	Department *string `json:"department,omitempty"`
	// Office holds the value of the "office" field.
	Office *string `json:"office,omitempty"`
	// Expertise holds the value of the "expertise" field.
	Expertise []string `json:"expertise,omitempty"`
	// Education holds the value of the "education" field.
	Education []string `json:"education,omitempty"`
	// PublicationCount holds the value of the "publication_count" field.
	PublicationCount int `json:"publication_count,omitempty"`
	// YearsExperience holds the value of the "years_experience" field.
	YearsExperience int `json:"years_experience,omitempty"`
	// DefaultDurationMin holds the value of the "default_duration_min" field.
	DefaultDurationMin int `json:"default_duration_min,omitempty"`
	// MaxDailyAppointments holds the value of the "max_daily_appointments" field.
	MaxDailyAppointments int `json:"max_daily_appointments,omitempty"`
	// BufferMinutes holds the value of the "buffer_minutes" field.
	BufferMinutes int `json:"buffer_minutes,omitempty"`
	// AdvanceBookingDays holds the value of the "advance_booking_days" field.
	AdvanceBookingDays int `json:"advance_booking_days,omitempty"`
	// AllowedConsultationTypes holds the value of the "allowed_consultation_types" field.
	AllowedConsultationTypes []string `json:"allowed_consultation_types,omitempty"`
	// weekday → list of HH:MM-HH:MM windows
	WeeklySchedule map[string][]string `json:"weekly_schedule,omitempty"`
	// TimeZone holds the value of the "time_zone" field.
	TimeZone string `json:"time_zone,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacultyProfileQuery when eager-loading is set.
	Edges        FacultyProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FacultyProfileEdges holds the relations/edges for other nodes in the graph.
type FacultyProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FacultyProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FacultyProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facultyprofile.FieldExpertise, facultyprofile.FieldEducation, facultyprofile.FieldAllowedConsultationTypes, facultyprofile.FieldWeeklySchedule:
			values[i] = new([]byte)
		case facultyprofile.FieldPublicationCount, facultyprofile.FieldYearsExperience, facultyprofile.FieldDefaultDurationMin, facultyprofile.FieldMaxDailyAppointments, facultyprofile.FieldBufferMinutes, facultyprofile.FieldAdvanceBookingDays:
			values[i] = new(sql.NullInt64)
		case facultyprofile.FieldProfileID, facultyprofile.FieldEmployeeNumber, facultyprofile.FieldTitle, facultyprofile.FieldDepartment, facultyprofile.FieldOffice, facultyprofile.FieldTimeZone:
			values[i] = new(sql.NullString)
		case facultyprofile.FieldCreatedAt, facultyprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case facultyprofile.FieldID, facultyprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FacultyProfile fields.
func (_m *FacultyProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facultyprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case facultyprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case facultyprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case facultyprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case facultyprofile.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case facultyprofile.FieldEmployeeNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_number", values[i])
			} else if value.Valid {
				_m.EmployeeNumber = new(string)
				*_m.EmployeeNumber = value.String
			}
		case facultyprofile.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case facultyprofile.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = new(string)
				*_m.Department = value.String
			}
		case facultyprofile.FieldOffice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field office", values[i])
			} else if value.Valid {
				_m.Office = new(string)
				*_m.Office = value.String
			}
		case facultyprofile.FieldExpertise:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expertise", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Expertise); err != nil {
					return fmt.Errorf("unmarshal field expertise: %w", err)
				}
			}
		case facultyprofile.FieldEducation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field education", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Education); err != nil {
					return fmt.Errorf("unmarshal field education: %w", err)
				}
			}
		case facultyprofile.FieldPublicationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field publication_count", values[i])
			} else if value.Valid {
				_m.PublicationCount = int(value.Int64)
			}
		case facultyprofile.FieldYearsExperience:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years_experience", values[i])
			} else if value.Valid {
				_m.YearsExperience = int(value.Int64)
			}
		case facultyprofile.FieldDefaultDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_duration_min", values[i])
			} else if value.Valid {
				_m.DefaultDurationMin = int(value.Int64)
			}
		case facultyprofile.FieldMaxDailyAppointments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_daily_appointments", values[i])
			} else if value.Valid {
				_m.MaxDailyAppointments = int(value.Int64)
			}
		case facultyprofile.FieldBufferMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field buffer_minutes", values[i])
			} else if value.Valid {
				_m.BufferMinutes = int(value.Int64)
			}
		case facultyprofile.FieldAdvanceBookingDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field advance_booking_days", values[i])
			} else if value.Valid {
				_m.AdvanceBookingDays = int(value.Int64)
			}
		case facultyprofile.FieldAllowedConsultationTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_consultation_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedConsultationTypes); err != nil {
					return fmt.Errorf("unmarshal field allowed_consultation_types: %w", err)
				}
			}
		case facultyprofile.FieldWeeklySchedule:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_schedule", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeeklySchedule); err != nil {
					return fmt.Errorf("unmarshal field weekly_schedule: %w", err)
				}
			}
		case facultyprofile.FieldTimeZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_zone", values[i])
			} else if value.Valid {
				_m.TimeZone = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FacultyProfile.
// This includes values selected through modifiers, order, etc.
func (_m *FacultyProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the FacultyProfile entity.
func (_m *FacultyProfile) QueryUser() *UserQuery {
	return NewFacultyProfileClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this FacultyProfile.
// Note that you need to call FacultyProfile.Unwrap() before calling this method if this FacultyProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FacultyProfile) Update() *FacultyProfileUpdateOne {
	return NewFacultyProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FacultyProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FacultyProfile) Unwrap() *FacultyProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: FacultyProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FacultyProfile) String() string {
	var builder strings.Builder
	builder.WriteString("FacultyProfile(")
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
	if v := _m.EmployeeNumber; v != nil {
		builder.WriteString("employee_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Department; v != nil {
		builder.WriteString("department=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Office; v != nil {
		builder.WriteString("office=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("expertise=")
	builder.WriteString(fmt.Sprintf("%v", _m.Expertise))
	builder.WriteString(", ")
	builder.WriteString("education=")
	builder.WriteString(fmt.Sprintf("%v", _m.Education))
	builder.WriteString(", ")
	builder.WriteString("publication_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PublicationCount))
	builder.WriteString(", ")
	builder.WriteString("years_experience=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearsExperience))
	builder.WriteString(", ")
	builder.WriteString("default_duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultDurationMin))
	builder.WriteString(", ")
	builder.WriteString("max_daily_appointments=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDailyAppointments))
	builder.WriteString(", ")
	builder.WriteString("buffer_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.BufferMinutes))
	builder.WriteString(", ")
	builder.WriteString("advance_booking_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdvanceBookingDays))
	builder.WriteString(", ")
	builder.WriteString("allowed_consultation_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedConsultationTypes))
	builder.WriteString(", ")
	builder.WriteString("weekly_schedule=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklySchedule))
	builder.WriteString(", ")
	builder.WriteString("time_zone=")
	builder.WriteString(_m.TimeZone)
	builder.WriteByte(')')
	return builder.String()
}

// FacultyProfiles is a parsable slice of FacultyProfile.
type FacultyProfiles []*FacultyProfile
