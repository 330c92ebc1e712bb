package profile

import (
	"errors"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestValidateStudentPatch(t *testing.T) {
	tests := []struct {
		name    string
		patch   StudentPatch
		wantErr error
	}{
		{
			name:  "empty patch",
			patch: StudentPatch{},
		},
		{
			name:  "valid gpa",
			patch: StudentPatch{GPA: floatPtr(3.7)},
		},
		{
			name:  "gpa at bounds",
			patch: StudentPatch{GPA: floatPtr(4.0)},
		},
		{
			name:    "gpa above range",
			patch:   StudentPatch{GPA: floatPtr(4.5)},
			wantErr: ErrInvalidGPA,
		},
		{
			name:    "negative gpa",
			patch:   StudentPatch{GPA: floatPtr(-0.1)},
			wantErr: ErrInvalidGPA,
		},
		{
			name:  "known consultation types",
			patch: StudentPatch{ConsultationTypes: []string{"office_hours", "general"}},
		},
		{
			name:    "unknown consultation type",
			patch:   StudentPatch{ConsultationTypes: []string{"astral_projection"}},
			wantErr: ErrInvalidConsultType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStudentPatch(tt.patch)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateStudentPatch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFacultyPatch(t *testing.T) {
	tests := []struct {
		name    string
		patch   FacultyPatch
		wantErr error
	}{
		{
			name:  "empty patch",
			patch: FacultyPatch{},
		},
		{
			name: "valid booking settings",
			patch: FacultyPatch{
				DefaultDurationMin:   intPtr(30),
				MaxDailyAppointments: intPtr(8),
				BufferMinutes:        intPtr(0),
				AdvanceBookingDays:   intPtr(14),
			},
		},
		{
			name:    "zero duration",
			patch:   FacultyPatch{DefaultDurationMin: intPtr(0)},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "zero daily limit",
			patch:   FacultyPatch{MaxDailyAppointments: intPtr(0)},
			wantErr: ErrInvalidDailyLimit,
		},
		{
			name:    "negative buffer",
			patch:   FacultyPatch{BufferMinutes: intPtr(-5)},
			wantErr: ErrInvalidBuffer,
		},
		{
			name:    "zero advance booking window",
			patch:   FacultyPatch{AdvanceBookingDays: intPtr(0)},
			wantErr: ErrInvalidAdvanceBooking,
		},
		{
			name: "valid weekly schedule",
			patch: FacultyPatch{
				WeeklySchedule: map[string][]string{
					"monday":    {"09:00-12:00"},
					"wednesday": {"14:00-17:00"},
				},
			},
		},
		{
			name: "bogus weekday",
			patch: FacultyPatch{
				WeeklySchedule: map[string][]string{"moonday": {"09:00-12:00"}},
			},
			wantErr: ErrInvalidScheduleWeekday,
		},
		{
			name:  "known consultation types",
			patch: FacultyPatch{AllowedConsultationTypes: []string{"thesis_advising"}},
		},
		{
			name:    "unknown consultation type",
			patch:   FacultyPatch{AllowedConsultationTypes: []string{"seance"}},
			wantErr: ErrInvalidConsultType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFacultyPatch(tt.patch)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateFacultyPatch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
