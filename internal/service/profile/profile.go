// Package profile manages the role-specific profile documents. Saves are
// merge-style upserts: only fields present in the request overwrite stored
// values. A faculty save also triggers the directory sync worker over NATS.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/proflink/proflink_backend/internal/repo"
	entfprofile "github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	entsprofile "github.com/proflink/proflink_backend/internal/repo/studentprofile"
	entuser "github.com/proflink/proflink_backend/internal/repo/user"
)

// DefaultProfileID is the active profile slot. Multiple slots are modeled in
// the schema but the API only exposes the default one today.
const DefaultProfileID = "profile01"

// ConsultationTypes lists the meeting kinds a faculty member may offer and a
// student may prefer.
var ConsultationTypes = []string{
	"office_hours",
	"project_discussion",
	"thesis_advising",
	"career_guidance",
	"general",
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// StudentPatch carries the updatable student profile fields. Nil means "keep
// the stored value".
type StudentPatch struct {
	StudentNumber        *string
	Year                 *string
	Major                *string
	Department           *string
	GPA                  *float64
	ExpectedGraduation   *string
	PreferredDepartments []string
	ConsultationTypes    []string
}

// FacultyPatch carries the updatable faculty profile fields.
type FacultyPatch struct {
	EmployeeNumber           *string
	Title                    *string
	Department               *string
	Office                   *string
	Expertise                []string
	Education                []string
	PublicationCount         *int
	YearsExperience          *int
	DefaultDurationMin       *int
	MaxDailyAppointments     *int
	BufferMinutes            *int
	AdvanceBookingDays       *int
	AllowedConsultationTypes []string
	WeeklySchedule           map[string][]string
	TimeZone                 *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetStudentProfile(ctx context.Context, userID uuid.UUID) (*repo.StudentProfile, error)
	SaveStudentProfile(ctx context.Context, userID uuid.UUID, patch StudentPatch) (*repo.StudentProfile, error)
	GetFacultyProfile(ctx context.Context, userID uuid.UUID) (*repo.FacultyProfile, error)
	SaveFacultyProfile(ctx context.Context, userID uuid.UUID, patch FacultyPatch) (*repo.FacultyProfile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type profileService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &profileService{db: db, nc: nc}
}

func (s *profileService) GetStudentProfile(ctx context.Context, userID uuid.UUID) (*repo.StudentProfile, error) {
	p, err := s.db.StudentProfile.Query().
		Where(
			entsprofile.UserID(userID),
			entsprofile.ProfileID(DefaultProfileID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get student profile: %w", err)
	}
	return p, nil
}

func (s *profileService) SaveStudentProfile(ctx context.Context, userID uuid.UUID, patch StudentPatch) (*repo.StudentProfile, error) {
	if err := validateStudentPatch(patch); err != nil {
		return nil, err
	}
	if err := s.requireRole(ctx, userID, entuser.RoleStudent); err != nil {
		return nil, err
	}

	existing, err := s.db.StudentProfile.Query().
		Where(
			entsprofile.UserID(userID),
			entsprofile.ProfileID(DefaultProfileID),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get student profile: %w", err)
	}

	var p *repo.StudentProfile
	if existing == nil {
		c := s.db.StudentProfile.Create().
			SetUserID(userID).
			SetProfileID(DefaultProfileID).
			SetNillableStudentNumber(patch.StudentNumber).
			SetNillableYear(patch.Year).
			SetNillableMajor(patch.Major).
			SetNillableDepartment(patch.Department).
			SetNillableGpa(patch.GPA).
			SetNillableExpectedGraduation(patch.ExpectedGraduation)
		if patch.PreferredDepartments != nil {
			c = c.SetPreferredDepartments(patch.PreferredDepartments)
		}
		if patch.ConsultationTypes != nil {
			c = c.SetConsultationTypes(patch.ConsultationTypes)
		}
		p, err = c.Save(ctx)
	} else {
		u := s.db.StudentProfile.UpdateOne(existing).
			SetNillableStudentNumber(patch.StudentNumber).
			SetNillableYear(patch.Year).
			SetNillableMajor(patch.Major).
			SetNillableDepartment(patch.Department).
			SetNillableGpa(patch.GPA).
			SetNillableExpectedGraduation(patch.ExpectedGraduation)
		if patch.PreferredDepartments != nil {
			u = u.SetPreferredDepartments(patch.PreferredDepartments)
		}
		if patch.ConsultationTypes != nil {
			u = u.SetConsultationTypes(patch.ConsultationTypes)
		}
		p, err = u.Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("save student profile: %w", err)
	}

	s.markProfileComplete(ctx, userID)

	return p, nil
}

func (s *profileService) GetFacultyProfile(ctx context.Context, userID uuid.UUID) (*repo.FacultyProfile, error) {
	p, err := s.db.FacultyProfile.Query().
		Where(
			entfprofile.UserID(userID),
			entfprofile.ProfileID(DefaultProfileID),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get faculty profile: %w", err)
	}
	return p, nil
}

func (s *profileService) SaveFacultyProfile(ctx context.Context, userID uuid.UUID, patch FacultyPatch) (*repo.FacultyProfile, error) {
	if err := validateFacultyPatch(patch); err != nil {
		return nil, err
	}
	if err := s.requireRole(ctx, userID, entuser.RoleFaculty); err != nil {
		return nil, err
	}

	existing, err := s.db.FacultyProfile.Query().
		Where(
			entfprofile.UserID(userID),
			entfprofile.ProfileID(DefaultProfileID),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get faculty profile: %w", err)
	}

	var p *repo.FacultyProfile
	if existing == nil {
		c := s.db.FacultyProfile.Create().
			SetUserID(userID).
			SetProfileID(DefaultProfileID).
			SetNillableEmployeeNumber(patch.EmployeeNumber).
			SetNillableTitle(patch.Title).
			SetNillableDepartment(patch.Department).
			SetNillableOffice(patch.Office).
			SetNillablePublicationCount(patch.PublicationCount).
			SetNillableYearsExperience(patch.YearsExperience).
			SetNillableDefaultDurationMin(patch.DefaultDurationMin).
			SetNillableMaxDailyAppointments(patch.MaxDailyAppointments).
			SetNillableBufferMinutes(patch.BufferMinutes).
			SetNillableAdvanceBookingDays(patch.AdvanceBookingDays).
			SetNillableTimeZone(patch.TimeZone)
		if patch.Expertise != nil {
			c = c.SetExpertise(patch.Expertise)
		}
		if patch.Education != nil {
			c = c.SetEducation(patch.Education)
		}
		if patch.AllowedConsultationTypes != nil {
			c = c.SetAllowedConsultationTypes(patch.AllowedConsultationTypes)
		}
		if patch.WeeklySchedule != nil {
			c = c.SetWeeklySchedule(patch.WeeklySchedule)
		}
		p, err = c.Save(ctx)
	} else {
		u := s.db.FacultyProfile.UpdateOne(existing).
			SetNillableEmployeeNumber(patch.EmployeeNumber).
			SetNillableTitle(patch.Title).
			SetNillableDepartment(patch.Department).
			SetNillableOffice(patch.Office).
			SetNillablePublicationCount(patch.PublicationCount).
			SetNillableYearsExperience(patch.YearsExperience).
			SetNillableDefaultDurationMin(patch.DefaultDurationMin).
			SetNillableMaxDailyAppointments(patch.MaxDailyAppointments).
			SetNillableBufferMinutes(patch.BufferMinutes).
			SetNillableAdvanceBookingDays(patch.AdvanceBookingDays).
			SetNillableTimeZone(patch.TimeZone)
		if patch.Expertise != nil {
			u = u.SetExpertise(patch.Expertise)
		}
		if patch.Education != nil {
			u = u.SetEducation(patch.Education)
		}
		if patch.AllowedConsultationTypes != nil {
			u = u.SetAllowedConsultationTypes(patch.AllowedConsultationTypes)
		}
		if patch.WeeklySchedule != nil {
			u = u.SetWeeklySchedule(patch.WeeklySchedule)
		}
		p, err = u.Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("save faculty profile: %w", err)
	}

	s.markProfileComplete(ctx, userID)

	// Kick the directory projection. The save already succeeded; a lost
	// event only delays the listing update until the next save.
	if s.nc != nil {
		subject := fmt.Sprintf("proflink.directory.sync.%s", userID.String())
		if err := s.nc.Publish(subject, []byte(userID.String())); err != nil {
			slog.Warn("failed to publish directory sync event",
				"user_id", userID,
				"error", err,
			)
		}
	}

	return p, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *profileService) requireRole(ctx context.Context, userID uuid.UUID, role entuser.Role) error {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}
	if u.Role != role {
		return ErrWrongRole
	}
	return nil
}

func (s *profileService) markProfileComplete(ctx context.Context, userID uuid.UUID) {
	err := s.db.User.Update().
		Where(entuser.ID(userID), entuser.ProfileComplete(false)).
		SetProfileComplete(true).
		Exec(ctx)
	if err != nil {
		slog.Warn("failed to mark profile complete", "user_id", userID, "error", err)
	}
}

func validateStudentPatch(p StudentPatch) error {
	if p.GPA != nil && (*p.GPA < 0 || *p.GPA > 4) {
		return ErrInvalidGPA
	}
	return validConsultationTypes(p.ConsultationTypes)
}

func validateFacultyPatch(p FacultyPatch) error {
	if p.DefaultDurationMin != nil && *p.DefaultDurationMin < 1 {
		return ErrInvalidDuration
	}
	if p.MaxDailyAppointments != nil && *p.MaxDailyAppointments < 1 {
		return ErrInvalidDailyLimit
	}
	if p.BufferMinutes != nil && *p.BufferMinutes < 0 {
		return ErrInvalidBuffer
	}
	if p.AdvanceBookingDays != nil && *p.AdvanceBookingDays < 1 {
		return ErrInvalidAdvanceBooking
	}
	for day := range p.WeeklySchedule {
		if !weekdays[day] {
			return ErrInvalidScheduleWeekday
		}
	}
	return validConsultationTypes(p.AllowedConsultationTypes)
}

func validConsultationTypes(types []string) error {
	for _, t := range types {
		ok := false
		for _, known := range ConsultationTypes {
			if t == known {
				ok = true
				break
			}
		}
		if !ok {
			return ErrInvalidConsultType
		}
	}
	return nil
}
