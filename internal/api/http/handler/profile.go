package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/proflink/proflink_backend/internal/service/profile"
	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
)

type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func mapProfileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, profile.ErrWrongRole):
		return forbidden(c)
	case errors.Is(err, profile.ErrInvalidGPA),
		errors.Is(err, profile.ErrInvalidConsultType),
		errors.Is(err, profile.ErrInvalidDuration),
		errors.Is(err, profile.ErrInvalidDailyLimit),
		errors.Is(err, profile.ErrInvalidBuffer),
		errors.Is(err, profile.ErrInvalidAdvanceBooking),
		errors.Is(err, profile.ErrInvalidScheduleWeekday):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/profiles/student
func (h *ProfileHandler) GetStudent(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetStudentProfile(c.Context(), claims.UserID)
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, p)
}

// PUT /api/v1/profiles/student
func (h *ProfileHandler) SaveStudent(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		StudentNumber        *string  `json:"student_number"`
		Year                 *string  `json:"year"`
		Major                *string  `json:"major"`
		Department           *string  `json:"department"`
		GPA                  *float64 `json:"gpa"`
		ExpectedGraduation   *string  `json:"expected_graduation"`
		PreferredDepartments []string `json:"preferred_departments"`
		ConsultationTypes    []string `json:"consultation_types"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.SaveStudentProfile(c.Context(), claims.UserID, profile.StudentPatch{
		StudentNumber:        body.StudentNumber,
		Year:                 body.Year,
		Major:                body.Major,
		Department:           body.Department,
		GPA:                  body.GPA,
		ExpectedGraduation:   body.ExpectedGraduation,
		PreferredDepartments: body.PreferredDepartments,
		ConsultationTypes:    body.ConsultationTypes,
	})
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, p)
}

// GET /api/v1/profiles/faculty
func (h *ProfileHandler) GetFaculty(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetFacultyProfile(c.Context(), claims.UserID)
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, p)
}

// PUT /api/v1/profiles/faculty
func (h *ProfileHandler) SaveFaculty(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		EmployeeNumber           *string             `json:"employee_number"`
		Title                    *string             `json:"title"`
		Department               *string             `json:"department"`
		Office                   *string             `json:"office"`
		Expertise                []string            `json:"expertise"`
		Education                []string            `json:"education"`
		PublicationCount         *int                `json:"publication_count"`
		YearsExperience          *int                `json:"years_experience"`
		DefaultDurationMin       *int                `json:"default_duration_min"`
		MaxDailyAppointments     *int                `json:"max_daily_appointments"`
		BufferMinutes            *int                `json:"buffer_minutes"`
		AdvanceBookingDays       *int                `json:"advance_booking_days"`
		AllowedConsultationTypes []string            `json:"allowed_consultation_types"`
		WeeklySchedule           map[string][]string `json:"weekly_schedule"`
		TimeZone                 *string             `json:"time_zone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.SaveFacultyProfile(c.Context(), claims.UserID, profile.FacultyPatch{
		EmployeeNumber:           body.EmployeeNumber,
		Title:                    body.Title,
		Department:               body.Department,
		Office:                   body.Office,
		Expertise:                body.Expertise,
		Education:                body.Education,
		PublicationCount:         body.PublicationCount,
		YearsExperience:          body.YearsExperience,
		DefaultDurationMin:       body.DefaultDurationMin,
		MaxDailyAppointments:     body.MaxDailyAppointments,
		BufferMinutes:            body.BufferMinutes,
		AdvanceBookingDays:       body.AdvanceBookingDays,
		AllowedConsultationTypes: body.AllowedConsultationTypes,
		WeeklySchedule:           body.WeeklySchedule,
		TimeZone:                 body.TimeZone,
	})
	if err != nil {
		return mapProfileError(c, err)
	}

	return ok(c, p)
}
