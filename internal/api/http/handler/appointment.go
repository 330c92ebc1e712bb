package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	entuser "github.com/proflink/proflink_backend/internal/repo/user"
	"github.com/proflink/proflink_backend/internal/service/appointment"
	"github.com/proflink/proflink_backend/internal/service/user"
	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
)

type AppointmentHandler struct {
	svc     appointment.Service
	userSvc user.Service
}

func NewAppointmentHandler(svc appointment.Service, userSvc user.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, userSvc: userSvc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound),
		errors.Is(err, appointment.ErrFacultyNotFound),
		errors.Is(err, appointment.ErrStudentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrNotYours):
		return forbidden(c)
	case errors.Is(err, appointment.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDecision),
		errors.Is(err, appointment.ErrRescheduleTimeRequired),
		errors.Is(err, appointment.ErrInvalidRating),
		errors.Is(err, appointment.ErrReasonRequired),
		errors.Is(err, appointment.ErrRequestedTimeRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/appointments
func (h *AppointmentHandler) Request(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FacultyID     string    `json:"faculty_id"`
		RequestedTime time.Time `json:"requested_time"`
		Reason        string    `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	facultyID, err := uuid.Parse(body.FacultyID)
	if err != nil {
		return badRequest(c, "invalid faculty_id")
	}

	appt, err := h.svc.Request(c.Context(), appointment.RequestInput{
		StudentID:     claims.UserID,
		FacultyID:     facultyID,
		RequestedTime: body.RequestedTime,
		Reason:        body.Reason,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// GET /api/v1/appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.userSvc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return unauthorized(c)
	}

	var q struct {
		Status  string `query:"status"`
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	if u.Role == entuser.RoleFaculty {
		list, err := h.svc.ListForFaculty(c.Context(), claims.UserID, req)
		if err != nil {
			return mapAppointmentError(c, err)
		}
		return ok(c, list)
	}

	list, err := h.svc.ListForStudent(c.Context(), claims.UserID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, list)
}

// GET /api/v1/appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), claims.UserID, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /api/v1/appointments/:id/accept
func (h *AppointmentHandler) Accept(c fiber.Ctx) error {
	return h.decide(c, appointment.DecisionAccept)
}

// POST /api/v1/appointments/:id/decline
func (h *AppointmentHandler) Decline(c fiber.Ctx) error {
	return h.decide(c, appointment.DecisionDecline)
}

func (h *AppointmentHandler) decide(c fiber.Ctx, decision string) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Decide(c.Context(), claims.UserID, apptID, decision)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /api/v1/appointments/:id/reschedule
func (h *AppointmentHandler) Reschedule(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		NewTime time.Time `json:"new_time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Reschedule(c.Context(), claims.UserID, apptID, body.NewTime)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /api/v1/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Cancel(c.Context(), claims.UserID, apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/appointments/:id/notes
func (h *AppointmentHandler) AddNotes(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.AddFacultyNotes(c.Context(), claims.UserID, apptID, body.Notes)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /api/v1/appointments/:id/feedback
func (h *AppointmentHandler) SubmitFeedback(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Rating   int    `json:"rating"`
		Feedback string `json:"feedback"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SubmitFeedback(c.Context(), claims.UserID, apptID, body.Rating, body.Feedback); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
