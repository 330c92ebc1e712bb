package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/proflink/proflink_backend/internal/api/http/handler"
	"github.com/proflink/proflink_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), h.Request)
	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), h.List)
	appts.Get("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), h.GetByID)

	// Faculty workflow. Ownership of the specific appointment is checked again
	// in the service layer.
	appts.Post("/:id/accept", requirePerm(authorize.ResourceAppointment, authorize.ActionDecide), h.Accept)
	appts.Post("/:id/decline", requirePerm(authorize.ResourceAppointment, authorize.ActionDecide), h.Decline)
	appts.Post("/:id/reschedule", requirePerm(authorize.ResourceAppointment, authorize.ActionReschedule), h.Reschedule)

	// Student workflow.
	appts.Post("/:id/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), h.Cancel)

	// Annotations: faculty notes and student feedback.
	appts.Post("/:id/notes", requirePerm(authorize.ResourceAppointment, authorize.ActionAnnotate), h.AddNotes)
	appts.Post("/:id/feedback", requirePerm(authorize.ResourceAppointment, authorize.ActionAnnotate), h.SubmitFeedback)
}
