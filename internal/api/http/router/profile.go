package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/proflink/proflink_backend/internal/api/http/handler"
	"github.com/proflink/proflink_backend/pkg/authorize"
)

func (r *Router) registerProfileRoutes(
	api fiber.Router,
	h *handler.ProfileHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	profiles := api.Group("/profiles", authRequired)

	student := profiles.Group("/student", requireSelf(authorize.ResourceStudentProfile, authorize.ActionManage))
	student.Get("/", h.GetStudent)
	student.Put("/", h.SaveStudent)

	faculty := profiles.Group("/faculty", requireSelf(authorize.ResourceFacultyProfile, authorize.ActionManage))
	faculty.Get("/", h.GetFaculty)
	faculty.Put("/", h.SaveFaculty)
}
