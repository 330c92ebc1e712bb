package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/proflink/proflink_backend/internal/api/http/handler"
	"github.com/proflink/proflink_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Self-owned account resource; the user:self role carries manage.
	users := api.Group("/users", authRequired, requireSelf(authorize.ResourceUser, authorize.ActionManage))
	users.Get("/me", h.GetMe)
	users.Patch("/me", h.UpdateMe)
	users.Delete("/me", h.DeleteMe)
}
