package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/proflink/proflink_backend/internal/api/http/handler"
	"github.com/proflink/proflink_backend/pkg/authorize"
)

func (r *Router) registerDirectoryRoutes(
	api fiber.Router,
	h *handler.DirectoryHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	dir := api.Group("/directory", authRequired)
	dir.Get("/", requirePerm(authorize.ResourceDirectory, authorize.ActionList), h.List)
	dir.Get("/:id", requirePerm(authorize.ResourceDirectory, authorize.ActionRead), h.GetByID)
}
