package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/proflink/proflink_backend/internal/api/http/handler"
	"github.com/proflink/proflink_backend/pkg/authorize"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	h *handler.NotificationHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	notifs := api.Group("/notifications", authRequired, requireSelf(authorize.ResourceNotification, authorize.ActionManage))

	notifs.Get("/", h.List)
	notifs.Get("/stream", h.Stream)
	notifs.Get("/unread-count", h.UnreadCount)
	notifs.Post("/read-all", h.MarkAllRead)
	notifs.Post("/:id/read", h.MarkRead)
	notifs.Delete("/", h.DeleteAll)
	notifs.Delete("/:id", h.Delete)
}
