package handler

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/proflink/proflink_backend/internal/service/notification"
	"github.com/proflink/proflink_backend/internal/sse"
	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
)

type NotificationHandler struct {
	svc    notification.Service
	broker *sse.Broker
}

func NewNotificationHandler(svc notification.Service, broker *sse.Broker) *NotificationHandler {
	return &NotificationHandler{svc: svc, broker: broker}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, notification.ErrInvalidType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		UnreadOnly bool `query:"unread_only"`
		Page       int  `query:"page"`
		PerPage    int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	notifs, err := h.svc.List(c.Context(), claims.UserID, q.UnreadOnly, q.Page, q.PerPage)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, notifs)
}

// GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	n, err := h.svc.UnreadCount(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{"unread": n})
}

// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.MarkRead(c.Context(), notifID, claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	if err := h.svc.MarkAllRead(c.Context(), claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// DELETE /api/v1/notifications/:id
func (h *NotificationHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	if err := h.svc.Delete(c.Context(), notifID, claims.UserID); err != nil {
		return mapNotificationError(c, err)
	}

	return noContent(c)
}

// DELETE /api/v1/notifications
func (h *NotificationHandler) DeleteAll(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	n, err := h.svc.DeleteAll(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{"deleted": n})
}

// GET /api/v1/notifications/stream
//
// Server-sent events. The connection stays open until the client disconnects;
// each event is a JSON notification payload published by the fan-out worker.
func (h *NotificationHandler) Stream(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	userID := claims.UserID

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	ch := h.broker.Subscribe(userID)

	return c.SendStreamWriter(func(w *bufio.Writer) {
		defer h.broker.Unsubscribe(userID, ch)

		heartbeat := time.NewTicker(streamHeartbeatInterval)
		defer heartbeat.Stop()

		streamEvents(w, ch, heartbeat.C)
	})
}

// streamHeartbeatInterval bounds how long a dead connection can linger: a
// subscriber with no traffic still gets a periodic comment whose flush
// surfaces the write error.
const streamHeartbeatInterval = 30 * time.Second

// streamEvents writes SSE frames until the channel closes or a flush fails.
// The heartbeat comment keeps idle connections honest; without it a client
// that went away is only noticed on the next notification, which may never
// come.
func streamEvents(w *bufio.Writer, ch <-chan sse.Event, heartbeat <-chan time.Time) {
	// Tell the client the stream is live before the first event.
	fmt.Fprint(w, ": connected\n\n")
	if err := w.Flush(); err != nil {
		return
	}

	for {
		select {
		case ev, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, ev.Data)
			if err := w.Flush(); err != nil {
				// Client went away; Unsubscribe closes the channel.
				return
			}
		case <-heartbeat:
			fmt.Fprint(w, ": heartbeat\n\n")
			if err := w.Flush(); err != nil {
				return
			}
		}
	}
}
