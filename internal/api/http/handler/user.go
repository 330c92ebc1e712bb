package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/proflink/proflink_backend/internal/service/user"
	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidFirstName),
		errors.Is(err, user.ErrInvalidLastName):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), claims.UserID, user.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// DELETE /api/v1/users/me
func (h *UserHandler) DeleteMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	if err := h.svc.Delete(c.Context(), claims.UserID); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}
