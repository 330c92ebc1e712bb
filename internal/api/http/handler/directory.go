package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/proflink/proflink_backend/internal/service/directory"
)

type DirectoryHandler struct {
	svc directory.Service
}

func NewDirectoryHandler(svc directory.Service) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

func mapDirectoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, directory.ErrEntryNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/directory
func (h *DirectoryHandler) List(c fiber.Ctx) error {
	var q struct {
		Department string `query:"department"`
		Title      string `query:"title"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := directory.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Department != "" {
		req.Department = &q.Department
	}
	if q.Title != "" {
		req.Title = &q.Title
	}

	entries, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapDirectoryError(c, err)
	}

	return ok(c, entries)
}

// GET /api/v1/directory/:id
func (h *DirectoryHandler) GetByID(c fiber.Ctx) error {
	facultyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid directory id")
	}

	entry, err := h.svc.GetByID(c.Context(), facultyID)
	if err != nil {
		return mapDirectoryError(c, err)
	}

	return ok(c, entry)
}
