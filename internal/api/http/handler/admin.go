package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/kvbuilders/app/internal/repo"
	"github.com/kvbuilders/app/internal/service/inquiry"
)

type AdminHandler struct {
	svc inquiry.Service
}

func NewAdminHandler(svc inquiry.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) ListInquiries(c fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("inquiry listing failed", "err", err)
		return internalError(c)
	}
	return ok(c, items)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateStatus(c fiber.Ctx) error {
	id := c.Params("id")

	// Status may arrive as a query parameter or a JSON body field.
	status := c.Query("status")
	if status == "" {
		var req updateStatusRequest
		if err := c.Bind().JSON(&req); err == nil {
			status = req.Status
		}
	}
	if status == "" {
		return badRequest(c, "status is required")
	}

	if err := h.svc.UpdateStatus(c.Context(), id, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound(c, "Inquiry not found")
		}
		slog.Error("inquiry status update failed", "inquiry_id", id, "err", err)
		return internalError(c)
	}
	return ok(c, fiber.Map{"message": "Status updated successfully"})
}
