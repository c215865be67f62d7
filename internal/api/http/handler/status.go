package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/kvbuilders/app/internal/service/status"
)

type StatusHandler struct {
	svc status.Service
}

func NewStatusHandler(svc status.Service) *StatusHandler {
	return &StatusHandler{svc: svc}
}

type createStatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

func (h *StatusHandler) Create(c fiber.Ctx) error {
	var req createStatusCheckRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ClientName == "" {
		return badRequest(c, "client_name is required")
	}

	sc, err := h.svc.Create(c.Context(), req.ClientName)
	if err != nil {
		slog.Error("status check create failed", "err", err)
		return internalError(c)
	}
	return created(c, sc)
}

func (h *StatusHandler) List(c fiber.Ctx) error {
	checks, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("status check listing failed", "err", err)
		return internalError(c)
	}
	return ok(c, checks)
}
