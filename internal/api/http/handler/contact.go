package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/kvbuilders/app/internal/service/inquiry"
)

type ContactHandler struct {
	svc inquiry.Service
}

func NewContactHandler(svc inquiry.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Service == "" || req.Message == "" {
		return badRequest(c, "name, email, service, and message are required")
	}

	inq, err := h.svc.Submit(c.Context(), inquiry.CreateRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		var dup *inquiry.DuplicateError
		if errors.As(err, &dup) {
			return tooManyRequests(c, fmt.Sprintf(
				"You have already submitted an inquiry. Please wait %d more days before submitting again.",
				dup.RemainingDays))
		}
		slog.Error("contact submission failed", "err", err)
		return internalError(c)
	}
	return created(c, inq)
}
