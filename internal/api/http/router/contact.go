package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kvbuilders/app/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler, limit fiber.Handler) {
	api.Post("/contact", h.Submit, limit)
}
