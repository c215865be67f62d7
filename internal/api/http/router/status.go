package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kvbuilders/app/internal/api/http/handler"
)

func (r *Router) registerStatusRoutes(api fiber.Router, h *handler.StatusHandler) {
	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello World"})
	})

	api.Post("/status", h.Create)
	api.Get("/status", h.List)
}
