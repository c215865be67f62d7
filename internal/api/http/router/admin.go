package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/kvbuilders/app/internal/api/http/handler"
)

func (r *Router) registerAdminRoutes(api fiber.Router, h *handler.AdminHandler, auth, limit fiber.Handler) {
	admin := api.Group("/admin", limit, auth)

	admin.Get("/inquiries", h.ListInquiries)
	admin.Patch("/inquiries/:id", h.UpdateStatus)
}
