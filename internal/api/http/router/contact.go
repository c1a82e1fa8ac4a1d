package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/byfernandatovar/byfernandatovar/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler) {
	api.Post("/contact", h.Submit)

	// the site's form only ever POSTs; anything else is a caller bug
	api.All("/contact", handler.ContactMethodNotAllowed)
}
