package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/byfernandatovar/byfernandatovar/internal/api/http/handler"
)

func (r *Router) registerPortfolioRoutes(api fiber.Router, h *handler.PortfolioHandler) {
	api.Get("/portfolio", h.List)
	api.Get("/portfolio/:slug", h.Get)
}
