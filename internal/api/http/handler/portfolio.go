package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/byfernandatovar/byfernandatovar/internal/service/portfolio"
)

type PortfolioHandler struct {
	svc portfolio.Service
}

func NewPortfolioHandler(svc portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// List returns every gallery with its cover image.
func (h *PortfolioHandler) List(c fiber.Ctx) error {
	cats, err := h.svc.Categories(c.Context())
	if err != nil {
		return serverError(c, "portfolio unavailable")
	}
	return ok(c, cats)
}

// Get returns one gallery with its full image list.
func (h *PortfolioHandler) Get(c fiber.Ctx) error {
	cat, err := h.svc.Category(c.Context(), c.Params("slug"))
	switch {
	case err == nil:
		return ok(c, cat)
	case errors.Is(err, portfolio.ErrCategoryNotFound):
		return notFound(c, "category not found")
	default:
		return serverError(c, "portfolio unavailable")
	}
}
