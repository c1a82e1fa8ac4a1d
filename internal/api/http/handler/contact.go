package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/byfernandatovar/byfernandatovar/internal/service/contact"
)

// User-facing messages, mirrored by the site's Spanish-language form.
const (
	msgSent          = "Mensaje enviado correctamente"
	msgMissingFields = "Faltan campos requeridos"
	msgInvalidEmail  = "Email inválido"
	msgRateLimited   = "Demasiados intentos. Por favor intenta más tarde."
	msgNotConfigured = "Configuración del servidor incompleta"
	msgSubmitFailed  = "Error al procesar el formulario. Por favor intenta nuevamente."
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit accepts the multipart contact form and runs the inquiry
// pipeline. Error bodies carry the Spanish message the form renders.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	inq := contact.Inquiry{
		BrideFullName:  c.FormValue("brideFullName"),
		GroomFullName:  c.FormValue("groomFullName"),
		Email:          c.FormValue("email"),
		Instagram:      c.FormValue("instagram"),
		WeddingDate:    c.FormValue("weddingDate"),
		WeddingCity:    c.FormValue("weddingCity"),
		WeddingVenue:   c.FormValue("weddingVenue"),
		GuestCount:     c.FormValue("guestCount"),
		WeddingPlanner: c.FormValue("weddingPlanner"),
		Budget:         c.FormValue("budget"),
		WeddingDetails: c.FormValue("weddingDetails"),
		LoveStory:      c.FormValue("loveStory"),
	}

	err := h.svc.Submit(c.Context(), clientIdentity(c), inq)
	switch {
	case err == nil:
		return success(c, msgSent)
	case errors.Is(err, contact.ErrMissingFields):
		return badRequest(c, msgMissingFields)
	case errors.Is(err, contact.ErrInvalidEmail):
		return badRequest(c, msgInvalidEmail)
	case errors.Is(err, contact.ErrRateLimited):
		return tooManyRequests(c, msgRateLimited)
	case errors.Is(err, contact.ErrNotConfigured):
		return serverError(c, msgNotConfigured)
	default:
		return serverError(c, msgSubmitFailed)
	}
}

// ContactMethodNotAllowed rejects non-POST calls to the contact endpoint.
func ContactMethodNotAllowed(c fiber.Ctx) error {
	return methodNotAllowed(c, "Método no permitido")
}

// clientIdentity picks the rate-limit key for a request: first entry of
// X-Forwarded-For, then X-Real-Ip, then a shared fallback bucket.
// Behind a proxy that strips client headers, all anonymous traffic
// shares the "unknown" bucket.
func clientIdentity(c fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if rip := c.Get("X-Real-Ip"); rip != "" {
		return rip
	}
	return "unknown"
}
