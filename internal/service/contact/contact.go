// Package contact implements the wedding inquiry submission pipeline:
// sanitize, validate, throttle, compose, dispatch.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/byfernandatovar/byfernandatovar/config"
	"github.com/byfernandatovar/byfernandatovar/internal/ratelimit"
	"github.com/byfernandatovar/byfernandatovar/pkg/email"
)

// Inquiry is a raw contact form submission. Values arrive as the client
// sent them; Submit sanitizes before anything else looks at them.
type Inquiry struct {
	BrideFullName  string
	GroomFullName  string
	Email          string
	Instagram      string
	WeddingDate    string
	WeddingCity    string
	WeddingVenue   string
	GuestCount     string
	WeddingPlanner string
	Budget         string
	WeddingDetails string
	LoveStory      string
}

// sanitized returns a copy with every field trimmed and stripped of
// angle brackets.
func (i Inquiry) sanitized() Inquiry {
	i.BrideFullName = sanitizeField(i.BrideFullName)
	i.GroomFullName = sanitizeField(i.GroomFullName)
	i.Email = sanitizeField(i.Email)
	i.Instagram = sanitizeField(i.Instagram)
	i.WeddingDate = sanitizeField(i.WeddingDate)
	i.WeddingCity = sanitizeField(i.WeddingCity)
	i.WeddingVenue = sanitizeField(i.WeddingVenue)
	i.GuestCount = sanitizeField(i.GuestCount)
	i.WeddingPlanner = sanitizeField(i.WeddingPlanner)
	i.Budget = sanitizeField(i.Budget)
	i.WeddingDetails = sanitizeField(i.WeddingDetails)
	i.LoveStory = sanitizeField(i.LoveStory)
	return i
}

// field maps a form field name to its sanitized value. Unknown names
// resolve to "" and therefore always count as missing.
func (i Inquiry) field(name string) string {
	switch name {
	case "brideFullName":
		return i.BrideFullName
	case "groomFullName":
		return i.GroomFullName
	case "email":
		return i.Email
	case "instagram":
		return i.Instagram
	case "weddingDate":
		return i.WeddingDate
	case "weddingCity":
		return i.WeddingCity
	case "weddingVenue":
		return i.WeddingVenue
	case "guestCount":
		return i.GuestCount
	case "weddingPlanner":
		return i.WeddingPlanner
	case "budget":
		return i.Budget
	case "weddingDetails":
		return i.WeddingDetails
	case "loveStory":
		return i.LoveStory
	}
	return ""
}

func (i Inquiry) missingFields(required []string) []string {
	var missing []string
	for _, name := range required {
		if i.field(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Mailer is the delivery dependency. *email.Client satisfies it.
type Mailer interface {
	IsConfigured() bool
	Send(ctx context.Context, m email.Message) error
}

// Service handles contact form submissions.
type Service interface {
	// Submit runs the full pipeline for one inquiry. identity is the
	// caller's rate-limit key, typically a client IP. A nil error means
	// the notification email was handed to the SMTP server.
	Submit(ctx context.Context, identity string, inq Inquiry) error
}

type service struct {
	to       string
	required []string
	mailer   Mailer
	limiter  ratelimit.Limiter
}

// New creates the contact service from central config.
func New(cfg *config.Config, mailer Mailer, limiter ratelimit.Limiter) Service {
	return &service{
		to:       cfg.Contact.To,
		required: cfg.RequiredContactFields(),
		mailer:   mailer,
		limiter:  limiter,
	}
}

func (s *service) Submit(ctx context.Context, identity string, inq Inquiry) error {
	inq = inq.sanitized()

	if missing := inq.missingFields(s.required); len(missing) > 0 {
		slog.Debug("contact: submission rejected, missing fields",
			"identity", identity,
			"missing", missing,
		)
		return ErrMissingFields
	}

	if !validEmail(inq.Email) {
		slog.Debug("contact: submission rejected, invalid email", "identity", identity)
		return ErrInvalidEmail
	}

	allowed, err := s.limiter.Allow(ctx, identity)
	if err != nil {
		return fmt.Errorf("contact: rate limit check: %w", err)
	}
	if !allowed {
		slog.Info("contact: submission throttled", "identity", identity)
		return ErrRateLimited
	}

	// Credentials are checked after throttling so a misconfigured server
	// still counts attempts against abusive clients.
	if !s.mailer.IsConfigured() || strings.TrimSpace(s.to) == "" {
		slog.Error("contact: email delivery not configured, dropping inquiry")
		return ErrNotConfigured
	}

	msg := email.BuildInquiryEmail(email.InquiryEmailData{
		To:             s.to,
		BrideFullName:  inq.BrideFullName,
		GroomFullName:  inq.GroomFullName,
		Email:          inq.Email,
		Instagram:      inq.Instagram,
		WeddingDate:    inq.WeddingDate,
		WeddingCity:    inq.WeddingCity,
		WeddingVenue:   inq.WeddingVenue,
		GuestCount:     inq.GuestCount,
		WeddingPlanner: inq.WeddingPlanner,
		Budget:         inq.Budget,
		WeddingDetails: inq.WeddingDetails,
		LoveStory:      inq.LoveStory,
	})

	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Error("contact: inquiry dispatch failed", "error", err)
		return fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	slog.Info("contact: inquiry dispatched",
		"identity", identity,
		"wedding_city", inq.WeddingCity,
		"wedding_date", inq.WeddingDate,
	)
	return nil
}
