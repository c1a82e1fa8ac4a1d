package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/byfernandatovar/byfernandatovar/internal/service/contact"
)

type stubContactService struct {
	err      error
	identity string
	inquiry  contact.Inquiry
}

func (s *stubContactService) Submit(_ context.Context, identity string, inq contact.Inquiry) error {
	s.identity = identity
	s.inquiry = inq
	return s.err
}

func newContactApp(svc contact.Service) *fiber.App {
	app := fiber.New()
	h := NewContactHandler(svc)
	app.Post("/api/v1/contact", h.Submit)
	app.All("/api/v1/contact", ContactMethodNotAllowed)
	return app
}

func multipartForm(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%q): %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestContactSubmit_Accepted(t *testing.T) {
	svc := &stubContactService{}
	app := newContactApp(svc)

	form, contentType := multipartForm(t, map[string]string{
		"brideFullName": "Ana García",
		"groomFullName": "Luis Pérez",
		"email":         "ana@example.com",
		"weddingDate":   "2026-11-14",
		"weddingCity":   "San Miguel de Allende",
		"loveStory":     "Nos conocimos en la universidad",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", form)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	body := decodeBody(t, res)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["message"] != "Mensaje enviado correctamente" {
		t.Errorf("message = %q", body["message"])
	}

	if svc.identity != "203.0.113.7" {
		t.Errorf("identity = %q, want first X-Forwarded-For entry", svc.identity)
	}
	if svc.inquiry.BrideFullName != "Ana García" || svc.inquiry.LoveStory != "Nos conocimos en la universidad" {
		t.Errorf("inquiry fields not forwarded: %+v", svc.inquiry)
	}
}

func TestContactSubmit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", contact.ErrMissingFields, http.StatusBadRequest, "Faltan campos requeridos"},
		{"invalid email", contact.ErrInvalidEmail, http.StatusBadRequest, "Email inválido"},
		{"rate limited", contact.ErrRateLimited, http.StatusTooManyRequests, "Demasiados intentos. Por favor intenta más tarde."},
		{"not configured", contact.ErrNotConfigured, http.StatusInternalServerError, "Configuración del servidor incompleta"},
		{"dispatch failed", contact.ErrDispatchFailed, http.StatusInternalServerError, "Error al procesar el formulario. Por favor intenta nuevamente."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newContactApp(&stubContactService{err: tt.err})

			form, contentType := multipartForm(t, map[string]string{"email": "ana@example.com"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", form)
			req.Header.Set("Content-Type", contentType)

			res, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", res.StatusCode, tt.wantStatus)
			}
			if body := decodeBody(t, res); body["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestContactSubmit_MethodNotAllowed(t *testing.T) {
	app := newContactApp(&stubContactService{})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/v1/contact", nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if res.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("%s status = %d, want 405", method, res.StatusCode)
		}
		res.Body.Close()
	}
}

func TestClientIdentity(t *testing.T) {
	svc := &stubContactService{err: contact.ErrMissingFields}
	app := newContactApp(svc)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": " 198.51.100.4 , 10.0.0.1"}, "198.51.100.4"},
		{"real ip fallback", map[string]string{"X-Real-Ip": "198.51.100.9"}, "198.51.100.9"},
		{"no headers", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, contentType := multipartForm(t, map[string]string{"email": "a@b.co"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", form)
			req.Header.Set("Content-Type", contentType)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			res, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			res.Body.Close()

			if svc.identity != tt.want {
				t.Errorf("identity = %q, want %q", svc.identity, tt.want)
			}
		})
	}
}
