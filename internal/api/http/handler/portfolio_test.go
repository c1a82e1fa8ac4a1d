package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/byfernandatovar/byfernandatovar/internal/service/portfolio"
)

type stubPortfolioService struct {
	category   *portfolio.Category
	categories []portfolio.Category
	err        error
}

func (s *stubPortfolioService) Category(_ context.Context, slug string) (*portfolio.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func (s *stubPortfolioService) Categories(_ context.Context) ([]portfolio.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

func newPortfolioApp(svc portfolio.Service) *fiber.App {
	app := fiber.New()
	h := NewPortfolioHandler(svc)
	app.Get("/api/v1/portfolio", h.List)
	app.Get("/api/v1/portfolio/:slug", h.Get)
	return app
}

func TestPortfolioGet(t *testing.T) {
	app := newPortfolioApp(&stubPortfolioService{
		category: &portfolio.Category{
			ID:     "cat-weddings",
			Slug:   "weddings",
			Title:  "Bodas",
			Images: []string{"https://cdn.sanity.io/images/p/d/abc-1200x800.jpg?auto=format&q=85"},
		},
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/weddings", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	body := decodeBody(t, res)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("body missing data object: %v", body)
	}
	if data["slug"] != "weddings" {
		t.Errorf("slug = %v, want weddings", data["slug"])
	}
}

func TestPortfolioGet_NotFound(t *testing.T) {
	app := newPortfolioApp(&stubPortfolioService{err: portfolio.ErrCategoryNotFound})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/unknown", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
	res.Body.Close()
}

func TestPortfolioGet_Unavailable(t *testing.T) {
	app := newPortfolioApp(&stubPortfolioService{err: portfolio.ErrUnavailable})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/weddings", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", res.StatusCode)
	}
	res.Body.Close()
}

func TestPortfolioList(t *testing.T) {
	app := newPortfolioApp(&stubPortfolioService{
		categories: []portfolio.Category{
			{ID: "cat-couples", Slug: "couples", Title: "Parejas"},
			{ID: "cat-weddings", Slug: "weddings", Title: "Bodas"},
		},
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	body := decodeBody(t, res)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("data = %v, want 2 categories", body["data"])
	}
}
