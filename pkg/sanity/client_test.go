package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(ts *httptest.Server) *Client {
	return &Client{
		cfg: Config{
			ProjectID:  "2b266qdi",
			Dataset:    "production",
			APIVersion: "2024-01-01",
		},
		baseURL:    ts.URL + "/v2024-01-01",
		httpClient: ts.Client(),
	}
}

func TestPortfolioCategory(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/v2024-01-01/data/query/production" {
			t.Errorf("unexpected path %q", got)
		}
		if got := r.URL.Query().Get("$slug"); got != `"weddings"` {
			t.Errorf("slug param = %q, want JSON-encoded string", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"_id":      "cat-1",
				"name":     "weddings",
				"title":    "Weddings",
				"subtitle": "Eternal Moments",
				"images": []map[string]any{
					{"_key": "a", "asset": map[string]any{"_ref": "image-abc123-2000x3000-webp", "_type": "reference"}},
				},
			},
		})
	}))
	defer ts.Close()

	cat, err := testClient(ts).PortfolioCategory(context.Background(), "weddings")
	if err != nil {
		t.Fatalf("PortfolioCategory failed: %v", err)
	}
	if cat.Title != "Weddings" || cat.Subtitle != "Eternal Moments" {
		t.Errorf("unexpected category: %+v", cat)
	}
	if len(cat.Images) != 1 || cat.Images[0].Asset.Ref != "image-abc123-2000x3000-webp" {
		t.Errorf("unexpected images: %+v", cat.Images)
	}
}

func TestPortfolioCategory_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": null}`))
	}))
	defer ts.Close()

	_, err := testClient(ts).PortfolioCategory(context.Background(), "banquets")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPortfolioCategories(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{"_id": "cat-1", "name": "couples", "title": "Couples", "subtitle": "Love Stories"},
				{"_id": "cat-2", "name": "weddings", "title": "Weddings", "subtitle": "Eternal Moments"},
			},
		})
	}))
	defer ts.Close()

	cats, err := testClient(ts).PortfolioCategories(context.Background())
	if err != nil {
		t.Fatalf("PortfolioCategories failed: %v", err)
	}
	if len(cats) != 2 || cats[0].Name != "couples" || cats[1].Name != "weddings" {
		t.Errorf("unexpected categories: %+v", cats)
	}
}

func TestQuery_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := testClient(ts).PortfolioCategories(context.Background())
	if !errors.Is(err, ErrQueryFailed) {
		t.Errorf("expected ErrQueryFailed, got %v", err)
	}
}

func TestQuery_MissingProjectID(t *testing.T) {
	c := New(Config{Dataset: "production", APIVersion: "2024-01-01"})
	_, err := c.PortfolioCategories(context.Background())
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
