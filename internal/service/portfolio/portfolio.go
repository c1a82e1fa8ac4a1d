// Package portfolio serves the read-only gallery content behind the
// portfolio pages, backed by the Sanity content lake.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/byfernandatovar/byfernandatovar/pkg/sanity"
)

// Category is one gallery, shaped for the API response. Image fields are
// resolved CDN URLs, ready for the client to render.
type Category struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Cover    string   `json:"coverImage,omitempty"`
	Images   []string `json:"images,omitempty"`
}

// knownSlugs are the galleries the site exposes. Requests outside this
// set are rejected without a round trip to the content lake.
var knownSlugs = map[string]bool{
	"weddings":  true,
	"couples":   true,
	"portraits": true,
	"moments":   true,
}

// contentSource is the slice of *sanity.Client the service needs.
type contentSource interface {
	PortfolioCategory(ctx context.Context, slug string) (*sanity.PortfolioCategory, error)
	PortfolioCategories(ctx context.Context) ([]sanity.PortfolioCategory, error)
	ImageURL(img sanity.Image) (string, error)
	ImageURLs(images []sanity.Image) []string
}

// Service exposes the portfolio galleries.
type Service interface {
	// Category returns one gallery with its full image list.
	Category(ctx context.Context, slug string) (*Category, error)

	// Categories returns every gallery with its cover image but without
	// the full image lists.
	Categories(ctx context.Context) ([]Category, error)
}

type service struct {
	source contentSource
}

// New creates the portfolio service over a Sanity client.
func New(client *sanity.Client) Service {
	return &service{source: client}
}

func newService(source contentSource) *service {
	return &service{source: source}
}

func (s *service) Category(ctx context.Context, slug string) (*Category, error) {
	if !knownSlugs[slug] {
		return nil, ErrCategoryNotFound
	}

	doc, err := s.source.PortfolioCategory(ctx, slug)
	if err != nil {
		if errors.Is(err, sanity.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		slog.Error("portfolio: category fetch failed", "slug", slug, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return s.toCategory(doc), nil
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	docs, err := s.source.PortfolioCategories(ctx)
	if err != nil {
		slog.Error("portfolio: category list fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	cats := make([]Category, 0, len(docs))
	for i := range docs {
		cats = append(cats, *s.toCategory(&docs[i]))
	}
	return cats, nil
}

func (s *service) toCategory(doc *sanity.PortfolioCategory) *Category {
	cat := &Category{
		ID:       doc.ID,
		Slug:     doc.Name,
		Title:    doc.Title,
		Subtitle: doc.Subtitle,
		Images:   s.source.ImageURLs(doc.Images),
	}
	if doc.CoverImage != nil {
		if u, err := s.source.ImageURL(*doc.CoverImage); err == nil {
			cat.Cover = u
		}
	}
	return cat
}
