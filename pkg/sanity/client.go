// Package sanity provides a minimal read-only client for the Sanity
// content lake HTTP query API.
package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var (
	ErrNotConfigured      = errors.New("sanity: project id is not configured")
	ErrNotFound           = errors.New("sanity: document not found")
	ErrQueryFailed        = errors.New("sanity: query failed")
	ErrUnexpectedResponse = errors.New("sanity: unexpected response from content lake")
)

const (
	categoryBySlugQuery = `*[_type == "portfolioCategory" && name == $slug][0]{_id, name, title, subtitle, images}`
	categoriesQuery     = `*[_type == "portfolioCategory"] | order(name asc){_id, name, title, subtitle, coverImage}`
)

// Client is a lightweight Sanity HTTP query client.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

// New creates a Client from config. Uses the CDN host when cfg.UseCDN is true.
func New(cfg Config) *Client {
	host := "api"
	if cfg.UseCDN {
		host = "apicdn"
	}
	return &Client{
		cfg:        cfg,
		baseURL:    fmt.Sprintf("https://%s.%s.sanity.io/v%s", cfg.ProjectID, host, cfg.APIVersion),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// PortfolioCategory fetches a single category by its slug
// (weddings, couples, portraits, moments). Returns ErrNotFound when no
// document matches.
func (c *Client) PortfolioCategory(ctx context.Context, slug string) (*PortfolioCategory, error) {
	var cat *PortfolioCategory
	if err := c.query(ctx, categoryBySlugQuery, map[string]any{"slug": slug}, &cat); err != nil {
		return nil, err
	}
	if cat == nil || cat.ID == "" {
		return nil, ErrNotFound
	}
	return cat, nil
}

// PortfolioCategories fetches all categories ordered by slug, with cover
// images but without the full galleries.
func (c *Client) PortfolioCategories(ctx context.Context) ([]PortfolioCategory, error) {
	var cats []PortfolioCategory
	if err := c.query(ctx, categoriesQuery, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// query runs a GROQ query with JSON-encoded params and decodes the result.
func (c *Client) query(ctx context.Context, groq string, params map[string]any, out any) error {
	if c.cfg.ProjectID == "" {
		return ErrNotConfigured
	}

	vals := url.Values{}
	vals.Set("query", groq)
	for k, v := range params {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal param %q: %w", k, err)
		}
		vals.Set("$"+k, string(b))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL, c.cfg.Dataset, vals.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w (status=%d)", ErrQueryFailed, res.StatusCode)
	}

	var body struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if len(body.Result) == 0 || string(body.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(body.Result, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}
