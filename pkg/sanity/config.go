package sanity

import (
	"time"

	"github.com/byfernandatovar/byfernandatovar/config"
)

// Config holds Sanity project settings.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string

	// UseCDN selects the apicdn host, which serves cached results.
	// Content edits may take a moment to show up; fine for a portfolio.
	UseCDN bool

	// Token is only needed for private datasets.
	Token string

	TimeoutSeconds int
}

// DefaultConfig returns sensible defaults for Sanity configuration
func DefaultConfig() Config {
	return Config{
		Dataset:        "production",
		APIVersion:     "2024-01-01",
		UseCDN:         true,
		TimeoutSeconds: 15,
	}
}

// Timeout returns the HTTP timeout as a duration
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.SanityConfig to package Config
func FromCentralConfig(c config.SanityConfig) Config {
	cfg := DefaultConfig()
	cfg.ProjectID = c.ProjectID
	cfg.UseCDN = c.UseCDN
	cfg.Token = c.Token

	if c.Dataset != "" {
		cfg.Dataset = c.Dataset
	}
	if c.APIVersion != "" {
		cfg.APIVersion = c.APIVersion
	}
	if c.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = c.TimeoutSeconds
	}

	return cfg
}
