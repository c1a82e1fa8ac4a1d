// Package ratelimit bounds the rate of accepted contact form submissions
// per client identity over a sliding window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter records a submission attempt for an identity and reports whether
// it is allowed under the sliding window. The limiter is advisory: it is a
// deterrent against form spam, not a security boundary.
type Limiter interface {
	Allow(ctx context.Context, identity string) (bool, error)
}

// Config holds sliding window parameters.
type Config struct {
	Max    int
	Window time.Duration
}

// DefaultConfig allows 3 submissions per trailing hour.
func DefaultConfig() Config {
	return Config{Max: 3, Window: time.Hour}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Max <= 0 {
		c.Max = d.Max
	}
	if c.Window <= 0 {
		c.Window = d.Window
	}
	return c
}

// MemoryLimiter keeps per-identity submission timestamps in process memory.
// State is lost on restart, and identities are never evicted once seen —
// only their timestamp lists are pruned. Both properties are acceptable for
// a frequently redeployed service; a long-lived deployment should use the
// Redis limiter instead.
type MemoryLimiter struct {
	cfg Config
	now func() time.Time

	mu          sync.Mutex
	submissions map[string][]time.Time
}

// NewMemory creates an in-memory sliding window limiter.
func NewMemory(cfg Config) *MemoryLimiter {
	return newMemory(cfg, time.Now)
}

func newMemory(cfg Config, now func() time.Time) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:         cfg.withDefaults(),
		now:         now,
		submissions: make(map[string][]time.Time),
	}
}

// Allow prunes timestamps older than the window, rejects when the identity
// already has Max recent submissions and records the attempt otherwise.
func (l *MemoryLimiter) Allow(_ context.Context, identity string) (bool, error) {
	now := l.now()
	cutoff := now.Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.submissions[identity][:0]
	for _, ts := range l.submissions[identity] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.cfg.Max {
		l.submissions[identity] = recent
		return false, nil
	}

	l.submissions[identity] = append(recent, now)
	return true, nil
}
