package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements the sliding window on a Redis sorted set per
// identity, so counters survive restarts and are shared across replicas.
type RedisLimiter struct {
	cfg    Config
	rdb    *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed sliding window limiter.
func NewRedis(rdb *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		cfg:    cfg.withDefaults(),
		rdb:    rdb,
		prefix: "contact:ratelimit:",
	}
}

// Allow counts submissions in the trailing window via ZREMRANGEBYSCORE +
// ZCARD and appends the current attempt with ZADD. Redis errors fail open:
// an unreachable limiter must not take the contact form down with it.
func (l *RedisLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	key := l.prefix + identity
	now := time.Now()
	cutoff := now.Add(-l.cfg.Window)

	pipe := l.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", fmt.Sprintf("%d", cutoff.UnixNano()))
	card := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("rate limiter unavailable, allowing request", "err", err)
		return true, nil
	}

	if card.Val() >= int64(l.cfg.Max) {
		return false, nil
	}

	pipe = l.rdb.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, key, l.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("rate limiter record failed", "err", err)
	}

	return true, nil
}
