package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/byfernandatovar/byfernandatovar/config"
	"github.com/byfernandatovar/byfernandatovar/internal/ratelimit"
	"github.com/byfernandatovar/byfernandatovar/pkg/email"
	"github.com/byfernandatovar/byfernandatovar/pkg/observability"
	redispkg "github.com/byfernandatovar/byfernandatovar/pkg/redis"
	"github.com/byfernandatovar/byfernandatovar/pkg/sanity"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideSanityClient),
	fx.Provide(ProvideContactLimiter),
	fx.Provide(ProvideOTel),
)

// ProvideRedis connects to Redis when an address is configured. The
// site runs fine without it: the contact limiter falls back to memory
// and the burst limiter is skipped, so a missing addr yields a nil
// client rather than an error.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("redis not configured, using in-process fallbacks")
		return nil, nil
	}
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideSanityClient(cfg *config.Config) *sanity.Client {
	return sanity.New(sanity.FromCentralConfig(cfg.Sanity))
}

// ProvideContactLimiter picks the submission limiter backend. Redis
// keeps counts across restarts and replicas; memory is the single
// process default.
func ProvideContactLimiter(cfg *config.Config, rdb *redis.Client) (ratelimit.Limiter, error) {
	rlCfg := ratelimit.Config{
		Max:    cfg.Contact.RateLimit.Max,
		Window: time.Duration(cfg.Contact.RateLimit.WindowMinutes) * time.Minute,
	}

	if cfg.Contact.RateLimit.Store == "redis" {
		if rdb == nil {
			slog.Warn("contact limiter configured for redis but redis is not available, using memory")
			return ratelimit.NewMemory(rlCfg), nil
		}
		return ratelimit.NewRedis(rdb, rlCfg), nil
	}
	return ratelimit.NewMemory(rlCfg), nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
