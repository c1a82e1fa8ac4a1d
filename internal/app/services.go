package app

import (
	"go.uber.org/fx"

	"github.com/byfernandatovar/byfernandatovar/config"
	"github.com/byfernandatovar/byfernandatovar/internal/ratelimit"
	"github.com/byfernandatovar/byfernandatovar/internal/service/contact"
	"github.com/byfernandatovar/byfernandatovar/internal/service/portfolio"
	"github.com/byfernandatovar/byfernandatovar/pkg/email"
	"github.com/byfernandatovar/byfernandatovar/pkg/sanity"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideContactService,
		ProvidePortfolioService,
	),
)

func ProvideContactService(cfg *config.Config, emailClient *email.Client, limiter ratelimit.Limiter) contact.Service {
	return contact.New(cfg, emailClient, limiter)
}

func ProvidePortfolioService(client *sanity.Client) portfolio.Service {
	return portfolio.New(client)
}
