package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/byfernandatovar/byfernandatovar/config"
	"github.com/byfernandatovar/byfernandatovar/internal/api/http/handler"
	"github.com/byfernandatovar/byfernandatovar/internal/service/contact"
	"github.com/byfernandatovar/byfernandatovar/internal/service/portfolio"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	ContactSvc   contact.Service
	PortfolioSvc portfolio.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	contactH := handler.NewContactHandler(r.p.ContactSvc)
	portfolioH := handler.NewPortfolioHandler(r.p.PortfolioSvc)

	api := app.Group("/api/v1")

	r.registerContactRoutes(api, contactH)
	r.registerPortfolioRoutes(api, portfolioH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
