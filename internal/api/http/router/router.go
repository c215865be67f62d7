package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"github.com/kvbuilders/app/config"
	"github.com/kvbuilders/app/internal/api/http/handler"
	"github.com/kvbuilders/app/internal/api/http/middleware"
	"github.com/kvbuilders/app/internal/service/inquiry"
	"github.com/kvbuilders/app/internal/service/status"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Mongo      *mongo.Client
	Redis      *redis.Client
	InquirySvc inquiry.Service
	StatusSvc  status.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	adminAuth := middleware.AdminAuth(r.p.Cfg.Admin.Password)
	contactLimit := middleware.NewLimiterWithRedis(r.p.Redis, "rl:contact:", r.p.Cfg.Contact.RateLimit.ContactPerMinute)
	adminLimit := middleware.NewLimiterWithRedis(r.p.Redis, "rl:admin:", r.p.Cfg.Contact.RateLimit.AdminPerMinute)

	// 3. Initialize Handlers
	contactH := handler.NewContactHandler(r.p.InquirySvc)
	adminH := handler.NewAdminHandler(r.p.InquirySvc)
	statusH := handler.NewStatusHandler(r.p.StatusSvc)

	api := app.Group("/api")

	// 4. Delegate to sub-files
	r.registerContactRoutes(api, contactH, contactLimit)
	r.registerAdminRoutes(api, adminH, adminAuth, adminLimit)
	r.registerStatusRoutes(api, statusH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
			defer cancel()
			if err := r.p.Mongo.Ping(ctx, readpref.Primary()); err != nil {
				return false
			}
			return r.p.Redis.Ping(ctx).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
