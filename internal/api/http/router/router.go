package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/proflink/proflink_backend/config"
	"github.com/proflink/proflink_backend/internal/api/http/handler"
	"github.com/proflink/proflink_backend/internal/api/http/middleware"
	"github.com/proflink/proflink_backend/internal/service/appointment"
	"github.com/proflink/proflink_backend/internal/service/auth"
	"github.com/proflink/proflink_backend/internal/service/directory"
	"github.com/proflink/proflink_backend/internal/service/notification"
	"github.com/proflink/proflink_backend/internal/service/profile"
	"github.com/proflink/proflink_backend/internal/service/user"
	"github.com/proflink/proflink_backend/internal/sse"
	"github.com/proflink/proflink_backend/pkg/authorize"
	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	UserSvc         user.Service
	AuthSvc         auth.Service
	ProfileSvc      profile.Service
	DirectorySvc    directory.Service
	AppointmentSvc  appointment.Service
	NotificationSvc notification.Service
	Broker          *sse.Broker
	PasetoMgr       *pasetotoken.Manager
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
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	profileH := handler.NewProfileHandler(r.p.ProfileSvc)
	directoryH := handler.NewDirectoryHandler(r.p.DirectorySvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.UserSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc, r.p.Broker)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requireSelf)
	r.registerProfileRoutes(api, profileH, authRequired, requireSelf)
	r.registerDirectoryRoutes(api, directoryH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, requireSelf)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
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
