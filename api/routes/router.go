package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/honestpc/honestpc-backend/api/controllers"
	"github.com/honestpc/honestpc-backend/api/middleware"
	"github.com/honestpc/honestpc-backend/internal/advisor"
	"github.com/honestpc/honestpc-backend/internal/analytics"
	"github.com/honestpc/honestpc-backend/internal/auth"
	"github.com/honestpc/honestpc-backend/internal/builds"
	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/internal/orders"
	"github.com/honestpc/honestpc-backend/pkg/auth/session"
	"github.com/honestpc/honestpc-backend/pkg/config"
	"github.com/honestpc/honestpc-backend/pkg/logger"
	"github.com/honestpc/honestpc-backend/pkg/metrics"
)

// Deps carries everything the HTTP surface needs. Nil optional fields are
// tolerated where the controller can degrade.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       controllers.Pinger
	RedisPinger    controllers.Pinger
	SessionChecker session.AccessSessionChecker
	Configurator   *configurator.Service
	Advisor        *advisor.Service
	Analytics      *analytics.Service
	AuthService    auth.Service
	BuildsService  builds.Service
	OrdersService  orders.Service
	Prometheus     prometheus.Gatherer
	HTTPMetrics    *metrics.HTTPMetrics
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.DBPinger, d.RedisPinger))
	})

	if d.Prometheus != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Prometheus, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(d.AuthService, d.Logger))
		r.Post("/login", controllers.AuthLogin(d.AuthService, d.Logger))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(d.Config.JWT, d.SessionChecker, d.Logger))

		r.Post("/auth/logout", controllers.AuthLogout(d.AuthService, d.Logger))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/tiers", controllers.CatalogTiers(d.Configurator, d.Logger))
			r.Get("/tiers/{tierId}", controllers.CatalogTier(d.Configurator, d.Logger))
		})

		r.Post("/quote", controllers.Quote(d.Configurator, d.Logger))
		r.Post("/advisor", controllers.AdvisorAnalyze(d.Configurator, d.Advisor, d.Logger))

		r.Route("/builds", func(r chi.Router) {
			r.Get("/", controllers.BuildsList(d.BuildsService, d.Logger))
			r.Post("/", controllers.BuildsSave(d.BuildsService, d.Logger))
			r.Get("/{buildId}", controllers.BuildsGet(d.BuildsService, d.Logger))
			r.Delete("/{buildId}", controllers.BuildsDelete(d.BuildsService, d.Logger))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(d.OrdersService, d.Logger))
			r.Post("/", controllers.OrdersCreate(d.OrdersService, d.Logger))
			r.Get("/{orderId}", controllers.OrdersGet(d.OrdersService, d.Logger))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(d.Config.JWT, d.SessionChecker, d.Logger))
		r.Use(middleware.RequireAdmin(d.Logger))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrders(d.OrdersService, d.Logger))
			r.Get("/stats", controllers.AdminOrderStats(d.Analytics, d.Logger))
			r.Get("/{orderId}", controllers.AdminOrderDetail(d.OrdersService, d.Logger))
			r.Post("/{orderId}/advance", controllers.AdminOrderAdvance(d.OrdersService, d.Logger))
		})
	})

	return r
}
