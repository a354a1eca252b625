package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calebfarias/grocerly-backend/api/controllers"
	"github.com/calebfarias/grocerly-backend/api/middleware"
	"github.com/calebfarias/grocerly-backend/internal/catalog"
	"github.com/calebfarias/grocerly-backend/internal/memberships"
	"github.com/calebfarias/grocerly-backend/internal/orders"
	"github.com/calebfarias/grocerly-backend/internal/users"
	pkgauth "github.com/calebfarias/grocerly-backend/pkg/auth"
	"github.com/calebfarias/grocerly-backend/pkg/config"
	"github.com/calebfarias/grocerly-backend/pkg/logger"
	"github.com/calebfarias/grocerly-backend/pkg/metrics"
	pkgredis "github.com/calebfarias/grocerly-backend/pkg/redis"
)

// Dependencies bundles everything the router needs.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       controllers.Pinger
	Metrics     *metrics.HTTPMetrics
	Registry    *prometheus.Registry
	Catalog     catalog.Service
	Users       users.Service
	Memberships memberships.Service
	Orders      orders.Service
	IdempStore  pkgredis.IdempotencyStore
}

// NewRouter builds the chi router with the full middleware chain and the
// role-gated admin and customer route groups.
func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    deps.Redis,
		}))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(
			middleware.Auth(cfg.JWT, logg),
			middleware.RequireRole(pkgauth.RoleAdmin, logg),
		)

		r.Route("/grocery/items", func(r chi.Router) {
			r.Get("/", controllers.ListGroceryItems(deps.Catalog, logg))
			r.Post("/", controllers.CreateGroceryItem(deps.Catalog, logg))
			r.Put("/{id}", controllers.UpdateGroceryItem(deps.Catalog, logg))
			r.Delete("/{id}", controllers.DeleteGroceryItem(deps.Catalog, logg))
			r.Post("/{id}/inventory", controllers.AdjustGroceryInventory(deps.Catalog, logg))
		})

		r.Get("/users", controllers.ListUsers(deps.Users, logg))
		r.Post("/create-admin", controllers.CreateAdmin(deps.Memberships, logg))
		r.Get("/revenue", controllers.Revenue(deps.Orders, logg))
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/", controllers.Profile(deps.Users, logg))
		r.Get("/grocery-list", controllers.CustomerGroceryList(deps.Catalog, logg))
		r.With(middleware.Idempotency(deps.IdempStore, cfg.Orders.IdempotencyTTL, logg)).
			Post("/create-order", controllers.CreateOrder(deps.Orders, logg))
		r.Route("/top-sellers", func(r chi.Router) {
			r.Get("/", controllers.TopSellers(deps.Catalog, logg))
			r.Get("/{size}", controllers.TopSellers(deps.Catalog, logg))
		})
	})

	return r
}
