package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/swiftmarket-backend/api/controllers"
	"github.com/angelmondragon/swiftmarket-backend/api/middleware"
	"github.com/angelmondragon/swiftmarket-backend/internal/describe"
	"github.com/angelmondragon/swiftmarket-backend/internal/session"
	"github.com/angelmondragon/swiftmarket-backend/pkg/config"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/redis"
)

type rateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// NewRouter wires every HTTP surface. redisClient and gatherer may be nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *session.Registry,
	describeService *describe.Service,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	var (
		limiter     rateLimiter
		redisPinger controllers.Pinger
	)
	if redisClient != nil {
		limiter = redisClient
		redisPinger = redisClient
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	describePolicy := middleware.NewRateLimitPolicy(
		"describe",
		cfg.Describe.RateLimitWindow,
		cfg.Describe.RateLimit,
	)
	vendorID := cfg.Catalog.VendorID

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(registry, logg))

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.SessionGet(logg))
			r.Delete("/", controllers.SessionEnd(registry, logg))
			r.Put("/role", controllers.SessionSetRole(logg))
		})

		r.Get("/navigation", controllers.NavigationResolve(logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(logg))
			r.Get("/categories", controllers.CatalogCategories())
			r.Get("/suggestions", controllers.CatalogSuggestions(describeService, logg))
			r.Put("/filter", controllers.CatalogSetFilter(logg))
			r.Get("/products/{productId}", controllers.CatalogProduct(logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(logg))
			r.Delete("/", controllers.CartClear(logg))
			r.Post("/items", controllers.CartAddItem(logg))
			r.Put("/items/{productId}", controllers.CartUpdateItem(logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(logg))
			r.Post("/", controllers.OrdersPlace(logg))
		})

		r.Route("/vendor", func(r chi.Router) {
			r.Use(middleware.RequireRoute("/vendor/products", logg))
			r.Get("/products", controllers.VendorListProducts(vendorID, logg))
			r.Post("/products", controllers.VendorCreateProduct(describeService, vendorID, logg))
			r.With(middleware.RateLimit(describePolicy, limiter, logg)).
				Post("/products/describe", controllers.VendorDescribe(describeService, logg))
			r.Put("/products/{productId}", controllers.VendorUpdateProduct(vendorID, logg))
			r.Delete("/products/{productId}", controllers.VendorDeleteProduct(vendorID, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRoute("/admin", logg))
			r.Get("/overview", controllers.AdminOverview(logg))
		})
	})

	return r
}
