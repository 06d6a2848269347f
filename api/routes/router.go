package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lukustore/lukustore-backend/api/controllers"
	"github.com/lukustore/lukustore-backend/api/middleware"
	"github.com/lukustore/lukustore-backend/internal/blog"
	"github.com/lukustore/lukustore-backend/internal/catalog"
	"github.com/lukustore/lukustore-backend/internal/content"
	"github.com/lukustore/lukustore-backend/internal/mixes"
	"github.com/lukustore/lukustore-backend/internal/orders"
	"github.com/lukustore/lukustore-backend/internal/users"
	"github.com/lukustore/lukustore-backend/pkg/config"
	"github.com/lukustore/lukustore-backend/pkg/db"
	"github.com/lukustore/lukustore-backend/pkg/logger"
	"github.com/lukustore/lukustore-backend/pkg/metrics"
	pkgredis "github.com/lukustore/lukustore-backend/pkg/redis"
)

// Deps bundles everything the router needs. Redis and Prom are optional;
// when absent the rate limiter and /metrics endpoint degrade gracefully.
type Deps struct {
	Cfg  *config.Config
	Logg *logger.Logger

	DB    *db.Client
	Redis *pkgredis.Client
	Prom  *prometheus.Registry

	HTTPMetrics *metrics.HTTPMetrics

	Register users.RegisterService
	Blog     blog.Service
	Catalog  catalog.Service
	Orders   orders.Service
	Content  content.Service
	Mixes    mixes.Service
}

// NewRouter assembles the HTTP surface: health and metrics endpoints plus
// the versioned API.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logg))
	r.Use(middleware.RequestID(deps.Logg))
	r.Use(middleware.Logging(deps.Logg))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(deps.HTTPMetrics))

	r.Get("/health/live", controllers.HealthLive(deps.Cfg))
	r.Get("/health/ready", controllers.HealthReady(deps.Cfg, deps.Logg, dbPinger(deps.DB), redisPinger(deps.Redis)))

	if deps.Prom != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Prom, promhttp.HandlerOpts{}))
	}

	formLimit := middleware.NewFormRateLimitPolicy("form", deps.Cfg.RateLimit.FormWindow, deps.Cfg.RateLimit.FormIPLimit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", controllers.Register(deps.Register, deps.Logg))

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", controllers.BlogList(deps.Blog, deps.Logg))
			r.Post("/", controllers.BlogCreate(deps.Blog, deps.Logg))
			r.Get("/slug/{slug}", controllers.BlogGetBySlug(deps.Blog, deps.Logg))
			r.Put("/{blogId}", controllers.BlogUpdate(deps.Blog, deps.Logg))
			r.Delete("/{blogId}", controllers.BlogDelete(deps.Blog, deps.Logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Catalog, deps.Logg))
			r.Post("/", controllers.ProductCreate(deps.Catalog, deps.Logg))
			r.Get("/slug/{slug}", controllers.ProductGetBySlug(deps.Catalog, deps.Logg))
			r.Put("/{productId}", controllers.ProductUpdate(deps.Catalog, deps.Logg))
			r.Delete("/{productId}", controllers.ProductDelete(deps.Catalog, deps.Logg))
		})

		r.Route("/photos", func(r chi.Router) {
			r.Get("/", controllers.PhotoList(deps.Catalog, deps.Logg))
			r.Post("/", controllers.PhotoCreate(deps.Catalog, deps.Logg))
			r.Put("/{photoId}", controllers.PhotoUpdate(deps.Catalog, deps.Logg))
			r.Delete("/{photoId}", controllers.PhotoDelete(deps.Catalog, deps.Logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoryList(deps.Catalog, deps.Logg))
			r.Post("/", controllers.CategoryCreate(deps.Catalog, deps.Logg))
			r.Delete("/{categoryId}", controllers.CategoryDelete(deps.Catalog, deps.Logg))
		})

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", controllers.BrandList(deps.Catalog, deps.Logg))
			r.Post("/", controllers.BrandCreate(deps.Catalog, deps.Logg))
			r.Delete("/{brandId}", controllers.BrandDelete(deps.Catalog, deps.Logg))
		})

		r.Route("/customers/{customerId}", func(r chi.Router) {
			r.Get("/cart", controllers.CartGet(deps.Orders, deps.Logg))
			r.Post("/cart/items", controllers.CartAdjustItem(deps.Orders, deps.Logg))
			r.Put("/cart/items", controllers.CartSetItem(deps.Orders, deps.Logg))
			r.Post("/cart/checkout", controllers.CartCheckout(deps.Orders, deps.Logg))
			r.Get("/orders", controllers.OrdersListCompleted(deps.Orders, deps.Logg))
		})

		r.Route("/about", func(r chi.Router) {
			r.Get("/", controllers.ProfileList(deps.Content, deps.Logg))
			r.Post("/", controllers.ProfileCreate(deps.Content, deps.Logg))
			r.Delete("/{profileId}", controllers.ProfileDelete(deps.Content, deps.Logg))
		})

		r.Route("/help", func(r chi.Router) {
			r.Get("/", controllers.HelpGet(deps.Content, deps.Logg))
			r.Post("/", controllers.HelpPublish(deps.Content, deps.Logg))
		})

		r.Route("/home", func(r chi.Router) {
			r.Get("/", controllers.HomePageGet(deps.Content, deps.Logg))
			r.Post("/", controllers.HomePagePublish(deps.Content, deps.Logg))
		})

		r.Group(func(r chi.Router) {
			if deps.Redis != nil {
				r.Use(middleware.FormRateLimit(formLimit, deps.Redis, deps.Logg))
			}
			r.Post("/contact", controllers.ContactSubmit(deps.Content, deps.Logg))
			r.Post("/newsletter", controllers.NewsletterSubscribe(deps.Content, deps.Logg))
		})

		r.Route("/mixes", func(r chi.Router) {
			r.Get("/", controllers.MixList(deps.Mixes, deps.Logg))
			r.Post("/", controllers.MixCreate(deps.Mixes, deps.Logg))
			r.Get("/{mixId}", controllers.MixGet(deps.Mixes, deps.Logg))
			r.Put("/{mixId}", controllers.MixUpdate(deps.Mixes, deps.Logg))
			r.Delete("/{mixId}", controllers.MixDelete(deps.Mixes, deps.Logg))
			r.Post("/{mixId}/{action}", controllers.MixBump(deps.Mixes, deps.Logg))
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", controllers.VideoList(deps.Mixes, deps.Logg))
			r.Post("/", controllers.VideoCreate(deps.Mixes, deps.Logg))
			r.Delete("/{videoId}", controllers.VideoDelete(deps.Mixes, deps.Logg))
		})
	})

	return r
}

// A nil client must surface as a nil interface so the readiness probe can
// report it skipped instead of dereferencing it.
func dbPinger(c *db.Client) db.Pinger {
	if c == nil {
		return nil
	}
	return c
}

func redisPinger(c *pkgredis.Client) pkgredis.Pinger {
	if c == nil {
		return nil
	}
	return c
}
