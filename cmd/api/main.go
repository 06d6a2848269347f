package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/lukustore/lukustore-backend/api/routes"
	"github.com/lukustore/lukustore-backend/internal/blog"
	"github.com/lukustore/lukustore-backend/internal/catalog"
	"github.com/lukustore/lukustore-backend/internal/content"
	"github.com/lukustore/lukustore-backend/internal/customers"
	"github.com/lukustore/lukustore-backend/internal/media"
	"github.com/lukustore/lukustore-backend/internal/mixes"
	"github.com/lukustore/lukustore-backend/internal/orders"
	"github.com/lukustore/lukustore-backend/internal/users"
	"github.com/lukustore/lukustore-backend/pkg/config"
	"github.com/lukustore/lukustore-backend/pkg/db"
	"github.com/lukustore/lukustore-backend/pkg/logger"
	"github.com/lukustore/lukustore-backend/pkg/metrics"
	"github.com/lukustore/lukustore-backend/pkg/migrate"
	"github.com/lukustore/lukustore-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	registerSvc, err := users.NewRegisterService(dbClient, customers.NewProvisioner(), cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	placeholders := media.NewRegistry(dbClient.DB())

	blogSvc, err := blog.NewService(blog.NewRepository(dbClient.DB()), blog.WithPlaceholders(placeholders))
	if err != nil {
		logg.Error(context.Background(), "failed to create blog service", err)
		os.Exit(1)
	}

	catalogSvc, err := catalog.NewService(catalog.ServiceParams{
		Products:   catalog.NewProductRepository(dbClient.DB()),
		Photos:     catalog.NewPhotoRepository(dbClient.DB()),
		Categories: catalog.NewCategoryRepository(dbClient.DB()),
		Brands:     catalog.NewBrandRepository(dbClient.DB()),
		Tx:         dbClient,
		Cache:      redisClient,
		CacheTTL:   cfg.Cache.ProductSlugTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	ordersSvc, err := orders.NewService(orders.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	contentSvc, err := content.NewService(content.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create content service", err)
		os.Exit(1)
	}

	mixesSvc, err := mixes.NewService(mixes.NewRepository(dbClient.DB()), mixes.WithPlaceholders(placeholders))
	if err != nil {
		logg.Error(context.Background(), "failed to create mixes service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Cfg:         cfg,
			Logg:        logg,
			DB:          dbClient,
			Redis:       redisClient,
			Prom:        registry,
			HTTPMetrics: httpMetrics,
			Register:    registerSvc,
			Blog:        blogSvc,
			Catalog:     catalogSvc,
			Orders:      ordersSvc,
			Content:     contentSvc,
			Mixes:       mixesSvc,
		}),
	}

	if err := serve(ctx, logg, server); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}

// serve runs the server until it fails or a termination signal arrives,
// then drains in-flight requests.
func serve(ctx context.Context, logg *logger.Logger, server *http.Server) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sigCtx.Done():
	}

	logg.Info(ctx, "shutdown signal received, draining")

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	var combined error
	if err := server.Shutdown(drainCtx); err != nil {
		combined = multierr.Append(combined, err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		combined = multierr.Append(combined, err)
	}
	return combined
}
