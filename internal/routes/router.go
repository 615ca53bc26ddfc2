package routes

import (
	"context"
	"net/http"
	"time"

	"airease/backend/internal/api"
	"airease/backend/internal/db"
	"airease/backend/internal/logging"
	"airease/backend/internal/metrics"
	"airease/backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Warm the reference-data caches concurrently; each service degrades
	// to defaults on failure, so warm-up errors are not fatal.
	warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	g, gctx := errgroup.WithContext(warmCtx)
	g.Go(func() error { deps.Services.Comfort.Load(gctx); return nil })
	g.Go(func() error { deps.Services.Reliability.Load(gctx); return nil })
	g.Go(func() error { deps.Services.Reviews.Load(gctx); return nil })
	go func() {
		defer cancel()
		_ = g.Wait()
		logging.Info("Reference data warm-up complete")
	}()

	RegisterAPIRoutes(r, deps)

	return r
}
