package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"summit-insurance/portal/internal/api"
	"summit-insurance/portal/internal/config"
	"summit-insurance/portal/internal/db"
	"summit-insurance/portal/internal/jobs"
	"summit-insurance/portal/internal/logging"
	"summit-insurance/portal/internal/middleware"
)

// RegisterRoutes builds the router, wires the dependency container and
// starts the background scheduler. The returned scheduler is handed to
// the caller so it can be stopped on shutdown.
func RegisterRoutes(cfg *config.Config, upSince time.Time) (http.Handler, *jobs.Scheduler) {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(cfg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.RecovererMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, cfg.UploadsDir, upSince))

	// Register API routes
	RegisterAPIRoutes(r, cfg, deps)

	// Background gauge refresh
	refreshJob := jobs.NewMetricsRefreshJob(deps.Repo.Stats, deps.Metrics)
	scheduler := jobs.NewScheduler(refreshJob)
	scheduler.Start()

	return r, scheduler
}
