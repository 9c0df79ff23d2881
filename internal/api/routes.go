package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hanuiso/lunisolar-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Admin routes (admin key only)
		r.With(AuthMiddleware(cfg, logger)).Post("/admin/reimport", handlers.Reimport)

		// Public calendar routes
		r.Route("/{variant}", func(r chi.Router) {
			r.Get("/today", handlers.GetToday)
			r.Get("/date/{date}", handlers.ConvertDate)
			r.Get("/lookup", handlers.Lookup)
			r.Get("/year/{cycle}/{year}", handlers.GetYearInfo)
		})
	})

	return r
}
