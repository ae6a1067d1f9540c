// Package api exposes the schedule extraction pipeline as an HTTP service:
// upload a document once, then read its records, summaries and weekday
// matrices back from the content-hash cache in JSON, CSV or PDF form.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolio/flightgrid/cache"
	"github.com/avolio/flightgrid/internal/config"
	"github.com/avolio/flightgrid/pkg/logger"
)

// Router is the API router
type Router struct {
	handler    *Handler
	middleware *Middleware
	logger     *logger.Logger
}

// NewRouter creates a new API router
func NewRouter(store *cache.Store, cfg *config.Config, log *logger.Logger) *Router {
	return &Router{
		handler:    NewHandler(store, cfg, log),
		middleware: NewMiddleware(log),
		logger:     log.Named("api-router"),
	}
}

// Routes returns the API routes
func (r *Router) Routes() http.Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.RealIP)
	router.Use(r.middleware.Logger)
	router.Use(r.middleware.Recoverer)
	router.Use(r.middleware.CORS(nil))

	// API routes
	router.Route("/api/v1", func(router chi.Router) {
		router.Post("/schedules", r.handler.CreateSchedule)
		router.Get("/schedules/{id}", r.handler.GetSchedule)
		router.Get("/schedules/{id}/records", r.handler.GetScheduleRecords)
		router.Get("/schedules/{id}/matrix", r.handler.GetScheduleMatrix)
		router.Get("/schedules/{id}/matrix.csv", r.handler.GetScheduleMatrixCSV)
		router.Get("/schedules/{id}/matrix.pdf", r.handler.GetScheduleMatrixPDF)
	})

	// Health check
	router.Get("/health", r.handler.GetHealth)

	return router
}
