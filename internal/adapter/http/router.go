package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/finledger/internal/adapter/http/handler"
	"github.com/iho/finledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SessionHandler *handler.SessionHandler
	EntryHandler   *handler.EntryHandler
	SummaryHandler *handler.SummaryHandler
	ReportHandler  *handler.ReportHandler
	HealthHandler  *handler.HealthHandler
	RateLimiter    *middleware.RateLimiter
	// MetricsHandler serves /metrics; nil disables HTTP metrics.
	MetricsHandler http.Handler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.MetricsHandler != nil {
		r.Use(middleware.Metrics)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", cfg.SummaryHandler.Categories)

		// Sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", cfg.SessionHandler.Create)
			r.Delete("/{id}", cfg.SessionHandler.Delete)

			r.Post("/{id}/income", cfg.EntryHandler.CreateIncome)
			r.Get("/{id}/income", cfg.EntryHandler.ListIncome)
			r.Post("/{id}/expenses", cfg.EntryHandler.CreateExpense)
			r.Get("/{id}/expenses", cfg.EntryHandler.ListExpenses)

			r.Get("/{id}/summary", cfg.SummaryHandler.Get)
			r.Get("/{id}/charts/categories", cfg.SummaryHandler.CategoryChart)
			r.Get("/{id}/charts/treemap", cfg.SummaryHandler.TreemapChart)

			r.Get("/{id}/report", cfg.ReportHandler.Download)
		})
	})

	return r
}
