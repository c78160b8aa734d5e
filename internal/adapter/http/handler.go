package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-report/internal/core/port"
)

// Options tunes the routes registered by NewHandler.
type Options struct {
	// AllowedOrigins is passed to the CORS middleware.
	AllowedOrigins []string
	// MetricsPath mounts the Prometheus handler; empty disables it.
	MetricsPath string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.ReportUseCase
	health port.HealthChecker
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ReportUseCase, health port.HealthChecker, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, health: health, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler())
	}
	r.Route("/api", func(r chi.Router) {
		r.Get("/campaigns", h.handleCampaignReport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent; nothing left but to log
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
