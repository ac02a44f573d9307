// Package http assembles the service's HTTP surface: middleware stack,
// health and metrics endpoints, and the versioned API routes.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"civicapi/internal/civic/handler"
	"civicapi/internal/platform/metrics"
	"civicapi/internal/platform/middleware"
)

// NewRouter builds the router with the standard middleware stack and the
// v1 API mounted.
func NewRouter(h *handler.Handler, logger *slog.Logger, m *metrics.Metrics, jwtSigningKey string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger, m))
	r.Use(middleware.Identify(jwtSigningKey, logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		h.Register(r)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
