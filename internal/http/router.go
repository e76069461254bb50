// Package httpapi assembles the service router: middleware chain, public
// read surface, authenticated write surface, and operational endpoints.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fisc/internal/ledger/handler"
	"fisc/internal/platform/middleware"
)

// NewRouter wires all endpoints. Reads are open to anyone; writes require
// a bearer principal token.
func NewRouter(h *handler.Handler, validator middleware.PrincipalValidator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)

	r.Group(func(r chi.Router) {
		h.RegisterPublic(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, logger))
		h.RegisterAuthenticated(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
