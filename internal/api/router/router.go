// Package router assembles the HTTP surface of the order bot.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appmiddleware "github.com/masalawok/orderbot/internal/api/middleware"
	"github.com/masalawok/orderbot/internal/session"
	"github.com/masalawok/orderbot/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	SessionHandler *session.Handler
	MetricsHandler http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(appmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	metrics := cfg.MetricsHandler
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	r.Handle("/metrics", metrics)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", cfg.SessionHandler.Start)
		r.Post("/{sessionID}/messages", cfg.SessionHandler.Message)
		r.Delete("/{sessionID}", cfg.SessionHandler.End)
	})

	return r
}
