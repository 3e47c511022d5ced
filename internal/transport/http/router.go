// internal/transport/http/router.go
// Package http exposes the engine operations over a small JSON API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ticket-scout/internal/common/cache"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/common/observability"
	"ticket-scout/internal/engine"
)

// NewRouter wires the operation handlers, health check, and metrics endpoint.
func NewRouter(eng *engine.Engine, store cache.Store, log logger.Logger, obs *observability.Observability, corsOrigins []string) chi.Router {
	h := &handler{
		engine: eng,
		cache:  store,
		logger: log.WithFields(map[string]interface{}{"component": "http"}),
	}
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events/search", h.findEvents)
		r.Post("/events/matchup", h.findMatchup)
		r.Post("/listings", h.getEventListings)
		r.Post("/recommendations", h.recommendTickets)
	})

	r.Get("/health", h.health)
	if obs != nil {
		r.Method(http.MethodGet, "/metrics", obs.Handler())
	}

	return r
}
