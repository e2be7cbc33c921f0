package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/itchan-auth/backend/internal/handler"
	"github.com/itchan-dev/itchan-auth/shared/config"
	"github.com/itchan-dev/itchan-auth/shared/logger"
	mw "github.com/itchan-dev/itchan-auth/shared/middleware"
	"github.com/itchan-dev/itchan-auth/shared/middleware/metrics"
)

const maxBodyBytes = 1 << 20

// New creates and configures a chi router with all the routes.
func New(h *handler.Handler, decoder mw.TokenDecoder, cfg *config.Public) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Logging(logger.Log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	// JSON API only, no scripts/styles needed
	r.Use(mw.SecurityHeadersWithCSP(cfg.HTTPS, "default-src 'none'; frame-ancestors 'none'"))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1/auth", func(r chi.Router) {
		r.Use(chimw.RequestSize(maxBodyBytes))
		r.Post("/login", h.Login)
		r.With(mw.NeedAuth(decoder)).Get("/me", h.Me)
	})

	return r
}
