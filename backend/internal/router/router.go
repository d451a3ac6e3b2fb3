package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/forum-api/forum-api/backend/internal/setup"
	mw "github.com/forum-api/forum-api/shared/middleware"
	"github.com/forum-api/forum-api/shared/middleware/metrics"
)

// New creates and configures a chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(mw.AccessLog)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(deps.Config.Public.Http.Https))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{mw.RequestIdHeader},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/threads/{threadId}", h.GetThread)

	// Logged-in user routes
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.NeedAuth())

		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)

		r.Group(func(r chi.Router) {
			r.Use(mw.RateLimit(deps.WriteLimiter, mw.UserOrIP))
			r.Post("/threads", h.AddThread)
			r.Post("/threads/{threadId}/comments", h.AddComment)
		})
	})

	return r
}
