package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/itchan-dev/confluence-bridge/backend/internal/setup"
	mw "github.com/itchan-dev/confluence-bridge/shared/middleware"
	"github.com/itchan-dev/confluence-bridge/shared/middleware/metrics"
)

// New creates the chi router with all gateway routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	server := deps.Config.Public.Server

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))
	r.Use(mw.SecurityHeaders(server.SecureCookies))
	if len(server.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: server.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		if server.RequestsPerMinute > 0 {
			v1.Use(httprate.LimitByIP(server.RequestsPerMinute, time.Minute))
		}
		if deps.Auth != nil {
			v1.Use(deps.Auth.NeedAuth())
		}

		v1.Get("/users/me", h.GetCurrentUser)
		v1.Get("/users/{identifier}", h.GetUser)
		v1.Get("/content/{contentId}/attachments", h.ListAttachments)
		v1.Get("/attachments/{attachmentId}", h.GetAttachment)
	})

	return r
}
