// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/photostreak/streak-service/internal/adapters/http/handlers"
	"github.com/photostreak/streak-service/internal/adapters/http/middleware"
	"github.com/photostreak/streak-service/internal/ports"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Groups *handlers.GroupHandler
	Posts  *handlers.PostHandler
	Admin  *handlers.AdminHandler
	Health *handlers.HealthHandler

	// Photos serves stored images under PhotosPath when both are set.
	Photos     http.Handler
	PhotosPath string
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. API routes require a
// bearer token accepted by verifier; admin routes additionally require the
// caller to be listed in admins.
func NewRouter(
	routes Routes,
	verifier ports.TokenVerifier,
	admins []string,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	if routes.Photos != nil && routes.PhotosPath != "" {
		prefix := "/" + strings.Trim(routes.PhotosPath, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, routes.Photos))
	}

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(verifier))

		r.Post("/groups", routes.Groups.CreateGroup)
		r.Get("/groups/{groupId}", routes.Groups.GetGroup)
		r.Get("/groups/{groupId}/today", routes.Groups.TodayStatus)
		r.Post("/groups/{groupId}/posts", routes.Posts.CreatePost)
		r.Post("/groups/{groupId}/streak/evaluate", routes.Groups.Evaluate)
		r.Delete("/groups/{groupId}/members/me", routes.Groups.Leave)
		r.Get("/leaderboard", routes.Groups.Leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(admins))
			r.Post("/admin/streak-reset", routes.Admin.RunReset)
		})
	})

	return r
}
