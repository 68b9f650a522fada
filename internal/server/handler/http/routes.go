package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/avidela/tienda/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the HTTP handler serving the store API.
//
// Routes:
//
//	GET  /api/products       → catalogHandler.Products
//	POST /api/auth/login     → authHandler.Login
//	POST /api/auth/register  → authHandler.Register
//
// All requests are logged through the zap middleware; the auth routes
// additionally require a JSON content type.
func NewRouter(
	catalogHandler *CatalogHandler,
	authHandler *AuthHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogHandler.Products)

		r.Route("/auth", func(r chi.Router) {
			// Only allow requests with Content-Type: application/json
			r.Use(chiMiddleware.AllowContentType("application/json"))
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
		})
	})

	return r
}
