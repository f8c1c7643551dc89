package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/dealsync/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware, allowedOrigins []string) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RealIP, mw.Log, mw.Recover, cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Api-Key", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	mux.Get("/", h.HealthHandler)
	mux.Get("/health", h.HealthHandler)
	mux.Get("/swagger/*", httpSwagger.Handler())

	mux.Group(func(r chi.Router) {
		r.Use(mw.APIKeyAuth)
		r.Post("/send", h.SendDeal)
	})

	return mux
}
