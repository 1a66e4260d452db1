package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pokedex-api/internal/config"
	"pokedex-api/internal/handler"
	"pokedex-api/internal/middleware"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Pokemon *handler.PokemonHandler
	Item    *handler.ItemHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", handlers.Auth.Register)
			auth.Post("/login", handlers.Auth.Login)
		})

		api.Get("/pokemons", handlers.Pokemon.List)
		api.Get("/pokemons/{name}", handlers.Pokemon.Get)
		api.With(authMiddleware.RequireAuth).Post("/pokemons/seed", handlers.Pokemon.Seed)

		api.Get("/items", handlers.Item.List)
		api.With(authMiddleware.RequireAuth).Post("/items/seed", handlers.Item.Seed)
	})

	return r
}
