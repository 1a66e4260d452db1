package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokedex-api/internal/auth"
	"pokedex-api/internal/config"
	"pokedex-api/internal/database"
	"pokedex-api/internal/handler"
	"pokedex-api/internal/middleware"
	"pokedex-api/internal/pokeapi"
	"pokedex-api/internal/repository"
	"pokedex-api/internal/router"
	"pokedex-api/internal/service"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	pokemonRepo := repository.NewPokemonRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	slog.Info("database ready")

	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	authService := service.NewAuthService(userRepo, auth.NewHasher(), issuer)
	authMiddleware := middleware.NewAuthMiddleware(issuer)
	authHandler := handler.NewAuthHandler(authService)

	apiClient := pokeapi.New(cfg.PokeAPIBaseURL, cfg.PokeAPITimeout)
	pokemonService := service.NewPokemonService(pokemonRepo, apiClient, cfg.SeedLimit)
	pokemonHandler := handler.NewPokemonHandler(pokemonService)
	itemService := service.NewItemService(itemRepo, apiClient, cfg.SeedLimit)
	itemHandler := handler.NewItemHandler(itemService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:    authHandler,
		Pokemon: pokemonHandler,
		Item:    itemHandler,
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
