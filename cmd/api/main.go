package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gamecatalog/internal/adapter/api"
	"gamecatalog/internal/adapter/api/handler"
	apimiddleware "gamecatalog/internal/adapter/api/middleware"
	"gamecatalog/internal/adapter/api/router"
	"gamecatalog/internal/adapter/repository"
	"gamecatalog/internal/infrastructure/websocket"
	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/config"
	"gamecatalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := repository.SeedVideoGames()
	if cfg.CatalogSeedFile != "" {
		seed, err = repository.LoadSeedFile(cfg.CatalogSeedFile)
		if err != nil {
			logger.Error("Failed to load catalog seed: %v", err)
			return
		}
		logger.Info("Loaded %d videogames from %s", len(seed), cfg.CatalogSeedFile)
	}

	videoGameRepo := repository.NewMemoryVideoGameRepository(seed)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	videoGameUseCase := usecase.NewVideoGameUseCase(videoGameRepo, wsManager)

	handler.Setup(videoGameUseCase, wsManager)

	rateLimiter := apimiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	rateLimiter.StartCleanupRoutine(ctx, 30*time.Minute)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(apimiddleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))

	e.Validator = api.NewValidator()

	router.Setup(e, rateLimiter)

	go func() {
		logger.Info("Starting server on port %s with %d videogames...", cfg.ServerPort, videoGameRepo.Count(ctx))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
