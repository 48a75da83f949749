// Command api runs the rental catalog HTTP server.
//
// Startup order: config, telemetry, migrations, shared resources (database,
// redis, job workers), then the repository/service/handler containers and
// the router. Shutdown reverses it on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/rajharit77/rental-catalog/internal/config"
	"github.com/rajharit77/rental-catalog/internal/database"
	"github.com/rajharit77/rental-catalog/internal/handler"
	"github.com/rajharit77/rental-catalog/internal/logger"
	"github.com/rajharit77/rental-catalog/internal/middleware"
	"github.com/rajharit77/rental-catalog/internal/repository"
	"github.com/rajharit77/rental-catalog/internal/router"
	"github.com/rajharit77/rental-catalog/internal/server"
	"github.com/rajharit77/rental-catalog/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		// config.New logs fatally on its own failures; this guards the
		// signature staying error-returning.
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		fallback := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	log := logger.New(cfg, loggerService)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
	cancel()

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(handlers, middlewares)
	srv.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("server stopped unexpectedly")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(5 * time.Second)
	}

	log.Info().Msg("server stopped")
}
