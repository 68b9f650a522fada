// Package main initializes and starts the store API server, setting up
// configuration, logging, the database connection, repositories,
// services, handlers, and graceful shutdown.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avidela/tienda/internal/config"
	"github.com/avidela/tienda/internal/db"
	"github.com/avidela/tienda/internal/logger"
	"github.com/avidela/tienda/internal/repository"
	"github.com/avidela/tienda/internal/server/handler/http"
	"github.com/avidela/tienda/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.TokenSecret == "" {
		zapLogger.Fatal("token signing secret is required (-s or TOKEN_SECRET)")
	}

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed the default catalog on a fresh database.
	if err := db.SeedCatalog(ctx, postgresDB); err != nil {
		zapLogger.Fatal("cannot seed catalog", zap.Error(err))
	}

	// Initialize repositories for the catalog and authentication.
	catalogRepo := repository.NewPostgresCatalogRepository(postgresDB)
	authRepo := repository.NewPostgresAuthRepository(postgresDB)

	// Initialize business-logic services.
	catalogService := service.NewCatalogService(catalogRepo)
	authService := service.NewAuthService(authRepo, options.TokenSecret)

	// Create HTTP handlers for the catalog and auth endpoints.
	catalogHandler := &http.CatalogHandler{CatalogService: catalogService}
	authHandler := &http.AuthHandler{AuthService: authService}

	// Build the router with middleware and routes.
	router := http.NewRouter(catalogHandler, authHandler, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
		if err := server.ListenAndServe(); !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
