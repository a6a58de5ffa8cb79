package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curio-box/internal/config"
	"curio-box/internal/handler"
	"curio-box/internal/router"
	"curio-box/internal/seed"
	"curio-box/internal/service"
	"curio-box/internal/storage"
	"curio-box/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting curio-box API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the local state store
	adapter, err := storage.NewSQLiteStore(cfg.Storage.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer adapter.Close()

	// Resolve the starter catalog
	starter := seed.Default()
	if cfg.Seed.Enabled {
		fileLoader := seed.NewFileLoader(logger)
		var catalogLoader seed.Loader = fileLoader

		if cfg.Seed.S3.Enabled {
			s3Loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3.Bucket, cfg.Seed.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				catalogLoader = seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Seed.S3.Prefix, true, logger)
			}
		}

		catalog, err := catalogLoader.Load(ctx, cfg.Seed.Path)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to load starter catalog, using built-in starter items")
		} else if len(catalog) > 0 {
			starter = catalog
		}
	}

	// Initialize the domain store
	domain, err := store.New(ctx, adapter, starter, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	// Initialize services
	creatorService := service.NewCreatorService(domain, logger)
	adminService := service.NewAdminService(domain, logger)
	shopperService := service.NewShopperService(domain, logger)

	// Initialize HTTP handlers
	creatorHandler := handler.NewCreatorHandler(creatorService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)
	shopperHandler := handler.NewShopperHandler(shopperService, logger)

	// Initialize router
	mux := router.New(creatorHandler, adminHandler, shopperHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
