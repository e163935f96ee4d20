// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/esit-pro/service-desk/internal/infrastructure/config"
	"github.com/esit-pro/service-desk/internal/infrastructure/database"
	httpRouter "github.com/esit-pro/service-desk/internal/interfaces/http"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the service desk API server with the configured storage backend and seed dataset.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Start with empty collections instead of seeding the dataset")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Info("starting server", "environment", env, "storage", cfg.Storage.Driver)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if cfg.Storage.Driver == constants.StorageDriverSQLite {
		if err := database.Init(&cfg.Storage); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.Close()
	}

	container := httpRouter.NewContainer(cfg, log)

	if !skipSeed {
		if err := seedIfEmpty(cmd.Context(), container, cfg, log); err != nil {
			return err
		}
	}

	router := httpRouter.NewRouter(container, cfg, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}

// seedIfEmpty loads the startup dataset unless the store already holds
// records, so a persistent SQLite database is not reseeded on restart.
func seedIfEmpty(ctx context.Context, container *httpRouter.Container, cfg *config.Config, log logger.Interface) error {
	count, err := container.RequestRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect existing dataset: %w", err)
	}
	if count > 0 {
		log.Info("dataset already present, skipping seed", "requests", count)
		return nil
	}

	if err := container.Seeder.Seed(ctx, cfg.Seed); err != nil {
		return fmt.Errorf("failed to seed dataset: %w", err)
	}
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
