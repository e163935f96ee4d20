// Package seed implements the dataset seeding command for the SQLite
// backend.
package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/esit-pro/service-desk/internal/infrastructure/config"
	"github.com/esit-pro/service-desk/internal/infrastructure/database"
	httpRouter "github.com/esit-pro/service-desk/internal/interfaces/http"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/logger"
)

var (
	env        string
	dataset    string
	count      int
	randomSeed int64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored dataset",
		Long:  `Replace the SQLite dataset with the fixed demo set or freshly generated records. The in-memory backend seeds itself on server startup.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&dataset, "dataset", "", "Dataset to load: fixed or generated (defaults to the configured one)")
	cmd.Flags().IntVar(&count, "count", 0, "Number of generated service requests (generated dataset only)")
	cmd.Flags().Int64Var(&randomSeed, "random-seed", 0, "Seed for reproducible generated datasets")

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

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if cfg.Storage.Driver != constants.StorageDriverSQLite {
		return fmt.Errorf("seed command requires the sqlite storage driver, configured driver is %q", cfg.Storage.Driver)
	}

	if dataset != "" {
		cfg.Seed.Dataset = dataset
	}
	if count > 0 {
		cfg.Seed.Count = count
	}
	if randomSeed != 0 {
		cfg.Seed.RandomSeed = randomSeed
	}

	if err := database.Init(&cfg.Storage); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	container := httpRouter.NewContainer(cfg, log)
	if err := container.Seeder.Seed(cmd.Context(), cfg.Seed); err != nil {
		return fmt.Errorf("failed to seed dataset: %w", err)
	}

	log.Info("dataset replaced", "dataset", cfg.Seed.Dataset)
	return nil
}
