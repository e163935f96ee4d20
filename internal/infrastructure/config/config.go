// Package config loads the application configuration from file and
// environment.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/esit-pro/service-desk/internal/shared/config"
	"github.com/esit-pro/service-desk/internal/shared/constants"
)

type Config struct {
	Server  sharedConfig.ServerConfig  `mapstructure:"server"`
	Logger  sharedConfig.LoggerConfig  `mapstructure:"logger"`
	Storage sharedConfig.StorageConfig `mapstructure:"storage"`
	Latency sharedConfig.LatencyConfig `mapstructure:"latency"`
	Seed    sharedConfig.SeedConfig    `mapstructure:"seed"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables. A missing
// config file is not an error; defaults and environment cover everything.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("SERVICEDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Storage defaults
	viper.SetDefault("storage.driver", constants.StorageDriverMemory)
	viper.SetDefault("storage.path", "servicedesk.db")

	// Latency defaults mirror the delays of the original mock layer.
	viper.SetDefault("latency.list_millis", 500)
	viper.SetDefault("latency.get_millis", 300)
	viper.SetDefault("latency.mutate_millis", 200)
	viper.SetDefault("latency.search_millis", 500)
	viper.SetDefault("latency.batch_millis", 400)

	// Seed defaults
	viper.SetDefault("seed.dataset", "fixed")
	viper.SetDefault("seed.count", 15)
	viper.SetDefault("seed.random_seed", 0)
}
