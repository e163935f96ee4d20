// Package config defines the configuration types shared across the
// application. Loading lives in internal/infrastructure/config.
package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type StorageConfig struct {
	// Driver selects the repository backend: "memory" (default) or "sqlite".
	Driver string `mapstructure:"driver"`
	// Path is the SQLite database file, used only by the sqlite driver.
	Path string `mapstructure:"path"`
}

// LatencyConfig holds the simulated network delay budgets applied by the
// in-memory stores. Each operation class has its own budget, matching the
// per-call delays of the original mock layer. Zero disables simulation.
type LatencyConfig struct {
	ListMillis   int `mapstructure:"list_millis"`
	GetMillis    int `mapstructure:"get_millis"`
	MutateMillis int `mapstructure:"mutate_millis"`
	SearchMillis int `mapstructure:"search_millis"`
	BatchMillis  int `mapstructure:"batch_millis"`
}

func (c *LatencyConfig) List() time.Duration   { return time.Duration(c.ListMillis) * time.Millisecond }
func (c *LatencyConfig) Get() time.Duration    { return time.Duration(c.GetMillis) * time.Millisecond }
func (c *LatencyConfig) Mutate() time.Duration { return time.Duration(c.MutateMillis) * time.Millisecond }
func (c *LatencyConfig) Search() time.Duration { return time.Duration(c.SearchMillis) * time.Millisecond }
func (c *LatencyConfig) Batch() time.Duration  { return time.Duration(c.BatchMillis) * time.Millisecond }

type SeedConfig struct {
	// Dataset selects the startup dataset: "fixed" (the 15-request demo set)
	// or "generated" (randomized records from the generator).
	Dataset string `mapstructure:"dataset"`
	// Count is the number of generated service requests when Dataset is
	// "generated".
	Count int `mapstructure:"count"`
	// RandomSeed makes generated datasets reproducible when non-zero.
	RandomSeed int64 `mapstructure:"random_seed"`
}
