package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// chdir changes the working directory for the duration of the test,
// matching t.Chdir from Go 1.24 which is unavailable on this toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

func writeConfigFile(t *testing.T, contents map[string]any) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))

	raw, err := yaml.Marshal(contents)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), raw, 0o644))

	chdir(t, dir)
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("default")

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.GetAddr())
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "fixed", cfg.Seed.Dataset)
	assert.Equal(t, 500, cfg.Latency.ListMillis)
	assert.Equal(t, 300, cfg.Latency.GetMillis)
	assert.Equal(t, 200, cfg.Latency.MutateMillis)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	writeConfigFile(t, map[string]any{
		"server": map[string]any{
			"port": 9090,
		},
		"storage": map[string]any{
			"driver": "sqlite",
			"path":   "desk.db",
		},
		"latency": map[string]any{
			"list_millis": 0,
		},
		"seed": map[string]any{
			"dataset":     "generated",
			"count":       40,
			"random_seed": 7,
		},
	})

	cfg, err := Load("default")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "desk.db", cfg.Storage.Path)
	assert.Equal(t, 0, cfg.Latency.ListMillis)
	assert.Equal(t, "generated", cfg.Seed.Dataset)
	assert.Equal(t, 40, cfg.Seed.Count)
	assert.Equal(t, int64(7), cfg.Seed.RandomSeed)
}

func TestLoad_EnvParameterOverridesMode(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("release")

	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}
