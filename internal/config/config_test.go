package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversion-wiz/internal/config"
	"conversion-wiz/internal/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Output.Precision)
	assert.True(t, cfg.Cache.Enabled)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := config.Default()
	cfg.Definitions.Path = "/etc/units.hcl"
	cfg.Output.Precision = 3
	cfg.Watch.Enabled = true
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "definitions:\n  path: units.yaml\noutput:\n  precision: 2\n  show_path: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "units.yaml", cfg.Definitions.Path)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.True(t, cfg.Output.ShowPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CONVWIZ_OUTPUT_PRECISION", "4")
	t.Setenv("CONVWIZ_DEFINITIONS_PATH", "env.json")

	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, "env.json", cfg.Definitions.Path)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": {"precision": -5}}`), 0644))

	_, err := config.Load(config.NewViper(), path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	_, err = config.Load(config.NewViper(), path)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestDurations(t *testing.T) {
	assert.Equal(t, 30*time.Second, config.CacheConfig{TTLSeconds: 30}.TTL())
	assert.Equal(t, 250*time.Millisecond, config.WatchConfig{DebounceMS: 250}.Debounce())
}
