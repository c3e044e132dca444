// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"conversion-wiz/internal/errors"
	"conversion-wiz/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. CONVWIZ_OUTPUT_PRECISION
const EnvPrefix = "CONVWIZ"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version"`

	// Definitions locates the unit catalog
	Definitions DefinitionsConfig `json:"definitions" mapstructure:"definitions"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output"`

	// Cache contains path cache configuration
	Cache CacheConfig `json:"cache" mapstructure:"cache"`

	// Watch contains definition reload configuration
	Watch WatchConfig `json:"watch" mapstructure:"watch"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging"`
}

// DefinitionsConfig locates the unit catalog
type DefinitionsConfig struct {
	// Path is the definition file; empty selects the built-in catalog
	Path string `json:"path" mapstructure:"path"`

	// Format overrides extension-based detection (json, yaml, hcl)
	Format string `json:"format" mapstructure:"format" validate:"omitempty,oneof=json yaml yml hcl"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Precision is the number of decimal places; -1 keeps full precision
	Precision int `json:"precision" mapstructure:"precision" validate:"gte=-1,lte=20"`

	// ShowPath prints the hops used for each conversion
	ShowPath bool `json:"show_path" mapstructure:"show_path"`
}

// CacheConfig contains path cache settings
type CacheConfig struct {
	// Enabled memoizes resolved conversion paths
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// TTLSeconds expires cached paths; 0 keeps them until the graph changes
	TTLSeconds int `json:"ttl_seconds" mapstructure:"ttl_seconds" validate:"gte=0"`
}

// WatchConfig contains definition reload settings
type WatchConfig struct {
	// Enabled reloads the catalog in interactive mode when the file changes
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// DebounceMS coalesces bursts of file events
	DebounceMS int `json:"debounce_ms" mapstructure:"debounce_ms" validate:"gte=0"`
}

// TTL returns the cache TTL as a duration
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Debounce returns the debounce interval as a duration
func (c WatchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			Precision: 6,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Watch: WatchConfig{
			DebounceMS: 250,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.conversion-wiz.json
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".conversion-wiz.json"
	}
	return filepath.Join(home, ".conversion-wiz.json")
}

// NewViper returns a viper instance seeded with defaults and environment overrides
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("definitions.path", d.Definitions.Path)
	v.SetDefault("definitions.format", d.Definitions.Format)
	v.SetDefault("output.precision", d.Output.Precision)
	v.SetDefault("output.show_path", d.Output.ShowPath)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl_seconds", d.Cache.TTLSeconds)
	v.SetDefault("watch.enabled", d.Watch.Enabled)
	v.SetDefault("watch.debounce_ms", d.Watch.DebounceMS)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.development", d.Logging.Development)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path into v. A missing file yields the
// defaults plus any environment and flag overrides bound to v.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Config("reading "+path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Config("reading "+path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Config("decoding configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks value ranges
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Config("invalid configuration", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
