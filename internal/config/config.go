// Package config provides configuration types and defaults for masthead.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/masthead/internal/catalog"
	"github.com/zjrosen/masthead/internal/log"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// MASTHEAD_CATALOG_FREQUENT_THRESHOLD=3.
const EnvPrefix = "MASTHEAD"

// Config holds all configuration options for masthead.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// LogConfig controls the debug log sink.
type LogConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Level     string `mapstructure:"level"`      // "debug", "info" (default), "warn", "error"
	TeaPrefix string `mapstructure:"tea_prefix"` // when set, the file is opened through tea.LogToFile
}

// CatalogConfig tunes registry queries.
type CatalogConfig struct {
	FrequentThreshold int `mapstructure:"frequent_threshold" yaml:"frequent_threshold"`
}

// RegistryOptions returns the catalog options this config describes.
func (c CatalogConfig) RegistryOptions() []catalog.Option {
	return []catalog.Option{catalog.WithFrequentThreshold(c.FrequentThreshold)}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Enabled: false,
			Path:    "masthead.log",
			Level:   "info",
		},
		Catalog: CatalogConfig{
			FrequentThreshold: catalog.DefaultFrequentThreshold,
		},
	}
}

// Load reads configuration from path (optional) layered over defaults and
// MASTHEAD_* environment variables, then validates it.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("log.enabled", defaults.Log.Enabled)
	v.SetDefault("log.path", defaults.Log.Path)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.tea_prefix", defaults.Log.TeaPrefix)
	v.SetDefault("catalog.frequent_threshold", defaults.Catalog.FrequentThreshold)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "config loaded", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func Validate(cfg Config) error {
	if err := ValidateLog(cfg.Log); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := ValidateCatalog(cfg.Catalog); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}

// ValidateLog checks the log settings.
func ValidateLog(l LogConfig) error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return err
	}
	if l.Enabled && l.Path == "" {
		return fmt.Errorf("path is required when logging is enabled")
	}
	return nil
}

// ValidateCatalog checks the catalog settings.
func ValidateCatalog(c CatalogConfig) error {
	if c.FrequentThreshold < 0 {
		return fmt.Errorf("frequent_threshold must be >= 0, got %d", c.FrequentThreshold)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Masthead Configuration

# Debug log
log:
  enabled: false          # Write a debug log
  path: masthead.log      # Log file path
  level: info             # debug, info, warn, error
  # tea_prefix: masthead  # Open the log through tea.LogToFile with this prefix

# Catalog queries
catalog:
  frequent_threshold: 2   # Contributors with more works than this are "frequent"
`
}

// WriteDefaultConfig creates a config file with default settings.
// Creates parent directories if needed.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
