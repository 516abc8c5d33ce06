package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvStorageBackend = "PINBOARD_STORAGE_BACKEND"
	EnvStoragePath    = "PINBOARD_STORAGE_PATH"
	EnvLogLevel       = "PINBOARD_LOG_LEVEL"
	EnvThemeFile      = "PINBOARD_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage       StorageConfig      `yaml:"storage"`
	Notifications NotificationConfig `yaml:"notifications"`
	Logging       LoggingConfig      `yaml:"logging"`
	// SeedSamples fills an empty storage slot with the sample boards.
	// Nil means the default (on).
	SeedSamples *bool       `yaml:"seed_samples,omitempty"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// StorageConfig locates the snapshot
type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite, file or memory
	Path    string `yaml:"path"`    // database file or directory; empty means ~/.pinboard
	Key     string `yaml:"key"`
	Codec   string `yaml:"codec"` // json or cbor
}

// NotificationConfig holds toast lifetimes per level
type NotificationConfig struct {
	Success time.Duration `yaml:"success"`
	Info    time.Duration `yaml:"info"`
	Warning time.Duration `yaml:"warning"`
	Error   time.Duration `yaml:"error"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"` // empty means ~/.pinboard/logs/pinboard.log
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from PINBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	}

	// Load theme from PINBOARD_THEME_FILE if set
	loadThemeFile(config)

	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pinboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "pinboard", "config.yaml"), nil
}

// Seed reports whether sample boards should be seeded
func (c *Config) Seed() bool {
	return c.SeedSamples == nil || *c.SeedSamples
}

// LogLevel parses the configured level
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return level, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
	switch c.Storage.Codec {
	case "json", "cbor":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCodec, c.Storage.Codec)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = "sqlite"
	}
	if c.Storage.Key == "" {
		c.Storage.Key = "board-storage"
	}
	if c.Storage.Codec == "" {
		c.Storage.Codec = "json"
	}

	if c.Notifications.Success <= 0 {
		c.Notifications.Success = 3 * time.Second
	}
	if c.Notifications.Info <= 0 {
		c.Notifications.Info = 3 * time.Second
	}
	if c.Notifications.Warning <= 0 {
		c.Notifications.Warning = 3 * time.Second
	}
	if c.Notifications.Error <= 0 {
		c.Notifications.Error = 4 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
