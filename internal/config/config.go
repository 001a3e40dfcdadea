package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete argue configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Logging LoggingConfig `mapstructure:"logging"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// OutputConfig controls how answers are rendered
type OutputConfig struct {
	// Color controls colored output on stdout
	// Options: "auto" (color when stdout is a terminal), "always", "never"
	Color string `mapstructure:"color"`
}

// SolverConfig controls search behavior
type SolverConfig struct {
	// Order is the branching order over arguments during search
	// Options: "declaration" (file order, default), "lexicographic"
	Order string `mapstructure:"order"`
	// MaxExtensions caps how many extensions the extensions command
	// enumerates (0 = unlimited)
	MaxExtensions int `mapstructure:"max_extensions"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether diagnostic logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path. Empty means log to stderr.
	File string `mapstructure:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation
	// (default: 10, 0 disables rotation)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// WatchConfig controls watch mode behavior
type WatchConfig struct {
	// DebounceMs is how long to wait after a file change before re-solving
	// (in milliseconds). Editors often fire several events per save.
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Debounce returns the watch debounce interval as a time.Duration
func (c *WatchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Color: "auto",
		},
		Solver: SolverConfig{
			Order:         "declaration",
			MaxExtensions: 0, // No cap by default
		},
		Logging: LoggingConfig{
			Enabled:    false, // Quiet by default; stdout carries answers
			Level:      "info",
			File:       "", // Empty means stderr
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Watch: WatchConfig{
			DebounceMs: 200,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Output defaults
	viper.SetDefault("output.color", defaults.Output.Color)

	// Solver defaults
	viper.SetDefault("solver.order", defaults.Solver.Order)
	viper.SetDefault("solver.max_extensions", defaults.Solver.MaxExtensions)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	// Watch defaults
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "argue")
	}
	// Fall back to ~/.config/argue
	home, err := os.UserHomeDir()
	if err != nil {
		return ".argue"
	}
	return filepath.Join(home, ".config", "argue")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidColorModes returns the list of valid output color modes
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// ValidOrders returns the list of valid solver branching orders
func ValidOrders() []string {
	return []string{"declaration", "lexicographic"}
}
