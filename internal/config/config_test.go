package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Color != "auto" {
		t.Errorf("Output.Color = %q, want auto", cfg.Output.Color)
	}
	if cfg.Solver.Order != "declaration" {
		t.Errorf("Solver.Order = %q, want declaration", cfg.Solver.Order)
	}
	if cfg.Solver.MaxExtensions != 0 {
		t.Errorf("Solver.MaxExtensions = %d, want 0", cfg.Solver.MaxExtensions)
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should default to false")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Watch.DebounceMs != 200 {
		t.Errorf("Watch.DebounceMs = %d, want 200", cfg.Watch.DebounceMs)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if errs := Default().Validate(); len(errs) > 0 {
		t.Errorf("default config should validate cleanly, got %v", errs)
	}
}

func TestSetDefaultsAndLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Solver.Order != "declaration" {
		t.Errorf("Solver.Order = %q, want declaration", cfg.Solver.Order)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Logging.MaxSizeMB = %d, want 10", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("output.color", "sometimes")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject an unknown color mode")
	}
}

func TestGetFallsBackToDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("solver.order", "random")

	cfg := Get()
	if cfg.Solver.Order != Default().Solver.Order {
		t.Errorf("Get() should fall back to defaults on invalid config, got order %q", cfg.Solver.Order)
	}
}

func TestWatchDebounce(t *testing.T) {
	w := WatchConfig{DebounceMs: 250}
	if got := w.Debounce(); got != 250*time.Millisecond {
		t.Errorf("Debounce() = %v, want 250ms", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		expected := "/custom/config/argue"
		if got := ConfigDir(); got != expected {
			t.Errorf("ConfigDir() = %q, want %q", got, expected)
		}
	})

	t.Run("XDG_CONFIG_HOME unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		os.Unsetenv("XDG_CONFIG_HOME")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}
		expected := filepath.Join(home, ".config", "argue")
		if got := ConfigDir(); got != expected {
			t.Errorf("ConfigDir() = %q, want %q", got, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	expected := "/custom/config/argue/config.yaml"
	if got := ConfigFile(); got != expected {
		t.Errorf("ConfigFile() = %q, want %q", got, expected)
	}
}
