package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ornoone/lightning-entitystore/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) error: %v", err)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want INFO", cfg.LogLevel)
	}
	if cfg.SeedEpoch != 0 {
		t.Errorf("SeedEpoch = %d, want 0", cfg.SeedEpoch)
	}
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	cfg, err := config.Load([]string{"-log-level", "DEBUG", "-seed-epoch", "7"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want DEBUG", cfg.LogLevel)
	}
	if cfg.SeedEpoch != 7 {
		t.Errorf("SeedEpoch = %d, want 7", cfg.SeedEpoch)
	}
}

func TestLoadEnvOverridesDefaultsButNotFlags(t *testing.T) {
	t.Setenv("LIGHTNING_LOG_LEVEL", "WARN")
	t.Setenv("LIGHTNING_SEED_EPOCH", "3")

	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) error: %v", err)
	}
	if cfg.LogLevel != "WARN" || cfg.SeedEpoch != 3 {
		t.Fatalf("got %+v, want LogLevel=WARN SeedEpoch=3", cfg)
	}

	cfg, err = config.Load([]string{"-log-level", "ERROR"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "ERROR" {
		t.Errorf("flag should override env: LogLevel = %q, want ERROR", cfg.LogLevel)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lightning.yaml")
	if err := os.WriteFile(path, []byte("log_level: DEBUG\nseed_epoch: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load([]string{"-config", path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "DEBUG" || cfg.SeedEpoch != 5 {
		t.Fatalf("got %+v, want LogLevel=DEBUG SeedEpoch=5", cfg)
	}
}

func TestLoadEnvOverridesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lightning.yaml")
	if err := os.WriteFile(path, []byte("log_level: DEBUG\nseed_epoch: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("LIGHTNING_LOG_LEVEL", "WARN")

	cfg, err := config.Load([]string{"-config", path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogLevel != "WARN" {
		t.Errorf("env should override file: LogLevel = %q, want WARN", cfg.LogLevel)
	}
	if cfg.SeedEpoch != 5 {
		t.Errorf("file value should survive where env didn't set one: SeedEpoch = %d, want 5", cfg.SeedEpoch)
	}
}
