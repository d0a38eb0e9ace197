package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Dashboard.File != nil || cfg.Dashboard.Preset != nil {
		t.Fatalf("expected zero config for missing file, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[dashboard]
file = "results.csv"
preset = "solve_rate"
days = 30
limit = 10
filter = "@alice"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Dashboard.File == nil || *cfg.Dashboard.File != "results.csv" {
		t.Fatalf("unexpected file setting: %+v", cfg.Dashboard.File)
	}
	if cfg.Dashboard.Preset == nil || *cfg.Dashboard.Preset != "solve_rate" {
		t.Fatalf("unexpected preset setting: %+v", cfg.Dashboard.Preset)
	}
	if cfg.Dashboard.Days == nil || *cfg.Dashboard.Days != 30 {
		t.Fatalf("unexpected days setting: %+v", cfg.Dashboard.Days)
	}
	if cfg.Dashboard.Limit == nil || *cfg.Dashboard.Limit != 10 {
		t.Fatalf("unexpected limit setting: %+v", cfg.Dashboard.Limit)
	}
	if cfg.Dashboard.Filter == nil || *cfg.Dashboard.Filter != "@alice" {
		t.Fatalf("unexpected filter setting: %+v", cfg.Dashboard.Filter)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "chartle", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "chartle", "chartle.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
