package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDerivesPaths(t *testing.T) {
	t.Parallel()
	cfg, err := New("/tmp/cd")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if cfg.StorePath != filepath.Join("/tmp/cd", "courtdesk.bolt") || cfg.DBPath != filepath.Join("/tmp/cd", "courtdesk.db") {
		t.Fatalf("unexpected paths %+v", cfg)
	}
	if cfg.TickInterval != time.Second || cfg.IngestInterval != 3*time.Second {
		t.Fatalf("unexpected intervals %s %s", cfg.TickInterval, cfg.IngestInterval)
	}
	if _, err := New(" "); err == nil {
		t.Fatalf("expected error for empty data dir")
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	content := "clerk_name: Dana Reyes\nlog_mode: production\ndictionary_path: dict.yaml\ningest_interval: 2s\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ClerkName != "Dana Reyes" || cfg.LogMode != "production" {
		t.Fatalf("unexpected overlay %+v", cfg)
	}
	if cfg.DictionaryPath != filepath.Join(dir, "dict.yaml") {
		t.Fatalf("dictionary path should resolve relative to config, got %s", cfg.DictionaryPath)
	}
	if cfg.IngestInterval != 2*time.Second || cfg.TickInterval != time.Second {
		t.Fatalf("unexpected intervals %s %s", cfg.TickInterval, cfg.IngestInterval)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := Load(dir, "")
	if err != nil {
		t.Fatalf("implicit missing config should be fine: %v", err)
	}
	if cfg.ClerkName != DefaultClerkName {
		t.Fatalf("expected default clerk, got %s", cfg.ClerkName)
	}
	if _, err := Load(dir, filepath.Join(dir, "nope.yaml")); err == nil {
		t.Fatalf("explicit missing config should fail")
	}
}
