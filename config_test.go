package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigReadsOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ai_depth": 6, "server_addr": ":9090"}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AiDepth != 6 {
		t.Fatalf("expected ai_depth 6, got %d", cfg.AiDepth)
	}
	if cfg.ServerAddr != ":9090" {
		t.Fatalf("expected server_addr :9090, got %s", cfg.ServerAddr)
	}
	if cfg.TickIntervalMs != DefaultConfig().TickIntervalMs {
		t.Fatalf("untouched keys must keep defaults")
	}
}

func TestLoadConfigRejectsInvalidDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ai_depth": 0}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AiDepth != DefaultConfig().AiDepth {
		t.Fatalf("invalid depth must fall back to the default, got %d", cfg.AiDepth)
	}
}
