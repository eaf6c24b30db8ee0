package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 4 {
		t.Errorf("Lives = %d, expected 4", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.BlockScore != 100 {
		t.Errorf("BlockScore = %d, expected 100", cfg.Gameplay.BlockScore)
	}
	if cfg.Layout.Columns != 10 || cfg.Layout.Rows != 5 {
		t.Errorf("Layout = %dx%d, expected 10x5", cfg.Layout.Columns, cfg.Layout.Rows)
	}
	if cfg.Display.Background != "black" {
		t.Errorf("Background = %q, expected %q", cfg.Display.Background, "black")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	custom := []byte("gameplay:\n  lives: 2\nlayout:\n  columns: 8\n  rows: 3\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", cfg.Gameplay.Lives)
	}
	if cfg.Layout.Columns != 8 || cfg.Layout.Rows != 3 {
		t.Errorf("Layout = %dx%d, expected 8x3", cfg.Layout.Columns, cfg.Layout.Rows)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}
