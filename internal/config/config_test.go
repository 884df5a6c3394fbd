package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.MarginFactor != 1.2 {
		t.Errorf("expected margin factor 1.2, got %f", cfg.Camera.MarginFactor)
	}
	if cfg.Camera.MinElevation != -85 || cfg.Camera.MaxElevation != 85 {
		t.Errorf("expected elevation limits -85/85, got %f/%f",
			cfg.Camera.MinElevation, cfg.Camera.MaxElevation)
	}

	if cfg.Scene.Family != "vase" {
		t.Errorf("expected family 'vase', got %s", cfg.Scene.Family)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  vsync: false

camera:
  fov: 60
  margin_factor: 1.5
  zoom_step: 1.2

scene:
  family: table

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatal(err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("window size = %dx%d, want 1920x1080", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.VSync {
		t.Error("vsync should be overridden to false")
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("fov = %f, want 60", cfg.Camera.FOV)
	}
	if cfg.Camera.ZoomStep != 1.2 {
		t.Errorf("zoom step = %f, want 1.2", cfg.Camera.ZoomStep)
	}
	// Untouched values keep their defaults.
	if cfg.Camera.MinDistance != 0.5 {
		t.Errorf("min distance = %f, want default 0.5", cfg.Camera.MinDistance)
	}
	if cfg.Scene.Family != "table" {
		t.Errorf("family = %s, want table", cfg.Scene.Family)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Logging.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Camera.MaxDistance = 250
	cfg.Scene.Family = "table"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatal(err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("width = %d, want 800", loaded.Graphics.Width)
	}
	if loaded.Camera.MaxDistance != 250 {
		t.Errorf("max distance = %f, want 250", loaded.Camera.MaxDistance)
	}
	if loaded.Scene.Family != "table" {
		t.Errorf("family = %s, want table", loaded.Scene.Family)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
