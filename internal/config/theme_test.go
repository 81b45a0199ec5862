package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	writeConfig(t, "")

	themeFile := filepath.Join(t.TempDir(), "kanban-theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	if err := os.WriteFile(themeFile, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestThemeFile_MissingIsIgnored(t *testing.T) {
	writeConfig(t, "")
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestThemePreset(t *testing.T) {
	writeConfig(t, `theme:
  preset: monochrome
  title: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	mono := MonochromeColorScheme()
	if cfg.ColorScheme.Accent != mono.Accent {
		t.Errorf("accent = %s, want monochrome %s", cfg.ColorScheme.Accent, mono.Accent)
	}
	if cfg.ColorScheme.Title != "#123456" {
		t.Errorf("custom title overridden: %s", cfg.ColorScheme.Title)
	}
}
