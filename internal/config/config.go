package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvThemeFile = "KANBAN_THEME_FILE"
	EnvFixture   = "KANBAN_FIXTURE"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	Board       BoardConfig `yaml:"board"`
	Log         LogConfig   `yaml:"log"`
}

// BoardConfig selects the board the app starts with
type BoardConfig struct {
	// DoneColumn is the title of the column completed tasks move to
	DoneColumn string `yaml:"done_column"`
	// Fixture is a YAML board file; empty means the built-in board
	Fixture string `yaml:"fixture"`
}

// LogConfig controls the log file
type LogConfig struct {
	// Path of the log file; empty means ~/.kanban/logs/kanban.log
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// SlogLevel converts the configured level name, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns a config with every value set to its default
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from KANBAN_THEME_FILE environment variable
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

// loadEnv applies overrides from environment variables
func loadEnv(config *Config) {
	loadThemeFile(config)
	if fixture := os.Getenv(EnvFixture); fixture != "" {
		config.Board.Fixture = fixture
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(readErr):
			// No file, defaults only
		case readErr != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, readErr)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		}
	}

	loadEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

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
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Board.DoneColumn == "" {
		c.Board.DoneColumn = models.DefaultDoneColumnTitle
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
