// Package config loads application configuration for the style organizer.
package config

import (
	"fmt"

	"github.com/dylanshade/style-organizer/internal/logging"
	"github.com/dylanshade/style-organizer/internal/storage"
)

// Config is the application configuration. User preferences (display mode,
// font size) live in the separate settings file at SettingsPath.
type Config struct {
	// SettingsPath is the preferences file.
	SettingsPath string `mapstructure:"settings_path"`

	// TablePath is a style table to open on startup.
	TablePath string `mapstructure:"table_path"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig configures the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		SettingsPath: storage.DefaultSettingsPath,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.SettingsPath == "" {
		return fmt.Errorf("settings_path must not be empty")
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}
