package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g.
// STYLE_ORGANIZER_LOGGING_LEVEL=debug.
const EnvPrefix = "STYLE_ORGANIZER"

// Loader handles configuration loading with Viper.
type Loader struct {
	v          *viper.Viper
	configFile string
	searchDirs []string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// SetSearchDirs replaces the directories searched for config.yaml.
func (l *Loader) SetSearchDirs(dirs ...string) {
	l.searchDirs = dirs
}

// BindFlags lets command line flags override file and env values. Flag
// names use dashes, keys use underscores and dots.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"settings_path":  "settings",
		"logging.level":  "log-level",
		"logging.format": "log-format",
		"logging.file":   "log-file",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load loads configuration with proper precedence:
// defaults < config file < env vars < CLI flags
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	l.setupViper(cfg)

	if err := l.loadConfigFile(); err != nil {
		return nil, err
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.SettingsPath = expandTilde(cfg.SettingsPath)
	cfg.TablePath = expandTilde(cfg.TablePath)
	cfg.Logging.File = expandTilde(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) setupViper(cfg *Config) {
	v := l.v

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	dirs := l.searchDirs
	if dirs == nil {
		dirs = defaultSearchDirs()
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("settings_path", cfg.SettingsPath)
	v.SetDefault("table_path", cfg.TablePath)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)

	v.AutomaticEnv()
}

// loadConfigFile reads the config file. The file is optional unless it was
// set explicitly.
func (l *Loader) loadConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		return nil
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to load config file: %w", err)
	}
	return nil
}

func defaultSearchDirs() []string {
	var dirs []string
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		dirs = append(dirs, filepath.Join(xdgConfig, "style-organizer"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(homeDir, ".config", "style-organizer"))
	}
	return append(dirs, ".")
}

// expandTilde expands ~ to the user's home directory.
func expandTilde(path string) string {
	if path == "" {
		return path
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
