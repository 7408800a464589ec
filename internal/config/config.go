package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config represents the complete taskboard configuration
type Config struct {
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DashboardConfig controls the project dashboard
type DashboardConfig struct {
	// ReminderWindowDays is how many days ahead a reminder is flagged as soon (default: 7)
	ReminderWindowDays int `mapstructure:"reminder_window_days"`
	// SeedFile is a YAML file of projects to load instead of the built-in sample data
	SeedFile string `mapstructure:"seed_file"`
	// DefaultStatus is the initial status filter ("all" or a project status)
	DefaultStatus string `mapstructure:"default_status"`
	// DefaultPriority is the initial priority filter ("all" or a priority)
	DefaultPriority string `mapstructure:"default_priority"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monochrome"
	Theme string `mapstructure:"theme"`
	// ConfirmDelete asks before deleting a project (default: true)
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns file logging on (default: false, logs are discarded)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`
	// Dir is the directory holding taskboard.log (default: <config dir>/logs)
	Dir string `mapstructure:"dir"`
	// MaxSizeMB rotates the log file once it reaches this size (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// MaxAgeDays prunes rotated files older than this (default: 28, 0 = keep)
	MaxAgeDays int `mapstructure:"max_age_days"`
	// Compress gzips rotated files (default: false)
	Compress bool `mapstructure:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			ReminderWindowDays: 7,
			SeedFile:           "",
			DefaultStatus:      "all",
			DefaultPriority:    "all",
		},
		TUI: TUIConfig{
			Theme:         "default",
			ConfirmDelete: true,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   false,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Dashboard defaults
	viper.SetDefault("dashboard.reminder_window_days", defaults.Dashboard.ReminderWindowDays)
	viper.SetDefault("dashboard.seed_file", defaults.Dashboard.SeedFile)
	viper.SetDefault("dashboard.default_status", defaults.Dashboard.DefaultStatus)
	viper.SetDefault("dashboard.default_priority", defaults.Dashboard.DefaultPriority)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.confirm_delete", defaults.TUI.ConfirmDelete)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when it
// cannot be loaded
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Watch re-reads the config file whenever it changes on disk and passes the
// result to onChange. Invalid edits are reported through err and the
// previous configuration stays in effect.
func Watch(onChange func(cfg *Config, err error)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(Load())
	})
	viper.WatchConfig()
}

// LogDir returns the resolved logging directory
func (c *LoggingConfig) LogDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskboard"
	}
	return filepath.Join(home, ".config", "taskboard")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
