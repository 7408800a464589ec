package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dashboard.ReminderWindowDays != 7 {
		t.Errorf("Dashboard.ReminderWindowDays = %d, want 7", cfg.Dashboard.ReminderWindowDays)
	}
	if cfg.Dashboard.DefaultStatus != "all" || cfg.Dashboard.DefaultPriority != "all" {
		t.Errorf("default filters = %q/%q, want all/all", cfg.Dashboard.DefaultStatus, cfg.Dashboard.DefaultPriority)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if !cfg.TUI.ConfirmDelete {
		t.Error("TUI.ConfirmDelete should be true by default")
	}
	if cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be false by default")
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default().Validate() = %v, want none", errs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"negative window", func(c *Config) { c.Dashboard.ReminderWindowDays = -1 }, "dashboard.reminder_window_days"},
		{"huge window", func(c *Config) { c.Dashboard.ReminderWindowDays = 400 }, "dashboard.reminder_window_days"},
		{"bad status", func(c *Config) { c.Dashboard.DefaultStatus = "archived" }, "dashboard.default_status"},
		{"bad priority", func(c *Config) { c.Dashboard.DefaultPriority = "urgent" }, "dashboard.default_priority"},
		{"bad theme", func(c *Config) { c.TUI.Theme = "neon" }, "tui.theme"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"zero size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"huge size", func(c *Config) { c.Logging.MaxSizeMB = 5000 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
		{"negative age", func(c *Config) { c.Logging.MaxAgeDays = -2 }, "logging.max_age_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() = %v, want exactly one error", errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestValidate_AcceptsStatusSlugs(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.DefaultStatus = "in-progress"
	cfg.Dashboard.DefaultPriority = "High"
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want none", errs)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	one := ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}
	if got := one.Error(); got != "a: bad (got: 1)" {
		t.Errorf("Error() = %q", got)
	}

	two := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: "x", Message: "worse"},
	}
	got := two.Error()
	if !strings.HasPrefix(got, "2 validation errors:") || !strings.Contains(got, "2. b: worse (got: x)") {
		t.Errorf("Error() = %q", got)
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should have empty message")
	}
}

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "dashboard:\n  reminder_window_days: 14\n  default_status: Planned\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dashboard.ReminderWindowDays != 14 {
		t.Errorf("ReminderWindowDays = %d, want 14", cfg.Dashboard.ReminderWindowDays)
	}
	if cfg.Dashboard.DefaultStatus != "Planned" {
		t.Errorf("DefaultStatus = %q, want Planned", cfg.Dashboard.DefaultStatus)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Logging.MaxSizeMB = %d, want default 10", cfg.Logging.MaxSizeMB)
	}
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("tui.theme", "neon")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail for an invalid theme")
	}
	if got := Get(); got.TUI.Theme != "default" {
		t.Errorf("Get() should fall back to defaults, got theme %q", got.TUI.Theme)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "taskboard") {
		t.Errorf("ConfigDir() = %q", got)
	}
	if got := ConfigFile(); got != filepath.Join("/tmp/xdg", "taskboard", "config.yaml") {
		t.Errorf("ConfigFile() = %q", got)
	}

	l := LoggingConfig{}
	if got := l.LogDir(); got != filepath.Join("/tmp/xdg", "taskboard", "logs") {
		t.Errorf("LogDir() = %q", got)
	}
	l.Dir = "/var/log/tb"
	if l.LogDir() != "/var/log/tb" {
		t.Errorf("LogDir() = %q, want explicit dir", l.LogDir())
	}
}
