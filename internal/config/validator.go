package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/project"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "dashboard.reminder_window_days")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the built-in TUI theme names
func ValidThemes() []string {
	return []string{"default", "monochrome"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateDashboard()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateDashboard() []ValidationError {
	var errors []ValidationError

	const maxReminderWindow = 365
	if c.Dashboard.ReminderWindowDays < 0 || c.Dashboard.ReminderWindowDays > maxReminderWindow {
		errors = append(errors, ValidationError{
			Field:   "dashboard.reminder_window_days",
			Value:   c.Dashboard.ReminderWindowDays,
			Message: fmt.Sprintf("must be between 0 and %d", maxReminderWindow),
		})
	}

	if s := c.Dashboard.DefaultStatus; s != "" && s != "all" {
		if _, err := project.ParseStatus(s); err != nil {
			errors = append(errors, ValidationError{
				Field:   "dashboard.default_status",
				Value:   s,
				Message: "must be \"all\" or a project status",
			})
		}
	}

	if p := c.Dashboard.DefaultPriority; p != "" && p != "all" {
		if _, err := project.ParsePriority(p); err != nil {
			errors = append(errors, ValidationError{
				Field:   "dashboard.default_priority",
				Value:   p,
				Message: "must be \"all\" or a priority",
			})
		}
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxAgeDays < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_age_days",
			Value:   c.Logging.MaxAgeDays,
			Message: "must be non-negative",
		})
	}

	return errors
}
