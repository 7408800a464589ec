package cmd

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify taskboard configuration",
	Long: `View or modify taskboard configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  taskboard config set dashboard.reminder_window_days 14
  taskboard config set tui.theme monochrome
  taskboard config set logging.enabled true

Valid keys:
  dashboard.reminder_window_days - Days ahead a reminder is flagged as soon (0-365)
  dashboard.seed_file            - YAML dataset loaded instead of the sample data
  dashboard.default_status       - Initial status filter ("all" or a status)
  dashboard.default_priority     - Initial priority filter ("all" or a priority)
  tui.theme                      - Color theme: default, monochrome
  tui.confirm_delete             - Ask before deleting a project (true/false)
  logging.enabled                - Write a debug log file (true/false)
  logging.level                  - Minimum log level: debug, info, warn, error
  logging.dir                    - Directory holding taskboard.log
  logging.max_size_mb            - Rotate the log at this size
  logging.max_backups            - Rotated files to keep
  logging.max_age_days           - Days to keep rotated files
  logging.compress               - Gzip rotated files (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/taskboard/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// configKeys maps every settable key to its value type.
var configKeys = map[string]string{
	"dashboard.reminder_window_days": "int",
	"dashboard.seed_file":            "string",
	"dashboard.default_status":       "string",
	"dashboard.default_priority":     "string",
	"tui.theme":                      "string",
	"tui.confirm_delete":             "bool",
	"logging.enabled":                "bool",
	"logging.level":                  "string",
	"logging.dir":                    "string",
	"logging.max_size_mb":            "int",
	"logging.max_backups":            "int",
	"logging.max_age_days":           "int",
	"logging.compress":               "bool",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "Configuration is invalid, showing defaults:\n%v\n\n", err)
		cfg = config.Default()
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "Config file: (none - using defaults)")
	}
	fmt.Fprintln(out)

	seedFile := cfg.Dashboard.SeedFile
	if seedFile == "" {
		seedFile = "(built-in sample)"
	}
	fmt.Fprintln(out, "dashboard:")
	fmt.Fprintf(out, "  reminder_window_days: %d\n", cfg.Dashboard.ReminderWindowDays)
	fmt.Fprintf(out, "  seed_file: %s\n", seedFile)
	fmt.Fprintf(out, "  default_status: %s\n", cfg.Dashboard.DefaultStatus)
	fmt.Fprintf(out, "  default_priority: %s\n", cfg.Dashboard.DefaultPriority)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  confirm_delete: %v\n", cfg.TUI.ConfirmDelete)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.LogDir())
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  max_age_days: %d\n", cfg.Logging.MaxAgeDays)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	value := args[1]

	keyType, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'taskboard config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue any
	switch keyType {
	case "string":
		typedValue = value
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = b
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typedValue = intVal
	}

	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'taskboard config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize taskboard.")

	return nil
}

func defaultConfigContent() string {
	d := config.Default()
	return fmt.Sprintf(`# Taskboard Configuration

dashboard:
  # Days ahead a reminder is flagged as soon (0-365)
  reminder_window_days: %d
  # YAML dataset to load instead of the built-in sample projects
  seed_file: %q
  # Initial filters: "all" or a status (planned, in progress, completed, on hold)
  default_status: %s
  # and "all" or a priority (high, medium, low)
  default_priority: %s

# TUI (terminal user interface) settings
tui:
  # Color theme: %s
  theme: %s
  # Ask for confirmation before deleting a project
  confirm_delete: %v

# Debug logging
logging:
  enabled: %v
  # Minimum level: %s
  level: %s
  # Directory holding taskboard.log (empty = <config dir>/logs)
  dir: %q
  # Rotation
  max_size_mb: %d
  max_backups: %d
  max_age_days: %d
  compress: %v
`,
		d.Dashboard.ReminderWindowDays,
		d.Dashboard.SeedFile,
		d.Dashboard.DefaultStatus,
		d.Dashboard.DefaultPriority,
		strings.Join(config.ValidThemes(), ", "),
		d.TUI.Theme,
		d.TUI.ConfirmDelete,
		d.Logging.Enabled,
		strings.Join(config.ValidLogLevels(), ", "),
		d.Logging.Level,
		d.Logging.Dir,
		d.Logging.MaxSizeMB,
		d.Logging.MaxBackups,
		d.Logging.MaxAgeDays,
		d.Logging.Compress,
	)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintln(out, "  2. ./config.yaml (current directory)")

	keys := slices.Sorted(maps.Keys(configKeys))
	example := "TASKBOARD_" + strings.ToUpper(strings.ReplaceAll(keys[0], ".", "_"))
	fmt.Fprintf(out, "\nEnvironment variables: TASKBOARD_* (e.g., %s)\n", example)

	return nil
}
