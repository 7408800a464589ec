package cmd

import (
	"strings"

	"github.com/Iron-Ham/taskboard/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Project and task tracking dashboard",
	Long: `Taskboard tracks projects, their tasks and reminders, and shows
aggregate progress in an interactive terminal dashboard.

Projects are loaded from a seed dataset at start-up and kept in memory
for the life of the process. Read commands print the dataset; mutating
commands print the state that results from applying the change.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/taskboard/config.yaml)")
	rootCmd.PersistentFlags().String("seed", "", "seed dataset file (default is the built-in sample)")
	bindFlags()
}

// bindFlags connects the global flags to their viper keys.
func bindFlags() {
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("dashboard.seed_file", rootCmd.PersistentFlags().Lookup("seed"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKBOARD")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TASKBOARD_DASHBOARD_REMINDER_WINDOW_DAYS for dashboard.reminder_window_days
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
