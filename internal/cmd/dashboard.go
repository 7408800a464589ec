package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/taskboard/internal/config"
	"github.com/Iron-Ham/taskboard/internal/tui"
	"github.com/Iron-Ham/taskboard/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open the interactive terminal dashboard.

The list view shows aggregate statistics and the filtered project list.
Press enter on a project to see its tasks, reminders and team, n to create
a project and e in the details view to edit one. Press ? for all key
bindings.

Changes to the config file are applied while the dashboard is open: the
reminder window, the theme and delete confirmation take effect at once.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return fmt.Errorf("the dashboard needs an interactive terminal; use 'taskboard list' instead")
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	if !styles.Apply(rt.cfg.TUI.Theme) {
		rt.logger.Warn("unknown theme, using default", "theme", rt.cfg.TUI.Theme)
	}

	log := rt.logger.WithComponent("cli")
	app := tui.New(rt.svc, tui.Options{
		Filter:        rt.defaultFilter(),
		ConfirmDelete: rt.cfg.TUI.ConfirmDelete,
		Roster:        rt.roster,
		Logger:        rt.logger,
	})

	if viper.ConfigFileUsed() != "" {
		config.Watch(func(cfg *config.Config, err error) {
			if err != nil {
				log.Warn("config reload rejected", "error", err)
				app.ReportError(fmt.Errorf("config not reloaded: %w", err))
				return
			}
			log.Info("config reloaded", "file", viper.ConfigFileUsed())
			app.Reload(cfg.Dashboard.ReminderWindowDays, cfg.TUI.Theme, cfg.TUI.ConfirmDelete)
		})
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		log.Debug("starting dashboard", "width", width, "height", height)
	}

	return app.Run()
}
