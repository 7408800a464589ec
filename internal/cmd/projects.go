package cmd

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/taskboard/internal/views"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long: `List projects matching the search text and the status and priority
filters. Without flags the filters configured under dashboard.default_status
and dashboard.default_priority apply.

Examples:
  taskboard list
  taskboard list --status "in progress"
  taskboard list --search web --priority high --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show a project with its tasks and reminders",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var remindersCmd = &cobra.Command{
	Use:   "reminders <project-id>",
	Short: "Show the upcoming reminders of a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runReminders,
}

var (
	listSearch   string
	listStatus   string
	listPriority string
	listJSON     bool
	showJSON     bool
	remindJSON   bool
	remindWindow int
)

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive text to match in names and descriptions")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Status filter (all, planned, in progress, completed, on hold)")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "Priority filter (all, high, medium, low)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output projects as JSON")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the project as JSON")

	remindersCmd.Flags().BoolVar(&remindJSON, "json", false, "Output reminders as JSON")
	remindersCmd.Flags().IntVar(&remindWindow, "window", 0, "Days ahead a reminder counts as soon (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(remindersCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	def := rt.defaultFilter()
	status, priority := def.Status, def.Priority
	if cmd.Flags().Changed("status") {
		status = listStatus
	}
	if cmd.Flags().Changed("priority") {
		priority = listPriority
	}
	filter, err := views.ParseFilter(listSearch, status, priority)
	if err != nil {
		return reportValidation(cmd.ErrOrStderr(), err)
	}

	projects := rt.svc.ListProjects(filter)
	out := cmd.OutOrStdout()
	if listJSON {
		return printJSON(out, projects)
	}

	if len(projects) == 0 {
		if filter.Active() {
			fmt.Fprintln(out, "No projects match the current filters")
		} else {
			fmt.Fprintln(out, "No projects yet")
		}
		return nil
	}
	printProjectTable(out, projects, outputWidth(out))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID("project", args[0])
	if err != nil {
		return err
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	p, err := rt.svc.GetProject(id)
	if err != nil {
		return err
	}

	if showJSON {
		return printJSON(cmd.OutOrStdout(), p)
	}
	printProjectDetail(cmd.OutOrStdout(), p)
	return nil
}

func runReminders(cmd *cobra.Command, args []string) error {
	id, err := parseID("project", args[0])
	if err != nil {
		return err
	}

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	if cmd.Flags().Changed("window") {
		if remindWindow < 0 {
			return fmt.Errorf("invalid value for --window: must be non-negative")
		}
		rt.svc.SetReminderWindow(remindWindow)
	}

	part, err := rt.svc.Reminders(id)
	if err != nil {
		return err
	}

	if remindJSON {
		return printJSON(cmd.OutOrStdout(), part)
	}
	printReminders(cmd.OutOrStdout(), part)
	return nil
}

// parseID parses a positive numeric id argument.
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q: expected a positive number", kind, arg)
	}
	return id, nil
}
