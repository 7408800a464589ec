package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/util"
	"github.com/Iron-Ham/taskboard/internal/views"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate project and task statistics",
	Long: `Display dashboard statistics over all projects.

Shows:
- Total projects, and how many are in progress or completed
- Completed and total tasks
- Overall task completion percentage`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsJSON bool // Output as JSON
)

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

// statsReport is the JSON form of the statistics. TaskCompletion is null
// when there are no tasks.
type statsReport struct {
	views.Stats
	TaskCompletion *float64 `json:"taskCompletion"`
}

func runStats(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.cleanup()

	s := rt.svc.GetStats()
	if statsJSON {
		report := statsReport{Stats: s}
		if s.HasTasks() {
			pct := s.TaskCompletion()
			report.TaskCompletion = &pct
		}
		return printJSON(cmd.OutOrStdout(), report)
	}

	printStatsText(cmd.OutOrStdout(), s)
	return nil
}

func printStatsText(w io.Writer, s views.Stats) {
	fmt.Fprintln(w, "PROJECTS")
	fmt.Fprintln(w, strings.Repeat("─", 30))
	fmt.Fprintf(w, "Total:        %d\n", s.Total)
	fmt.Fprintf(w, "In Progress:  %d\n", s.InProgress)
	fmt.Fprintf(w, "Completed:    %d\n", s.Completed)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TASKS")
	fmt.Fprintln(w, strings.Repeat("─", 30))
	fmt.Fprintf(w, "Done:         %d/%d\n", s.CompletedTasks, s.TotalTasks)
	fmt.Fprintf(w, "Completion:   %s\n", util.FormatPercent(s.TaskCompletion()))
}
