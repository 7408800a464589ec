package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/util"
	"github.com/Iron-Ham/taskboard/internal/views"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	nameColumn   = 28
	barWidth     = 10
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputWidth is the terminal width when w is a terminal, else a fixed width.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// printProjectTable writes one line per project.
func printProjectTable(w io.Writer, projects []project.Project, width int) {
	name := nameColumn
	if width < defaultWidth {
		name = max(12, nameColumn-(defaultWidth-width))
	}
	fmt.Fprintf(w, "%-4s %s %-12s %-7s %s\n", "ID", util.PadRight("NAME", name), "STATUS", "PRIO", "PROGRESS")
	for _, p := range projects {
		pct := views.Completion(p)
		fmt.Fprintf(w, "%-4d %s %-12s %-7s %s %3d%%\n",
			p.ID,
			util.PadRight(util.TruncateANSI(p.Name, name), name),
			p.Status,
			p.Priority,
			util.ProgressBar(pct, barWidth),
			pct,
		)
	}
}

// printProjectDetail writes the full record of p.
func printProjectDetail(w io.Writer, p project.Project) {
	fmt.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintln(w, strings.Repeat("─", 50))
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
	fmt.Fprintf(w, "Status:    %s\n", p.Status)
	fmt.Fprintf(w, "Priority:  %s\n", p.Priority)
	fmt.Fprintf(w, "Dates:     %s → %s\n", dateOrDash(p.StartDate), dateOrDash(p.EndDate))
	fmt.Fprintf(w, "Progress:  %s %d%% complete (%d/%d)\n",
		util.ProgressBar(p.Completion(), barWidth), p.Completion(), p.DoneCount(), len(p.Tasks))

	team := "No assignees"
	if len(p.Assignees) > 0 {
		team = strings.Join(p.Assignees, ", ")
	}
	fmt.Fprintf(w, "Team:      %s\n", team)
	if p.ProjectManager != "" {
		fmt.Fprintf(w, "Manager:   %s\n", p.ProjectManager)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "TASKS")
	if len(p.Tasks) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, t := range p.Tasks {
		line := fmt.Sprintf("  %-3d [%s] %s", t.ID, t.Status, t.Name)
		if t.AssignedTo != "" {
			line += " @" + t.AssignedTo
		}
		fmt.Fprintln(w, line)
	}

	if len(p.Reminders) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "REMINDERS")
		for _, r := range p.Reminders {
			fmt.Fprintf(w, "  %s  %s\n", r.Date, r.Description)
		}
	}
}

// printReminders writes the upcoming reminders of a partition and a count
// of the past ones.
func printReminders(w io.Writer, part views.ReminderPartition) {
	if len(part.Upcoming) == 0 {
		fmt.Fprintln(w, "No upcoming reminders")
	}
	for _, r := range part.Upcoming {
		tag := ""
		if r.Soon {
			tag = "  (" + r.When() + ")"
		}
		fmt.Fprintf(w, "%s  %s%s\n", r.Date, r.Description, tag)
	}
	if part.PastCount > 0 {
		fmt.Fprintln(w, util.Plural(part.PastCount, "past reminder"))
	}
}

// reportValidation writes the field problems of a validation error to w
// and returns err unchanged.
func reportValidation(w io.Writer, err error) error {
	fields := errors.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(w, "  %s: %s\n", name, fields[name])
	}
	return err
}

func dateOrDash(d project.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}
