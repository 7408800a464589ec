package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/tui/styles"
	"github.com/Iron-Ham/taskboard/internal/util"
	"github.com/Iron-Ham/taskboard/internal/views"
)

// DetailsState holds what the project details screen needs to render.
type DetailsState struct {
	Project    project.Project
	Reminders  views.ReminderPartition
	TaskCursor int

	// AddingTask shows TaskInputView below the task list.
	AddingTask    bool
	TaskInputView string

	Width int
}

// RenderDetails renders one project: summary, progress, tasks, reminders
// and team.
func RenderDetails(state DetailsState) string {
	p := state.Project
	width := state.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(p.Name))
	b.WriteString("  ")
	b.WriteString(styles.StatusBadge(p.Status))
	b.WriteString(styles.PriorityBadge(p.Priority))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(styles.Subtitle.Render(util.TruncateANSI(p.Description, width)))
		b.WriteString("\n")
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%s → %s", dateOrDash(p.StartDate), dateOrDash(p.EndDate))))
	b.WriteString("\n\n")

	completion := p.Completion()
	barWidth := min(max(width-20, 10), 40)
	b.WriteString(styles.ProgressFill.Render(util.ProgressBar(completion, barWidth)))
	b.WriteString(fmt.Sprintf(" %d%% complete (%d/%d)", completion, p.DoneCount(), len(p.Tasks)))
	b.WriteString("\n")

	b.WriteString(renderTasks(state, width))
	b.WriteString(renderReminders(state.Reminders, width))
	b.WriteString(renderTeam(p))
	return b.String()
}

func renderTasks(state DetailsState, width int) string {
	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render("Tasks"))
	b.WriteString("\n")
	if len(state.Project.Tasks) == 0 {
		b.WriteString(styles.Muted.Render("  No tasks yet"))
		b.WriteString("\n")
	}
	for i, t := range state.Project.Tasks {
		icon := styles.Text.Foreground(styles.TaskStatusColor(t.Status)).Render(styles.TaskStatusIcon(t.Status))
		line := icon + " " + t.Name
		if t.AssignedTo != "" {
			line += styles.Muted.Render(" · " + t.AssignedTo)
		}
		line = util.PadRight(line, max(width-16, 20)) + " " + styles.Text.Foreground(styles.TaskStatusColor(t.Status)).Render(string(t.Status))
		if i == state.TaskCursor && !state.AddingTask {
			b.WriteString(styles.ListItemFocus.Render("> " + line))
		} else {
			b.WriteString(styles.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if state.AddingTask {
		b.WriteString(styles.SearchBar.Render(styles.SearchPrompt.Render("New task: ") + state.TaskInputView))
		b.WriteString("\n")
	}
	return b.String()
}

func renderReminders(r views.ReminderPartition, width int) string {
	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render("Upcoming Reminders"))
	b.WriteString("\n")
	if len(r.Upcoming) == 0 {
		b.WriteString(styles.Muted.Render("  No upcoming reminders"))
		b.WriteString("\n")
	}
	for _, rv := range r.Upcoming {
		line := fmt.Sprintf("  %s  %s", rv.Date, util.TruncateANSI(rv.Description, max(width-24, 10)))
		if rv.Soon {
			line += " " + styles.SoonTag.Render(rv.When())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if r.PastCount > 0 {
		b.WriteString(styles.Muted.Render("  " + util.Plural(r.PastCount, "past reminder")))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTeam(p project.Project) string {
	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render("Team"))
	b.WriteString("\n")
	if p.ProjectManager != "" {
		b.WriteString("  " + styles.Primary.Render("PM ") + p.ProjectManager + "\n")
	}
	if len(p.Assignees) == 0 {
		b.WriteString(styles.Muted.Render("  No assignees"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("  " + strings.Join(p.Assignees, ", ") + "\n")
	return b.String()
}

func dateOrDash(d project.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}
