package view

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/taskboard/internal/tui/styles"
	"github.com/Iron-Ham/taskboard/internal/util"
	"github.com/Iron-Ham/taskboard/internal/views"
	"github.com/charmbracelet/lipgloss"
)

// StatCard is one labelled figure in the statistics row.
type StatCard struct {
	Label  string
	Value  string
	Detail string
}

// StatCards converts stats into the cards shown above the project list.
func StatCards(s views.Stats) []StatCard {
	return []StatCard{
		{Label: "Total Projects", Value: strconv.Itoa(s.Total)},
		{Label: "In Progress", Value: strconv.Itoa(s.InProgress)},
		{Label: "Completed", Value: strconv.Itoa(s.Completed)},
		{
			Label:  "Tasks Done",
			Value:  fmt.Sprintf("%d/%d", s.CompletedTasks, s.TotalTasks),
			Detail: util.FormatPercent(s.TaskCompletion()) + " complete",
		},
	}
}

// RenderStats lays the cards out in a row, wrapping to a column when width
// is too narrow for all of them.
func RenderStats(s views.Stats, width int) string {
	cards := StatCards(s)
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := styles.StatValue.Render(c.Value) + "\n" + styles.StatLabel.Render(c.Label)
		if c.Detail != "" {
			body += "\n" + styles.Muted.Render(c.Detail)
		}
		rendered = append(rendered, styles.StatCard.Render(body))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 && lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return row
}
