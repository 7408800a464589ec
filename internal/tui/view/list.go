package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/tui/styles"
	"github.com/Iron-Ham/taskboard/internal/util"
	"github.com/Iron-Ham/taskboard/internal/views"
)

// Empty-state hints for the project list.
const (
	HintNoProjects = "No projects yet"
	HintNoMatches  = "No projects match the current filters"
)

// ListState holds what the list screen needs to render.
type ListState struct {
	Projects []project.Project
	Cursor   int
	Filter   views.Filter

	// SearchView is the rendered search input. It is shown instead of the
	// plain search term while Searching is set.
	Searching  bool
	SearchView string

	Width  int
	Height int
}

// RenderFilterBar renders the search box and the status/priority filters.
func RenderFilterBar(state ListState) string {
	search := state.Filter.Search
	if state.Searching {
		search = state.SearchView
	} else if search == "" {
		search = styles.Muted.Render("press / to search")
	}

	bar := styles.SearchPrompt.Render("/ ") + search
	filters := styles.FilterLabel.Render("status: ") + styles.FilterValue.Render(labelOrAll(state.Filter.Status)) +
		"  " + styles.FilterLabel.Render("priority: ") + styles.FilterValue.Render(labelOrAll(state.Filter.Priority))

	return bar + "    " + filters
}

// RenderList renders the filtered projects, one line each, or the
// empty-state hint when there are none.
func RenderList(state ListState) string {
	if len(state.Projects) == 0 {
		hint := HintNoProjects
		if state.Filter.Active() {
			hint = HintNoMatches + " (esc clears)"
		}
		return styles.Subtitle.Render(hint)
	}

	width := state.Width
	if width <= 0 {
		width = 80
	}
	nameWidth := max(width-48, 16)

	start, end := visibleRange(len(state.Projects), state.Cursor, state.Height)
	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		lines = append(lines, renderListRow(state.Projects[i], i == state.Cursor, nameWidth))
	}
	if end-start < len(state.Projects) {
		lines = append(lines, styles.Muted.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(state.Projects))))
	}
	return strings.Join(lines, "\n")
}

func renderListRow(p project.Project, focused bool, nameWidth int) string {
	completion := p.Completion()
	bar := styles.ProgressFill.Render(util.ProgressBar(completion, 10))
	row := util.PadRight(p.Name, nameWidth) + " " +
		util.PadRight(styles.StatusBadge(p.Status), 13) + " " +
		util.PadRight(styles.PriorityBadge(p.Priority), 8) + " " +
		bar + fmt.Sprintf(" %3d%%", completion)

	if focused {
		return styles.ListItemFocus.Render("> " + row)
	}
	return styles.ListItem.Render("  " + row)
}

// visibleRange returns the half-open window of rows to draw so the cursor
// stays on screen. A height of zero or less shows every row.
func visibleRange(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := max(cursor-height/2, 0)
	end := start + height
	if end > n {
		end = n
		start = n - height
	}
	return start, end
}

func labelOrAll(s string) string {
	if s == "" {
		return views.All
	}
	return s
}
