package view

import (
	"strings"

	"github.com/Iron-Ham/taskboard/internal/tui/styles"
	"github.com/Iron-Ham/taskboard/internal/util"
)

// FormState holds what the project form needs to render.
type FormState struct {
	Title string
	Rows  []FormRow
	Focus int
	Width int
}

// FormRow is one labelled field. Rows with Items render as a row of
// choices; others render Value, which is usually a text input's view.
type FormRow struct {
	Label string
	Value string
	Items []FormItem
	Empty string
}

// FormItem is one choice in a row.
type FormItem struct {
	Text     string
	Selected bool
	Cursor   bool
}

const formLabelWidth = 14

// RenderForm renders the create/edit project form.
func RenderForm(state FormState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(state.Title))
	b.WriteString("\n")
	for i, row := range state.Rows {
		focused := i == state.Focus
		label := util.PadRight(row.Label, formLabelWidth)
		if focused {
			b.WriteString(styles.Primary.Render("> " + label))
		} else {
			b.WriteString(styles.Muted.Render("  " + label))
		}
		b.WriteString(renderFormValue(row, focused, max(width-formLabelWidth-4, 20)))
		b.WriteString("\n")
	}
	return styles.ContentBox.Render(strings.TrimRight(b.String(), "\n"))
}

func renderFormValue(row FormRow, focused bool, width int) string {
	if row.Items == nil {
		return row.Value
	}
	if len(row.Items) == 0 {
		return styles.Muted.Render(row.Empty)
	}
	parts := make([]string, 0, len(row.Items))
	for _, it := range row.Items {
		text := it.Text
		if it.Selected {
			text = styles.Primary.Render(text)
		}
		if focused && it.Cursor {
			text = styles.HelpKey.Render("[") + text + styles.HelpKey.Render("]")
		} else {
			text = " " + text + " "
		}
		parts = append(parts, text)
	}
	return util.TruncateANSI(strings.Join(parts, " "), width)
}
