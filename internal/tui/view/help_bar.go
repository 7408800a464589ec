package view

import (
	"strings"

	"github.com/Iron-Ham/taskboard/internal/tui/keymap"
	"github.com/Iron-Ham/taskboard/internal/tui/styles"
)

// RenderHelpBar renders one hint per command bound in mode, using the
// first key bound to it.
func RenderHelpBar(km *keymap.Keymap, mode keymap.Mode) string {
	bindings := km.GetModeBindings(mode)
	if len(bindings) == 0 {
		return ""
	}

	seen := make(map[keymap.Command]bool)
	var parts []string
	for _, b := range bindings {
		if seen[b.Command] {
			continue
		}
		seen[b.Command] = true
		parts = append(parts, styles.HelpKey.Render("["+b.String()+"]")+" "+strings.ToLower(b.Description))
	}
	return styles.HelpBar.Render(strings.Join(parts, "  "))
}

// RenderHelpPanel renders every binding in mode grouped by category.
func RenderHelpPanel(km *keymap.Keymap, mode keymap.Mode) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keys"))
	b.WriteString("\n")
	grouped := km.GetBindingsByCategory(mode)
	for _, cat := range km.GetCategories(mode) {
		b.WriteString(styles.SectionTitle.Render(cat))
		b.WriteString("\n")
		for _, kb := range grouped[cat] {
			b.WriteString("  " + styles.HelpKey.Render(padKey(kb.String())) + " " + kb.Description + "\n")
		}
	}
	return styles.ContentBox.Render(strings.TrimRight(b.String(), "\n"))
}

func padKey(k string) string {
	if len(k) >= 8 {
		return k
	}
	return k + strings.Repeat(" ", 8-len(k))
}
