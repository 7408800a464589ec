// Package util provides text helpers shared by the CLI and TUI renderers.
package util

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if truncated.
// ANSI escape codes and wide characters are measured correctly.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to width visual columns, truncating when it
// is wider.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		s = TruncateANSI(s, width)
		w = ansi.StringWidth(s)
	}
	return s + strings.Repeat(" ", max(width-w, 0))
}

// ProgressBar renders percent (0-100) as a bar of width cells.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	percent = min(max(percent, 0), 100)
	filled := int(math.Round(float64(width) * float64(percent) / 100))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// FormatPercent renders a percentage, or "n/a" when it is NaN.
func FormatPercent(p float64) string {
	if math.IsNaN(p) {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", p)
}

// Plural returns "1 task" or "3 tasks".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
