package util

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateANSI(t *testing.T) {
	redStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	tests := []struct {
		name     string
		input    string
		maxWidth int
		check    func(t *testing.T, result string)
	}{
		{
			name:     "short plain string unchanged",
			input:    "hello",
			maxWidth: 10,
			check: func(t *testing.T, result string) {
				if result != "hello" {
					t.Errorf("expected 'hello', got %q", result)
				}
			},
		},
		{
			name:     "plain string truncated",
			input:    "hello world",
			maxWidth: 8,
			check: func(t *testing.T, result string) {
				if result != "hello..." {
					t.Errorf("expected 'hello...', got %q", result)
				}
			},
		},
		{
			name:     "very small maxWidth returns ellipsis",
			input:    "hello",
			maxWidth: 3,
			check: func(t *testing.T, result string) {
				if result != "..." {
					t.Errorf("expected '...', got %q", result)
				}
			},
		},
		{
			name:     "styled string truncated by visible width",
			input:    redStyle.Render("Mobile App Development"),
			maxWidth: 10,
			check: func(t *testing.T, result string) {
				if w := lipgloss.Width(result); w > 10 {
					t.Errorf("result width %d exceeds maxWidth 10", w)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, TruncateANSI(tt.input, tt.maxWidth))
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abcdefgh", 6, "abc..."},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := PadRight(tt.input, tt.width); got != tt.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent int
		width   int
		want    string
	}{
		{0, 4, "░░░░"},
		{25, 4, "█░░░"},
		{100, 4, "████"},
		{150, 2, "██"},
		{-10, 2, "░░"},
		{50, 0, ""},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.percent, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d) = %q, want %q", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(45); got != "45%" {
		t.Errorf("FormatPercent(45) = %q", got)
	}
	if got := FormatPercent(math.NaN()); got != "n/a" {
		t.Errorf("FormatPercent(NaN) = %q", got)
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "task"); got != "1 task" {
		t.Errorf("Plural(1) = %q", got)
	}
	if got := Plural(0, "reminder"); got != "0 reminders" {
		t.Errorf("Plural(0) = %q", got)
	}
}
