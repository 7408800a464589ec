package styles

import (
	"testing"

	"github.com/Iron-Ham/taskboard/internal/project"
)

func TestStatusColor(t *testing.T) {
	t.Cleanup(func() { Apply(ThemeDefault) })
	Apply(ThemeDefault)

	tests := []struct {
		status   project.Status
		expected string
	}{
		{project.StatusPlanned, "#60A5FA"},
		{project.StatusInProgress, "#F59E0B"},
		{project.StatusCompleted, "#10B981"},
		{project.StatusOnHold, "#9CA3AF"},
		{project.Status("Archived"), "#9CA3AF"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := StatusColor(tt.status)
			if string(got) != tt.expected {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestPriorityColor(t *testing.T) {
	t.Cleanup(func() { Apply(ThemeDefault) })
	Apply(ThemeDefault)

	tests := []struct {
		priority project.Priority
		expected string
	}{
		{project.PriorityHigh, "#F87171"},
		{project.PriorityMedium, "#F59E0B"},
		{project.PriorityLow, "#10B981"},
		{project.Priority("Urgent"), "#9CA3AF"},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			got := PriorityColor(tt.priority)
			if string(got) != tt.expected {
				t.Errorf("PriorityColor(%q) = %q, want %q", tt.priority, got, tt.expected)
			}
		})
	}
}

func TestTaskStatusIcon(t *testing.T) {
	tests := []struct {
		status   project.TaskStatus
		expected string
	}{
		{project.TaskTodo, "○"},
		{project.TaskInProgress, "●"},
		{project.TaskDone, "✓"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := TaskStatusIcon(tt.status); got != tt.expected {
				t.Errorf("TaskStatusIcon(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(ThemeDefault) })

	if !Apply(ThemeMonochrome) {
		t.Fatal("Apply(monochrome) = false, want true")
	}
	if Current() != ThemeMonochrome {
		t.Errorf("Current() = %q, want %q", Current(), ThemeMonochrome)
	}
	if string(PrimaryColor) != "#FFFFFF" {
		t.Errorf("PrimaryColor = %q, want #FFFFFF", PrimaryColor)
	}

	if Apply("neon") {
		t.Error("Apply(neon) = true, want false")
	}
	if Current() != ThemeDefault {
		t.Errorf("Current() after unknown theme = %q, want %q", Current(), ThemeDefault)
	}
	if string(PrimaryColor) != "#A78BFA" {
		t.Errorf("PrimaryColor = %q, want #A78BFA", PrimaryColor)
	}
}

func TestThemes(t *testing.T) {
	themes := Themes()
	if len(themes) != 2 {
		t.Fatalf("Themes() returned %d themes, want 2", len(themes))
	}
	for _, name := range themes {
		if !Apply(name) {
			t.Errorf("Apply(%q) = false for a listed theme", name)
		}
	}
	Apply(ThemeDefault)
}
