package project

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a project.
type Status string

// Project statuses.
const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

// Statuses lists every project status in display order.
func Statuses() []Status {
	return []Status{StatusPlanned, StatusInProgress, StatusCompleted, StatusOnHold}
}

// IsValid reports whether s is a known project status.
func (s Status) IsValid() bool {
	for _, v := range Statuses() {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus resolves a project status from its label or slug
// ("in-progress", "on_hold"), ignoring case.
func ParseStatus(s string) (Status, error) {
	for _, v := range Statuses() {
		if matchLabel(string(v), s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown project status %q", s)
}

// Priority is the relative importance of a project.
type Priority string

// Project priorities.
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	for _, v := range Priorities() {
		if p == v {
			return true
		}
	}
	return false
}

// ParsePriority resolves a priority from its label, ignoring case.
func ParsePriority(s string) (Priority, error) {
	for _, v := range Priorities() {
		if matchLabel(string(v), s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// TaskStatus is the progress state of a task.
type TaskStatus string

// Task statuses.
const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// TaskStatuses lists every task status in workflow order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskTodo, TaskInProgress, TaskDone}
}

// IsValid reports whether s is a known task status.
func (s TaskStatus) IsValid() bool {
	for _, v := range TaskStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the following status in the workflow, wrapping Done back to Todo.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskTodo:
		return TaskInProgress
	case TaskInProgress:
		return TaskDone
	default:
		return TaskTodo
	}
}

// ParseTaskStatus resolves a task status from its label or slug, ignoring case.
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, v := range TaskStatuses() {
		if matchLabel(string(v), s) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

// matchLabel compares a display label against user input, treating
// spaces, dashes and underscores as equivalent.
func matchLabel(label, input string) bool {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.NewReplacer("-", " ", "_", " ").Replace(s)
	}
	return norm(label) == norm(input)
}
