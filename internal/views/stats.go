// Package views computes read-only projections of a project snapshot:
// aggregate statistics, filtered lists and reminder partitions. Every
// function is pure and never modifies its input.
package views

import (
	"math"

	"github.com/Iron-Ham/taskboard/internal/project"
)

// Stats aggregates counts over a set of projects.
type Stats struct {
	Total          int `json:"total"`
	InProgress     int `json:"inProgress"`
	Completed      int `json:"completed"`
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
}

// ComputeStats counts projects by status and tasks across all projects.
func ComputeStats(projects []project.Project) Stats {
	var s Stats
	s.Total = len(projects)
	for _, p := range projects {
		switch p.Status {
		case project.StatusInProgress:
			s.InProgress++
		case project.StatusCompleted:
			s.Completed++
		}
		s.TotalTasks += len(p.Tasks)
		s.CompletedTasks += p.DoneCount()
	}
	return s
}

// TaskCompletion returns round(100 * CompletedTasks / TotalTasks). It is
// NaN when there are no tasks; use HasTasks before displaying it.
func (s Stats) TaskCompletion() float64 {
	if s.TotalTasks == 0 {
		return math.NaN()
	}
	return math.Round(100 * float64(s.CompletedTasks) / float64(s.TotalTasks))
}

// HasTasks reports whether any project has tasks.
func (s Stats) HasTasks() bool {
	return s.TotalTasks > 0
}

// Completion returns the rounded percentage of Done tasks in p.
func Completion(p project.Project) int {
	return p.Completion()
}
