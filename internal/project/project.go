// Package project defines the dashboard's domain model: projects and the
// tasks and reminders they own.
package project

import (
	"math"
	"slices"
)

// Project is a unit of tracked work. Tasks and reminders are owned by value
// and have no identity outside their project.
type Project struct {
	ID             int        `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Description    string     `json:"description" yaml:"description"`
	StartDate      Date       `json:"startDate" yaml:"startDate"`
	EndDate        Date       `json:"endDate" yaml:"endDate"`
	Status         Status     `json:"status" yaml:"status"`
	Priority       Priority   `json:"priority" yaml:"priority"`
	Assignees      []string   `json:"assignees" yaml:"assignees"`
	ProjectManager string     `json:"projectManager,omitempty" yaml:"projectManager,omitempty"`
	Tasks          []Task     `json:"tasks" yaml:"tasks"`
	Reminders      []Reminder `json:"reminders" yaml:"reminders"`
}

// Task is a unit of work inside a project. IDs are unique only within the
// owning project.
type Task struct {
	ID          int        `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	AssignedTo  string     `json:"assignedTo,omitempty" yaml:"assignedTo,omitempty"`
	Status      TaskStatus `json:"status" yaml:"status"`
}

// Reminder is a dated note attached to a project. The ID is the Unix
// millisecond timestamp at which it was added to the edit form.
type Reminder struct {
	ID          int64  `json:"id" yaml:"id"`
	Date        Date   `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// Input carries the user-editable fields of a project. It is used for
// creation, where the store assigns the ID. Tasks are optional and usually
// empty for a new project.
type Input struct {
	Name           string
	Description    string
	StartDate      Date
	EndDate        Date
	Status         Status
	Priority       Priority
	Assignees      []string
	ProjectManager string
	Tasks          []Task
	Reminders      []Reminder
}

// TaskInput carries the fields of a new task.
type TaskInput struct {
	Name        string
	Description string
	AssignedTo  string
	Status      TaskStatus
}

// TaskUpdate is a partial task update. Nil fields are left unchanged.
type TaskUpdate struct {
	Name        *string
	Description *string
	AssignedTo  *string
	Status      *TaskStatus
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	p.Assignees = slices.Clone(p.Assignees)
	p.Tasks = slices.Clone(p.Tasks)
	p.Reminders = slices.Clone(p.Reminders)
	return p
}

// Input returns the editable fields of p.
func (p Project) Input() Input {
	c := p.Clone()
	return Input{
		Name:           c.Name,
		Description:    c.Description,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Status:         c.Status,
		Priority:       c.Priority,
		Assignees:      c.Assignees,
		ProjectManager: c.ProjectManager,
		Reminders:      c.Reminders,
	}
}

// FindTask returns the index of the task with the given id, or -1.
func (p Project) FindTask(id int) int {
	return slices.IndexFunc(p.Tasks, func(t Task) bool { return t.ID == id })
}

// NextTaskID returns one more than the highest task id, or 1 if there are no tasks.
func (p Project) NextTaskID() int {
	next := 1
	for _, t := range p.Tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// DoneCount returns the number of tasks with status Done.
func (p Project) DoneCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Status == TaskDone {
			n++
		}
	}
	return n
}

// Completion returns the rounded percentage of Done tasks, or 0 when the
// project has no tasks.
func (p Project) Completion() int {
	if len(p.Tasks) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.DoneCount()) / float64(len(p.Tasks))))
}

// Apply merges the non-nil fields of u into t.
func (u TaskUpdate) Apply(t Task) Task {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.AssignedTo != nil {
		t.AssignedTo = *u.AssignedTo
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	return t
}

// IsEmpty reports whether the update changes nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.AssignedTo == nil && u.Status == nil
}
