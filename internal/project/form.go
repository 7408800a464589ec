package project

import (
	"slices"
	"strings"
	"time"
)

// Form is an editable draft of a project. Reminders are added and removed
// here before the draft is saved; committed reminders are never edited.
type Form struct {
	id    int
	input Input
	now   func() time.Time
}

// NewForm returns an empty draft with the default status and priority.
func NewForm() *Form {
	return &Form{input: Input{}.WithDefaults(), now: time.Now}
}

// EditForm returns a draft pre-filled from an existing project.
func EditForm(p Project) *Form {
	return &Form{id: p.ID, input: p.Input(), now: time.Now}
}

// SetClock overrides the clock used to stamp reminder ids.
func (f *Form) SetClock(now func() time.Time) {
	f.now = now
}

// ID returns the id of the project being edited, or 0 for a new project.
func (f *Form) ID() int { return f.id }

// IsEdit reports whether the form edits an existing project.
func (f *Form) IsEdit() bool { return f.id != 0 }

// Input returns a copy of the current draft fields.
func (f *Form) Input() Input {
	in := f.input
	in.Assignees = slices.Clone(in.Assignees)
	in.Tasks = slices.Clone(in.Tasks)
	in.Reminders = slices.Clone(in.Reminders)
	return in
}

// SetName sets the project name.
func (f *Form) SetName(name string) { f.input.Name = name }

// SetDescription sets the project description.
func (f *Form) SetDescription(desc string) { f.input.Description = desc }

// SetDates sets the start and end dates.
func (f *Form) SetDates(start, end Date) {
	f.input.StartDate = start
	f.input.EndDate = end
}

// SetStatus sets the project status.
func (f *Form) SetStatus(s Status) { f.input.Status = s }

// SetPriority sets the project priority.
func (f *Form) SetPriority(p Priority) { f.input.Priority = p }

// SetProjectManager sets the project manager. An empty name clears it.
func (f *Form) SetProjectManager(name string) { f.input.ProjectManager = name }

// ToggleAssignee adds name to the assignees or removes it if present.
// Removing the current project manager also clears the manager.
func (f *Form) ToggleAssignee(name string) {
	if i := slices.Index(f.input.Assignees, name); i >= 0 {
		f.input.Assignees = slices.Delete(f.input.Assignees, i, i+1)
		if f.input.ProjectManager == name {
			f.input.ProjectManager = ""
		}
		return
	}
	f.input.Assignees = append(f.input.Assignees, name)
}

// AddReminder appends a reminder and returns it. Both a date and a
// non-blank description are required; ok is false otherwise.
func (f *Form) AddReminder(date Date, description string) (Reminder, bool) {
	if date.IsZero() || strings.TrimSpace(description) == "" {
		return Reminder{}, false
	}
	id := f.now().UnixMilli()
	for slices.ContainsFunc(f.input.Reminders, func(r Reminder) bool { return r.ID == id }) {
		id++
	}
	r := Reminder{ID: id, Date: date, Description: description}
	f.input.Reminders = append(f.input.Reminders, r)
	return r, true
}

// RemoveReminder drops the reminder with the given id. It reports whether
// a reminder was removed.
func (f *Form) RemoveReminder(id int64) bool {
	i := slices.IndexFunc(f.input.Reminders, func(r Reminder) bool { return r.ID == id })
	if i < 0 {
		return false
	}
	f.input.Reminders = slices.Delete(f.input.Reminders, i, i+1)
	return true
}

// Validate checks the draft.
func (f *Form) Validate() map[string]string {
	return f.input.Validate()
}

// Apply returns base updated with the draft's editable fields. Tasks and
// the id of base are preserved.
func (f *Form) Apply(base Project) Project {
	in := f.Input()
	out := base.Clone()
	out.Name = in.Name
	out.Description = in.Description
	out.StartDate = in.StartDate
	out.EndDate = in.EndDate
	out.Status = in.Status
	out.Priority = in.Priority
	out.Assignees = in.Assignees
	out.ProjectManager = in.ProjectManager
	out.Reminders = in.Reminders
	return out
}
