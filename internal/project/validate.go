package project

import "strings"

// Form field keys reported by validation.
const (
	FieldName      = "name"
	FieldEndDate   = "endDate"
	FieldAssignees = "assignees"
	FieldStatus    = "status"
	FieldPriority  = "priority"
)

// Validation messages.
const (
	MsgNameRequired     = "Project name is required"
	MsgEndBeforeStart   = "End date must be after start date"
	MsgAssigneeRequired = "At least one assignee is required"
	MsgTaskNameRequired = "Task name is required"
	MsgInvalidStatus    = "Unknown status"
	MsgInvalidPriority  = "Unknown priority"
)

// Validate checks a project input and returns field-keyed messages.
// A nil map means the input is acceptable. Status and priority must be set;
// new projects get them from WithDefaults first.
func (in Input) Validate() map[string]string {
	problems := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		problems[FieldName] = MsgNameRequired
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && !in.EndDate.After(in.StartDate) {
		problems[FieldEndDate] = MsgEndBeforeStart
	}
	if len(in.Assignees) == 0 {
		problems[FieldAssignees] = MsgAssigneeRequired
	}
	if !in.Status.IsValid() {
		problems[FieldStatus] = MsgInvalidStatus
	}
	if !in.Priority.IsValid() {
		problems[FieldPriority] = MsgInvalidPriority
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// Validate checks a task input.
func (in TaskInput) Validate() map[string]string {
	problems := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		problems[FieldName] = MsgTaskNameRequired
	}
	if in.Status != "" && !in.Status.IsValid() {
		problems[FieldStatus] = MsgInvalidStatus
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// WithDefaults fills the status and priority a new project starts with.
func (in Input) WithDefaults() Input {
	if in.Status == "" {
		in.Status = StatusPlanned
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	return in
}

// WithDefaults fills the status a new task starts with.
func (in TaskInput) WithDefaults() TaskInput {
	if in.Status == "" {
		in.Status = TaskTodo
	}
	return in
}
