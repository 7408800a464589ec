package views

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/project"
)

// All matches every status or priority.
const All = "all"

// Filter selects projects by free-text search, status and priority.
// Empty or "all" criteria match everything.
type Filter struct {
	Search   string `json:"search,omitempty"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// NewFilter returns a filter that matches every project.
func NewFilter() Filter {
	return Filter{Status: All, Priority: All}
}

// ParseFilter builds a filter from user-typed criteria. Status and
// priority accept any spelling ParseStatus and ParsePriority accept and are
// stored in canonical form.
func ParseFilter(search, status, priority string) (Filter, error) {
	f := Filter{Search: search, Status: All, Priority: All}
	problems := make(map[string]string)
	if !isAll(status) {
		s, err := project.ParseStatus(status)
		if err != nil {
			problems[project.FieldStatus] = project.MsgInvalidStatus
		}
		f.Status = string(s)
	}
	if !isAll(priority) {
		p, err := project.ParsePriority(priority)
		if err != nil {
			problems[project.FieldPriority] = project.MsgInvalidPriority
		}
		f.Priority = string(p)
	}
	if len(problems) > 0 {
		return Filter{}, errors.NewValidationError("filter is invalid").WithFields(problems)
	}
	return f, nil
}

// Active reports whether any criterion narrows the result. The list view
// uses it to choose between "no projects yet" and "no matches" hints.
func (f Filter) Active() bool {
	return f.Search != "" || !isAll(f.Status) || !isAll(f.Priority)
}

// Matches reports whether p satisfies every criterion.
func (f Filter) Matches(p project.Project) bool {
	if !isAll(f.Status) && string(p.Status) != f.Status {
		return false
	}
	if !isAll(f.Priority) && string(p.Priority) != f.Priority {
		return false
	}
	if f.Search == "" {
		return true
	}
	fold := cases.Fold()
	term := fold.String(f.Search)
	return strings.Contains(fold.String(p.Name), term) ||
		strings.Contains(fold.String(p.Description), term)
}

// Apply returns the projects that match f, preserving their order.
func (f Filter) Apply(projects []project.Project) []project.Project {
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that Status and Priority name known values.
func (f Filter) Validate() map[string]string {
	problems := make(map[string]string)
	if !isAll(f.Status) && !project.Status(f.Status).IsValid() {
		problems[project.FieldStatus] = project.MsgInvalidStatus
	}
	if !isAll(f.Priority) && !project.Priority(f.Priority).IsValid() {
		problems[project.FieldPriority] = project.MsgInvalidPriority
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// NextStatus cycles the status criterion through all, then each status.
func (f Filter) NextStatus() Filter {
	opts := []string{All}
	for _, s := range project.Statuses() {
		opts = append(opts, string(s))
	}
	f.Status = cycle(opts, f.Status)
	return f
}

// NextPriority cycles the priority criterion through all, then each priority.
func (f Filter) NextPriority() Filter {
	opts := []string{All}
	for _, p := range project.Priorities() {
		opts = append(opts, string(p))
	}
	f.Priority = cycle(opts, f.Priority)
	return f
}

func cycle(opts []string, current string) string {
	if isAll(current) {
		current = All
	}
	for i, o := range opts {
		if o == current {
			return opts[(i+1)%len(opts)]
		}
	}
	return All
}

func isAll(s string) bool {
	return s == "" || strings.EqualFold(s, All)
}
