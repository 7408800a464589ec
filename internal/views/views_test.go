package views

import (
	"math"
	"testing"

	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/project"
)

func sample() []project.Project {
	return []project.Project{
		{
			ID: 1, Name: "Website Redesign", Description: "Complete overhaul of company website",
			Status: project.StatusInProgress, Priority: project.PriorityHigh,
			Tasks: []project.Task{
				{ID: 1, Status: project.TaskDone},
				{ID: 2, Status: project.TaskInProgress},
				{ID: 3, Status: project.TaskTodo},
				{ID: 4, Status: project.TaskTodo},
			},
		},
		{
			ID: 2, Name: "Mobile App Development", Description: "Build native mobile application",
			Status: project.StatusInProgress, Priority: project.PriorityMedium,
			Tasks: []project.Task{
				{ID: 1, Status: project.TaskDone},
				{ID: 2, Status: project.TaskInProgress},
				{ID: 3, Status: project.TaskTodo},
			},
		},
		{
			ID: 3, Name: "Marketing Campaign Q1", Description: "Q1 social media strategy",
			Status: project.StatusPlanned, Priority: project.PriorityLow,
			Tasks: []project.Task{{ID: 1, Status: project.TaskTodo}},
		},
		{
			ID: 4, Name: "Database Migration", Description: "Migrate from MySQL to PostgreSQL",
			Status: project.StatusCompleted, Priority: project.PriorityHigh,
			Tasks: []project.Task{
				{ID: 1, Status: project.TaskDone},
				{ID: 2, Status: project.TaskDone},
				{ID: 3, Status: project.TaskDone},
			},
		},
	}
}

func ids(projects []project.Project) []int {
	out := make([]int, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(sample())
	want := Stats{Total: 4, InProgress: 2, Completed: 1, TotalTasks: 11, CompletedTasks: 5}
	if s != want {
		t.Errorf("ComputeStats() = %+v, want %+v", s, want)
	}
	if got := s.TaskCompletion(); got != 45 {
		t.Errorf("TaskCompletion() = %v, want 45", got)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	if s != (Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zero", s)
	}
	if !math.IsNaN(s.TaskCompletion()) {
		t.Errorf("TaskCompletion() = %v, want NaN", s.TaskCompletion())
	}
	if s.HasTasks() {
		t.Error("HasTasks() = true, want false")
	}
}

func TestCompletion(t *testing.T) {
	projects := sample()
	want := []int{25, 33, 0, 100}
	for i, p := range projects {
		if got := Completion(p); got != want[i] {
			t.Errorf("Completion(%s) = %d, want %d", p.Name, got, want[i])
		}
	}
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"match all", NewFilter(), []int{1, 2, 3, 4}},
		{"zero value matches all", Filter{}, []int{1, 2, 3, 4}},
		{"status", Filter{Status: "In Progress", Priority: All}, []int{1, 2}},
		{"priority", Filter{Status: All, Priority: "High"}, []int{1, 4}},
		{"status and priority", Filter{Status: "In Progress", Priority: "High"}, []int{1}},
		{"search name case insensitive", Filter{Search: "MIGRATION"}, []int{4}},
		{"search description", Filter{Search: "postgresql"}, []int{4}},
		{"search substring in several", Filter{Search: "m"}, []int{1, 2, 3, 4}},
		{"search no hit", Filter{Search: "kubernetes"}, []int{}},
		{"search plus status", Filter{Search: "mobile", Status: "Planned"}, []int{}},
		{"ALL spelled uppercase", Filter{Status: "ALL", Priority: "All"}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(sample()))
			if !equalInts(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_ApplyIsIdempotent(t *testing.T) {
	f := Filter{Search: "a", Status: All, Priority: "High"}
	once := f.Apply(sample())
	twice := f.Apply(once)
	if !equalInts(ids(once), ids(twice)) {
		t.Errorf("Apply(Apply(x)) = %v, want %v", ids(twice), ids(once))
	}
}

func TestFilter_ApplyDoesNotMutateInput(t *testing.T) {
	in := sample()
	Filter{Status: "Completed"}.Apply(in)
	if len(in) != 4 || in[0].ID != 1 {
		t.Error("Apply() changed its input")
	}
}

func TestFilter_Active(t *testing.T) {
	if NewFilter().Active() {
		t.Error("NewFilter().Active() = true")
	}
	if !(Filter{Search: "x"}).Active() {
		t.Error("search filter should be active")
	}
	if !(Filter{Status: "Planned", Priority: All}).Active() {
		t.Error("status filter should be active")
	}
}

func TestFilter_Validate(t *testing.T) {
	if got := NewFilter().Validate(); got != nil {
		t.Errorf("Validate() = %v, want nil", got)
	}
	got := Filter{Status: "Archived", Priority: "Urgent"}.Validate()
	if len(got) != 2 {
		t.Errorf("Validate() = %v, want status and priority problems", got)
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		priority     string
		wantStatus   string
		wantPriority string
		wantFields   []string
	}{
		{"empty means all", "", "", All, All, nil},
		{"all any case", "ALL", "All", All, All, nil},
		{"slug", "in-progress", "high", "In Progress", "High", nil},
		{"label", "On Hold", "Low", "On Hold", "Low", nil},
		{"bad status", "archived", "", "", "", []string{project.FieldStatus}},
		{"both bad", "archived", "urgent", "", "", []string{project.FieldPriority, project.FieldStatus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter("web", tt.status, tt.priority)
			if len(tt.wantFields) > 0 {
				fields := errors.FieldErrors(err)
				if len(fields) != len(tt.wantFields) {
					t.Fatalf("ParseFilter() fields = %v, want %v", fields, tt.wantFields)
				}
				for _, k := range tt.wantFields {
					if _, ok := fields[k]; !ok {
						t.Errorf("missing field %q in %v", k, fields)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilter() error = %v", err)
			}
			if f.Search != "web" || f.Status != tt.wantStatus || f.Priority != tt.wantPriority {
				t.Errorf("ParseFilter() = %+v, want status %q priority %q", f, tt.wantStatus, tt.wantPriority)
			}
		})
	}
}

func TestFilter_Cycle(t *testing.T) {
	f := NewFilter()
	var seen []string
	for range 5 {
		f = f.NextStatus()
		seen = append(seen, f.Status)
	}
	want := []string{"Planned", "In Progress", "Completed", "On Hold", All}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("NextStatus() step %d = %q, want %q", i, seen[i], want[i])
		}
	}

	f = Filter{}.NextPriority()
	if f.Priority != "Low" {
		t.Errorf("NextPriority() from empty = %q, want Low", f.Priority)
	}
}

func TestPartitionReminders(t *testing.T) {
	p := project.Project{
		Reminders: []project.Reminder{
			{ID: 1, Date: project.MustParseDate("2026-02-15"), Description: "b"},
			{ID: 2, Date: project.MustParseDate("2026-01-20"), Description: "a"},
			{ID: 3, Date: project.MustParseDate("2026-01-10"), Description: "past"},
		},
	}
	today := project.MustParseDate("2026-01-15")

	got := PartitionReminders(p, today, DefaultReminderWindow)

	if got.PastCount != 1 {
		t.Errorf("PastCount = %d, want 1", got.PastCount)
	}
	if len(got.Upcoming) != 2 {
		t.Fatalf("len(Upcoming) = %d, want 2", len(got.Upcoming))
	}
	if got.Upcoming[0].ID != 2 || got.Upcoming[1].ID != 1 {
		t.Errorf("Upcoming order = [%d %d], want [2 1]", got.Upcoming[0].ID, got.Upcoming[1].ID)
	}
	if !got.Upcoming[0].Soon || got.Upcoming[0].DaysLeft != 5 {
		t.Errorf("2026-01-20 should be soon with 5 days left, got %+v", got.Upcoming[0])
	}
	if got.Upcoming[1].Soon {
		t.Error("2026-02-15 should not be soon")
	}
	if len(p.Reminders) != 3 || p.Reminders[0].ID != 1 {
		t.Error("PartitionReminders changed the project's reminders")
	}
}

func TestPartitionReminders_Boundaries(t *testing.T) {
	today := project.MustParseDate("2026-01-15")
	p := project.Project{
		Reminders: []project.Reminder{
			{ID: 1, Date: today},
			{ID: 2, Date: today.AddDays(7)},
			{ID: 3, Date: today.AddDays(8)},
			{ID: 4, Date: today},
		},
	}

	got := PartitionReminders(p, today, 7)

	wantIDs := []int64{1, 4, 2, 3}
	wantSoon := []bool{true, true, true, false}
	for i, r := range got.Upcoming {
		if r.ID != wantIDs[i] {
			t.Errorf("Upcoming[%d].ID = %d, want %d", i, r.ID, wantIDs[i])
		}
		if r.Soon != wantSoon[i] {
			t.Errorf("Upcoming[%d].Soon = %v, want %v", i, r.Soon, wantSoon[i])
		}
	}
	if got.PastCount != 0 {
		t.Errorf("PastCount = %d, want 0", got.PastCount)
	}
}

func TestPartitionReminders_NoReminders(t *testing.T) {
	got := PartitionReminders(project.Project{}, project.MustParseDate("2026-01-15"), 7)
	if got.Upcoming == nil || len(got.Upcoming) != 0 || got.PastCount != 0 {
		t.Errorf("PartitionReminders() = %+v, want empty", got)
	}
}

func TestIsSoon(t *testing.T) {
	today := project.MustParseDate("2026-01-15")
	tests := []struct {
		date string
		want bool
	}{
		{"2026-01-14", false},
		{"2026-01-15", true},
		{"2026-01-22", true},
		{"2026-01-23", false},
	}
	for _, tt := range tests {
		if got := IsSoon(project.MustParseDate(tt.date), today, 7); got != tt.want {
			t.Errorf("IsSoon(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestReminderView_When(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "today"},
		{1, "tomorrow"},
		{5, "in 5 days"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := (ReminderView{DaysLeft: tt.days}).When(); got != tt.want {
				t.Errorf("When() = %q, want %q", got, tt.want)
			}
		})
	}
}
