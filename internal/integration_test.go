// Package internal contains integration tests that verify the store, the
// dashboard service and the selection work together over the sample data.
package internal

import (
	"slices"
	"sync"
	"testing"

	"github.com/Iron-Ham/taskboard/internal/dashboard"
	"github.com/Iron-Ham/taskboard/internal/event"
	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/testutil"
	"github.com/Iron-Ham/taskboard/internal/views"
)

// TestEventFlow checks that every mutation made through the service reaches
// bus subscribers in order with increasing versions.
func TestEventFlow(t *testing.T) {
	st := testutil.SeedStore(t)
	svc := dashboard.NewService(st, dashboard.WithClock(testutil.Clock()))

	var (
		mu       sync.Mutex
		types    []string
		versions []uint64
	)
	st.Bus().SubscribeAll(func(e event.Event) {
		mu.Lock()
		defer mu.Unlock()
		types = append(types, e.EventType())
		if pe, ok := e.(event.ProjectEvent); ok {
			versions = append(versions, pe.Version())
		}
	})

	created, err := svc.CreateProject(project.Input{Name: "Onboarding", Assignees: []string{"anoop"}})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	task, err := svc.AddTask(created.ID, project.TaskInput{Name: "Write guide"})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.CycleTaskStatus(created.ID, task.ID); err != nil {
		t.Fatalf("CycleTaskStatus: %v", err)
	}
	if err := svc.DeleteProject(created.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	// A rejected mutation publishes nothing.
	if _, err := svc.CreateProject(project.Input{}); err == nil {
		t.Fatal("expected validation error")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{event.TypeProjectCreated, event.TypeTaskAdded, event.TypeTaskUpdated, event.TypeProjectDeleted}
	if !slices.Equal(types, want) {
		t.Errorf("event types = %v, want %v", types, want)
	}
	if !slices.IsSorted(versions) || len(versions) != len(want) {
		t.Errorf("versions = %v, want %d increasing values", versions, len(want))
	}
	if versions[len(versions)-1] != st.Version() {
		t.Errorf("last event version = %d, store version = %d", versions[len(versions)-1], st.Version())
	}
}

// TestDashboardWorkflow walks a user session: filter, open a project,
// change a task and delete the project while it is shown.
func TestDashboardWorkflow(t *testing.T) {
	st := testutil.SeedStore(t)
	svc := dashboard.NewService(st, dashboard.WithClock(testutil.Clock()))
	sel := dashboard.NewSelection(st)
	defer sel.Close()

	inProgress, err := views.ParseFilter("", "in progress", "all")
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}
	listed := svc.ListProjects(inProgress)
	if len(listed) != 2 {
		t.Fatalf("in-progress projects = %d, want 2", len(listed))
	}

	if !sel.Select(listed[0].ID) {
		t.Fatalf("Select(%d) failed", listed[0].ID)
	}
	if sel.View() != dashboard.ViewDetails {
		t.Fatalf("view = %v, want details", sel.View())
	}

	before := svc.GetStats()
	if err := svc.UpdateTaskStatus(listed[0].ID, 3, project.TaskDone); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	after := svc.GetStats()
	if after.CompletedTasks != before.CompletedTasks+1 {
		t.Errorf("completed tasks = %d, want %d", after.CompletedTasks, before.CompletedTasks+1)
	}

	shown, ok := sel.Selected()
	if !ok {
		t.Fatal("selection lost after a task update")
	}
	if i := shown.FindTask(3); i < 0 || shown.Tasks[i].Status != project.TaskDone {
		t.Errorf("selected copy not refreshed: %+v", shown.Tasks)
	}

	part, err := svc.Reminders(listed[0].ID)
	if err != nil {
		t.Fatalf("Reminders: %v", err)
	}
	if len(part.Upcoming) == 0 || !part.Upcoming[0].Soon {
		t.Errorf("first reminder should be soon on %s: %+v", testutil.TodayDate, part.Upcoming)
	}

	if err := svc.DeleteProject(listed[0].ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if sel.View() != dashboard.ViewList {
		t.Errorf("view = %v after deleting the shown project, want list", sel.View())
	}
	if _, ok := sel.Selected(); ok {
		t.Error("deleted project is still selected")
	}
	if got := svc.GetStats().Total; got != 3 {
		t.Errorf("total after delete = %d, want 3", got)
	}
}
