package dashboard

import (
	"sync"

	"github.com/Iron-Ham/taskboard/internal/event"
	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/store"
)

// View identifies which screen the dashboard shows.
type View int

const (
	// ViewList shows the filtered project list.
	ViewList View = iota
	// ViewDetails shows one project.
	ViewDetails
)

// String returns the view name.
func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewDetails:
		return "details"
	default:
		return "unknown"
	}
}

// Selection tracks the project shown in the details view and keeps its copy
// in step with the store. When the selected project is deleted the
// selection falls back to the list view.
type Selection struct {
	mu       sync.Mutex
	store    *store.Store
	view     View
	selected project.Project
	subID    string
}

// NewSelection starts on the list view and follows st's events until Close.
func NewSelection(st *store.Store) *Selection {
	sel := &Selection{store: st, view: ViewList}
	sel.subID = st.Bus().SubscribeAll(sel.onEvent)
	return sel
}

// Close stops following store events.
func (sel *Selection) Close() {
	sel.store.Bus().Unsubscribe(sel.subID)
}

// Select shows the project with the given id. It reports false and leaves
// the selection unchanged when the id does not exist.
func (sel *Selection) Select(id int) bool {
	p, ok := sel.store.Get(id)
	if !ok {
		return false
	}
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.view = ViewDetails
	sel.selected = p
	return true
}

// Back returns to the list view.
func (sel *Selection) Back() {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	sel.view = ViewList
	sel.selected = project.Project{}
}

// View returns the current view.
func (sel *Selection) View() View {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	return sel.view
}

// Selected returns the displayed project. ok is false on the list view.
func (sel *Selection) Selected() (p project.Project, ok bool) {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	if sel.view != ViewDetails {
		return project.Project{}, false
	}
	return sel.selected.Clone(), true
}

// Refresh re-resolves the selected project from the store.
func (sel *Selection) Refresh() {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	if sel.view != ViewDetails {
		return
	}
	p, ok := sel.store.Get(sel.selected.ID)
	if !ok {
		sel.view = ViewList
		sel.selected = project.Project{}
		return
	}
	sel.selected = p
}

func (sel *Selection) onEvent(e event.Event) {
	pe, ok := e.(event.ProjectEvent)
	if !ok {
		return
	}
	sel.mu.Lock()
	following := sel.view == ViewDetails && sel.selected.ID == pe.ProjectID()
	sel.mu.Unlock()
	if following {
		sel.Refresh()
	}
}
