// Package store holds the in-memory collection of projects. Every mutation
// builds a new snapshot and swaps it in whole, so readers never observe a
// partially applied change.
package store

import (
	"slices"
	"sync"

	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/event"
	"github.com/Iron-Ham/taskboard/internal/logging"
	"github.com/Iron-Ham/taskboard/internal/project"
)

// Store is the single owner of project state. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	projects []project.Project // current snapshot; never mutated in place
	version  uint64

	bus    *event.Bus
	logger *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithBus publishes mutation events on bus.
func WithBus(bus *event.Bus) Option {
	return func(s *Store) { s.bus = bus }
}

// WithLogger sets the store's logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a store seeded with the given projects, in order. Seed ids
// are kept as-is.
func New(seed []project.Project, opts ...Option) *Store {
	s := &Store{
		projects: cloneAll(seed),
		logger:   logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = event.NewBus(s.logger)
	}
	s.logger = s.logger.WithComponent("store")
	return s
}

// Bus returns the bus mutation events are published on.
func (s *Store) Bus() *event.Bus {
	return s.bus
}

// Version returns a counter that increases with every successful mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns a deep copy of all projects in insertion order.
func (s *Store) Snapshot() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.projects)
}

// Len returns the number of projects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// Get returns a copy of the project with the given id.
func (s *Store) Get(id int) (project.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.projects, id)
	if i < 0 {
		return project.Project{}, false
	}
	return s.projects[i].Clone(), true
}

// Create appends a new project built from in and returns it. The id is one
// more than the highest existing id, or 1 for an empty store. Supplied tasks
// are kept; otherwise the project starts with none. Create does not
// validate; callers check the input first.
func (s *Store) Create(in project.Input) project.Project {
	s.mu.Lock()
	p := project.Project{
		ID:             nextID(s.projects),
		Name:           in.Name,
		Description:    in.Description,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Status:         in.Status,
		Priority:       in.Priority,
		Assignees:      slices.Clone(in.Assignees),
		ProjectManager: in.ProjectManager,
		Tasks:          slices.Clone(in.Tasks),
		Reminders:      slices.Clone(in.Reminders),
	}
	if p.Assignees == nil {
		p.Assignees = []string{}
	}
	if p.Tasks == nil {
		p.Tasks = []project.Task{}
	}
	if p.Reminders == nil {
		p.Reminders = []project.Reminder{}
	}
	next := append(slices.Clone(s.projects), p)
	version := s.commit(next)
	s.mu.Unlock()

	s.logger.WithProject(p.ID).Info("project created", "name", p.Name, "version", version)
	s.bus.Publish(event.NewProjectCreatedEvent(p.ID, p.Name, version))
	return p.Clone()
}

// Update replaces the stored project that has p.ID with p. Position in the
// collection is preserved.
func (s *Store) Update(p project.Project) (project.Project, error) {
	s.mu.Lock()
	i := indexOf(s.projects, p.ID)
	if i < 0 {
		s.mu.Unlock()
		return project.Project{}, errors.NewStoreError("update project", errors.ProjectNotFound(p.ID)).WithProject(p.ID)
	}
	stored := p.Clone()
	next := slices.Clone(s.projects)
	next[i] = stored
	version := s.commit(next)
	s.mu.Unlock()

	s.logger.WithProject(p.ID).Info("project updated", "version", version)
	s.bus.Publish(event.NewProjectUpdatedEvent(p.ID, version))
	return stored.Clone(), nil
}

// Delete removes the project with the given id together with its tasks and
// reminders.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	i := indexOf(s.projects, id)
	if i < 0 {
		s.mu.Unlock()
		return errors.NewStoreError("delete project", errors.ProjectNotFound(id)).WithProject(id)
	}
	next := slices.Delete(slices.Clone(s.projects), i, i+1)
	version := s.commit(next)
	s.mu.Unlock()

	s.logger.WithProject(id).Info("project deleted", "version", version)
	s.bus.Publish(event.NewProjectDeletedEvent(id, version))
	return nil
}

// AddTask appends a task to the project. The task id is one more than the
// highest task id in that project, or 1 when it has none.
func (s *Store) AddTask(projectID int, in project.TaskInput) (project.Task, error) {
	s.mu.Lock()
	i := indexOf(s.projects, projectID)
	if i < 0 {
		s.mu.Unlock()
		return project.Task{}, errors.NewStoreError("add task", errors.ProjectNotFound(projectID)).WithProject(projectID)
	}
	p := s.projects[i].Clone()
	task := project.Task{
		ID:          p.NextTaskID(),
		Name:        in.Name,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Status:      in.Status,
	}
	p.Tasks = append(p.Tasks, task)
	next := slices.Clone(s.projects)
	next[i] = p
	version := s.commit(next)
	s.mu.Unlock()

	s.logger.WithProject(projectID).Info("task added", "task_id", task.ID, "version", version)
	s.bus.Publish(event.NewTaskAddedEvent(projectID, task.ID, version))
	return task, nil
}

// UpdateTask merges the non-nil fields of u into the task. Other tasks and
// fields are untouched.
func (s *Store) UpdateTask(projectID, taskID int, u project.TaskUpdate) (project.Task, error) {
	s.mu.Lock()
	i := indexOf(s.projects, projectID)
	if i < 0 {
		s.mu.Unlock()
		return project.Task{}, errors.NewStoreError("update task", errors.ProjectNotFound(projectID)).WithProject(projectID).WithTask(taskID)
	}
	p := s.projects[i].Clone()
	j := p.FindTask(taskID)
	if j < 0 {
		s.mu.Unlock()
		return project.Task{}, errors.NewStoreError("update task", errors.TaskNotFound(projectID, taskID)).WithProject(projectID).WithTask(taskID)
	}
	p.Tasks[j] = u.Apply(p.Tasks[j])
	task := p.Tasks[j]
	next := slices.Clone(s.projects)
	next[i] = p
	version := s.commit(next)
	s.mu.Unlock()

	s.logger.WithProject(projectID).Debug("task updated", "task_id", taskID, "status", string(task.Status), "version", version)
	s.bus.Publish(event.NewTaskUpdatedEvent(projectID, taskID, string(task.Status), version))
	return task, nil
}

// commit installs next as the current snapshot. The caller must hold mu.
func (s *Store) commit(next []project.Project) uint64 {
	s.projects = next
	s.version++
	return s.version
}

func indexOf(projects []project.Project, id int) int {
	return slices.IndexFunc(projects, func(p project.Project) bool { return p.ID == id })
}

func nextID(projects []project.Project) int {
	next := 1
	for _, p := range projects {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func cloneAll(projects []project.Project) []project.Project {
	out := make([]project.Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}
