// Package dashboard exposes the operations the presentation layer calls:
// listing, statistics and validated mutations over a project store.
package dashboard

import (
	"time"

	"github.com/Iron-Ham/taskboard/internal/errors"
	"github.com/Iron-Ham/taskboard/internal/logging"
	"github.com/Iron-Ham/taskboard/internal/project"
	"github.com/Iron-Ham/taskboard/internal/store"
	"github.com/Iron-Ham/taskboard/internal/views"
)

// Service validates input and forwards mutations to the store.
type Service struct {
	store  *store.Store
	logger *logging.Logger

	reminderWindow int
	now            func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithReminderWindow sets how many days ahead a reminder counts as soon.
func WithReminderWindow(days int) Option {
	return func(s *Service) { s.reminderWindow = days }
}

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wraps st.
func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:          st,
		logger:         logging.NopLogger(),
		reminderWindow: views.DefaultReminderWindow,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("dashboard")
	return s
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// SetReminderWindow changes the soon window for subsequent Reminders calls.
func (s *Service) SetReminderWindow(days int) {
	s.reminderWindow = days
}

// ReminderWindow returns the current soon window in days.
func (s *Service) ReminderWindow() int {
	return s.reminderWindow
}

// Today returns the service's current calendar date.
func (s *Service) Today() project.Date {
	return project.DateOf(s.now())
}

// ListProjects returns the projects matching f in store order.
func (s *Service) ListProjects(f views.Filter) []project.Project {
	return f.Apply(s.store.Snapshot())
}

// GetStats returns aggregate statistics over all projects.
func (s *Service) GetStats() views.Stats {
	return views.ComputeStats(s.store.Snapshot())
}

// GetProject returns the project with the given id.
func (s *Service) GetProject(id int) (project.Project, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return project.Project{}, errors.ProjectNotFound(id)
	}
	return p, nil
}

// Reminders partitions a project's reminders around today.
func (s *Service) Reminders(id int) (views.ReminderPartition, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return views.ReminderPartition{}, err
	}
	return views.PartitionReminders(p, s.Today(), s.reminderWindow), nil
}

// CreateProject validates in and adds a new project. Empty status and
// priority default to Planned and Medium.
func (s *Service) CreateProject(in project.Input) (project.Project, error) {
	in = in.WithDefaults()
	if problems := in.Validate(); problems != nil {
		s.logger.Warn("project rejected", "fields", problems)
		return project.Project{}, errors.NewValidationError("project is invalid").WithFields(problems)
	}
	return s.store.Create(in), nil
}

// UpdateProject validates p's editable fields and replaces the stored
// project with the same id. Nothing is written when validation fails.
func (s *Service) UpdateProject(p project.Project) (project.Project, error) {
	if problems := p.Input().Validate(); problems != nil {
		s.logger.WithProject(p.ID).Warn("project update rejected", "fields", problems)
		return project.Project{}, errors.NewValidationError("project is invalid").WithFields(problems)
	}
	return s.store.Update(p)
}

// SaveForm creates or updates a project from an edit form.
func (s *Service) SaveForm(f *project.Form) (project.Project, error) {
	if !f.IsEdit() {
		return s.CreateProject(f.Input())
	}
	base, err := s.GetProject(f.ID())
	if err != nil {
		return project.Project{}, err
	}
	return s.UpdateProject(f.Apply(base))
}

// DeleteProject removes a project and everything it owns.
func (s *Service) DeleteProject(id int) error {
	return s.store.Delete(id)
}

// AddTask validates in and appends it to the project. An empty status
// defaults to Todo.
func (s *Service) AddTask(projectID int, in project.TaskInput) (project.Task, error) {
	in = in.WithDefaults()
	if problems := in.Validate(); problems != nil {
		s.logger.WithProject(projectID).Warn("task rejected", "fields", problems)
		return project.Task{}, errors.NewValidationError("task is invalid").WithFields(problems)
	}
	return s.store.AddTask(projectID, in)
}

// UpdateTaskStatus sets one task's status.
func (s *Service) UpdateTaskStatus(projectID, taskID int, status project.TaskStatus) error {
	if !status.IsValid() {
		return errors.NewValidationError("task is invalid").
			WithFieldError(project.FieldStatus, project.MsgInvalidStatus)
	}
	_, err := s.store.UpdateTask(projectID, taskID, project.TaskUpdate{Status: &status})
	return err
}

// CycleTaskStatus advances a task to its next workflow status and returns it.
func (s *Service) CycleTaskStatus(projectID, taskID int) (project.TaskStatus, error) {
	p, err := s.GetProject(projectID)
	if err != nil {
		return "", err
	}
	i := p.FindTask(taskID)
	if i < 0 {
		return "", errors.TaskNotFound(projectID, taskID)
	}
	next := p.Tasks[i].Status.Next()
	if err := s.UpdateTaskStatus(projectID, taskID, next); err != nil {
		return "", err
	}
	return next, nil
}
