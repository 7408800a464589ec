// Package event defines the events the project store publishes after each
// successful mutation.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event type names.
const (
	TypeProjectCreated = "project.created"
	TypeProjectUpdated = "project.updated"
	TypeProjectDeleted = "project.deleted"
	TypeTaskAdded      = "task.added"
	TypeTaskUpdated    = "task.updated"
)

// Event is the interface that all events must implement.
type Event interface {
	// ID uniquely identifies this occurrence.
	ID() string

	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "project.created", "task.updated")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// ProjectEvent is implemented by every store event. It carries the id of
// the affected project and the store version produced by the mutation.
type ProjectEvent interface {
	Event
	ProjectID() int
	Version() uint64
}

type baseEvent struct {
	id        string
	eventType string
	timestamp time.Time
	projectID int
	version   uint64
}

func (e baseEvent) ID() string           { return e.id }
func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }
func (e baseEvent) ProjectID() int       { return e.projectID }
func (e baseEvent) Version() uint64      { return e.version }

func newBaseEvent(eventType string, projectID int, version uint64) baseEvent {
	return baseEvent{
		id:        uuid.NewString(),
		eventType: eventType,
		timestamp: time.Now(),
		projectID: projectID,
		version:   version,
	}
}

// -----------------------------------------------------------------------------
// Project Events
// -----------------------------------------------------------------------------

// ProjectCreatedEvent is emitted after a project is added to the store.
type ProjectCreatedEvent struct {
	baseEvent
	Name string
}

// NewProjectCreatedEvent creates a ProjectCreatedEvent.
func NewProjectCreatedEvent(projectID int, name string, version uint64) ProjectCreatedEvent {
	return ProjectCreatedEvent{
		baseEvent: newBaseEvent(TypeProjectCreated, projectID, version),
		Name:      name,
	}
}

// ProjectUpdatedEvent is emitted after a project record is replaced.
type ProjectUpdatedEvent struct {
	baseEvent
}

// NewProjectUpdatedEvent creates a ProjectUpdatedEvent.
func NewProjectUpdatedEvent(projectID int, version uint64) ProjectUpdatedEvent {
	return ProjectUpdatedEvent{baseEvent: newBaseEvent(TypeProjectUpdated, projectID, version)}
}

// ProjectDeletedEvent is emitted after a project and everything it owns is removed.
type ProjectDeletedEvent struct {
	baseEvent
}

// NewProjectDeletedEvent creates a ProjectDeletedEvent.
func NewProjectDeletedEvent(projectID int, version uint64) ProjectDeletedEvent {
	return ProjectDeletedEvent{baseEvent: newBaseEvent(TypeProjectDeleted, projectID, version)}
}

// -----------------------------------------------------------------------------
// Task Events
// -----------------------------------------------------------------------------

// TaskAddedEvent is emitted after a task is appended to a project.
type TaskAddedEvent struct {
	baseEvent
	TaskID int
}

// NewTaskAddedEvent creates a TaskAddedEvent.
func NewTaskAddedEvent(projectID, taskID int, version uint64) TaskAddedEvent {
	return TaskAddedEvent{
		baseEvent: newBaseEvent(TypeTaskAdded, projectID, version),
		TaskID:    taskID,
	}
}

// TaskUpdatedEvent is emitted after a task's fields change.
type TaskUpdatedEvent struct {
	baseEvent
	TaskID int
	Status string // Status after the update
}

// NewTaskUpdatedEvent creates a TaskUpdatedEvent.
func NewTaskUpdatedEvent(projectID, taskID int, status string, version uint64) TaskUpdatedEvent {
	return TaskUpdatedEvent{
		baseEvent: newBaseEvent(TypeTaskUpdated, projectID, version),
		TaskID:    taskID,
		Status:    status,
	}
}
