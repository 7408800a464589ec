// Package errors provides centralized error definitions and error handling
// utilities for taskboard. It defines sentinel errors, semantic error types,
// constructors with context wrapping, and classification helpers.
//
// # Error Types
//
// Domain-specific errors represent failures inside a subsystem:
//   - StoreError: a store mutation failed (carries the operation and ids)
//
// Semantic errors represent common error conditions:
//   - NotFoundError: a project or task id does not exist
//   - ValidationError: form input was rejected, keyed by field
//
// # Usage
//
// Creating errors:
//
//	err := errors.ProjectNotFound(42)
//	err := errors.NewValidationError("project is invalid").
//		WithFieldError("name", "Project name is required")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrProjectNotFound) { ... }
//
//	var vErr *errors.ValidationError
//	if errors.As(err, &vErr) {
//		for field, msg := range vErr.Fields { ... }
//	}
//
// # Error Classification
//
// Errors carry a Severity and a user-facing flag. The presentation layer
// shows user-facing messages verbatim and logs everything else.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors caused by user input or missing records.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Store-related sentinel errors
var (
	// ErrProjectNotFound indicates that no project has the requested id.
	ErrProjectNotFound = New("project not found")
	// ErrTaskNotFound indicates that the project has no task with the requested id.
	ErrTaskNotFound = New("task not found")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrInvalidSeed indicates that a seed dataset could not be used.
	ErrInvalidSeed = New("invalid seed data")
	// ErrOperationFailed indicates a general operation failure.
	ErrOperationFailed = New("operation failed")
)

// -----------------------------------------------------------------------------
// Base Error
// -----------------------------------------------------------------------------

// TaskboardError is implemented by every error type in this package.
type TaskboardError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error { return e.cause }

func (e *baseError) Severity() Severity { return e.severity }

func (e *baseError) IsUserFacing() bool { return e.userFacing }

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// StoreError represents a failed store mutation.
//
// Example:
//
//	err := errors.NewStoreError("update task", errors.TaskNotFound(1, 9)).
//		WithProject(1).WithTask(9)
//	fmt.Println(err) // "store error [op=update task, project=1, task=9]: ..."
type StoreError struct {
	baseError
	Op        string
	ProjectID int
	TaskID    int
}

// NewStoreError creates a new StoreError for the named operation.
func NewStoreError(op string, cause error) *StoreError {
	return &StoreError{
		baseError: baseError{
			message:    op + " failed",
			cause:      cause,
			severity:   SeverityError,
			userFacing: false,
		},
		Op: op,
	}
}

// WithProject adds a project id to the error context.
func (e *StoreError) WithProject(id int) *StoreError {
	e.ProjectID = id
	return e
}

// WithTask adds a task id to the error context.
func (e *StoreError) WithTask(id int) *StoreError {
	e.TaskID = id
	return e
}

// Error returns the formatted error message.
func (e *StoreError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, "op="+e.Op)
	}
	if e.ProjectID != 0 {
		parts = append(parts, fmt.Sprintf("project=%d", e.ProjectID))
	}
	if e.TaskID != 0 {
		parts = append(parts, fmt.Sprintf("task=%d", e.TaskID))
	}

	prefix := "store error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("store error [%s]", strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix
}

// Severity returns the cause's severity when it has one, so a wrapped
// NotFoundError stays a warning.
func (e *StoreError) Severity() Severity {
	var inner TaskboardError
	if e.cause != nil && As(e.cause, &inner) {
		return inner.Severity()
	}
	return e.severity
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("project", "7")
//	fmt.Println(err) // "project '7' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// ProjectNotFound returns a NotFoundError for a project id that matches
// ErrProjectNotFound.
func ProjectNotFound(id int) *NotFoundError {
	return NewNotFoundError("project", strconv.Itoa(id)).WithCause(ErrProjectNotFound)
}

// TaskNotFound returns a NotFoundError for a task id within a project that
// matches ErrTaskNotFound.
func TaskNotFound(projectID, taskID int) *NotFoundError {
	id := fmt.Sprintf("%d/%d", projectID, taskID)
	return NewNotFoundError("task", id).WithCause(ErrTaskNotFound)
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message. The cause is used only for
// matching and is not repeated in the message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError represents rejected input. Fields maps a form field key
// to the message shown next to it.
//
// Example:
//
//	err := errors.NewValidationError("project is invalid").
//		WithFieldError("assignees", "At least one assignee is required")
type ValidationError struct {
	baseError
	Fields map[string]string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
		Fields: make(map[string]string),
	}
}

// WithFieldError records a message for a field.
func (e *ValidationError) WithFieldError(field, msg string) *ValidationError {
	e.Fields[field] = msg
	return e
}

// WithFields records every entry of fields.
func (e *ValidationError) WithFields(fields map[string]string) *ValidationError {
	maps.Copy(e.Fields, fields)
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// FieldNames returns the invalid field keys in sorted order.
func (e *ValidationError) FieldNames() []string {
	return slices.Sorted(maps.Keys(e.Fields))
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	msg := "validation error: " + e.message
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.FieldNames() {
			parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
		}
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(parts, "; "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return target == ErrInvalidInput
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return As(err, &nf)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return As(err, &v)
}

// FieldErrors returns the field messages of a wrapped ValidationError, or
// nil when err is not a validation failure.
func FieldErrors(err error) map[string]string {
	var v *ValidationError
	if !As(err, &v) {
		return nil
	}
	return maps.Clone(v.Fields)
}

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    status = err.Error()
//	} else {
//	    status = "An internal error occurred"
//	    logger.Error("internal error", "err", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	if IsNotFound(err) || IsValidation(err) {
		return true
	}
	var tbErr TaskboardError
	if As(err, &tbErr) {
		return tbErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TaskboardError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var tbErr TaskboardError
	if As(err, &tbErr) {
		return tbErr.Severity()
	}
	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
