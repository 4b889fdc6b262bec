// internal/errors/errors.go
package apperrors

import "fmt"

// ValidationError is a pre-network rejection of user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Helper constructor
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotConfiguredError means a required endpoint or credential is absent.
// Distinct from a runtime failure: no network call was attempted.
type NotConfiguredError struct {
	Setting string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Setting)
}

func NewNotConfigured(setting string) error {
	return &NotConfiguredError{Setting: setting}
}

// ErrPostNotFound is a sentinel error
type ErrPostNotFound struct {
	PostID string
}

func (e *ErrPostNotFound) Error() string {
	return fmt.Sprintf("post with ID %s not found", e.PostID)
}

func NewPostNotFound(id string) error {
	return &ErrPostNotFound{PostID: id}
}
