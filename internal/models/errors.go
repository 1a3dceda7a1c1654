package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUsernameTaken is returned by stores when a username uniqueness constraint is violated.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNotFound is returned for unmatched routes.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// DuplicateUserError reports a registration of an existing username.
type DuplicateUserError struct {
	Username string
}

func (e *DuplicateUserError) Error() string { return "Cannot save duplicate user" }

// UserNotFoundError reports that a referenced username does not exist.
type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string { return "Username not found" }

// StorageError wraps a failed store operation. Message is safe to show to clients.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string { return e.Message }

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err with a client-facing message.
func NewStorageError(msg string, err error) error {
	return &StorageError{Message: msg, Err: err}
}

// Detail returns the message with the underlying cause, for logs only.
func (e *StorageError) Detail() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}
