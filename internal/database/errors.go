package database

import (
	"fmt"
	"strings"
)

// ValidationError reports domain-constraint violations. The record is
// never persisted when validation fails.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NotFoundError reports an operation against an id that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InputError reports malformed call-site arguments, e.g. a missing or
// unparseable date key.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// StorageUnavailableError reports that the underlying medium could not
// serve a write, or could not be prepared during initialization. Read
// failures are not surfaced this way: they are logged and treated as
// "no data" so the app stays usable.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}
