package history

import (
	"errors"
	"fmt"
)

// ErrUnknownDriver is returned by Open for a driver it does not know.
var ErrUnknownDriver = errors.New("unknown history driver")

// StorageError is a failure of a history backend.
type StorageError struct {
	Backend   string // "sqlite3", "sqlite" or "memory"
	Operation string // "open", "record", "query", ...
	Cause     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("history error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{
		Backend:   backend,
		Operation: operation,
		Cause:     cause,
	}
}
