package config

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrInvalidPath indicates a dot path that does not resolve to a
	// declared leaf field.
	ErrInvalidPath = errors.New("invalid config path")

	// ErrValidation indicates a value that fails type coercion or a
	// declared range constraint.
	ErrValidation = errors.New("invalid config value")

	// ErrUnknownScope indicates a scope name other than "local" or "global".
	ErrUnknownScope = errors.New("unknown config scope")
)

// StorageError reports a scope file that could not be read, parsed,
// or written. A missing file is not a StorageError; it is treated as
// an empty mapping.
type StorageError struct {
	Op    string // Operation that failed ("load", "save")
	Scope Scope  // Scope whose file was involved
	Path  string // Filesystem path of the scope file
	Err   error  // Underlying error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s config %s: %v", e.Op, e.Scope, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsInvalidPath checks if an error is a dot-path resolution failure.
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}

// IsValidation checks if an error is a value validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorage checks if an error is a scope file read/write failure.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
