package store

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a rejected write (e.g. empty title).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an operation that referenced a nonexistent id.
	ErrNotFound = errors.New("record not found")
	// ErrFormat marks a malformed import document.
	ErrFormat = errors.New("invalid document format")
	// ErrStorage wraps failures of the underlying storage engine.
	ErrStorage = errors.New("storage failure")
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

func notFoundErr(kind string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
}
