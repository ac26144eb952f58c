package datastore

import (
	"errors"
	"fmt"
)

var (
	// ErrColorNotFound is returned when a delete targets an id that does not exist.
	ErrColorNotFound = errors.New("color not found")

	// ErrStorageUnavailable matches every StorageError.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageError wraps a failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (se StorageError) Error() string {
	return fmt.Sprintf("%s: %v: %v", se.Op, ErrStorageUnavailable, se.Err)
}

func (se StorageError) Unwrap() error {
	return se.Err
}

func (se StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}
