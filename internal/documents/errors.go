package documents

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the referenced document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidInput indicates client-supplied data violates a rule.
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError reports a failed object storage operation with its key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s key=%s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// RecordError reports a failed persistence operation on the document record.
type RecordError struct {
	Op  string
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("document record %s: %v", e.Op, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
