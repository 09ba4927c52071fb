package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTitle    = errors.New("task title is empty")
	ErrNotATemplate  = errors.New("task is a generated instance, not a series template")
	ErrNegativeCount = errors.New("requested instance count is negative")
)

// PersistenceError wraps a repository failure. The service does not retry and
// does not roll back instances already persisted from the same batch; retries
// are caller policy.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the failing operation name.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
