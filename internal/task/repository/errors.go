package repository

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrDuplicateTaskID = errors.New("task id already exists")
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToDelete  = errors.New("failed to delete record")
	ErrFailedToList    = errors.New("failed to list records")
)
