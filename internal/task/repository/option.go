package repository

import (
	"time"

	"tasky/internal/model"
)

// ListTasksOptions holds filter parameters for listing tasks.
// All non-zero fields are applied as AND conditions.
type ListTasksOptions struct {
	Status model.TaskStatus

	// OriginalTaskID selects the generated instances of one series template.
	OriginalTaskID string

	// DueAfter keeps only tasks with a due date strictly after the given
	// moment. Tasks without a due date are excluded when it is set.
	DueAfter *time.Time
}
