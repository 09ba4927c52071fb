package task

import (
	"time"

	"tasky/internal/model"
	"tasky/internal/recurrence"
)

// CreateTaskInput is the input for creating a task, recurring or not.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.TaskPriority
	Recurrence  recurrence.Pattern
}

// ListTasksInput filters the task listing.
type ListTasksInput struct {
	Status string // empty means all statuses
	Query  string // optional title/description substring search
}

// UpdatePatternInput is the input for rewriting a series' recurrence pattern.
type UpdatePatternInput struct {
	TemplateID string
	Pattern    recurrence.Pattern

	// UpdateFutureInstances propagates the new pattern onto already-generated
	// future instances. Their due dates are never recomputed: re-dating
	// scheduled instances would silently move user-visible commitments.
	UpdateFutureInstances bool
}

// SweepOutput is the result of a completed-recurring-task sweep.
type SweepOutput struct {
	// Spawned holds the newly created successor instances, one per completed
	// recurring task that had not yet spawned.
	Spawned []model.Task
}
