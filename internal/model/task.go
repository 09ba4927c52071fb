package model

import (
	"errors"
	"time"

	"tasky/internal/recurrence"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "inProgress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskPriority orders tasks for display; higher is more urgent.
type TaskPriority int

const (
	PriorityLow    TaskPriority = 0
	PriorityMedium TaskPriority = 1
	PriorityHigh   TaskPriority = 2
	PriorityUrgent TaskPriority = 3
)

// Metadata keys used to link recurring instances back to their template.
// original_task_id is a weak back-reference: it records the relationship for
// lookups and confers no ownership. Deleting a template never cascades to its
// instances and deleting an instance never touches the template.
const (
	MetaOriginalTaskID     = "original_task_id"
	MetaGeneratedBy        = "generated_by"
	MetaSuccessorGenerated = "successor_generated"

	GeneratedByRecurrence = "recurrence_engine"
)

var (
	ErrSubTaskNotFound = errors.New("subtask not found")
)

// Task is the core domain entity. A recurring "instance" is a distinct Task
// row, not a virtual projection of its template.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     *time.Time
	Status      TaskStatus
	Priority    TaskPriority
	Recurrence  recurrence.Pattern
	Metadata    map[string]string
	SubTasks    []SubTask
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// IsRecurring reports whether this task carries an active recurrence pattern.
func (t Task) IsRecurring() bool {
	return t.Recurrence.Type != recurrence.TypeNone
}

// OriginalTaskID returns the template id an instance points back to, or ""
// when the task is not a generated instance.
func (t Task) OriginalTaskID() string {
	return t.Metadata[MetaOriginalTaskID]
}

// SeriesRootID resolves the id of the series root: the task's template when
// it is an instance, otherwise the task itself.
func (t Task) SeriesRootID() string {
	if id := t.OriginalTaskID(); id != "" {
		return id
	}
	return t.ID
}

// SuccessorGenerated reports whether a completed recurring task has already
// spawned its next occurrence.
func (t Task) SuccessorGenerated() bool {
	return t.Metadata[MetaSuccessorGenerated] == "true"
}

// SetMeta writes a metadata entry, allocating the map on first use.
func (t *Task) SetMeta(key, value string) {
	if t.Metadata == nil {
		t.Metadata = make(map[string]string)
	}
	t.Metadata[key] = value
}

// MarkCompleted transitions the task to completed and stamps CompletedAt.
func (t *Task) MarkCompleted(now time.Time) {
	t.Status = StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// Validate checks the task's structural invariants, including every subtask.
// A task is only valid when all of its subtasks are valid.
func (t Task) Validate() error {
	if t.ID == "" {
		return errors.New("task id is required")
	}
	if t.Title == "" {
		return errors.New("task title is required")
	}
	for _, st := range t.SubTasks {
		if err := st.Validate(t.ID); err != nil {
			return err
		}
	}
	return nil
}

// SubTaskCompletionPercentage returns the completed fraction in [0, 1].
// A task with no subtasks reports 0.0, never a division by zero.
func (t Task) SubTaskCompletionPercentage() float64 {
	total := len(t.SubTasks)
	if total == 0 {
		return 0.0
	}
	completed := 0
	for _, st := range t.SubTasks {
		if st.IsCompleted {
			completed++
		}
	}
	return float64(completed) / float64(total)
}

// AllSubTasksCompleted reports whether there is at least one subtask and every
// subtask is completed. Zero subtasks means "nothing to do", which is
// deliberately distinct from "everything done".
func (t Task) AllSubTasksCompleted() bool {
	if len(t.SubTasks) == 0 {
		return false
	}
	for _, st := range t.SubTasks {
		if !st.IsCompleted {
			return false
		}
	}
	return true
}
