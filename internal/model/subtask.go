package model

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// SubTask is a single checklist item belonging to a Task.
type SubTask struct {
	ID          string
	TaskID      string
	Title       string
	IsCompleted bool
	CompletedAt *time.Time
	SortOrder   int
}

// Validate checks the subtask invariants against its owning task id.
func (st SubTask) Validate(taskID string) error {
	if st.Title == "" {
		return errors.New("subtask title is required")
	}
	if st.TaskID != taskID {
		return fmt.Errorf("subtask %q belongs to task %q, not %q", st.ID, st.TaskID, taskID)
	}
	if st.SortOrder < 0 {
		return fmt.Errorf("subtask %q has negative sort order %d", st.ID, st.SortOrder)
	}
	return nil
}

// AddSubTask appends a new subtask after the current highest sort order.
func (t *Task) AddSubTask(id, title string) SubTask {
	next := 0
	for _, st := range t.SubTasks {
		if st.SortOrder >= next {
			next = st.SortOrder + 1
		}
	}
	st := SubTask{
		ID:        id,
		TaskID:    t.ID,
		Title:     title,
		SortOrder: next,
	}
	t.SubTasks = append(t.SubTasks, st)
	return st
}

// RemoveSubTask deletes a subtask by id. Remaining sort orders are left as
// they are: uniqueness matters, contiguity does not.
func (t *Task) RemoveSubTask(id string) error {
	for i, st := range t.SubTasks {
		if st.ID == id {
			t.SubTasks = append(t.SubTasks[:i], t.SubTasks[i+1:]...)
			return nil
		}
	}
	return ErrSubTaskNotFound
}

// MarkSubTaskCompleted sets IsCompleted and stamps CompletedAt. This and
// MarkSubTaskIncomplete are the only operations that touch CompletedAt.
func (t *Task) MarkSubTaskCompleted(id string, now time.Time) error {
	for i := range t.SubTasks {
		if t.SubTasks[i].ID == id {
			t.SubTasks[i].IsCompleted = true
			t.SubTasks[i].CompletedAt = &now
			return nil
		}
	}
	return ErrSubTaskNotFound
}

// MarkSubTaskIncomplete clears IsCompleted and CompletedAt.
func (t *Task) MarkSubTaskIncomplete(id string) error {
	for i := range t.SubTasks {
		if t.SubTasks[i].ID == id {
			t.SubTasks[i].IsCompleted = false
			t.SubTasks[i].CompletedAt = nil
			return nil
		}
	}
	return ErrSubTaskNotFound
}

// SortedSubTasks returns the subtasks in display order (ascending SortOrder).
func (t Task) SortedSubTasks() []SubTask {
	out := make([]SubTask, len(t.SubTasks))
	copy(out, t.SubTasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}
