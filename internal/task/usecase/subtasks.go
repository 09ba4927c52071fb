package usecase

import (
	"context"
	"strings"

	"tasky/internal/model"
	"tasky/internal/task"
)

// AddSubTask appends a subtask after the task's current highest sort order.
func (uc *implUseCase) AddSubTask(ctx context.Context, taskID, title string) (model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	t, err := uc.getTask(ctx, "AddSubTask", taskID)
	if err != nil {
		return model.Task{}, err
	}

	t.AddSubTask(uc.newID(), title)
	t.UpdatedAt = uc.now()
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.AddSubTask UpdateTask %s: %v", taskID, err)
		return model.Task{}, task.NewPersistenceError("AddSubTask", err)
	}
	return t, nil
}

// SetSubTaskCompletion marks one subtask completed or incomplete. These are
// the only paths that stamp or clear a subtask's CompletedAt.
func (uc *implUseCase) SetSubTaskCompletion(ctx context.Context, taskID, subTaskID string, completed bool) (model.Task, error) {
	t, err := uc.getTask(ctx, "SetSubTaskCompletion", taskID)
	if err != nil {
		return model.Task{}, err
	}

	if completed {
		err = t.MarkSubTaskCompleted(subTaskID, uc.now())
	} else {
		err = t.MarkSubTaskIncomplete(subTaskID)
	}
	if err != nil {
		return model.Task{}, err
	}

	t.UpdatedAt = uc.now()
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.SetSubTaskCompletion UpdateTask %s: %v", taskID, err)
		return model.Task{}, task.NewPersistenceError("SetSubTaskCompletion", err)
	}
	return t, nil
}

// RemoveSubTask deletes one subtask from the task.
func (uc *implUseCase) RemoveSubTask(ctx context.Context, taskID, subTaskID string) (model.Task, error) {
	t, err := uc.getTask(ctx, "RemoveSubTask", taskID)
	if err != nil {
		return model.Task{}, err
	}

	if err := t.RemoveSubTask(subTaskID); err != nil {
		return model.Task{}, err
	}

	t.UpdatedAt = uc.now()
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.RemoveSubTask UpdateTask %s: %v", taskID, err)
		return model.Task{}, task.NewPersistenceError("RemoveSubTask", err)
	}
	return t, nil
}
