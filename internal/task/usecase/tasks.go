package usecase

import (
	"context"
	"strings"

	"tasky/internal/model"
	"tasky/internal/task"
)

// Create validates and persists a new task. Recurring tasks must carry a due
// date to anchor their series; a malformed pattern fails before persistence.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	if err := input.Recurrence.Validate(); err != nil {
		return model.Task{}, err
	}

	now := uc.now()
	t := model.Task{
		ID:          uc.newID(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      model.StatusPending,
		Priority:    input.Priority,
		Recurrence:  input.Recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.IsRecurring() {
		if err := requireTemplateDueDate(t); err != nil {
			return model.Task{}, err
		}
	}

	if err := uc.repo.CreateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, task.NewPersistenceError("Create", err)
	}

	uc.l.Infof(ctx, "uc.Create: task=%s recurring=%t", t.ID, t.IsRecurring())
	return t, nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (model.Task, error) {
	return uc.getTask(ctx, "Get", id)
}

// List returns tasks filtered by status and/or a substring query.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) ([]model.Task, error) {
	if input.Query != "" {
		tasks, err := uc.repo.SearchTasks(ctx, input.Query)
		if err != nil {
			return nil, task.NewPersistenceError("List", err)
		}
		if input.Status == "" {
			return tasks, nil
		}
		filtered := tasks[:0]
		for _, t := range tasks {
			if string(t.Status) == input.Status {
				filtered = append(filtered, t)
			}
		}
		return filtered, nil
	}

	if input.Status != "" {
		tasks, err := uc.repo.GetTasksByStatus(ctx, model.TaskStatus(input.Status))
		if err != nil {
			return nil, task.NewPersistenceError("List", err)
		}
		return tasks, nil
	}

	tasks, err := uc.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, task.NewPersistenceError("List", err)
	}
	return tasks, nil
}

// Delete removes a single task. Deleting a template never cascades to its
// instances and deleting an instance never affects the template.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getTask(ctx, "Delete", id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask %s: %v", id, err)
		return task.NewPersistenceError("Delete", err)
	}
	return nil
}

// Complete marks a task completed and stamps CompletedAt. Successor spawning
// for recurring tasks happens in ProcessCompletedRecurringTasks, triggered by
// the caller; completing alone has no generation side effect.
func (uc *implUseCase) Complete(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.getTask(ctx, "Complete", id)
	if err != nil {
		return model.Task{}, err
	}

	t.MarkCompleted(uc.now())
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask %s: %v", id, err)
		return model.Task{}, task.NewPersistenceError("Complete", err)
	}
	return t, nil
}
