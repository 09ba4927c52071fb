package usecase

import (
	"context"

	"tasky/internal/model"
	"tasky/internal/recurrence"
	"tasky/internal/task"
	"tasky/internal/task/repository"
)

// UpdateRecurringTaskPattern persists a new pattern onto the template and,
// when requested, rewrites the recurrence field of existing future instances.
// Instance due dates are never recomputed.
func (uc *implUseCase) UpdateRecurringTaskPattern(ctx context.Context, input task.UpdatePatternInput) (model.Task, error) {
	// Fail fast on a malformed pattern before touching persistence.
	if err := input.Pattern.Validate(); err != nil {
		return model.Task{}, err
	}

	template, err := uc.getTask(ctx, "UpdateRecurringTaskPattern", input.TemplateID)
	if err != nil {
		return model.Task{}, err
	}
	if template.OriginalTaskID() != "" {
		return model.Task{}, task.ErrNotATemplate
	}

	unlock := uc.series.Lock(template.ID)
	defer unlock()

	template.Recurrence = input.Pattern
	template.UpdatedAt = uc.now()
	if err := uc.repo.UpdateTask(ctx, template); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRecurringTaskPattern UpdateTask %s: %v", template.ID, err)
		return model.Task{}, task.NewPersistenceError("UpdateRecurringTaskPattern", err)
	}

	if input.UpdateFutureInstances {
		if err := uc.propagatePattern(ctx, template.ID, input.Pattern); err != nil {
			return model.Task{}, err
		}
	}

	return template, nil
}

// propagatePattern rewrites the pattern on every future instance of the
// series. Each update is independent; a failure aborts the rest but does not
// undo instances already rewritten.
func (uc *implUseCase) propagatePattern(ctx context.Context, templateID string, pattern recurrence.Pattern) error {
	now := uc.now()
	instances, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OriginalTaskID: templateID,
		DueAfter:       &now,
	})
	if err != nil {
		return task.NewPersistenceError("propagatePattern", err)
	}

	for _, instance := range instances {
		instance.Recurrence = pattern
		instance.UpdatedAt = now
		if err := uc.repo.UpdateTask(ctx, instance); err != nil {
			uc.l.Errorf(ctx, "uc.propagatePattern UpdateTask %s: %v", instance.ID, err)
			return task.NewPersistenceError("propagatePattern", err)
		}
	}

	uc.l.Infof(ctx, "uc.propagatePattern: template=%s rewritten=%d", templateID, len(instances))
	return nil
}

// StopRecurringTaskSeries sets the template's recurrence to none. Existing
// instances are left untouched and keep their own now-stale pattern copy:
// once created they are independent rows, and the series simply stops
// producing further occurrences.
func (uc *implUseCase) StopRecurringTaskSeries(ctx context.Context, templateID string) (model.Task, error) {
	template, err := uc.getTask(ctx, "StopRecurringTaskSeries", templateID)
	if err != nil {
		return model.Task{}, err
	}
	if template.OriginalTaskID() != "" {
		return model.Task{}, task.ErrNotATemplate
	}

	unlock := uc.series.Lock(template.ID)
	defer unlock()

	template.Recurrence = recurrence.None()
	template.UpdatedAt = uc.now()
	if err := uc.repo.UpdateTask(ctx, template); err != nil {
		uc.l.Errorf(ctx, "uc.StopRecurringTaskSeries UpdateTask %s: %v", template.ID, err)
		return model.Task{}, task.NewPersistenceError("StopRecurringTaskSeries", err)
	}

	uc.l.Infof(ctx, "uc.StopRecurringTaskSeries: template=%s", templateID)
	return template, nil
}

// GetFutureRecurringInstances lists the template's instances with a due date
// in the future. Instances without a due date are excluded.
func (uc *implUseCase) GetFutureRecurringInstances(ctx context.Context, templateID string) ([]model.Task, error) {
	if _, err := uc.getTask(ctx, "GetFutureRecurringInstances", templateID); err != nil {
		return nil, err
	}

	now := uc.now()
	instances, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OriginalTaskID: templateID,
		DueAfter:       &now,
	})
	if err != nil {
		return nil, task.NewPersistenceError("GetFutureRecurringInstances", err)
	}
	return instances, nil
}

// DeleteFutureRecurringInstances removes every future instance of the series
// and reports how many were deleted. The template itself is not touched.
func (uc *implUseCase) DeleteFutureRecurringInstances(ctx context.Context, templateID string) (int, error) {
	instances, err := uc.GetFutureRecurringInstances(ctx, templateID)
	if err != nil {
		return 0, err
	}
	if len(instances) == 0 {
		return 0, nil
	}

	unlock := uc.series.Lock(templateID)
	defer unlock()

	ids := make([]string, len(instances))
	for i, instance := range instances {
		ids[i] = instance.ID
	}
	if err := uc.repo.DeleteTasks(ctx, ids); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteFutureRecurringInstances DeleteTasks: %v", err)
		return 0, task.NewPersistenceError("DeleteFutureRecurringInstances", err)
	}

	uc.l.Infof(ctx, "uc.DeleteFutureRecurringInstances: template=%s deleted=%d", templateID, len(ids))
	return len(ids), nil
}
