package usecase

import (
	"context"
	"fmt"
	"time"

	"tasky/internal/model"
	"tasky/internal/recurrence"
	"tasky/internal/task"
	"tasky/pkg/gcalendar"
)

// GenerateFutureInstances computes up to count future occurrences of a
// recurring template without persisting anything. Used for previews; the
// result is exactly what CreateFutureInstances would persist.
func (uc *implUseCase) GenerateFutureInstances(ctx context.Context, templateID string, count int) ([]model.Task, error) {
	if count < 0 {
		return nil, task.ErrNegativeCount
	}

	template, err := uc.getTask(ctx, "GenerateFutureInstances", templateID)
	if err != nil {
		return nil, err
	}

	return uc.generateInstances(ctx, template, count)
}

// CreateFutureInstances generates and persists up to count occurrences,
// returning the subset actually created. Each instance is an independent
// write: a failure aborts the batch but already-persisted instances stay.
func (uc *implUseCase) CreateFutureInstances(ctx context.Context, templateID string, count int) ([]model.Task, error) {
	if count < 0 {
		return nil, task.ErrNegativeCount
	}

	template, err := uc.getTask(ctx, "CreateFutureInstances", templateID)
	if err != nil {
		return nil, err
	}

	unlock := uc.series.Lock(template.SeriesRootID())
	defer unlock()

	instances, err := uc.generateInstances(ctx, template, count)
	if err != nil {
		return nil, err
	}

	created := make([]model.Task, 0, len(instances))
	for _, instance := range instances {
		if err := uc.repo.CreateTask(ctx, instance); err != nil {
			uc.l.Errorf(ctx, "uc.CreateFutureInstances CreateTask %s: %v", instance.ID, err)
			return created, task.NewPersistenceError("CreateFutureInstances", err)
		}
		uc.tryMirrorCalendarEvent(ctx, instance)
		created = append(created, instance)
	}

	uc.l.Infof(ctx, "uc.CreateFutureInstances: template=%s requested=%d created=%d", templateID, count, len(created))
	return created, nil
}

// generateInstances is the shared read-only expansion path. A template with
// TypeNone produces nothing regardless of its other recurrence fields.
func (uc *implUseCase) generateInstances(ctx context.Context, template model.Task, count int) ([]model.Task, error) {
	if !template.IsRecurring() {
		return nil, nil
	}
	if err := requireTemplateDueDate(template); err != nil {
		return nil, err
	}

	existing, err := uc.seriesCount(ctx, template.SeriesRootID())
	if err != nil {
		return nil, task.NewPersistenceError("generateInstances", err)
	}

	dueDates, err := recurrence.Expand(*template.DueDate, template.Recurrence, count, existing)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	instances := make([]model.Task, 0, len(dueDates))
	for _, due := range dueDates {
		instances = append(instances, uc.buildInstance(template, due, now))
	}
	return instances, nil
}

// buildInstance derives one occurrence of template due at dueDate. Instances
// are fresh pending rows: subtasks are not inherited, completion state and
// timestamps are reset, and the metadata back-reference points at the series
// root so chains of instances never form.
func (uc *implUseCase) buildInstance(template model.Task, dueDate, now time.Time) model.Task {
	due := dueDate
	instance := model.Task{
		ID:          uc.newID(),
		Title:       template.Title,
		Description: template.Description,
		DueDate:     &due,
		Status:      model.StatusPending,
		Priority:    template.Priority,
		Recurrence:  template.Recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	instance.SetMeta(model.MetaOriginalTaskID, template.SeriesRootID())
	instance.SetMeta(model.MetaGeneratedBy, model.GeneratedByRecurrence)
	return instance
}

// tryMirrorCalendarEvent mirrors a persisted occurrence to Google Calendar.
// Mirroring is best-effort: a calendar failure never fails the batch.
func (uc *implUseCase) tryMirrorCalendarEvent(ctx context.Context, instance model.Task) {
	if uc.calendar == nil || instance.DueDate == nil {
		return
	}

	start := *instance.DueDate
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     instance.Title,
		Description: fmt.Sprintf("%s\n\nTasky occurrence %s", instance.Description, instance.ID),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.tryMirrorCalendarEvent: calendar mirror failed for %s (non-fatal): %v", instance.ID, err)
	}
}
