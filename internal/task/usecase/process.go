package usecase

import (
	"context"
	"errors"

	"tasky/internal/model"
	"tasky/internal/recurrence"
	"tasky/internal/task"
)

// ProcessCompletedRecurringTasks scans for completed recurring tasks that
// have not yet spawned a successor and creates exactly one next occurrence
// for each. The successor_generated flag makes the sweep idempotent: a second
// call with no new completions returns an empty result.
//
// A completed instance spawns too, not just templates; its successor is
// linked back to the series root.
func (uc *implUseCase) ProcessCompletedRecurringTasks(ctx context.Context) (task.SweepOutput, error) {
	completed, err := uc.repo.GetTasksByStatus(ctx, model.StatusCompleted)
	if err != nil {
		return task.SweepOutput{}, task.NewPersistenceError("ProcessCompletedRecurringTasks", err)
	}

	out := task.SweepOutput{}
	for _, t := range completed {
		if !t.IsRecurring() || t.SuccessorGenerated() {
			continue
		}

		successor, err := uc.spawnSuccessor(ctx, t.ID)
		if err != nil {
			var patternErr *recurrence.InvalidPatternError
			if errors.As(err, &patternErr) {
				// A malformed series must not wedge the whole sweep.
				uc.l.Warnf(ctx, "uc.ProcessCompletedRecurringTasks: skipping %s: %v", t.ID, err)
				continue
			}
			return out, err
		}
		if successor != nil {
			out.Spawned = append(out.Spawned, *successor)
		}
	}

	if len(out.Spawned) > 0 {
		uc.l.Infof(ctx, "uc.ProcessCompletedRecurringTasks: spawned %d successors", len(out.Spawned))
	}
	return out, nil
}

// spawnSuccessor creates the single next occurrence for one completed task.
// The spawn-guard flag is checked and set under the series mutex, so two
// concurrent sweeps observing the same completed row cannot both spawn.
// Returns (nil, nil) when the flag was already set or a bound exhausted the
// series.
func (uc *implUseCase) spawnSuccessor(ctx context.Context, completedID string) (*model.Task, error) {
	// The lock key is the series root, resolved from a pre-lock read; the
	// authoritative flag check happens on the re-read below.
	pre, err := uc.getTask(ctx, "spawnSuccessor", completedID)
	if err != nil {
		return nil, err
	}
	rootID := pre.SeriesRootID()

	unlock := uc.series.Lock(rootID)
	defer unlock()

	t, err := uc.getTask(ctx, "spawnSuccessor", completedID)
	if err != nil {
		return nil, err
	}
	if !t.IsRecurring() || t.SuccessorGenerated() {
		return nil, nil
	}
	if err := requireTemplateDueDate(t); err != nil {
		return nil, err
	}

	existing, err := uc.seriesCount(ctx, rootID)
	if err != nil {
		return nil, task.NewPersistenceError("spawnSuccessor", err)
	}

	dueDates, err := recurrence.Expand(*t.DueDate, t.Recurrence, 1, existing)
	if err != nil {
		return nil, err
	}
	if len(dueDates) == 0 {
		// Bounded out; normal termination, nothing to spawn.
		return nil, nil
	}

	successor := uc.buildInstance(t, dueDates[0], uc.now())
	// Instances link to the series root, never to the completed instance.
	successor.SetMeta(model.MetaOriginalTaskID, rootID)

	if err := uc.repo.CreateTask(ctx, successor); err != nil {
		uc.l.Errorf(ctx, "uc.spawnSuccessor CreateTask %s: %v", successor.ID, err)
		return nil, task.NewPersistenceError("spawnSuccessor", err)
	}

	t.SetMeta(model.MetaSuccessorGenerated, "true")
	t.UpdatedAt = uc.now()
	if err := uc.repo.UpdateTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.spawnSuccessor UpdateTask %s: %v", t.ID, err)
		return nil, task.NewPersistenceError("spawnSuccessor", err)
	}

	uc.tryMirrorCalendarEvent(ctx, successor)
	return &successor, nil
}
