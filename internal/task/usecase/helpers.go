package usecase

import (
	"context"
	"errors"
	"sync"

	"tasky/internal/model"
	"tasky/internal/recurrence"
	"tasky/internal/task"
	"tasky/internal/task/repository"
)

// keyedMutex hands out one mutex per key. Entries are never reaped; series
// ids are low-cardinality and a mutex is 8 bytes.
type keyedMutex struct {
	mu sync.Map // string -> *sync.Mutex
}

// Lock acquires the mutex for key and returns its unlock func.
func (k *keyedMutex) Lock(key string) func() {
	v, _ := k.mu.LoadOrStore(key, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// getTask fetches a task, translating the repository's not-found sentinel
// into the domain one and wrapping everything else as a persistence failure.
func (uc *implUseCase) getTask(ctx context.Context, op, id string) (model.Task, error) {
	t, err := uc.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		return model.Task{}, task.NewPersistenceError(op, err)
	}
	return t, nil
}

// seriesCount returns the cardinality the MaxOccurrences cap is evaluated
// against: the template plus its currently existing instances. Instances
// deleted in the past no longer count toward the cap.
func (uc *implUseCase) seriesCount(ctx context.Context, templateID string) (int, error) {
	instances, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{OriginalTaskID: templateID})
	if err != nil {
		return 0, err
	}
	return 1 + len(instances), nil
}

// requireTemplateDueDate enforces the generator's precondition: a recurring
// template must carry a due date to anchor the series.
func requireTemplateDueDate(t model.Task) error {
	if t.DueDate == nil {
		return &recurrence.InvalidPatternError{Reason: "template due date is required for recurring tasks"}
	}
	return nil
}
