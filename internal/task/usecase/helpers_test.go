package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tasky/internal/model"
	"tasky/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepository is an in-memory TaskRepository for usecase tests.
type memRepository struct {
	mu    sync.Mutex
	tasks map[string]model.Task

	// createErr, when set, is consulted before every insert so tests can
	// simulate storage failures mid-batch.
	createErr func(t model.Task) error
}

func newMemRepository() *memRepository {
	return &memRepository{tasks: make(map[string]model.Task)}
}

func (r *memRepository) CreateTask(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		if err := r.createErr(t); err != nil {
			return err
		}
	}
	if _, exists := r.tasks[t.ID]; exists {
		return repository.ErrDuplicateTaskID
	}
	r.tasks[t.ID] = t
	return nil
}

func (r *memRepository) GetTaskByID(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return t, nil
}

func (r *memRepository) UpdateTask(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	r.tasks[t.ID] = t
	return nil
}

func (r *memRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

func (r *memRepository) DeleteTasks(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.tasks, id)
	}
	return nil
}

func (r *memRepository) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return r.ListTasks(ctx, repository.ListTasksOptions{})
}

func (r *memRepository) GetTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	return r.ListTasks(ctx, repository.ListTasksOptions{Status: status})
}

func (r *memRepository) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		if containsFold(t.Title, query) || containsFold(t.Description, query) {
			out = append(out, t)
		}
	}
	sortByDueDate(out)
	return out, nil
}

func (r *memRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.OriginalTaskID != "" && t.OriginalTaskID() != opt.OriginalTaskID {
			continue
		}
		if opt.DueAfter != nil {
			if t.DueDate == nil || !t.DueDate.After(*opt.DueAfter) {
				continue
			}
		}
		out = append(out, t)
	}
	sortByDueDate(out)
	return out, nil
}

func sortByDueDate(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
