package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tasky/internal/model"
	"tasky/internal/task/repository"
	pkgLog "tasky/pkg/log"
)

// Repository is a read-through cache decorator over a TaskRepository.
//
// Only by-id reads are cached. Every successful write through this instance
// evicts the affected entries — eviction, never update-in-place — so a stale
// row can never be served after the underlying row changed or disappeared.
// List and search queries always go to the backing store.
type Repository struct {
	next  repository.TaskRepository
	tasks *expirable.LRU[string, model.Task]
	l     pkgLog.Logger
}

// New wraps next with an LRU of the given capacity and TTL.
func New(next repository.TaskRepository, capacity int, ttl time.Duration, l pkgLog.Logger) *Repository {
	return &Repository{
		next:  next,
		tasks: expirable.NewLRU[string, model.Task](capacity, nil, ttl),
		l:     l,
	}
}

func (r *Repository) CreateTask(ctx context.Context, t model.Task) error {
	if err := r.next.CreateTask(ctx, t); err != nil {
		return err
	}
	// A row with this id may have existed and been deleted behind our back;
	// evict rather than populate so the next read observes the store.
	r.tasks.Remove(t.ID)
	return nil
}

func (r *Repository) GetTaskByID(ctx context.Context, id string) (model.Task, error) {
	if t, ok := r.tasks.Get(id); ok {
		return t, nil
	}

	t, err := r.next.GetTaskByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	r.tasks.Add(id, t)
	return t, nil
}

func (r *Repository) UpdateTask(ctx context.Context, t model.Task) error {
	if err := r.next.UpdateTask(ctx, t); err != nil {
		return err
	}
	r.tasks.Remove(t.ID)
	return nil
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	if err := r.next.DeleteTask(ctx, id); err != nil {
		return err
	}
	r.tasks.Remove(id)
	return nil
}

func (r *Repository) DeleteTasks(ctx context.Context, ids []string) error {
	if err := r.next.DeleteTasks(ctx, ids); err != nil {
		return err
	}
	for _, id := range ids {
		r.tasks.Remove(id)
	}
	return nil
}

func (r *Repository) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return r.next.GetAllTasks(ctx)
}

func (r *Repository) GetTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	return r.next.GetTasksByStatus(ctx, status)
}

func (r *Repository) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	return r.next.SearchTasks(ctx, query)
}

func (r *Repository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return r.next.ListTasks(ctx, opt)
}

// Purge drops every cached entry. Used on lifecycle boundaries (shutdown,
// tests); normal operation relies on per-id eviction.
func (r *Repository) Purge() {
	r.tasks.Purge()
}

var _ repository.TaskRepository = (*Repository)(nil)
