package repository

import (
	"context"

	"tasky/internal/model"
)

// TaskRepository defines all data access methods for the Task entity.
// The storage engine behind it is an external collaborator; the recurrence
// core only relies on this CRUD + query contract.
type TaskRepository interface {
	CreateTask(ctx context.Context, t model.Task) error
	GetTaskByID(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) error
	DeleteTask(ctx context.Context, id string) error
	DeleteTasks(ctx context.Context, ids []string) error

	GetAllTasks(ctx context.Context) ([]model.Task, error)
	GetTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error)
	SearchTasks(ctx context.Context, query string) ([]model.Task, error)

	// ListTasks applies all non-zero option fields as AND conditions.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
