package task

import (
	"context"

	"tasky/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, input ListTasksInput) ([]model.Task, error)
	Delete(ctx context.Context, id string) error

	// Completion
	Complete(ctx context.Context, id string) (model.Task, error)

	// SubTasks
	AddSubTask(ctx context.Context, taskID, title string) (model.Task, error)
	SetSubTaskCompletion(ctx context.Context, taskID, subTaskID string, completed bool) (model.Task, error)
	RemoveSubTask(ctx context.Context, taskID, subTaskID string) (model.Task, error)

	// Recurring series lifecycle
	GenerateFutureInstances(ctx context.Context, templateID string, count int) ([]model.Task, error)
	CreateFutureInstances(ctx context.Context, templateID string, count int) ([]model.Task, error)
	ProcessCompletedRecurringTasks(ctx context.Context) (SweepOutput, error)
	UpdateRecurringTaskPattern(ctx context.Context, input UpdatePatternInput) (model.Task, error)
	StopRecurringTaskSeries(ctx context.Context, templateID string) (model.Task, error)
	GetFutureRecurringInstances(ctx context.Context, templateID string) ([]model.Task, error)
	DeleteFutureRecurringInstances(ctx context.Context, templateID string) (int, error)
}
