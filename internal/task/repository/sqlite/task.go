package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tasky/internal/model"
	"tasky/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, t model.Task) error {
	record, err := toRecord(t)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", repository.ErrDuplicateTaskID, t.ID)
		}
		r.l.Errorf(ctx, "sqlite.CreateTask %s: %v", t.ID, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}

func (r *implRepository) GetTaskByID(ctx context.Context, id string) (model.Task, error) {
	var record taskRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Task{}, repository.ErrTaskNotFound
		}
		r.l.Errorf(ctx, "sqlite.GetTaskByID %s: %v", id, err)
		return model.Task{}, err
	}
	return fromRecord(record)
}

func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) error {
	record, err := toRecord(t)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&taskRecord{}).Where("id = ?", t.ID).
		Select("*").Omit("created_at").Updates(record)
	if res.Error != nil {
		r.l.Errorf(ctx, "sqlite.UpdateTask %s: %v", t.ID, res.Error)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}
	return nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRecord{}).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.DeleteTask %s: %v", id, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) DeleteTasks(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&taskRecord{}).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.DeleteTasks: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	var records []taskRecord
	if err := r.db.WithContext(ctx).Order("due_date, created_at").Find(&records).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.GetAllTasks: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return fromRecords(records)
}

func (r *implRepository) GetTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	return r.ListTasks(ctx, repository.ListTasksOptions{Status: status})
}

func (r *implRepository) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	var records []taskRecord
	like := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("title LIKE ? OR description LIKE ?", like, like).
		Order("due_date, created_at").
		Find(&records).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.SearchTasks %q: %v", query, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return fromRecords(records)
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&taskRecord{})

	if opt.Status != "" {
		q = q.Where("status = ?", string(opt.Status))
	}
	if opt.OriginalTaskID != "" {
		q = q.Where("original_task_id = ?", opt.OriginalTaskID)
	}
	if opt.DueAfter != nil {
		// Tasks without a due date cannot be "in the future"; exclude them.
		q = q.Where("due_date IS NOT NULL AND due_date > ?", *opt.DueAfter)
	}

	var records []taskRecord
	if err := q.Order("due_date, created_at").Find(&records).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.ListTasks: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return fromRecords(records)
}
