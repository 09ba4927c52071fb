package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"tasky/internal/model"
	"tasky/internal/recurrence"
)

// taskRecord is the persisted shape of a Task. Metadata, subtasks and the
// recurrence pattern are stored as JSON columns; OriginalTaskID is a derived
// copy of metadata["original_task_id"] kept in its own indexed column so
// series queries don't have to scan JSON. The metadata map stays the source
// of truth.
type taskRecord struct {
	ID             string `gorm:"primaryKey"`
	Title          string
	Description    string
	DueDate        *time.Time `gorm:"index"`
	Status         string     `gorm:"index"`
	Priority       int
	Recurrence     string
	Metadata       string
	OriginalTaskID string `gorm:"index"`
	SubTasks       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

func (taskRecord) TableName() string { return "tasks" }

func toRecord(t model.Task) (taskRecord, error) {
	recurrenceJSON, err := json.Marshal(t.Recurrence)
	if err != nil {
		return taskRecord{}, fmt.Errorf("marshal recurrence: %w", err)
	}

	metadata := t.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return taskRecord{}, fmt.Errorf("marshal metadata: %w", err)
	}

	subTasksJSON, err := json.Marshal(t.SubTasks)
	if err != nil {
		return taskRecord{}, fmt.Errorf("marshal subtasks: %w", err)
	}

	return taskRecord{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        t.DueDate,
		Status:         string(t.Status),
		Priority:       int(t.Priority),
		Recurrence:     string(recurrenceJSON),
		Metadata:       string(metadataJSON),
		OriginalTaskID: t.OriginalTaskID(),
		SubTasks:       string(subTasksJSON),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		CompletedAt:    t.CompletedAt,
	}, nil
}

func fromRecord(r taskRecord) (model.Task, error) {
	var pattern recurrence.Pattern
	if r.Recurrence != "" {
		if err := json.Unmarshal([]byte(r.Recurrence), &pattern); err != nil {
			return model.Task{}, fmt.Errorf("unmarshal recurrence for task %s: %w", r.ID, err)
		}
	} else {
		pattern = recurrence.None()
	}

	metadata := map[string]string{}
	if r.Metadata != "" {
		if err := json.Unmarshal([]byte(r.Metadata), &metadata); err != nil {
			return model.Task{}, fmt.Errorf("unmarshal metadata for task %s: %w", r.ID, err)
		}
	}

	var subTasks []model.SubTask
	if r.SubTasks != "" {
		if err := json.Unmarshal([]byte(r.SubTasks), &subTasks); err != nil {
			return model.Task{}, fmt.Errorf("unmarshal subtasks for task %s: %w", r.ID, err)
		}
	}

	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      model.TaskStatus(r.Status),
		Priority:    model.TaskPriority(r.Priority),
		Recurrence:  pattern,
		Metadata:    metadata,
		SubTasks:    subTasks,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CompletedAt: r.CompletedAt,
	}, nil
}

func fromRecords(records []taskRecord) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(records))
	for _, r := range records {
		t, err := fromRecord(r)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
