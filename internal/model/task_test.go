package model_test

import (
	"testing"
	"time"

	"tasky/internal/model"
	"tasky/internal/recurrence"
)

func TestSubTaskCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{name: "No subtasks", completed: 0, total: 0, want: 0.0},
		{name: "None completed", completed: 0, total: 3, want: 0.0},
		{name: "Half completed", completed: 2, total: 4, want: 0.5},
		{name: "All completed", completed: 3, total: 3, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{ID: "t1", Title: "Task"}
			for i := 0; i < tt.total; i++ {
				st := task.AddSubTask(string(rune('a'+i)), "step")
				if i < tt.completed {
					_ = task.MarkSubTaskCompleted(st.ID, time.Now())
				}
			}
			if got := task.SubTaskCompletionPercentage(); got != tt.want {
				t.Errorf("expected %.2f, got %.2f", tt.want, got)
			}
		})
	}
}

func TestAllSubTasksCompleted(t *testing.T) {
	task := model.Task{ID: "t1", Title: "Task"}
	if task.AllSubTasksCompleted() {
		t.Errorf("zero subtasks must not count as all completed")
	}

	a := task.AddSubTask("a", "first")
	b := task.AddSubTask("b", "second")
	if task.AllSubTasksCompleted() {
		t.Errorf("incomplete subtasks must not count as all completed")
	}

	now := time.Now()
	_ = task.MarkSubTaskCompleted(a.ID, now)
	_ = task.MarkSubTaskCompleted(b.ID, now)
	if !task.AllSubTasksCompleted() {
		t.Errorf("expected all subtasks completed")
	}
}

func TestSubTaskCompletionStampsTimestamp(t *testing.T) {
	task := model.Task{ID: "t1", Title: "Task"}
	st := task.AddSubTask("a", "step")
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := task.MarkSubTaskCompleted(st.ID, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.SubTasks[0].CompletedAt == nil || !task.SubTasks[0].CompletedAt.Equal(now) {
		t.Errorf("expected CompletedAt stamped to %s", now)
	}

	if err := task.MarkSubTaskIncomplete(st.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.SubTasks[0].IsCompleted || task.SubTasks[0].CompletedAt != nil {
		t.Errorf("expected completion state and timestamp cleared")
	}

	if err := task.MarkSubTaskCompleted("missing", now); err != model.ErrSubTaskNotFound {
		t.Errorf("expected ErrSubTaskNotFound, got %v", err)
	}
}

func TestAddSubTaskSortOrder(t *testing.T) {
	task := model.Task{ID: "t1", Title: "Task"}
	a := task.AddSubTask("a", "first")
	b := task.AddSubTask("b", "second")
	if a.SortOrder != 0 || b.SortOrder != 1 {
		t.Fatalf("expected sort orders 0 and 1, got %d and %d", a.SortOrder, b.SortOrder)
	}

	// Removal leaves a gap; the next append still goes after the highest.
	if err := task.RemoveSubTask(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := task.AddSubTask("c", "third")
	if c.SortOrder != 2 {
		t.Errorf("expected sort order 2 after removal, got %d", c.SortOrder)
	}
}

func TestSeriesRootID(t *testing.T) {
	template := model.Task{ID: "tpl", Title: "Template"}
	if got := template.SeriesRootID(); got != "tpl" {
		t.Errorf("expected template to be its own root, got %q", got)
	}

	instance := model.Task{ID: "inst", Title: "Instance"}
	instance.SetMeta(model.MetaOriginalTaskID, "tpl")
	if got := instance.SeriesRootID(); got != "tpl" {
		t.Errorf("expected instance root %q, got %q", "tpl", got)
	}
}

func TestMarkCompleted(t *testing.T) {
	task := model.Task{ID: "t1", Title: "Task", Status: model.StatusPending}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	task.MarkCompleted(now)

	if task.Status != model.StatusCompleted {
		t.Errorf("expected status completed, got %s", task.Status)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Errorf("expected CompletedAt stamped")
	}
}

func TestTaskValidate(t *testing.T) {
	task := model.Task{ID: "t1", Title: "Task", Recurrence: recurrence.None()}
	if err := task.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	task.SubTasks = append(task.SubTasks, model.SubTask{ID: "a", TaskID: "other", Title: "stray"})
	if err := task.Validate(); err == nil {
		t.Errorf("expected error for subtask owned by another task")
	}
}
