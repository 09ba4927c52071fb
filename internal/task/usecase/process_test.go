package usecase

import (
	"context"
	"testing"

	"tasky/internal/model"
	"tasky/internal/recurrence"
)

func TestProcessCompletedRecurringTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("Spawns One Successor Per Completed Task", func(t *testing.T) {
		repo := newMemRepository()
		tpl := dailyTemplate("tpl", testNow)
		tpl.MarkCompleted(testNow)
		mustCreate(t, repo, tpl)
		uc := newTestUseCase(repo)

		out, err := uc.ProcessCompletedRecurringTasks(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Spawned) != 1 {
			t.Fatalf("expected 1 successor, got %d", len(out.Spawned))
		}

		successor := out.Spawned[0]
		wantDue := testNow.AddDate(0, 0, 1)
		if successor.DueDate == nil || !successor.DueDate.Equal(wantDue) {
			t.Errorf("expected successor due %s, got %v", wantDue, successor.DueDate)
		}
		if successor.Status != model.StatusPending {
			t.Errorf("expected pending successor, got %s", successor.Status)
		}
		if successor.OriginalTaskID() != "tpl" {
			t.Errorf("expected successor linked to series root, got %q", successor.OriginalTaskID())
		}

		flagged, _ := repo.GetTaskByID(ctx, "tpl")
		if !flagged.SuccessorGenerated() {
			t.Errorf("expected spawn guard set on the completed task")
		}
	})

	t.Run("Second Sweep Is A No Op", func(t *testing.T) {
		repo := newMemRepository()
		tpl := dailyTemplate("tpl", testNow)
		tpl.MarkCompleted(testNow)
		mustCreate(t, repo, tpl)
		uc := newTestUseCase(repo)

		if _, err := uc.ProcessCompletedRecurringTasks(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.ProcessCompletedRecurringTasks(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Spawned) != 0 {
			t.Errorf("expected idempotent sweep, got %d new successors", len(out.Spawned))
		}
		if len(repo.tasks) != 2 {
			t.Errorf("expected exactly one successor row, repo has %d tasks", len(repo.tasks))
		}
	})

	t.Run("Completed Instance Spawns Linked To Root", func(t *testing.T) {
		repo := newMemRepository()
		tpl := dailyTemplate("tpl", testNow)
		instDue := testNow.AddDate(0, 0, 1)
		inst := dailyTemplate("inst", instDue)
		inst.SetMeta(model.MetaOriginalTaskID, "tpl")
		inst.MarkCompleted(testNow)
		mustCreate(t, repo, tpl, inst)
		uc := newTestUseCase(repo)

		out, err := uc.ProcessCompletedRecurringTasks(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Spawned) != 1 {
			t.Fatalf("expected 1 successor, got %d", len(out.Spawned))
		}

		successor := out.Spawned[0]
		if successor.OriginalTaskID() != "tpl" {
			t.Errorf("successor must link to the series root, got %q", successor.OriginalTaskID())
		}
		// Next occurrence advances from the completed instance's own due date.
		wantDue := instDue.AddDate(0, 0, 1)
		if successor.DueDate == nil || !successor.DueDate.Equal(wantDue) {
			t.Errorf("expected due %s, got %v", wantDue, successor.DueDate)
		}
	})

	t.Run("Non Recurring Completed Tasks Are Ignored", func(t *testing.T) {
		repo := newMemRepository()
		plain := dailyTemplate("plain", testNow)
		plain.Recurrence = recurrence.None()
		plain.MarkCompleted(testNow)
		mustCreate(t, repo, plain)
		uc := newTestUseCase(repo)

		out, err := uc.ProcessCompletedRecurringTasks(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Spawned) != 0 {
			t.Errorf("expected nothing spawned, got %d", len(out.Spawned))
		}
	})

	t.Run("Exhausted Series Spawns Nothing", func(t *testing.T) {
		repo := newMemRepository()
		tpl := dailyTemplate("tpl", testNow)
		max := 1
		tpl.Recurrence.MaxOccurrences = &max
		tpl.MarkCompleted(testNow)
		mustCreate(t, repo, tpl)
		uc := newTestUseCase(repo)

		out, err := uc.ProcessCompletedRecurringTasks(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Spawned) != 0 {
			t.Errorf("expected bounded series to spawn nothing, got %d", len(out.Spawned))
		}
	})

	t.Run("Malformed Series Is Skipped Not Fatal", func(t *testing.T) {
		repo := newMemRepository()
		broken := dailyTemplate("broken", testNow)
		broken.DueDate = nil
		broken.MarkCompleted(testNow)
		healthy := dailyTemplate("healthy", testNow)
		healthy.MarkCompleted(testNow)
		mustCreate(t, repo, broken, healthy)
		uc := newTestUseCase(repo)

		out, err := uc.ProcessCompletedRecurringTasks(ctx)
		if err != nil {
			t.Fatalf("sweep must not fail on one malformed series: %v", err)
		}
		if len(out.Spawned) != 1 {
			t.Errorf("expected the healthy series to still spawn, got %d", len(out.Spawned))
		}
	})
}
