package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"tasky/internal/task"
	pkgLog "tasky/pkg/log"
)

// Scheduler periodically triggers the completed-recurring-task sweep. The
// recurrence core itself has no timers; this is an opt-in caller living at
// the composition root, and the sweep's spawn guard keeps overlapping runs
// safe.
type Scheduler struct {
	cron   *cron.Cron
	l      pkgLog.Logger
	taskUC task.UseCase
}

// New creates a scheduler. Call Start to begin and Stop to drain.
func New(l pkgLog.Logger, taskUC task.UseCase) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		l:      l,
		taskUC: taskUC,
	}
}

// ScheduleSweep registers the sweep to run every interval.
func (s *Scheduler) ScheduleSweep(interval time.Duration) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("sweep interval must be positive, got %s", interval)
	}

	spec := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	return s.cron.AddFunc(spec, func() {
		ctx := context.Background()
		out, err := s.taskUC.ProcessCompletedRecurringTasks(ctx)
		if err != nil {
			s.l.Errorf(ctx, "scheduler: sweep failed: %v", err)
			return
		}
		if len(out.Spawned) > 0 {
			s.l.Infof(ctx, "scheduler: sweep spawned %d successors", len(out.Spawned))
		}
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
