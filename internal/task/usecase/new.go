package usecase

import (
	"time"

	"github.com/google/uuid"

	"tasky/internal/task/repository"
	"tasky/pkg/gcalendar"
	pkgLog "tasky/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	calendar   *gcalendar.Client // optional; nil disables mirroring
	calendarID string
	timezone   string

	// Injected so generation stays deterministic under test. Production
	// wiring uses time.Now and uuid.NewString.
	now   func() time.Time
	newID func() string

	// series serializes complete→spawn and pattern mutations per series
	// root, so two concurrent sweeps cannot double-spawn a successor.
	series keyedMutex
}

// New creates a new task UseCase instance. calendar may be nil when Google
// Calendar mirroring is not configured.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}
