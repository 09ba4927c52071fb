package http

import (
	"errors"
	"net/http"

	"tasky/internal/model"
	"tasky/internal/recurrence"
	"tasky/internal/task"
	"tasky/internal/task/repository"
	pkgErrors "tasky/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
//
// A short count from a bounded series is NOT an error and never reaches this
// function: callers distinguish "fewer instances than requested" from a
// failure purely by whether an error was produced.
func (h *handler) mapError(err error) error {
	var patternErr *recurrence.InvalidPatternError
	if errors.As(err, &patternErr) {
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, patternErr.Error())
	}

	var persistErr *task.PersistenceError
	if errors.As(err, &persistErr) {
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "storage failure, please retry")
	}

	switch {
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, model.ErrSubTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateTaskID):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrNegativeCount),
		errors.Is(err, task.ErrNotATemplate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
