package http

import (
	"github.com/gin-gonic/gin"

	"tasky/internal/task"
	"tasky/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task, optionally with a recurrence pattern. Recurring tasks require a due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Invalid recurrence pattern"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks, optionally filtered by status and/or a substring query.
// @Tags        Tasks
// @Produce     json
// @Param       status query string false "Filter by status (pending/inProgress/completed)"
// @Param       q      query string false "Substring search on title/description"
// @Success     200 {array} taskResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Get(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes one task. Deleting a series template does not cascade to its instances.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task completed. Recurring successors are spawned by the sweep endpoint, not here.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// AddSubTask godoc
// @Summary     Add a subtask
// @Tags        SubTasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body addSubTaskReq true "SubTask data"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/subtasks [POST]
func (h *handler) AddSubTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req addSubTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.AddSubTask(ctx, id, req.Title)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddSubTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// SetSubTaskCompletion godoc
// @Summary     Mark a subtask completed or incomplete
// @Tags        SubTasks
// @Accept      json
// @Produce     json
// @Param       id        path string                  true "Task ID"
// @Param       subTaskId path string                  true "SubTask ID"
// @Param       body      body setSubTaskCompletionReq true "Completion state"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/subtasks/{subTaskId} [PUT]
func (h *handler) SetSubTaskCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	subTaskID := c.Param("subTaskId")

	var req setSubTaskCompletionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.SetSubTaskCompletion(ctx, id, subTaskID, req.Completed)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetSubTaskCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// RemoveSubTask godoc
// @Summary     Remove a subtask
// @Tags        SubTasks
// @Produce     json
// @Param       id        path string true "Task ID"
// @Param       subTaskId path string true "SubTask ID"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/subtasks/{subTaskId} [DELETE]
func (h *handler) RemoveSubTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.RemoveSubTask(ctx, id, c.Param("subTaskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveSubTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// PreviewOccurrences godoc
// @Summary     Preview future occurrences
// @Description Computes future occurrences of a recurring template without persisting them.
// @Tags        Recurrence
// @Produce     json
// @Param       id    path  string true  "Template task ID"
// @Param       count query int    false "How many occurrences (default 10, max 100)"
// @Success     200 {object} instancesResp
// @Failure     422 {object} response.Resp "Invalid recurrence pattern"
// @Router      /api/v1/tasks/{id}/occurrences [GET]
func (h *handler) PreviewOccurrences(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processOccurrencesReq(c, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	instances, err := h.uc.GenerateFutureInstances(ctx, id, req.count())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateFutureInstances: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newInstancesResp(instances))
}

// MaterializeOccurrences godoc
// @Summary     Create future occurrences
// @Description Generates and persists future occurrences of a recurring template. May return fewer than requested when a series bound is hit.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       id   path string         true  "Template task ID"
// @Param       body body occurrencesReq false "How many occurrences (default 10)"
// @Success     200 {object} instancesResp
// @Router      /api/v1/tasks/{id}/occurrences [POST]
func (h *handler) MaterializeOccurrences(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processOccurrencesReq(c, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.CreateFutureInstances(ctx, id, req.count())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFutureInstances: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newInstancesResp(created))
}

// UpdatePattern godoc
// @Summary     Update a series' recurrence pattern
// @Description Rewrites the template's pattern; optionally propagates it to future instances. Instance due dates are never recomputed.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Template task ID"
// @Param       body body updatePatternReq true "New pattern"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/recurrence [PUT]
func (h *handler) UpdatePattern(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processUpdatePatternReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.UpdateRecurringTaskPattern(ctx, task.UpdatePatternInput{
		TemplateID:            id,
		Pattern:               req.Recurrence.toPattern(),
		UpdateFutureInstances: req.UpdateFutureInstances,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateRecurringTaskPattern: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// StopSeries godoc
// @Summary     Stop a recurring series
// @Description Sets the template's recurrence to none. Already-generated instances are left untouched.
// @Tags        Recurrence
// @Produce     json
// @Param       id path string true "Template task ID"
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/{id}/recurrence [DELETE]
func (h *handler) StopSeries(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.StopRecurringTaskSeries(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.StopRecurringTaskSeries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// ListInstances godoc
// @Summary     List future instances of a series
// @Tags        Recurrence
// @Produce     json
// @Param       id path string true "Template task ID"
// @Success     200 {object} instancesResp
// @Router      /api/v1/tasks/{id}/instances [GET]
func (h *handler) ListInstances(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	instances, err := h.uc.GetFutureRecurringInstances(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetFutureRecurringInstances: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newInstancesResp(instances))
}

// DeleteInstances godoc
// @Summary     Delete future instances of a series
// @Description Removes every future instance; the template itself is untouched.
// @Tags        Recurrence
// @Produce     json
// @Param       id path string true "Template task ID"
// @Success     200 {object} deletedResp
// @Router      /api/v1/tasks/{id}/instances [DELETE]
func (h *handler) DeleteInstances(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := taskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	deleted, err := h.uc.DeleteFutureRecurringInstances(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteFutureRecurringInstances: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deletedResp{Deleted: deleted})
}

// Sweep godoc
// @Summary     Spawn successors for completed recurring tasks
// @Description Creates one next occurrence per completed recurring task that has not yet spawned. Idempotent.
// @Tags        Recurrence
// @Produce     json
// @Success     200 {object} sweepResp
// @Router      /api/v1/recurring/sweep [POST]
func (h *handler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ProcessCompletedRecurringTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessCompletedRecurringTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSweepResp(out))
}
