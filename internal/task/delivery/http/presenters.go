package http

import (
	"time"

	"tasky/internal/model"
	"tasky/internal/recurrence"
	"tasky/internal/task"
)

// --- Request DTOs ---

type patternReq struct {
	Type           string     `json:"type"            binding:"required,oneof=none daily weekly monthly yearly"`
	Interval       int        `json:"interval"        binding:"omitempty,min=1"`
	DaysOfWeek     []int      `json:"days_of_week"    binding:"omitempty,dive,min=1,max=7"`
	EndDate        *time.Time `json:"end_date"`
	MaxOccurrences *int       `json:"max_occurrences" binding:"omitempty,min=1"`
}

func (r patternReq) toPattern() recurrence.Pattern {
	interval := r.Interval
	if interval == 0 {
		interval = 1
	}
	return recurrence.Pattern{
		Type:           recurrence.Type(r.Type),
		Interval:       interval,
		DaysOfWeek:     r.DaysOfWeek,
		EndDate:        r.EndDate,
		MaxOccurrences: r.MaxOccurrences,
	}
}

type createReq struct {
	Title       string      `json:"title"       binding:"required,min=1,max=255"`
	Description string      `json:"description" binding:"max=2000"`
	DueDate     *time.Time  `json:"due_date"`
	Priority    int         `json:"priority"    binding:"omitempty,min=0,max=3"`
	Recurrence  *patternReq `json:"recurrence"`
}

func (r createReq) toInput() task.CreateTaskInput {
	pattern := recurrence.None()
	if r.Recurrence != nil {
		pattern = r.Recurrence.toPattern()
	}
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    model.TaskPriority(r.Priority),
		Recurrence:  pattern,
	}
}

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending inProgress completed"`
	Query  string `form:"q"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{Status: r.Status, Query: r.Query}
}

type occurrencesReq struct {
	Count int `json:"count" form:"count" binding:"omitempty,min=0,max=100"`
}

func (r occurrencesReq) count() int {
	if r.Count == 0 {
		return 10
	}
	return r.Count
}

type updatePatternReq struct {
	Recurrence            patternReq `json:"recurrence" binding:"required"`
	UpdateFutureInstances bool       `json:"update_future_instances"`
}

type addSubTaskReq struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

type setSubTaskCompletionReq struct {
	Completed bool `json:"completed"`
}

// --- Response DTOs ---

type patternResp struct {
	Type           string     `json:"type"`
	Interval       int        `json:"interval"`
	DaysOfWeek     []int      `json:"days_of_week,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	MaxOccurrences *int       `json:"max_occurrences,omitempty"`
}

func newPatternResp(p recurrence.Pattern) patternResp {
	return patternResp{
		Type:           string(p.Type),
		Interval:       p.Interval,
		DaysOfWeek:     p.DaysOfWeek,
		EndDate:        p.EndDate,
		MaxOccurrences: p.MaxOccurrences,
	}
}

type subTaskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	SortOrder   int        `json:"sort_order"`
}

type taskResp struct {
	ID                   string            `json:"id"`
	Title                string            `json:"title"`
	Description          string            `json:"description,omitempty"`
	DueDate              *time.Time        `json:"due_date,omitempty"`
	Status               string            `json:"status"`
	Priority             int               `json:"priority"`
	Recurrence           patternResp       `json:"recurrence"`
	Metadata             map[string]string `json:"metadata,omitempty"`
	SubTasks             []subTaskResp     `json:"subtasks,omitempty"`
	CompletionPercentage float64           `json:"completion_percentage"`
	AllSubTasksCompleted bool              `json:"all_subtasks_completed"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
	CompletedAt          *time.Time        `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	subTasks := make([]subTaskResp, 0, len(t.SubTasks))
	for _, st := range t.SortedSubTasks() {
		subTasks = append(subTasks, subTaskResp{
			ID:          st.ID,
			Title:       st.Title,
			IsCompleted: st.IsCompleted,
			CompletedAt: st.CompletedAt,
			SortOrder:   st.SortOrder,
		})
	}
	return taskResp{
		ID:                   t.ID,
		Title:                t.Title,
		Description:          t.Description,
		DueDate:              t.DueDate,
		Status:               string(t.Status),
		Priority:             int(t.Priority),
		Recurrence:           newPatternResp(t.Recurrence),
		Metadata:             t.Metadata,
		SubTasks:             subTasks,
		CompletionPercentage: t.SubTaskCompletionPercentage(),
		AllSubTasksCompleted: t.AllSubTasksCompleted(),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
		CompletedAt:          t.CompletedAt,
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type instancesResp struct {
	Instances []taskResp `json:"instances"`
	Count     int        `json:"count"`
}

func newInstancesResp(instances []model.Task) instancesResp {
	return instancesResp{
		Instances: newTaskListResp(instances),
		Count:     len(instances),
	}
}

type deletedResp struct {
	Deleted int `json:"deleted"`
}

type sweepResp struct {
	Spawned []taskResp `json:"spawned"`
	Count   int        `json:"count"`
}

func newSweepResp(out task.SweepOutput) sweepResp {
	return sweepResp{
		Spawned: newTaskListResp(out.Spawned),
		Count:   len(out.Spawned),
	}
}
