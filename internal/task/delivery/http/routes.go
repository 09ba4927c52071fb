package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The sweep lives under /recurring rather than /tasks/:id because it operates
// on every completed recurring task at once.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)

		tasks.POST("/:id/subtasks", h.AddSubTask)
		tasks.PUT("/:id/subtasks/:subTaskId", h.SetSubTaskCompletion)
		tasks.DELETE("/:id/subtasks/:subTaskId", h.RemoveSubTask)

		tasks.GET("/:id/occurrences", h.PreviewOccurrences)
		tasks.POST("/:id/occurrences", h.MaterializeOccurrences)
		tasks.PUT("/:id/recurrence", h.UpdatePattern)
		tasks.DELETE("/:id/recurrence", h.StopSeries)
		tasks.GET("/:id/instances", h.ListInstances)
		tasks.DELETE("/:id/instances", h.DeleteInstances)
	}

	recurring := rg.Group("/recurring")
	{
		recurring.POST("/sweep", h.Sweep)
	}
}
