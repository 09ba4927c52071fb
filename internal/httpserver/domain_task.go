package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "tasky/internal/task/delivery/http"
)

// setupTaskDomain wires the task domain's HTTP handler and routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in cmd and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
