package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processOccurrencesReq accepts the count from either the query string
// (preview) or the JSON body (materialize).
func (h *handler) processOccurrencesReq(c *gin.Context, fromBody bool) (occurrencesReq, error) {
	var req occurrencesReq
	if fromBody {
		// An empty body means "use the default count".
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			return req, err
		}
		return req, nil
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdatePatternReq binds the pattern update request body.
func (h *handler) processUpdatePatternReq(c *gin.Context) (updatePatternReq, error) {
	var req updatePatternReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// taskID extracts the :id path param.
func taskID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
