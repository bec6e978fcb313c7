package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klarsen/folio/internal/utils"
)

// APIError is the error body for every failing response. The frontend
// relies on this exact shape; do not add fields.
type APIError struct {
	Message string `json:"message"`
}

// writeError maps an error to its HTTP status and a safe message. Causes
// of 5xx responses are recorded on the gin context for the request logger
// and never leaked to the client.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, APIError{Message: "Internal server error"})
		return
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{Message: ae.Message})
		return
	}

	c.JSON(status, APIError{Message: http.StatusText(status)})
}
