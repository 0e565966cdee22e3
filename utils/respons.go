package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// InternalErrorMessage is the only message a 500 response ever carries.
	InternalErrorMessage = "Internal Server Error"

	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError writes {"error": message}. For 500s the message is replaced
// by the generic one and err is logged instead.
func RespondError(c *gin.Context, code int, message string, err error) {
	if code >= http.StatusInternalServerError {
		if err != nil && ErrorLogger != nil {
			ErrorLogger.WithField("request_id", c.GetString(RequestIDKey)).
				Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		}
		message = InternalErrorMessage
	}
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}
