package middlewares

import (
	"github.com/gin-gonic/gin"
)

// HttpError logs an error and writes an HTTP error response to the client.
// Server errors are logged at error level, client errors at debug.
func HttpError(c *gin.Context, message string, status int, err error) {
	logger := RequestLogger(c)
	if status >= 500 {
		logger.Error(message, "status", status, "error", err)
	} else {
		logger.Debug(message, "status", status, "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
