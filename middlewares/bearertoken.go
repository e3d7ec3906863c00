package middlewares

import (
	"ClinicDesk/logging"
	"ClinicDesk/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	loggerKey    = "logger"
	requestIDKey = "request_id"
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-ID"
)

// bearerToken returns the session token from, in order, a "Bearer"
// Authorization header, the session cookie or the accessToken query parameter.
func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if token := utils.SessionCookie(c); token != "" {
		return token
	}
	return c.DefaultQuery("accessToken", "")
}

// LoggingMiddleware tags the request with an id and logs it once it is served.
// Handlers reach the tagged logger through RequestLogger.
func LoggingMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)
		c.Set(loggerKey, logger.With("request_id", requestID))

		c.Next()

		logger.Info("request served",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// RequestLogger returns the request-scoped logger, or the default logger
// outside LoggingMiddleware.
func RequestLogger(c *gin.Context) *logging.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if logger, ok := v.(*logging.Logger); ok {
			return logger
		}
	}
	return logging.Default()
}
