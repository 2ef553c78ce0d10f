package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Mohib75/study-syncer-server/internal/auth"
	"github.com/Mohib75/study-syncer-server/internal/metrics"
	"github.com/Mohib75/study-syncer-server/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// UserKey is the gin context key holding the verified token payload.
	UserKey = "user"

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

var unauthorized = gin.H{"message": "unauthorized access"}

// SessionGuard admits requests carrying a valid session cookie and stores
// the decoded identity under UserKey. Missing and invalid tokens get the
// same 401 body.
func SessionGuard(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			metrics.AuthRejections.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			metrics.AuthRejections.Inc()
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorized)
			return
		}

		c.Set(UserKey, claims)
		c.Next()
	}
}

// RequestIDMiddleware propagates or assigns an X-Request-ID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLoggerMiddleware writes one structured access log line per request.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("requestId", c.GetString(requestIDKey)).
			Msg("request")
	}
}

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestCount.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ErrorHandlerMiddleware handles errors and returns standard format
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			log.Error().
				Err(err).
				Str("path", c.Request.URL.Path).
				Str("requestId", c.GetString(requestIDKey)).
				Msg("Request error")

			if c.Writer.Written() {
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
				Code:  "INTERNAL_ERROR",
			})
		}
	}
}
