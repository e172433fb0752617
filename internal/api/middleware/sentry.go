package middleware

import (
	"io"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/pitchkit/internal/logger"
	"github.com/Conceptual-Machines/pitchkit/internal/metrics"
	"github.com/Conceptual-Machines/pitchkit/internal/models"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sentryFlushTimeout = 2 * time.Second
	requestIDHeader    = "X-Request-ID"
)

var sentryMetrics = metrics.NewSentryMetrics()

// RequestTracking adds a request ID, logs completion and records metrics.
// An incoming X-Request-ID is reused when present.
func RequestTracking(cloudwatch *metrics.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)
		statusCode := c.Writer.Status()

		// FullPath keeps metric cardinality bounded (":name" instead of every note).
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		fields := logger.Fields{
			"request_id":  requestID,
			"duration_ms": duration.Milliseconds(),
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"client_ip":   c.ClientIP(),
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.Error("Request failed with server error", nil, fields)
		case statusCode >= http.StatusBadRequest:
			logger.Warn("Request failed with client error", fields)
		default:
			logger.Info("Request completed", fields)
		}

		sentryMetrics.RecordAPIRequest(c.Request.Context(), endpoint, statusCode, duration)
		cloudwatch.RecordAPIRequest(endpoint, statusCode, duration)
	}
}

// SentryMiddleware returns the Sentry middleware with custom configuration
func SentryMiddleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         sentryFlushTimeout,
	})
}

// Recovery turns a panic into a 500 ErrorResponse. SentryMiddleware has already
// reported the panic by the time it reaches here, so this only logs it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		requestID := c.GetString("request_id")
		logger.Error("Panic recovered", nil, logger.Fields{
			"request_id": requestID,
			"panic":      err,
			"path":       c.Request.URL.Path,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Kind:      "internal",
			RequestID: requestID,
		})
	})
}
