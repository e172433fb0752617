package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics records request and conversion spans in Sentry. Spans are
// dropped by the SDK when Sentry is not initialized.
type SentryMetrics struct{}

func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{}
}

// RecordAPIRequest records one finished request on the route it matched
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	status := sentry.SpanStatusOK
	if statusCode >= http.StatusInternalServerError {
		status = sentry.SpanStatusInternalError
	} else if statusCode >= http.StatusBadRequest {
		status = sentry.SpanStatusInvalidArgument
	}
	m.finish(ctx, "api.request", "API Request: "+endpoint, status, map[string]string{
		"endpoint":    endpoint,
		"status_code": strconv.Itoa(statusCode),
	}, duration)
}

// RecordConversion records one note conversion (parse, number, frequency, ...)
func (m *SentryMetrics) RecordConversion(ctx context.Context, kind, tuning string, success bool) {
	status := sentry.SpanStatusOK
	if !success {
		status = sentry.SpanStatusInvalidArgument
	}
	m.finish(ctx, "note.convert", "Note Conversion: "+kind, status, map[string]string{
		"kind":   kind,
		"tuning": tuning,
	}, 0)
}

func (m *SentryMetrics) finish(ctx context.Context, op, description string, status sentry.SpanStatus, tags map[string]string, duration time.Duration) {
	span := sentry.StartSpan(ctx, op)
	defer span.Finish()

	for k, v := range tags {
		span.SetTag(k, v)
	}
	if duration > 0 {
		span.SetData("duration_ms", duration.Milliseconds())
	}
	span.Status = status
	span.Description = description
}
