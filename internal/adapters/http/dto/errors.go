// Package dto provides Data Transfer Objects for HTTP responses.
//
// The ritual endpoint answers failures in plain text. The JSON envelope here
// is used by the framework-level paths: panics, unknown routes and unhealthy
// readiness checks.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/asteria-rituals/daily-ritual/internal/domain"
	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// internalErrorMessage hides unclassified failures from callers.
const internalErrorMessage = "an internal error occurred"

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetTraceID returns the OpenTelemetry trace ID of the request, or "".
func GetTraceID(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}

	sc := trace.SpanFromContext(c.Request.Context()).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}

// MapDomainError maps an error to an HTTP status code and a plain-text body.
// The body is the message of the innermost domain error, so step wrappers
// added by the application layer never reach the caller.
func MapDomainError(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	var (
		cfgErr       *domain.ConfigurationError
		upstreamErr  *domain.UpstreamError
		transportErr *domain.TransportError
	)

	switch {
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, cfgErr.Error()

	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, upstreamErr.Error()

	case errors.As(err, &transportErr):
		return http.StatusInternalServerError, transportErr.Error()

	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// HandleError logs err and writes the mapped plain-text response.
func HandleError(c *gin.Context, err error) {
	status, message := MapDomainError(err)

	ctx := c.Request.Context()
	attrs := []any{
		slog.Int("status", status),
		slog.Any("error", err),
	}

	if traceID := GetTraceID(c); traceID != "" {
		attrs = append(attrs, slog.String("trace_id", traceID))
	}

	logging.FromContext(ctx).ErrorContext(ctx, "request failed", attrs...)

	c.String(status, message)
}
