// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrMisconfigured indicates required runtime configuration is absent.
	ErrMisconfigured = errors.New("misconfigured")

	// ErrUpstreamRejected indicates a downstream API answered with a non-success status.
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrTransport indicates a downstream request never completed.
	ErrTransport = errors.New("transport failure")
)

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// ConfigurationError lists the environment variables that must be set, or
// fixed, before a ritual can be published.
type ConfigurationError struct {
	Missing []string
	Invalid []string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Missing required environment variables: "+strings.Join(e.Missing, ", "))
	}

	if len(e.Invalid) > 0 {
		parts = append(parts, "Invalid environment variables: "+strings.Join(e.Invalid, ", "))
	}

	return strings.Join(parts, "; ")
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConfigurationError) Unwrap() error {
	return ErrMisconfigured
}

// NewConfigurationError creates a configuration error naming the missing variables.
func NewConfigurationError(missing ...string) error {
	return &ConfigurationError{Missing: missing}
}

// UpstreamError carries a non-success response from a downstream API verbatim.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.Service, e.Status, e.Body)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamRejected
}

// NewUpstreamError creates an upstream rejection error.
func NewUpstreamError(service string, status int, body string) error {
	return &UpstreamError{Service: service, Status: status, Body: body}
}

// TransportError wraps a request that never produced a response.
type TransportError struct {
	Service string
	Cause   error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach %s API: %v", e.Service, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Cause}
}

// NewTransportError creates a transport error.
func NewTransportError(service string, cause error) error {
	return &TransportError{Service: service, Cause: cause}
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsMisconfigured checks if an error is a configuration error.
func IsMisconfigured(err error) bool {
	return errors.Is(err, ErrMisconfigured)
}

// IsUpstreamRejected checks if an error is an upstream rejection.
func IsUpstreamRejected(err error) bool {
	return errors.Is(err, ErrUpstreamRejected)
}

// IsTransport checks if an error is a transport failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
