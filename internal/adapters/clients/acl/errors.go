package acl

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/asteria-rituals/daily-ritual/internal/domain"
)

// MapHTTPError maps the outcome of one downstream exchange to a domain error.
//
// Parameters:
//   - status: The HTTP status code (ignored when clientErr is set)
//   - body: The response body read as text
//   - clientErr: Any error from the HTTP client (no response received)
//   - serviceName: Name of the external service for error context
//
// A client error becomes a domain.TransportError. A non-2xx status becomes a
// domain.UpstreamError carrying the body verbatim. Success returns nil.
func MapHTTPError(status int, body []byte, clientErr error, serviceName string) error {
	if clientErr != nil {
		return domain.NewTransportError(serviceName, clientErr)
	}

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return domain.NewUpstreamError(serviceName, status, string(body))
}

// AsUnavailable folds any downstream failure into a domain.UnavailableError
// for callers that treat the dependency as optional.
func AsUnavailable(err error, serviceName string) error {
	if err == nil {
		return nil
	}

	var unavailable *domain.UnavailableError
	if errors.As(err, &unavailable) {
		return err
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("HTTP %d", upstream.Status))
	}

	var transport *domain.TransportError
	if errors.As(err, &transport) {
		return domain.NewUnavailableError(serviceName, transport.Cause.Error())
	}

	return domain.NewUnavailableError(serviceName, err.Error())
}
