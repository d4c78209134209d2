// Package clients provides the instrumented HTTP client used by the
// weather and Craft adapters.
package clients

import "errors"

// ErrRequestFailed wraps any failure that produced no HTTP response:
// DNS, connect, TLS, timeout or cancellation. Adapters translate it to
// domain.TransportError or domain.UnavailableError.
var ErrRequestFailed = errors.New("request failed")
