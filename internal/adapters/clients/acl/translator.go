package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/clients"
	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// maxBodyBytes caps how much of a downstream body is read into memory.
// Anything past it is dropped with a warning.
const maxBodyBytes = 4 << 20

// BaseAdapter provides common functionality for ACL adapters.
// Embed this in your service-specific adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// ServiceName returns the name of the external service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Exchange sends req once and reads the whole body as text, whatever the
// status. Failures are mapped with MapHTTPError; the body and status are
// returned in both cases so callers can log them.
func (a *BaseAdapter) Exchange(ctx context.Context, req *http.Request) ([]byte, int, error) {
	resp, err := a.client.Do(ctx, req)
	if err != nil {
		return nil, 0, MapHTTPError(0, nil, err, a.serviceName)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, resp.StatusCode, MapHTTPError(0, nil, fmt.Errorf("reading response body: %w", err), a.serviceName)
	}

	if len(body) > maxBodyBytes {
		body = body[:maxBodyBytes]
		logging.FromContext(ctx).WarnContext(ctx, "response body truncated",
			slog.String("downstream", a.serviceName),
			slog.Int("status", resp.StatusCode),
			slog.Int("limit_bytes", maxBodyBytes),
		)
	}

	return body, resp.StatusCode, MapHTTPError(resp.StatusCode, body, nil, a.serviceName)
}

// Get performs a GET request against the client's base URL.
// The path should be an absolute path starting with "/".
func (a *BaseAdapter) Get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.client.URL(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	body, _, err := a.Exchange(ctx, req)

	return body, err
}

// ErrEmptyBody is returned when a JSON body was expected but none arrived.
var ErrEmptyBody = errors.New("response body is empty")

// DecodeResponse decodes a JSON response body into the target type.
func DecodeResponse[T any](body []byte) (*T, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// DecodeJSONOrText returns body decoded as generic JSON, or the raw text
// when it does not parse.
func DecodeJSONOrText(body []byte) any {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}

	return decoded
}
