package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/clients"
	"github.com/asteria-rituals/daily-ritual/internal/domain"
	"github.com/asteria-rituals/daily-ritual/internal/platform/logging"
)

// CraftServiceName is the name Craft failures are reported under.
const CraftServiceName = "Craft"

const blocksPath = "/blocks"

// CraftClient adapts the Craft blocks API to ports.BlockPublisher.
// The destination and token come with every call, so one client serves
// any configuration.
type CraftClient struct {
	BaseAdapter
	logger *slog.Logger
}

// NewCraftClient creates a Craft adapter on top of client. The client's
// base URL is ignored; each Publish call names its own.
func NewCraftClient(client *clients.Client, logger *slog.Logger) *CraftClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &CraftClient{
		BaseAdapter: NewBaseAdapter(client, CraftServiceName),
		logger:      logger.With(slog.String("component", "acl.CraftClient")),
	}
}

// Publish posts the blocks to {dest.BaseURL}/blocks with bearer auth.
// A non-2xx reply is a domain.UpstreamError and a request that never
// completes is a domain.TransportError. The reply body is decoded as JSON
// when possible and kept as text otherwise.
// Implements ports.BlockPublisher.
func (c *CraftClient) Publish(
	ctx context.Context,
	dest domain.Publishing,
	payload domain.PublishRequest,
) (*domain.PublishResult, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding blocks: %w", err)
	}

	endpoint := strings.TrimSuffix(dest.BaseURL, "/") + blocksPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, domain.NewTransportError(CraftServiceName, err)
	}

	req.Header.Set("Authorization", "Bearer "+dest.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Log(ctx, logging.LevelTrace, "publishing blocks",
		slog.String("url", endpoint),
		slog.Int("blocks", len(payload.Blocks)),
		slog.String("payload", string(encoded)))

	body, status, err := c.Exchange(ctx, req)
	if err != nil {
		if domain.IsUpstreamRejected(err) {
			c.logger.WarnContext(ctx, "craft rejected blocks",
				slog.Int("status", status),
				slog.String("body", string(body)))
		}

		return nil, err
	}

	c.logger.DebugContext(ctx, "blocks published", slog.Int("response_bytes", len(body)))

	return &domain.PublishResult{
		Status: status,
		Body:   DecodeJSONOrText(body),
	}, nil
}
