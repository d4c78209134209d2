package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUnavailable,
		ErrMisconfigured,
		ErrUpstreamRejected,
		ErrTransport,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("open-meteo", "HTTP 503")
	assert.Equal(t, `service "open-meteo" unavailable: HTTP 503`, err.Error())
	assert.True(t, IsUnavailable(err))

	bare := NewUnavailableError("open-meteo", "")
	assert.Equal(t, `service "open-meteo" unavailable`, bare.Error())
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("CRAFT_API_BASE_URL", "CRAFT_API_TOKEN")

	assert.Equal(t,
		"Missing required environment variables: CRAFT_API_BASE_URL, CRAFT_API_TOKEN",
		err.Error())
	assert.True(t, IsMisconfigured(err))

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"CRAFT_API_BASE_URL", "CRAFT_API_TOKEN"}, cfgErr.Missing)
}

func TestConfigurationError_Invalid(t *testing.T) {
	invalid := &ConfigurationError{Invalid: []string{"CRAFT_API_BASE_URL"}}
	assert.Equal(t, "Invalid environment variables: CRAFT_API_BASE_URL", invalid.Error())
	assert.True(t, IsMisconfigured(invalid))

	both := &ConfigurationError{Missing: []string{"CRAFT_API_TOKEN"}, Invalid: []string{"CRAFT_API_BASE_URL"}}
	assert.Equal(t,
		"Missing required environment variables: CRAFT_API_TOKEN; Invalid environment variables: CRAFT_API_BASE_URL",
		both.Error())
}

func TestUpstreamError(t *testing.T) {
	err := NewUpstreamError("Craft", 403, `{"error":"forbidden"}`)

	assert.Equal(t, `Craft API error 403: {"error":"forbidden"}`, err.Error())
	assert.True(t, IsUpstreamRejected(err))
	assert.False(t, IsTransport(err))

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 403, upstream.Status)
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewTransportError("Craft", cause)

	assert.Equal(t, "failed to reach Craft API: dial tcp: connection refused", err.Error())
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsUpstreamRejected(err))
}

func TestWrappedErrors_StillMatch(t *testing.T) {
	err := fmt.Errorf("publishing ritual: %w", NewUpstreamError("Craft", 500, "boom"))

	assert.True(t, IsUpstreamRejected(err))

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "boom", upstream.Body)
}
