//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startStack(t *testing.T) *stack {
	t.Helper()

	s, err := newStack()
	require.NoError(t, err)
	t.Cleanup(s.close)

	require.NoError(t, s.configurePublishing())
	s.weather.respond(http.StatusOK, forecastBody(61.5, 3))
	s.craft.respond(http.StatusOK, `{"items":[]}`)

	return s
}

func get(ctx context.Context, url string, header http.Header) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, "", err
	}

	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	return resp.StatusCode, string(body), err
}

func TestConcurrent_DailyRequests(t *testing.T) {
	s := startStack(t)

	const callers = 20

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)

	for range callers {
		wg.Go(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			status, _, err := get(ctx, s.server.URL+"/api/daily", nil)
			if err == nil && status == http.StatusOK {
				succeeded.Add(1)
			}
		})
	}

	wg.Wait()

	assert.Equal(t, int32(callers), succeeded.Load())
	assert.Equal(t, callers, s.craft.callCount())
	assert.Equal(t, callers, s.weather.callCount())

	_, metrics, err := get(context.Background(), s.server.URL+"/-/metrics", nil)
	require.NoError(t, err)
	assert.Contains(t, metrics, fmt.Sprintf(`daily_ritual_publications_total{result="published"} %d`, callers))
	assert.Contains(t, metrics, `daily_ritual_publications_total{result="rejected"} 0`)
}

func TestConcurrent_MixedOutcomesAreCounted(t *testing.T) {
	s := startStack(t)
	s.weather.respond(http.StatusInternalServerError, `oops`)

	for range 3 {
		status, _, err := get(context.Background(), s.server.URL+"/api/daily", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, status)
	}

	s.craft.respond(http.StatusForbidden, `{"error":"forbidden"}`)

	status, body, err := get(context.Background(), s.server.URL+"/api/daily", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, `Craft API error 403: {"error":"forbidden"}`, body)

	_, metrics, err := get(context.Background(), s.server.URL+"/-/metrics", nil)
	require.NoError(t, err)
	assert.Contains(t, metrics, `daily_ritual_publications_total{result="published"} 3`)
	assert.Contains(t, metrics, `daily_ritual_publications_total{result="rejected"} 1`)
	assert.Contains(t, metrics, `daily_ritual_weather_fallbacks_total 4`)
}

func TestPropagation_InternalHeadersStayInside(t *testing.T) {
	s := startStack(t)

	header := http.Header{}
	header.Set("X-Request-ID", "req-integration-1")
	header.Set("X-Correlation-ID", "corr-integration-1")

	status, _, err := get(context.Background(), s.server.URL+"/api/daily", header)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	for name, upstream := range map[string]*fakeUpstream{"weather": s.weather, "craft": s.craft} {
		assert.Empty(t, upstream.lastHeader("X-Request-ID"), name)
		assert.Empty(t, upstream.lastHeader("X-Correlation-ID"), name)
		assert.Empty(t, upstream.lastHeader("Traceparent"), name)
	}
}

func TestDaily_CallerDisconnectDoesNotAbortPublish(t *testing.T) {
	s := startStack(t)
	s.craft.slowDown(300 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := get(ctx, s.server.URL+"/api/daily", nil)
	require.Error(t, err, "the caller gives up before Craft answers")

	assert.Eventually(t, func() bool {
		_, metrics, err := get(context.Background(), s.server.URL+"/-/metrics", nil)
		return err == nil && strings.Contains(metrics, `daily_ritual_publications_total{result="published"} 1`)
	}, 3*time.Second, 50*time.Millisecond)

	assert.Equal(t, 1, s.craft.callCount())

	_, metrics, err := get(context.Background(), s.server.URL+"/-/metrics", nil)
	require.NoError(t, err)
	assert.Contains(t, metrics, `daily_ritual_publications_total{result="transport_error"} 0`)
}
