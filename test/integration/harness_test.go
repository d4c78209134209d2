//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/asteria-rituals/daily-ritual/internal/adapters/clients"
	"github.com/asteria-rituals/daily-ritual/internal/adapters/clients/acl"
	httpadapter "github.com/asteria-rituals/daily-ritual/internal/adapters/http"
	"github.com/asteria-rituals/daily-ritual/internal/adapters/http/handlers"
	"github.com/asteria-rituals/daily-ritual/internal/app"
	"github.com/asteria-rituals/daily-ritual/internal/domain"
	"github.com/asteria-rituals/daily-ritual/internal/platform/config"
	"github.com/asteria-rituals/daily-ritual/internal/platform/telemetry"
	"github.com/asteria-rituals/daily-ritual/internal/ports"
)

const integrationToken = "integration-token"

var publishingEnv = []string{config.EnvCraftBaseURL, config.EnvCraftToken, config.EnvTasksURL}

// fakeUpstream is a scripted JSON endpoint that records what it received.
type fakeUpstream struct {
	mu       sync.Mutex
	status   int
	body     string
	delay    time.Duration
	calls    int
	lastAuth string
	lastBody []byte
	lastURL  string
	headers  http.Header
	server   *httptest.Server
}

func newFakeUpstream() *fakeUpstream {
	f := &fakeUpstream{status: http.StatusOK, body: `{}`}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))

	return f
}

func (f *fakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls++
	f.lastAuth = r.Header.Get("Authorization")
	f.lastBody = body
	f.lastURL = r.URL.String()
	f.headers = r.Header.Clone()
	status, reply, delay := f.status, f.body, f.delay
	f.mu.Unlock()

	time.Sleep(delay)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

func (f *fakeUpstream) respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.status = status
	f.body = body
}

// slowDown delays every reply after the request has been recorded.
func (f *fakeUpstream) slowDown(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.delay = d
}

func (f *fakeUpstream) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func (f *fakeUpstream) received() (auth string, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastAuth, f.lastBody
}

func (f *fakeUpstream) lastHeader(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.headers.Get(name)
}

func (f *fakeUpstream) close() {
	f.server.Close()
}

func forecastBody(tempF float64, code int) string {
	return fmt.Sprintf(`{"current":{"time":"2025-01-15T21:30","temperature_2m":%g,"weather_code":%d}}`, tempF, code)
}

// blockCount decodes a recorded publish body and counts its blocks.
func blockCount(body []byte) (int, error) {
	var req domain.PublishRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return 0, fmt.Errorf("decoding publish body: %w", err)
	}

	return len(req.Blocks), nil
}

// stack is the service wired the way cmd/service wires it, pointed at fakes.
type stack struct {
	weather  *fakeUpstream
	craft    *fakeUpstream
	registry *prometheus.Registry
	server   *httptest.Server
}

func newStack() (*stack, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &stack{
		weather:  newFakeUpstream(),
		craft:    newFakeUpstream(),
		registry: prometheus.NewRegistry(),
	}

	transport := config.TransportConfig{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	}

	weatherHTTP, err := clients.New(&clients.Config{
		BaseURL:     s.weather.server.URL,
		ServiceName: "open-meteo",
		Timeout:     2 * time.Second,
		Transport:   transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	craftHTTP, err := clients.New(&clients.Config{
		ServiceName: acl.CraftServiceName,
		Timeout:     2 * time.Second,
		Transport:   transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	metrics, err := telemetry.NewRitualMetrics(s.registry, app.PublicationResults...)
	if err != nil {
		return nil, err
	}

	weather := acl.NewWeatherClient(weatherHTTP, logger)
	settings := config.PublishingSource{}

	health := ports.NewHealthRegistry()
	if err := health.Register(weather); err != nil {
		return nil, err
	}

	chicago, err := time.LoadLocation(config.DefaultTimezone)
	if err != nil {
		return nil, err
	}

	service := app.NewRitualService(app.RitualServiceConfig{
		Weather:   weather,
		Publisher: acl.NewCraftClient(craftHTTP, logger),
		Settings:  settings,
		Recorder:  metrics,
		Location: domain.Location{
			Name:      config.DefaultPlace,
			Latitude:  config.DefaultLatitude,
			Longitude: config.DefaultLongitude,
		},
		Timezone:    chicago,
		ContainerID: config.DefaultContainerID,
		Logger:      logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        logger,
		ServiceName:   "daily-ritual-integration",
		HealthHandler: handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "none", "now"), s.registry),
		RitualHandler: handlers.NewRitualHandler(service),
	})

	s.server = httptest.NewServer(engine)

	return s, nil
}

// configurePublishing points the publishing variables at the fake Craft.
func (s *stack) configurePublishing() error {
	values := map[string]string{
		config.EnvCraftBaseURL: s.craft.server.URL,
		config.EnvCraftToken:   integrationToken,
		config.EnvTasksURL:     "https://tasks.example.com/today",
	}

	for k, v := range values {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	return nil
}

func (s *stack) close() {
	for _, k := range publishingEnv {
		_ = os.Unsetenv(k)
	}

	s.server.Close()
	s.weather.close()
	s.craft.close()
}
