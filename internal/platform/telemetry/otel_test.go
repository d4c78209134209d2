package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestNew_DisabledIsNoop(t *testing.T) {
	before := otel.GetTracerProvider()

	p, err := New(context.Background(), &Config{Enabled: false, ServiceName: "daily-ritual"})

	require.NoError(t, err)
	assert.Nil(t, p.tracer)
	assert.Nil(t, p.meter)
	assert.Equal(t, before, otel.GetTracerProvider(), "globals stay untouched")
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics()

	require.NoError(t, err)
	assert.NotNil(t, m.duration)
	assert.NotNil(t, m.total)
	assert.NotNil(t, m.inFlight)
}

func TestMiddleware_EchoesTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	previous := otel.GetTracerProvider()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample()))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = tp.Shutdown(context.Background())
	})

	engine := gin.New()
	engine.Use(TracingMiddleware("daily-ritual-test"), Middleware())
	engine.GET("/api/daily", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/daily", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get(HeaderTraceID), 32)
}

func TestMiddleware_NoSpanNoHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Middleware())
	engine.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(HeaderTraceID))
}
