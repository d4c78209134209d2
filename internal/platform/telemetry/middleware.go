package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/asteria-rituals/daily-ritual/internal/platform/telemetry"

// HeaderTraceID echoes the server span's trace ID to the caller.
const HeaderTraceID = "X-Trace-ID"

// Metrics holds the inbound HTTP instruments.
type Metrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

// NewMetrics creates the inbound HTTP instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	var (
		m   Metrics
		err error
	)

	if m.duration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if m.total, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}

	if m.inFlight, err = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	); err != nil {
		return nil, err
	}

	return &m, nil
}

// Middleware records inbound metrics and sets X-Trace-ID before the handler
// writes. It must run after TracingMiddleware so the server span exists.
func Middleware() gin.HandlerFunc {
	metrics, err := NewMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()
		route := attribute.String("http.route", c.FullPath())
		method := attribute.String("http.method", c.Request.Method)

		if metrics != nil {
			opt := metric.WithAttributes(method, route)
			metrics.inFlight.Add(ctx, 1, opt)
			defer metrics.inFlight.Add(ctx, -1, opt)
		}

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			c.Header(HeaderTraceID, sc.TraceID().String())
		}

		c.Next()

		if metrics != nil {
			opt := metric.WithAttributes(method, route, attribute.Int("http.status_code", c.Writer.Status()))
			metrics.duration.Record(ctx, time.Since(start).Seconds(), opt)
			metrics.total.Add(ctx, 1, opt)
		}
	}
}

// TracingMiddleware starts a server span per request; outbound calls to
// open-meteo and Craft become its children.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
