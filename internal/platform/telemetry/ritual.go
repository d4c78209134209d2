package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RitualMetrics counts ritual outcomes on a Prometheus registry.
type RitualMetrics struct {
	publications     *prometheus.CounterVec
	weatherFallbacks prometheus.Counter
}

// NewRitualMetrics registers the ritual counters on reg. Each of results is
// exposed at zero so rate() works from the first scrape.
func NewRitualMetrics(reg prometheus.Registerer, results ...string) (*RitualMetrics, error) {
	m := &RitualMetrics{
		publications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "daily_ritual_publications_total",
			Help: "Ritual invocations by outcome.",
		}, []string{"result"}),
		weatherFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "daily_ritual_weather_fallbacks_total",
			Help: "Invocations that used the fallback weather sentence.",
		}),
	}

	for _, c := range []prometheus.Collector{m.publications, m.weatherFallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	for _, r := range results {
		m.publications.WithLabelValues(r)
	}

	return m, nil
}

// Publication counts one invocation with the given result.
func (m *RitualMetrics) Publication(result string) {
	m.publications.WithLabelValues(result).Inc()
}

// WeatherFallback counts one use of the fallback weather sentence.
func (m *RitualMetrics) WeatherFallback() {
	m.weatherFallbacks.Inc()
}
