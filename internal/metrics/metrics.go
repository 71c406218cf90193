package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exposed by the gateway. Each instance
// owns its registry, so several instances can coexist in tests.
type Metrics struct {
	Registry *prometheus.Registry

	// Clicks counts handled click events.
	Clicks prometheus.Counter

	// Requests counts served http requests by method and status code.
	Requests *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		Clicks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "clicklog_clicks_total",
				Help: "Total number of click events logged",
			},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clicklog_http_requests_total",
				Help: "Total number of http requests",
			},
			[]string{"method", "status"},
		),
	}

	registry.MustRegister(
		m.Clicks,
		m.Requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler returns the exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		Registry: m.Registry,
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Instrument wraps next and counts every request it serves.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(recorder, r)

		m.Requests.With(prometheus.Labels{
			"method": r.Method,
			"status": strconv.Itoa(recorder.status),
		}).Inc()
	})
}
