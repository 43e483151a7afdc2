package http

import (
	"strconv"

	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	selections *prometheus.CounterVec
	regions    prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfinder_http_requests_total",
				Help: "HTTP requests by route pattern and status code",
			},
			[]string{"route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wayfinder_http_request_duration_seconds",
				Help:    "HTTP request latency by route pattern",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfinder_state_selections_total",
				Help: "Highlight states requested by viewers",
			},
			[]string{"state"},
		),
		regions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wayfinder_regions",
			Help: "Regions in the loaded index",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.selections, m.regions)
	return m
}

func (m *metrics) observe(route string, code int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(seconds)
}

func (m *metrics) selected(state domain.State) {
	m.selections.WithLabelValues(state.String()).Inc()
}
