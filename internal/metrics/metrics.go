// Package metrics defines the Prometheus collectors of the asset server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "asset_keeper"

// Batch results.
const (
	BatchCreated  = "created"
	BatchRejected = "rejected"
	BatchFailed   = "error"
)

// Metrics bundles the server collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Batches        *prometheus.CounterVec
	BatchSize      prometheus.Histogram
	BatchDuration  *prometheus.HistogramVec
	AssetsCreated  prometheus.Counter
	RecordsInvalid prometheus.Counter

	gatherer prometheus.Gatherer
}

// New constructs the collectors and registers them with reg. When reg is
// also a prometheus.Gatherer, Handler exposes exactly what was registered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "asset_batches_total",
				Help:      "Total bulk create batches by result",
			},
			[]string{"result"},
		),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "asset_batch_size",
			Help:      "Number of records per bulk create batch",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		BatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "asset_batch_duration_seconds",
				Help:      "Bulk create latency in seconds by result",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		AssetsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assets_created_total",
			Help:      "Total assets persisted",
		}),
		RecordsInvalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_records_invalid_total",
			Help:      "Total records rejected by validation",
		}),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.Batches,
		m.BatchSize,
		m.BatchDuration,
		m.AssetsCreated,
		m.RecordsInvalid,
	)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}

	return m
}

// ObserveHTTPRequest records one served request. route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBatch records the outcome of one bulk create call.
func (m *Metrics) ObserveBatch(result string, size, invalid int, duration time.Duration) {
	if m == nil {
		return
	}
	m.Batches.WithLabelValues(result).Inc()
	m.BatchSize.Observe(float64(size))
	m.BatchDuration.WithLabelValues(result).Observe(duration.Seconds())

	if invalid > 0 {
		m.RecordsInvalid.Add(float64(invalid))
	}
	if result == BatchCreated {
		m.AssetsCreated.Add(float64(size))
	}
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
