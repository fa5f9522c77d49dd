package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the ledger.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Writes that reached the store, by entity and op (create, update, delete)
	RecordsWritten *prometheus.CounterVec

	// Writes refused before mutation, by entity and error kind
	IntegrityRejections *prometheus.CounterVec
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "turmas_http_requests_total",
			Help: "HTTP requests served, by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "turmas_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),

		RecordsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "turmas_records_written_total",
			Help: "Ledger records persisted, by entity and operation",
		}, []string{"entity", "op"}),

		IntegrityRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "turmas_integrity_rejections_total",
			Help: "Writes rejected before mutation, by entity and kind",
		}, []string{"entity", "kind"}),
	}
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// IncrementWritten records a persisted write
func (m *Metrics) IncrementWritten(entity, op string) {
	if m != nil {
		m.RecordsWritten.WithLabelValues(entity, op).Inc()
	}
}

// IncrementRejected records a refused write
func (m *Metrics) IncrementRejected(entity, kind string) {
	if m != nil {
		m.IntegrityRejections.WithLabelValues(entity, kind).Inc()
	}
}
