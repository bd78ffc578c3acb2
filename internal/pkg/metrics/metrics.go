package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "table_booking"

// Metrics holds the collectors for the HTTP surface, the booking form and the reservation backend.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	fieldUpdates   *prometheus.CounterVec
	submitOutcomes *prometheus.CounterVec
	backendLatency *prometheus.HistogramVec
	activeSessions prometheus.Gauge
	slotsOffered   *prometheus.HistogramVec
}

// New registers every collector on reg. A nil reg registers nothing, which keeps tests isolated.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		fieldUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_field_events_total",
			Help:      "Form field events by field, event kind and validity.",
		}, []string{"field", "event", "valid"}),
		submitOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Form submissions by outcome.",
		}, []string{"outcome"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_submit_duration_seconds",
			Help:      "Reservation backend call latency by result.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 5},
		}, []string{"result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Open booking form sessions.",
		}),
		slotsOffered: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "availability_slots",
			Help:      "Number of slots offered per availability lookup.",
			Buckets:   prometheus.LinearBuckets(0, 2, 8),
		}, []string{"source"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.httpRequests,
			m.httpDuration,
			m.fieldUpdates,
			m.submitOutcomes,
			m.backendLatency,
			m.activeSessions,
			m.slotsOffered,
		)
	}
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) FieldEvent(field, event string, valid bool) {
	if m == nil {
		return
	}
	m.fieldUpdates.WithLabelValues(field, event, strconv.FormatBool(valid)).Inc()
}

func (m *Metrics) SubmitOutcome(outcome string) {
	if m == nil {
		return
	}
	m.submitOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) BackendCall(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.backendLatency.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *Metrics) SlotsOffered(source string, n int) {
	if m == nil {
		return
	}
	m.slotsOffered.WithLabelValues(source).Observe(float64(n))
}
