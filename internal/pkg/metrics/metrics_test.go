//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"table-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				values[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return values
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRequest("GET", "/api/availability", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "/api/availability", 400, time.Millisecond)
	m.FieldEvent("guests", "update", false)
	m.SubmitOutcome("confirmed")
	m.BackendCall("accepted", time.Second)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.SlotsOffered("generator", 7)

	values := gather(t, reg)
	assert.InDelta(t, 2, values["table_booking_http_requests_total"], 0)
	assert.InDelta(t, 2, values["table_booking_http_request_duration_seconds"], 0)
	assert.InDelta(t, 1, values["table_booking_form_field_events_total"], 0)
	assert.InDelta(t, 1, values["table_booking_form_submissions_total"], 0)
	assert.InDelta(t, 1, values["table_booking_backend_submit_duration_seconds"], 0)
	assert.InDelta(t, 1, values["table_booking_active_sessions"], 0)
	assert.InDelta(t, 1, values["table_booking_availability_slots"], 0)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, 0)
		m.FieldEvent("date", "blur", true)
		m.SubmitOutcome("failed")
		m.BackendCall("fault", 0)
		m.SessionOpened()
		m.SessionClosed()
		m.SlotsOffered("fallback", 6)
	})
}
