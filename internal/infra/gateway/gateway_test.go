//go:build unit

package gateway_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra/gateway"
	"table-booking/internal/pkg/metrics"
	"table-booking/tests/common/builder"
	gatewaymock "table-booking/tests/mock/gateway"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func fixed(v float64) func() float64 {
	return func() float64 { return v }
}

func TestSimulatedSubmit(t *testing.T) {
	draft := builder.NewDraftBuilder(time.Now()).Build()

	cases := []struct {
		name  string
		draft *reservation.Draft
		draw  func() float64
		want  bool
	}{
		{name: "accepted below success rate", draft: &draft, draw: fixed(0.10), want: true},
		{name: "accepted just below success rate", draft: &draft, draw: fixed(0.9499), want: true},
		{name: "rejected at success rate", draft: &draft, draw: fixed(0.95), want: false},
		{name: "rejected above success rate", draft: &draft, draw: fixed(0.99), want: false},
		{name: "nil draft fails fast", draft: nil, draw: func() float64 { panic("must not draw") }, want: false},
		{name: "panic resolves false", draft: &draft, draw: func() float64 { panic("backend exploded") }, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := gateway.NewSimulated(0, gateway.DefaultSuccessRate, gateway.WithDraw(tc.draw), gateway.WithLogger(discard))

			got, err := gw.Submit(context.Background(), tc.draft)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSimulatedLatency(t *testing.T) {
	draft := builder.NewDraftBuilder(time.Now()).Build()

	t.Run("waits the configured latency", func(t *testing.T) {
		gw := gateway.NewSimulated(30*time.Millisecond, 1, gateway.WithLogger(discard))

		start := time.Now()
		got, err := gw.Submit(context.Background(), &draft)

		require.NoError(t, err)
		assert.True(t, got)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("cancelled context resolves false early", func(t *testing.T) {
		gw := gateway.NewSimulated(time.Hour, 1, gateway.WithLogger(discard))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		got, err := gw.Submit(ctx, &draft)

		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestInstrumented(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := gatewaymock.NewMockBackend(ctrl)
	reg := prometheus.NewRegistry()
	gw := gateway.NewInstrumented(backend, metrics.New(reg))
	draft := builder.NewDraftBuilder(time.Now()).Build()

	backend.EXPECT().Submit(gomock.Any(), &draft).Return(true, nil)
	backend.EXPECT().Submit(gomock.Any(), &draft).Return(false, nil)
	backend.EXPECT().Submit(gomock.Any(), &draft).Return(false, errors.New("boom"))

	ok, err := gw.Submit(context.Background(), &draft)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gw.Submit(context.Background(), &draft)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = gw.Submit(context.Background(), &draft)
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	results := map[string]uint64{}
	for _, mf := range families {
		if mf.GetName() != "table_booking_backend_submit_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "result" {
					results[l.GetValue()] = m.GetHistogram().GetSampleCount()
				}
			}
		}
	}
	assert.Equal(t, map[string]uint64{"accepted": 1, "rejected": 1, "error": 1}, results)
}
