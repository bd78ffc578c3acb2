package gateway

import (
	"context"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/metrics"
)

//go:generate mockgen -source=instrumented.go -destination=../../../tests/mock/gateway/backend.go -package=gatewaymock

type Backend interface {
	Submit(ctx context.Context, draft *reservation.Draft) (bool, error)
}

// Instrumented records the latency and result of every backend call.
type Instrumented struct {
	next    Backend
	metrics *metrics.Metrics
}

func NewInstrumented(next Backend, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (i *Instrumented) Submit(ctx context.Context, draft *reservation.Draft) (bool, error) {
	start := time.Now()
	accepted, err := i.next.Submit(ctx, draft)

	result := "rejected"
	switch {
	case err != nil:
		result = "error"
	case accepted:
		result = "accepted"
	}
	i.metrics.BackendCall(result, time.Since(start))

	return accepted, err
}
