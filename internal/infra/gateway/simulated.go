package gateway

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"table-booking/internal/domain/reservation"
)

const (
	DefaultLatency     = time.Second
	DefaultSuccessRate = 0.95
)

// Simulated stands in for a remote reservation service: it waits a fixed latency
// and then accepts with a fixed probability.
type Simulated struct {
	latency     time.Duration
	successRate float64
	draw        func() float64
	logger      *slog.Logger
}

type Option func(*Simulated)

// WithDraw replaces the uniform [0, 1) source deciding acceptance.
func WithDraw(draw func() float64) Option {
	return func(s *Simulated) {
		s.draw = draw
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulated) {
		s.logger = logger
	}
}

func NewSimulated(latency time.Duration, successRate float64, opts ...Option) *Simulated {
	s := &Simulated{
		latency:     latency,
		successRate: successRate,
		draw:        rand.Float64,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit resolves true when the reservation is accepted. It never returns an error:
// a nil draft, a cancelled context and an internal panic all resolve false.
func (s *Simulated) Submit(ctx context.Context, draft *reservation.Draft) (accepted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("reservation backend panicked", "panic", r)
			accepted, err = false, nil
		}
	}()

	if draft == nil {
		s.logger.Warn("reservation submitted without a draft")
		return false, nil
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			s.logger.Debug("reservation submission abandoned", "error", ctx.Err())
			return false, nil
		}
	}

	accepted = s.draw() < s.successRate
	s.logger.Info("reservation submitted",
		"date", draft.Date,
		"time", draft.Time,
		"guests", draft.Guests,
		"occasion", draft.Occasion,
		"accepted", accepted,
	)
	return accepted, nil
}
