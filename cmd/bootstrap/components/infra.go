package components

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/domain/availability"
	"table-booking/internal/infra/gateway"
	"table-booking/internal/infra/sessionstore"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/metrics"
	"table-booking/internal/usecase"
	"table-booking/internal/usecase/bookingform"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const sweepInterval = time.Minute

var InfraModule = fx.Module("infra",
	metricsModule,
	bookingModule,
)

var metricsModule = fx.Module("infra/metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		metrics.New,
	),
)

var bookingModule = fx.Module("infra/booking",
	fx.Provide(
		clock.NewRealClockIn,
		availability.NewGenerator,
		fx.Annotate(
			NewReservationBackend,
			fx.As(new(bookingform.Submitter)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(usecase.SessionStore)),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewReservationBackend(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *gateway.Instrumented {
	simulated := gateway.NewSimulated(cfg.Booking.SubmitLatency, cfg.Booking.SuccessRate,
		gateway.WithLogger(logger),
	)
	return gateway.NewInstrumented(simulated, m)
}

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) *sessionstore.Store[*usecase.Session] {
	store := sessionstore.New(cfg.Booking.SessionTTL, clk, logger, func(sess *usecase.Session) {
		sess.Close()
		m.SessionClosed()
	})

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.Run(ctx, sweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return store
}
