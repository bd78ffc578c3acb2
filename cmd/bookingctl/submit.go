package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra/gateway"
	"table-booking/internal/usecase/bookingform"

	"github.com/spf13/cobra"
)

func newSubmitCmd(opts *rootOptions) *cobra.Command {
	var (
		flags       draftFlags
		latency     time.Duration
		successRate float64
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Fill the booking form and submit it to the simulated backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if successRate < 0 || successRate > 1 {
				return fmt.Errorf("--success-rate must be within [0, 1], got %v", successRate)
			}
			clk, err := opts.clock()
			if err != nil {
				return fmt.Errorf("invalid --timezone: %w", err)
			}
			logger := opts.logger(cmd.ErrOrStderr())

			backend := gateway.NewSimulated(latency, successRate, gateway.WithLogger(logger))
			form := bookingform.New(backend, nil,
				bookingform.WithClock(clk),
				bookingform.WithLogger(logger),
			)
			return runSubmit(cmd, form, flags.draft())
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&latency, "latency", gateway.DefaultLatency, "simulated backend latency")
	cmd.Flags().Float64Var(&successRate, "success-rate", gateway.DefaultSuccessRate, "probability the backend accepts")
	return cmd
}

func runSubmit(cmd *cobra.Command, form *bookingform.Form, draft reservation.Draft) error {
	for _, f := range reservation.Fields() {
		value, _ := draft.Get(f)
		if err := form.UpdateField(f, value); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sub := form.Start(ctx)
	outcome, err := sub.Wait(context.WithoutCancel(ctx))
	out := cmd.OutOrStdout()

	switch outcome {
	case bookingform.OutcomeConfirmed:
		summary := reservation.Summarize(sub.Draft())
		fmt.Fprintln(out, "reservation confirmed")
		fmt.Fprintf(out, "  %s at %s\n", summary.Date, summary.Time)
		fmt.Fprintf(out, "  %s, %s\n", summary.Guests, summary.Occasion)
		return nil
	case bookingform.OutcomeInvalid:
		state := form.State()
		for _, f := range reservation.Fields() {
			if msg, ok := state.Errors[f]; ok {
				fmt.Fprintf(out, "%-9s %s\n", f, msg)
			}
		}
		return errNotReady
	case bookingform.OutcomeFailed:
		fmt.Fprintln(out, form.State().Errors[reservation.FieldSubmit])
		return err
	default:
		return fmt.Errorf("submission abandoned: %w", err)
	}
}
