package main

import (
	"io"
	"log/slog"
	"time"

	"table-booking/internal/pkg/clock"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	timezone string
	verbose  bool
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "bookingctl",
		Short:         "Inspect availability and drive the booking form from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.timezone, "timezone", "", "zone that decides what today is (default: local)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newSlotsCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newSubmitCmd(opts))

	return root
}

func (o *rootOptions) clock() (clock.Clock, error) {
	if o.timezone == "" {
		return clock.NewRealClock(), nil
	}
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, err
	}
	return clock.NewRealClockIn(loc), nil
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// draftFlags are the four form inputs shared by check and submit.
type draftFlags struct {
	date     string
	time     string
	guests   string
	occasion string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "reservation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.time, "time", "", "time slot (HH:MM)")
	cmd.Flags().StringVar(&f.guests, "guests", "", "number of guests")
	cmd.Flags().StringVar(&f.occasion, "occasion", "", "birthday, anniversary, engagement, business or other")
}
