package main

import (
	"fmt"

	"table-booking/internal/domain/availability"
	"table-booking/internal/domain/reservation"

	"github.com/spf13/cobra"
)

func newSlotsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "slots [YYYY-MM-DD]",
		Short: "List the time slots offered for a date (today by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clk, err := opts.clock()
			if err != nil {
				return fmt.Errorf("invalid --timezone: %w", err)
			}

			date := clk.Now().Format(reservation.DateLayout)
			if len(args) == 1 {
				date = args[0]
			}

			gen := availability.NewGenerator(opts.logger(cmd.ErrOrStderr()))
			slots := gen.ComputeString(date)

			out := cmd.OutOrStdout()
			if len(slots) == 0 {
				fmt.Fprintf(out, "no slots computed for %q, showing defaults\n", date)
				slots = availability.Fallback()
			}
			for _, s := range slots {
				fmt.Fprintf(out, "%s  %s\n", s, reservation.FormatTime(s))
			}
			return nil
		},
	}
}
