package main

import (
	"errors"
	"fmt"

	"table-booking/internal/domain/reservation"

	"github.com/spf13/cobra"
)

var errNotReady = errors.New("booking form is not ready")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a reservation without submitting it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clk, err := opts.clock()
			if err != nil {
				return fmt.Errorf("invalid --timezone: %w", err)
			}

			draft := flags.draft()
			results := reservation.ValidateDraft(draft, clk.Now())
			printResults(cmd, results)

			if !results.Ready() {
				return errNotReady
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ready to submit")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (f *draftFlags) draft() reservation.Draft {
	return reservation.Draft{
		Date:     f.date,
		Time:     f.time,
		Guests:   f.guests,
		Occasion: f.occasion,
	}
}

func printResults(cmd *cobra.Command, results reservation.Results) {
	out := cmd.OutOrStdout()
	for _, f := range reservation.Fields() {
		res := results[f]
		if res.IsValid {
			fmt.Fprintf(out, "%-9s ok\n", f)
			continue
		}
		fmt.Fprintf(out, "%-9s %s\n", f, res.Message)
	}
}
