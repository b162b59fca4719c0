package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableAvailability/internal/integrations/availabilityapi"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// ErrDoesNotFit возвращается из "check", чтобы код выхода был ненулевым, если компания не помещается
var ErrDoesNotFit = errors.New("party does not fit")

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var (
		venueID int64
		date    string
		at      string
		guests  int
	)
	c := &cobra.Command{
		Use:   "check",
		Short: "Check whether a party fits into a slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseDate(date); err != nil {
				return err
			}
			slotTime, err := types.NewTimeStringFromString(at)
			if err != nil {
				return fmt.Errorf("invalid --time: %w", err)
			}

			client := opts.client(cmd.ErrOrStderr())
			res, err := client.Check(cmd.Context(), venueID, availabilityapi.CheckRequest{
				Date:   date,
				Time:   slotTime.String(),
				Guests: guests,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Fits {
				fmt.Fprintf(out, "fits: %d of %d seats free\n", res.AvailableCapacity, res.TotalCapacity)
				return nil
			}
			if res.TotalCapacity > 0 {
				fmt.Fprintf(out, "does not fit (%s): %d of %d seats free\n", res.Reason, res.AvailableCapacity, res.TotalCapacity)
			} else {
				fmt.Fprintf(out, "does not fit (%s)\n", res.Reason)
			}
			return ErrDoesNotFit
		},
	}
	c.Flags().Int64Var(&venueID, "venue", 0, "venue ID")
	c.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	c.Flags().StringVar(&at, "time", "", "slot start, HH:MM")
	c.Flags().IntVar(&guests, "guests", 2, "party size")
	_ = c.MarkFlagRequired("venue")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")
	return c
}
