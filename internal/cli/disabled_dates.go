package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDisabledDatesCmd(opts *globalOptions) *cobra.Command {
	var venueID int64
	c := &cobra.Command{
		Use:   "disabled-dates",
		Short: "List dates that cannot be booked within the horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client(cmd.ErrOrStderr())
			dates, err := client.GetDisabledDates(cmd.Context(), venueID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "venue %d, %s .. %s: %d disabled\n", dates.VenueID, dates.From, dates.To, len(dates.Dates))
			for _, d := range dates.Dates {
				fmt.Fprintln(out, d)
			}
			return nil
		},
	}
	c.Flags().Int64Var(&venueID, "venue", 0, "venue ID")
	_ = c.MarkFlagRequired("venue")
	return c
}
