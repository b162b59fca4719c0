package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableAvailability/internal/integrations/availabilityapi"
)

func newSlotsCmd(opts *globalOptions) *cobra.Command {
	var (
		venueID int64
		date    string
	)
	c := &cobra.Command{
		Use:   "slots",
		Short: "List candidate slots for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseDate(date); err != nil {
				return err
			}
			client := opts.client(cmd.ErrOrStderr())
			slots, err := client.GetSlots(cmd.Context(), venueID, date)
			if err != nil {
				return err
			}
			return printSlots(cmd.OutOrStdout(), slots)
		},
	}
	c.Flags().Int64Var(&venueID, "venue", 0, "venue ID")
	c.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	_ = c.MarkFlagRequired("venue")
	_ = c.MarkFlagRequired("date")
	return c
}

func printSlots(w io.Writer, s *availabilityapi.Slots) error {
	if !s.Open {
		reason := s.ClosedReason
		if s.Degraded {
			reason = "data unavailable"
		}
		if reason == "" {
			reason = "closed"
		}
		_, err := fmt.Fprintf(w, "%s: closed (%s)\n", s.Date, reason)
		return err
	}

	fmt.Fprintf(w, "%s: capacity %d, every %d min\n", s.Date, s.TotalCapacity, s.IntervalMinutes)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tFREE\tBOOKABLE")
	for _, slot := range s.Slots {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", slot.Time, slot.AvailableCapacity, yesNo(slot.Bookable))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
