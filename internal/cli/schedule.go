package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newScheduleCmd(opts *globalOptions) *cobra.Command {
	var venueID int64
	c := &cobra.Command{
		Use:   "schedule",
		Short: "Show the regular week and the stored capacity rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client(cmd.ErrOrStderr())
			s, err := client.GetSchedule(cmd.Context(), venueID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "venue %d, reference window %s-%s, timezone %s\n",
				s.VenueID, s.Settings.ReferenceStart, s.Settings.ReferenceEnd, s.Settings.Timezone)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tRULE\tCALENDAR\tSLOTS")
			for _, d := range s.Week {
				rule := "closed"
				if d.RuleID != nil {
					rule = fmt.Sprintf("#%d", *d.RuleID)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Weekday, rule, enabled(d.CalendarEnabled), strings.Join(d.Times, " "))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			for _, r := range s.Rules {
				if !r.Valid {
					fmt.Fprintf(out, "rule #%d ignored: %s\n", r.ID, r.Error)
				}
			}
			if len(s.Exceptions) > 0 {
				fmt.Fprintf(out, "closed on: %s\n", strings.Join(s.Exceptions, ", "))
			}
			return nil
		},
	}
	c.Flags().Int64Var(&venueID, "venue", 0, "venue ID")
	_ = c.MarkFlagRequired("venue")
	return c
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
