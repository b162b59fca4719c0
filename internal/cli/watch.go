package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/internal/integrations/availabilityapi"
	"github.com/m04kA/SMC-TableAvailability/internal/service/selection"
)

func newWatchCmd(opts *globalOptions) *cobra.Command {
	var venueID int64
	c := &cobra.Command{
		Use:   "watch",
		Short: "Read dates from stdin and show slots for the latest one",
		Long: "Each line of stdin selects a date (YYYY-MM-DD). A new selection cancels\n" +
			"the pending request, and answers for earlier selections are never shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client(cmd.ErrOrStderr())
			return watch(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, client, venueID)
		},
	}
	c.Flags().Int64Var(&venueID, "venue", 0, "venue ID")
	_ = c.MarkFlagRequired("venue")
	return c
}

func watch(
	ctx context.Context,
	in io.Reader,
	out, errOut io.Writer,
	opts *globalOptions,
	client *availabilityapi.Client,
	venueID int64,
) error {
	fetch := func(ctx context.Context, date time.Time) (*availabilityapi.Slots, error) {
		return client.GetSlots(ctx, venueID, date.Format(domain.DateFormat))
	}
	coord := selection.NewCoordinator[*availabilityapi.Slots](fetch, 8, opts.logger(errOut))

	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for u := range coord.Updates() {
			if u.Err != nil {
				fmt.Fprintf(out, "%s: error: %v\n", u.Date.Format(domain.DateFormat), u.Err)
				continue
			}
			_ = printSlots(out, u.Value)
		}
	}()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		date, err := parseDate(line)
		if err != nil {
			fmt.Fprintf(errOut, "skip %q: %v\n", line, err)
			continue
		}
		if _, err := coord.Select(ctx, date); err != nil {
			break
		}
	}
	scanErr := scanner.Err()

	coord.Wait()
	coord.Close()
	<-printed

	stats := coord.Stats()
	fmt.Fprintf(errOut, "selections: %d, shown: %d, stale dropped: %d\n", stats.Started, stats.Applied, stats.Dropped)
	return scanErr
}
