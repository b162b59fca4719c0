// Package cli реализует availctl, утилиту оператора поверх HTTP API доступности
package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableAvailability/internal/integrations/availabilityapi"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	defaultTimeout = 10 * time.Second
)

type globalOptions struct {
	apiURL  string
	timeout time.Duration
	verbose bool
}

func (o *globalOptions) client(stderr io.Writer) *availabilityapi.Client {
	level := logger.LevelWarn
	if o.verbose {
		level = logger.LevelDebug
	}
	return availabilityapi.NewClient(o.apiURL, o.timeout, logger.NewWithWriter(stderr, level))
}

func (o *globalOptions) logger(stderr io.Writer) *logger.Logger {
	level := logger.LevelWarn
	if o.verbose {
		level = logger.LevelInfo
	}
	return logger.NewWithWriter(stderr, level)
}

func NewRoot() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "availctl",
		Short:         "Query table availability of a venue",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", defaultAPIURL, "availability service base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "HTTP request timeout")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(newSlotsCmd(opts))
	cmd.AddCommand(newDisabledDatesCmd(opts))
	cmd.AddCommand(newScheduleCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newWatchCmd(opts))
	return cmd
}
