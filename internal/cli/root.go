// Package cli implements the dtconv command tree: three line-oriented
// converters (ymd2mjd, ydoy2mjd, mjd2ymd) sharing an error-tolerance flag
// and an optional YAML config file.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds the flags shared by every subcommand.
type RootOptions struct {
	MaxErrors  int
	Verbose    bool
	ConfigPath string

	logger *slog.Logger
}

// NewRootCommand creates the root command for dtconv.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "dtconv",
		Short:         "Calendar date and Modified Julian Day conversion filters",
		Long:          "dtconv converts between calendar dates and Modified Julian Day, one value per input line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return err
			}

			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().IntVar(&opts.MaxErrors, "max-errors", 0, "abort once more than this many input lines are malformed")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log per-line diagnostics and totals")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML file providing flag defaults")

	cmd.AddCommand(NewYMDToMJDCommand(opts))
	cmd.AddCommand(NewYDOYToMJDCommand(opts))
	cmd.AddCommand(NewMJDToYMDCommand(opts))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn

	if verbose {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
