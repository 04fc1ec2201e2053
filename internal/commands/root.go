// Package commands implements the row-mapper command tree.
package commands

import (
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	verbose bool
	debug   bool
	logger  *slog.Logger
}

// NewRootCmd builds the row-mapper root command.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "row-mapper",
		Short: "Derive ingestion column mappings from row models",
		Long: `row-mapper derives (column, source member) mappings for row model types.

Row models come from YAML model files or from Go packages analyzed from source.
Members are selected most-derived first; rename and ignore annotations are honored.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose || opts.debug {
				level = slog.LevelDebug
			}

			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "dump type descriptors to stderr")

	cmd.AddCommand(newResolveCmd(opts))
	cmd.AddCommand(newAnalyzeCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))

	return cmd
}

// dump writes v to stderr when --debug is set.
func (o *globalOptions) dump(cmd *cobra.Command, v any) {
	if !o.debug {
		return
	}

	spew.Fdump(cmd.ErrOrStderr(), v)
}
