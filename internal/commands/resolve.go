package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"row-mapper/internal/export"
	"row-mapper/internal/model"
	"row-mapper/internal/rowmap"
)

type resolveOptions struct {
	models   string
	typeName string
	format   string
}

func newResolveCmd(global *globalOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve column mappings for models in a YAML model file",
		Long: `Resolve column mappings for the row models defined in a YAML model file.
Without --type every row model in the file is resolved.`,
		Example: `  # Print a table of all row models
  row-mapper resolve --models models.yaml

  # Emit a Kusto JSON ingestion mapping for one model
  row-mapper resolve --models models.yaml --type ComplexMappingModel --format kusto`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runResolve(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.models, "models", "m", "", "path to the YAML model file")
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "model to resolve (default: all row models)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", FormatTable, "output format: table, yaml, json, kusto, schema")
	_ = cmd.MarkFlagRequired("models")

	return cmd
}

func runResolve(cmd *cobra.Command, global *globalOptions, opts *resolveOptions) error {
	file, err := model.LoadFile(opts.models)
	if err != nil {
		return err
	}

	diags := model.Validate(file)
	for _, w := range diags.Warnings {
		global.logger.Warn("model file", "diagnostic", w.String())
	}
	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid model file %s: %w", opts.models, err)
	}

	names := file.RowModels()
	if opts.typeName != "" {
		names = []string{opts.typeName}
	}

	global.logger.Debug("resolving models", "file", opts.models, "count", len(names))

	resolver := rowmap.NewResolver(rowmap.WithCache())
	docs := make([]export.Document, 0, len(names))

	for _, name := range names {
		desc, err := file.Descriptor(name)
		if err != nil {
			return err
		}

		global.dump(cmd, desc)

		mappings, err := resolver.Resolve(desc)
		if err != nil {
			return err
		}

		global.logger.Debug("resolved model", "model", name, "columns", len(mappings))
		docs = append(docs, export.Document{Type: name, Mappings: mappings})
	}

	global.logger.Debug("resolution done", "types", len(names), "cached", resolver.CachedTypes())

	return render(cmd.OutOrStdout(), opts.format, docs)
}
