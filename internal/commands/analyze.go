package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"row-mapper/internal/analyze"
	"row-mapper/internal/common"
	"row-mapper/internal/export"
	"row-mapper/internal/model"
	"row-mapper/internal/rowmap"
)

type analyzeOptions struct {
	packages []string
	dir      string
	typeName string
	format   string
	tags     string
	emit     string
}

func newAnalyzeCmd(global *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Resolve column mappings for row models in Go packages",
		Long: `Load Go packages from source and resolve column mappings for their row models.
A struct is a row model when its method set has TableRow(), declared directly
or promoted from an embedded rowmap.Row.`,
		Example: `  # All row models in a package
  row-mapper analyze --pkg ./examples/telemetry

  # One type as a JSON Schema, reading only kusto tags
  row-mapper analyze --pkg ./examples/telemetry --type Heartbeat --format schema --tags kusto

  # Snapshot the row models as a YAML model file
  row-mapper analyze --pkg ./examples/telemetry --emit-model telemetry.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runAnalyze(cmd, global, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.packages, "pkg", "p", nil, "package patterns to load")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory to resolve package patterns in")
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "type to resolve (default: all row models)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", FormatTable, "output format: table, yaml, json, kusto, schema")
	cmd.Flags().StringVar(&opts.tags, "tags", strings.Join(rowmap.TagKeys, ","), "struct tag keys consulted in order")
	cmd.Flags().StringVar(&opts.emit, "emit-model", "", "also write the resolved types as a flattened YAML model file")
	_ = cmd.MarkFlagRequired("pkg")

	return cmd
}

func runAnalyze(cmd *cobra.Command, global *globalOptions, opts *analyzeOptions) error {
	global.logger.Debug("loading packages", "patterns", opts.packages, "dir", opts.dir)

	graph, err := analyze.NewAnalyzer().LoadPackagesIn(opts.dir, opts.packages...)
	if err != nil {
		return err
	}

	ids := graph.RowTypes()
	if opts.typeName != "" {
		id, err := graph.Lookup(opts.typeName)
		if err != nil {
			return err
		}
		ids = []analyze.TypeID{id}
	}

	lookup := rowmap.TagsFor(strings.Split(opts.tags, ",")...)
	resolver := rowmap.NewResolver(rowmap.WithCache())
	docs := make([]export.Document, 0, len(ids))
	file := &model.File{Version: "1"}

	for _, id := range ids {
		desc, err := graph.Descriptor(id, lookup)
		if err != nil {
			return err
		}

		global.dump(cmd, desc)

		mappings, err := resolver.Resolve(desc)
		if err != nil {
			return err
		}

		name := common.QualifiedName(id.PkgPath, id.Name)
		global.logger.Debug("resolved type", "type", id.String(), "columns", len(mappings))
		docs = append(docs, export.Document{Type: name, Mappings: mappings})
		file.Models = append(file.Models, model.FromDescriptor(name, desc))
	}

	if opts.emit != "" {
		if err := model.WriteFile(file, opts.emit); err != nil {
			return err
		}
		global.logger.Info("wrote model file", "path", opts.emit, "models", len(file.Models))
	}

	global.logger.Debug("resolution done", "types", len(ids), "cached", resolver.CachedTypes())

	return render(cmd.OutOrStdout(), opts.format, docs)
}
