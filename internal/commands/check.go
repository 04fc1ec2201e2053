package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"row-mapper/internal/model"
)

func newCheckCmd(global *globalOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a YAML model file",
		Long: `Validate a YAML model file and print every diagnostic.
Exits non-zero when the file has errors; warnings and infos are reported only.`,
		Example: `  row-mapper check --models models.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, global, path)
		},
	}

	cmd.Flags().StringVarP(&path, "models", "m", "", "path to the YAML model file")
	_ = cmd.MarkFlagRequired("models")

	return cmd
}

func runCheck(cmd *cobra.Command, global *globalOptions, path string) error {
	file, err := model.LoadFile(path)
	if err != nil {
		return err
	}

	diags := model.Validate(file)
	out := cmd.OutOrStdout()

	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	global.logger.Debug("checked model file", "file", path,
		"errors", len(diags.Errors), "warnings", len(diags.Warnings), "infos", len(diags.Infos))

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", path, len(diags.Errors))
	}

	_, _ = fmt.Fprintf(out, "%s: ok (%d models)\n", path, len(file.Models))

	return nil
}
