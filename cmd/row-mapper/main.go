// Package main provides the CLI entrypoint for row-mapper.
//
// row-mapper derives ingestion column mappings from row models:
//   - Loads models from YAML model files or Go packages (AST + go/types)
//   - Applies the member selection policy (shadowing, rename, ignore, visibility)
//   - Emits tables, YAML, JSON, Kusto ingestion mappings or JSON Schema
package main

import (
	"os"

	"row-mapper/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
