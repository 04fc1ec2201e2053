package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"row-mapper/internal/common"
	"row-mapper/internal/export"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatYAML   = "yaml"
	FormatJSON   = "json"
	FormatKusto  = "kusto"
	FormatSchema = "schema"
)

var formats = []string{FormatTable, FormatYAML, FormatJSON, FormatKusto, FormatSchema}

func validateFormat(format string) error {
	for _, f := range formats {
		if f == format {
			return nil
		}
	}

	return fmt.Errorf("unknown format %q (expected one of %v)", format, formats)
}

// render writes the resolved documents in the requested format.
// kusto and schema describe a single table and need exactly one document.
func render(w io.Writer, format string, docs []export.Document) error {
	switch format {
	case FormatTable:
		return renderTable(w, docs)

	case FormatYAML:
		data, err := export.YAML(docs...)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case FormatJSON:
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal mappings: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatKusto, FormatSchema:
		doc, ok := common.First(docs)
		if !ok || len(docs) > 1 {
			return fmt.Errorf("format %s needs exactly one type, got %d; use --type", format, len(docs))
		}

		var (
			data []byte
			err  error
		)
		if format == FormatKusto {
			data, err = export.KustoJSON(doc.Mappings)
		} else {
			data, err = export.JSONSchemaBytes(doc.Type, doc.Mappings)
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(data))
		return err

	default:
		return validateFormat(format)
	}
}

func renderTable(w io.Writer, docs []export.Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TYPE\tCOLUMN\tSOURCE\tDATATYPE")

	for _, doc := range docs {
		if common.IsEmpty(doc.Mappings) {
			_, _ = fmt.Fprintf(tw, "%s\t-\t-\t-\n", doc.Type)
			continue
		}

		for _, m := range doc.Mappings {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", doc.Type, m.ColumnName, m.SourcePath, export.KustoType(m.DataType))
		}
	}

	return tw.Flush()
}
