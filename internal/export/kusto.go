package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"row-mapper/internal/rowmap"
)

// KustoColumn is one entry of a Kusto JSON ingestion mapping.
type KustoColumn struct {
	Column     string          `json:"column"`
	DataType   string          `json:"datatype,omitempty"`
	Properties KustoProperties `json:"Properties"`
}

// KustoProperties holds the source path of a Kusto column.
type KustoProperties struct {
	Path string `json:"Path"`
}

// KustoMapping converts mappings into Kusto JSON ingestion mapping entries.
// The path reads the original member name; the column carries the renamed one.
func KustoMapping(mappings []rowmap.ColumnMapping) []KustoColumn {
	columns := make([]KustoColumn, 0, len(mappings))
	for _, m := range mappings {
		columns = append(columns, KustoColumn{
			Column:     m.ColumnName,
			DataType:   KustoType(m.DataType),
			Properties: KustoProperties{Path: JSONPath(m.SourcePath)},
		})
	}

	return columns
}

// KustoJSON renders mappings as an indented Kusto JSON ingestion mapping.
func KustoJSON(mappings []rowmap.ColumnMapping) ([]byte, error) {
	data, err := json.MarshalIndent(KustoMapping(mappings), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal kusto mapping: %w", err)
	}

	return data, nil
}

// KustoType maps a Go type name to a Kusto scalar type.
// Pointers map like their element; unknown types become "dynamic".
func KustoType(goType string) string {
	switch strings.TrimLeft(goType, "*") {
	case "bool":
		return "bool"
	case "int8", "int16", "int32", "uint8", "uint16":
		return "int"
	case "int", "int64", "uint", "uint32", "uint64", "uintptr":
		return "long"
	case "float32", "float64":
		return "real"
	case "string":
		return "string"
	case "time.Time":
		return "datetime"
	case "time.Duration":
		return "timespan"
	default:
		return "dynamic"
	}
}
