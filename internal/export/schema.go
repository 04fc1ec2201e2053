package export

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"row-mapper/internal/rowmap"
)

// JSONSchema describes the ingested row: one property per column.
func JSONSchema(typeID string, mappings []rowmap.ColumnMapping) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Title:      typeID,
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(mappings)),
	}

	for _, m := range mappings {
		prop := columnSchema(m.DataType)
		if m.ColumnName != m.SourcePath {
			prop.Description = "source: " + m.SourcePath
		}

		schema.Properties[m.ColumnName] = prop
	}

	return schema
}

// JSONSchemaBytes renders JSONSchema as indented JSON.
func JSONSchemaBytes(typeID string, mappings []rowmap.ColumnMapping) ([]byte, error) {
	data, err := json.MarshalIndent(JSONSchema(typeID, mappings), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json schema: %w", err)
	}

	return data, nil
}

func columnSchema(goType string) *jsonschema.Schema {
	switch KustoType(goType) {
	case "bool":
		return &jsonschema.Schema{Type: "boolean"}
	case "int", "long":
		return &jsonschema.Schema{Type: "integer"}
	case "real":
		return &jsonschema.Schema{Type: "number"}
	case "string":
		return &jsonschema.Schema{Type: "string"}
	case "datetime":
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case "timespan":
		// time.Duration marshals as integer nanoseconds
		return &jsonschema.Schema{Type: "integer"}
	default:
		return &jsonschema.Schema{}
	}
}
