package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"row-mapper/internal/rowmap"
)

// Document is the export of one resolved type.
type Document struct {
	Type     string                 `json:"type" yaml:"type"`
	Mappings []rowmap.ColumnMapping `json:"mappings" yaml:"mappings"`
}

// YAML renders the mappings of each type as a multi-document YAML stream.
func YAML(docs ...Document) ([]byte, error) {
	var out []byte

	for i, doc := range docs {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal mappings of %s: %w", doc.Type, err)
		}

		if i > 0 {
			out = append(out, "---\n"...)
		}

		out = append(out, data...)
	}

	return out, nil
}
