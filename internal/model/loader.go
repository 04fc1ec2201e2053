package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"row-mapper/internal/rowmap"
)

// LoadFile loads and parses a YAML model file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Models {
		for j := range f.Models[i].Members {
			m := &f.Models[i].Members[j]
			if m.Kind == "" {
				m.Kind = KindProperty
			}

			switch m.Kind {
			case KindProperty:
				if m.Getter == "" {
					m.Getter = rowmap.AccessPublic.String()
				}

				if m.Setter == "" {
					m.Setter = rowmap.AccessPublic.String()
				}
			case KindField:
				if m.Access == "" {
					m.Access = rowmap.AccessPublic.String()
				}
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal models: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model file %s: %w", path, err)
	}

	return nil
}
