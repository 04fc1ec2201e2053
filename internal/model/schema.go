package model

// File represents the root of a YAML model definition file.
type File struct {
	// Version of the model schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Models is the list of model definitions.
	Models []Model `yaml:"models"`
}

// Model defines one row model type.
type Model struct {
	// Name identifies the model within the file.
	Name string `yaml:"name"`

	// Row marks the model as carrying the row capability.
	// Derived models inherit it from their bases.
	Row bool `yaml:"row,omitempty"`

	// Base names the model this one derives from.
	Base string `yaml:"base,omitempty"`

	// Members declared directly on this model.
	Members []MemberDef `yaml:"members,omitempty"`
}

// MemberDef declares one data member.
type MemberDef struct {
	Name string `yaml:"name"`

	// Kind is "property" or "field".
	Kind string `yaml:"kind,omitempty"`

	// Type is an informational type name passed through to exporters.
	Type string `yaml:"type,omitempty"`

	// Rename overrides the column name.
	Rename string `yaml:"rename,omitempty"`

	// Ignore excludes the member unconditionally.
	Ignore bool `yaml:"ignore,omitempty"`

	// Access is the visibility of a field.
	Access string `yaml:"access,omitempty"`

	// Getter and Setter are the visibility of a property's accessors.
	Getter string `yaml:"getter,omitempty"`
	Setter string `yaml:"setter,omitempty"`
}

// Accessor values besides "public", "non-public" and "private".
const (
	AccessorNone = "none"
)

// Kind values.
const (
	KindProperty = "property"
	KindField    = "field"
)

// Model returns the model with the given name.
func (f *File) Model(name string) (*Model, bool) {
	for i := range f.Models {
		if f.Models[i].Name == name {
			return &f.Models[i], true
		}
	}

	return nil, false
}

func (f *File) modelNames() []string {
	names := make([]string, 0, len(f.Models))
	for _, m := range f.Models {
		names = append(names, m.Name)
	}

	return names
}
