package rowmap

//go:generate go tool stringer -type=MemberKind,Access -linecomment -output=member_string.go

// MemberKind distinguishes bare fields from property-like accessors.
type MemberKind int

const (
	KindField    MemberKind = iota // field
	KindProperty                   // property
)

// Access is the visibility of a member's read or write path.
type Access int

const (
	AccessPublic    Access = iota // public
	AccessNonPublic               // non-public
)

// ParseMemberKind converts the textual form produced by String back to a MemberKind.
func ParseMemberKind(s string) (MemberKind, bool) {
	switch s {
	case KindField.String():
		return KindField, true
	case KindProperty.String():
		return KindProperty, true
	default:
		return 0, false
	}
}

// ParseAccess converts the textual form produced by String back to an Access.
// "private" is accepted as an alias for non-public.
func ParseAccess(s string) (Access, bool) {
	switch s {
	case AccessPublic.String():
		return AccessPublic, true
	case AccessNonPublic.String(), "private":
		return AccessNonPublic, true
	default:
		return 0, false
	}
}

// Member describes one candidate data member of a row model.
type Member struct {
	Name string     // declared name
	Kind MemberKind // field or property
	// Read is the accessibility of the read path. For properties this is the
	// getter; a property without a getter is AccessNonPublic.
	Read Access
	// Write is recorded for completeness and never affects eligibility.
	Write    Access
	Depth    int    // 0 for the most-derived type, +1 per ancestor
	Rename   string // column override, empty when absent
	Ignored  bool
	DataType string // informational, e.g. "float32" or "time.Time"
}

// Eligible reports whether the member may produce a column mapping.
func (m Member) Eligible() bool {
	if m.Ignored {
		return false
	}

	return m.Read == AccessPublic
}

// ColumnName returns the rename annotation if present, otherwise the declared name.
func (m Member) ColumnName() string {
	if m.Rename != "" {
		return m.Rename
	}

	return m.Name
}

// Layer holds the members declared by one level of a type's ancestry.
type Layer struct {
	Type    string
	Members []Member
}

// TypeDescriptor is a reflective handle to a row model type.
type TypeDescriptor interface {
	// TypeID identifies the type. It is used as the cache key.
	TypeID() string
	// RowModel reports whether the type carries the row capability.
	RowModel() bool
	// Layers returns member layers, most-derived first.
	Layers() []Layer
}

// Descriptor is the TypeDescriptor produced by every descriptor builder.
type Descriptor struct {
	ID        string
	IsRow     bool
	Hierarchy []Layer
	// Key identifies the type in a Cache when ID alone is ambiguous.
	// Reflected descriptors set it to the reflect.Type, since types local
	// to different functions share a package path and name. Must be comparable.
	Key any
}

// TypeID implements TypeDescriptor.
func (d *Descriptor) TypeID() string { return d.ID }

// CacheKey returns Key, or ID when Key is unset.
func (d *Descriptor) CacheKey() any {
	if d.Key != nil {
		return d.Key
	}

	return d.ID
}

// RowModel implements TypeDescriptor.
func (d *Descriptor) RowModel() bool { return d.IsRow }

// Layers implements TypeDescriptor.
func (d *Descriptor) Layers() []Layer { return d.Hierarchy }

// ColumnMapping projects one source member onto one named column.
type ColumnMapping struct {
	ColumnName string `json:"column" yaml:"column"`
	SourcePath string `json:"path" yaml:"path"`
	DataType   string `json:"type,omitempty" yaml:"type,omitempty"`
}
