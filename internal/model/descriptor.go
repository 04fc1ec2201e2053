package model

import (
	"errors"
	"fmt"

	"row-mapper/internal/match"
	"row-mapper/internal/rowmap"
)

var (
	// ErrModelNotFound is returned when a model or base name is not defined.
	ErrModelNotFound = errors.New("model not found")
	// ErrBaseCycle is returned when a base chain loops back on itself.
	ErrBaseCycle = errors.New("base chain forms a cycle")
)

// Descriptor builds the descriptor of the named model. Layers follow the
// base chain, the named model first.
func (f *File) Descriptor(name string) (*rowmap.Descriptor, error) {
	desc := &rowmap.Descriptor{ID: name}
	visited := make(map[string]bool)

	for depth, current := 0, name; current != ""; depth++ {
		if visited[current] {
			return nil, fmt.Errorf("%w: %s", ErrBaseCycle, name)
		}
		visited[current] = true

		m, ok := f.Model(current)
		if !ok {
			return nil, fmt.Errorf("%w: %s%s", ErrModelNotFound, current, match.DidYouMean(current, f.modelNames()))
		}

		layer := rowmap.Layer{Type: m.Name}
		for _, def := range m.Members {
			member, err := toMember(def, depth)
			if err != nil {
				return nil, fmt.Errorf("model %s: %w", m.Name, err)
			}

			layer.Members = append(layer.Members, member)
		}

		desc.IsRow = desc.IsRow || m.Row
		desc.Hierarchy = append(desc.Hierarchy, layer)
		current = m.Base
	}

	return desc, nil
}

// RowModels returns the names of all models carrying the row capability,
// directly or through a base, in file order.
func (f *File) RowModels() []string {
	var names []string

	for _, m := range f.Models {
		desc, err := f.Descriptor(m.Name)
		if err != nil || !desc.IsRow {
			continue
		}

		names = append(names, m.Name)
	}

	return names
}

func toMember(def MemberDef, depth int) (rowmap.Member, error) {
	kind, ok := rowmap.ParseMemberKind(def.Kind)
	if !ok {
		return rowmap.Member{}, fmt.Errorf("member %s: invalid kind %q", def.Name, def.Kind)
	}

	member := rowmap.Member{
		Name:     def.Name,
		Kind:     kind,
		Depth:    depth,
		Rename:   def.Rename,
		Ignored:  def.Ignore,
		DataType: def.Type,
	}

	var err error

	switch kind {
	case rowmap.KindField:
		member.Read, err = parseAccessor(def.Access, false)
		member.Write = member.Read
	case rowmap.KindProperty:
		member.Read, err = parseAccessor(def.Getter, true)
		if err == nil {
			member.Write, err = parseAccessor(def.Setter, true)
		}
	}

	if err != nil {
		return rowmap.Member{}, fmt.Errorf("member %s: %w", def.Name, err)
	}

	return member, nil
}

// parseAccessor maps a visibility string to an Access. An absent accessor is
// not readable, so "none" maps to AccessNonPublic.
func parseAccessor(value string, allowNone bool) (rowmap.Access, error) {
	if allowNone && value == AccessorNone {
		return rowmap.AccessNonPublic, nil
	}

	access, ok := rowmap.ParseAccess(value)
	if !ok {
		return 0, fmt.Errorf("invalid access %q", value)
	}

	return access, nil
}
