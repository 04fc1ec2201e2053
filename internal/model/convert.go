package model

import "row-mapper/internal/rowmap"

// FromDescriptor flattens desc into one model without a base. Members hidden
// by a more-derived declaration are dropped, so the model resolves to the
// same mappings as desc.
func FromDescriptor(name string, desc rowmap.TypeDescriptor) Model {
	m := Model{Name: name, Row: desc.RowModel()}
	seen := make(map[string]struct{})

	for _, layer := range desc.Layers() {
		for _, member := range layer.Members {
			if _, ok := seen[member.Name]; ok {
				continue
			}

			seen[member.Name] = struct{}{}
			m.Members = append(m.Members, fromMember(member))
		}
	}

	return m
}

func fromMember(member rowmap.Member) MemberDef {
	def := MemberDef{
		Name:   member.Name,
		Kind:   member.Kind.String(),
		Type:   member.DataType,
		Rename: member.Rename,
		Ignore: member.Ignored,
	}

	switch member.Kind {
	case rowmap.KindField:
		def.Access = member.Read.String()
	case rowmap.KindProperty:
		def.Getter = member.Read.String()
		def.Setter = member.Write.String()
	}

	return def
}
