package analyze

import (
	"fmt"
	"sort"
	"strings"

	"row-mapper/internal/match"
	"row-mapper/internal/rowmap"
)

// RowTypes returns the row model structs of the loaded packages, sorted by id.
// Types from dependencies are excluded.
func (g *TypeGraph) RowTypes() []TypeID {
	var ids []TypeID

	for _, pkg := range g.Packages {
		for _, id := range pkg.Types {
			info := g.Types[id]
			if info != nil && info.IsRow && info.Kind == TypeKindStruct {
				ids = append(ids, id)
			}
		}
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids
}

// Lookup finds a type across loaded packages. name is either a bare type
// name, a short "pkg.Name" or a full "import/path.Name".
// It fails when the name is missing or ambiguous.
func (g *TypeGraph) Lookup(name string) (TypeID, error) {
	var (
		found []TypeID
		names []string
	)

	for _, pkg := range g.Packages {
		for _, id := range pkg.Types {
			names = append(names, id.Name)
			if matchesName(id, name) {
				found = append(found, id)
			}
		}
	}

	switch len(found) {
	case 0:
		sort.Strings(names)
		return TypeID{}, fmt.Errorf("type %s not found%s", name, match.DidYouMean(name, names))
	case 1:
		return found[0], nil
	default:
		return TypeID{}, fmt.Errorf("type name %s is ambiguous: %v", name, found)
	}
}

func matchesName(id TypeID, name string) bool {
	if id.Name == name || id.String() == name {
		return true
	}

	lastDot := strings.LastIndex(name, ".")
	if lastDot <= 0 || name[lastDot+1:] != id.Name {
		return false
	}

	return strings.HasSuffix(id.PkgPath, "/"+name[:lastDot])
}

// Descriptor builds a row descriptor for id from source-level type info.
// Embedded structs without a rename become ancestor layers, breadth first,
// exactly as rowmap.DescribeWith does for reflected types.
func (g *TypeGraph) Descriptor(id TypeID, lookup rowmap.TagLookup) (*rowmap.Descriptor, error) {
	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	desc := &rowmap.Descriptor{
		ID:    id.String(),
		IsRow: info.IsRow && info.Kind == TypeKindStruct,
	}

	if info.Kind != TypeKindStruct {
		return desc, nil
	}

	type pending struct {
		info  *TypeInfo
		depth int
	}

	queue := []pending{{info: info}}
	visited := make(map[*TypeInfo]bool)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur.info] {
			continue
		}
		visited[cur.info] = true

		layer := rowmap.Layer{Type: layerName(cur.info)}

		for _, f := range cur.info.Fields {
			ann := lookup(f.Tag)

			if base := embeddedStruct(f); base != nil && ann.Rename == "" {
				if !ann.Ignored {
					queue = append(queue, pending{info: base, depth: cur.depth + 1})
				}
				continue
			}

			access := rowmap.AccessNonPublic
			if f.Exported {
				access = rowmap.AccessPublic
			}

			layer.Members = append(layer.Members, rowmap.Member{
				Name:     f.Name,
				Kind:     rowmap.KindField,
				Read:     access,
				Write:    access,
				Depth:    cur.depth,
				Rename:   ann.Rename,
				Ignored:  ann.Ignored,
				DataType: f.TypeName,
			})
		}

		desc.Hierarchy = append(desc.Hierarchy, layer)
	}

	return desc, nil
}

func embeddedStruct(f FieldInfo) *TypeInfo {
	if !f.Embedded || f.Type == nil {
		return nil
	}

	t := f.Type
	for t != nil && t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	if t == nil || t.Kind != TypeKindStruct {
		return nil
	}

	return t
}

func layerName(info *TypeInfo) string {
	if info.IsNamed() {
		return info.ID.String()
	}

	return typeString(info.GoType)
}
