package rowmap

import (
	"reflect"
)

// TableRow marks a type as eligible for row mapping. The method carries no
// behavior; declare it on the model or embed Row.
type TableRow interface {
	TableRow()
}

// Row can be embedded to give a struct the TableRow capability.
// It has no fields and contributes no columns.
type Row struct{}

// TableRow implements TableRow.
func (Row) TableRow() {}

var tableRowType = reflect.TypeFor[TableRow]()

// MappingsFor resolves T, whose row capability is checked at compile time.
// Only structs and pointers to structs are row models; MappingsFor panics
// with ErrInvalidModelType for any other T, such as an interface or a named
// scalar declaring TableRow.
func MappingsFor[T TableRow](r *Resolver) []ColumnMapping {
	mappings, err := r.ResolveType(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}

	return mappings
}

// Describe builds a descriptor for t using DefaultTags.
func Describe(t reflect.Type) *Descriptor {
	return DescribeWith(t, DefaultTags)
}

// DescribeWith builds a descriptor for t. Pointer types are dereferenced.
// Non-struct types are never row models, whatever methods they declare.
// Embedded structs without a rename become ancestor layers, visited breadth
// first so that shallower declarations come before deeper ones.
func DescribeWith(t reflect.Type, lookup TagLookup) *Descriptor {
	t = indirect(t)

	desc := &Descriptor{
		ID:    typeID(t),
		IsRow: t.Kind() == reflect.Struct && isRow(t),
		Key:   t,
	}

	if t.Kind() != reflect.Struct {
		return desc
	}

	type pending struct {
		t     reflect.Type
		depth int
	}

	queue := []pending{{t: t}}
	visited := make(map[reflect.Type]bool)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur.t] {
			continue
		}
		visited[cur.t] = true

		layer := Layer{Type: typeID(cur.t)}

		for i := range cur.t.NumField() {
			field := cur.t.Field(i)
			ann := lookup(field.Tag)

			if base, ok := embeddedStruct(field); ok && ann.Rename == "" {
				if !ann.Ignored {
					queue = append(queue, pending{t: base, depth: cur.depth + 1})
				}
				continue
			}

			access := AccessNonPublic
			if field.IsExported() {
				access = AccessPublic
			}

			layer.Members = append(layer.Members, Member{
				Name:     field.Name,
				Kind:     KindField,
				Read:     access,
				Write:    access,
				Depth:    cur.depth,
				Rename:   ann.Rename,
				Ignored:  ann.Ignored,
				DataType: field.Type.String(),
			})
		}

		desc.Hierarchy = append(desc.Hierarchy, layer)
	}

	return desc
}

func embeddedStruct(field reflect.StructField) (reflect.Type, bool) {
	if !field.Anonymous {
		return nil, false
	}

	t := indirect(field.Type)
	if t.Kind() != reflect.Struct {
		return nil, false
	}

	return t, true
}

func isRow(t reflect.Type) bool {
	return t.Implements(tableRowType) || reflect.PointerTo(t).Implements(tableRowType)
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

func typeID(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
