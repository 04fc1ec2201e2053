package rowmap

import (
	"reflect"
	"strings"
)

// Annotation is the per-member metadata that affects column mapping.
type Annotation struct {
	Rename  string
	Ignored bool
}

// TagLookup reads the annotation carried by a struct tag.
type TagLookup func(tag reflect.StructTag) Annotation

// TagKeys are consulted in order by DefaultTags. The first key present on a
// field decides its annotation.
var TagKeys = []string{"kusto", "json"}

// DefaultTags reads "kusto" and then "json" tags using encoding/json conventions.
func DefaultTags(tag reflect.StructTag) Annotation {
	return TagsFor(TagKeys...)(tag)
}

// TagsFor returns a TagLookup that consults the given keys in order.
//
//	`kusto:"some_float"`   -> rename to some_float
//	`json:"name,omitempty"` -> rename to name
//	`json:",omitempty"`     -> no annotation
//	`json:"-"`              -> ignored
//	`json:"-,"`             -> rename to "-"
func TagsFor(keys ...string) TagLookup {
	return func(tag reflect.StructTag) Annotation {
		for _, key := range keys {
			value, ok := tag.Lookup(key)
			if !ok {
				continue
			}

			return parseTagValue(value)
		}

		return Annotation{}
	}
}

func parseTagValue(value string) Annotation {
	if value == "-" {
		return Annotation{Ignored: true}
	}

	name, _, _ := strings.Cut(value, ",")

	return Annotation{Rename: name}
}
