package rowmap

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidModelType is returned when a type does not carry the row capability.
var ErrInvalidModelType = errors.New("rowmap: type is not a row model")

// Resolver derives column mappings from type descriptors.
// A Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	cache *Cache
	tags  TagLookup
	rows  map[reflect.Type]struct{}
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache memoizes resolved mappings per TypeID.
func WithCache() Option {
	return func(r *Resolver) {
		r.cache = NewCache()
	}
}

// WithTagLookup replaces DefaultTags for reflected types.
func WithTagLookup(lookup TagLookup) Option {
	return func(r *Resolver) {
		r.tags = lookup
	}
}

// WithRowTypes grants the row capability to types that cannot declare TableRow,
// typically because they live in another module.
func WithRowTypes(types ...reflect.Type) Option {
	return func(r *Resolver) {
		for _, t := range types {
			r.rows[indirect(t)] = struct{}{}
		}
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		tags: DefaultTags,
		rows: make(map[reflect.Type]struct{}),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the column mappings of desc.
// It fails with ErrInvalidModelType before inspecting any member when desc is
// not a row model; a row model without eligible members yields an empty slice.
func (r *Resolver) Resolve(desc TypeDescriptor) ([]ColumnMapping, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrInvalidModelType)
	}

	if !desc.RowModel() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModelType, desc.TypeID())
	}

	if r.cache == nil {
		return resolveLayers(desc.Layers()), nil
	}

	return r.cache.Load(cacheKey(desc), func() []ColumnMapping {
		return resolveLayers(desc.Layers())
	}), nil
}

// CachedTypes returns how many types the resolver has memoized, or 0 when
// it was built without WithCache.
func (r *Resolver) CachedTypes() int {
	if r.cache == nil {
		return 0
	}

	return r.cache.Size()
}

// cacheKey prefers a descriptor's own key over its TypeID.
func cacheKey(desc TypeDescriptor) any {
	if keyed, ok := desc.(interface{ CacheKey() any }); ok {
		if key := keyed.CacheKey(); key != nil {
			return key
		}
	}

	return desc.TypeID()
}

// ResolveType describes t by reflection and resolves it.
func (r *Resolver) ResolveType(t reflect.Type) ([]ColumnMapping, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrInvalidModelType)
	}

	desc := DescribeWith(t, r.tags)
	if _, ok := r.rows[indirect(t)]; ok && indirect(t).Kind() == reflect.Struct {
		desc.IsRow = true
	}

	return r.Resolve(desc)
}

// resolveLayers folds the layers most-derived first. The first member seen
// with a given name decides for that name, eligible or not.
func resolveLayers(layers []Layer) []ColumnMapping {
	mappings := []ColumnMapping{}
	seen := make(map[string]struct{})
	columns := make(map[string]struct{})

	for _, layer := range layers {
		for _, m := range layer.Members {
			if _, shadowed := seen[m.Name]; shadowed {
				continue
			}

			seen[m.Name] = struct{}{}

			if !m.Eligible() {
				continue
			}

			column := m.ColumnName()
			if _, taken := columns[column]; taken {
				continue
			}

			columns[column] = struct{}{}
			mappings = append(mappings, ColumnMapping{
				ColumnName: column,
				SourcePath: m.Name,
				DataType:   m.DataType,
			})
		}
	}

	return mappings
}
