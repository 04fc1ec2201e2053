package rowmap

import (
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache stores resolved mappings per type identity.
// Type metadata never changes after load, so entries are inserted once and
// never expire.
type Cache struct {
	entries sync.Map // key -> []ColumnMapping
	flights sync.Map // key -> singleflight key
	seq     atomic.Uint64
	group   singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Load returns the mappings stored for key, computing them on first use.
// key must be comparable; a reflect.Type or a type id string both work.
// Concurrent first loads of the same key share a single computation.
// The returned slice is a copy owned by the caller.
func (c *Cache) Load(key any, compute func() []ColumnMapping) []ColumnMapping {
	if v, ok := c.entries.Load(key); ok {
		return slices.Clone(v.([]ColumnMapping))
	}

	v, _, _ := c.group.Do(c.flightKey(key), func() (any, error) {
		if v, ok := c.entries.Load(key); ok {
			return v, nil
		}

		actual, _ := c.entries.LoadOrStore(key, compute())

		return actual, nil
	})

	return slices.Clone(v.([]ColumnMapping))
}

// flightKey gives every distinct key its own singleflight name, so keys that
// print alike never share a computation.
func (c *Cache) flightKey(key any) string {
	if name, ok := c.flights.Load(key); ok {
		return name.(string)
	}

	name, _ := c.flights.LoadOrStore(key, strconv.FormatUint(c.seq.Add(1), 10))

	return name.(string)
}

// Size returns the number of cached types.
func (c *Cache) Size() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}
