package serializer

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dict is a string-keyed mapping that remembers insertion order, so encoded
// output follows field declaration order instead of sorted keys. Set, Get,
// Len and MarshalJSON come from the embedded ordered map.
type Dict struct {
	*orderedmap.OrderedMap[string, any]
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{OrderedMap: orderedmap.New[string, any]()}
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.Len())
	for pair := d.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
