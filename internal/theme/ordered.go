package theme

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is a string-keyed map that keeps insertion order when
// serialized. Values are written without HTML escaping.
type OrderedMap[V any] = orderedmap.OrderedMap[string, V]

// ColorMap maps UI surface keys to color strings.
type ColorMap = OrderedMap[string]

// SemanticColors maps semantic token selectors to styles.
type SemanticColors = OrderedMap[Settings]

// NewOrderedMap returns an empty map with room for size entries. Decode
// into a map built here to keep HTML escaping off when it is written back.
func NewOrderedMap[V any](size int) *OrderedMap[V] {
	return orderedmap.New[string, V](
		orderedmap.WithCapacity[string, V](size),
		orderedmap.WithDisableHTMLEscape[string, V](),
	)
}

// Keys returns the keys of m in insertion order.
func Keys[V any](m *OrderedMap[V]) []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
