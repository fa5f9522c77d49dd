package models

// Collection maps identifiers to records and remembers insertion order, so
// every listing built from it comes out in a stable order.
// The zero value is an empty collection ready to use.
type Collection[K ~string, V any] struct {
	order []K
	items map[K]V
}

// Len returns the number of records
func (c *Collection[K, V]) Len() int {
	return len(c.order)
}

// Get returns the record stored under id
func (c *Collection[K, V]) Get(id K) (V, bool) {
	v, ok := c.items[id]
	return v, ok
}

// Has reports whether id is present
func (c *Collection[K, V]) Has(id K) bool {
	_, ok := c.items[id]
	return ok
}

// Set stores v under id. An existing id keeps its position.
func (c *Collection[K, V]) Set(id K, v V) {
	if c.items == nil {
		c.items = make(map[K]V)
	}
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

// Delete removes id and reports whether it was present
func (c *Collection[K, V]) Delete(id K) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the identifiers in insertion order
func (c *Collection[K, V]) Keys() []K {
	keys := make([]K, len(c.order))
	copy(keys, c.order)
	return keys
}

// Values returns the records in insertion order
func (c *Collection[K, V]) Values() []V {
	values := make([]V, 0, len(c.order))
	for _, k := range c.order {
		values = append(values, c.items[k])
	}
	return values
}

// Any reports whether some record satisfies match
func (c *Collection[K, V]) Any(match func(V) bool) bool {
	for _, k := range c.order {
		if match(c.items[k]) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy. Records are plain values so copying
// them is enough.
func (c *Collection[K, V]) Clone() Collection[K, V] {
	out := Collection[K, V]{
		order: make([]K, len(c.order)),
		items: make(map[K]V, len(c.items)),
	}
	copy(out.order, c.order)
	for k, v := range c.items {
		out.items[k] = v
	}
	return out
}
