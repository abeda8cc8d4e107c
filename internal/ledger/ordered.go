package ledger

// orderedMap is a map that iterates in first-insertion order.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{values: make(map[K]V)}
}

func (m *orderedMap[K, V]) get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// set stores v under k. A new key is appended to the iteration order; an
// existing key keeps its position.
func (m *orderedMap[K, V]) set(k K, v V) {
	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *orderedMap[K, V]) len() int { return len(m.keys) }

func (m *orderedMap[K, V]) each(fn func(K, V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
