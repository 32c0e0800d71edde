package brd

// orderedMap is a name-keyed collection that preserves insertion order.
// Lookups go through the index; iteration always follows the order the
// entries were added, no matter how many lookups happened in between.
type orderedMap[V any] struct {
	index map[string]int
	names []string
	items []V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{index: make(map[string]int)}
}

// add appends the entry and reports whether the name was free. An
// existing name is left untouched.
func (m *orderedMap[V]) add(name string, v V) bool {
	if _, ok := m.index[name]; ok {
		return false
	}
	m.index[name] = len(m.items)
	m.names = append(m.names, name)
	m.items = append(m.items, v)
	return true
}

func (m *orderedMap[V]) get(name string) (V, bool) {
	i, ok := m.index[name]
	if !ok {
		var zero V
		return zero, false
	}
	return m.items[i], true
}

func (m *orderedMap[V]) len() int { return len(m.items) }

// values returns the entries in insertion order. The slice aliases the
// internal storage and must not be mutated.
func (m *orderedMap[V]) values() []V { return m.items }

// keys returns the names in insertion order.
func (m *orderedMap[V]) keys() []string { return m.names }
