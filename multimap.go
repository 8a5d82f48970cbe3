package dawg

// MultiMap is the multi-valued facade: like Map it
// stores each pair as key+sep+value, but never replaces on Put, so a
// single key may back any number of distinct values. Values returns a
// live projection of a key's value set, backed by the same View
// machinery used for the top-level navigable views.
type MultiMap struct {
	b *Builder
}

// NewMultiMap returns an empty multimap.
func NewMultiMap() *MultiMap { return &MultiMap{b: NewBuilder()} }

// Put adds value under key, returning true unless that exact pair was
// already present. Put rejects a key or value embedding the reserved
// separator with ErrArgumentInvalid, leaving the map unchanged.
func (m *MultiMap) Put(key, value string) (bool, error) {
	if containsSep(key) || containsSep(value) {
		return false, wrapf("MultiMap.Put", ErrArgumentInvalid, "key or value must not contain the reserved separator")
	}
	return m.b.Add(joinKV(key, value)), nil
}

// Remove deletes one specific (key, value) pair, returning true if it
// was present.
func (m *MultiMap) Remove(key, value string) bool {
	return m.b.Remove(joinKV(key, value))
}

// RemoveAll deletes every value stored under key, returning how many
// were removed.
func (m *MultiMap) RemoveAll(key string) int {
	n := 0
	for _, v := range m.valuesSnapshot(key) {
		if m.b.Remove(joinKV(key, v)) {
			n++
		}
	}
	return n
}

// valuesSnapshot materializes the current value set for key; Remove
// cannot safely mutate the automaton while Values' lazy view is still
// walking it, so RemoveAll snapshots first.
func (m *MultiMap) valuesSnapshot(key string) []string {
	var out []string
	for v := range m.Values(key) {
		out = append(out, v)
	}
	return out
}

// Values returns a live, lazily-enumerated view of every value
// currently stored under key, in ascending order.
func (m *MultiMap) Values(key string) func(yield func(string) bool) {
	prefix := key + string(rune(sep))
	view := NewView(m.b).PrefixSet(prefix)
	return func(yield func(string) bool) {
		for full := range view.All() {
			if !yield(full[len(prefix):]) {
				return
			}
		}
	}
}

// ContainsKey reports whether key has at least one stored value.
func (m *MultiMap) ContainsKey(key string) bool {
	_, ok := First(m.Values(key))
	return ok
}

// ContainsEntry reports whether the exact (key, value) pair is
// stored.
func (m *MultiMap) ContainsEntry(key, value string) bool {
	return m.b.Contains(joinKV(key, value))
}

// Size returns the total number of (key, value) pairs across all
// keys.
func (m *MultiMap) Size() int { return m.b.Size() }
