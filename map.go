package dawg

// Map is the key/value facade: it stores each pair as
// a single automaton string key+sep+value, relying on sep (the
// reserved NUL code unit) sorting below every other unit so that an
// entry for a key always immediately follows that bare key in
// automaton order and always precedes every entry whose key properly
// extends it. Keys and values must not themselves contain the sep
// unit; Put rejects any pair that does, since accepting one would let
// it collide with the very separator the facade is built on.
type Map struct {
	b *Builder
}

// NewMap returns an empty map.
func NewMap() *Map { return &Map{b: NewBuilder()} }

// Size returns the number of key/value pairs stored.
func (m *Map) Size() int {
	n := 0
	for range m.entries().All() {
		n++
	}
	return n
}

func joinKV(key, value string) string {
	return decode(append(encode(key), append([]uint16{sep}, encode(value)...)...))
}

// containsSep reports whether s embeds the reserved key/value
// separator, which would let it collide with the sep a facade joins
// key and value on.
func containsSep(s string) bool {
	return containsUnits(encode(s), []uint16{sep})
}

// entries returns a View restricted to nothing in particular: the
// whole backing automaton, whose contents are always key+sep+value
// strings.
func (m *Map) entries() View { return NewView(m.b) }

// Get returns the value stored for key, if any.
func (m *Map) Get(key string) (string, bool) {
	v := m.entries().PrefixSet(key + string(rune(sep)))
	full, ok := v.First()
	if !ok {
		return "", false
	}
	return full[len(key)+1:], true
}

// Put stores value under key, replacing any previous value, and
// returns the previous value if one existed. Put rejects a key or
// value embedding the reserved separator with ErrArgumentInvalid,
// leaving the map unchanged.
func (m *Map) Put(key, value string) (old string, hadOld bool, err error) {
	if containsSep(key) || containsSep(value) {
		return "", false, wrapf("Map.Put", ErrArgumentInvalid, "key or value must not contain the reserved separator")
	}
	old, hadOld = m.Get(key)
	if hadOld && old == value {
		return old, true, nil
	}
	if hadOld {
		m.b.Remove(joinKV(key, old))
	}
	m.b.Add(joinKV(key, value))
	return old, hadOld, nil
}

// Remove deletes key, returning the value it held if present.
func (m *Map) Remove(key string) (string, bool) {
	old, ok := m.Get(key)
	if !ok {
		return "", false
	}
	m.b.Remove(joinKV(key, old))
	return old, true
}

// ContainsKey reports whether key has a stored value.
func (m *Map) ContainsKey(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// boundAfterKey is the smallest string guaranteed to exceed every
// entry for key while staying below every entry whose key properly
// extends key: one unit past the separator.
func boundAfterKey(key string) string {
	return decode(append(encode(key), sep+1))
}

// LowerKey returns the greatest stored key strictly less than key.
func (m *Map) LowerKey(key string) (string, bool) {
	full, ok := m.entries().Lower(key)
	if !ok {
		return "", false
	}
	return keyPart(full), true
}

// FloorKey returns the greatest stored key <= key.
func (m *Map) FloorKey(key string) (string, bool) {
	full, ok := m.entries().Floor(boundAfterKey(key))
	if !ok {
		return "", false
	}
	return keyPart(full), true
}

// CeilingKey returns the least stored key >= key.
func (m *Map) CeilingKey(key string) (string, bool) {
	full, ok := m.entries().Ceiling(key)
	if !ok {
		return "", false
	}
	return keyPart(full), true
}

// HigherKey returns the least stored key strictly greater than key.
func (m *Map) HigherKey(key string) (string, bool) {
	full, ok := m.entries().Higher(boundAfterKey(key))
	if !ok {
		return "", false
	}
	return keyPart(full), true
}

func keyPart(entry string) string {
	units := encode(entry)
	for i, u := range units {
		if u == sep {
			return decode(units[:i])
		}
	}
	return entry
}
