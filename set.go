package dawg

import "iter"

// View is a NavigableSet-style live window onto a graphSource:
// subSet/headSet/tailSet/prefixSet narrow the window
// by returning a new View carrying a refined Query, and
// first/last/lower/floor/ceiling/higher answer single-element
// questions against it. A View over a Builder is live in the
// ordinary Go sense: it holds no snapshot, so mutations made to the
// Builder after the View was created are visible on the next
// traversal.
type View struct {
	g graphSource
	q Query
}

// NewView returns the unrestricted view over every string in g.
func NewView(g graphSource) View { return View{g: g} }

// All returns the view's contents in ascending order.
func (v View) All() iter.Seq[string] { return Enumerate(v.g, v.q) }

// Descending returns the same elements in descending order.
func (v View) Descending() iter.Seq[string] {
	q := v.q
	q.Descending = true
	return Enumerate(v.g, q)
}

// Size returns the number of elements currently in the view.
func (v View) Size() int { return Count(v.All()) }

// Contains reports whether s is both stored and within the view's
// current bounds.
func (v View) Contains(s string) bool {
	return v.inBounds(s) && containsGraph(v.g, encode(s))
}

// inBounds reports whether s satisfies the view's prefix and range
// constraints, independent of whether it is actually stored.
func (v View) inBounds(s string) bool {
	units := encode(s)
	return hasPrefixUnits(units, encode(v.q.Prefix)) && v.q.matches(units)
}

func containsGraph(g graphSource, units []uint16) bool {
	s := g.root()
	for _, u := range units {
		next, ok := childByLabel(g, s, u)
		if !ok {
			return false
		}
		s = next
	}
	return g.isAccept(s)
}

// PrefixSet narrows the view to strings beginning with prefix,
// composing with any prefix already in effect.
func (v View) PrefixSet(prefix string) View {
	q := v.q
	q.Prefix = q.Prefix + prefix
	return View{v.g, q}
}

// SubSet narrows the view to [from, to) (or other combinations of
// inclusive/exclusive bounds), intersected with any bounds already in
// effect.
func (v View) SubSet(from string, fromInclusive bool, to string, toInclusive bool) View {
	q := mergeFrom(v.q, from, fromInclusive)
	q = mergeTo(q, to, toInclusive)
	return View{v.g, q}
}

// HeadSet narrows the view to strings <= to (or < to).
func (v View) HeadSet(to string, inclusive bool) View {
	return View{v.g, mergeTo(v.q, to, inclusive)}
}

// TailSet narrows the view to strings >= from (or > from).
func (v View) TailSet(from string, inclusive bool) View {
	return View{v.g, mergeFrom(v.q, from, inclusive)}
}

func mergeFrom(q Query, key string, inclusive bool) Query {
	if q.HasFrom {
		c := compareUnits(encode(key), encode(q.From))
		if c < 0 || (c == 0 && q.FromExclusive) {
			return q // existing bound is already tighter
		}
	}
	q.HasFrom = true
	q.From = key
	q.FromExclusive = !inclusive
	return q
}

func mergeTo(q Query, key string, inclusive bool) Query {
	if q.HasTo {
		c := compareUnits(encode(key), encode(q.To))
		if c > 0 || (c == 0 && q.ToExclusive) {
			return q
		}
	}
	q.HasTo = true
	q.To = key
	q.ToExclusive = !inclusive
	return q
}

// First returns the least element in the view.
func (v View) First() (string, bool) { return First(v.All()) }

// Last returns the greatest element in the view.
func (v View) Last() (string, bool) { return First(v.Descending()) }

// Ceiling returns the least element >= key.
func (v View) Ceiling(key string) (string, bool) {
	q := mergeFrom(v.q, key, true)
	return First(Enumerate(v.g, q))
}

// Higher returns the least element > key.
func (v View) Higher(key string) (string, bool) {
	q := mergeFrom(v.q, key, false)
	return First(Enumerate(v.g, q))
}

// Floor returns the greatest element <= key.
func (v View) Floor(key string) (string, bool) {
	q := mergeTo(v.q, key, true)
	q.Descending = true
	return First(Enumerate(v.g, q))
}

// Lower returns the greatest element < key.
func (v View) Lower(key string) (string, bool) {
	q := mergeTo(v.q, key, false)
	q.Descending = true
	return First(Enumerate(v.g, q))
}

// BuilderSet is a View permanently anchored to a mutable Builder,
// adding the two destructive NavigableSet operations, pollFirst and
// pollLast, that only make sense against something that can be
// edited.
type BuilderSet struct {
	View
	b *Builder
}

// NewBuilderSet returns the unrestricted, mutation-capable view over
// b's contents.
func NewBuilderSet(b *Builder) BuilderSet {
	return BuilderSet{View: NewView(b), b: b}
}

// PrefixSet narrows the set to strings beginning with prefix,
// preserving mutability (Add/PollFirst/PollLast) over the narrowed
// bounds.
func (s BuilderSet) PrefixSet(prefix string) BuilderSet {
	return BuilderSet{View: s.View.PrefixSet(prefix), b: s.b}
}

// SubSet narrows the set to [from, to), preserving mutability.
func (s BuilderSet) SubSet(from string, fromInclusive bool, to string, toInclusive bool) BuilderSet {
	return BuilderSet{View: s.View.SubSet(from, fromInclusive, to, toInclusive), b: s.b}
}

// HeadSet narrows the set to strings <= to (or < to), preserving
// mutability.
func (s BuilderSet) HeadSet(to string, inclusive bool) BuilderSet {
	return BuilderSet{View: s.View.HeadSet(to, inclusive), b: s.b}
}

// TailSet narrows the set to strings >= from (or > from), preserving
// mutability.
func (s BuilderSet) TailSet(from string, inclusive bool) BuilderSet {
	return BuilderSet{View: s.View.TailSet(from, inclusive), b: s.b}
}

// Add inserts s into the backing builder, enforcing the NavigableSet
// sub-view contract that an element added through a bounded view must
// itself lie within that view's bounds: a prefix/range-violating s is
// rejected with ErrOutOfRange rather than silently accepted, leaving
// the builder unchanged.
func (s BuilderSet) Add(str string) error {
	if !s.inBounds(str) {
		return wrapf("BuilderSet.Add", ErrOutOfRange, "%q is outside this view's bounds", str)
	}
	s.b.Add(str)
	return nil
}

// PollFirst removes and returns the least element, if any.
func (s BuilderSet) PollFirst() (string, bool) {
	v, ok := s.First()
	if !ok {
		return "", false
	}
	s.b.Remove(v)
	return v, true
}

// PollLast removes and returns the greatest element, if any.
func (s BuilderSet) PollLast() (string, bool) {
	v, ok := s.Last()
	if !ok {
		return "", false
	}
	s.b.Remove(v)
	return v, true
}
