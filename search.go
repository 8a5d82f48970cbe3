package dawg

import (
	"iter"
	"sort"
)

// gChild is one outgoing edge as seen by the search engine, valid
// whether the underlying graph is a mutable Builder or a compact
// Automaton.
type gChild struct {
	label uint16
	next  any
}

// graphSource is the minimal interface the search engine needs from
// either automaton representation, so the same traversal code runs
// identically over the mutable and compact forms. State values are
// opaque: a *node for Builder, a small record descriptor for
// Automaton.
type graphSource interface {
	root() any
	isAccept(any) bool
	children(any) []gChild // ascending by label
}

// --- Builder as a graphSource ------------------------------------------

func (b *Builder) root() any { return b.source }

func (b *Builder) isAccept(s any) bool { return s.(*node).accept }

func (b *Builder) children(s any) []gChild {
	n := s.(*node)
	out := make([]gChild, len(n.labels))
	for i, l := range n.labels {
		out[i] = gChild{l, n.kids[i]}
	}
	return out
}

// --- Automaton as a graphSource -----------------------------------------

type autoState struct {
	record int
	atRoot bool
}

func (a *Automaton) root() any { return autoState{record: 0, atRoot: true} }

func (a *Automaton) isAccept(s any) bool {
	st := s.(autoState)
	return a.acceptAt(st.record, st.atRoot)
}

func (a *Automaton) children(s any) []gChild {
	st := s.(autoState)
	begin := a.beginAt(st.record, st.atRoot)
	arity := a.arityAt(st.record, st.atRoot)
	out := make([]gChild, arity)
	for i := 0; i < arity; i++ {
		r := begin + i
		out[i] = gChild{a.label(r), autoState{record: r, atRoot: false}}
	}
	return out
}

// Query describes a combined lazy search: any subset
// of Prefix/Substring/Suffix/From/To may be set at once, and all
// supplied constraints must hold simultaneously. The zero Query
// matches every stored string.
type Query struct {
	Prefix    string
	Substring string
	Suffix    string

	From, To               string
	FromExclusive          bool
	ToExclusive            bool
	HasFrom, HasTo         bool

	Descending bool
}

// matches reports whether the full candidate string (already known to
// be accepted) satisfies every constraint in q beyond the prefix,
// which the caller has already anchored the traversal to.
func (q Query) matches(units []uint16) bool {
	if q.Substring != "" && !containsUnits(units, encode(q.Substring)) {
		return false
	}
	if q.Suffix != "" && !hasSuffixUnits(units, encode(q.Suffix)) {
		return false
	}
	if q.HasFrom {
		c := compareUnits(units, encode(q.From))
		if c < 0 || (c == 0 && q.FromExclusive) {
			return false
		}
	}
	if q.HasTo {
		c := compareUnits(units, encode(q.To))
		if c > 0 || (c == 0 && q.ToExclusive) {
			return false
		}
	}
	return true
}

// pastTo reports whether units, as a strict prefix of every string it
// could still be extended into, is already guaranteed to exceed the
// To bound. This is the only constraint for which a partial prefix
// can soundly prune the rest of its subtree, since every string
// extending units compares >= units in lexicographic order.
func (q Query) pastTo(units []uint16) bool {
	if !q.HasTo {
		return false
	}
	return compareUnits(units, encode(q.To)) > 0
}

// Enumerate lazily walks g, yielding every stored string satisfying q
// in ascending or descending lexicographic order. When q asks for a
// non-empty Suffix with no Prefix and g is a Builder maintaining the
// incoming index, it dispatches to the backward-walking suffix-mode
// traversal of spec.md §4.6; otherwise the traversal follows
// q.Prefix deterministically (there is at most one matching path in
// a DAFSA) and performs an ordered forward DFS from there.
func Enumerate(g graphSource, q Query) iter.Seq[string] {
	if b, ok := g.(*Builder); ok && q.Suffix != "" && q.Prefix == "" && b.incoming.enabled {
		return enumerateSuffixMode(b, q)
	}
	return enumeratePrefixMode(g, q)
}

// enumerateSuffixMode implements the optional suffix-mode search of
// spec.md §4.6: starting from the accept-node endpoints of q.Suffix,
// it walks the incoming index backward to recover every word ending
// in that suffix, building each word right-to-left. This mode is
// strictly an optimization over enumeratePrefixMode's post-acceptance
// suffix check, so the multiset of candidates it finds before sorting
// must be identical; it earns its keep only on the backward walk
// itself, which can skip whole subtrees forward search would have to
// enter one character at a time.
func enumerateSuffixMode(b *Builder, q Query) iter.Seq[string] {
	suffix := encode(q.Suffix)
	idx := b.incoming

	frontier := idx.endPoints(suffix[len(suffix)-1])
	for i := len(suffix) - 1; i >= 0; i-- {
		next := make(map[*node]struct{})
		for n := range frontier {
			for p := range idx.predecessors(n, suffix[i]) {
				next[p] = struct{}{}
			}
		}
		frontier = next
	}

	var results [][]uint16
	var walkBack func(n *node, tail []uint16)
	walkBack = func(n *node, tail []uint16) {
		if n == b.source {
			word := append([]uint16(nil), tail...)
			if q.matches(word) {
				results = append(results, word)
			}
			return
		}
		for label, parents := range idx.preds[n] {
			for p := range parents {
				widened := append([]uint16{label}, tail...)
				walkBack(p, widened)
			}
		}
	}
	for n := range frontier {
		walkBack(n, suffix)
	}

	sort.Slice(results, func(i, j int) bool {
		c := compareUnits(results[i], results[j])
		if q.Descending {
			return c > 0
		}
		return c < 0
	})

	return func(yield func(string) bool) {
		for _, w := range results {
			if !yield(decode(w)) {
				return
			}
		}
	}
}

func enumeratePrefixMode(g graphSource, q Query) iter.Seq[string] {
	return func(yield func(string) bool) {
		prefixUnits := encode(q.Prefix)
		state := g.root()
		for _, u := range prefixUnits {
			next, ok := childByLabel(g, state, u)
			if !ok {
				return
			}
			state = next
		}

		var dfs func(s any, units []uint16) bool
		dfs = func(s any, units []uint16) bool {
			// emitSelf yields s's own string, if it qualifies. In
			// ascending order this runs before descending into s's
			// children, since a string always sorts below every
			// proper extension of itself; in descending order it
			// must run after them instead, as the "emit marker"
			// sentinel of spec.md §4.6 describes, so that every
			// longer word extending s precedes the shorter s itself.
			emitSelf := func() bool {
				if g.isAccept(s) && q.matches(units) {
					return yield(decode(units))
				}
				return true
			}

			kids := g.children(s)
			if q.Descending {
				for i := len(kids) - 1; i >= 0; i-- {
					next := append(append([]uint16(nil), units...), kids[i].label)
					if !dfs(kids[i].next, next) {
						return false
					}
				}
				return emitSelf()
			}

			if !emitSelf() {
				return false
			}
			for _, c := range kids {
				next := append(append([]uint16(nil), units...), c.label)
				if q.pastTo(next) {
					break // ascending order: every later sibling is >= this one
				}
				if !dfs(c.next, next) {
					return false
				}
			}
			return true
		}

		dfs(state, append([]uint16(nil), prefixUnits...))
	}
}

func childByLabel(g graphSource, s any, label uint16) (any, bool) {
	for _, c := range g.children(s) {
		if c.label == label {
			return c.next, true
		}
	}
	return nil, false
}

// Count consumes the whole sequence, returning how many strings
// matched, a convenience for callers that do not need the strings
// themselves (set/map size queries over a filtered view).
func Count(seq iter.Seq[string]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// First returns the first string Enumerate would yield, or "", false
// if the sequence is empty.
func First(seq iter.Seq[string]) (string, bool) {
	for s := range seq {
		return s, true
	}
	return "", false
}
