package dawg

// Builder is the mutable engine (C3): it accepts, removes, and
// minimizes strings online, preserving the MA-DAFSA invariant (no two
// reachable nodes are equivalent) after every Add/Remove completes.
//
// A Builder is exclusive-owner writable: it must not be read and
// written concurrently.
type Builder struct {
	arena    *arena
	registry *registry
	incoming *incomingIndex
	source   *node
	size     int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	b := &Builder{
		arena:    newArena(),
		registry: newRegistry(),
		incoming: newIncomingIndex(),
	}
	b.source = b.arena.alloc()
	return b
}

// Size returns the number of accepted strings currently stored.
func (b *Builder) Size() int { return b.size }

// NodeCount returns the number of live mutable nodes, including the
// source.
func (b *Builder) NodeCount() int { return b.arena.size() }

// TransitionCount returns the number of outgoing edges across the
// whole graph.
func (b *Builder) TransitionCount() int {
	n := 0
	for _, nd := range b.arena.nodes {
		n += nd.arity()
	}
	return n
}

// SetWithIncomingTransitions toggles the optional reverse-edge index
// (C4) that accelerates suffix queries. It must be set before the
// first insertion: flipping it once the automaton holds data beyond
// the empty source is rejected, since retrofitting the index would
// require a full rebuild that this method does not perform.
func (b *Builder) SetWithIncomingTransitions(enabled bool) error {
	if b.arena.size() > 1 || b.size > 0 {
		return wrapf("SetWithIncomingTransitions", ErrNotSupported, "must be set before the first insertion")
	}
	b.incoming.enabled = enabled
	return nil
}

// WithIncomingTransitions reports whether the reverse-edge index is
// currently maintained.
func (b *Builder) WithIncomingTransitions() bool { return b.incoming.enabled }

// OptimizeLetters rebuilds the alphabet after deletions. Its effects
// are observable only through memory usage, never through behavior;
// this implementation treats it as a no-op.
func (b *Builder) OptimizeLetters() {}

// --- path walking -----------------------------------------------------

// walk follows units from the source as far as existing transitions
// allow, returning the visited nodes (path[0] is always the source),
// the labels consumed to reach each, and k = len(labels), the number
// of units actually matched.
func (b *Builder) walk(units []uint16) (path []*node, labels []uint16, k int) {
	path = make([]*node, 1, len(units)+1)
	path[0] = b.source
	labels = make([]uint16, 0, len(units))
	cur := b.source
	for _, u := range units {
		c := cur.child(u)
		if c == nil {
			break
		}
		path = append(path, c)
		labels = append(labels, u)
		cur = c
	}
	return path, labels, len(labels)
}

// --- low-level graph-mutation primitives, kept consistent with the
// arena and the optional incoming index ---------------

func (b *Builder) addOutgoingTransition(parent *node, label uint16, child *node) {
	parent.setChild(label, child)
	b.arena.retain(child)
	b.incoming.addEdge(parent, label, child)
}

func (b *Builder) removeOutgoingTransition(parent *node, label uint16) {
	child, ok := parent.removeChild(label)
	if !ok {
		return
	}
	b.incoming.removeEdge(parent, label, child)
	b.arena.release(child, b.incoming)
}

func (b *Builder) reassignOutgoingTransition(parent *node, label uint16, newChild *node) {
	old := parent.child(label)
	if old == newChild {
		return
	}
	parent.setChild(label, newChild)
	b.arena.retain(newChild)
	b.incoming.removeEdge(parent, label, old)
	b.incoming.addEdge(parent, label, newChild)
	b.arena.release(old, b.incoming)
}

func (b *Builder) setAccept(n *node, v bool) {
	if n.accept == v {
		return
	}
	n.setAccept(v)
	b.incoming.onAcceptChanged(n, v)
}

// --- confluence cloning (shared by Add and Remove) --------------------

// findConfluenceIndex returns the smallest i >= 1 such that path[i]
// has two or more incoming transitions (the first point along path
// that is shared with some other string), or -1 if every node on
// path beyond the source is privately owned by this path alone.
func findConfluenceIndex(path []*node) int {
	for i := 1; i < len(path); i++ {
		if path[i].incoming >= 2 {
			return i
		}
	}
	return -1
}

// cloneSuffixFromConfluence implements confluence cloning: it finds
// the first node on path[1:] with incoming-count
// >= 2 and, if found, replaces path[i:] with freshly allocated
// shallow copies chained together, redirecting the edge from the
// node just before the confluence point to the new chain's head. If
// no confluence node exists, path is returned unchanged. Every node
// on it is already privately owned by this string's prefix.
func (b *Builder) cloneSuffixFromConfluence(path []*node, labels []uint16) []*node {
	confluenceIdx := findConfluenceIndex(path)
	if confluenceIdx == -1 {
		return path
	}

	out := make([]*node, len(path))
	copy(out, path[:confluenceIdx])

	for i := confluenceIdx; i < len(path); i++ {
		orig := path[i]
		clone := b.arena.alloc()
		clone.accept = orig.accept
		clone.labels = append([]uint16(nil), orig.labels...)
		clone.kids = append([]*node(nil), orig.kids...)
		for j, kid := range clone.kids {
			b.arena.retain(kid)
			b.incoming.addEdge(clone, clone.labels[j], kid)
		}
		out[i] = clone
	}

	// Redirect the parent-of-confluence's edge, then each clone's
	// edge to the next clone, replacing the pointer to the original
	// successor.
	for i := confluenceIdx; i < len(path); i++ {
		parent := out[i-1]
		label := labels[i-1]
		b.reassignOutgoingTransition(parent, label, out[i])
	}

	return out
}

// --- minimization: replaceOrRegister ----------------------------------

// replaceOrRegisterPath re-minimizes path (path[0] is the source)
// bottom-up: for each node from the deepest back to the source's
// immediate child, it looks up an equivalent already-registered
// representative; if one exists and differs from the node itself, the
// parent's transition is retargeted to it (dropping the redundant
// node), otherwise the node is registered as the new canonical
// representative for its signature. This is the online minimization
// pass that keeps the automaton reduced after every structural change.
func (b *Builder) replaceOrRegisterPath(path []*node, labels []uint16) {
	for i := len(path) - 1; i >= 1; i-- {
		child := path[i]
		child.invalidate() // a descendant on the path may have changed
		if rep, found := b.registry.find(child); found {
			parent := path[i-1]
			label := labels[i-1]
			b.reassignOutgoingTransition(parent, label, rep)
			path[i] = rep
		} else {
			b.registry.register(child)
		}
	}
}

// --- public mutation API ----------------------------------------------

// Add inserts s, returning true if it was not already present. Add
// maintains minimality after it returns.
func (b *Builder) Add(s string) bool {
	path, labels, changed := b.addUnitsCore(encode(s))
	if !changed {
		return false
	}
	b.replaceOrRegisterPath(path, labels)
	b.size++
	return true
}

// addUnitsCore performs the structural part of insertion (walk, clone
// past the first confluence, append the unmatched suffix, flip
// accept) but stops short of running replaceOrRegister, so that
// AddSorted can defer minimization across a batch. It returns the
// full node path (including the source) and labels for whatever the
// caller chooses to freeze, and false if units was already present.
func (b *Builder) addUnitsCore(units []uint16) (path []*node, labels []uint16, changed bool) {
	p, l, k := b.walk(units)
	if k == len(units) && p[k].accept {
		return p, l, false
	}

	matched := p[:k+1]

	// Only the privately-owned prefix up to (but not including) the
	// first confluence node is about to be structurally modified in
	// place: cloneSuffixFromConfluence leaves the confluence node and
	// everything past it untouched, so those originals keep the
	// registry entry the other strings sharing them still depend on.
	// Unregistering them too would drop a still-reachable canonical
	// node from the registry, letting the new suffix's terminal
	// register itself as a second, equivalent-but-unmerged node
	// instead of merging into the one already there.
	unregisterBefore := k + 1
	if ci := findConfluenceIndex(matched); ci != -1 {
		unregisterBefore = ci
	}
	for i := unregisterBefore - 1; i >= 1; i-- {
		b.registry.unregister(p[i])
	}

	newPath := b.cloneSuffixFromConfluence(matched, l)
	newLabels := append([]uint16(nil), l...)
	terminal := newPath[len(newPath)-1]

	for _, u := range units[k:] {
		nn := b.arena.alloc()
		b.addOutgoingTransition(terminal, u, nn)
		newPath = append(newPath, nn)
		newLabels = append(newLabels, u)
		terminal = nn
	}

	b.setAccept(terminal, true)
	return newPath, newLabels, true
}

// AddAll inserts every string produced by seq, returning true if any
// string was newly inserted. Strings may arrive in any order; sorted
// batches do not receive special treatment here (see AddSorted for
// the delayed-minimization optimization).
func (b *Builder) AddAll(seq func(yield func(string) bool)) bool {
	changed := false
	seq(func(s string) bool {
		if b.Add(s) {
			changed = true
		}
		return true
	})
	return changed
}

// AddSorted inserts strings known to arrive in non-decreasing
// lexicographic order, applying delayed batch
// minimization: the previous string's altered suffix is only frozen
// (run through replaceOrRegister) once the next string proves the
// shared prefix is no longer being extended. mpsIndex(prev, curr)
// finds the point where the two strings first diverge; only the
// range at and beyond that point is frozen for prev, since the
// characters before it may still grow on the next call.
//
// Individual strings inside the batch are not guaranteed minimal the
// instant they are added; only the automaton as a whole is minimal
// once AddSorted returns. Add (single-string) always leaves the
// automaton minimal immediately.
func (b *Builder) AddSorted(seq func(yield func(string) bool)) bool {
	changed := false
	var openPath []*node
	var openLabels []uint16
	var openStr string
	haveOpen := false

	freeze := func(from int) {
		if openPath == nil || from >= len(openPath)-1 {
			return
		}
		b.replaceOrRegisterPath(openPath[from:], openLabels[from:])
	}

	seq(func(s string) bool {
		from := 0
		if haveOpen {
			j := mpsIndex(openStr, s)
			if j >= 0 {
				from = j
			} else {
				from = len(openPath) - 1 // openStr is a prefix of s: nothing yet to freeze
			}
		}
		freeze(from)

		path, labels, isNew := b.addUnitsCore(encode(s))
		if isNew {
			changed = true
			b.size++
			openPath, openLabels = path, labels
			openStr, haveOpen = s, true
		}
		return true
	})

	freeze(0)
	return changed
}

// mpsIndex returns the first index at which prev and curr differ, or
// -1 if prev is a prefix of curr (the sentinel meaning "do not
// minimize anything yet").
func mpsIndex(prev, curr string) int {
	p, c := encode(prev), encode(curr)
	n := len(p)
	if n > len(c) {
		n = len(c)
	}
	for i := 0; i < n; i++ {
		if p[i] != c[i] {
			return i
		}
	}
	if len(p) <= len(c) {
		return -1
	}
	return n
}

// Remove deletes s, returning true if it was present.
func (b *Builder) Remove(s string) bool {
	return b.removeUnits(encode(s))
}

func (b *Builder) removeUnits(units []uint16) bool {
	path, _, k := b.walk(units)
	if k != len(units) || !path[k].accept {
		return false
	}

	if len(units) == 0 {
		b.setAccept(b.source, false)
		b.size--
		return true
	}

	labels := units // labels consumed equal the units themselves here

	// See addUnitsCore: only the privately-owned prefix before the
	// first confluence node is touched by cloneSuffixFromConfluence,
	// so only that prefix needs unregistering. The confluence node and
	// beyond are left in place for the other strings still sharing
	// them and must keep their registry entry.
	unregisterBefore := k + 1
	if ci := findConfluenceIndex(path); ci != -1 {
		unregisterBefore = ci
	}
	for i := unregisterBefore - 1; i >= 1; i-- {
		b.registry.unregister(path[i])
	}
	newPath := b.cloneSuffixFromConfluence(path, labels)
	terminal := newPath[len(newPath)-1]

	if terminal.arity() > 0 {
		b.setAccept(terminal, false)
		b.replaceOrRegisterPath(newPath, labels)
		b.size--
		return true
	}

	// Sole-path removal: walk backward from the terminal, extending
	// the droppable tail through ancestors that exist only to serve
	// this string (outgoing-count <= 1, not themselves accepting).
	cut := len(newPath) - 1
	for i := cut - 1; i >= 1; i-- {
		anc := newPath[i]
		if anc.arity() <= 1 && !anc.accept {
			cut = i
			continue
		}
		break
	}

	parent := newPath[cut-1]
	label := labels[cut-1]
	b.removeOutgoingTransition(parent, label)

	b.replaceOrRegisterPath(newPath[:cut], labels[:cut-1])
	b.size--
	return true
}

// Contains reports whether s is stored.
func (b *Builder) Contains(s string) bool {
	units := encode(s)
	path, _, k := b.walk(units)
	return k == len(units) && path[k].accept
}
