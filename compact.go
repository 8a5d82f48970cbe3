package dawg

import (
	"math/bits"
	"sort"
)

// Automaton is the compact, read-only array representation (C6)
// produced by Builder.Compress. Every transition, not every node,
// occupies one fixed-width record, so a shared (confluence) node
// still appears once per incoming edge; what is shared is the
// downstream block each of those records points at.
//
// Record layout, W = 2 + ceil(|alphabet|/32) words:
//
//	word 0: low 16 bits = label, bit 16 = accept flag of the node this
//	        transition leads to
//	word 1: begin index (in records) of that node's own children block
//	word 2..: bitmap over the alphabet table, one bit per distinct
//	        label that node itself uses on its outgoing edges; the
//	        population count of the bitmap is that node's arity
//
// The root (source) node has no incoming transition and therefore no
// record of its own; its accept flag, arity and children-block-begin
// are carried directly on the Automaton.
type Automaton struct {
	words    []uint32
	width    int
	alphabet []uint16

	rootBegin    int
	rootAccept   bool
	rootArity    int
	rootLabels   []uint16
	withIncoming bool

	nodeCountCached int
	maxLenCached    int
	countValid      bool
}

// WithIncomingTransitions reports whether the builder this automaton
// was compressed from maintained the reverse-edge index, carried
// through as metadata so UnmarshalBinary's uncompress path can
// restore the same setting, even though the compact form itself never
// consults the index.
func (a *Automaton) WithIncomingTransitions() bool { return a.withIncoming }

// Size returns the total word count of the flat array, the memory
// footprint of the compact form.
func (a *Automaton) Size() int { return len(a.words) }

// MaxLength returns the length of the longest stored string. It is
// computed once by Compress or UnmarshalBinary and simply returned
// here.
func (a *Automaton) MaxLength() int { return a.maxLenCached }

// NodeCount returns the number of distinct nodes in the automaton
// (as opposed to the number of transitions/records), memoized on
// first call.
//
// A zero-arity node's own children-block begin is never reserved by
// Compress's layout (there is nothing to lay out), so that integer is
// free to be handed out again as soon as the next distinct node is
// laid out; begin alone therefore does not identify a zero-arity
// node. That is harmless everywhere else, since every record always
// pairs its begin with its own freshly-read arity, but it would make
// a plain seen-by-begin set either merge two unrelated nodes or, once
// a real node's begin collides with a leftover zero-arity one,
// silently stop descending into that real node's own children
// entirely. By the minimality invariant there is at most one reachable
// zero-arity node to begin with (every such node is the accepting,
// childless state every other childless state is equivalent to, and a
// non-accepting childless state could never be produced by a minimal
// automaton), so it is counted once, by a dedicated flag, independent
// of begin.
func (a *Automaton) NodeCount() int {
	if a.countValid {
		return a.nodeCountCached
	}
	seen := make(map[int]bool)
	sawLeaf := false
	count := 1 // the root itself
	var walk func(begin, n int)
	walk = func(begin, n int) {
		for i := 0; i < n; i++ {
			r := begin + i
			ar := a.arity(r)
			if ar == 0 {
				if !sawLeaf {
					sawLeaf = true
					count++
				}
				continue
			}
			b := a.begin(r)
			if !seen[b] {
				seen[b] = true
				count++
				walk(b, ar)
			}
		}
	}
	walk(a.rootBegin, a.rootArity)
	a.nodeCountCached = count
	a.countValid = true
	return count
}

func (a *Automaton) label(r int) uint16 { return uint16(a.words[r*a.width]) }
func (a *Automaton) accept(r int) bool  { return a.words[r*a.width]&(1<<16) != 0 }
func (a *Automaton) begin(r int) int    { return int(a.words[r*a.width+1]) }

func (a *Automaton) arity(r int) int {
	off := r*a.width + 2
	n := 0
	for i := 0; i < a.width-2; i++ {
		n += bits.OnesCount32(a.words[off+i])
	}
	return n
}

// childOf binary-searches the contiguous block [begin, begin+arity)
// for label, returning the matching record index.
func (a *Automaton) childOf(begin, arity int, label uint16) (int, bool) {
	lo, hi := begin, begin+arity
	i := sort.Search(hi-lo, func(i int) bool { return a.label(lo+i) >= label })
	r := lo + i
	if i < hi-lo && a.label(r) == label {
		return r, true
	}
	return 0, false
}

// walk follows units from the root, returning the record reached
// (valid only if k == len(units)), atRoot (true when no record was
// entered: units is empty or its first unit has no root transition),
// and k, the number of units actually matched.
func (a *Automaton) walk(units []uint16) (record int, atRoot bool, k int) {
	begin, arity := a.rootBegin, a.rootArity
	record, atRoot = 0, true
	for _, u := range units {
		r, ok := a.childOf(begin, arity, u)
		if !ok {
			break
		}
		record, atRoot = r, false
		begin, arity = a.begin(r), a.arity(r)
		k++
	}
	return record, atRoot, k
}

func (a *Automaton) acceptAt(record int, atRoot bool) bool {
	if atRoot {
		return a.rootAccept
	}
	return a.accept(record)
}

func (a *Automaton) arityAt(record int, atRoot bool) int {
	if atRoot {
		return a.rootArity
	}
	return a.arity(record)
}

func (a *Automaton) beginAt(record int, atRoot bool) int {
	if atRoot {
		return a.rootBegin
	}
	return a.begin(record)
}

// Contains reports whether s is stored.
func (a *Automaton) Contains(s string) bool {
	units := encode(s)
	r, atRoot, k := a.walk(units)
	return k == len(units) && a.acceptAt(r, atRoot)
}

// Alphabet returns a copy of the ascending alphabet table backing the
// bitmaps: the distinct code units used anywhere in the stored
// strings, as raw uint16 values.
func (a *Automaton) Alphabet() []uint16 {
	return append([]uint16(nil), a.alphabet...)
}

// Uncompress materializes the automaton back into a mutable Builder,
// the inverse of Compress. It is useful after loading a persisted
// automaton whose builder was never kept, any time a read-only
// automaton needs further edits.
func (a *Automaton) Uncompress() *Builder {
	b := NewBuilder()
	b.incoming.enabled = a.withIncoming
	built := make(map[int]*node)
	var leaf *node

	// materialize takes accept directly from the record that is being
	// followed, rather than letting the caller stamp it on afterward:
	// a zero-arity target's begin collides with whatever real node
	// Compress laid out right after it (see NodeCount), so a
	// built[begin] cache keyed purely on begin would, for that next
	// real node, return the already-built zero-arity node instead and
	// then have its accept flag overwritten by the wrong record. Since
	// a minimal automaton has at most one reachable zero-arity node
	// (the shared accepting leaf), it is materialized once, outside
	// the begin-keyed cache, and every other record is looked up
	// strictly by its own (non-colliding) begin.
	var materialize func(begin, arity int, accept bool) *node
	materialize = func(begin, arity int, accept bool) *node {
		if arity == 0 {
			if leaf == nil {
				leaf = b.arena.alloc()
				leaf.accept = accept
			}
			return leaf
		}
		if n, ok := built[begin]; ok {
			return n
		}
		n := b.arena.alloc()
		n.accept = accept
		built[begin] = n
		for i := 0; i < arity; i++ {
			r := begin + i
			child := materialize(a.begin(r), a.arity(r), a.accept(r))
			b.addOutgoingTransition(n, a.label(r), child)
		}
		return n
	}

	root := materialize(a.rootBegin, a.rootArity, a.rootAccept)
	b.arena.release(b.source, b.incoming)
	b.source = root

	for _, n := range b.arena.nodes {
		b.registry.register(n)
	}

	// size is the number of distinct accepted strings, not the number
	// of distinct accepting nodes: a shared accepting node reached by
	// several different paths (exactly the confluence case
	// minimization exists to create) is one node but terminates
	// several stored strings, so it must be counted once per
	// root-to-accept path, which is what a full enumeration does.
	b.size = Count(Enumerate(b, Query{}))

	return b
}
