package dawg

import "sort"

// Compress projects a minimal builder into the compact array form
// (C5). The builder must already be minimal; Compress never merges
// equivalent nodes itself, it only lays out what is already there.
//
// Layout is a depth-first traversal from the source in ascending
// label order: each distinct node's children occupy a freshly
// reserved contiguous block of records, reserved and recursed into
// exactly once (memoized in a per-call visited map; the begin index
// is also written to the node's scratch field), while every
// transition, including each of a shared (confluence) node's several
// incoming edges, gets its own record, so record count equals the
// total transition count, not the node count.
func (b *Builder) Compress() *Automaton {
	alphabet := b.collectAlphabet()
	width := 2 + (len(alphabet)+31)/32

	transitionCount := 0
	for _, n := range b.arena.nodes {
		transitionCount += n.arity()
	}

	words := make([]uint32, (transitionCount+1)*width)

	labelIndex := make(map[uint16]int, len(alphabet))
	for i, l := range alphabet {
		labelIndex[l] = i
	}

	visited := make(map[*node]int, b.arena.size())
	nextFree := 0

	writeRecord := func(recIdx int, label uint16, accept bool, begin int, bitmapLabels []uint16) {
		off := recIdx * width
		w0 := uint32(label)
		if accept {
			w0 |= 1 << 16
		}
		words[off] = w0
		words[off+1] = uint32(begin)
		for _, l := range bitmapLabels {
			pos := labelIndex[l]
			words[off+2+pos/32] |= 1 << uint(pos%32)
		}
	}

	var layout func(n *node) int
	layout = func(n *node) int {
		if begin, ok := visited[n]; ok {
			return begin
		}
		begin := nextFree
		nextFree += n.arity()
		visited[n] = begin
		n.scratch = begin
		for i, child := range n.kids {
			childBegin := layout(child)
			writeRecord(begin+i, n.labels[i], child.accept, childBegin, child.labels)
		}
		return begin
	}

	rootBegin := layout(b.source)

	maxLen := longestAcceptingPath(b.source, make(map[*node]int, len(visited)))
	if maxLen < 0 {
		maxLen = 0 // an empty automaton has no strings, so no length to report
	}

	for _, n := range b.arena.nodes {
		n.scratch = 0
	}

	return &Automaton{
		words:        words,
		width:        width,
		alphabet:     alphabet,
		rootBegin:    rootBegin,
		rootAccept:   b.source.accept,
		rootArity:    b.source.arity(),
		rootLabels:   append([]uint16(nil), b.source.labels...),
		withIncoming: b.incoming.enabled,
		maxLenCached: maxLen,
	}
}

// longestAcceptingPath returns the greatest number of edges on any
// path from n to an accepting node reachable from n (0 if n itself is
// accepting and has no longer accepting descendant), or -1 if no
// accepting node is reachable from n at all, including n itself. It
// is memoized per node rather than per traversal, unlike a plain
// depth-first depth count, because a shared (confluence) node's
// longest accepting descendant path does not depend on how many edges
// were walked to reach the node in the first place.
func longestAcceptingPath(n *node, memo map[*node]int) int {
	if v, ok := memo[n]; ok {
		return v
	}
	best := -1
	if n.accept {
		best = 0
	}
	for _, c := range n.kids {
		if below := longestAcceptingPath(c, memo); below >= 0 && below+1 > best {
			best = below + 1
		}
	}
	memo[n] = best
	return best
}

// collectAlphabet gathers the distinct code units used anywhere in
// the graph, ascending.
func (b *Builder) collectAlphabet() []uint16 {
	seen := make(map[uint16]struct{})
	for _, n := range b.arena.nodes {
		for _, l := range n.labels {
			seen[l] = struct{}{}
		}
	}
	out := make([]uint16, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
