package dawg

// incomingIndex is the optional reverse-edge index (C4): for every
// node, a mapping label → set of predecessor nodes, plus the virtual
// end node that collects the accept-state incoming labels of the
// whole graph. It exists solely to accelerate suffix queries, which
// start at accepted strings and walk backward.
//
// The index is guarded by enabled; when disabled every method is a
// no-op so callers never need to branch.
type incomingIndex struct {
	enabled bool

	// preds[child][label] is the set of nodes with a transition
	// child2 -label-> child... read as: parents reaching child via label.
	preds map[*node]map[uint16]map[*node]struct{}

	// end[label] is the set of accept nodes reached by some edge
	// labeled label: the virtual end node's incoming index.
	end map[uint16]map[*node]struct{}
}

func newIncomingIndex() *incomingIndex {
	return &incomingIndex{
		preds: make(map[*node]map[uint16]map[*node]struct{}),
		end:   make(map[uint16]map[*node]struct{}),
	}
}

func (idx *incomingIndex) addEdge(parent *node, label uint16, child *node) {
	if !idx.enabled || child == nil {
		return
	}
	byLabel := idx.preds[child]
	if byLabel == nil {
		byLabel = make(map[uint16]map[*node]struct{})
		idx.preds[child] = byLabel
	}
	set := byLabel[label]
	if set == nil {
		set = make(map[*node]struct{})
		byLabel[label] = set
	}
	set[parent] = struct{}{}

	if child.accept {
		idx.addEnd(label, child)
	}
}

func (idx *incomingIndex) removeEdge(parent *node, label uint16, child *node) {
	if !idx.enabled || child == nil {
		return
	}
	byLabel := idx.preds[child]
	if byLabel == nil {
		return
	}
	set := byLabel[label]
	if set == nil {
		return
	}
	delete(set, parent)
	if len(set) == 0 {
		delete(byLabel, label)
		if child.accept {
			idx.removeEnd(label, child)
		}
	}
	if len(byLabel) == 0 {
		delete(idx.preds, child)
	}
}

func (idx *incomingIndex) addEnd(label uint16, n *node) {
	set := idx.end[label]
	if set == nil {
		set = make(map[*node]struct{})
		idx.end[label] = set
	}
	set[n] = struct{}{}
}

func (idx *incomingIndex) removeEnd(label uint16, n *node) {
	set := idx.end[label]
	if set == nil {
		return
	}
	delete(set, n)
	if len(set) == 0 {
		delete(idx.end, label)
	}
}

// onAcceptChanged synchronizes the end-node index when n's accept
// flag flips: every label currently leading into n gains or loses an
// end-node entry.
func (idx *incomingIndex) onAcceptChanged(n *node, accept bool) {
	if !idx.enabled {
		return
	}
	for label := range idx.preds[n] {
		if accept {
			idx.addEnd(label, n)
		} else {
			idx.removeEnd(label, n)
		}
	}
}

// dropNode purges every trace of n from the index when n is evicted
// from the arena: its own predecessor bookkeeping and any end-node
// entries it held as an accept state.
func (idx *incomingIndex) dropNode(n *node) {
	if !idx.enabled {
		return
	}
	delete(idx.preds, n)
	if n.accept {
		for label, set := range idx.end {
			if _, ok := set[n]; ok {
				delete(set, n)
				if len(set) == 0 {
					delete(idx.end, label)
				}
			}
		}
	}
}

// predecessors returns the set of nodes with an edge labeled label
// into n, or nil.
func (idx *incomingIndex) predecessors(n *node, label uint16) map[*node]struct{} {
	return idx.preds[n][label]
}

// endPoints returns the accept nodes reached by some edge labeled
// label: the starting points for suffix-mode search when label is
// the final code unit of the requested suffix.
func (idx *incomingIndex) endPoints(label uint16) map[*node]struct{} {
	return idx.end[label]
}

// allPredecessorLabels returns every label with at least one
// predecessor entering n. Nothing in the package calls it;
// enumerateSuffixMode reads preds directly.
func (idx *incomingIndex) allPredecessorLabels(n *node) map[uint16]struct{} {
	out := make(map[uint16]struct{}, len(idx.preds[n]))
	for label := range idx.preds[n] {
		out[label] = struct{}{}
	}
	return out
}
