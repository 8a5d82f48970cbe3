package dawg

// registry is the equivalence-class registry (C2): a mapping from a
// node's structural signature to its canonical representative. At
// most one representative is kept per equivalence class; a bucket
// list under each hash resolves the (rare) signature collision by
// falling back to node.equivalentTo, which is the actual definition
// of equivalence.
type registry struct {
	buckets map[uint64][]*node
}

func newRegistry() *registry {
	return &registry{buckets: make(map[uint64][]*node)}
}

// find returns the registered representative equivalent to n, if any.
// It never returns n itself. Callers use it to discover whether some
// *other* already-minimal node can serve in n's place.
func (r *registry) find(n *node) (*node, bool) {
	for _, cand := range r.buckets[n.signature()] {
		if cand != n && cand.equivalentTo(n) {
			return cand, true
		}
	}
	return nil, false
}

// register installs n as the canonical representative of its
// equivalence class. Callers must have already established (via find)
// that no other representative exists for this signature.
func (r *registry) register(n *node) {
	h := n.signature()
	r.buckets[h] = append(r.buckets[h], n)
}

// unregister removes n specifically from its bucket. Callers must do
// this before mutating n's labels or children, since the bucket key is
// derived from n's current structure and would otherwise go stale.
func (r *registry) unregister(n *node) {
	h := n.signature()
	bucket := r.buckets[h]
	for i, cand := range bucket {
		if cand == n {
			r.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			if len(r.buckets[h]) == 0 {
				delete(r.buckets, h)
			}
			return
		}
	}
}
