package dawg

import "testing"

func TestNodeSetChildOrdering(t *testing.T) {
	t.Parallel()

	n := &node{}
	a := &node{}
	b := &node{}
	c := &node{}

	n.setChild('b', b)
	n.setChild('a', a)
	n.setChild('c', c)

	want := []uint16{'a', 'b', 'c'}
	for i, l := range want {
		if n.labels[i] != l {
			t.Fatalf("labels[%d] = %c, want %c", i, n.labels[i], l)
		}
	}
	if n.child('a') != a || n.child('b') != b || n.child('c') != c {
		t.Fatal("child lookup returned the wrong node")
	}
	if n.child('z') != nil {
		t.Fatal("child('z') should be nil")
	}
}

func TestNodeRemoveChild(t *testing.T) {
	t.Parallel()

	n := &node{}
	a, b := &node{}, &node{}
	n.setChild('a', a)
	n.setChild('b', b)

	got, ok := n.removeChild('a')
	if !ok || got != a {
		t.Fatalf("removeChild('a') = (%v, %v), want (a, true)", got, ok)
	}
	if n.arity() != 1 || n.child('b') != b {
		t.Fatal("removeChild left the remaining children in a bad state")
	}
	if _, ok := n.removeChild('a'); ok {
		t.Fatal("removeChild on an already-absent label should report false")
	}
}

func TestNodeSignatureDependsOnAcceptAndChildren(t *testing.T) {
	t.Parallel()

	leaf1 := &node{accept: true}
	leaf2 := &node{accept: true}
	if leaf1.signature() != leaf2.signature() {
		t.Fatal("two accepting leaves should share a signature")
	}

	notAccept := &node{accept: false}
	if leaf1.signature() == notAccept.signature() {
		t.Fatal("accept flag must participate in the signature")
	}

	p1 := &node{}
	p1.setChild('x', leaf1)
	p2 := &node{}
	p2.setChild('x', leaf2)
	if p1.signature() != p2.signature() {
		t.Fatal("structurally identical parents should share a signature")
	}

	p3 := &node{}
	p3.setChild('y', leaf1)
	if p1.signature() == p3.signature() {
		t.Fatal("different labels must change the signature")
	}
}

func TestNodeSignatureCacheInvalidation(t *testing.T) {
	t.Parallel()

	n := &node{}
	n.setChild('a', &node{accept: true})
	first := n.signature()

	n.setChild('b', &node{accept: true})
	second := n.signature()
	if first == second {
		t.Fatal("adding a child must invalidate the cached signature")
	}
}

func TestNodeEquivalentTo(t *testing.T) {
	t.Parallel()

	leafA := &node{accept: true}
	leafB := &node{accept: true}

	n1 := &node{}
	n1.setChild('s', leafA)
	n2 := &node{}
	n2.setChild('s', leafB)

	if !n1.equivalentTo(n2) {
		t.Fatal("nodes with equivalent children should themselves be equivalent")
	}

	n3 := &node{}
	n3.setChild('s', &node{accept: false})
	if n1.equivalentTo(n3) {
		t.Fatal("differing descendant accept flags must break equivalence")
	}
}
