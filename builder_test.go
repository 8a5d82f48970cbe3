package dawg

import (
	"sort"
	"testing"
)

func mustAddAll(b *Builder, words ...string) {
	for _, w := range words {
		b.Add(w)
	}
}

// TestMinimalConstruction builds the textbook ["a","xe","xes","xs"]
// example and checks the exact node/transition counts a correctly
// minimized automaton must reach: four nodes counting the source and
// five transitions, with the accepting leaf reached via "a", "xes"
// and "xs" being a single shared node.
func TestMinimalConstruction(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustAddAll(b, "a", "xe", "xes", "xs")

	if got := b.Size(); got != 4 {
		t.Fatalf("Size() = %d, want 4", got)
	}
	if got := b.NodeCount(); got != 4 {
		t.Fatalf("NodeCount() = %d, want 4", got)
	}
	if got := b.TransitionCount(); got != 5 {
		t.Fatalf("TransitionCount() = %d, want 5", got)
	}

	nx := b.source.child('x')
	nxe := nx.child('e')
	nFromXs := nx.child('s')
	nFromXes := nxe.child('s')
	if nFromXs != nFromXes {
		t.Fatal("the 's' reached via 'xs' and via 'xes' must be the same shared node")
	}
	if nFromXs.incoming != 3 {
		t.Fatalf("shared node incoming = %d, want 3", nFromXs.incoming)
	}
}

// TestPermutationInvariance inserts the same string set in four
// different orders and checks the resulting
// automaton always reaches the same size and node count, since online
// minimization must converge to the unique minimal automaton
// regardless of insertion order.
func TestPermutationInvariance(t *testing.T) {
	t.Parallel()

	words := [][]string{
		{"a", "xe", "xes", "xs"},
		{"xs", "xes", "xe", "a"},
		{"xes", "a", "xs", "xe"},
		{"xe", "xs", "a", "xes"},
	}

	var wantSize, wantNodes int
	for i, order := range words {
		b := NewBuilder()
		mustAddAll(b, order...)
		if i == 0 {
			wantSize, wantNodes = b.Size(), b.NodeCount()
			continue
		}
		if b.Size() != wantSize || b.NodeCount() != wantNodes {
			t.Fatalf("order %v: got (size=%d, nodes=%d), want (size=%d, nodes=%d)",
				order, b.Size(), b.NodeCount(), wantSize, wantNodes)
		}
	}
}

// TestEmptyStringOverlap checks that the empty string can be accepted
// alongside others sharing the source node, without disturbing them.
func TestEmptyStringOverlap(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustAddAll(b, "", "a", "ab")

	for _, s := range []string{"", "a", "ab"} {
		if !b.Contains(s) {
			t.Fatalf("Contains(%q) = false, want true", s)
		}
	}
	if b.Contains("b") {
		t.Fatal(`Contains("b") should be false`)
	}

	if !b.Remove("") {
		t.Fatal(`Remove("") should report true`)
	}
	if b.Contains("") {
		t.Fatal(`"" should no longer be stored`)
	}
	if !b.Contains("a") || !b.Contains("ab") {
		t.Fatal("removing the empty string must not disturb unrelated entries")
	}
}

// TestAddSortedMatchesAddAll checks that the delayed-minimization
// batch insert converges to the same automaton (by size and node
// count) as inserting the identical sorted sequence one at a time.
func TestAddSortedMatchesAddAll(t *testing.T) {
	t.Parallel()

	words := []string{"a", "ab", "abc", "abd", "b", "ba", "bb"}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	single := NewBuilder()
	mustAddAll(single, sorted...)

	batch := NewBuilder()
	batch.AddSorted(func(yield func(string) bool) {
		for _, w := range sorted {
			if !yield(w) {
				return
			}
		}
	})

	if single.Size() != batch.Size() {
		t.Fatalf("Size: single=%d batch=%d", single.Size(), batch.Size())
	}
	if single.NodeCount() != batch.NodeCount() {
		t.Fatalf("NodeCount: single=%d batch=%d", single.NodeCount(), batch.NodeCount())
	}
	for _, w := range words {
		if !batch.Contains(w) {
			t.Fatalf("batch should contain %q", w)
		}
	}
}

// TestRemoveByConfluence exercises deletion through a shared node: it
// builds the "xe"/"xs" example, deletes "xes", and checks that "xs"
// survives untouched even though it used to share the "s" node with
// "xes".
func TestRemoveByConfluence(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustAddAll(b, "xe", "xes", "xs")

	if !b.Remove("xes") {
		t.Fatal(`Remove("xes") should report true`)
	}
	if b.Contains("xes") {
		t.Fatal(`"xes" should be gone`)
	}
	if !b.Contains("xe") || !b.Contains("xs") {
		t.Fatal("deleting a confluent string must not disturb the other strings sharing its nodes")
	}
}

// TestRemoveSolePath checks that deleting a string whose suffix nodes
// exist only for it prunes the dangling tail back to the nearest
// branching or accepting ancestor.
func TestRemoveSolePath(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	mustAddAll(b, "cat", "car")

	if !b.Remove("cat") {
		t.Fatal(`Remove("cat") should report true`)
	}
	if b.Contains("cat") {
		t.Fatal(`"cat" should be gone`)
	}
	if !b.Contains("car") {
		t.Fatal(`"car" must survive`)
	}
	if b.NodeCount() != 4 { // source, c, ca, car's 'r'-node... "car" alone: source->c->a->r(accept)
		t.Fatalf("NodeCount() = %d, want 4", b.NodeCount())
	}
}

func TestAddReturnsFalseForDuplicate(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	if !b.Add("hello") {
		t.Fatal("first Add should report true")
	}
	if b.Add("hello") {
		t.Fatal("second Add of the same string should report false")
	}
	if b.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", b.Size())
	}
}

func TestRemoveReturnsFalseForAbsent(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Add("present")
	if b.Remove("absent") {
		t.Fatal("removing an absent string should report false")
	}
}

func TestSetWithIncomingTransitionsRejectedAfterInsertion(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Add("a")
	if err := b.SetWithIncomingTransitions(true); err == nil {
		t.Fatal("enabling the incoming index after the first insertion should fail")
	}
}

func TestMpsIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prev, curr string
		want       int
	}{
		{"abc", "abd", 2},
		{"ab", "abc", -1},
		{"abc", "ab", 2},
		{"", "x", -1},
		{"abc", "abc", -1},
	}
	for _, c := range cases {
		if got := mpsIndex(c.prev, c.curr); got != c.want {
			t.Errorf("mpsIndex(%q, %q) = %d, want %d", c.prev, c.curr, got, c.want)
		}
	}
}
