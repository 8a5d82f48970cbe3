package dawg

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// String returns a hierarchical tree diagram of the builder's
// contents, just a wrapper for [Builder.Fprint]. If Fprint returns an
// error, String panics.
func (b *Builder) String() string {
	w := new(strings.Builder)
	if err := b.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical tree diagram of the stored strings to
// w, one line per node reached, in ascending label order:
//
//	▼
//	├─ a *
//	└─ x
//	   ├─ e *
//	   │  └─ s *
//	   └─ s *
//
// a trailing "*" marks an accepting node.
func (b *Builder) Fprint(w io.Writer) error {
	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}
	return fprintChildren(w, b.source, "")
}

func fprintChildren(w io.Writer, n *node, pad string) error {
	for i := range n.labels {
		last := i == len(n.labels)-1
		connector := "├─ "
		nextPad := pad + "│  "
		if last {
			connector = "└─ "
			nextPad = pad + "   "
		}
		child := n.kids[i]
		marker := ""
		if child.accept {
			marker = " *"
		}
		if _, err := fmt.Fprintf(w, "%s%s%s%s\n", pad, connector, decode([]uint16{n.labels[i]}), marker); err != nil {
			return err
		}
		if err := fprintChildren(w, child, nextPad); err != nil {
			return err
		}
	}
	return nil
}

// DOT writes the automaton as a GraphViz digraph to w, one node per
// distinct builder node (shared nodes appear once, with multiple
// incoming edges), suitable for `dot -Tsvg`.
func (b *Builder) DOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph dawg {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, `  rankdir=LR;`); err != nil {
		return err
	}

	ids := make(map[*node]int64, b.arena.size())
	for id, n := range b.arena.nodes {
		ids[n] = id
	}

	order := make([]int64, 0, len(ids))
	for _, id := range ids {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	byID := make(map[int64]*node, len(ids))
	for n, id := range ids {
		byID[id] = n
	}

	for _, id := range order {
		n := byID[id]
		shape := "circle"
		if n.accept {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "  n%d [shape=%s];\n", id, shape); err != nil {
			return err
		}
		for i, kid := range n.kids {
			label := decode([]uint16{n.labels[i]})
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", id, ids[kid], label); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// dumpEntry is the JSON projection of one stored node, used by
// Builder.MarshalJSON.
type dumpEntry struct {
	Label    string       `json:"label,omitempty"`
	Accept   bool         `json:"accept"`
	Children []*dumpEntry `json:"children,omitempty"`
}

// MarshalJSON renders the builder as a nested JSON tree rooted at the
// source node, mirroring Fprint's shape for tooling that wants
// structured rather than textual output.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(dumpNode(b.source, ""))
}

func dumpNode(n *node, label string) *dumpEntry {
	e := &dumpEntry{Label: label, Accept: n.accept}
	for i, kid := range n.kids {
		e.Children = append(e.Children, dumpNode(kid, decode([]uint16{n.labels[i]})))
	}
	return e
}
