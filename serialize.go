package dawg

import (
	"bytes"
	"encoding/binary"
)

// MarshalBinary encodes the automaton's persisted layout per spec.md
// §6: the with-incoming flag, the alphabet table, and the flat record
// array, plus the root's own accept/arity/labels (the source has no
// incoming transition and so no record of its own to carry them in
// this layout; see DESIGN.md's Open Question resolution on root
// representation). Every field spec.md §6 calls out as recomputable —
// width (a pure function of the alphabet size) and max length (a scan
// over the loaded records) — is deliberately left out of the wire
// format and rebuilt in UnmarshalBinary instead, so a stale cached
// value can never be loaded.
func (a *Automaton) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	writeU32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }
	writeBool := func(v bool) {
		if v {
			writeU32(1)
		} else {
			writeU32(0)
		}
	}
	writeU16s := func(units []uint16) {
		writeU32(uint32(len(units)))
		for _, u := range units {
			binary.Write(&buf, binary.LittleEndian, u)
		}
	}

	writeBool(a.withIncoming)

	writeU16s(a.alphabet)

	writeBool(a.rootAccept)
	writeU32(uint32(a.rootArity))
	writeU16s(a.rootLabels)

	writeU32(uint32(len(a.words)))
	for _, w := range a.words {
		writeU32(w)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes bytes produced by MarshalBinary into a,
// replacing its contents. It fails with ErrIoFailure if the stream is
// truncated or its declared lengths cannot be satisfied, and with
// ErrArgumentInvalid if the root arity disagrees with the number of
// root labels.
func (a *Automaton) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	readU32 := func() (uint32, error) {
		var v uint32
		err := binary.Read(r, binary.LittleEndian, &v)
		return v, err
	}
	readBool := func() (bool, error) {
		v, err := readU32()
		return v != 0, err
	}
	readU16s := func() ([]uint16, error) {
		n, err := readU32()
		if err != nil {
			return nil, err
		}
		out := make([]uint16, n)
		for i := range out {
			if err := binary.Read(r, binary.LittleEndian, &out[i]); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	withIncoming, err := readBool()
	if err != nil {
		return wrapf("UnmarshalBinary", ErrIoFailure, "with-incoming flag: %v", err)
	}
	alphabet, err := readU16s()
	if err != nil {
		return wrapf("UnmarshalBinary", ErrIoFailure, "alphabet table: %v", err)
	}
	rootAccept, err := readBool()
	if err != nil {
		return wrapf("UnmarshalBinary", ErrIoFailure, "root accept: %v", err)
	}
	rootArity, err := readU32()
	if err != nil {
		return wrapf("UnmarshalBinary", ErrIoFailure, "root arity: %v", err)
	}
	rootLabels, err := readU16s()
	if err != nil {
		return wrapf("UnmarshalBinary", ErrIoFailure, "root labels: %v", err)
	}
	wordCount, err := readU32()
	if err != nil {
		return wrapf("UnmarshalBinary", ErrIoFailure, "word count: %v", err)
	}
	words := make([]uint32, wordCount)
	for i := range words {
		if words[i], err = readU32(); err != nil {
			return wrapf("UnmarshalBinary", ErrIoFailure, "word %d: %v", i, err)
		}
	}
	if int(rootArity) != len(rootLabels) {
		return wrapf("UnmarshalBinary", ErrArgumentInvalid, "root arity %d does not match %d labels", rootArity, len(rootLabels))
	}

	// width is a pure function of the alphabet size (spec.md §4.4);
	// rootBegin is always 0, since Compress lays out the source's own
	// children block first. Neither rides on the wire.
	width := 2 + (len(alphabet)+31)/32

	*a = Automaton{
		words:        words,
		width:        width,
		alphabet:     alphabet,
		rootBegin:    0,
		rootAccept:   rootAccept,
		rootArity:    int(rootArity),
		rootLabels:   rootLabels,
		withIncoming: withIncoming,
	}
	a.maxLenCached = a.computeMaxLen()
	return nil
}

// computeMaxLen recomputes the longest stored string's length by
// scanning the loaded record graph; UnmarshalBinary calls this
// instead of trusting a persisted length, per spec.md §6's "MUST be
// recomputed deterministically". It mirrors Compress's
// longestAcceptingPath: memoized per node (identified by its own
// children-block begin index) rather than per traversal, since a
// shared node's longest accepting descendant path does not depend on
// how many edges were walked to reach it.
func (a *Automaton) computeMaxLen() int {
	best := a.longestAcceptingPathAt(a.rootBegin, a.rootArity, a.rootAccept, make(map[int]int))
	if best < 0 {
		return 0
	}
	return best
}

// A zero-arity record's begin is never reserved by Compress's layout
// and so is free to collide with whatever distinct node is laid out
// immediately after it (see compact.go's NodeCount for the full
// explanation). A zero-arity call is therefore resolved immediately,
// without ever touching the begin-keyed memo: there is nothing to
// recurse into, and the answer depends only on accept.
func (a *Automaton) longestAcceptingPathAt(begin, arity int, accept bool, memo map[int]int) int {
	if arity == 0 {
		if accept {
			return 0
		}
		return -1
	}
	if v, ok := memo[begin]; ok {
		return v
	}
	best := -1
	if accept {
		best = 0
	}
	for i := 0; i < arity; i++ {
		r := begin + i
		if below := a.longestAcceptingPathAt(a.begin(r), a.arity(r), a.accept(r), memo); below >= 0 && below+1 > best {
			best = below + 1
		}
	}
	memo[begin] = best
	return best
}

// String renders the automaton the same way Builder does, by
// uncompressing it first. The compact array form has no convenient
// recursive shape of its own to walk.
func (a *Automaton) String() string { return a.Uncompress().String() }
