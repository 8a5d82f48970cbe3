// Package dawg errors.go: sentinel errors for the dawg package.
//
// Error policy:
//   - Only package-level sentinel variables are exported.
//   - Callers branch on semantics with errors.Is(err, ErrX).
//   - Sentinels are never wrapped with formatted text at the definition
//     site; call sites add context with wrapf.
package dawg

import (
	"errors"
	"fmt"
)

// ErrArgumentNull is the error kind for a null string argument. A Go
// string cannot be nil (the empty string is a valid member of the
// language), so no function in this package returns it.
var ErrArgumentNull = errors.New("dawg: argument is null")

// ErrArgumentInvalid is returned by the map facades when a key or value
// contains the reserved separator code unit.
var ErrArgumentInvalid = errors.New("dawg: argument is invalid")

// ErrOutOfRange is returned when an element is added to, or queried
// through, a sub-view whose bounds exclude it.
var ErrOutOfRange = errors.New("dawg: element out of sub-view range")

// ErrEndOfSequence is the error kind for reading past the end of an
// exhausted iterator. Enumeration here returns iter.Seq values, which
// simply stop, so no function in this package returns it.
var ErrEndOfSequence = errors.New("dawg: iterator exhausted")

// ErrIoFailure is returned when the underlying byte source of a file
// ingest fails.
var ErrIoFailure = errors.New("dawg: io failure")

// ErrNotSupported is returned for an operation the receiver does not
// allow in its current state: Builder.SetWithIncomingTransitions
// after the first insertion. Automaton has no mutating methods.
var ErrNotSupported = errors.New("dawg: operation not supported")

// wrapf prefixes a sentinel error with the operation name that raised
// it, preserving the sentinel for errors.Is.
func wrapf(op string, sentinel error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		return fmt.Errorf("%s: %w", op, sentinel)
	}
	return fmt.Errorf("%s: %s: %w", op, msg, sentinel)
}
