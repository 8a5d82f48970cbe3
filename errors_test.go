package dawg

import (
	"errors"
	"testing"
)

func TestWrapfPreservesSentinel(t *testing.T) {
	t.Parallel()

	err := wrapf("Op", ErrNotSupported, "detail %d", 7)
	if !errors.Is(err, ErrNotSupported) {
		t.Fatal("wrapf must preserve the sentinel for errors.Is")
	}
	want := "Op: detail 7: dawg: operation not supported"
	if err.Error() != want {
		t.Fatalf("err.Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapfWithoutDetail(t *testing.T) {
	t.Parallel()

	err := wrapf("Op", ErrIoFailure, "")
	want := "Op: dawg: io failure"
	if err.Error() != want {
		t.Fatalf("err.Error() = %q, want %q", err.Error(), want)
	}
}
