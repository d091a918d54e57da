package grid

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/grid/errors"
)

// mustPanicWith runs fn and fails the test unless it panics with an
// *errors.Error of the given phase and kind.
func mustPanicWith(t *testing.T, phase errors.Phase, kind errors.Kind, fn func()) *errors.Error {
	t.Helper()
	var got *errors.Error
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic with %s/%s, got none", phase, kind)
			}
			err, ok := r.(error)
			if !ok || !stderrors.As(err, &got) {
				t.Fatalf("panic value %v is not an *errors.Error", r)
			}
		}()
		fn()
	}()
	if got.Phase != phase || got.Kind != kind {
		t.Fatalf("panic = %s/%s, want %s/%s (%v)", got.Phase, got.Kind, phase, kind, got)
	}
	return got
}

func requireValidated(t *testing.T) {
	t.Helper()
	if !Validated() {
		t.Skip("bounds validation compiled out (gridnocheck)")
	}
}
