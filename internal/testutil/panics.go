package testutil

import (
	"errors"
	"testing"
)

// RequirePanicsIs fails the test unless fn panics with an error value that
// matches target under errors.Is.
func RequirePanicsIs(t testing.TB, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	if recovered == nil {
		t.Fatalf("expected panic wrapping %v, got none", target)
	}
	err, ok := recovered.(error)
	if !ok {
		t.Fatalf("expected panic with error wrapping %v, got %T: %v", target, recovered, recovered)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected panic wrapping %v, got %v", target, err)
	}
}
