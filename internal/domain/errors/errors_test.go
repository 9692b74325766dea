package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"invalid input", ErrInvalidInput},
		{"duplicate table", ErrDuplicateTable},
		{"invalid transition", ErrInvalidTransition},
		{"forbidden", ErrForbidden},
		{"conflict", ErrConflict},
		{"already exists", ErrAlreadyExists},
		{"invalid credentials", ErrInvalidCredentials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}
