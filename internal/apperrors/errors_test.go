// Package apperrors tests verify the custom error types (ErrNotFound,
// ErrUpstreamStatus, ErrInvalidPayload), their Error() messages, Is()
// matching semantics, and compatibility with errors.Is() through wrapping.
package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// ---------------------------------------------------------------------------
// ErrNotFound
// ---------------------------------------------------------------------------

func TestErrNotFound_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrNotFound
		expected string
	}{
		{
			name:     "with string ID",
			err:      &ErrNotFound{Resource: "show", ID: "abc"},
			expected: "show with ID abc not found",
		},
		{
			name:     "with int ID",
			err:      &ErrNotFound{Resource: "episode", ID: 42},
			expected: "episode with ID 42 not found",
		},
		{
			name:     "with nil ID",
			err:      &ErrNotFound{Resource: "show", ID: nil},
			expected: "show not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrNotFound_Is(t *testing.T) {
	t.Parallel()
	err := &ErrNotFound{Resource: "show", ID: 1}

	t.Run("matches ErrNotFound with different fields", func(t *testing.T) {
		if !errors.Is(err, &ErrNotFound{Resource: "other", ID: 99}) {
			t.Error("expected errors.Is to match *ErrNotFound regardless of field values")
		}
	})

	t.Run("does not match plain error", func(t *testing.T) {
		if errors.Is(err, errors.New("some error")) {
			t.Error("expected errors.Is not to match a plain error")
		}
	})

	t.Run("matches through double wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("mid: %w", fmt.Errorf("inner: %w", err))
		if !errors.Is(wrapped, &ErrNotFound{}) {
			t.Error("expected errors.Is to match *ErrNotFound through double wrapping")
		}
	})
}

func TestNewShowNotFoundError(t *testing.T) {
	t.Parallel()
	err := NewShowNotFoundError(123)

	if err.Resource != "show" {
		t.Errorf("Resource = %q, want %q", err.Resource, "show")
	}
	if err.Error() != "show with ID 123 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, &ErrNotFound{}) {
		t.Error("expected errors.Is to match *ErrNotFound")
	}
}

// ---------------------------------------------------------------------------
// ErrUpstreamStatus
// ---------------------------------------------------------------------------

func TestErrUpstreamStatus_Error(t *testing.T) {
	t.Parallel()
	err := &ErrUpstreamStatus{URL: "https://api.tvmaze.com/search/shows?q=x", StatusCode: 503}

	expected := "catalog returned status 503 for https://api.tvmaze.com/search/shows?q=x"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrUpstreamStatus_Is(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("search shows: %w", &ErrUpstreamStatus{StatusCode: 500})

	if !errors.Is(err, &ErrUpstreamStatus{}) {
		t.Error("expected errors.Is to match *ErrUpstreamStatus through wrapping")
	}
	if errors.Is(err, &ErrNotFound{}) {
		t.Error("expected errors.Is not to match *ErrNotFound")
	}

	var status *ErrUpstreamStatus
	if !errors.As(err, &status) || status.StatusCode != 500 {
		t.Errorf("expected errors.As to recover status 500, got %+v", status)
	}
}

// ---------------------------------------------------------------------------
// ErrInvalidPayload
// ---------------------------------------------------------------------------

func TestErrInvalidPayload_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrInvalidPayload
		expected string
	}{
		{
			name:     "without cause",
			err:      &ErrInvalidPayload{Resource: "episode", Reason: "element 2 has no id"},
			expected: "invalid episode payload: element 2 has no id",
		},
		{
			name:     "with cause",
			err:      &ErrInvalidPayload{Resource: "show", Reason: "decode", Err: errors.New("unexpected EOF")},
			expected: "invalid show payload: decode: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrInvalidPayload_Unwrap(t *testing.T) {
	t.Parallel()
	var syntaxErr *json.SyntaxError
	cause := json.Unmarshal([]byte("{"), &struct{}{})
	err := &ErrInvalidPayload{Resource: "show", Reason: "decode", Err: cause}

	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected the JSON syntax error to be reachable, cause was %T", cause)
	}
	if !errors.Is(fmt.Errorf("outer: %w", err), &ErrInvalidPayload{}) {
		t.Error("expected errors.Is to match *ErrInvalidPayload through wrapping")
	}
}

// ---------------------------------------------------------------------------
// Cross-type isolation: no error type matches any other type
// ---------------------------------------------------------------------------

func TestErrorTypes_CrossTypeIsolation(t *testing.T) {
	t.Parallel()
	errs := []error{
		&ErrNotFound{Resource: "x", ID: 1},
		&ErrUpstreamStatus{URL: "http://x", StatusCode: 500},
		&ErrInvalidPayload{Resource: "x", Reason: "y"},
	}

	for i, a := range errs {
		for j, b := range errs {
			if i == j {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("expected errors.Is(%T, %T) to be false", a, b)
			}
		}
	}
}
