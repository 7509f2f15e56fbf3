package provider

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := NewError("gemini", "complete", errors.New("boom"), false)
	want := "gemini complete: boom"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	err = NewError("", "complete", errors.New("boom"), false)
	want = "complete: boom"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("%w: API_KEY_INVALID", ErrAuth)
	err := NewError("gemini", "complete", inner, false)

	if !errors.Is(err, ErrAuth) {
		t.Error("expected errors.Is to find ErrAuth through the wrapper")
	}

	var provErr *Error
	if !errors.As(err, &provErr) {
		t.Fatal("expected errors.As to find *Error")
	}
	if provErr.Op != "complete" {
		t.Errorf("expected op 'complete', got %q", provErr.Op)
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
		check    func(error) bool
	}{
		{"auth", ErrAuth, IsAuthError},
		{"quota", ErrQuota, IsQuotaError},
		{"network", ErrNetwork, IsNetworkError},
		{"empty reply", ErrEmptyReply, IsEmptyReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := NewError("gemini", "complete", fmt.Errorf("%w: detail", tt.sentinel), false)
			if !tt.check(wrapped) {
				t.Errorf("predicate did not match wrapped %v", tt.sentinel)
			}
			// Predicates must be mutually exclusive.
			for _, other := range tests {
				if other.name == tt.name {
					continue
				}
				if other.check(wrapped) {
					t.Errorf("%s predicate matched a %s error", other.name, tt.name)
				}
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(NewError("gemini", "complete", ErrQuota, true)) {
		t.Error("expected wrapped retryable error to be retryable")
	}
	if IsRetryable(NewError("gemini", "complete", ErrAuth, false)) {
		t.Error("expected auth error to not be retryable")
	}
	// Bare sentinels without a wrapper fall back to kind.
	if !IsRetryable(ErrNetwork) {
		t.Error("expected bare ErrNetwork to be retryable")
	}
	if IsRetryable(errors.New("other")) {
		t.Error("expected unrelated error to not be retryable")
	}
}
