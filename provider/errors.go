package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors for completion calls. Backends translate vendor failures
// into exactly one of these kinds, preserving the vendor's diagnostic text
// by wrapping.
var (
	// ErrUnknownProvider indicates the requested provider is not registered.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrAuth indicates the credential was rejected (invalid, expired, or
	// lacking permission for the requested model).
	ErrAuth = errors.New("authentication rejected")

	// ErrQuota indicates the request was refused for quota or rate-limit
	// reasons.
	ErrQuota = errors.New("quota exhausted")

	// ErrNetwork indicates the service could not be reached or answered
	// with a server-side failure.
	ErrNetwork = errors.New("service unreachable")

	// ErrEmptyReply indicates the service answered successfully but
	// produced no text.
	ErrEmptyReply = errors.New("empty reply from model")
)

// Error wraps backend errors with context.
type Error struct {
	Provider  string // Backend name ("gemini")
	Op        string // Operation that failed ("complete")
	Err       error  // Underlying error, wrapping a sentinel
	Retryable bool   // Whether the failure is likely transient
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new provider error.
func NewError(provider, op string, err error, retryable bool) *Error {
	return &Error{
		Provider:  provider,
		Op:        op,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable checks if an error is likely transient.
func IsRetryable(err error) bool {
	var provErr *Error
	if errors.As(err, &provErr) {
		return provErr.Retryable
	}
	return errors.Is(err, ErrQuota) || errors.Is(err, ErrNetwork)
}

// IsAuthError checks if an error is a credential rejection.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuth)
}

// IsQuotaError checks if an error is a quota or rate-limit rejection.
func IsQuotaError(err error) bool {
	return errors.Is(err, ErrQuota)
}

// IsNetworkError checks if an error is a connectivity or server failure.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsEmptyReply checks if an error is an empty model reply.
func IsEmptyReply(err error) bool {
	return errors.Is(err, ErrEmptyReply)
}
