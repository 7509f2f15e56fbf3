package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/provider"
)

// classify translates an SDK or transport error into the provider taxonomy.
// The vendor's diagnostic text is preserved by wrapping, never replaced.
func classify(op string, err error) *provider.Error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		kind, retryable := kindForStatus(apiErr.Code, apiErr.Message, apiErr.Status)
		return provider.NewError("gemini", op, fmt.Errorf("%w: %v", kind, err), retryable)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return provider.NewError("gemini", op, fmt.Errorf("%w: %v", provider.ErrNetwork, err), true)
	}

	// No structured error available; fall back to message matching the way
	// the hosted API spells its status codes.
	kind, retryable := kindForMessage(err.Error())
	return provider.NewError("gemini", op, fmt.Errorf("%w: %v", kind, err), retryable)
}

// kindForStatus maps an HTTP status code to an error kind, consulting the
// message for the ambiguous 400 case (the API reports bad keys as 400 with
// an API_KEY_INVALID detail).
func kindForStatus(code int, message, status string) (error, bool) {
	switch {
	case code == 401 || code == 403:
		return provider.ErrAuth, false
	case code == 400 && looksLikeAuth(message+" "+status):
		return provider.ErrAuth, false
	case code == 429:
		return provider.ErrQuota, true
	case code >= 500:
		return provider.ErrNetwork, true
	}
	return kindForMessage(message + " " + status)
}

// kindForMessage classifies by well-known status strings in the error text.
func kindForMessage(msg string) (error, bool) {
	switch {
	case looksLikeAuth(msg):
		return provider.ErrAuth, false
	case looksLikeQuota(msg):
		return provider.ErrQuota, true
	}
	// Anything else is treated as a connectivity problem: DNS failures,
	// refused connections, timeouts, overloaded service.
	return provider.ErrNetwork, true
}

func looksLikeAuth(msg string) bool {
	upper := strings.ToUpper(msg)
	return strings.Contains(upper, "API_KEY_INVALID") ||
		strings.Contains(upper, "PERMISSION_DENIED") ||
		strings.Contains(upper, "UNAUTHENTICATED")
}

func looksLikeQuota(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "resource_exhausted") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "quota") ||
		strings.Contains(lower, "429")
}

// emptyReplyError builds the failure for a successful call that produced no
// text (e.g. all candidates were filtered).
func emptyReplyError(model string) error {
	return fmt.Errorf("%w: model %s produced no candidate text", provider.ErrEmptyReply, model)
}
