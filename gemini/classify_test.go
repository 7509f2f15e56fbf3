package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/provider"
)

func TestClassify_APIError(t *testing.T) {
	tests := []struct {
		name      string
		apiErr    genai.APIError
		sentinel  error
		retryable bool
	}{
		{"unauthorized", genai.APIError{Code: 401, Message: "unauthorized"}, provider.ErrAuth, false},
		{"forbidden", genai.APIError{Code: 403, Message: "PERMISSION_DENIED"}, provider.ErrAuth, false},
		{"bad key as 400", genai.APIError{Code: 400, Message: "API key not valid", Status: "API_KEY_INVALID"}, provider.ErrAuth, false},
		{"rate limited", genai.APIError{Code: 429, Message: "RESOURCE_EXHAUSTED"}, provider.ErrQuota, true},
		{"server error", genai.APIError{Code: 500, Message: "internal"}, provider.ErrNetwork, true},
		{"unavailable", genai.APIError{Code: 503, Message: "overloaded"}, provider.ErrNetwork, true},
		{"quota in message", genai.APIError{Code: 400, Message: "quota exceeded for project"}, provider.ErrQuota, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("complete", tt.apiErr)
			assert.True(t, errors.Is(err, tt.sentinel), "expected %v, got %v", tt.sentinel, err)
			assert.Equal(t, tt.retryable, err.Retryable)
			assert.Equal(t, "gemini", err.Provider)
			// Vendor diagnostic text must survive the translation.
			assert.Contains(t, err.Error(), tt.apiErr.Message)
		})
	}
}

func TestClassify_TransportError(t *testing.T) {
	err := classify("complete", errors.New("dial tcp: connection refused"))
	assert.True(t, provider.IsNetworkError(err))
	assert.True(t, err.Retryable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClassify_MessageFallback(t *testing.T) {
	err := classify("complete", errors.New("googleapi: Error: API_KEY_INVALID"))
	assert.True(t, provider.IsAuthError(err))
	assert.False(t, err.Retryable)
}

func TestEmptyReplyError(t *testing.T) {
	err := emptyReplyError("gemini-2.0-flash")
	assert.True(t, errors.Is(err, provider.ErrEmptyReply))
	assert.Contains(t, err.Error(), "gemini-2.0-flash")
}

func TestBuildContents(t *testing.T) {
	contents := buildContents([]provider.Message{
		{Role: provider.RoleUser, Content: "hi"},
		{Role: provider.RoleModel, Content: "hello"},
		{Role: provider.RoleUser, Content: ""},
		{Role: provider.RoleUser, Content: "how are you"},
	})

	require.Len(t, contents, 3, "empty turns are skipped")
	assert.EqualValues(t, genai.RoleUser, contents[0].Role)
	assert.Equal(t, "hi", contents[0].Parts[0].Text)
	assert.EqualValues(t, genai.RoleModel, contents[1].Role)
	assert.Equal(t, "hello", contents[1].Parts[0].Text)
	assert.Equal(t, "how are you", contents[2].Parts[0].Text)
}
