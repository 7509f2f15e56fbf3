package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/chat"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/config"
	"github.com/LILHARSHNIK999/chatbot-google-Gemini/provider"
)

// echoClient echoes the last user message and records each request.
// failures holds errors to return, consumed one per call.
type echoClient struct {
	requests []provider.Request
	failures []error
}

func (e *echoClient) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	e.requests = append(e.requests, req)
	if len(e.failures) > 0 {
		err := e.failures[0]
		e.failures = e.failures[1:]
		return nil, err
	}
	last := req.Messages[len(req.Messages)-1]
	return &provider.Response{Content: last.Content}, nil
}

func (e *echoClient) Provider() string { return "echo" }

func (e *echoClient) Close() error { return nil }

func runLoop(t *testing.T, client provider.Client, input string) (*chat.Session, string, error) {
	t.Helper()
	session := chat.NewSession(client)
	var out strings.Builder
	loop := &Loop{Session: session, In: strings.NewReader(input), Out: &out}
	err := loop.Run(context.Background())
	return session, out.String(), err
}

func TestLoop_Scenario(t *testing.T) {
	// The canonical walk: message, clear, exit.
	client := &echoClient{}
	session, out, err := runLoop(t, client, "hi\nclear\nbye\n")
	require.NoError(t, err)

	// "hi" produced one backend call with a one-turn transcript.
	require.Len(t, client.requests, 1)
	assert.Len(t, client.requests[0].Messages, 1)
	assert.Equal(t, "hi", client.requests[0].Messages[0].Content)

	// "clear" emptied the transcript; "bye" ended the loop.
	assert.Equal(t, 0, session.Len())
	assert.Contains(t, out, "hi") // echoed reply
	assert.Contains(t, out, "Conversation has been reset.")
	assert.Contains(t, out, "Goodbye.")
}

func TestLoop_ExitWords(t *testing.T) {
	for _, word := range []string{"exit", "quit", "bye", "EXIT", "Quit", "ByE"} {
		t.Run(word, func(t *testing.T) {
			client := &echoClient{}
			_, out, err := runLoop(t, client, word+"\nunreachable\n")
			require.NoError(t, err)
			assert.Empty(t, client.requests, "exit words must not reach the backend")
			assert.Contains(t, out, "Goodbye.")
			assert.NotContains(t, out, "unreachable")
		})
	}
}

func TestLoop_EmptyLinesIgnored(t *testing.T) {
	client := &echoClient{}
	session, _, err := runLoop(t, client, "\n   \n\t\nexit\n")
	require.NoError(t, err)
	assert.Empty(t, client.requests)
	assert.Equal(t, 0, session.Len())
}

func TestLoop_ClearNeverReachesBackend(t *testing.T) {
	client := &echoClient{}
	_, _, err := runLoop(t, client, "CLEAR\nclear\nexit\n")
	require.NoError(t, err)
	assert.Empty(t, client.requests)
}

func TestLoop_EndOfInputIsImplicitExit(t *testing.T) {
	client := &echoClient{}
	_, out, err := runLoop(t, client, "hello\n")
	require.NoError(t, err)
	assert.Len(t, client.requests, 1)
	assert.Contains(t, out, "Goodbye.")
}

func TestLoop_SendFailureIsNonFatal(t *testing.T) {
	authErr := provider.NewError("echo", "complete", provider.ErrAuth, false)
	client := &echoClient{failures: []error{authErr}}

	session, out, err := runLoop(t, client, "first\nsecond\nbye\n")
	require.NoError(t, err)

	// Both messages reached the backend; the loop survived the failure.
	require.Len(t, client.requests, 2)
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, config.APIKeyURL)

	// Failed send: user turn kept, no model turn. Successful send: both.
	assert.Equal(t, 3, session.Len())
}

func TestLoop_AppliesConfigUpdate(t *testing.T) {
	client := &echoClient{}
	session := chat.NewSession(client, chat.WithModel("gemini-2.0-flash"))

	updates := make(chan config.Config, 1)
	updates <- config.Config{Model: "pro"}

	var out strings.Builder
	loop := &Loop{
		Session: session,
		In:      strings.NewReader("hi\nexit\n"),
		Out:     &out,
		Updates: updates,
	}
	require.NoError(t, loop.Run(context.Background()))

	require.Len(t, client.requests, 1)
	assert.Equal(t, "gemini-2.5-pro", client.requests[0].Model)
	assert.Contains(t, out.String(), "Switched model to gemini-2.5-pro.")
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth", provider.NewError("gemini", "complete", provider.ErrAuth, false), "API key was rejected"},
		{"quota", provider.NewError("gemini", "complete", provider.ErrQuota, true), "quota or rate limit"},
		{"network", provider.NewError("gemini", "complete", provider.ErrNetwork, true), "could not reach"},
		{"empty reply", provider.NewError("gemini", "complete", provider.ErrEmptyReply, false), "empty reply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := diagnose(tt.err)
			assert.Contains(t, strings.ToLower(msg), strings.ToLower(tt.want))
			// The collaborator's diagnostic text is preserved.
			assert.Contains(t, msg, tt.err.Error())
		})
	}
}
