package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/provider"
)

// Session manages one conversation against a backend client.
// It is not safe for concurrent use; the chat loop drives it from a single
// goroutine with at most one request outstanding.
type Session struct {
	client       provider.Client
	model        string
	systemPrompt string
	transcript   []provider.Message
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithModel sets the model requested on every send.
func WithModel(model string) SessionOption {
	return func(s *Session) { s.model = model }
}

// WithSystemPrompt sets the system prompt sent with every request.
func WithSystemPrompt(prompt string) SessionOption {
	return func(s *Session) { s.systemPrompt = prompt }
}

// NewSession creates a session with an empty transcript.
func NewSession(client provider.Client, opts ...SessionOption) *Session {
	s := &Session{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send appends the user turn, forwards the full transcript to the backend,
// and on success appends the model turn and returns the reply text.
//
// On failure the typed error from the backend is returned unchanged: the
// user turn stays in the transcript and no model turn is appended. Failures
// are never retried here.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty message")
	}

	s.transcript = append(s.transcript, provider.NewTextMessage(provider.RoleUser, text))

	start := time.Now()
	resp, err := s.client.Complete(ctx, provider.Request{
		Model:        s.model,
		SystemPrompt: s.systemPrompt,
		Messages:     s.transcript,
	})
	if err != nil {
		slog.Debug("send failed",
			slog.String("provider", s.client.Provider()),
			slog.Int("transcript_len", len(s.transcript)),
			slog.Any("error", err))
		return "", err
	}

	s.transcript = append(s.transcript, provider.NewTextMessage(provider.RoleModel, resp.Content))
	slog.Debug("send completed",
		slog.String("model", resp.Model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("total_tokens", resp.Usage.TotalTokens))
	return resp.Content, nil
}

// Reset clears the transcript. It always succeeds. The old backing array is
// released so turns of the new conversation never overwrite message slices
// already handed to the backend.
func (s *Session) Reset() {
	s.transcript = nil
}

// Len returns the number of turns in the transcript.
func (s *Session) Len() int {
	return len(s.transcript)
}

// Transcript returns a copy of the transcript, oldest turn first.
func (s *Session) Transcript() []provider.Message {
	out := make([]provider.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// SetModel changes the model requested on subsequent sends.
// The transcript is unaffected.
func (s *Session) SetModel(model string) {
	s.model = model
}

// Model returns the model currently requested on sends.
func (s *Session) Model() string {
	return s.model
}
