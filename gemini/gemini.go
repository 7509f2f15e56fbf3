package gemini

import (
	"context"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/LILHARSHNIK999/chatbot-google-Gemini/provider"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Client talks to the Gemini API. Create one with New.
type Client struct {
	apiKey       string
	model        string
	systemPrompt string
	timeout      time.Duration
	httpClient   *http.Client

	genai *genai.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API credential.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithSystemPrompt sets a system instruction sent with every request.
func WithSystemPrompt(prompt string) Option {
	return func(c *Client) { c.systemPrompt = prompt }
}

// WithTimeout sets the per-request timeout. Zero disables the client-side
// deadline and leaves timeouts to the transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient sets a custom HTTP client for the underlying SDK.
// Primarily useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Gemini client. It fails if the SDK client cannot be
// constructed (for example, no credential was provided); such a failure is
// fatal to the caller, unlike per-request failures.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		model:   DefaultModel,
		timeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}

	gc, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     c.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	})
	if err != nil {
		return nil, provider.NewError("gemini", "init", err, false)
	}
	c.genai = gc
	return c, nil
}

// Complete implements provider.Client.
func (c *Client) Complete(ctx context.Context, req provider.Request) (*provider.Response, error) {
	start := time.Now()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	model := c.model
	if req.Model != "" {
		model = req.Model
	}

	var cfg *genai.GenerateContentConfig
	if sys := c.effectiveSystemPrompt(req); sys != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(sys, genai.RoleUser),
		}
	}

	result, err := c.genai.Models.GenerateContent(ctx, model, buildContents(req.Messages), cfg)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, classify("complete", err)
	}

	text := result.Text()
	if text == "" {
		return nil, provider.NewError("gemini", "complete",
			emptyReplyError(model), false)
	}

	resp := &provider.Response{
		Content:  text,
		Model:    model,
		Duration: time.Since(start),
	}
	if result.UsageMetadata != nil {
		resp.Usage = provider.TokenUsage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return resp, nil
}

// effectiveSystemPrompt resolves the system prompt: request beats client.
func (c *Client) effectiveSystemPrompt(req provider.Request) string {
	if req.SystemPrompt != "" {
		return req.SystemPrompt
	}
	return c.systemPrompt
}

// buildContents converts a transcript into SDK content values, oldest first.
// Turns with empty text are skipped; the API rejects empty parts.
func buildContents(messages []provider.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		if m.Content == "" {
			continue
		}
		var role genai.Role = genai.RoleUser
		if m.Role == provider.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents
}

// Provider implements provider.Client.
func (c *Client) Provider() string {
	return "gemini"
}

// Close implements provider.Client. The SDK client holds no resources that
// need explicit release.
func (c *Client) Close() error {
	return nil
}
