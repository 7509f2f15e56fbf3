package provider

import "time"

// Request configures a single completion call.
// Messages carries the entire conversation so far; the backend holds no
// session state of its own.
type Request struct {
	// SystemPrompt sets the system message that guides the model's behavior.
	// Optional.
	SystemPrompt string `json:"system_prompt,omitempty"`

	// Messages is the full transcript to send to the model, oldest first.
	Messages []Message `json:"messages"`

	// Model specifies which model to use (e.g. "gemini-2.0-flash").
	// Empty uses the client's configured default.
	Model string `json:"model,omitempty"`
}

// Message is one conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewTextMessage creates a message with the given role and text.
func NewTextMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// Role identifies the message sender.
type Role string

// Roles used in the transcript. The Gemini API uses "model" rather than
// "assistant" for generated turns.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Response is the output of a completion call.
type Response struct {
	// Content is the text reply from the model.
	Content string `json:"content"`

	// Model is the model that produced the reply.
	Model string `json:"model"`

	// Usage tracks token consumption for this request, when the backend
	// reports it.
	Usage TokenUsage `json:"usage"`

	// Duration is the time taken for the completion.
	Duration time.Duration `json:"duration"`
}

// TokenUsage tracks token consumption.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add combines token usage from another TokenUsage.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}
