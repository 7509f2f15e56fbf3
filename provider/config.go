package provider

import (
	"fmt"
	"os"
	"time"
)

// Config holds configuration for creating a backend client.
type Config struct {
	// APIKey is the credential for the hosted service.
	// Required for remote backends.
	APIKey string `json:"-" yaml:"-"`

	// Model is the default model to use (e.g. "gemini-2.0-flash").
	// Requests may override it per call.
	Model string `json:"model" yaml:"model"`

	// SystemPrompt is the system message prepended to all requests.
	// Optional.
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`

	// Timeout is the maximum duration for a completion request.
	// 0 uses the backend default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
// APIKey must still be set before use.
func DefaultConfig() Config {
	return Config{
		Timeout: 2 * time.Minute,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Set variables take precedence over existing values.
//
// Supported variables:
//   - GEMINI_API_KEY: API credential
//   - GEMINI_MODEL: Model name
//   - GEMINI_SYSTEM_PROMPT: System prompt
//   - GEMINI_TIMEOUT: Request timeout (e.g. "90s")
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("GEMINI_SYSTEM_PROMPT"); v != "" {
		c.SystemPrompt = v
	}
	if v := os.Getenv("GEMINI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api key is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	return nil
}

// WithModel returns a copy of the config with the specified model.
func (c Config) WithModel(model string) Config {
	c.Model = model
	return c
}

// WithAPIKey returns a copy of the config with the specified credential.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = key
	return c
}

// WithSystemPrompt returns a copy of the config with the specified system prompt.
func (c Config) WithSystemPrompt(prompt string) Config {
	c.SystemPrompt = prompt
	return c
}
