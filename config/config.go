package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file looked up when no --config flag is given.
const DefaultFile = "gemini-chatbot.toml"

// Duration wraps time.Duration so it can be written as "90s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds the chat client's settings.
type Config struct {
	// Model is the model to chat with. Accepts a full model id or a family
	// alias ("flash", "pro", "lite").
	Model string `toml:"model" json:"model,omitempty" jsonschema:"description=Model id or family alias"`

	// SystemPrompt is sent with every request. Ignored when Persona is set
	// and resolves to a preset.
	SystemPrompt string `toml:"system_prompt" json:"system_prompt,omitempty" jsonschema:"description=System prompt sent with every request"`

	// Persona names a preset in the persona file.
	Persona string `toml:"persona" json:"persona,omitempty" jsonschema:"description=Named system prompt preset"`

	// PersonaFile is the YAML file holding persona presets.
	PersonaFile string `toml:"persona_file" json:"persona_file,omitempty" jsonschema:"description=Path to the YAML persona presets file"`

	// Timeout bounds each request, e.g. "90s". Zero uses the backend default.
	Timeout Duration `toml:"timeout" json:"timeout,omitempty" jsonschema:"type=string,description=Per-request timeout such as 90s"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Model: "gemini-2.0-flash",
	}
}

// Load reads the TOML file at path and applies environment overrides.
// A missing file is an error; use LoadOrDefault when the file is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadOrDefault reads the TOML file at path if it exists, and otherwise
// returns the defaults. Environment overrides apply in both cases.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return Load(path)
}

// applyEnv overrides fields from environment variables.
// GEMINI_MODEL and GEMINI_SYSTEM_PROMPT win over file values, matching the
// provider package's conventions.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("GEMINI_SYSTEM_PROMPT"); v != "" {
		c.SystemPrompt = v
	}
	if v := os.Getenv("GEMINI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = Duration{d}
		}
	}
}

// ResolveSystemPrompt returns the effective system prompt: a persona preset
// when configured, otherwise the literal system prompt.
func (c *Config) ResolveSystemPrompt() (string, error) {
	if c.Persona == "" {
		return c.SystemPrompt, nil
	}
	personas, err := LoadPersonas(c.PersonaFile)
	if err != nil {
		return "", err
	}
	prompt, ok := personas[c.Persona]
	if !ok {
		return "", fmt.Errorf("unknown persona %q in %s", c.Persona, c.personaFileOrDefault())
	}
	return prompt, nil
}

func (c *Config) personaFileOrDefault() string {
	if c.PersonaFile != "" {
		return c.PersonaFile
	}
	return DefaultPersonaFile
}
