// Package config resolves everything the chat client needs before the loop
// starts: the API credential, the model, and optional presentation presets.
//
// Credential resolution order: the GEMINI_API_KEY environment variable, a
// .env file in the working directory, then an interactive prompt. A key
// entered at the prompt can be appended to .env for future runs.
//
// Settings come from an optional TOML file, overridden by environment
// variables. Persona presets (named system prompts) live in a YAML file.
// Watch re-reads the TOML file on change so a running session can pick up a
// model switch without restarting.
package config
