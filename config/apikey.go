package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable holding the credential.
const EnvAPIKey = "GEMINI_API_KEY"

// APIKeyURL is where operators obtain a credential.
const APIKeyURL = "https://aistudio.google.com/app/apikey"

// keyPattern matches the characters Google AI Studio keys are built from.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// minKeyLength is the shortest credential accepted. AI Studio keys are 39
// characters; anything much shorter is a paste error.
const minKeyLength = 30

// ValidateAPIKey checks the credential's format. It cannot tell whether the
// key is actually accepted by the service; that surfaces on the first send.
func ValidateAPIKey(key string) error {
	if len(key) < minKeyLength {
		return fmt.Errorf("api key too short (%d chars); get one at %s", len(key), APIKeyURL)
	}
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("api key contains invalid characters; get one at %s", APIKeyURL)
	}
	return nil
}

// ResolveAPIKey finds the credential: environment first, then a .env file in
// the working directory, then an interactive prompt on in/out. A key entered
// at the prompt may be appended to .env if the operator asks for it.
//
// An empty result after all three sources is an initialization failure for
// the caller.
func ResolveAPIKey(in io.Reader, out io.Writer) (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return strings.TrimSpace(key), nil
	}

	// .env is optional; a missing file is not an error.
	if env, err := godotenv.Read(); err == nil {
		if key := strings.TrimSpace(env[EnvAPIKey]); key != "" {
			return key, nil
		}
	}

	return promptAPIKey(in, out)
}

// promptAPIKey interactively asks for a key and offers to save it to .env.
func promptAPIKey(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "No API key found in the environment or .env file.")
	fmt.Fprintf(out, "Get one at %s\n\n", APIKeyURL)
	fmt.Fprint(out, "Enter your Gemini API key: ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read api key: %w", err)
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return "", fmt.Errorf("no api key entered")
	}

	fmt.Fprint(out, "Save this key to .env for future sessions? (y/n): ")
	answer, _ := reader.ReadString('\n')
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		if err := SaveAPIKey(".env", key); err != nil {
			// Saving is best-effort; the session still has the key.
			fmt.Fprintf(out, "Could not save key: %v\n", err)
		} else {
			fmt.Fprintln(out, "API key saved to .env.")
		}
	}

	return key, nil
}

// SaveAPIKey appends the credential to the given dotenv file, creating it
// if needed. The file is written with owner-only permissions.
func SaveAPIKey(path, key string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%s\n", EnvAPIKey, key); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
