package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPersonaFile is the persona presets file looked up when the config
// does not name one.
const DefaultPersonaFile = "personas.yaml"

// LoadPersonas reads a YAML file mapping persona names to system prompts:
//
//	coder: You are a terse senior engineer. Answer with code first.
//	tutor: You explain concepts step by step for a beginner.
//
// A missing default file yields an empty map; a missing explicitly named
// file is an error.
func LoadPersonas(path string) (map[string]string, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPersonaFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("load personas %s: %w", path, err)
	}

	personas := make(map[string]string)
	if err := yaml.Unmarshal(data, &personas); err != nil {
		return nil, fmt.Errorf("parse personas %s: %w", path, err)
	}
	return personas, nil
}
