// Package model provides the Gemini model catalog: family aliases, alias
// normalization, and resolution of aliases to full model ids.
//
// Operators can name models by family ("flash", "pro", "lite") instead of
// the full versioned id; full ids pass through untouched so new models work
// without a code change.
package model

import (
	"sort"
	"strings"
)

// Name represents a normalized model family name.
type Name string

// Gemini model family constants.
const (
	Flash Name = "flash" // Standard tier, fast and cheap
	Pro   Name = "pro"   // High-capability tier
	Lite  Name = "lite"  // Smallest tier (flash-lite)
)

// Default is the model used when nothing else is configured.
const Default = "gemini-2.0-flash"

// families maps each family alias to its current full model id.
var families = map[Name]string{
	Flash: "gemini-2.0-flash",
	Pro:   "gemini-2.5-pro",
	Lite:  "gemini-2.0-flash-lite",
}

// Normalize converts a full model identifier to its family alias.
// For example, "gemini-2.0-flash" becomes "flash" and "gemini-2.5-pro"
// becomes "pro". If the name is already a family alias or doesn't match any
// known pattern, it is returned as-is.
func Normalize(name string) Name {
	switch Name(name) {
	case Flash, Pro, Lite:
		return Name(name)
	}
	lower := strings.ToLower(name)

	// Check lite before flash: lite ids contain "flash-lite".
	if strings.Contains(lower, "lite") {
		return Lite
	}
	if strings.Contains(lower, "flash") {
		return Flash
	}
	if strings.Contains(lower, "pro") {
		return Pro
	}
	return Name(name)
}

// Resolve expands a family alias to its full model id. Anything that is not
// a known alias is assumed to already be a full id and returned unchanged.
// An empty name resolves to the default model.
func Resolve(name string) string {
	if name == "" {
		return Default
	}
	if full, ok := families[Name(strings.ToLower(name))]; ok {
		return full
	}
	return name
}

// Known returns the family aliases with their current full ids, sorted by
// alias for stable output.
func Known() []string {
	out := make([]string, 0, len(families))
	for alias, full := range families {
		out = append(out, string(alias)+" -> "+full)
	}
	sort.Strings(out)
	return out
}
